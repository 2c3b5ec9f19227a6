package render

import (
	"fmt"
	"time"

	"github.com/Bitlatte/petroweb/internal/content"
)

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate formats an ISO date as "15 de marzo de 2024". Unparseable input
// is returned unchanged.
func LongDate(iso string) string {
	t, err := time.Parse(content.DateLayout, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
