package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/model"
	"github.com/Bitlatte/petroweb/internal/render"
)

var formNamesOnce sync.Once

// registerFormNames makes validation errors report the form field name
// ("nombre") instead of the Go field name ("Name").
func registerFormNames() {
	formNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

var fieldMessages = map[string]string{
	"required": "Este campo es obligatorio.",
	"email":    "Ingrese un email válido.",
	"url":      "Ingrese una URL válida.",
	"min":      "El texto es demasiado corto.",
	"max":      "El texto es demasiado largo.",
}

// fieldErrors maps a binding error to per-field messages. ok is false when
// err is not a validation failure.
func fieldErrors(err error) (errs map[string]string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	errs = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, known := fieldMessages[fe.Tag()]
		if !known {
			msg = "Valor inválido."
		}
		if _, dup := errs[fe.Field()]; !dup {
			errs[fe.Field()] = msg
		}
	}
	return errs, true
}

func (s *Server) contactSubmit(c *gin.Context) {
	var form model.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		errs, ok := fieldErrors(err)
		if !ok {
			s.badRequest(c, err)
			return
		}
		d := s.current().Contact()
		d.Contact.Form = form
		d.Contact.Errors = errs
		s.page(c, http.StatusUnprocessableEntity, render.PageContact, d)
		return
	}

	ref := uuid.New()
	s.log.Info("contact request received",
		zap.String("reference", ref.String()),
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("company", form.Company),
		zap.String("subject", form.Subject),
		zap.String("request_id", c.GetString(requestIDKey)))

	s.addFlash(c, fmt.Sprintf("Gracias, %s. Recibimos su mensaje (referencia %s).", form.Name, shortRef(ref)))
	c.Redirect(http.StatusSeeOther, "/contacto")
}

func (s *Server) apply(c *gin.Context) {
	pages := s.current()
	job, ok := content.JobByID(pages.Catalog().Jobs, c.Param("id"))
	if !ok {
		s.notFound(c)
		return
	}

	var form model.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		errs, ok := fieldErrors(err)
		if !ok {
			s.badRequest(c, err)
			return
		}
		d := pages.Careers(content.JobFilter{})
		d.Careers.Apply = &form
		d.Careers.ApplyJobID = job.ID
		d.Careers.Errors = errs
		s.page(c, http.StatusUnprocessableEntity, render.PageCareers, d)
		return
	}

	ref := uuid.New()
	s.log.Info("job application received",
		zap.String("reference", ref.String()),
		zap.String("job", job.ID),
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("request_id", c.GetString(requestIDKey)))

	s.addFlash(c, fmt.Sprintf("Recibimos su postulación para %s (referencia %s).", job.Title, shortRef(ref)))
	c.Redirect(http.StatusSeeOther, "/carreras")
}

func (s *Server) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusBadRequest, "Solicitud inválida.")
}

func shortRef(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}

func (s *Server) addFlash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		s.log.Warn("failed to save session", zap.Error(err))
	}
}

func (s *Server) popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		s.log.Warn("failed to save session", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
