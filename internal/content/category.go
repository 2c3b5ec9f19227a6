package content

// Category is a blog post category label. Labels are matched exactly.
type Category string

// All is the filter sentinel meaning "no filter". It is never a post's
// category.
const All Category = "Todos"

const (
	Technology     Category = "Tecnología"
	Safety         Category = "Seguridad"
	Operations     Category = "Operaciones"
	Sustainability Category = "Sostenibilidad"
	Industry       Category = "Industria"
)

var categories = [...]Category{All, Technology, Safety, Operations, Sustainability, Industry}

// Categories returns the filter enumeration in display order, sentinel
// first. The slice is a fresh copy.
func Categories() []Category {
	return append([]Category(nil), categories[:]...)
}

// Valid reports whether c may be used as a post category.
func (c Category) Valid() bool {
	if c == All {
		return false
	}
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Slug is the URL form of the category, e.g. "tecnologia".
func (c Category) Slug() string { return Slugify(string(c)) }

// CategoryBySlug resolves a URL slug back to its category.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug() == slug {
			return c, true
		}
	}
	return "", false
}
