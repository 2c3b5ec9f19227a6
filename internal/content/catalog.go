package content

// Catalog is every piece of content the site renders. A Catalog is never
// mutated after construction; reloading builds a new one.
type Catalog struct {
	Blog           *Blog
	Services       []Service
	Jobs           []Job
	Certifications []Certification
	MainMenu       []NavItem
	FooterMenu     []NavGroup
	Contact        ContactInfo
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Blog:           defaultBlog,
		Services:       services,
		Jobs:           jobs,
		Certifications: certifications,
		MainMenu:       mainMenu,
		FooterMenu:     footerMenu,
		Contact:        contactInfo,
	}
}
