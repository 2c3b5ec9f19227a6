package content

type NavItem struct {
	Label    string    `json:"label"`
	Href     string    `json:"href"`
	Children []NavItem `json:"children,omitempty"`
}

type NavGroup struct {
	Title string    `json:"title"`
	Links []NavItem `json:"links"`
}

type SocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type ContactInfo struct {
	Company string       `json:"company"`
	Address string       `json:"address"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Hours   string       `json:"hours"`
	Social  []SocialLink `json:"social"`
}

var mainMenu = []NavItem{
	{Label: "Inicio", Href: "/"},
	{Label: "Nosotros", Href: "/nosotros"},
	{Label: "Servicios", Href: "/servicios", Children: serviceMenu()},
	{Label: "Blog", Href: "/blog"},
	{Label: "Carreras", Href: "/carreras"},
	{Label: "Contacto", Href: "/contacto"},
}

func serviceMenu() []NavItem {
	items := make([]NavItem, 0, len(services))
	for _, s := range services {
		items = append(items, NavItem{Label: s.Title, Href: s.Permalink()})
	}
	return items
}

var footerMenu = []NavGroup{
	{
		Title: "Empresa",
		Links: []NavItem{
			{Label: "Nosotros", Href: "/nosotros"},
			{Label: "Carreras", Href: "/carreras"},
			{Label: "Blog", Href: "/blog"},
		},
	},
	{
		Title: "Servicios",
		Links: []NavItem{
			{Label: "Perforación", Href: "/servicios/perforacion-y-completacion"},
			{Label: "Mantenimiento", Href: "/servicios/mantenimiento-industrial"},
			{Label: "Gestión ambiental", Href: "/servicios/gestion-ambiental"},
		},
	},
	{
		Title: "Soporte",
		Links: []NavItem{
			{Label: "Contacto", Href: "/contacto"},
		},
	},
}

var contactInfo = ContactInfo{
	Company: "Andes Oil & Gas Services S.A.",
	Address: "Av. Argentina 1250, Neuquén, Argentina",
	Phone:   "+54 299 442 1000",
	Email:   "contacto@andesogs.com",
	Hours:   "Lunes a viernes, 8:00 a 18:00",
	Social: []SocialLink{
		{Network: "LinkedIn", URL: "https://www.linkedin.com/company/andesogs"},
		{Network: "YouTube", URL: "https://www.youtube.com/@andesogs"},
	},
}
