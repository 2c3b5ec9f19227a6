package content

type Service struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	IconName    string   `json:"iconName"`
	Features    []string `json:"features"`
}

// Permalink is the service's URL path.
func (s Service) Permalink() string { return "/servicios/" + s.Slug }

type Certification struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	IconName    string `json:"iconName"`
}

// ServiceBySlug finds a service by slug.
func ServiceBySlug(services []Service, slug string) (Service, bool) {
	for _, s := range services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}

var services = []Service{
	{
		ID:          "perforacion",
		Slug:        "perforacion-y-completacion",
		Title:       "Perforación y completación",
		Summary:     "Servicios integrales de perforación direccional y completación de pozos.",
		Description: "Planificamos y ejecutamos pozos verticales, direccionales y horizontales con equipos certificados y personal altamente calificado.",
		IconName:    "Gauge",
		Features:    []string{"Perforación direccional", "Control de sólidos", "Cementación", "Completaciones inteligentes"},
	},
	{
		ID:          "mantenimiento",
		Slug:        "mantenimiento-industrial",
		Title:       "Mantenimiento industrial",
		Summary:     "Mantenimiento preventivo, predictivo y correctivo de equipos de superficie.",
		Description: "Cuadrillas especializadas mantienen bombas, compresores, separadores y líneas de flujo con programas basados en condición.",
		IconName:    "Wrench",
		Features:    []string{"Monitoreo de condición", "Overhaul de compresores", "Integridad de ductos", "Paradas de planta"},
	},
	{
		ID:          "produccion",
		Slug:        "optimizacion-de-produccion",
		Title:       "Optimización de producción",
		Summary:     "Ingeniería de producción para aumentar el factor de recobro.",
		Description: "Analizamos el desempeño de cada pozo y proponemos sistemas de levantamiento artificial, estimulaciones y reacondicionamientos.",
		IconName:    "Droplet",
		Features:    []string{"Levantamiento artificial", "Estimulación", "Análisis nodal", "Reacondicionamiento de pozos"},
	},
	{
		ID:          "ambiental",
		Slug:        "gestion-ambiental",
		Title:       "Gestión ambiental",
		Summary:     "Soluciones para operar con menor huella ambiental.",
		Description: "Tratamiento de aguas de producción, remediación de suelos y programas de reducción de emisiones alineados con la normativa vigente.",
		IconName:    "Leaf",
		Features:    []string{"Tratamiento de agua", "Remediación de suelos", "Medición de emisiones", "Planes de abandono"},
	},
	{
		ID:          "logistica",
		Slug:        "logistica-petrolera",
		Title:       "Logística petrolera",
		Summary:     "Transporte y movilización de equipos y materiales a locaciones remotas.",
		Description: "Flota propia y coordinación de transporte pesado para movilizar equipos de perforación y suministros de forma segura.",
		IconName:    "Truck",
		Features:    []string{"Transporte pesado", "Movilización de taladros", "Gestión de almacenes", "Rastreo satelital"},
	},
	{
		ID:          "ingenieria",
		Slug:        "ingenieria-de-procesos",
		Title:       "Ingeniería de procesos",
		Summary:     "Diseño y optimización de facilidades de superficie.",
		Description: "Ingeniería conceptual, básica y de detalle para estaciones de flujo, plantas de gas y sistemas de inyección.",
		IconName:    "Factory",
		Features:    []string{"Ingeniería conceptual", "Simulación de procesos", "Ingeniería de detalle", "Puesta en marcha"},
	},
}

var certifications = []Certification{
	{Name: "ISO 9001:2015", Issuer: "Bureau Veritas", Description: "Sistema de gestión de la calidad.", Year: 2019, IconName: "Award"},
	{Name: "ISO 14001:2015", Issuer: "Bureau Veritas", Description: "Sistema de gestión ambiental.", Year: 2020, IconName: "Leaf"},
	{Name: "ISO 45001:2018", Issuer: "SGS", Description: "Sistema de gestión de seguridad y salud en el trabajo.", Year: 2021, IconName: "Shield"},
	{Name: "API Q2", Issuer: "American Petroleum Institute", Description: "Calidad en la prestación de servicios para la industria petrolera.", Year: 2022, IconName: "Award"},
}
