package content

import (
	"sort"
	"strings"
)

// Job is an open position on the careers page.
type Job struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Department   string   `json:"department" yaml:"department"`
	Location     string   `json:"location" yaml:"location"`
	Type         string   `json:"type" yaml:"type"`
	Experience   string   `json:"experience" yaml:"experience"`
	Description  string   `json:"description" yaml:"description"`
	Requirements []string `json:"requirements" yaml:"requirements"`
	Posted       string   `json:"posted" yaml:"posted"`
}

// JobFilter narrows a job list. Empty or All fields do not filter.
type JobFilter struct {
	Query      string
	Department string
	Location   string
}

func (f JobFilter) matches(j Job) bool {
	if f.Department != "" && f.Department != string(All) && j.Department != f.Department {
		return false
	}
	if f.Location != "" && f.Location != string(All) && j.Location != f.Location {
		return false
	}
	q := fold(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(fold(j.Title), q) || strings.Contains(fold(j.Description), q)
}

// FilterJobs returns the jobs matching f, in order.
func FilterJobs(jobs []Job, f JobFilter) []Job {
	out := []Job{}
	for _, j := range jobs {
		if f.matches(j) {
			out = append(out, j)
		}
	}
	return out
}

// JobByID finds a job by id.
func JobByID(jobs []Job, id string) (Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// Departments lists the distinct departments, sorted, with All first.
func Departments(jobs []Job) []string {
	return distinct(jobs, func(j Job) string { return j.Department })
}

// Locations lists the distinct locations, sorted, with All first.
func Locations(jobs []Job) []string {
	return distinct(jobs, func(j Job) string { return j.Location })
}

func distinct(jobs []Job, key func(Job) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, j := range jobs {
		k := key(j)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return append([]string{string(All)}, out...)
}

var jobs = []Job{
	{
		ID:          "ing-perforacion-sr",
		Title:       "Ingeniero de Perforación Senior",
		Department:  "Operaciones",
		Location:    "Neuquén",
		Type:        "Tiempo completo",
		Experience:  "8+ años",
		Description: "Diseño y supervisión de programas de perforación direccional en yacimientos no convencionales.",
		Requirements: []string{
			"Título en Ingeniería de Petróleo o afín",
			"Experiencia en pozos horizontales",
			"Disponibilidad para trabajar en turnos rotativos",
		},
		Posted: "2024-03-10",
	},
	{
		ID:          "tecnico-hse",
		Title:       "Técnico HSE",
		Department:  "Seguridad",
		Location:    "Comodoro Rivadavia",
		Type:        "Tiempo completo",
		Experience:  "3+ años",
		Description: "Implementación del sistema de gestión de seguridad en locaciones de campo y auditorías de cumplimiento.",
		Requirements: []string{
			"Técnico superior en Higiene y Seguridad",
			"Licencia de conducir vigente",
		},
		Posted: "2024-03-05",
	},
	{
		ID:          "analista-datos",
		Title:       "Analista de Datos de Producción",
		Department:  "Tecnología",
		Location:    "Buenos Aires",
		Type:        "Híbrido",
		Experience:  "2+ años",
		Description: "Construcción de tableros y modelos de pronóstico de producción a partir de datos de sensores.",
		Requirements: []string{
			"Manejo de SQL y Python",
			"Conocimientos de estadística aplicada",
		},
		Posted: "2024-02-27",
	},
	{
		ID:          "mecanico-equipos-rotativos",
		Title:       "Mecánico de Equipos Rotativos",
		Department:  "Mantenimiento",
		Location:    "Neuquén",
		Type:        "Tiempo completo",
		Experience:  "5+ años",
		Description: "Mantenimiento de bombas, compresores y motores en estaciones de flujo.",
		Requirements: []string{
			"Formación técnica en mecánica",
			"Experiencia en alineación láser",
		},
		Posted: "2024-02-15",
	},
}
