package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Valid(t *testing.T) {
	cat := Default()
	require.NoError(t, Validate(cat))
	assert.NotEmpty(t, cat.Services)
	assert.NotEmpty(t, cat.Jobs)
	assert.NotEmpty(t, cat.MainMenu)

	for _, item := range cat.MainMenu {
		if item.Label == "Servicios" {
			assert.Len(t, item.Children, len(cat.Services))
		}
	}
}

func TestValidate_Catalog(t *testing.T) {
	cat := Default()
	cat.Services = append(append([]Service(nil), cat.Services...), cat.Services[0])
	cat.Certifications = []Certification{{Name: "X", IconName: "Nope"}}

	err := Validate(cat)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContent)
	assert.Contains(t, err.Error(), "duplicate slug")
	assert.Contains(t, err.Error(), `unknown icon "Nope"`)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Tecnología":              "tecnologia",
		"Medio Ambiente":          "medio-ambiente",
		"  Niño & Compañía 2024 ": "nino-compania-2024",
		"already-a-slug":          "already-a-slug",
		"Pozo ٣ Norte":            "pozo-norte",
		"":                        "",
	}
	for in, want := range tests {
		got := Slugify(in)
		assert.Equal(t, want, got, in)
		if got != "" {
			assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, got, in)
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cs := Categories()
	require.Equal(t, All, cs[0])
	cs[1] = "Cocina"

	assert.Equal(t, Technology, Categories()[1])
	assert.True(t, Technology.Valid())
	assert.False(t, Category("Cocina").Valid())
	_, ok := CategoryBySlug("cocina")
	assert.False(t, ok)
}

func TestCategoryBySlug(t *testing.T) {
	c, ok := CategoryBySlug("tecnologia")
	require.True(t, ok)
	assert.Equal(t, Technology, c)

	_, ok = CategoryBySlug("cocina")
	assert.False(t, ok)

	assert.False(t, All.Valid())
	assert.True(t, Safety.Valid())
}

func TestIcon(t *testing.T) {
	svg, ok := Icon("Shield")
	require.True(t, ok)
	assert.Contains(t, string(svg), "<svg")

	_, ok = Icon("shield")
	assert.False(t, ok)
}

func TestFilterJobs(t *testing.T) {
	js := Default().Jobs

	assert.Len(t, FilterJobs(js, JobFilter{}), len(js))
	assert.Len(t, FilterJobs(js, JobFilter{Department: string(All), Location: string(All)}), len(js))

	neuquen := FilterJobs(js, JobFilter{Location: "Neuquén"})
	require.NotEmpty(t, neuquen)
	for _, j := range neuquen {
		assert.Equal(t, "Neuquén", j.Location)
	}

	got := FilterJobs(js, JobFilter{Query: "tecnico"})
	require.Len(t, got, 1)
	assert.Equal(t, "tecnico-hse", got[0].ID)

	assert.Empty(t, FilterJobs(js, JobFilter{Department: "Marketing"}))
}

func TestDepartmentsAndLocations(t *testing.T) {
	js := []Job{
		{ID: "1", Department: "B", Location: "X"},
		{ID: "2", Department: "A", Location: "X"},
		{ID: "3", Department: "B", Location: "Y"},
	}
	assert.Equal(t, []string{"Todos", "A", "B"}, Departments(js))
	assert.Equal(t, []string{"Todos", "X", "Y"}, Locations(js))

	j, ok := JobByID(js, "3")
	require.True(t, ok)
	assert.Equal(t, "Y", j.Location)
}

func TestServiceBySlug(t *testing.T) {
	s, ok := ServiceBySlug(Default().Services, "gestion-ambiental")
	require.True(t, ok)
	assert.Equal(t, "/servicios/gestion-ambiental", s.Permalink())

	_, ok = ServiceBySlug(Default().Services, "x")
	assert.False(t, ok)
}
