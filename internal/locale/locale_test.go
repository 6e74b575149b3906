package locale

import (
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllCatalogsComplete(t *testing.T) {
	assert.Equal(t, []string{"en", "pt"}, Codes())

	en := MustLoad("en")
	for _, code := range Codes() {
		c, err := Load(code)
		require.NoError(t, err)
		for key := range en.Text {
			_, ok := c.Text[key]
			assert.True(t, ok, "catalog %s is missing text %q", code, key)
		}
	}
}

func TestLoad_RegionAndDefault(t *testing.T) {
	c, err := Load("pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "pt", c.Code)

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCode, c.Code)

	_, err = Load("fr")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	pt := MustLoad("pt")
	assert.Equal(t, "Saúde", pt.CategoryLabel(domain.CategoryHealth))
	assert.Equal(t, "Diário", pt.FrequencyLabel(domain.FrequencyDaily))
	assert.Equal(t, "mystery", pt.CategoryLabel("mystery"))

	en := MustLoad("en")
	assert.Equal(t, "Due in 5 days", en.Tf("goals.due_in", 5))
	assert.Equal(t, "no.such.key", en.T("no.such.key"))
}

func TestPrompts(t *testing.T) {
	en := MustLoad("en")
	p, err := en.GoalPrompt(domain.CategoryFinancial)
	require.NoError(t, err)
	assert.Contains(t, p, "Suggest 3 SMART")
	assert.Contains(t, p, "'Financial' category")

	pt := MustLoad("pt")
	p, err = pt.HabitPrompt(domain.FrequencyWeekly)
	require.NoError(t, err)
	assert.Contains(t, p, "'Semanal'")
}

func TestParseCategory_KeysAndLabels(t *testing.T) {
	for input, want := range map[string]domain.Category{
		"health":     domain.CategoryHealth,
		"Saúde":      domain.CategoryHealth,
		"financeiro": domain.CategoryFinancial,
		" Career ":   domain.CategoryCareer,
		"OUTROS":     domain.CategoryOther,
	} {
		got, err := ParseCategory(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseCategory("hobbies")
	assert.Error(t, err)
}

func TestParseFrequency_KeysAndLabels(t *testing.T) {
	got, err := ParseFrequency("Mensal")
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyMonthly, got)

	got, err = ParseFrequency("weekly")
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyWeekly, got)

	_, err = ParseFrequency("hourly")
	assert.Error(t, err)
}

func TestParse_RejectsIncompleteCatalog(t *testing.T) {
	_, err := parse([]byte("code: xx\ncategories:\n  health: H\n"))
	assert.Error(t, err)
}
