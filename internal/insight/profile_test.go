package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfile_SynonymKeys(t *testing.T) {
	p := NormalizeProfile(map[string]any{
		"fullName":       "Amina Yusuf",
		"academicLevel":  "12th grade",
		"target_country": "Canada",
		"goal":           "Machine learning engineer",
		"userBudget":     25000.0,
	})

	assert.Equal(t, "Amina Yusuf", p.Name)
	assert.Equal(t, "12th grade", p.Education)
	assert.Equal(t, "Canada", p.TargetCountry)
	assert.Equal(t, "Machine learning engineer", p.CareerGoal)
	assert.Equal(t, 25000.0, p.Budget)
}

func TestNormalizeProfile_CanonicalKeysWinOverSynonyms(t *testing.T) {
	p := NormalizeProfile(map[string]any{
		"name":     "Canonical",
		"fullName": "Synonym",
	})
	assert.Equal(t, "Canonical", p.Name)
}

func TestNormalizeProfile_CoercesScalars(t *testing.T) {
	p := NormalizeProfile(map[string]any{
		"name":   42.0,
		"budget": "15000",
		"marks": map[string]any{
			"math":    "88",
			"physics": 91.5,
			"art":     []any{"not a number"},
		},
	})

	assert.Equal(t, "42", p.Name)
	assert.Equal(t, 15000.0, p.Budget)
	assert.Equal(t, map[string]float64{"math": 88, "physics": 91.5}, p.Marks)
}

func TestNormalizeProfile_SkillsFromCommaSeparatedString(t *testing.T) {
	p := NormalizeProfile(map[string]any{
		"skills":    "python, sql , ",
		"interests": []any{"robotics", 3.0, ""},
	})

	assert.Equal(t, []string{"python", "sql"}, p.Skills)
	assert.Equal(t, []string{"robotics", "3"}, p.Interests)
}

func TestNormalizeProfile_NilAndEmpty(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}} {
		p := NormalizeProfile(raw)
		assert.Empty(t, p.Name)
		assert.Empty(t, p.Skills)
		assert.Empty(t, p.Marks)
		assert.Zero(t, p.Budget)
	}
}

func TestProfileDocument_OmitsEmptyAttributes(t *testing.T) {
	p := NormalizeProfile(map[string]any{
		"name":   "Jo",
		"skills": []any{"go"},
	})
	doc := p.document()

	assert.Equal(t, "Jo", doc["name"])
	assert.Contains(t, doc, "skills")
	assert.NotContains(t, doc, "education")
	assert.NotContains(t, doc, "budget")
	assert.NotContains(t, doc, "marks")
}
