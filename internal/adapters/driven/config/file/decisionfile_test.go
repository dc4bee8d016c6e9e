package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

const sampleDecision = `
question = "Should I have moved?"
actual_choice = "I moved to Boston"
alternate_choice = "I stayed home"
context = "I was 25 and had a job offer"

[[categories]]
id = "career"
importance = 8

[[categories]]
id = "hobbies"
name = "Hobbies"
importance = 3
`

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision([]byte(sampleDecision))

	require.NoError(t, err)
	assert.Equal(t, "Should I have moved?", d.Question)
	assert.Equal(t, "I moved to Boston", d.ActualChoice)
	assert.Equal(t, "I stayed home", d.AlternateChoice)
	assert.Equal(t, "I was 25 and had a job offer", d.Context)
	require.Len(t, d.Categories, 2)
	assert.Equal(t, domain.Category{ID: domain.CategoryCareer, Name: "Career", Importance: 8}, d.Categories[0])
	assert.Equal(t, domain.Category{ID: "hobbies", Name: "Hobbies", Importance: 3}, d.Categories[1])
}

func TestParseDecision_NoCategories(t *testing.T) {
	d, err := ParseDecision([]byte(`question = "q"
actual_choice = "a"
alternate_choice = "b"
`))

	require.NoError(t, err)
	assert.Empty(t, d.Categories)
	assert.Equal(t, domain.DefaultCategories(), d.Normalise().Categories)
}

func TestParseDecision_UnknownKey(t *testing.T) {
	_, err := ParseDecision([]byte(`question = "q"
actual = "typo"
`))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "actual")
}

func TestParseDecision_Malformed(t *testing.T) {
	_, err := ParseDecision([]byte(`question = `))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadDecision_MissingFile(t *testing.T) {
	_, err := LoadDecision(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveDecision_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decision.toml")
	want := domain.Decision{
		Question:        "Should I have dyed my hair?",
		ActualChoice:    "I dyed my hair pink",
		AlternateChoice: "I kept it brown",
		Categories:      domain.DefaultCategories(),
	}

	require.NoError(t, SaveDecision(path, want))
	got, err := LoadDecision(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
