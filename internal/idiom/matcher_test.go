package idiom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingobridge/translator-backend/internal/domain"
)

func testIdioms() []domain.IdiomEntry {
	return []domain.IdiomEntry{
		{
			Phrase:           "break a leg",
			NormalizedPhrase: "break a leg",
			Meaning:          "good luck",
			Translations:     map[string]string{"spanish": "mucha suerte", "french": "merde"},
		},
		{
			Phrase:           "piece of cake",
			NormalizedPhrase: "piece of cake",
			Meaning:          "very easy",
			Translations:     map[string]string{"spanish": "pan comido"},
		},
		{
			Phrase:           "a leg",
			NormalizedPhrase: "a leg",
			Meaning:          "shorter overlapping key",
			Translations:     map[string]string{"spanish": "una pierna"},
		},
	}
}

func TestReplace_Basic(t *testing.T) {
	t.Parallel()

	text, corrections, found := Replace("that was a piece of cake", "spanish", testIdioms())
	assert.Equal(t, "that was a pan comido", text)
	require.Len(t, corrections, 1)
	assert.Equal(t, domain.CorrectionIdiom, corrections[0].Type)
	assert.Equal(t, "piece of cake", corrections[0].Original)
	assert.Equal(t, "pan comido", corrections[0].Corrected)
	assert.Equal(t, []string{"piece of cake"}, found)
}

func TestReplace_LongestMatchWins(t *testing.T) {
	t.Parallel()

	// "break a leg" contains "a leg"; the longer key must win the span.
	text, _, found := Replace("break a leg tonight", "spanish", testIdioms())
	assert.Equal(t, "mucha suerte tonight", text)
	assert.Equal(t, []string{"break a leg"}, found)
}

func TestReplace_CaseInsensitive(t *testing.T) {
	t.Parallel()

	text, corrections, _ := Replace("Break A Leg!", "spanish", testIdioms())
	assert.Equal(t, "mucha suerte!", text)
	require.Len(t, corrections, 1)
	assert.Equal(t, "Break A Leg", corrections[0].Original)
}

func TestReplace_MissingTargetTranslation(t *testing.T) {
	t.Parallel()

	// "piece of cake" has no french column; text stays untouched.
	text, corrections, found := Replace("piece of cake", "french", testIdioms())
	assert.Equal(t, "piece of cake", text)
	assert.Empty(t, corrections)
	assert.Empty(t, found)
}

func TestReplace_NoIdioms(t *testing.T) {
	t.Parallel()

	text, corrections, found := Replace("plain text here", "spanish", testIdioms())
	assert.Equal(t, "plain text here", text)
	assert.Empty(t, corrections)
	assert.Empty(t, found)
}

func TestReplace_EmptyInputs(t *testing.T) {
	t.Parallel()

	text, _, _ := Replace("", "spanish", testIdioms())
	assert.Equal(t, "", text)

	text, _, _ = Replace("break a leg", "spanish", nil)
	assert.Equal(t, "break a leg", text)
}

func TestReplace_MultipleIdioms(t *testing.T) {
	t.Parallel()

	text, corrections, found := Replace("break a leg, it is a piece of cake", "spanish", testIdioms())
	assert.Equal(t, "mucha suerte, it is a pan comido", text)
	assert.Len(t, corrections, 2)
	assert.ElementsMatch(t, []string{"break a leg", "piece of cake"}, found)
}
