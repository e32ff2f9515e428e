package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingobridge/translator-backend/internal/domain"
)

func TestLemma(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"went", "go"},
		{"ate", "eat"},
		{"children", "child"},
		{"cities", "city"},
		{"boxes", "box"},
		{"watches", "watch"},
		{"running", "run"},
		{"making", "make"},
		{"walked", "walk"},
		{"tried", "try"},
		{"cats", "cat"},
		{"glass", "glass"},
		{"house", "house"},
		{"Was", "be"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lemma(tt.word), "Lemma(%q)", tt.word)
	}
}

func TestStem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "happi", Stem("happiness"))
	assert.Equal(t, "move", Stem("movement"))
	assert.Equal(t, "walk", Stem("walked"))
}

func TestPluralizeSingularize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cats", Pluralize("cat"))
	assert.Equal(t, "children", Pluralize("child"))
	assert.Equal(t, "cat", Singularize("cats"))
	assert.Equal(t, "person", Singularize("people"))
}

func TestConjugateVerb(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base  string
		tense Tense
		want  string
	}{
		{"walk", TensePast, "walked"},
		{"go", TensePast, "went"},
		{"love", TensePast, "loved"},
		{"try", TensePast, "tried"},
		{"walk", TenseProgressive, "walking"},
		{"make", TenseProgressive, "making"},
		{"die", TenseProgressive, "dying"},
		{"see", TenseProgressive, "seeing"},
		{"walk", TensePresent, "walk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConjugateVerb(tt.base, tt.tense), "ConjugateVerb(%q, %s)", tt.base, tt.tense)
	}
}

func TestExtractFeatures(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures("cats", domain.PartOfSpeechNoun)
	assert.True(t, f.Plural)

	f = ExtractFeatures("cat", domain.PartOfSpeechNoun)
	assert.False(t, f.Plural)

	f = ExtractFeatures("they", domain.PartOfSpeechPronoun)
	assert.True(t, f.Plural)

	f = ExtractFeatures("walking", domain.PartOfSpeechVerb)
	assert.Equal(t, TenseProgressive, f.Tense)

	f = ExtractFeatures("walked", domain.PartOfSpeechVerb)
	assert.Equal(t, TensePast, f.Tense)

	f = ExtractFeatures("went", domain.PartOfSpeechVerb)
	assert.Equal(t, TensePast, f.Tense)

	f = ExtractFeatures("walk", domain.PartOfSpeechVerb)
	assert.Equal(t, TensePresent, f.Tense)
}
