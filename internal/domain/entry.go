package domain

// PhraseEntry maps one canonical English phrase to its translation per
// target-language column. One phrase has at most one translation per language.
type PhraseEntry struct {
	Key          string
	Translations map[string]string
}

// TranslationFor returns the stored translation for a language column,
// or "" and false when the column is absent or empty.
func (p PhraseEntry) TranslationFor(lang string) (string, bool) {
	t, ok := p.Translations[lang]
	if !ok || t == "" {
		return "", false
	}
	return t, true
}

// IdiomEntry is a non-compositional multi-word phrase looked up as a unit.
// NormalizedPhrase is the lookup key (lowercased, space-collapsed).
type IdiomEntry struct {
	Phrase           string
	NormalizedPhrase string
	Meaning          string
	Translations     map[string]string
	Category         string
	Register         string
}

// WordSense is one distinct meaning of an ambiguous word form.
type WordSense struct {
	SenseID      string
	Meaning      string
	ContextClues []string
	Translations map[string]string
}

// WordSenseEntry groups all registered senses of a word, in registration
// order. Order matters: ties and zero-score disambiguation default to the
// first registered sense.
type WordSenseEntry struct {
	Word   string
	Senses []WordSense
}

// IsAmbiguous reports whether the word carries two or more senses.
func (e WordSenseEntry) IsAmbiguous() bool { return len(e.Senses) >= 2 }

// GrammarRule is a per-language grammar adjustment row (e.g. a particle or
// article rule) applied during output shaping.
type GrammarRule struct {
	Language    string
	RuleType    string
	Pattern     string
	Replacement string
	Description string
}
