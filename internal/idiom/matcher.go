// Package idiom replaces idiomatic phrases with their stored translations
// before word-level lookup runs. Idiom meaning is non-compositional, so a
// matched span is swapped as a unit.
//
// Match precedence is deterministic: longer normalized keys are tried first,
// equal lengths in lexicographic key order. Each text region is replaced at
// most once.
package idiom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// Match is one idiom replacement performed on the text.
type Match struct {
	Idiom       domain.IdiomEntry
	Translation string
}

// Replace scans text for idioms and substitutes target-language translations.
// It returns the rewritten text, the audit-trail corrections, and the list of
// matched idiom phrases. Idioms lacking a translation for the target language
// are skipped.
func Replace(text, targetColumn string, idioms []domain.IdiomEntry) (string, []domain.CorrectionApplied, []string) {
	if text == "" || len(idioms) == 0 {
		return text, nil, nil
	}

	ordered := make([]domain.IdiomEntry, len(idioms))
	copy(ordered, idioms)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].NormalizedPhrase, ordered[j].NormalizedPhrase
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	result := text
	var corrections []domain.CorrectionApplied
	var found []string

	for _, entry := range ordered {
		key := entry.NormalizedPhrase
		if key == "" {
			continue
		}
		translation, ok := entry.Translations[targetColumn]
		if !ok || translation == "" {
			continue
		}

		idx := indexFold(result, key)
		if idx < 0 {
			continue
		}

		original := result[idx : idx+len(key)]
		result = result[:idx] + translation + result[idx+len(key):]
		corrections = append(corrections, domain.CorrectionApplied{
			Type:      domain.CorrectionIdiom,
			Original:  original,
			Corrected: translation,
			Reason:    fmt.Sprintf("idiomatic phrase %q translated as a unit", entry.Phrase),
		})
		found = append(found, entry.Phrase)
	}

	return result, corrections, found
}

// indexFold is a case-insensitive substring search that reports the byte
// offset in the original (unfolded) string. The idiom key is already
// lowercase, so only the haystack needs folding; ASCII-range folding keeps
// byte offsets aligned for the replacement splice.
func indexFold(s, lowerKey string) int {
	return strings.Index(asciiLower(s), lowerKey)
}

func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
