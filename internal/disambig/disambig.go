// Package disambig selects the intended sense of an ambiguous word from its
// surrounding context.
//
// Scoring is a deliberately simple, unnormalized heuristic: one point per
// context clue found in the window, plus a flat domain bonus. Senses with
// more registered clues can outscore more relevant ones purely on volume;
// the constants here are tuning knobs, not a validated model.
package disambig

import (
	"strings"

	"github.com/lingobridge/translator-backend/internal/domain"
)

const (
	domainBonus    = 2
	baseConfidence = 0.5
	perClueBoost   = 0.1
	maxConfidence  = 0.95
)

// Context is the evidence window around an ambiguous word.
type Context struct {
	// SurroundingWords is the ±5-token window around the word.
	SurroundingWords []string
	// Sentence is the full sentence containing the word.
	Sentence string
	// Domain optionally names a topic whose keyword set biases scoring.
	Domain string
}

// domainKeywords maps a domain name to the keywords that trigger the flat
// scoring bonus when they intersect a sense's clue list.
var domainKeywords = map[string][]string{
	"finance":    {"money", "account", "loan", "deposit", "interest", "credit"},
	"nature":     {"river", "water", "tree", "fish", "bird", "forest"},
	"sports":     {"ball", "team", "game", "score", "play", "match"},
	"medicine":   {"doctor", "patient", "hospital", "treatment", "symptom"},
	"technology": {"computer", "software", "network", "data", "server"},
	"food":       {"eat", "cook", "meal", "taste", "kitchen", "recipe"},
}

// Disambiguate picks the best-matching sense for the context.
//
// Each sense scores one point per context clue found (case-insensitive
// substring) in the concatenated surrounding words and sentence, plus 2 when
// the supplied domain's keyword set intersects the sense's clues. The highest
// score wins; ties resolve to the earlier-registered sense. A zero top score
// falls back to the first registered sense at confidence 0.5; otherwise
// confidence is min(0.95, 0.5 + 0.1×score).
func Disambiguate(entry domain.WordSenseEntry, ctx Context) (domain.WordSense, float64) {
	if len(entry.Senses) == 0 {
		return domain.WordSense{}, 0
	}
	if len(entry.Senses) == 1 {
		return entry.Senses[0], maxConfidence
	}

	haystack := strings.ToLower(strings.Join(ctx.SurroundingWords, " ") + " " + ctx.Sentence)
	keywords := domainKeywords[strings.ToLower(ctx.Domain)]

	best := 0
	bestIdx := 0
	for i, sense := range entry.Senses {
		score := scoreSense(sense, haystack, keywords)
		if score > best {
			best = score
			bestIdx = i
		}
	}

	if best == 0 {
		return entry.Senses[0], baseConfidence
	}

	conf := baseConfidence + perClueBoost*float64(best)
	if conf > maxConfidence {
		conf = maxConfidence
	}
	return entry.Senses[bestIdx], conf
}

func scoreSense(sense domain.WordSense, haystack string, domainWords []string) int {
	score := 0
	for _, clue := range sense.ContextClues {
		if clue == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(clue)) {
			score++
		}
	}

	if len(domainWords) > 0 && cluesIntersect(sense.ContextClues, domainWords) {
		score += domainBonus
	}
	return score
}

func cluesIntersect(clues, keywords []string) bool {
	for _, c := range clues {
		for _, k := range keywords {
			if strings.EqualFold(c, k) {
				return true
			}
		}
	}
	return false
}

// TranslationForSense returns the sense's translation for the target column,
// or "" and false when the sense has none. The caller keeps the original
// word and records it as unknown in that case.
func TranslationForSense(sense domain.WordSense, targetColumn string) (string, bool) {
	t, ok := sense.Translations[targetColumn]
	if !ok || t == "" {
		return "", false
	}
	return t, true
}
