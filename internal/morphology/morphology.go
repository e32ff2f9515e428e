// Package morphology provides lemma, stem, and inflection helpers for the
// English pivot form. The lemma is the secondary dictionary-lookup key used
// when a surface form misses; the rest supports light output shaping.
// Everything here operates on English text, never on target-script text.
package morphology

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// Tense classifies a verb form detected by ExtractFeatures.
type Tense string

const (
	TensePresent     Tense = "PRESENT"
	TensePast        Tense = "PAST"
	TenseProgressive Tense = "PROGRESSIVE"
)

// Features are the light morphological signals extracted from a word form.
type Features struct {
	Plural bool
	Tense  Tense
}

// irregularLemmas maps irregular surface forms straight to their base form.
var irregularLemmas = map[string]string{
	"went": "go", "gone": "go", "ate": "eat", "eaten": "eat",
	"saw": "see", "seen": "see", "was": "be", "were": "be",
	"is": "be", "are": "be", "am": "be", "been": "be",
	"had": "have", "has": "have", "did": "do", "does": "do",
	"took": "take", "taken": "take", "gave": "give", "given": "give",
	"came": "come", "made": "make", "said": "say", "told": "tell",
	"knew": "know", "known": "know", "thought": "think", "got": "get",
	"found": "find", "felt": "feel", "left": "leave", "kept": "keep",
	"brought": "bring", "bought": "buy", "spoke": "speak", "spoken": "speak",
	"wrote": "write", "written": "write", "ran": "run", "sat": "sit",
	"stood": "stand", "met": "meet", "paid": "pay", "sent": "send",
	"built": "build", "held": "hold", "heard": "hear", "meant": "mean",

	"children": "child", "men": "man", "women": "woman", "people": "person",
	"feet": "foot", "teeth": "tooth", "mice": "mouse", "geese": "goose",

	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
}

// Lemma returns the canonical base form of an English word. Irregular forms
// resolve through a lookup table; regular forms strip inflectional suffixes.
func Lemma(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}
	if base, ok := irregularLemmas[w]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "xes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		stem := w[:len(w)-3]
		return undouble(stem)
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		stem := w[:len(w)-2]
		return undouble(stem)
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3:
		return w[:len(w)-1]
	}
	return w
}

// undouble drops a doubled final consonant left by suffix stripping
// (running → runn → run) and restores a dropped silent e (making → mak → make).
func undouble(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	if n >= 2 && isConsonant(stem[n-1]) && !isConsonant(stem[n-2]) && needsSilentE(stem) {
		return stem + "e"
	}
	return stem
}

// needsSilentE guesses whether the stem lost a silent e. The check covers
// common CVC+e patterns (make, take, write) while leaving short verbs alone.
func needsSilentE(stem string) bool {
	switch stem[len(stem)-1] {
	case 'k', 't', 'v', 'z', 'c', 'g':
		return len(stem) >= 3
	}
	return false
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return b >= 'a' && b <= 'z'
}

// Stem returns a crude search stem: the lemma with common derivational
// suffixes removed.
func Stem(word string) string {
	w := Lemma(word)
	for _, suffix := range []string{"ness", "ment", "tion", "sion", "ful", "less", "able", "ible"} {
		if strings.HasSuffix(w, suffix) && len(w) > len(suffix)+2 {
			return w[:len(w)-len(suffix)]
		}
	}
	return w
}

// Pluralize returns the plural form of an English noun.
func Pluralize(word string) string {
	return inflection.Plural(word)
}

// Singularize returns the singular form of an English noun.
func Singularize(word string) string {
	return inflection.Singular(word)
}

// ConjugateVerb shapes an English verb base form for the requested tense.
func ConjugateVerb(base string, tense Tense) string {
	w := strings.ToLower(strings.TrimSpace(base))
	if w == "" {
		return w
	}

	switch tense {
	case TensePast:
		if past, ok := irregularPast[w]; ok {
			return past
		}
		switch {
		case strings.HasSuffix(w, "e"):
			return w + "d"
		case strings.HasSuffix(w, "y") && len(w) > 1 && isConsonant(w[len(w)-2]):
			return w[:len(w)-1] + "ied"
		default:
			return w + "ed"
		}
	case TenseProgressive:
		switch {
		case strings.HasSuffix(w, "ie"):
			return w[:len(w)-2] + "ying"
		case strings.HasSuffix(w, "e") && w != "be" && !strings.HasSuffix(w, "ee"):
			return w[:len(w)-1] + "ing"
		default:
			return w + "ing"
		}
	default:
		return w
	}
}

var irregularPast = map[string]string{
	"go": "went", "eat": "ate", "see": "saw", "be": "was", "have": "had",
	"do": "did", "take": "took", "give": "gave", "come": "came",
	"make": "made", "say": "said", "know": "knew", "think": "thought",
	"get": "got", "find": "found", "run": "ran", "write": "wrote",
	"speak": "spoke", "buy": "bought", "bring": "brought",
}

// ExtractFeatures detects plurality and tense from a word form given its
// part-of-speech hint.
func ExtractFeatures(word string, pos domain.PartOfSpeech) Features {
	w := strings.ToLower(strings.TrimSpace(word))
	f := Features{Tense: TensePresent}
	if w == "" {
		return f
	}

	if pos == domain.PartOfSpeechNoun || pos == domain.PartOfSpeechPronoun {
		if w != Singularize(w) {
			f.Plural = true
		}
		switch w {
		case "we", "they", "us", "them", "these", "those":
			f.Plural = true
		}
	}

	if pos == domain.PartOfSpeechVerb {
		switch {
		case strings.HasSuffix(w, "ing"):
			f.Tense = TenseProgressive
		case strings.HasSuffix(w, "ed"):
			f.Tense = TensePast
		default:
			if base, ok := irregularLemmas[w]; ok && irregularPast[base] == w {
				f.Tense = TensePast
			}
		}
	}

	return f
}
