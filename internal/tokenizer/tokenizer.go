// Package tokenizer splits text into word and non-word tokens with a
// lightweight part-of-speech guess, and chunks long input into sentences.
// Both operations are lossless: rejoining tokens or chunks reproduces the
// input byte for byte.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// Tokenize splits text into a sequence of tokens. Word tokens are maximal
// runs of letters/digits/apostrophes/hyphens; everything between them
// (whitespace, punctuation) becomes non-word tokens. The concatenation of
// all token texts equals the input exactly.
func Tokenize(text string) []domain.Token {
	if text == "" {
		return nil
	}

	var tokens []domain.Token
	var cur strings.Builder
	curIsWord := false
	started := false

	flush := func() {
		if !started || cur.Len() == 0 {
			return
		}
		tok := domain.Token{Text: cur.String(), IsWord: curIsWord}
		if curIsWord {
			tok.POS = GuessPOS(tok.Text)
		}
		tokens = append(tokens, tok)
		cur.Reset()
	}

	for _, r := range text {
		isWord := isWordRune(r)
		if started && isWord != curIsWord {
			flush()
		}
		cur.WriteRune(r)
		curIsWord = isWord
		started = true
	}
	flush()

	return tokens
}

// isWordRune reports whether the rune belongs inside a word token.
// Apostrophes and hyphens join word parts ("don't", "well-known").
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}

// GuessPOS assigns a heuristic part-of-speech tag from closed word classes
// and common English suffixes. It is a hint for morphology and reordering,
// not a tagger.
func GuessPOS(word string) domain.PartOfSpeech {
	w := strings.ToLower(word)

	if pos, ok := closedClass[w]; ok {
		return pos
	}
	if isNumeric(w) {
		return domain.PartOfSpeechNumber
	}

	switch {
	case strings.HasSuffix(w, "ly") && len(w) > 3:
		return domain.PartOfSpeechAdverb
	case hasAnySuffix(w, "ing", "ed", "ize", "ise", "ify") && len(w) > 4:
		return domain.PartOfSpeechVerb
	case hasAnySuffix(w, "ful", "less", "ous", "ive", "able", "ible", "al", "ic") && len(w) > 4:
		return domain.PartOfSpeechAdjective
	case hasAnySuffix(w, "tion", "sion", "ment", "ness", "ship", "hood", "er", "or", "ist") && len(w) > 4:
		return domain.PartOfSpeechNoun
	}

	return domain.PartOfSpeechNoun
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func isNumeric(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return w != "" && w != "-"
}

// closedClass tags function words whose class never depends on context.
var closedClass = map[string]domain.PartOfSpeech{
	"i": domain.PartOfSpeechPronoun, "you": domain.PartOfSpeechPronoun,
	"he": domain.PartOfSpeechPronoun, "she": domain.PartOfSpeechPronoun,
	"it": domain.PartOfSpeechPronoun, "we": domain.PartOfSpeechPronoun,
	"they": domain.PartOfSpeechPronoun, "me": domain.PartOfSpeechPronoun,
	"him": domain.PartOfSpeechPronoun, "her": domain.PartOfSpeechPronoun,
	"us": domain.PartOfSpeechPronoun, "them": domain.PartOfSpeechPronoun,
	"my": domain.PartOfSpeechPronoun, "your": domain.PartOfSpeechPronoun,
	"his": domain.PartOfSpeechPronoun, "its": domain.PartOfSpeechPronoun,
	"our": domain.PartOfSpeechPronoun, "their": domain.PartOfSpeechPronoun,

	"a": domain.PartOfSpeechArticle, "an": domain.PartOfSpeechArticle,
	"the": domain.PartOfSpeechArticle,

	"in": domain.PartOfSpeechPreposition, "on": domain.PartOfSpeechPreposition,
	"at": domain.PartOfSpeechPreposition, "by": domain.PartOfSpeechPreposition,
	"to": domain.PartOfSpeechPreposition, "of": domain.PartOfSpeechPreposition,
	"for": domain.PartOfSpeechPreposition, "with": domain.PartOfSpeechPreposition,
	"from": domain.PartOfSpeechPreposition, "into": domain.PartOfSpeechPreposition,
	"under": domain.PartOfSpeechPreposition, "over": domain.PartOfSpeechPreposition,

	"and": domain.PartOfSpeechConjunction, "or": domain.PartOfSpeechConjunction,
	"but": domain.PartOfSpeechConjunction, "nor": domain.PartOfSpeechConjunction,
	"so": domain.PartOfSpeechConjunction, "yet": domain.PartOfSpeechConjunction,
	"because": domain.PartOfSpeechConjunction, "if": domain.PartOfSpeechConjunction,
	"while": domain.PartOfSpeechConjunction, "although": domain.PartOfSpeechConjunction,

	"is": domain.PartOfSpeechVerb, "am": domain.PartOfSpeechVerb,
	"are": domain.PartOfSpeechVerb, "was": domain.PartOfSpeechVerb,
	"were": domain.PartOfSpeechVerb, "be": domain.PartOfSpeechVerb,
	"been": domain.PartOfSpeechVerb, "being": domain.PartOfSpeechVerb,
	"have": domain.PartOfSpeechVerb, "has": domain.PartOfSpeechVerb,
	"had": domain.PartOfSpeechVerb, "do": domain.PartOfSpeechVerb,
	"does": domain.PartOfSpeechVerb, "did": domain.PartOfSpeechVerb,
	"will": domain.PartOfSpeechVerb, "would": domain.PartOfSpeechVerb,
	"can": domain.PartOfSpeechVerb, "could": domain.PartOfSpeechVerb,
	"go": domain.PartOfSpeechVerb, "went": domain.PartOfSpeechVerb,
	"eat": domain.PartOfSpeechVerb, "ate": domain.PartOfSpeechVerb,
	"see": domain.PartOfSpeechVerb, "saw": domain.PartOfSpeechVerb,
	"like": domain.PartOfSpeechVerb, "love": domain.PartOfSpeechVerb,
	"want": domain.PartOfSpeechVerb, "know": domain.PartOfSpeechVerb,
	"sat": domain.PartOfSpeechVerb, "watched": domain.PartOfSpeechVerb,

	"very": domain.PartOfSpeechAdverb, "not": domain.PartOfSpeechAdverb,
	"always": domain.PartOfSpeechAdverb, "never": domain.PartOfSpeechAdverb,
	"often": domain.PartOfSpeechAdverb, "here": domain.PartOfSpeechAdverb,
	"there": domain.PartOfSpeechAdverb, "now": domain.PartOfSpeechAdverb,

	"good": domain.PartOfSpeechAdjective, "bad": domain.PartOfSpeechAdjective,
	"big": domain.PartOfSpeechAdjective, "small": domain.PartOfSpeechAdjective,
	"new": domain.PartOfSpeechAdjective, "old": domain.PartOfSpeechAdjective,
	"red": domain.PartOfSpeechAdjective, "blue": domain.PartOfSpeechAdjective,
	"happy": domain.PartOfSpeechAdjective, "beautiful": domain.PartOfSpeechAdjective,
}
