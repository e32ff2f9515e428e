// Package postprocess tidies translated text: whitespace, punctuation
// spacing, and sentence capitalization. Clean is idempotent, so the
// pipeline may run it after every late-stage correction without drift.
package postprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// sentenceEnders are the terminators that start a new sentence for
// capitalization purposes. Mirrors the chunker's set.
const sentenceEnders = ".!?。！？؟।"

// noSpaceBefore is punctuation that must hug the preceding word.
const noSpaceBefore = ".,!?;:)]}"

// spaceAfter is punctuation that needs a following space when a letter or
// digit comes next.
const spaceAfter = ".,!?;:"

// Clean normalizes spacing and capitalization in translated text. Scripts
// without a case distinction pass through capitalization untouched because
// unicode.ToUpper is the identity for them.
func Clean(text string, profile domain.LanguageProfile) string {
	if text == "" {
		return text
	}

	out := collapseWhitespace(text)
	out = fixPunctuationSpacing(out)
	out = capitalizeSentences(out)
	out = appendEndParticle(out, profile)
	return strings.TrimSpace(out)
}

// collapseWhitespace folds every whitespace run into a single space.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// fixPunctuationSpacing removes spaces that drift in front of closing
// punctuation during token reassembly and inserts the space a terminator
// needs before the next word.
func fixPunctuationSpacing(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == ' ' && i+1 < len(runes) && strings.ContainsRune(noSpaceBefore, runes[i+1]) {
			continue
		}

		b.WriteRune(r)

		if strings.ContainsRune(spaceAfter, r) && i+1 < len(runes) {
			next := runes[i+1]
			if isWordRune(next) {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// capitalizeSentences upper-cases the first letter of the text and of every
// sentence that follows a terminator.
func capitalizeSentences(s string) string {
	runes := []rune(s)
	capNext := true
	for i, r := range runes {
		if strings.ContainsRune(sentenceEnders, r) {
			capNext = true
			continue
		}
		if !unicode.IsLetter(r) {
			continue
		}
		if capNext {
			runes[i] = unicode.ToUpper(r)
		}
		capNext = false
	}
	return string(runes)
}

// appendEndParticle adds the language's sentence-end particle when the text
// ends without any terminator. Languages without a particle are unaffected.
func appendEndParticle(s string, profile domain.LanguageProfile) string {
	if profile.SentenceEndParticle == "" || s == "" {
		return s
	}
	trimmed := strings.TrimRight(s, " ")
	if trimmed == "" {
		return s
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if strings.ContainsRune(sentenceEnders, last) {
		return s
	}
	if strings.HasSuffix(trimmed, profile.SentenceEndParticle) {
		return s
	}
	return trimmed + profile.SentenceEndParticle
}
