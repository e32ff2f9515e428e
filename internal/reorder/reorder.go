// Package reorder adjusts token order to the target language's canonical
// word order and adjective placement. It runs on already-translated tokens;
// part-of-speech tags carried over from the English pivot drive the moves.
package reorder

import (
	"fmt"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// NeedsReordering reports whether the two languages disagree on canonical
// word order or adjective placement.
func NeedsReordering(source, target domain.LanguageProfile) bool {
	if source.WordOrder != target.WordOrder {
		return true
	}
	return source.AdjectivePosition != target.AdjectivePosition
}

// Reorder repositions word tokens for the target language. Punctuation
// tokens keep their positions relative to the sentence (leading and trailing
// punctuation stays put), so attachment survives the move. Every applied
// move is reported as a word-order correction.
func Reorder(tokens []domain.Token, source, target domain.LanguageProfile) ([]domain.Token, []domain.CorrectionApplied) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	out := make([]domain.Token, len(tokens))
	copy(out, tokens)
	var corrections []domain.CorrectionApplied

	if source.WordOrder != target.WordOrder {
		before := domain.TokensToString(out)
		var moved bool
		switch target.WordOrder {
		case domain.WordOrderSOV:
			out, moved = moveVerbToEnd(out)
		case domain.WordOrderVSO:
			out, moved = moveVerbToFront(out)
		}
		if moved {
			corrections = append(corrections, domain.CorrectionApplied{
				Type:      domain.CorrectionWordOrder,
				Original:  before,
				Corrected: domain.TokensToString(out),
				Reason:    fmt.Sprintf("verb repositioned for %s word order", target.WordOrder),
			})
		}
	}

	if target.AdjectivePosition == domain.AdjectiveAfter && source.AdjectivePosition != domain.AdjectiveAfter {
		before := domain.TokensToString(out)
		var swapped bool
		out, swapped = swapAdjectiveNoun(out)
		if swapped {
			corrections = append(corrections, domain.CorrectionApplied{
				Type:      domain.CorrectionWordOrder,
				Original:  before,
				Corrected: domain.TokensToString(out),
				Reason:    "adjective moved after noun",
			})
		}
	}

	return out, corrections
}

// wordIndices returns the positions of word tokens.
func wordIndices(tokens []domain.Token) []int {
	var idx []int
	for i, t := range tokens {
		if t.IsWord {
			idx = append(idx, i)
		}
	}
	return idx
}

// moveVerbToEnd relocates the first non-auxiliary-position verb after the
// last word token. Trailing punctuation stays terminal.
func moveVerbToEnd(tokens []domain.Token) ([]domain.Token, bool) {
	words := wordIndices(tokens)
	if len(words) < 2 {
		return tokens, false
	}

	verbAt := -1
	for _, i := range words {
		if tokens[i].POS == domain.PartOfSpeechVerb {
			verbAt = i
			break
		}
	}
	last := words[len(words)-1]
	if verbAt < 0 || verbAt >= last {
		return tokens, false
	}

	return moveWord(tokens, verbAt, last), true
}

// moveVerbToFront relocates the first verb before the first word token.
func moveVerbToFront(tokens []domain.Token) ([]domain.Token, bool) {
	words := wordIndices(tokens)
	if len(words) < 2 {
		return tokens, false
	}

	verbAt := -1
	for _, i := range words {
		if tokens[i].POS == domain.PartOfSpeechVerb {
			verbAt = i
			break
		}
	}
	first := words[0]
	if verbAt < 0 || verbAt <= first {
		return tokens, false
	}

	return moveWord(tokens, verbAt, first), true
}

// moveWord extracts the word token at from and re-inserts it at the position
// currently occupied by the word token at to, shifting everything between.
// The separator run that preceded the moved word travels with it, keeping
// spacing intact.
func moveWord(tokens []domain.Token, from, to int) []domain.Token {
	word := tokens[from]

	rest := make([]domain.Token, 0, len(tokens)-1)
	rest = append(rest, tokens[:from]...)
	rest = append(rest, tokens[from+1:]...)

	// Recompute destination index in the reduced slice.
	dest := to
	if from < to {
		dest--
	}

	out := make([]domain.Token, 0, len(tokens))
	if from < to {
		// Moving right: place after the destination word.
		out = append(out, rest[:dest+1]...)
		out = append(out, spaceToken(), word)
		out = append(out, rest[dest+1:]...)
	} else {
		// Moving left: place before the destination word.
		out = append(out, rest[:dest]...)
		out = append(out, word, spaceToken())
		out = append(out, rest[dest:]...)
	}
	return normalizeSeparators(out)
}

// swapAdjectiveNoun swaps each adjective with the noun that immediately
// follows it (ignoring separator tokens in between).
func swapAdjectiveNoun(tokens []domain.Token) ([]domain.Token, bool) {
	words := wordIndices(tokens)
	swapped := false
	for k := 0; k+1 < len(words); k++ {
		i, j := words[k], words[k+1]
		if tokens[i].POS == domain.PartOfSpeechAdjective && tokens[j].POS == domain.PartOfSpeechNoun {
			tokens[i], tokens[j] = tokens[j], tokens[i]
			swapped = true
			k++ // the pair is settled; do not re-swap the moved noun
		}
	}
	return tokens, swapped
}

func spaceToken() domain.Token {
	return domain.Token{Text: " ", IsWord: false}
}

// normalizeSeparators collapses adjacent separator tokens left behind by a
// move into single tokens and drops separators stranded at the start.
func normalizeSeparators(tokens []domain.Token) []domain.Token {
	out := make([]domain.Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsWord && len(out) > 0 && !out[len(out)-1].IsWord {
			merged := out[len(out)-1]
			// Two adjacent spaces merge into one; anything else concatenates.
			if merged.Text == " " && t.Text == " " {
				continue
			}
			merged.Text += t.Text
			out[len(out)-1] = merged
			continue
		}
		if !t.IsWord && len(out) == 0 && t.Text == " " {
			continue
		}
		out = append(out, t)
	}
	return out
}
