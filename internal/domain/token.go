package domain

// PartOfSpeech is the lightweight tag the tokenizer guesses for a word.
// It is a heuristic hint for morphology and reordering, not a full tagger.
type PartOfSpeech string

const (
	PartOfSpeechNoun        PartOfSpeech = "NOUN"
	PartOfSpeechVerb        PartOfSpeech = "VERB"
	PartOfSpeechAdjective   PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb      PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun     PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction PartOfSpeech = "CONJUNCTION"
	PartOfSpeechArticle     PartOfSpeech = "ARTICLE"
	PartOfSpeechNumber      PartOfSpeech = "NUMBER"
	PartOfSpeechOther       PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

// Token is one unit of tokenized text. IsWord distinguishes word tokens from
// punctuation/whitespace runs. The token sequence must reconstruct the
// original string losslessly when concatenated in order.
type Token struct {
	Text   string
	IsWord bool
	POS    PartOfSpeech
}

// TokensToString rejoins a token sequence into the exact original text.
func TokensToString(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range tokens {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
