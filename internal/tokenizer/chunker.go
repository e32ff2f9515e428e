package tokenizer

import "strings"

// sentence terminators recognized by the chunker, including Devanagari
// danda and CJK/Arabic full stops and question marks.
const sentenceEnders = ".!?。！？؟।"

// ChunkSentences splits text into sentence-level chunks for independent
// stage processing. Each chunk keeps its terminating punctuation and any
// following whitespace, so Reconstruct(ChunkSentences(t)) == t exactly.
func ChunkSentences(text string) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	var cur strings.Builder
	inTrailer := false // consuming terminators + whitespace after a sentence

	for _, r := range text {
		isEnder := strings.ContainsRune(sentenceEnders, r)
		isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r'

		if inTrailer && !isEnder && !isSpace {
			chunks = append(chunks, cur.String())
			cur.Reset()
			inTrailer = false
		}
		cur.WriteRune(r)
		if isEnder {
			inTrailer = true
		}
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}

	return chunks
}

// Reconstruct rejoins sentence chunks produced by ChunkSentences.
func Reconstruct(chunks []string) string {
	return strings.Join(chunks, "")
}
