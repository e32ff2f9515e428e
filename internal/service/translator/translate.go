package translator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lingobridge/translator-backend/internal/disambig"
	"github.com/lingobridge/translator-backend/internal/domain"
	"github.com/lingobridge/translator-backend/internal/idiom"
	"github.com/lingobridge/translator-backend/internal/morphology"
	"github.com/lingobridge/translator-backend/internal/postprocess"
	"github.com/lingobridge/translator-backend/internal/reorder"
	"github.com/lingobridge/translator-backend/internal/resultcache"
	"github.com/lingobridge/translator-backend/internal/tokenizer"
)

const (
	// phraseHitConfidence applies when the whole input matches a stored
	// phrase, short-circuiting word-level scoring.
	phraseHitConfidence = 0.95
	// wordScoreWeight scales the translated/total word ratio.
	wordScoreWeight = 0.8
	// idiomBonus is added once when at least one idiom was replaced.
	idiomBonus = 0.3
	// fallbackConfidence is the fixed trusted score for a successful
	// remote fallback, regardless of the pre-fallback score.
	fallbackConfidence = 0.85
	// contextWindow is the number of word tokens on each side fed to the
	// disambiguator.
	contextWindow = 5
)

// Translate runs the full pipeline for one text and language pair. It never
// returns an error; degraded stages surface as lower confidence and
// populated UnknownWords.
func (s *Service) Translate(ctx context.Context, text, source, target string) domain.TranslationResult {
	src := s.langs.Normalize(source)
	tgt := s.langs.Normalize(target)

	result := domain.TranslationResult{
		Text:         text,
		OriginalText: text,
		Source:       src,
		Target:       tgt,
		Method:       domain.MethodPassthrough,
	}

	if strings.TrimSpace(text) == "" {
		result.Confidence = 1
		return result
	}

	key := resultcache.Key(src, tgt, text)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	if s.langs.IsSame(src, tgt) {
		result = s.sameLanguage(text, src, tgt)
		s.cache.Set(key, result)
		return result
	}

	englishCore := s.toEnglishPivot(ctx, text, src, &result)
	s.runPipeline(ctx, englishCore, tgt, &result)

	if s.fb != nil && s.fbCfg.Enabled && result.Confidence < s.fbCfg.ConfidenceThreshold {
		s.applyFallback(ctx, text, src, tgt, &result)
	}

	if converted := s.translit.ToNative(result.Text, tgt); converted != result.Text {
		result.Text = converted
	}

	result.Tokens = tokenizer.Tokenize(result.Text)
	result.Confidence = domain.ClampConfidence(result.Confidence)
	s.cache.Set(key, result)

	s.log.DebugContext(ctx, "translation served",
		slog.String("source", src),
		slog.String("target", tgt),
		slog.String("method", result.Method.String()),
		slog.Float64("confidence", result.Confidence),
	)
	return result
}

// sameLanguage is the fast path: script conversion only, full confidence,
// dictionary stages skipped entirely.
func (s *Service) sameLanguage(text, src, tgt string) domain.TranslationResult {
	result := domain.TranslationResult{
		Text:         text,
		OriginalText: text,
		Source:       src,
		Target:       tgt,
		Method:       domain.MethodPassthrough,
		Confidence:   1,
	}

	if converted := s.translit.ToNative(text, tgt); converted != text {
		result.Text = converted
		result.Method = domain.MethodTransliterated
		result.IsTranslated = true
	}
	result.Tokens = tokenizer.Tokenize(result.Text)
	return result
}

// toEnglishPivot maps non-English input onto its English-pivot form via
// reverse dictionary lookup. Words without a reverse entry pass through
// unchanged and are recorded as unknown.
func (s *Service) toEnglishPivot(ctx context.Context, text, src string, result *domain.TranslationResult) string {
	if src == englishLang {
		return text
	}

	col := s.langs.Column(src)

	if key, ok := s.dict.ReverseLookupPhrase(ctx, text, col); ok {
		return key
	}

	latin := s.translit.ToLatin(text, src)
	if latin != text {
		if key, ok := s.dict.ReverseLookupPhrase(ctx, latin, col); ok {
			return key
		}
	}

	tokens := tokenizer.Tokenize(latin)
	for i, tok := range tokens {
		if !tok.IsWord {
			continue
		}
		if key, ok := s.dict.ReverseLookupPhrase(ctx, tok.Text, col); ok {
			tokens[i].Text = key
			continue
		}
		result.UnknownWords = append(result.UnknownWords, tok.Text)
	}
	return domain.TokensToString(tokens)
}

// runPipeline translates English-pivot text into the target language,
// filling Text, Method, Confidence and the audit fields on result.
func (s *Service) runPipeline(ctx context.Context, text, tgt string, result *domain.TranslationResult) {
	col := s.langs.Column(tgt)
	srcProfile := s.langs.ProfileOrDefault(englishLang)
	tgtProfile := s.langs.ProfileOrDefault(tgt)

	working := text
	idiomApplied := false

	if s.cfg.EnableIdiomsLookup {
		replaced, corrections, found := idiom.Replace(working, col, s.dict.Idioms(ctx))
		if len(found) > 0 {
			working = replaced
			result.Corrections = append(result.Corrections, corrections...)
			result.IdiomsFound = append(result.IdiomsFound, found...)
			idiomApplied = true
		}
	}

	// Whole-input phrase match short-circuits word-level scoring.
	if translated, ok := s.dict.LookupPhrase(ctx, working, col); ok {
		result.Text = translated
		result.Method = domain.MethodDictionary
		result.Confidence = phraseHitConfidence
		result.IsTranslated = true
		if s.cfg.EnablePostProcessing {
			result.Text = postprocess.Clean(result.Text, tgtProfile)
		}
		return
	}

	chunks := tokenizer.ChunkSentences(working)
	outChunks := make([]string, 0, len(chunks))
	totalWords, translatedWords := 0, 0
	for _, chunk := range chunks {
		out, total, translated := s.translateChunk(ctx, chunk, col, srcProfile, tgtProfile, result)
		outChunks = append(outChunks, out)
		totalWords += total
		translatedWords += translated
	}
	result.Text = tokenizer.Reconstruct(outChunks)

	postProcessed := false
	if s.cfg.EnablePostProcessing {
		cleaned := postprocess.Clean(result.Text, tgtProfile)
		if cleaned != result.Text {
			result.Text = cleaned
			postProcessed = true
		}
	}

	conf := 0.0
	if totalWords > 0 {
		conf = float64(translatedWords) / float64(totalWords) * wordScoreWeight
	}
	if idiomApplied {
		conf += idiomBonus
	}
	result.Confidence = domain.ClampConfidence(conf)
	result.IsTranslated = translatedWords > 0 || idiomApplied

	// Method reflects the strongest meaning-bearing stage that acted.
	switch {
	case result.WasDisambiguated:
		result.Method = domain.MethodDisambiguated
	case result.WasReordered:
		result.Method = domain.MethodReordered
	case idiomApplied:
		result.Method = domain.MethodIdiom
	case translatedWords > 0:
		result.Method = domain.MethodDictionary
	case postProcessed:
		result.Method = domain.MethodPostProcessed
	}
}

// translateChunk translates one sentence chunk word by word, then applies
// reordering and grammar rules. Returns the translated chunk and its
// total/translated word counts.
func (s *Service) translateChunk(ctx context.Context, chunk, col string, srcProfile, tgtProfile domain.LanguageProfile, result *domain.TranslationResult) (string, int, int) {
	tokens := tokenizer.Tokenize(chunk)

	// Original word list, captured before in-place replacement, drives the
	// disambiguation context windows.
	var wordIdx []int
	var words []string
	for i, tok := range tokens {
		if tok.IsWord {
			wordIdx = append(wordIdx, i)
			words = append(words, tok.Text)
		}
	}

	translated := 0
	for wi, ti := range wordIdx {
		word := tokens[ti].Text
		lower := strings.ToLower(word)

		if s.cfg.EnableDisambiguation {
			if entry, ok := s.dict.WordSenses(ctx, lower); ok && entry.IsAmbiguous() {
				sense, senseConf := disambig.Disambiguate(entry, disambig.Context{
					SurroundingWords: windowAround(words, wi, contextWindow),
					Sentence:         chunk,
				})
				if tr, ok := disambig.TranslationForSense(sense, col); ok {
					tokens[ti].Text = tr
					translated++
					result.WasDisambiguated = true
					result.Corrections = append(result.Corrections, domain.CorrectionApplied{
						Type:      domain.CorrectionWordSense,
						Original:  word,
						Corrected: tr,
						Reason:    fmt.Sprintf("sense %s selected (score confidence %.2f)", sense.SenseID, senseConf),
					})
					continue
				}
			}
		}

		if tr, ok := s.lookupWord(ctx, lower, col); ok {
			tokens[ti].Text = tr
			translated++
			continue
		}

		result.UnknownWords = append(result.UnknownWords, word)
	}

	if s.cfg.EnableReordering && reorder.NeedsReordering(srcProfile, tgtProfile) {
		reordered, corrections := reorder.Reorder(tokens, srcProfile, tgtProfile)
		if len(corrections) > 0 {
			tokens = reordered
			result.WasReordered = true
			result.Corrections = append(result.Corrections, corrections...)
		}
	}

	out := domain.TokensToString(tokens)
	out = s.applyGrammarRules(ctx, out, col, result)
	return out, len(wordIdx), translated
}

// lookupWord resolves a single word: surface form first, lemma retry when
// morphology is enabled, then a single-sense word-sense entry.
func (s *Service) lookupWord(ctx context.Context, word, col string) (string, bool) {
	if tr, ok := s.dict.LookupPhrase(ctx, word, col); ok {
		return tr, true
	}

	if s.cfg.EnableMorphology {
		if lemma := morphology.Lemma(word); lemma != word {
			if tr, ok := s.dict.LookupPhrase(ctx, lemma, col); ok {
				return tr, true
			}
		}
	}

	if entry, ok := s.dict.WordSenses(ctx, word); ok && len(entry.Senses) > 0 && !entry.IsAmbiguous() {
		if tr, ok := disambig.TranslationForSense(entry.Senses[0], col); ok {
			return tr, true
		}
	}

	return "", false
}

// applyGrammarRules applies the target language's pattern substitutions.
func (s *Service) applyGrammarRules(ctx context.Context, text, col string, result *domain.TranslationResult) string {
	for _, rule := range s.dict.GrammarRules(ctx, col) {
		if rule.Pattern == "" || rule.Pattern == rule.Replacement {
			continue
		}
		if !strings.Contains(text, rule.Pattern) {
			continue
		}
		corrected := strings.ReplaceAll(text, rule.Pattern, rule.Replacement)
		result.Corrections = append(result.Corrections, domain.CorrectionApplied{
			Type:      domain.CorrectionGrammar,
			Original:  text,
			Corrected: corrected,
			Reason:    rule.Description,
		})
		text = corrected
	}
	return text
}

// applyFallback calls the remote service and, on success, replaces the local
// result wholesale. Failures keep the dictionary-derived result unchanged.
func (s *Service) applyFallback(ctx context.Context, text, src, tgt string, result *domain.TranslationResult) {
	res, err := s.fb.Translate(ctx, text, src, tgt)
	if err != nil || !res.IsTranslated {
		s.log.WarnContext(ctx, "fallback translation unavailable",
			slog.String("source", src),
			slog.String("target", tgt),
			slog.Any("error", err),
		)
		return
	}

	result.Text = res.TranslatedText
	result.Method = domain.MethodFallback
	result.Confidence = fallbackConfidence
	result.IsTranslated = true
	result.FallbackUsed = true
}

// windowAround returns up to n words on each side of index i, excluding the
// word itself.
func windowAround(words []string, i, n int) []string {
	lo := i - n
	if lo < 0 {
		lo = 0
	}
	hi := i + n + 1
	if hi > len(words) {
		hi = len(words)
	}

	out := make([]string, 0, hi-lo-1)
	out = append(out, words[lo:i]...)
	out = append(out, words[i+1:hi]...)
	return out
}
