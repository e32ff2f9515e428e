// Package translator sequences the translation pipeline: language
// normalization, idiom replacement, dictionary lookup with morphology retry,
// reordering, disambiguation, post-processing, and the confidence-gated
// remote fallback. No stage error ever escapes a translate call; the worst
// case is the original text echoed back with the unknown words listed.
package translator

import (
	"context"
	"log/slog"

	"github.com/lingobridge/translator-backend/internal/config"
	"github.com/lingobridge/translator-backend/internal/domain"
	"github.com/lingobridge/translator-backend/internal/fallback"
	"github.com/lingobridge/translator-backend/internal/language"
	"github.com/lingobridge/translator-backend/internal/resultcache"
)

// englishLang is the pivot language for non-English pairs.
const englishLang = "english"

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryStore interface {
	LookupPhrase(ctx context.Context, text, targetLang string) (string, bool)
	ReverseLookupPhrase(ctx context.Context, text, sourceLang string) (string, bool)
	Idioms(ctx context.Context) []domain.IdiomEntry
	WordSenses(ctx context.Context, word string) (domain.WordSenseEntry, bool)
	GrammarRules(ctx context.Context, lang string) []domain.GrammarRule
}

type transliterator interface {
	ToNative(text, targetLang string) string
	ToLatin(text, sourceLang string) string
}

type fallbackClient interface {
	Translate(ctx context.Context, text, source, target string) (fallback.Result, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the translation orchestrator.
type Service struct {
	log      *slog.Logger
	langs    *language.Registry
	dict     dictionaryStore
	translit transliterator
	fb       fallbackClient
	cache    *resultcache.Cache
	cfg      config.TranslatorConfig
	fbCfg    config.FallbackConfig
}

// NewService creates a new translator service. The fallback client is
// optional; inject it with SetFallback when remote fallback is enabled.
func NewService(
	logger *slog.Logger,
	langs *language.Registry,
	dict dictionaryStore,
	translit transliterator,
	cache *resultcache.Cache,
	cfg config.TranslatorConfig,
	fbCfg config.FallbackConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "translator"),
		langs:    langs,
		dict:     dict,
		translit: translit,
		cache:    cache,
		cfg:      cfg,
		fbCfg:    fbCfg,
	}
}

// SetFallback injects the optional remote fallback client.
func (s *Service) SetFallback(fb fallbackClient) {
	s.fb = fb
}
