// Package dictstore keeps in-memory snapshots of the dictionary tables with
// TTL-based refresh. Each table refreshes independently; a stale snapshot
// keeps serving while a background goroutine refetches it, and a failed
// refresh is logged and tolerated, so the translation pipeline never blocks
// on a flaky database. Only a table that has never loaded fetches inline.
package dictstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// Fetcher loads whole dictionary tables from the backing store.
type Fetcher interface {
	FetchPhrases(ctx context.Context) ([]domain.PhraseEntry, error)
	FetchIdioms(ctx context.Context) ([]domain.IdiomEntry, error)
	FetchWordSenses(ctx context.Context) ([]domain.WordSenseEntry, error)
	FetchGrammarRules(ctx context.Context) ([]domain.GrammarRule, error)
}

// table is one cached snapshot. The snapshot value is replaced wholesale
// under the write lock; readers always see a complete table.
type table[T any] struct {
	mu         sync.RWMutex
	snapshot   T
	fetchedAt  time.Time
	loaded     bool
	refreshing atomic.Bool
}

func (t *table[T]) get() (T, time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot, t.fetchedAt, t.loaded
}

func (t *table[T]) swap(snapshot T, at time.Time) {
	t.mu.Lock()
	t.snapshot = snapshot
	t.fetchedAt = at
	t.loaded = true
	t.mu.Unlock()
}

func (t *table[T]) markStale() {
	t.mu.Lock()
	t.fetchedAt = time.Time{}
	t.mu.Unlock()
}

// phraseIndex is the phrase snapshot plus a reverse index used for the
// English pivot: language → normalized translation → English key.
type phraseIndex struct {
	byKey         map[string]domain.PhraseEntry
	byTranslation map[string]map[string]string
}

// Store serves dictionary lookups from cached snapshots.
type Store struct {
	repo   Fetcher
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group

	phrases table[phraseIndex]
	idioms  table[[]domain.IdiomEntry]
	senses  table[map[string]domain.WordSenseEntry]
	rules   table[map[string][]domain.GrammarRule]

	now func() time.Time
}

func New(repo Fetcher, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Init warms every table concurrently. Individual load failures are logged
// and tolerated (the table stays empty until the next refresh attempt), so
// the service can start while the database is degraded.
func (s *Store) Init(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { s.runRefresh(gctx, "phrases", &s.phrases, s.refreshPhrases); return nil })
	g.Go(func() error { s.runRefresh(gctx, "idioms", &s.idioms, s.refreshIdioms); return nil })
	g.Go(func() error { s.runRefresh(gctx, "word_senses", &s.senses, s.refreshSenses); return nil })
	g.Go(func() error { s.runRefresh(gctx, "grammar_rules", &s.rules, s.refreshRules); return nil })
	return g.Wait()
}

// Invalidate marks every table stale. Snapshots keep serving until the next
// access triggers a refetch.
func (s *Store) Invalidate() {
	s.phrases.markStale()
	s.idioms.markStale()
	s.senses.markStale()
	s.rules.markStale()
	s.logger.Info("dictionary cache invalidated")
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// LookupPhrase returns the stored translation of a whole phrase for the
// target language column. Lookup is case- and whitespace-insensitive.
func (s *Store) LookupPhrase(ctx context.Context, text, targetLang string) (string, bool) {
	idx := s.phrasesSnapshot(ctx)
	entry, ok := idx.byKey[domain.NormalizeText(text)]
	if !ok {
		return "", false
	}
	return entry.TranslationFor(targetLang)
}

// ReverseLookupPhrase finds the English key whose stored translation in the
// source language matches the text. Used to compute the English pivot when
// the source side is not English.
func (s *Store) ReverseLookupPhrase(ctx context.Context, text, sourceLang string) (string, bool) {
	idx := s.phrasesSnapshot(ctx)
	byTranslation, ok := idx.byTranslation[sourceLang]
	if !ok {
		return "", false
	}
	key, ok := byTranslation[domain.NormalizeText(text)]
	return key, ok
}

// Idioms returns the current idiom snapshot. Callers must not mutate it.
func (s *Store) Idioms(ctx context.Context) []domain.IdiomEntry {
	s.ensureFresh(ctx, "idioms", &s.idioms, s.refreshIdioms)
	snapshot, _, _ := s.idioms.get()
	return snapshot
}

// WordSenses returns the sense entry for a word, if registered.
func (s *Store) WordSenses(ctx context.Context, word string) (domain.WordSenseEntry, bool) {
	s.ensureFresh(ctx, "word_senses", &s.senses, s.refreshSenses)
	snapshot, _, _ := s.senses.get()
	entry, ok := snapshot[domain.NormalizeText(word)]
	return entry, ok
}

// GrammarRules returns the rules registered for a language.
func (s *Store) GrammarRules(ctx context.Context, lang string) []domain.GrammarRule {
	s.ensureFresh(ctx, "grammar_rules", &s.rules, s.refreshRules)
	snapshot, _, _ := s.rules.get()
	return snapshot[lang]
}

func (s *Store) phrasesSnapshot(ctx context.Context) phraseIndex {
	s.ensureFresh(ctx, "phrases", &s.phrases, s.refreshPhrases)
	snapshot, _, _ := s.phrases.get()
	return snapshot
}

// ---------------------------------------------------------------------------
// Refresh machinery
// ---------------------------------------------------------------------------

// freshness is what ensureFresh needs from a table without knowing its
// snapshot type.
type freshness interface {
	meta() (time.Time, bool)
	tryStartRefresh() bool
	endRefresh()
}

func (t *table[T]) meta() (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fetchedAt, t.loaded
}

func (t *table[T]) tryStartRefresh() bool { return t.refreshing.CompareAndSwap(false, true) }

func (t *table[T]) endRefresh() { t.refreshing.Store(false) }

// ensureFresh keeps a table's snapshot within TTL without making readers
// wait. A loaded-but-stale table keeps serving while a single background
// goroutine refetches it; only a table that has never loaded fetches
// inline, with concurrent callers collapsing into one fetch via
// singleflight.
func (s *Store) ensureFresh(ctx context.Context, name string, t freshness, refresh func(context.Context) error) {
	fetchedAt, loaded := t.meta()
	if loaded && s.now().Sub(fetchedAt) < s.ttl {
		return
	}

	if loaded {
		if !t.tryStartRefresh() {
			return
		}
		// The caller's request must not wait on (or cancel) the refetch.
		go func(ctx context.Context) {
			defer t.endRefresh()
			s.runRefresh(ctx, name, t, refresh)
		}(context.WithoutCancel(ctx))
		return
	}

	s.group.Do(name, func() (any, error) {
		// Re-check: the winner may have loaded while we waited.
		if _, loaded := t.meta(); loaded {
			return nil, nil
		}
		s.runRefresh(ctx, name, t, refresh)
		return nil, nil
	})
}

func (s *Store) runRefresh(ctx context.Context, name string, t freshness, refresh func(context.Context) error) {
	if err := refresh(ctx); err != nil {
		_, loaded := t.meta()
		s.logger.WarnContext(ctx, "dictionary table refresh failed",
			slog.String("table", name),
			slog.Bool("serving_stale", loaded),
			slog.Any("error", err),
		)
	}
}

func (s *Store) refreshPhrases(ctx context.Context) error {
	entries, err := s.repo.FetchPhrases(ctx)
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrDataUnavailable)
	}
	idx := phraseIndex{
		byKey:         make(map[string]domain.PhraseEntry, len(entries)),
		byTranslation: make(map[string]map[string]string),
	}
	for _, e := range entries {
		key := domain.NormalizeText(e.Key)
		idx.byKey[key] = e
		for lang, translated := range e.Translations {
			if translated == "" {
				continue
			}
			if idx.byTranslation[lang] == nil {
				idx.byTranslation[lang] = make(map[string]string)
			}
			idx.byTranslation[lang][domain.NormalizeText(translated)] = key
		}
	}
	s.phrases.swap(idx, s.now())
	s.logger.Debug("dictionary table refreshed", slog.String("table", "phrases"), slog.Int("rows", len(entries)))
	return nil
}

func (s *Store) refreshIdioms(ctx context.Context) error {
	entries, err := s.repo.FetchIdioms(ctx)
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrDataUnavailable)
	}
	s.idioms.swap(entries, s.now())
	s.logger.Debug("dictionary table refreshed", slog.String("table", "idioms"), slog.Int("rows", len(entries)))
	return nil
}

func (s *Store) refreshSenses(ctx context.Context) error {
	entries, err := s.repo.FetchWordSenses(ctx)
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrDataUnavailable)
	}
	snapshot := make(map[string]domain.WordSenseEntry, len(entries))
	for _, e := range entries {
		snapshot[domain.NormalizeText(e.Word)] = e
	}
	s.senses.swap(snapshot, s.now())
	s.logger.Debug("dictionary table refreshed", slog.String("table", "word_senses"), slog.Int("rows", len(entries)))
	return nil
}

func (s *Store) refreshRules(ctx context.Context) error {
	rules, err := s.repo.FetchGrammarRules(ctx)
	if err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrDataUnavailable)
	}
	snapshot := make(map[string][]domain.GrammarRule, 8)
	for _, r := range rules {
		snapshot[r.Language] = append(snapshot[r.Language], r)
	}
	s.rules.swap(snapshot, s.now())
	s.logger.Debug("dictionary table refreshed", slog.String("table", "grammar_rules"), slog.Int("rows", len(rules)))
	return nil
}
