package dictstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// fetcherMock is a hand-rolled mock with overridable behavior per method.
type fetcherMock struct {
	FetchPhrasesFunc      func(ctx context.Context) ([]domain.PhraseEntry, error)
	FetchIdiomsFunc       func(ctx context.Context) ([]domain.IdiomEntry, error)
	FetchWordSensesFunc   func(ctx context.Context) ([]domain.WordSenseEntry, error)
	FetchGrammarRulesFunc func(ctx context.Context) ([]domain.GrammarRule, error)

	phraseCalls atomic.Int64
}

func (m *fetcherMock) FetchPhrases(ctx context.Context) ([]domain.PhraseEntry, error) {
	m.phraseCalls.Add(1)
	if m.FetchPhrasesFunc != nil {
		return m.FetchPhrasesFunc(ctx)
	}
	return nil, nil
}

func (m *fetcherMock) FetchIdioms(ctx context.Context) ([]domain.IdiomEntry, error) {
	if m.FetchIdiomsFunc != nil {
		return m.FetchIdiomsFunc(ctx)
	}
	return nil, nil
}

func (m *fetcherMock) FetchWordSenses(ctx context.Context) ([]domain.WordSenseEntry, error) {
	if m.FetchWordSensesFunc != nil {
		return m.FetchWordSensesFunc(ctx)
	}
	return nil, nil
}

func (m *fetcherMock) FetchGrammarRules(ctx context.Context) ([]domain.GrammarRule, error) {
	if m.FetchGrammarRulesFunc != nil {
		return m.FetchGrammarRulesFunc(ctx)
	}
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func phraseFixture() []domain.PhraseEntry {
	return []domain.PhraseEntry{
		{Key: "hello", Translations: map[string]string{"spanish": "hola", "french": "bonjour"}},
		{Key: "thank you", Translations: map[string]string{"spanish": "gracias"}},
	}
}

func TestStore_LookupPhrase(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return phraseFixture(), nil
		},
	}
	s := New(mock, time.Minute, discardLogger())
	ctx := context.Background()

	got, ok := s.LookupPhrase(ctx, "hello", "spanish")
	require.True(t, ok)
	assert.Equal(t, "hola", got)

	// Case and whitespace insensitive.
	got, ok = s.LookupPhrase(ctx, "  Thank   You ", "spanish")
	require.True(t, ok)
	assert.Equal(t, "gracias", got)

	_, ok = s.LookupPhrase(ctx, "hello", "german")
	assert.False(t, ok)
	_, ok = s.LookupPhrase(ctx, "goodbye", "spanish")
	assert.False(t, ok)
}

func TestStore_ReverseLookupPhrase(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return phraseFixture(), nil
		},
	}
	s := New(mock, time.Minute, discardLogger())
	ctx := context.Background()

	key, ok := s.ReverseLookupPhrase(ctx, "Hola", "spanish")
	require.True(t, ok)
	assert.Equal(t, "hello", key)

	key, ok = s.ReverseLookupPhrase(ctx, "bonjour", "french")
	require.True(t, ok)
	assert.Equal(t, "hello", key)

	_, ok = s.ReverseLookupPhrase(ctx, "hola", "german")
	assert.False(t, ok)
	_, ok = s.ReverseLookupPhrase(ctx, "adios", "spanish")
	assert.False(t, ok)
}

func TestStore_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return phraseFixture(), nil
		},
	}
	s := New(mock, time.Minute, discardLogger())
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }
	ctx := context.Background()

	s.LookupPhrase(ctx, "hello", "spanish")
	s.LookupPhrase(ctx, "hello", "spanish")
	s.LookupPhrase(ctx, "thank you", "spanish")
	assert.Equal(t, int64(1), mock.phraseCalls.Load())

	// Past the TTL the next read triggers a background refetch.
	current = current.Add(2 * time.Minute)
	s.LookupPhrase(ctx, "hello", "spanish")
	assert.Eventually(t, func() bool { return mock.phraseCalls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestStore_StaleReadDoesNotBlockOnRefetch(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	mock := &fetcherMock{}
	mock.FetchPhrasesFunc = func(context.Context) ([]domain.PhraseEntry, error) {
		// Every fetch after the warm-up parks until the gate opens.
		if mock.phraseCalls.Load() > 1 {
			<-gate
		}
		return phraseFixture(), nil
	}
	s := New(mock, time.Minute, discardLogger())
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }
	ctx := context.Background()

	// Warm the table, then expire it.
	_, ok := s.LookupPhrase(ctx, "hello", "spanish")
	require.True(t, ok)
	current = current.Add(2 * time.Minute)

	// The stale read must come back immediately even though the refetch
	// is parked.
	done := make(chan string, 1)
	go func() {
		got, _ := s.LookupPhrase(ctx, "hello", "spanish")
		done <- got
	}()
	select {
	case got := <-done:
		assert.Equal(t, "hola", got)
	case <-time.After(2 * time.Second):
		t.Fatal("stale lookup waited for the background refetch")
	}

	// Releasing the gate lets the refetch land.
	close(gate)
	assert.Eventually(t, func() bool { return mock.phraseCalls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestStore_ServesStaleOnFetchError(t *testing.T) {
	t.Parallel()

	failing := false
	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			if failing {
				return nil, errors.New("connection refused")
			}
			return phraseFixture(), nil
		},
	}
	s := New(mock, time.Minute, discardLogger())
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }
	ctx := context.Background()

	_, ok := s.LookupPhrase(ctx, "hello", "spanish")
	require.True(t, ok)

	// TTL expires and the database starts failing: the stale snapshot
	// keeps serving.
	failing = true
	current = current.Add(2 * time.Minute)
	got, ok := s.LookupPhrase(ctx, "hello", "spanish")
	require.True(t, ok)
	assert.Equal(t, "hola", got)
}

func TestStore_RefreshErrorWrapsDataUnavailable(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := New(mock, time.Minute, discardLogger())

	err := s.refreshPhrases(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestStore_EmptyWhenNeverLoaded(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return nil, errors.New("database down")
		},
		FetchIdiomsFunc: func(context.Context) ([]domain.IdiomEntry, error) {
			return nil, errors.New("database down")
		},
	}
	s := New(mock, time.Minute, discardLogger())
	ctx := context.Background()

	_, ok := s.LookupPhrase(ctx, "hello", "spanish")
	assert.False(t, ok)
	assert.Empty(t, s.Idioms(ctx))
}

func TestStore_Invalidate(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return phraseFixture(), nil
		},
	}
	s := New(mock, time.Hour, discardLogger())
	ctx := context.Background()

	s.LookupPhrase(ctx, "hello", "spanish")
	require.Equal(t, int64(1), mock.phraseCalls.Load())

	s.Invalidate()
	s.LookupPhrase(ctx, "hello", "spanish")
	assert.Eventually(t, func() bool { return mock.phraseCalls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestStore_Init_WarmsAllTablesAndToleratesFailures(t *testing.T) {
	t.Parallel()

	mock := &fetcherMock{
		FetchPhrasesFunc: func(context.Context) ([]domain.PhraseEntry, error) {
			return phraseFixture(), nil
		},
		FetchIdiomsFunc: func(context.Context) ([]domain.IdiomEntry, error) {
			return nil, errors.New("idioms table missing")
		},
		FetchWordSensesFunc: func(context.Context) ([]domain.WordSenseEntry, error) {
			return []domain.WordSenseEntry{
				{Word: "bank", Senses: []domain.WordSense{{SenseID: "bank_money"}}},
			}, nil
		},
		FetchGrammarRulesFunc: func(context.Context) ([]domain.GrammarRule, error) {
			return []domain.GrammarRule{{Language: "japanese", RuleType: "particle"}}, nil
		},
	}
	s := New(mock, time.Minute, discardLogger())
	ctx := context.Background()

	err := s.Init(ctx)
	require.NoError(t, err)

	_, ok := s.LookupPhrase(ctx, "hello", "spanish")
	assert.True(t, ok)

	entry, ok := s.WordSenses(ctx, "Bank")
	require.True(t, ok)
	assert.Equal(t, "bank_money", entry.Senses[0].SenseID)

	assert.Len(t, s.GrammarRules(ctx, "japanese"), 1)
	assert.Empty(t, s.GrammarRules(ctx, "klingon"))
}

func TestStore_WordSensesMiss(t *testing.T) {
	t.Parallel()

	s := New(&fetcherMock{}, time.Minute, discardLogger())
	_, ok := s.WordSenses(context.Background(), "missing")
	assert.False(t, ok)
}
