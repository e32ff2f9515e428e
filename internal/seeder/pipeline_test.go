package seeder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingobridge/translator-backend/internal/domain"
)

type repoMock struct {
	phrases [][]domain.PhraseEntry
	idioms  [][]domain.IdiomEntry
	err     error
}

func (m *repoMock) ImportPhrases(_ context.Context, entries []domain.PhraseEntry) error {
	m.phrases = append(m.phrases, entries)
	return m.err
}

func (m *repoMock) ImportIdioms(_ context.Context, entries []domain.IdiomEntry) error {
	m.idioms = append(m.idioms, entries)
	return m.err
}

func (m *repoMock) ImportWordSenses(context.Context, []domain.WordSenseEntry) error { return nil }

func (m *repoMock) ImportGrammarRules(context.Context, []domain.GrammarRule) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPipeline_RunPhrases(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "phrases.tsv",
		"key\tspanish\nhello\thola\nthank you\tgracias\ngoodbye\tadios\n")

	repo := &repoMock{}
	p := NewPipeline(discardLogger(), repo, Config{PhrasesPath: path, BatchSize: 2})

	require.NoError(t, p.Run(context.Background(), []string{"phrases"}))
	require.False(t, p.HasErrors())

	// 3 rows with batch size 2 means two import calls.
	require.Len(t, repo.phrases, 2)
	assert.Len(t, repo.phrases[0], 2)
	assert.Len(t, repo.phrases[1], 1)

	res := p.Results()["phrases"]
	assert.Equal(t, 3, res.Rows)
	assert.NoError(t, res.Err)
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "phrases.tsv", "key\tspanish\nhello\thola\n")

	repo := &repoMock{}
	p := NewPipeline(discardLogger(), repo, Config{PhrasesPath: path, BatchSize: 500, DryRun: true})

	require.NoError(t, p.Run(context.Background(), nil))

	assert.Empty(t, repo.phrases)
	assert.Equal(t, 1, p.Results()["phrases"].Rows)
}

func TestPipeline_MissingPathSkipsPhase(t *testing.T) {
	t.Parallel()

	repo := &repoMock{}
	p := NewPipeline(discardLogger(), repo, Config{BatchSize: 500})

	require.NoError(t, p.Run(context.Background(), nil))
	require.False(t, p.HasErrors())

	for _, name := range allPhases {
		assert.True(t, p.Results()[name].Skipped, name)
	}
}

func TestPipeline_RepoErrorRecorded(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "idioms.tsv",
		"phrase\tmeaning\tcategory\tregister\tspanish\nbreak a leg\tgood luck\t\t\tmucha suerte\n")

	repo := &repoMock{err: errors.New("insert failed")}
	p := NewPipeline(discardLogger(), repo, Config{IdiomsPath: path, BatchSize: 500})

	require.NoError(t, p.Run(context.Background(), []string{"idioms"}))

	assert.True(t, p.HasErrors())
	assert.Error(t, p.Results()["idioms"].Err)
}

func TestPipeline_UnknownPhase(t *testing.T) {
	t.Parallel()

	p := NewPipeline(discardLogger(), &repoMock{}, Config{})

	require.NoError(t, p.Run(context.Background(), []string{"phrases", "bogus"}))
	// Unknown phase names are simply not in the canonical order, so they
	// never execute and never appear in results.
	_, ok := p.Results()["bogus"]
	assert.False(t, ok)
}
