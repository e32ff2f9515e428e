// Package seeder loads dictionary TSV files into PostgreSQL. It runs as an
// offline command, not as part of the server.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"phrases", "idioms", "word_senses", "grammar_rules"}

// DictionaryRepo is the write side the pipeline needs.
type DictionaryRepo interface {
	ImportPhrases(ctx context.Context, entries []domain.PhraseEntry) error
	ImportIdioms(ctx context.Context, entries []domain.IdiomEntry) error
	ImportWordSenses(ctx context.Context, entries []domain.WordSenseEntry) error
	ImportGrammarRules(ctx context.Context, rules []domain.GrammarRule) error
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Rows     int
	Skipped  bool
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the four import phases.
type Pipeline struct {
	log     *slog.Logger
	repo    DictionaryRepo
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo DictionaryRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the requested phases in canonical order. An empty filter runs
// everything. A failed phase is recorded and the remaining phases still run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	selected := phaseFilter(phases)

	for _, name := range allPhases {
		if !selected[name] {
			continue
		}
		start := time.Now()
		rows, err := p.runPhase(ctx, name)
		result := PhaseResult{
			Rows:     rows,
			Skipped:  err == nil && rows == 0,
			Duration: time.Since(start),
			Err:      err,
		}
		p.results[name] = result

		if err != nil {
			p.log.Error("phase failed",
				slog.String("phase", name),
				slog.String("error", err.Error()),
			)
			continue
		}
		p.log.Info("phase done",
			slog.String("phase", name),
			slog.Int("rows", rows),
			slog.Duration("duration", result.Duration),
			slog.Bool("dry_run", p.cfg.DryRun),
		)
	}
	return ctx.Err()
}

func (p *Pipeline) runPhase(ctx context.Context, name string) (int, error) {
	switch name {
	case "phrases":
		return p.importPhrases(ctx)
	case "idioms":
		return p.importIdioms(ctx)
	case "word_senses":
		return p.importWordSenses(ctx)
	case "grammar_rules":
		return p.importGrammarRules(ctx)
	}
	return 0, fmt.Errorf("unknown phase %q", name)
}

func (p *Pipeline) importPhrases(ctx context.Context) (int, error) {
	if p.cfg.PhrasesPath == "" {
		return 0, nil
	}
	f, err := os.Open(p.cfg.PhrasesPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	entries, err := ParsePhrases(f)
	if err != nil {
		return 0, err
	}
	if p.cfg.DryRun {
		return len(entries), nil
	}
	for _, batch := range batches(entries, p.cfg.BatchSize) {
		if err := p.repo.ImportPhrases(ctx, batch); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func (p *Pipeline) importIdioms(ctx context.Context) (int, error) {
	if p.cfg.IdiomsPath == "" {
		return 0, nil
	}
	f, err := os.Open(p.cfg.IdiomsPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	entries, err := ParseIdioms(f)
	if err != nil {
		return 0, err
	}
	if p.cfg.DryRun {
		return len(entries), nil
	}
	for _, batch := range batches(entries, p.cfg.BatchSize) {
		if err := p.repo.ImportIdioms(ctx, batch); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func (p *Pipeline) importWordSenses(ctx context.Context) (int, error) {
	if p.cfg.WordSensesPath == "" {
		return 0, nil
	}
	f, err := os.Open(p.cfg.WordSensesPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	entries, err := ParseWordSenses(f)
	if err != nil {
		return 0, err
	}
	if p.cfg.DryRun {
		return len(entries), nil
	}
	for _, batch := range batches(entries, p.cfg.BatchSize) {
		if err := p.repo.ImportWordSenses(ctx, batch); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func (p *Pipeline) importGrammarRules(ctx context.Context) (int, error) {
	if p.cfg.GrammarRulesPath == "" {
		return 0, nil
	}
	f, err := os.Open(p.cfg.GrammarRulesPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rules, err := ParseGrammarRules(f)
	if err != nil {
		return 0, err
	}
	if p.cfg.DryRun {
		return len(rules), nil
	}
	for _, batch := range batches(rules, p.cfg.BatchSize) {
		if err := p.repo.ImportGrammarRules(ctx, batch); err != nil {
			return 0, err
		}
	}
	return len(rules), nil
}

func phaseFilter(phases []string) map[string]bool {
	selected := make(map[string]bool, len(allPhases))
	if len(phases) == 0 {
		for _, name := range allPhases {
			selected[name] = true
		}
		return selected
	}
	for _, name := range phases {
		selected[name] = true
	}
	return selected
}

func batches[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 500
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
