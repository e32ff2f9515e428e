package seeder

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// TSV layouts. The first row is a header; fixed columns come first, every
// remaining column is a language name holding that language's translation.
//
//	phrases.tsv        key | <lang>...
//	idioms.tsv         phrase | meaning | category | register | <lang>...
//	word_senses.tsv    word | sense_id | meaning | context_clues | <lang>...
//	grammar_rules.tsv  language | rule_type | pattern | replacement | description
//
// context_clues is a comma-separated list. Sense rows for one word must be
// contiguous; row order becomes sense priority.

func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr
}

// ParsePhrases reads the phrases TSV.
func ParsePhrases(r io.Reader) ([]domain.PhraseEntry, error) {
	cr := newTSVReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("phrases: read header: %w", err)
	}
	if len(header) < 2 || !strings.EqualFold(header[0], "key") {
		return nil, fmt.Errorf("phrases: header must start with 'key', got %v", header)
	}
	langs := header[1:]

	var entries []domain.PhraseEntry
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("phrases: line %d: %w", line, err)
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		entry := domain.PhraseEntry{
			Key:          key,
			Translations: langColumns(langs, row[1:]),
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseIdioms reads the idioms TSV.
func ParseIdioms(r io.Reader) ([]domain.IdiomEntry, error) {
	cr := newTSVReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("idioms: read header: %w", err)
	}
	const fixed = 4
	if len(header) < fixed+1 || !strings.EqualFold(header[0], "phrase") {
		return nil, fmt.Errorf("idioms: header must start with 'phrase', got %v", header)
	}
	langs := header[fixed:]

	var entries []domain.IdiomEntry
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("idioms: line %d: %w", line, err)
		}
		if len(row) < fixed {
			return nil, fmt.Errorf("idioms: line %d: want at least %d columns, got %d", line, fixed, len(row))
		}
		phrase := strings.TrimSpace(row[0])
		if phrase == "" {
			continue
		}
		entries = append(entries, domain.IdiomEntry{
			Phrase:           phrase,
			NormalizedPhrase: domain.NormalizeText(phrase),
			Meaning:          strings.TrimSpace(row[1]),
			Category:         strings.TrimSpace(row[2]),
			Register:         strings.TrimSpace(row[3]),
			Translations:     langColumns(langs, row[fixed:]),
		})
	}
	return entries, nil
}

// ParseWordSenses reads the word-senses TSV, grouping contiguous rows of the
// same word into one entry.
func ParseWordSenses(r io.Reader) ([]domain.WordSenseEntry, error) {
	cr := newTSVReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("word senses: read header: %w", err)
	}
	const fixed = 4
	if len(header) < fixed+1 || !strings.EqualFold(header[0], "word") {
		return nil, fmt.Errorf("word senses: header must start with 'word', got %v", header)
	}
	langs := header[fixed:]

	var entries []domain.WordSenseEntry
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("word senses: line %d: %w", line, err)
		}
		if len(row) < fixed {
			return nil, fmt.Errorf("word senses: line %d: want at least %d columns, got %d", line, fixed, len(row))
		}
		word := strings.TrimSpace(row[0])
		if word == "" {
			continue
		}
		sense := domain.WordSense{
			SenseID:      strings.TrimSpace(row[1]),
			Meaning:      strings.TrimSpace(row[2]),
			ContextClues: splitClues(row[3]),
			Translations: langColumns(langs, row[fixed:]),
		}
		if n := len(entries); n > 0 && entries[n-1].Word == word {
			entries[n-1].Senses = append(entries[n-1].Senses, sense)
			continue
		}
		entries = append(entries, domain.WordSenseEntry{
			Word:   word,
			Senses: []domain.WordSense{sense},
		})
	}
	return entries, nil
}

// ParseGrammarRules reads the grammar-rules TSV.
func ParseGrammarRules(r io.Reader) ([]domain.GrammarRule, error) {
	cr := newTSVReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("grammar rules: read header: %w", err)
	}
	const fixed = 5
	if len(header) < fixed || !strings.EqualFold(header[0], "language") {
		return nil, fmt.Errorf("grammar rules: header must start with 'language', got %v", header)
	}

	var rules []domain.GrammarRule
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("grammar rules: line %d: %w", line, err)
		}
		if len(row) < fixed {
			return nil, fmt.Errorf("grammar rules: line %d: want %d columns, got %d", line, fixed, len(row))
		}
		lang := strings.TrimSpace(row[0])
		if lang == "" {
			continue
		}
		rules = append(rules, domain.GrammarRule{
			Language:    strings.ToLower(lang),
			RuleType:    strings.TrimSpace(row[1]),
			Pattern:     row[2],
			Replacement: row[3],
			Description: strings.TrimSpace(row[4]),
		})
	}
	return rules, nil
}

// langColumns zips language header names with row values, skipping blanks.
func langColumns(langs, values []string) map[string]string {
	out := make(map[string]string, len(langs))
	for i, lang := range langs {
		if i >= len(values) {
			break
		}
		v := strings.TrimSpace(values[i])
		if v == "" {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(lang))] = v
	}
	return out
}

func splitClues(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	clues := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			clues = append(clues, strings.ToLower(c))
		}
	}
	return clues
}
