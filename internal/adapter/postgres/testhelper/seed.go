package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPhrase inserts a phrase row and returns the stored entry. When key is
// empty a unique key is generated.
func SeedPhrase(t *testing.T, pool *pgxpool.Pool, key string, translations map[string]string) domain.PhraseEntry {
	t.Helper()
	ctx := context.Background()

	if key == "" {
		key = "phrase-" + uniqueSuffix()
	}
	key = domain.NormalizeText(key)

	raw, err := json.Marshal(translations)
	if err != nil {
		t.Fatalf("testhelper: SeedPhrase marshal translations: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO phrases (phrase_key, translations) VALUES ($1, $2)
		 ON CONFLICT (phrase_key) DO UPDATE SET translations = EXCLUDED.translations`,
		key, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPhrase insert: %v", err)
	}

	return domain.PhraseEntry{Key: key, Translations: translations}
}

// SeedIdiom inserts an idiom row and returns the stored entry.
func SeedIdiom(t *testing.T, pool *pgxpool.Pool, e domain.IdiomEntry) domain.IdiomEntry {
	t.Helper()
	ctx := context.Background()

	if e.Phrase == "" {
		e.Phrase = "idiom " + uniqueSuffix()
	}
	if e.NormalizedPhrase == "" {
		e.NormalizedPhrase = domain.NormalizeText(e.Phrase)
	}

	raw, err := json.Marshal(e.Translations)
	if err != nil {
		t.Fatalf("testhelper: SeedIdiom marshal translations: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO idioms (phrase, normalized_phrase, meaning, category, register, translations)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (normalized_phrase) DO UPDATE SET
		   phrase = EXCLUDED.phrase, meaning = EXCLUDED.meaning, translations = EXCLUDED.translations`,
		e.Phrase, e.NormalizedPhrase, e.Meaning, e.Category, e.Register, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdiom insert: %v", err)
	}

	return e
}

// SeedWordSenses inserts all senses of an entry, positions following slice order.
func SeedWordSenses(t *testing.T, pool *pgxpool.Pool, entry domain.WordSenseEntry) domain.WordSenseEntry {
	t.Helper()
	ctx := context.Background()

	entry.Word = domain.NormalizeText(entry.Word)
	for pos, sense := range entry.Senses {
		raw, err := json.Marshal(sense.Translations)
		if err != nil {
			t.Fatalf("testhelper: SeedWordSenses marshal translations: %v", err)
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO word_senses (word, sense_id, position, meaning, context_clues, translations)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (sense_id) DO UPDATE SET
			   word = EXCLUDED.word, position = EXCLUDED.position,
			   meaning = EXCLUDED.meaning, context_clues = EXCLUDED.context_clues,
			   translations = EXCLUDED.translations`,
			entry.Word, sense.SenseID, pos, sense.Meaning, sense.ContextClues, raw,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWordSenses insert sense[%d]: %v", pos, err)
		}
	}

	return entry
}

// SeedGrammarRule inserts a grammar rule row.
func SeedGrammarRule(t *testing.T, pool *pgxpool.Pool, rule domain.GrammarRule) domain.GrammarRule {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO grammar_rules (language, rule_type, pattern, replacement, description)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (language, rule_type, pattern) DO UPDATE SET
		   replacement = EXCLUDED.replacement, description = EXCLUDED.description`,
		rule.Language, rule.RuleType, rule.Pattern, rule.Replacement, rule.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGrammarRule insert: %v", err)
	}

	return rule
}

// TruncateDictionary wipes every dictionary table. Tests that assert on
// whole-table fetches call this first for isolation.
func TruncateDictionary(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE phrases, idioms, word_senses, grammar_rules`)
	if err != nil {
		t.Fatalf("testhelper: TruncateDictionary: %v", err)
	}
}
