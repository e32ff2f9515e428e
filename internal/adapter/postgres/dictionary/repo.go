// Package dictionary implements the dictionary repository using PostgreSQL.
// Reads are whole-table fetches: the in-memory store caches complete
// snapshots, so the repository never serves point lookups. Per-language
// translations live in a JSONB column keyed by language name.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lingobridge/translator-backend/internal/adapter/postgres"
	"github.com/lingobridge/translator-backend/internal/domain"
)

// maxFetchRows caps whole-table fetches so a runaway import cannot balloon
// the in-memory snapshot.
const maxFetchRows = 100000

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new dictionary repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// Read operations (snapshot fetches)
// ---------------------------------------------------------------------------

// FetchPhrases returns every phrase row with its translation map.
func (r *Repo) FetchPhrases(ctx context.Context) ([]domain.PhraseEntry, error) {
	query, args, err := psql.
		Select("phrase_key", "translations").
		From("phrases").
		OrderBy("phrase_key").
		Limit(maxFetchRows).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build phrases query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "phrases", "fetch")
	}
	defer rows.Close()

	var entries []domain.PhraseEntry
	for rows.Next() {
		var (
			key string
			raw []byte
		)
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, postgres.MapError(err, "phrase", key)
		}
		translations, err := decodeTranslations(raw)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", key, err)
		}
		entries = append(entries, domain.PhraseEntry{Key: key, Translations: translations})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "phrases", "fetch")
	}

	return entries, nil
}

// FetchIdioms returns every idiom row.
func (r *Repo) FetchIdioms(ctx context.Context) ([]domain.IdiomEntry, error) {
	query, args, err := psql.
		Select("phrase", "normalized_phrase", "meaning", "category", "register", "translations").
		From("idioms").
		OrderBy("normalized_phrase").
		Limit(maxFetchRows).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build idioms query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "idioms", "fetch")
	}
	defer rows.Close()

	var entries []domain.IdiomEntry
	for rows.Next() {
		var (
			e   domain.IdiomEntry
			raw []byte
		)
		if err := rows.Scan(&e.Phrase, &e.NormalizedPhrase, &e.Meaning, &e.Category, &e.Register, &raw); err != nil {
			return nil, postgres.MapError(err, "idiom", e.NormalizedPhrase)
		}
		if e.Translations, err = decodeTranslations(raw); err != nil {
			return nil, fmt.Errorf("idiom %q: %w", e.NormalizedPhrase, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "idioms", "fetch")
	}

	return entries, nil
}

// FetchWordSenses returns all senses grouped per word. Rows arrive ordered by
// (word, position) so registration order inside each entry is preserved.
func (r *Repo) FetchWordSenses(ctx context.Context) ([]domain.WordSenseEntry, error) {
	query, args, err := psql.
		Select("word", "sense_id", "meaning", "context_clues", "translations").
		From("word_senses").
		OrderBy("word", "position").
		Limit(maxFetchRows).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word_senses query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word_senses", "fetch")
	}
	defer rows.Close()

	var entries []domain.WordSenseEntry
	for rows.Next() {
		var (
			word  string
			sense domain.WordSense
			raw   []byte
		)
		if err := rows.Scan(&word, &sense.SenseID, &sense.Meaning, &sense.ContextClues, &raw); err != nil {
			return nil, postgres.MapError(err, "word_sense", word)
		}
		if sense.Translations, err = decodeTranslations(raw); err != nil {
			return nil, fmt.Errorf("word_sense %q: %w", sense.SenseID, err)
		}

		if n := len(entries); n > 0 && entries[n-1].Word == word {
			entries[n-1].Senses = append(entries[n-1].Senses, sense)
			continue
		}
		entries = append(entries, domain.WordSenseEntry{Word: word, Senses: []domain.WordSense{sense}})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "word_senses", "fetch")
	}

	return entries, nil
}

// FetchGrammarRules returns every grammar rule row.
func (r *Repo) FetchGrammarRules(ctx context.Context) ([]domain.GrammarRule, error) {
	query, args, err := psql.
		Select("language", "rule_type", "pattern", "replacement", "description").
		From("grammar_rules").
		OrderBy("language", "rule_type").
		Limit(maxFetchRows).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build grammar_rules query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "grammar_rules", "fetch")
	}
	defer rows.Close()

	var rules []domain.GrammarRule
	for rows.Next() {
		var rule domain.GrammarRule
		if err := rows.Scan(&rule.Language, &rule.RuleType, &rule.Pattern, &rule.Replacement, &rule.Description); err != nil {
			return nil, postgres.MapError(err, "grammar_rule", rule.Language)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "grammar_rules", "fetch")
	}

	return rules, nil
}

// ---------------------------------------------------------------------------
// Write operations (seeder import path)
// ---------------------------------------------------------------------------

// ImportPhrases upserts a batch of phrases atomically. Existing keys get
// their translation maps replaced.
func (r *Repo) ImportPhrases(ctx context.Context, entries []domain.PhraseEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)
		for _, e := range entries {
			raw, err := json.Marshal(e.Translations)
			if err != nil {
				return fmt.Errorf("encode phrase %q: %w", e.Key, err)
			}
			query, args, err := psql.
				Insert("phrases").
				Columns("phrase_key", "translations").
				Values(domain.NormalizeText(e.Key), raw).
				Suffix("ON CONFLICT (phrase_key) DO UPDATE SET translations = EXCLUDED.translations").
				ToSql()
			if err != nil {
				return fmt.Errorf("build phrase upsert: %w", err)
			}
			if _, err := querier.Exec(txCtx, query, args...); err != nil {
				return postgres.MapError(err, "phrase", e.Key)
			}
		}
		return nil
	})
}

// ImportIdioms upserts a batch of idioms atomically.
func (r *Repo) ImportIdioms(ctx context.Context, entries []domain.IdiomEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)
		for _, e := range entries {
			raw, err := json.Marshal(e.Translations)
			if err != nil {
				return fmt.Errorf("encode idiom %q: %w", e.Phrase, err)
			}
			normalized := e.NormalizedPhrase
			if normalized == "" {
				normalized = domain.NormalizeText(e.Phrase)
			}
			query, args, err := psql.
				Insert("idioms").
				Columns("phrase", "normalized_phrase", "meaning", "category", "register", "translations").
				Values(e.Phrase, normalized, e.Meaning, e.Category, e.Register, raw).
				Suffix(`ON CONFLICT (normalized_phrase) DO UPDATE SET
					phrase = EXCLUDED.phrase,
					meaning = EXCLUDED.meaning,
					category = EXCLUDED.category,
					register = EXCLUDED.register,
					translations = EXCLUDED.translations`).
				ToSql()
			if err != nil {
				return fmt.Errorf("build idiom upsert: %w", err)
			}
			if _, err := querier.Exec(txCtx, query, args...); err != nil {
				return postgres.MapError(err, "idiom", e.Phrase)
			}
		}
		return nil
	})
}

// ImportWordSenses upserts every sense of the given entries atomically.
// Position within an entry follows slice order.
func (r *Repo) ImportWordSenses(ctx context.Context, entries []domain.WordSenseEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)
		for _, entry := range entries {
			for pos, sense := range entry.Senses {
				raw, err := json.Marshal(sense.Translations)
				if err != nil {
					return fmt.Errorf("encode sense %q: %w", sense.SenseID, err)
				}
				query, args, err := psql.
					Insert("word_senses").
					Columns("word", "sense_id", "position", "meaning", "context_clues", "translations").
					Values(domain.NormalizeText(entry.Word), sense.SenseID, pos, sense.Meaning, sense.ContextClues, raw).
					Suffix(`ON CONFLICT (sense_id) DO UPDATE SET
						word = EXCLUDED.word,
						position = EXCLUDED.position,
						meaning = EXCLUDED.meaning,
						context_clues = EXCLUDED.context_clues,
						translations = EXCLUDED.translations`).
					ToSql()
				if err != nil {
					return fmt.Errorf("build word_sense upsert: %w", err)
				}
				if _, err := querier.Exec(txCtx, query, args...); err != nil {
					return postgres.MapError(err, "word_sense", sense.SenseID)
				}
			}
		}
		return nil
	})
}

// ImportGrammarRules upserts a batch of grammar rules atomically.
func (r *Repo) ImportGrammarRules(ctx context.Context, rules []domain.GrammarRule) error {
	if len(rules) == 0 {
		return nil
	}

	return r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)
		for _, rule := range rules {
			query, args, err := psql.
				Insert("grammar_rules").
				Columns("language", "rule_type", "pattern", "replacement", "description").
				Values(rule.Language, rule.RuleType, rule.Pattern, rule.Replacement, rule.Description).
				Suffix(`ON CONFLICT (language, rule_type, pattern) DO UPDATE SET
					replacement = EXCLUDED.replacement,
					description = EXCLUDED.description`).
				ToSql()
			if err != nil {
				return fmt.Errorf("build grammar_rule upsert: %w", err)
			}
			if _, err := querier.Exec(txCtx, query, args...); err != nil {
				return postgres.MapError(err, "grammar_rule", rule.Language)
			}
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func decodeTranslations(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	return m, nil
}
