package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings. Each path points at a TSV file;
// an empty path skips the corresponding phase.
type Config struct {
	PhrasesPath      string `yaml:"phrases_path"       env:"SEEDER_PHRASES_PATH"`
	IdiomsPath       string `yaml:"idioms_path"        env:"SEEDER_IDIOMS_PATH"`
	WordSensesPath   string `yaml:"word_senses_path"   env:"SEEDER_WORD_SENSES_PATH"`
	GrammarRulesPath string `yaml:"grammar_rules_path" env:"SEEDER_GRAMMAR_RULES_PATH"`
	BatchSize        int    `yaml:"batch_size"         env:"SEEDER_BATCH_SIZE" env-default:"500"`
	DryRun           bool   `yaml:"dry_run"            env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
