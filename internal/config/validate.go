package config

import (
	"fmt"
	"strings"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. Problems
// across all sections are collected into a single domain.ValidationError.
func (c *Config) Validate() error {
	errs := c.Translator.validate()
	errs = append(errs, c.Fallback.validate()...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (t *TranslatorConfig) validate() []domain.FieldError {
	var errs []domain.FieldError
	if t.DictionaryTTL <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   "translator.dictionary_ttl",
			Message: fmt.Sprintf("must be > 0 (got %v)", t.DictionaryTTL),
		})
	}
	if t.CacheTTL <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   "translator.cache_ttl",
			Message: fmt.Sprintf("must be > 0 (got %v)", t.CacheTTL),
		})
	}
	if t.MaxCacheSize <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   "translator.max_cache_size",
			Message: fmt.Sprintf("must be > 0 (got %d)", t.MaxCacheSize),
		})
	}
	return errs
}

func (f *FallbackConfig) validate() []domain.FieldError {
	var errs []domain.FieldError
	if f.ConfidenceThreshold < 0 || f.ConfidenceThreshold > 1 {
		errs = append(errs, domain.FieldError{
			Field:   "fallback.confidence_threshold",
			Message: fmt.Sprintf("must be within [0,1] (got %v)", f.ConfidenceThreshold),
		})
	}
	if !f.Enabled {
		return errs
	}
	switch {
	case strings.TrimSpace(f.URL) == "":
		errs = append(errs, domain.FieldError{
			Field:   "fallback.url",
			Message: "required when fallback is enabled",
		})
	case !strings.HasPrefix(f.URL, "http://") && !strings.HasPrefix(f.URL, "https://"):
		errs = append(errs, domain.FieldError{
			Field:   "fallback.url",
			Message: fmt.Sprintf("must be http(s) (got %q)", f.URL),
		})
	}
	if f.Timeout <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   "fallback.timeout",
			Message: fmt.Sprintf("must be > 0 (got %v)", f.Timeout),
		})
	}
	return errs
}
