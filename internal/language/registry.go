// Package language resolves language names to profiles and detects the
// writing system of raw text. Profile data is loaded once at construction
// and never mutated, so a Registry is safe for concurrent use.
package language

import (
	"strings"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// Registry indexes language profiles by normalized name and by code.
type Registry struct {
	byName  map[string]domain.LanguageProfile
	byCode  map[string]domain.LanguageProfile
	aliases map[string]string
}

// NewRegistry builds a registry from the built-in profile table.
func NewRegistry() *Registry {
	r := &Registry{
		byName:  make(map[string]domain.LanguageProfile, len(profiles)),
		byCode:  make(map[string]domain.LanguageProfile, len(profiles)),
		aliases: aliases,
	}
	for _, p := range profiles {
		r.byName[p.Name] = p
		r.byCode[p.Code] = p
	}
	return r
}

// Normalize lowercases and trims a language name and resolves it through the
// alias table ("farsi" → "persian", "mandarin" → "chinese", ISO codes → names).
// Unknown names are returned in their lowercased form.
func (r *Registry) Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := r.aliases[n]; ok {
		return alias
	}
	if p, ok := r.byCode[n]; ok {
		return p.Name
	}
	return n
}

// Profile returns the profile for a language name (alias-resolved).
func (r *Registry) Profile(name string) (domain.LanguageProfile, bool) {
	p, ok := r.byName[r.Normalize(name)]
	return p, ok
}

// ProfileOrDefault returns the profile for the language, or a permissive
// Latin-script SVO profile when the language is unknown. Unknown languages
// still flow through the pipeline; they just miss every dictionary lookup.
func (r *Registry) ProfileOrDefault(name string) domain.LanguageProfile {
	if p, ok := r.Profile(name); ok {
		return p
	}
	return domain.LanguageProfile{
		Code:              "",
		Name:              r.Normalize(name),
		Script:            domain.ScriptLatin,
		WordOrder:         domain.WordOrderSVO,
		AdjectivePosition: domain.AdjectiveBefore,
	}
}

// Code returns the ISO-style code for a language name, or "" when unknown.
func (r *Registry) Code(name string) string {
	if p, ok := r.Profile(name); ok {
		return p.Code
	}
	return ""
}

// Column returns the dictionary table column that stores translations for
// the language. Columns are keyed by normalized name.
func (r *Registry) Column(name string) string {
	return r.Normalize(name)
}

// IsSame reports whether two names refer to the same language after
// normalization and alias resolution.
func (r *Registry) IsSame(a, b string) bool {
	return r.Normalize(a) == r.Normalize(b)
}

// IsRTL reports whether the language is written right-to-left.
func (r *Registry) IsRTL(name string) bool {
	p, ok := r.Profile(name)
	return ok && p.RTL
}
