// Package translit converts phonetic Latin text into native scripts and back.
// Conversion is a deterministic longest-match-first rule scan; characters with
// no rule pass through unchanged, so conversion never fails.
package translit

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lingobridge/translator-backend/internal/domain"
	"github.com/lingobridge/translator-backend/internal/language"
)

// Transliterator performs Latin ↔ native-script conversion using the
// per-script rule tables in this package.
type Transliterator struct {
	reg    *language.Registry
	tables map[domain.Script]*ruleSet
}

// New builds a Transliterator with all rule tables compiled (sorted for
// longest-match-first scanning).
func New(reg *language.Registry) *Transliterator {
	tables := make(map[domain.Script]*ruleSet, len(scriptTables))
	for script, rules := range scriptTables {
		tables[script] = compile(rules)
	}
	return &Transliterator{reg: reg, tables: tables}
}

// ToNative converts phonetic Latin input into the target language's script.
// It is a no-op when the target script is Latin, the input already contains
// native-script characters, or no rule table exists for the script.
func (t *Transliterator) ToNative(text, targetLang string) string {
	profile := t.reg.ProfileOrDefault(targetLang)
	if profile.Script.IsLatin() {
		return text
	}
	if !t.reg.IsLatinText(text) {
		return text
	}
	rs, ok := t.tables[profile.Script]
	if !ok {
		return text
	}
	return rs.apply(strings.ToLower(text), true)
}

// ToLatin converts native-script input back to a best-effort Latin/English
// pivot form. Latin input and unmapped characters pass through unchanged.
func (t *Transliterator) ToLatin(text, sourceLang string) string {
	profile := t.reg.ProfileOrDefault(sourceLang)
	if profile.Script.IsLatin() {
		return text
	}
	rs, ok := t.tables[profile.Script]
	if !ok {
		return text
	}
	return rs.apply(text, false)
}

// rule maps one source sequence to one output string.
type rule struct {
	from string
	to   string
}

// vowelRule is a Latin vowel with an independent form (word/cluster initial)
// and a dependent (matra) form used after a consonant. Scripts without
// dependent vowel signs leave matra equal to the independent form.
type vowelRule struct {
	from        string
	independent string
	matra       string
}

// scriptRules is the raw table for one script before compilation.
type scriptRules struct {
	consonants []rule
	vowels     []vowelRule
	abugida    bool // vowels take matra form after consonants; bare "a" is inherent
}

type ruleSet struct {
	raw scriptRules
	// toNative entries sorted longest-from-first; consonant and vowel
	// lookups are resolved during the scan because vowel shape depends
	// on position in an abugida.
	consonants []rule
	vowels     []vowelRule
	toLatin    []rule
}

func compile(raw scriptRules) *ruleSet {
	rs := &ruleSet{raw: raw}

	rs.consonants = append(rs.consonants, raw.consonants...)
	sort.SliceStable(rs.consonants, func(i, j int) bool {
		return len(rs.consonants[i].from) > len(rs.consonants[j].from)
	})

	rs.vowels = append(rs.vowels, raw.vowels...)
	sort.SliceStable(rs.vowels, func(i, j int) bool {
		return len(rs.vowels[i].from) > len(rs.vowels[j].from)
	})

	// Reverse table: native → Latin, longest native sequence first.
	for _, c := range raw.consonants {
		if c.to != "" {
			rs.toLatin = append(rs.toLatin, rule{from: c.to, to: c.from})
		}
	}
	for _, v := range raw.vowels {
		if v.independent != "" {
			rs.toLatin = append(rs.toLatin, rule{from: v.independent, to: v.from})
		}
		if v.matra != "" && v.matra != v.independent {
			rs.toLatin = append(rs.toLatin, rule{from: v.matra, to: v.from})
		}
	}
	sort.SliceStable(rs.toLatin, func(i, j int) bool {
		return len(rs.toLatin[i].from) > len(rs.toLatin[j].from)
	})

	return rs
}

// apply scans the input once, consuming the longest matching rule at each
// position. toNative=false uses the reverse table.
func (rs *ruleSet) apply(text string, toNative bool) string {
	if !toNative {
		return applyRules(text, rs.toLatin)
	}

	var b strings.Builder
	b.Grow(len(text) * 2)
	afterConsonant := false

	for i := 0; i < len(text); {
		if c, n := matchConsonant(text[i:], rs.consonants); n > 0 {
			b.WriteString(c.to)
			afterConsonant = true
			i += n
			continue
		}
		if v, n := matchVowel(text[i:], rs.vowels); n > 0 {
			if rs.raw.abugida && afterConsonant {
				b.WriteString(v.matra)
			} else {
				b.WriteString(v.independent)
			}
			afterConsonant = false
			i += n
			continue
		}
		r, size := decodeRune(text[i:])
		b.WriteRune(r)
		if !unicode.IsLetter(r) {
			afterConsonant = false
		}
		i += size
	}
	return b.String()
}

func matchConsonant(s string, rules []rule) (rule, int) {
	for _, r := range rules {
		if strings.HasPrefix(s, r.from) {
			return r, len(r.from)
		}
	}
	return rule{}, 0
}

func matchVowel(s string, rules []vowelRule) (vowelRule, int) {
	for _, v := range rules {
		if strings.HasPrefix(s, v.from) {
			return v, len(v.from)
		}
	}
	return vowelRule{}, 0
}

func applyRules(text string, rules []rule) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		matched := false
		for _, r := range rules {
			if strings.HasPrefix(text[i:], r.from) {
				b.WriteString(r.to)
				i += len(r.from)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r, size := decodeRune(text[i:])
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
