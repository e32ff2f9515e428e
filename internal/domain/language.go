package domain

// WordOrder represents the canonical constituent order of a language.
type WordOrder string

const (
	WordOrderSVO   WordOrder = "SVO"
	WordOrderSOV   WordOrder = "SOV"
	WordOrderVSO   WordOrder = "VSO"
	WordOrderOther WordOrder = "OTHER"
)

func (w WordOrder) String() string { return string(w) }

func (w WordOrder) IsValid() bool {
	switch w {
	case WordOrderSVO, WordOrderSOV, WordOrderVSO, WordOrderOther:
		return true
	}
	return false
}

// AdjectivePosition represents where adjectives sit relative to the noun.
type AdjectivePosition string

const (
	AdjectiveBefore AdjectivePosition = "BEFORE"
	AdjectiveAfter  AdjectivePosition = "AFTER"
)

func (p AdjectivePosition) String() string { return string(p) }

// Script represents a writing system detected via Unicode code-point ranges.
type Script string

const (
	ScriptLatin      Script = "latin"
	ScriptDevanagari Script = "devanagari"
	ScriptBengali    Script = "bengali"
	ScriptGurmukhi   Script = "gurmukhi"
	ScriptGujarati   Script = "gujarati"
	ScriptOriya      Script = "oriya"
	ScriptTamil      Script = "tamil"
	ScriptTelugu     Script = "telugu"
	ScriptKannada    Script = "kannada"
	ScriptMalayalam  Script = "malayalam"
	ScriptSinhala    Script = "sinhala"
	ScriptThai       Script = "thai"
	ScriptLao        Script = "lao"
	ScriptTibetan    Script = "tibetan"
	ScriptMyanmar    Script = "myanmar"
	ScriptKhmer      Script = "khmer"
	ScriptHangul     Script = "hangul"
	ScriptHiragana   Script = "hiragana"
	ScriptKatakana   Script = "katakana"
	ScriptHan        Script = "han"
	ScriptArabic     Script = "arabic"
	ScriptHebrew     Script = "hebrew"
	ScriptCyrillic   Script = "cyrillic"
	ScriptGreek      Script = "greek"
	ScriptGeorgian   Script = "georgian"
	ScriptArmenian   Script = "armenian"
	ScriptEthiopic   Script = "ethiopic"
	ScriptCherokee   Script = "cherokee"
	ScriptCanadian   Script = "canadian_aboriginal"
	ScriptMongolian  Script = "mongolian"
)

func (s Script) String() string { return string(s) }

// IsLatin reports whether the script is Latin-based.
func (s Script) IsLatin() bool { return s == ScriptLatin }

// LanguageProfile describes one supported language: its identity, writing
// system, and the grammar flags the pipeline consults. Profiles are loaded
// once at registry construction and are immutable afterwards.
type LanguageProfile struct {
	Code                string
	Name                string
	Script              Script
	RTL                 bool
	WordOrder           WordOrder
	HasGender           bool
	HasArticles         bool
	AdjectivePosition   AdjectivePosition
	UsesPostpositions   bool
	SubjectDropping     bool
	HasCases            bool
	HasHonorific        bool
	SentenceEndParticle string
}

// ScriptDetection is the outcome of script detection over a text sample.
type ScriptDetection struct {
	Script     Script
	Language   string
	RTL        bool
	Confidence float64
}
