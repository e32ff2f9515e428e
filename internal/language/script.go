package language

import (
	"strings"
	"unicode"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// runeRange is an inclusive Unicode code-point interval.
type runeRange struct {
	lo, hi rune
}

// scriptPattern binds a script to its code-point ranges and the language the
// detector reports for it when no better signal exists.
type scriptPattern struct {
	script   domain.Script
	language string
	rtl      bool
	ranges   []runeRange
}

// scriptPatterns is ORDERED: detection tests each pattern in turn and the
// first pattern with any matching character wins. More specific scripts
// (South/Southeast Asian) come before broad blocks (CJK, Arabic, Cyrillic).
var scriptPatterns = []scriptPattern{
	{domain.ScriptDevanagari, "hindi", false, []runeRange{{0x0900, 0x097F}, {0xA8E0, 0xA8FF}}},
	{domain.ScriptBengali, "bengali", false, []runeRange{{0x0980, 0x09FF}}},
	{domain.ScriptGurmukhi, "punjabi", false, []runeRange{{0x0A00, 0x0A7F}}},
	{domain.ScriptGujarati, "gujarati", false, []runeRange{{0x0A80, 0x0AFF}}},
	{domain.ScriptOriya, "odia", false, []runeRange{{0x0B00, 0x0B7F}}},
	{domain.ScriptTamil, "tamil", false, []runeRange{{0x0B80, 0x0BFF}}},
	{domain.ScriptTelugu, "telugu", false, []runeRange{{0x0C00, 0x0C7F}}},
	{domain.ScriptKannada, "kannada", false, []runeRange{{0x0C80, 0x0CFF}}},
	{domain.ScriptMalayalam, "malayalam", false, []runeRange{{0x0D00, 0x0D7F}}},
	{domain.ScriptSinhala, "sinhala", false, []runeRange{{0x0D80, 0x0DFF}}},
	{domain.ScriptThai, "thai", false, []runeRange{{0x0E00, 0x0E7F}}},
	{domain.ScriptLao, "lao", false, []runeRange{{0x0E80, 0x0EFF}}},
	{domain.ScriptTibetan, "tibetan", false, []runeRange{{0x0F00, 0x0FFF}}},
	{domain.ScriptMyanmar, "burmese", false, []runeRange{{0x1000, 0x109F}}},
	{domain.ScriptKhmer, "khmer", false, []runeRange{{0x1780, 0x17FF}}},
	{domain.ScriptHangul, "korean", false, []runeRange{{0xAC00, 0xD7AF}, {0x1100, 0x11FF}, {0x3130, 0x318F}}},
	{domain.ScriptHiragana, "japanese", false, []runeRange{{0x3040, 0x309F}}},
	{domain.ScriptKatakana, "japanese", false, []runeRange{{0x30A0, 0x30FF}}},
	{domain.ScriptHan, "chinese", false, []runeRange{{0x4E00, 0x9FFF}, {0x3400, 0x4DBF}}},
	{domain.ScriptArabic, "arabic", true, []runeRange{{0x0600, 0x06FF}, {0x0750, 0x077F}, {0x08A0, 0x08FF}}},
	{domain.ScriptHebrew, "hebrew", true, []runeRange{{0x0590, 0x05FF}}},
	{domain.ScriptCyrillic, "russian", false, []runeRange{{0x0400, 0x04FF}, {0x0500, 0x052F}}},
	{domain.ScriptGreek, "greek", false, []runeRange{{0x0370, 0x03FF}, {0x1F00, 0x1FFF}}},
	{domain.ScriptGeorgian, "georgian", false, []runeRange{{0x10A0, 0x10FF}}},
	{domain.ScriptArmenian, "armenian", false, []runeRange{{0x0530, 0x058F}}},
	{domain.ScriptEthiopic, "amharic", false, []runeRange{{0x1200, 0x137F}}},
	{domain.ScriptCherokee, "cherokee", false, []runeRange{{0x13A0, 0x13FF}}},
	{domain.ScriptCanadian, "inuktitut", false, []runeRange{{0x1400, 0x167F}}},
	{domain.ScriptMongolian, "mongolian", false, []runeRange{{0x1800, 0x18AF}}},
}

// DetectScript classifies the writing system of the text.
//
// The trimmed text is tested against the ordered pattern list; the first
// pattern with at least one matching character wins, with confidence equal to
// the ratio of matched characters to non-whitespace characters (clamped to 1).
// No match classifies the text as Latin/english; confidence is the Latin
// character ratio, floored at 0.5. Empty input is Latin/english at 1.0.
func (r *Registry) DetectScript(text string) domain.ScriptDetection {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ScriptDetection{Script: domain.ScriptLatin, Language: "english", Confidence: 1}
	}

	nonSpace := 0
	for _, ch := range text {
		if !unicode.IsSpace(ch) {
			nonSpace++
		}
	}

	for _, p := range scriptPatterns {
		matched := 0
		for _, ch := range text {
			if p.matches(ch) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		conf := float64(matched) / float64(nonSpace)
		if conf > 1 {
			conf = 1
		}
		return domain.ScriptDetection{Script: p.script, Language: p.language, RTL: p.rtl, Confidence: conf}
	}

	latin := 0
	for _, ch := range text {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			latin++
		}
	}
	conf := float64(latin) / float64(nonSpace)
	if conf <= 0.5 {
		conf = 0.5
	}
	return domain.ScriptDetection{Script: domain.ScriptLatin, Language: "english", Confidence: conf}
}

func (p scriptPattern) matches(ch rune) bool {
	for _, rr := range p.ranges {
		if ch >= rr.lo && ch <= rr.hi {
			return true
		}
	}
	return false
}

// IsLatinText reports whether the text contains no character from any
// registered non-Latin script. Used by the transliterator to decide whether
// input is already in a native script.
func (r *Registry) IsLatinText(text string) bool {
	for _, ch := range text {
		for _, p := range scriptPatterns {
			if p.matches(ch) {
				return false
			}
		}
	}
	return true
}
