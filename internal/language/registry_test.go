package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingobridge/translator-backend/internal/domain"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	tests := []struct {
		in   string
		want string
	}{
		{"English", "english"},
		{"  SPANISH  ", "spanish"},
		{"farsi", "persian"},
		{"Mandarin", "chinese"},
		{"bangla", "bengali"},
		{"tagalog", "filipino"},
		{"hi", "hindi"},
		{"zh", "chinese"},
		{"klingon", "klingon"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reg.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestProfileLookups(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	hindi, ok := reg.Profile("Hindi")
	require.True(t, ok)
	assert.Equal(t, "hi", hindi.Code)
	assert.Equal(t, domain.ScriptDevanagari, hindi.Script)
	assert.Equal(t, domain.WordOrderSOV, hindi.WordOrder)
	assert.True(t, hindi.UsesPostpositions)

	_, ok = reg.Profile("klingon")
	assert.False(t, ok)

	def := reg.ProfileOrDefault("klingon")
	assert.Equal(t, domain.ScriptLatin, def.Script)
	assert.Equal(t, domain.WordOrderSVO, def.WordOrder)

	assert.Equal(t, "es", reg.Code("castilian"))
	assert.Equal(t, "", reg.Code("klingon"))
	assert.Equal(t, "persian", reg.Column("farsi"))

	assert.True(t, reg.IsSame("farsi", "Persian"))
	assert.True(t, reg.IsSame("zh", "mandarin"))
	assert.False(t, reg.IsSame("hindi", "urdu"))

	assert.True(t, reg.IsRTL("arabic"))
	assert.True(t, reg.IsRTL("urdu"))
	assert.False(t, reg.IsRTL("hindi"))
}

func TestDetectScript(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	tests := []struct {
		name     string
		text     string
		script   domain.Script
		language string
	}{
		{"devanagari", "नमस्ते दुनिया", domain.ScriptDevanagari, "hindi"},
		{"tamil", "வணக்கம்", domain.ScriptTamil, "tamil"},
		{"hangul", "안녕하세요", domain.ScriptHangul, "korean"},
		{"hiragana", "こんにちは", domain.ScriptHiragana, "japanese"},
		{"han", "你好世界", domain.ScriptHan, "chinese"},
		{"arabic", "مرحبا", domain.ScriptArabic, "arabic"},
		{"hebrew", "שלום", domain.ScriptHebrew, "hebrew"},
		{"cyrillic", "привет мир", domain.ScriptCyrillic, "russian"},
		{"greek", "γειά σου", domain.ScriptGreek, "greek"},
		{"georgian", "გამარჯობა", domain.ScriptGeorgian, "georgian"},
		{"ethiopic", "ሰላም", domain.ScriptEthiopic, "amharic"},
		{"thai", "สวัสดี", domain.ScriptThai, "thai"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			det := reg.DetectScript(tt.text)
			assert.Equal(t, tt.script, det.Script)
			assert.Equal(t, tt.language, det.Language)
			assert.Greater(t, det.Confidence, 0.5)
			assert.LessOrEqual(t, det.Confidence, 1.0)
		})
	}
}

func TestDetectScript_Latin(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	det := reg.DetectScript("hello world")
	assert.Equal(t, domain.ScriptLatin, det.Script)
	assert.Equal(t, "english", det.Language)
	assert.Equal(t, 1.0, det.Confidence)

	// Mostly digits: Latin ratio below 0.5 floors confidence at 0.5.
	det = reg.DetectScript("1234567890 ab")
	assert.Equal(t, domain.ScriptLatin, det.Script)
	assert.Equal(t, 0.5, det.Confidence)
}

func TestDetectScript_Empty(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	det := reg.DetectScript("   ")
	assert.Equal(t, domain.ScriptLatin, det.Script)
	assert.Equal(t, "english", det.Language)
	assert.Equal(t, 1.0, det.Confidence)
}

func TestDetectScript_RTLFlag(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	assert.True(t, reg.DetectScript("مرحبا").RTL)
	assert.True(t, reg.DetectScript("שלום").RTL)
	assert.False(t, reg.DetectScript("привет").RTL)
}

func TestDetectScript_MixedContent(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	// Devanagari with Latin mixed in: Devanagari wins (ordered first match)
	// with partial confidence.
	det := reg.DetectScript("नमस्ते hello")
	assert.Equal(t, domain.ScriptDevanagari, det.Script)
	assert.Less(t, det.Confidence, 1.0)
	assert.Greater(t, det.Confidence, 0.0)
}

func TestIsLatinText(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	assert.True(t, reg.IsLatinText("namaste"))
	assert.True(t, reg.IsLatinText("hello, world! 42"))
	assert.False(t, reg.IsLatinText("नमस्ते"))
	assert.False(t, reg.IsLatinText("mixed नमस्ते text"))
}
