package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingobridge/translator-backend/internal/domain"
)

var plain = domain.LanguageProfile{Code: "en"}

func TestClean_Whitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello world", Clean("hello   world", plain))
	assert.Equal(t, "One two three", Clean("  one \t two\n three  ", plain))
}

func TestClean_PunctuationSpacing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello, world!", Clean("hello , world !", plain))
	assert.Equal(t, "Yes. No. Maybe.", Clean("yes.no.maybe.", plain))
	// An ellipsis counts as a sentence end, so the next word is capitalized.
	assert.Equal(t, "Wait... Done", Clean("wait... done", plain))
}

func TestClean_Capitalization(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello world. How are you? Fine!",
		Clean("hello world. how are you? fine!", plain))
}

func TestClean_UncasedScriptUntouched(t *testing.T) {
	t.Parallel()

	hindi := domain.LanguageProfile{Code: "hi"}
	assert.Equal(t, "नमस्ते दुनिया", Clean("नमस्ते   दुनिया", hindi))
}

func TestClean_SentenceEndParticle(t *testing.T) {
	t.Parallel()

	japanese := domain.LanguageProfile{Code: "ja", SentenceEndParticle: "。"}
	assert.Equal(t, "こんにちは。", Clean("こんにちは", japanese))
	// Already terminated text is left alone.
	assert.Equal(t, "こんにちは。", Clean("こんにちは。", japanese))
}

func TestClean_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Clean("", plain))
	assert.Equal(t, "", Clean("   ", plain))
}

func TestClean_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"hello , world !  how are you",
		"MIXED case. already Clean text?",
		"números y signos: 1,2 , 3 !",
		"одно предложение. второе предложение",
	}
	for _, in := range inputs {
		once := Clean(in, plain)
		assert.Equal(t, once, Clean(once, plain), "input %q", in)
	}
}
