package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingobridge/translator-backend/internal/domain"
	"github.com/lingobridge/translator-backend/internal/tokenizer"
)

var (
	svoBefore = domain.LanguageProfile{WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveBefore}
	sovBefore = domain.LanguageProfile{WordOrder: domain.WordOrderSOV, AdjectivePosition: domain.AdjectiveBefore}
	vsoBefore = domain.LanguageProfile{WordOrder: domain.WordOrderVSO, AdjectivePosition: domain.AdjectiveBefore}
	svoAfter  = domain.LanguageProfile{WordOrder: domain.WordOrderSVO, AdjectivePosition: domain.AdjectiveAfter}
)

func TestNeedsReordering(t *testing.T) {
	t.Parallel()

	assert.False(t, NeedsReordering(svoBefore, svoBefore))
	assert.True(t, NeedsReordering(svoBefore, sovBefore))
	assert.True(t, NeedsReordering(svoBefore, vsoBefore))
	assert.True(t, NeedsReordering(svoBefore, svoAfter))
}

func TestReorder_SOVMovesVerbToEnd(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("I eat apples.")
	out, corrections := Reorder(tokens, svoBefore, sovBefore)

	assert.Equal(t, "I apples eat.", domain.TokensToString(out))
	require.Len(t, corrections, 1)
	assert.Equal(t, domain.CorrectionWordOrder, corrections[0].Type)
}

func TestReorder_VSOMovesVerbToFront(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("I eat apples.")
	out, corrections := Reorder(tokens, svoBefore, vsoBefore)

	assert.Equal(t, "eat I apples.", domain.TokensToString(out))
	assert.Len(t, corrections, 1)
}

func TestReorder_AdjectiveAfterNoun(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("the red house")
	out, corrections := Reorder(tokens, svoBefore, svoAfter)

	assert.Equal(t, "the house red", domain.TokensToString(out))
	require.Len(t, corrections, 1)
	assert.Equal(t, "adjective moved after noun", corrections[0].Reason)
}

func TestReorder_SameOrderNoChange(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("I eat apples.")
	out, corrections := Reorder(tokens, svoBefore, svoBefore)

	assert.Equal(t, "I eat apples.", domain.TokensToString(out))
	assert.Empty(t, corrections)
}

func TestReorder_NoVerbNoMove(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("the house")
	out, corrections := Reorder(tokens, svoBefore, sovBefore)

	assert.Equal(t, "the house", domain.TokensToString(out))
	assert.Empty(t, corrections)
}

func TestReorder_PunctuationStaysTerminal(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("I eat apples!")
	out, _ := Reorder(tokens, svoBefore, sovBefore)

	s := domain.TokensToString(out)
	assert.Equal(t, "I apples eat!", s)
}

func TestReorder_Empty(t *testing.T) {
	t.Parallel()

	out, corrections := Reorder(nil, svoBefore, sovBefore)
	assert.Empty(t, out)
	assert.Empty(t, corrections)
}
