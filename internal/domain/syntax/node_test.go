package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsParameter(t *testing.T) {
	assert.True(t, IsParameter(KindFormalParameter))
	assert.True(t, IsParameter(KindSpreadParameter))
	assert.False(t, IsParameter(KindReceiverParameter))
	assert.False(t, IsParameter(KindIdentifier))
	assert.False(t, IsParameter(","))
}

func TestFirstChild(t *testing.T) {
	n := Lit(KindMethodDeclaration,
		Lit(KindModifiers),
		Leaf(KindIdentifier, "a", 1, 1),
		Leaf(KindIdentifier, "b", 1, 5),
	)

	got := FirstChild(n, KindIdentifier)
	if assert.NotNil(t, got) {
		assert.Equal(t, "a", got.Text(), "first match wins")
	}
	assert.Nil(t, FirstChild(n, KindFormalParameters))
}

func TestCountChildren(t *testing.T) {
	n := Lit(KindFormalParameters,
		Leaf("(", "(", 1, 1),
		Lit(KindFormalParameter),
		Leaf(",", ",", 1, 8),
		Lit(KindSpreadParameter),
		Leaf(")", ")", 1, 20),
	)
	assert.Equal(t, 2, CountChildren(n, IsParameter), "punctuation is not counted")
}

func TestLiteralNodeChildBounds(t *testing.T) {
	n := Lit(KindModifiers, Leaf(KindIdentifier, "x", 1, 1))
	assert.Nil(t, n.Child(-1))
	assert.Nil(t, n.Child(1))
	assert.NotNil(t, n.Child(0))
}
