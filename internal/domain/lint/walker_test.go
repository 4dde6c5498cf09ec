package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/jlint/internal/domain/syntax"
)

func TestWalkFindingsInTreeOrder(t *testing.T) {
	r := mustRule(t, ParameterNumberConfig{Max: 1})

	root := syntax.Lit("program",
		syntax.Lit("class_declaration",
			syntax.Lit("class_body",
				methodDecl("first", 3, 10, formalParams(2)),
				methodDecl("clean", 6, 10, formalParams(1)),
				methodDecl("second", 9, 10, formalParams(4)),
			),
		),
	)

	findings, err := Walk(root, []Rule{r})
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, 3, findings[0].Line)
	assert.Equal(t, []any{1, 2}, findings[0].Args)
	assert.Equal(t, 9, findings[1].Line)
	assert.Equal(t, []any{1, 4}, findings[1].Args)
}

func TestWalkNestedDeclarations(t *testing.T) {
	// A local class inside a method body is still visited.
	r := mustRule(t, ParameterNumberConfig{Max: 1})

	inner := syntax.Lit(syntax.KindConstructorDeclaration,
		syntax.Leaf(syntax.KindIdentifier, "Local", 5, 16),
		formalParams(3),
	)
	root := syntax.Lit("program",
		syntax.Lit(syntax.KindMethodDeclaration,
			syntax.Leaf(syntax.KindIdentifier, "outer", 2, 10),
			formalParams(0),
			syntax.Lit("block",
				syntax.Lit("local_class_declaration", syntax.Lit("class_body", inner)),
			),
		),
	)

	findings, err := Walk(root, []Rule{r})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, 5, findings[0].Line)
}

func TestWalkStructuralErrorAborts(t *testing.T) {
	r := mustRule(t, DefaultParameterNumberConfig())

	root := syntax.Lit("program",
		syntax.Lit(syntax.KindMethodDeclaration,
			syntax.Leaf(syntax.KindIdentifier, "broken", 1, 1)),
		methodDecl("after", 8, 10, formalParams(9)),
	)

	findings, err := Walk(root, []Rule{r})
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Nil(t, findings)
}

func TestWalkNoRules(t *testing.T) {
	findings, err := Walk(methodDecl("m", 1, 1, formalParams(20)), nil)
	require.NoError(t, err)
	assert.Nil(t, findings)
}

func TestWalkNilRoot(t *testing.T) {
	r := mustRule(t, DefaultParameterNumberConfig())
	findings, err := Walk(nil, []Rule{r})
	require.NoError(t, err)
	assert.Nil(t, findings)
}
