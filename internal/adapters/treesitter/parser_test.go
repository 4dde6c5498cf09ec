package treesitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/jlint/internal/domain/lint"
)

func TestSupportsExtension(t *testing.T) {
	p := NewParser()
	assert.True(t, p.SupportsExtension(".java"))
	assert.True(t, p.SupportsExtension(".JAVA"))
	assert.False(t, p.SupportsExtension(".go"))
	assert.False(t, p.SupportsExtension(""))
}

func TestParseFileSkipsNonJava(t *testing.T) {
	p := NewParser()
	parsed, err := p.ParseFile("notes.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

// walkJava parses src and runs a single parameter count rule over the tree.
func walkJava(t *testing.T, src string, cfg lint.ParameterNumberConfig) []lint.Finding {
	t.Helper()
	p := NewParser()
	parsed, err := p.ParseFile("Test.java", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, parsed)
	defer parsed.Close()

	rule, err := lint.NewParameterNumberRule(cfg, nil)
	require.NoError(t, err)

	findings, err := lint.Walk(parsed.Root(), []lint.Rule{rule})
	require.NoError(t, err)
	return findings
}

func TestMethodOverLimit(t *testing.T) {
	src := `class Widget {
    void render(int a, int b, int c, int d, int e, int f, int g, int h) {
    }
}
`
	findings := walkJava(t, src, lint.DefaultParameterNumberConfig())
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, lint.RuleIDParameterNumber, f.Rule)
	assert.Equal(t, []any{7, 8}, f.Args)
	assert.Equal(t, 2, f.Line, "reported at the method name")
	assert.Equal(t, 10, f.Column)
}

func TestMethodAtLimit(t *testing.T) {
	src := `class Widget {
    void render(int a, int b, int c, int d, int e, int f, int g) {
    }
}
`
	assert.Empty(t, walkJava(t, src, lint.DefaultParameterNumberConfig()))
}

func TestConstructorOverLimit(t *testing.T) {
	src := `class Widget {
    Widget(int a, int b, int c) {
    }
}
`
	findings := walkJava(t, src, lint.ParameterNumberConfig{Max: 2})
	require.Len(t, findings, 1)
	assert.Equal(t, []any{2, 3}, findings[0].Args)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, 5, findings[0].Column)
}

func TestVarargsCounted(t *testing.T) {
	src := `class Joiner {
    String join(String sep, String first, Object... rest) {
        return sep;
    }
}
`
	findings := walkJava(t, src, lint.ParameterNumberConfig{Max: 2})
	require.Len(t, findings, 1)
	assert.Equal(t, []any{2, 3}, findings[0].Args)
}

func TestOverrideExemption(t *testing.T) {
	src := `class Impl extends Base {
    @Override
    void visit(int a, int b, int c, int d, int e, int f, int g, int h) {
    }
}
`
	cfg := lint.ParameterNumberConfig{Max: 7, IgnoreOverriddenMethods: true}
	assert.Empty(t, walkJava(t, src, cfg))

	cfg.IgnoreOverriddenMethods = false
	assert.Len(t, walkJava(t, src, cfg), 1)
}

func TestQualifiedOverrideExemption(t *testing.T) {
	src := `class Impl extends Base {
    @java.lang.Override
    void visit(int a, int b, int c, int d, int e, int f, int g, int h) {
    }
}
`
	cfg := lint.ParameterNumberConfig{Max: 7, IgnoreOverriddenMethods: true}
	assert.Empty(t, walkJava(t, src, cfg))
}

func TestUnrelatedAnnotationDoesNotExempt(t *testing.T) {
	src := `class Impl extends Base {
    @Deprecated
    void visit(int a, int b, int c, int d, int e, int f, int g, int h) {
    }
}
`
	cfg := lint.ParameterNumberConfig{Max: 7, IgnoreOverriddenMethods: true}
	assert.Len(t, walkJava(t, src, cfg), 1)
}

func TestNestedAndMultipleDeclarations(t *testing.T) {
	src := `class Outer {
    void narrow(int a) {
    }

    void wide(int a, int b, int c) {
        class Local {
            Local(int x, int y, int z) {
            }
        }
    }
}
`
	findings := walkJava(t, src, lint.ParameterNumberConfig{Max: 2})
	require.Len(t, findings, 2)
	assert.Equal(t, 5, findings[0].Line)
	assert.Equal(t, 7, findings[1].Line)
}

func TestGenericMethodReportedAtName(t *testing.T) {
	src := `class Box {
    <T> T pick(T a, T b, T c) {
        return a;
    }
}
`
	findings := walkJava(t, src, lint.ParameterNumberConfig{Max: 2})
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, 11, findings[0].Column)
}
