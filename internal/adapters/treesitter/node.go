package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/jlint/internal/domain/syntax"
)

// syntaxNode adapts a live tree-sitter node to the domain syntax.Node view.
// Tree-sitter rows and columns are 0-based; the domain uses 1-based
// positions, converted here once at the boundary.
type syntaxNode struct {
	inner *tree_sitter.Node
	src   []byte
}

func (n syntaxNode) Kind() syntax.Kind {
	return syntax.Kind(n.inner.Kind())
}

func (n syntaxNode) ChildCount() int {
	return int(n.inner.ChildCount())
}

func (n syntaxNode) Child(i int) syntax.Node {
	if i < 0 || i >= int(n.inner.ChildCount()) {
		return nil
	}
	c := n.inner.Child(uint(i))
	if c == nil {
		return nil
	}
	return syntaxNode{inner: c, src: n.src}
}

func (n syntaxNode) Text() string {
	start, end := n.inner.StartByte(), n.inner.EndByte()
	if int(start) >= len(n.src) || int(end) > len(n.src) {
		return ""
	}
	return string(n.src[start:end])
}

func (n syntaxNode) Pos() syntax.Position {
	p := n.inner.StartPosition()
	return syntax.Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
