// Package syntax defines the read-only view of a parsed Java source tree
// that lint rules operate on. The concrete tree is produced by a tree
// provider (internal/adapters/treesitter); rules only ever see this
// interface and never mutate the tree.
package syntax

// Kind is the node tag from the Java grammar's token taxonomy.
type Kind string

// Node kinds the rules dispatch on or navigate through. The names follow
// the tree-sitter Java grammar so the adapter is a straight cast.
const (
	KindMethodDeclaration      Kind = "method_declaration"
	KindConstructorDeclaration Kind = "constructor_declaration"
	KindFormalParameters       Kind = "formal_parameters"
	KindFormalParameter        Kind = "formal_parameter"
	KindSpreadParameter        Kind = "spread_parameter"
	KindReceiverParameter      Kind = "receiver_parameter"
	KindIdentifier             Kind = "identifier"
	KindScopedIdentifier       Kind = "scoped_identifier"
	KindModifiers              Kind = "modifiers"
	KindMarkerAnnotation       Kind = "marker_annotation"
	KindAnnotation             Kind = "annotation"
)

// Position is a 1-based source location.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Node is one node of the parsed tree: a kind tag, ordered children, and
// for leaf identifier nodes a source position and text.
type Node interface {
	Kind() Kind
	ChildCount() int
	// Child returns the i-th child, or nil when i is out of range.
	Child(i int) Node
	// Text returns the source text the node spans.
	Text() string
	// Pos returns the node's start position.
	Pos() Position
}

// IsParameter reports whether a kind counts as a formal parameter.
// Varargs (spread_parameter) count; the receiver parameter does not.
func IsParameter(k Kind) bool {
	return k == KindFormalParameter || k == KindSpreadParameter
}

// FirstChild returns the first direct child with the given kind, or nil.
func FirstChild(n Node, kind Kind) Node {
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

// CountChildren counts direct children matching pred.
func CountChildren(n Node, pred func(Kind) bool) int {
	count := 0
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil && pred(c.Kind()) {
			count++
		}
	}
	return count
}
