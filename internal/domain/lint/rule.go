// Package lint holds the analysis rules and the machinery that dispatches
// parsed declarations to them. Rules read a syntax.Node tree, never mutate
// it, and report violations as Findings.
package lint

import "github.com/corey/jlint/internal/domain/syntax"

// Rule is a single analysis rule evaluated once per matching node.
type Rule interface {
	ID() string
	Summary() string

	// ApplicableKinds returns the node kinds the walker dispatches to this
	// rule. Pure and stateless.
	ApplicableKinds() []syntax.Kind

	// Evaluate inspects one declaration node and returns zero or one
	// finding. A StructuralError means the tree breaks the declaration
	// shape contract and the run aborts.
	Evaluate(node syntax.Node) (*Finding, error)
}

// AnnotationResolver reports whether a declaration node carries an
// annotation with the given resolved name. The built-in resolver does a
// textual scan of the declaration's modifier children; hosts may supply a
// stricter one (e.g. import-aware) without changing any rule.
type AnnotationResolver interface {
	ContainsAnnotation(decl syntax.Node, name string) bool
}
