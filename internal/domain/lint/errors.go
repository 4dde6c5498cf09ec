package lint

import (
	"fmt"

	"github.com/corey/jlint/internal/domain/syntax"
)

// ConfigError reports an invalid rule option. The run must not start with a
// bad configuration, so callers abort rather than clamp.
type ConfigError struct {
	Rule   string
	Option string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: option %q = %v: %s", e.Rule, e.Option, e.Value, e.Reason)
}

// StructuralError reports a tree that violates the declaration shape the
// tree provider guarantees (a declaration missing its parameter list or its
// name identifier). It indicates a provider bug, not a user code issue, and
// propagates to the host unrecovered.
type StructuralError struct {
	Node    syntax.Kind
	Missing syntax.Kind
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("malformed tree: %s has no %s child", e.Node, e.Missing)
}
