package lint

import "github.com/corey/jlint/internal/domain/syntax"

// RuleIDParameterNumber identifies the parameter count rule.
const RuleIDParameterNumber = "ParameterNumber"

// Options accepted under checks.ParameterNumber.
const (
	OptionMax              = "max"
	OptionIgnoreOverridden = "ignoreOverriddenMethods"
)

const (
	overrideAnnotation   = "Override"
	fqOverrideAnnotation = "java.lang." + overrideAnnotation
)

// DefaultMaxParameters is the allowed parameter count when unconfigured.
const DefaultMaxParameters = 7

// ParameterNumberConfig holds the rule's two settings. Constructed once
// before a run and immutable afterward.
type ParameterNumberConfig struct {
	Max                     int
	IgnoreOverriddenMethods bool
}

// DefaultParameterNumberConfig returns the stock configuration.
func DefaultParameterNumberConfig() ParameterNumberConfig {
	return ParameterNumberConfig{Max: DefaultMaxParameters}
}

// ParameterNumberRule flags method and constructor declarations whose
// formal parameter count exceeds a threshold. With IgnoreOverriddenMethods
// set, declarations annotated @Override or @java.lang.Override are exempt.
// Both spellings are matched by plain string comparison with no import
// resolution, so any annotation written Override exempts.
type ParameterNumberRule struct {
	cfg         ParameterNumberConfig
	annotations AnnotationResolver
}

func init() {
	Register(Entry{
		ID:      RuleIDParameterNumber,
		Summary: "Checks the number of parameters of a method or constructor.",
		New:     newParameterNumber,
	})
}

func newParameterNumber(opts Options, annotations AnnotationResolver) (Rule, error) {
	cfg := DefaultParameterNumberConfig()
	if v, ok := opts[OptionMax]; ok {
		n, err := intOption(RuleIDParameterNumber, OptionMax, v)
		if err != nil {
			return nil, err
		}
		cfg.Max = n
	}
	if v, ok := opts[OptionIgnoreOverridden]; ok {
		b, err := boolOption(RuleIDParameterNumber, OptionIgnoreOverridden, v)
		if err != nil {
			return nil, err
		}
		cfg.IgnoreOverriddenMethods = b
	}
	return NewParameterNumberRule(cfg, annotations)
}

// NewParameterNumberRule validates cfg and builds the rule. A non-positive
// Max is a ConfigError; the caller must abort the run rather than clamp.
func NewParameterNumberRule(cfg ParameterNumberConfig, annotations AnnotationResolver) (*ParameterNumberRule, error) {
	if cfg.Max < 1 {
		return nil, &ConfigError{
			Rule:   RuleIDParameterNumber,
			Option: OptionMax,
			Value:  cfg.Max,
			Reason: "must be a positive integer",
		}
	}
	if annotations == nil {
		annotations = TreeAnnotations{}
	}
	return &ParameterNumberRule{cfg: cfg, annotations: annotations}, nil
}

func (r *ParameterNumberRule) ID() string      { return RuleIDParameterNumber }
func (r *ParameterNumberRule) Summary() string { return "Checks the number of parameters of a method or constructor." }

// Config returns the rule's effective configuration.
func (r *ParameterNumberRule) Config() ParameterNumberConfig { return r.cfg }

func (r *ParameterNumberRule) ApplicableKinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindMethodDeclaration, syntax.KindConstructorDeclaration}
}

func (r *ParameterNumberRule) Evaluate(node syntax.Node) (*Finding, error) {
	params := syntax.FirstChild(node, syntax.KindFormalParameters)
	if params == nil {
		return nil, &StructuralError{Node: node.Kind(), Missing: syntax.KindFormalParameters}
	}

	// Only parameter children count; punctuation and comments never do.
	count := syntax.CountChildren(params, syntax.IsParameter)
	if count <= r.cfg.Max {
		return nil, nil
	}

	if r.cfg.IgnoreOverriddenMethods &&
		(r.annotations.ContainsAnnotation(node, overrideAnnotation) ||
			r.annotations.ContainsAnnotation(node, fqOverrideAnnotation)) {
		return nil, nil
	}

	// Report at the declaration's name: the method identifier, or for
	// constructors the type-name identifier.
	name := syntax.FirstChild(node, syntax.KindIdentifier)
	if name == nil {
		return nil, &StructuralError{Node: node.Kind(), Missing: syntax.KindIdentifier}
	}
	pos := name.Pos()
	return &Finding{
		Rule:   RuleIDParameterNumber,
		Line:   pos.Line,
		Column: pos.Column,
		Key:    MsgMaxParam,
		Args:   []any{r.cfg.Max, count},
	}, nil
}
