package lint

import (
	"sort"
	"strings"
)

// Options carries rule-specific configuration values as loaded from the
// config file ("checks.<RuleID>.<option>"). Factories validate and convert.
type Options map[string]any

// Factory builds a configured rule instance. A nil annotations resolver
// selects the built-in tree-scanning one.
type Factory func(opts Options, annotations AnnotationResolver) (Rule, error)

// Entry describes a registered rule.
type Entry struct {
	ID      string
	Summary string
	New     Factory
}

var (
	registry  []Entry
	ruleIndex = map[string]int{} // lower(ruleID) -> index
)

// Register adds a rule to the registry. Called from init.
func Register(e Entry) {
	registry = append(registry, e)
	ruleIndex[strings.ToLower(strings.TrimSpace(e.ID))] = len(registry) - 1
}

// List returns all registered rules sorted by ID.
func List() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a registered rule by ID, case-insensitively.
func Get(id string) (Entry, bool) {
	idx, ok := ruleIndex[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Entry{}, false
	}
	return registry[idx], true
}

// Build constructs the enabled rule set from per-rule options and a
// disabled list. Construction fails on the first invalid option, so a bad
// threshold aborts the run before any file is read.
func Build(opts map[string]Options, disabled []string, annotations AnnotationResolver) ([]Rule, error) {
	skip := make(map[string]bool, len(disabled))
	for _, id := range disabled {
		skip[strings.ToLower(strings.TrimSpace(id))] = true
	}

	var rules []Rule
	for _, e := range List() {
		if skip[strings.ToLower(e.ID)] {
			continue
		}
		r, err := e.New(opts[e.ID], annotations)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// intOption converts a config value to int. YAML and JSON loaders hand
// numbers over as int or float64 depending on the source.
func intOption(rule, option string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &ConfigError{Rule: rule, Option: option, Value: v, Reason: "must be an integer"}
}

func boolOption(rule, option string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, &ConfigError{Rule: rule, Option: option, Value: v, Reason: "must be a boolean"}
}
