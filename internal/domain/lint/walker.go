package lint

import "github.com/corey/jlint/internal/domain/syntax"

// Walk traverses the tree rooted at root and dispatches each node to the
// rules that declared interest in its kind. Dispatch is a tag match, not a
// per-node virtual call: the kind table is built once per walk. Findings
// come back in tree order; a structural error aborts the walk.
func Walk(root syntax.Node, rules []Rule) ([]Finding, error) {
	if root == nil || len(rules) == 0 {
		return nil, nil
	}

	byKind := make(map[syntax.Kind][]Rule)
	for _, r := range rules {
		for _, k := range r.ApplicableKinds() {
			byKind[k] = append(byKind[k], r)
		}
	}

	var findings []Finding
	var walk func(n syntax.Node) error
	walk = func(n syntax.Node) error {
		for _, r := range byKind[n.Kind()] {
			f, err := r.Evaluate(n)
			if err != nil {
				return err
			}
			if f != nil {
				findings = append(findings, *f)
			}
		}
		for i := 0; i < n.ChildCount(); i++ {
			c := n.Child(i)
			if c == nil {
				continue
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return findings, nil
}
