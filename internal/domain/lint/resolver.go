package lint

import "github.com/corey/jlint/internal/domain/syntax"

// TreeAnnotations is the built-in AnnotationResolver: a linear scan of the
// declaration's modifiers child for an annotation whose written name equals
// the candidate. Annotation lists are short (typically 0-3 entries), so no
// index is kept.
type TreeAnnotations struct{}

func (TreeAnnotations) ContainsAnnotation(decl syntax.Node, name string) bool {
	mods := syntax.FirstChild(decl, syntax.KindModifiers)
	if mods == nil {
		return false
	}
	for i := 0; i < mods.ChildCount(); i++ {
		c := mods.Child(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case syntax.KindMarkerAnnotation, syntax.KindAnnotation:
			if annotationName(c) == name {
				return true
			}
		}
	}
	return false
}

// annotationName returns the written name of an annotation node: the
// identifier for @Override, the scoped identifier for @java.lang.Override.
func annotationName(n syntax.Node) string {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case syntax.KindIdentifier, syntax.KindScopedIdentifier:
			return c.Text()
		}
	}
	return ""
}
