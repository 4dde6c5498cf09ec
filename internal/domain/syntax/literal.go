package syntax

// LiteralNode is a self-contained Node for trees built in memory. Tests and
// tree providers that materialize their own nodes use it; the tree-sitter
// adapter wraps live parser nodes instead.
type LiteralNode struct {
	NodeKind Kind
	NodeText string
	NodePos  Position
	Nodes    []Node
}

// Lit builds a LiteralNode from a kind and children.
func Lit(kind Kind, children ...Node) *LiteralNode {
	return &LiteralNode{NodeKind: kind, Nodes: children}
}

// Leaf builds a leaf LiteralNode carrying text and a position.
func Leaf(kind Kind, text string, line, column int) *LiteralNode {
	return &LiteralNode{NodeKind: kind, NodeText: text, NodePos: Position{Line: line, Column: column}}
}

func (n *LiteralNode) Kind() Kind      { return n.NodeKind }
func (n *LiteralNode) ChildCount() int { return len(n.Nodes) }
func (n *LiteralNode) Text() string    { return n.NodeText }
func (n *LiteralNode) Pos() Position   { return n.NodePos }

func (n *LiteralNode) Child(i int) Node {
	if i < 0 || i >= len(n.Nodes) {
		return nil
	}
	return n.Nodes[i]
}
