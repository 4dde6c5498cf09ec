// Package treesitter implements the ports.Parser interface for Java using
// the tree-sitter grammar. The C grammar compiles into the binary via CGo;
// parsed nodes are adapted to the domain syntax.Node view so the lint rules
// never see tree-sitter types.
package treesitter

import (
	"fmt"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	ts_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/corey/jlint/internal/domain/syntax"
	"github.com/corey/jlint/internal/ports"
)

// Parser parses .java files.
type Parser struct {
	lang *tree_sitter.Language
}

// NewParser creates a parser with the Java grammar loaded.
func NewParser() *Parser {
	return &Parser{lang: tree_sitter.NewLanguage(ts_java.Language())}
}

// SupportsExtension reports whether the parser handles this extension.
func (p *Parser) SupportsExtension(ext string) bool {
	return strings.ToLower(ext) == ".java"
}

// ParseFile parses Java source into a tree. Returns nil, nil for
// non-Java files. The caller owns the returned tree and must Close it.
func (p *Parser) ParseFile(path string, source []byte) (ports.ParsedFile, error) {
	if !p.SupportsExtension(filepath.Ext(path)) {
		return nil, nil
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(p.lang); err != nil {
		return nil, fmt.Errorf("set java grammar: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s: no tree produced", path)
	}
	return &Tree{tree: tree, src: source}, nil
}

// Tree keeps the tree-sitter parse tree alive while rules walk its nodes.
type Tree struct {
	tree *tree_sitter.Tree
	src  []byte
}

// Root returns the tree's root as a domain node.
func (t *Tree) Root() syntax.Node {
	return syntaxNode{inner: t.tree.RootNode(), src: t.src}
}

// Close releases the parse tree.
func (t *Tree) Close() {
	t.tree.Close()
}
