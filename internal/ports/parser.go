// Package ports defines the boundary interfaces between the lint domain
// and its collaborators: the tree provider, the run store, the file
// watcher, and the reporting sink. Concrete implementations live in
// internal/adapters.
package ports

import "github.com/corey/jlint/internal/domain/syntax"

// ParsedFile is one parsed source file. Close releases the underlying
// parse tree; nodes obtained from Root must not be used afterward.
type ParsedFile interface {
	Root() syntax.Node
	Close()
}

// Parser turns source text into a syntax tree. The lint rules never parse;
// they receive pre-built trees through this interface.
type Parser interface {
	// ParseFile parses a source file. Returns nil, nil for files the
	// parser does not handle (not an error).
	ParseFile(path string, source []byte) (ParsedFile, error)

	// SupportsExtension reports whether files with this extension are
	// parsed. Extension includes the leading dot.
	SupportsExtension(ext string) bool
}
