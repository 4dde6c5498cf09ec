package ports

// Watcher monitors a directory tree for file changes.
type Watcher interface {
	// Watch starts monitoring projectPath recursively. onChange receives
	// the absolute path of each changed file.
	Watch(projectPath string, onChange func(filePath string)) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}
