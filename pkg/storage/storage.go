package storage

// Writer persists rendered documentation targets. Paths are slash-separated
// and relative to the writer's root; writers create intermediate directories
// as needed and overwrite existing targets.
type Writer interface {
	WriteFile(relPath string, content string) error
}
