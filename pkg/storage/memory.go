package storage

// MemoryWriter implements the Writer interface in memory, recording every
// write. It backs dry runs and tests, where the interesting output is the
// list of targets rather than files on disk.
type MemoryWriter struct {
	files map[string]string
	order []string
}

// NewMemoryWriter creates an empty in-memory writer
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string]string)}
}

// WriteFile implements Writer.WriteFile
func (w *MemoryWriter) WriteFile(relPath string, content string) error {
	if _, ok := w.files[relPath]; !ok {
		w.order = append(w.order, relPath)
	}
	w.files[relPath] = content
	return nil
}

// Content returns the last content written to relPath
func (w *MemoryWriter) Content(relPath string) (string, bool) {
	content, ok := w.files[relPath]
	return content, ok
}

// Paths returns every written path in first-write order
func (w *MemoryWriter) Paths() []string {
	paths := make([]string, len(w.order))
	copy(paths, w.order)
	return paths
}
