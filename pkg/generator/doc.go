// Package generator orchestrates documentation generation runs.
//
// # Overview
//
// This package ties the pipeline together: it enumerates the configured
// input trees, feeds each file through the scanner and resolver, renders the
// resulting document tree and writes every target through a storage.Writer.
// Each run gets a unique id that tags its log records.
//
// # Pipeline
//
// One run performs, in order:
//   - Walk the source tree for files with the source extension
//   - Walk the docs tree for narrative scripts, when configured
//   - Resolve every flushed comment block into the document tree
//   - Write each rendered target, then the module index
//
// Files are visited in lexical walk order and targets are written in sorted
// path order, so a run over the same inputs always produces the same output.
//
// # Usage Example
//
// One-shot generation:
//
//	writer, err := storage.NewFileSystemWriter(cfg.OutputDir)
//	if err != nil {
//		return err
//	}
//	gen := generator.New(cfg, writer, logger)
//	summary, err := gen.Run()
//
// Continuous regeneration:
//
//	stop := make(chan struct{})
//	go func() {
//		<-sigChan
//		close(stop)
//	}()
//	err := gen.Watch(time.Duration(cfg.Watch.Delay), stop)
//
// # Related Packages
//
//   - pkg/scanner: Line classification and comment buffering
//   - pkg/extract: Comment block to node resolution
//   - pkg/doctree: Document tree and rendering
//   - pkg/storage: Output backends
package generator
