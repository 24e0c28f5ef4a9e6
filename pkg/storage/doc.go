// Package storage provides the output backends for rendered documentation.
//
// # Overview
//
// This package defines the write-side abstraction for codedoc: the generator
// renders every documentation target to a string and hands it to a Writer
// together with a slash-separated relative path. Writers own path layout on
// their medium, directory creation and overwrite semantics; the generator
// stays agnostic of where output lands.
//
// # Writers
//
// FileSystemWriter: Writes targets below a root directory on local disk,
// creating intermediate directories on demand. This is the backend behind
// `codedoc generate`.
//
//	writer, err := storage.NewFileSystemWriter("build/docs")
//
// MemoryWriter: Records writes in memory, keeping content per path and the
// order in which paths were first written. This is the backend behind
// `codedoc check` and most generator tests, where the interesting output is
// which targets a run produces rather than bytes on disk.
//
//	writer := storage.NewMemoryWriter()
//
// # Usage
//
//	writer, err := storage.NewFileSystemWriter(outputDir)
//	if err != nil {
//		return err
//	}
//	if err := writer.WriteFile("modules/game.rst", page); err != nil {
//		return err
//	}
//
// # Design Decisions
//
// Relative slash paths: Writers receive the same path strings the document
// tree reports as targets, so the mapping from a generation run to its
// output set is visible in one place and identical across backends.
//
// Whole-file strings: Targets are small rendered text files, so the
// interface trades streaming for the simplest possible contract. A write
// either fully replaces the target or fails.
package storage
