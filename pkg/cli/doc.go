// Package cli provides the codedoc command-line interface.
//
// # Overview
//
// This package implements the `codedoc` tool: it extracts documentation
// comments from a source tree and narrative scripts and writes a rendered
// reStructuredText tree, either once or continuously in watch mode.
//
// # Commands
//
// generate: Extract and write the documentation tree
//
//	codedoc generate \
//		--src ./src \
//		--docs ./docs \
//		--out build/docs
//
// Watch mode:
//
//	codedoc generate --watch --watch-delay 2s
//
// check: Dry run, list the targets a generation would write
//
//	codedoc check --src ./src
//
// version: Print version information
//
//	codedoc version
//
// # Configuration
//
// Every input flag mirrors a config file key and a CODEDOC_* environment
// variable; precedence is flags over environment over the config file over
// built-in defaults. See pkg/config for the file format.
package cli
