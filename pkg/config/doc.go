// Package config provides generation configuration from YAML files and
// environment variables.
//
// # Overview
//
// This package builds the effective configuration in layers. Built-in
// defaults come first, then a project config file when present, then
// CODEDOC_* environment variables. Command line flags are applied last by
// the CLI, so the precedence is flags over environment over file over
// defaults.
//
// # Config File
//
// The project file is YAML, discovered as codedoc.yaml, codedoc.yml,
// .codedoc.yaml or .codedoc.yml in the working directory:
//
//	source_dir: src
//	source_ext: .js
//	docs_dir: docs
//	script_ext: .py
//	output_dir: docs
//	log_level: info
//	watch:
//	  enabled: false
//	  delay: 2s
//
// # Environment Variables
//
//	CODEDOC_SOURCE_DIR="src"
//	CODEDOC_SOURCE_EXT=".js"
//	CODEDOC_DOCS_DIR="docs"
//	CODEDOC_SCRIPT_EXT=".py"
//	CODEDOC_OUTPUT_DIR="docs"
//	CODEDOC_LOG_LEVEL="info"  # debug, info, warn, error
//	CODEDOC_WATCH="false"
//	CODEDOC_WATCH_DELAY="2s"
//
// # Usage Example
//
//	cfg, err := config.LoadConfig(config.FindConfigFile("."))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Sources: %s (%s)\n", cfg.SourceDir, cfg.SourceExt)
//	fmt.Printf("Output:  %s\n", cfg.OutputDir)
package config
