package generator

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alhimik45/codedoc/pkg/config"
	"github.com/alhimik45/codedoc/pkg/doctree"
	"github.com/alhimik45/codedoc/pkg/extract"
	"github.com/alhimik45/codedoc/pkg/storage"
)

// Generator runs the extraction pipeline: enumerate input trees, scan and
// resolve every file into a document tree, render the tree and write each
// target through the configured writer.
type Generator struct {
	cfg    *config.Config
	writer storage.Writer
	log    *logrus.Logger
}

// New creates a generator. A nil logger disables logging.
func New(cfg *config.Config, writer storage.Writer, log *logrus.Logger) *Generator {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Generator{cfg: cfg, writer: writer, log: log}
}

// Summary describes one completed generation run
type Summary struct {
	RunID       string
	SourceFiles int
	ScriptFiles int
	Modules     int
	Targets     int
	Duration    time.Duration
}

// Run executes one full generation and reports what it produced. The module
// index is always written, even when no module was documented.
func (g *Generator) Run() (*Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := g.log.WithField("run_id", runID)

	root := doctree.NewRootNode()
	resolver := extract.NewResolver(root, g.log)

	sourceFiles, err := g.processTree(resolver, g.cfg.SourceDir, g.cfg.SourceExt, logger)
	if err != nil {
		return nil, err
	}

	scriptFiles := 0
	if g.cfg.DocsDir != "" {
		scriptFiles, err = g.processTree(resolver, g.cfg.DocsDir, g.cfg.ScriptExt, logger)
		if err != nil {
			return nil, err
		}
	}

	targets := root.Targets()
	for _, target := range targets {
		logger.WithField("target", target.Path).Debug("writing target")
		if err := g.writer.WriteFile(target.Path, target.Node.Render()); err != nil {
			return nil, err
		}
	}
	logger.WithField("target", doctree.IndexPath).Debug("writing target")
	if err := g.writer.WriteFile(doctree.IndexPath, root.RenderIndex()); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:       runID,
		SourceFiles: sourceFiles,
		ScriptFiles: scriptFiles,
		Modules:     len(root.ModuleNames()),
		Targets:     len(targets) + 1,
		Duration:    time.Since(start),
	}

	logger.WithFields(logrus.Fields{
		"source_files": summary.SourceFiles,
		"script_files": summary.ScriptFiles,
		"modules":      summary.Modules,
		"targets":      summary.Targets,
		"duration":     summary.Duration.Round(time.Millisecond).String(),
	}).Info("documentation generated")

	return summary, nil
}

// processTree feeds every file with the given extension under rootDir to the
// resolver, in lexical walk order so repeated runs see files in the same
// sequence. A missing root is skipped: there is nothing to document there
// yet.
func (g *Generator) processTree(resolver *extract.Resolver, rootDir, ext string, logger *logrus.Entry) (int, error) {
	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		logger.WithField("dir", rootDir).Warn("input directory does not exist, skipping")
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		logger.WithField("file", relPath).Debug("processing file")
		if err := g.processFile(resolver, path, relPath, ext); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", rootDir, err)
	}
	return count, nil
}

func (g *Generator) processFile(resolver *extract.Resolver, path, relPath, ext string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return resolver.ProcessFile(f, relPath, ext)
}
