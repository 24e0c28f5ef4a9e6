// Package extract turns scanned source lines into documentation nodes. A
// Resolver owns the document tree for one generation run. Source files are
// processed independently except for the narrative target, which persists
// across files until another narrative block replaces it.
package extract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alhimik45/codedoc/pkg/doctree"
	"github.com/alhimik45/codedoc/pkg/scanner"
)

// ErrMissingNarrativeContext reports a continuation block that appeared
// before any narrative block opened a target file.
var ErrMissingNarrativeContext = errors.New("continuation block without an open narrative file")

// Resolver attaches comment blocks to document tree nodes. One Resolver
// serves one generation run; create a fresh one per run so the narrative
// target does not leak between runs.
type Resolver struct {
	root *doctree.RootNode
	last *doctree.FileNode
	log  *logrus.Logger
}

// NewResolver creates a resolver writing into the given tree. A nil logger
// silences the discard diagnostics.
func NewResolver(root *doctree.RootNode, log *logrus.Logger) *Resolver {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Resolver{root: root, log: log}
}

// ModuleName derives the documentation module name from a source path
// relative to the scan root: the extension is dropped, path separators
// become slashes and a trailing index segment collapses into its directory.
func ModuleName(relPath, ext string) string {
	name := filepath.ToSlash(strings.TrimSuffix(relPath, ext))
	return strings.TrimSuffix(name, "/index")
}

// ProcessFile scans one source file and resolves every flushed comment
// block. The relative path names the file in diagnostics and determines the
// module the file's declarations document.
func (r *Resolver) ProcessFile(src io.Reader, relPath, ext string) error {
	run := &fileRun{res: r, path: relPath, module: ModuleName(relPath, ext)}
	if err := scanner.Scan(src, run); err != nil {
		return fmt.Errorf("%s: %w", relPath, err)
	}
	return nil
}

// fileRun holds the per-file resolution state: the active class receiving
// member documentation and the line number at which a constructor
// declaration may still be captured.
type fileRun struct {
	res         *Resolver
	path        string
	module      string
	activeClass *doctree.ClassNode
	pendingCtor int
}

func (f *fileRun) HandleBlock(block []string, trigger scanner.Line) error {
	f.checkConstructor(trigger)
	return f.resolve(block, trigger)
}

func (f *fileRun) HandleLine(trigger scanner.Line) error {
	f.checkConstructor(trigger)
	return nil
}

// checkConstructor captures the constructor argument list if the given line
// is the one immediately following a class declaration. Handler calls arrive
// in line order, so the first call after arming either hits the armed line
// or proves it has passed; both disarm.
func (f *fileRun) checkConstructor(line scanner.Line) {
	if f.pendingCtor == 0 {
		return
	}
	armed := f.pendingCtor
	f.pendingCtor = 0
	if line.Number != armed || f.activeClass == nil {
		return
	}
	if args, ok := scanner.ConstructorArgs(line.Text); ok {
		f.activeClass.SetArguments(args)
	}
}

// resolve attaches one comment block. Rules are tried in order and the
// first match consumes the block: narrative blocks are recognized by their
// first buffered line, declaration blocks by the line that flushed them.
func (f *fileRun) resolve(block []string, trigger scanner.Line) error {
	if name, ok := scanner.NarrativeName(block[0]); ok {
		node := f.res.root.NarrativeFile(name)
		node.AddText(block[1:])
		f.res.last = node
		return nil
	}
	if scanner.IsNarrativeContinuation(block[0]) {
		if f.res.last == nil {
			return fmt.Errorf("line %d: %w", trigger.Number, ErrMissingNarrativeContext)
		}
		f.res.last.AddText(block[1:])
		return nil
	}
	if name, ok := scanner.ClassName(trigger.Text); ok {
		module := f.res.root.Module(f.module)
		class := doctree.NewClassNode(module, name)
		class.AddText(block)
		module.Add(class)
		f.activeClass = class
		f.pendingCtor = trigger.Number + 1
		return nil
	}
	if f.activeClass != nil {
		if sig, ok := scanner.MethodSignature(trigger.Text); ok {
			method := doctree.NewMethodNode(f.activeClass, sig)
			method.AddText(block)
			f.activeClass.Add(method)
			return nil
		}
		if name, ok := scanner.GetterName(trigger.Text); ok {
			attr := doctree.NewAttributeNode(f.activeClass, name)
			attr.AddText(block)
			f.activeClass.Add(attr)
			return nil
		}
		if name, ok := scanner.AttributeName(trigger.Text); ok {
			attr := doctree.NewAttributeNode(f.activeClass, name)
			attr.AddText(block)
			f.activeClass.Add(attr)
			return nil
		}
	}
	if name, ok := scanner.ExportDataName(trigger.Text); ok {
		module := f.res.root.Module(f.module)
		data := doctree.NewDataNode(module, name)
		data.AddText(block)
		module.Add(data)
		return nil
	}
	f.res.log.WithFields(logrus.Fields{
		"file": f.path,
		"line": trigger.Number,
	}).Debug("dropping comment block with no documentation target")
	return nil
}
