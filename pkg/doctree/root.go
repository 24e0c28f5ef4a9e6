package doctree

import (
	"fmt"
	"sort"
	"strings"
)

const (
	moduleFileTemplate    = "modules/%s.rst"
	narrativeFileTemplate = "_codedoc/%s.txt"

	// IndexPath is the output path of the generated module index.
	IndexPath = "modules/index.rst"
)

// RootNode owns every output target of one generation run. Module pages and
// narrative files share a single path-keyed namespace; modules are
// additionally tracked by name for the index. Lookups are explicit
// get-or-create: a target name maps to exactly one node instance per run.
type RootNode struct {
	files   map[string]Content
	modules map[string]*ModuleNode
}

// NewRootNode returns an empty document tree.
func NewRootNode() *RootNode {
	return &RootNode{
		files:   make(map[string]Content),
		modules: make(map[string]*ModuleNode),
	}
}

// Module returns the page for the named module, creating it on first
// reference and registering its output file.
func (r *RootNode) Module(name string) *ModuleNode {
	if node, ok := r.modules[name]; ok {
		return node
	}
	node := NewModuleNode(name)
	r.modules[name] = node
	r.files[fmt.Sprintf(moduleFileTemplate, name)] = node
	return node
}

// NarrativeFile returns the narrative target for the given block name,
// creating it on first reference. Names may contain slashes, which become
// directories under the narrative output root.
func (r *RootNode) NarrativeFile(name string) *FileNode {
	path := fmt.Sprintf(narrativeFileTemplate, name)
	if node, ok := r.files[path]; ok {
		return node.(*FileNode)
	}
	node := &FileNode{}
	r.files[path] = node
	return node
}

// Target pairs an output path with the node that renders it.
type Target struct {
	Path string
	Node Content
}

// Targets returns every registered output target sorted by path.
func (r *RootNode) Targets() []Target {
	paths := make([]string, 0, len(r.files))
	for path := range r.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	targets := make([]Target, len(paths))
	for i, path := range paths {
		targets[i] = Target{Path: path, Node: r.files[path]}
	}
	return targets
}

// ModuleNames returns the known module names in lexicographic order.
func (r *RootNode) ModuleNames() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderIndex produces the module index page: a fixed title and toctree
// header followed by one line per module name, sorted independently of
// discovery order. Unlike the other targets the index is line-oriented, so
// every line ends with a newline.
func (r *RootNode) RenderIndex() string {
	var sb strings.Builder
	sb.WriteString("Modules Index\n")
	sb.WriteString("=============\n")
	sb.WriteString(".. toctree::\n")
	sb.WriteString("   :maxdepth: 2\n")
	sb.WriteString("\n")
	for _, name := range r.ModuleNames() {
		sb.WriteString("   ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return sb.String()
}
