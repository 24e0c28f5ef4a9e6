package doctree

import (
	"fmt"
	"strings"
)

// Content is one ordered element of a node's body: either a nested
// documentation node or a raw text fragment. Rendering is pure and
// deterministic for every implementation.
type Content interface {
	Render() string
}

// Fragment is a raw text leaf. It renders as itself, unchanged.
type Fragment string

// Render returns the fragment text.
func (f Fragment) Render() string { return string(f) }

// container holds the append-only contents shared by every node kind.
// Append order equals output order.
type container struct {
	contents []Content
}

// Add appends child content.
func (c *container) Add(item Content) {
	c.contents = append(c.contents, item)
}

// AddText appends buffered comment lines as a single fragment, joined by
// newlines. An empty slice still appends an empty fragment.
func (c *container) AddText(lines []string) {
	c.Add(Fragment(strings.Join(lines, "\n")))
}

// body renders the contents in order, separated by blank lines.
func (c *container) body() string {
	parts := make([]string, len(c.contents))
	for i, item := range c.contents {
		parts[i] = item.Render()
	}
	return strings.Join(parts, "\n\n")
}

// FileNode is a plain output target holding raw text fragments, used for
// narrative (codedoc) files.
type FileNode struct {
	container
}

// Render joins the accumulated fragments with blank lines.
func (n *FileNode) Render() string { return n.body() }

// ModuleNode is the documentation page for one module. Its name is derived
// from a source path; it renders as a reStructuredText title followed by its
// contents.
type ModuleNode struct {
	container
	name string
}

// NewModuleNode creates an empty module page. Callers normally go through
// RootNode.Module, which keeps one instance per name.
func NewModuleNode(name string) *ModuleNode {
	return &ModuleNode{name: name}
}

// Name returns the module name.
func (n *ModuleNode) Name() string { return n.name }

// Render produces the title line, a matching `=` underline and the body.
func (n *ModuleNode) Render() string {
	var sb strings.Builder
	sb.WriteString(n.name)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", len(n.name)))
	sb.WriteString("\n")
	sb.WriteString(n.body())
	return sb.String()
}

// ClassNode documents one class declaration. The constructor argument list
// starts empty and is captured separately, from the line immediately
// following the declaration.
type ClassNode struct {
	container
	name         string
	module       string
	arguments    string
	argumentsSet bool
}

// NewClassNode creates a class entry under the given module. Every commented
// declaration gets its own node; nodes are never merged by name.
func NewClassNode(module *ModuleNode, name string) *ClassNode {
	return &ClassNode{name: name, module: module.Name()}
}

// Name returns the class name.
func (n *ClassNode) Name() string { return n.name }

// SetArguments records the constructor argument list verbatim. Only the
// first call takes effect; a class declares at most one constructor.
func (n *ClassNode) SetArguments(args string) {
	if n.argumentsSet {
		return
	}
	n.arguments = args
	n.argumentsSet = true
}

// IndexLabel returns the index entry `<module>; <class>`.
func (n *ClassNode) IndexLabel() string {
	return n.module + "; " + n.name
}

// Render produces the class directive with its captured constructor
// arguments. Methods and attributes added to the class render nested inside
// its body.
func (n *ClassNode) Render() string {
	directive := fmt.Sprintf("class:: %s(%s)", n.name, n.arguments)
	return renderDomain(n.IndexLabel(), directive, n.body())
}

// MethodNode documents one method. Its name is the full captured signature,
// arguments included, and the signature also appears in the index label.
type MethodNode struct {
	container
	name       string
	ownerLabel string
}

// NewMethodNode creates a method entry under the given class.
func NewMethodNode(class *ClassNode, name string) *MethodNode {
	return &MethodNode{name: name, ownerLabel: class.IndexLabel()}
}

// IndexLabel returns the index entry `<class-label>#<signature>`.
func (n *MethodNode) IndexLabel() string {
	return n.ownerLabel + "#" + n.name
}

// Render produces the function directive for the method signature.
func (n *MethodNode) Render() string {
	return renderDomain(n.IndexLabel(), "function:: "+n.name, n.body())
}

// AttributeNode documents one instance attribute or getter.
type AttributeNode struct {
	container
	name       string
	ownerLabel string
}

// NewAttributeNode creates an attribute entry under the given class.
func NewAttributeNode(class *ClassNode, name string) *AttributeNode {
	return &AttributeNode{name: name, ownerLabel: class.IndexLabel()}
}

// IndexLabel returns the index entry `<class-label>#<name>`.
func (n *AttributeNode) IndexLabel() string {
	return n.ownerLabel + "#" + n.name
}

// Render produces the attribute directive.
func (n *AttributeNode) Render() string {
	return renderDomain(n.IndexLabel(), "attribute:: "+n.name, n.body())
}

// DataNode documents one exported top-level value.
type DataNode struct {
	container
	name   string
	module string
}

// NewDataNode creates a data entry under the given module.
func NewDataNode(module *ModuleNode, name string) *DataNode {
	return &DataNode{name: name, module: module.Name()}
}

// IndexLabel returns the index entry `<module>; <name>`.
func (n *DataNode) IndexLabel() string {
	return n.module + "; " + n.name
}

// Render produces the data directive.
func (n *DataNode) Render() string {
	return renderDomain(n.IndexLabel(), "data:: "+n.name, n.body())
}

// renderDomain assembles the shared shape of every domain node: an index
// entry, the directive with a :noindex: option, and the body pushed right by
// the directive margin.
func renderDomain(indexLabel, directive, body string) string {
	var sb strings.Builder
	sb.WriteString(".. index::\n   single: ")
	sb.WriteString(indexLabel)
	sb.WriteString("\n\n.. ")
	sb.WriteString(directive)
	sb.WriteString("\n   :noindex:\n\n")
	sb.WriteString(indent(body))
	return sb.String()
}

// indent prefixes every line of text, blank ones included, with the
// three-space directive margin. A single trailing newline terminates the
// last line rather than starting a new one; an empty text stays empty.
func indent(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "   " + line
	}
	return strings.Join(lines, "\n")
}
