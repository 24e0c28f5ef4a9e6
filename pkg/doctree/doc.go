// Package doctree models the in-memory documentation tree built from
// extracted comment blocks, and renders it to reStructuredText.
//
// # Overview
//
// One RootNode holds every output target of a generation run. Targets come
// in two shapes: module pages (one per module name referenced by an
// extracted construct) and narrative files (one per named codedoc block).
// Both live in a single path-keyed namespace so the final write pass can
// treat them uniformly.
//
// Node contents are a tagged union: each element is either a nested node or
// a raw text Fragment. The union is expressed by the Content interface,
// whose single Render method keeps rendering pure and uniform across kinds.
// Contents are append-only and render in insertion order, so within a module
// the documentation appears in file order, then in-file order.
//
// # Node kinds
//
//   - ModuleNode: title, `=` underline, then its classes and data exports.
//   - ClassNode: a `class::` directive carrying the name and the constructor
//     arguments captured from the line after the declaration. Methods and
//     attributes nest inside the class body.
//   - MethodNode: a `function::` directive. The node name is the full
//     signature, arguments included.
//   - AttributeNode: an `attribute::` directive for getters and `this.`
//     assignments.
//   - DataNode: a `data::` directive for `export let` bindings.
//   - FileNode: raw narrative text, fragments joined by blank lines.
//
// Every domain node renders as an index entry, the directive with a
// :noindex: option and the body indented by three spaces:
//
//	.. index::
//	   single: game; Progress
//
//	.. class:: Progress(current, total)
//	   :noindex:
//
//	   The Progress class holds progress of a certain action.
//
// Index labels are built from ancestor names: `<module>; <name>` for classes
// and data, `<class-label>#<member>` for methods and attributes.
//
// # Determinism
//
// Rendering performs no I/O and depends only on tree contents. Target and
// index ordering is sorted by path and name respectively, so two runs over
// the same inputs produce byte-identical output regardless of map iteration
// order.
package doctree
