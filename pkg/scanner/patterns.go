package scanner

import (
	"regexp"
	"strings"
)

// Line patterns are matched against whitespace-stripped lines. The comment
// prefix must be followed by exactly one space or the end of the line, so
// `//x` is not a comment line while `//` and `// x` are.
var (
	commentRe     = regexp.MustCompile(`^(?://|#)(?: (.*)|$)`)
	narrativeRe   = regexp.MustCompile(`^>> (\S+)$`)
	classRe       = regexp.MustCompile(`^(?:export )?class (\w+)`)
	exportLetRe   = regexp.MustCompile(`^export let (\w+)`)
	constructorRe = regexp.MustCompile(`^constructor\((.*?)\) \{$`)
	methodRe      = regexp.MustCompile(`^(\w+\(.*?\)) \{$`)
	getterRe      = regexp.MustCompile(`^get (\w+)\(\) \{$`)
	attributeRe   = regexp.MustCompile(`^this\.(\w+)\s*=`)
)

// CommentContent reports whether line is a documentation comment line and
// returns its content with the prefix and separating space removed. A bare
// `//` or `#` yields an empty content string.
func CommentContent(line string) (string, bool) {
	m := commentRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NarrativeName returns the target name of a narrative-open marker
// `>> <name>`. The name is a run of non-whitespace and may contain slashes.
func NarrativeName(line string) (string, bool) {
	m := narrativeRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsNarrativeContinuation reports whether line is the bare continuation
// marker `>>`.
func IsNarrativeContinuation(line string) bool {
	return line == ">>"
}

// ClassName returns the class name from a class declaration line, with or
// without the `export ` qualifier.
func ClassName(line string) (string, bool) {
	m := classRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ConstructorArgs returns the verbatim argument list of a constructor
// signature line `constructor(<args>) {`.
func ConstructorArgs(line string) (string, bool) {
	m := constructorRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MethodSignature returns the full signature `<name>(<args>)` of a bare
// method definition line. Constructor lines do not count as methods even
// though they share the shape; getters never match because of the space
// between `get` and the name.
func MethodSignature(line string) (string, bool) {
	m := methodRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	if strings.HasPrefix(m[1], "constructor(") {
		return "", false
	}
	return m[1], true
}

// GetterName returns the property name of a getter definition line
// `get <name>() {`.
func GetterName(line string) (string, bool) {
	m := getterRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// AttributeName returns the attribute name of an instance assignment line
// `this.<name> = ...`.
func AttributeName(line string) (string, bool) {
	m := attributeRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExportDataName returns the binding name of a top-level `export let <name>`
// line.
func ExportDataName(line string) (string, bool) {
	m := exportLetRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
