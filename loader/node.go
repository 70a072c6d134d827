package loader

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// SourceLocation represents a position in a source document.
// Line and Column are 1-based (matching editor conventions).
// A zero Line value indicates the location is unknown.
type SourceLocation struct {
	// Line is the 1-based line number (0 if unknown)
	Line int
	// Column is the 1-based column number (0 if unknown)
	Column int
	// File is the source file path (empty if unknown)
	File string
}

// IsKnown returns true if this location has valid line information.
func (s SourceLocation) IsKnown() bool {
	return s.Line > 0
}

// String returns a human-readable location string.
// Format: "file:line:column" or "line:column" if no file, or "<unknown>" if not known.
func (s SourceLocation) String() string {
	if !s.IsKnown() {
		if s.File != "" {
			return s.File
		}
		return "<unknown>"
	}
	if s.File != "" {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Location returns the source location of node within file.
func Location(node *yaml.Node, file string) SourceLocation {
	if node == nil {
		return SourceLocation{File: file}
	}
	return SourceLocation{Line: node.Line, Column: node.Column, File: file}
}

// unwrap resolves document and alias indirection down to the content node.
func unwrap(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// childValue returns the value node for the named key under node, or nil when
// the field is absent or node is not a mapping.
func childValue(node *yaml.Node, name string) *yaml.Node {
	m := unwrap(node)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	// Content alternates: key, value, key, value...
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == name {
			return m.Content[i+1]
		}
	}
	return nil
}

// NodeExists reports whether the named field is present and structurally
// accessible under node. Any structural mismatch, such as indexing into a
// scalar or sequence, counts as absence rather than a fault.
func NodeExists(node *yaml.Node, name string) bool {
	return childValue(node, name) != nil
}

// nodeLine returns the 1-based source line of node, or 0 if unknown.
func nodeLine(node *yaml.Node) int {
	if n := unwrap(node); n != nil {
		return n.Line
	}
	return 0
}
