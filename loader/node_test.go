package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeExists(t *testing.T) {
	t.Run("present field on a mapping", func(t *testing.T) {
		node := mustNode(t, "Name: Poring\n")
		assert.True(t, NodeExists(node, "Name"))
	})

	t.Run("absent field on a mapping", func(t *testing.T) {
		node := mustNode(t, "Name: Poring\n")
		assert.False(t, NodeExists(node, "Level"))
	})

	t.Run("document indirection is resolved", func(t *testing.T) {
		// mustNode yields a DocumentNode wrapping the mapping.
		node := mustNode(t, "Header:\n  Type: ITEM_DB\n")
		assert.True(t, NodeExists(node, "Header"))
	})

	t.Run("alias indirection is resolved", func(t *testing.T) {
		node := mustNode(t, "base: &b\n  Level: 1\ncopy: *b\n")
		assert.True(t, NodeExists(childValue(node, "copy"), "Level"))
	})

	t.Run("indexing a scalar is absence not a fault", func(t *testing.T) {
		node := mustNode(t, "Name: Poring\n")
		assert.False(t, NodeExists(childValue(node, "Name"), "anything"))
	})

	t.Run("indexing a sequence is absence", func(t *testing.T) {
		node := mustNode(t, "Items:\n  - 1\n  - 2\n")
		assert.False(t, NodeExists(childValue(node, "Items"), "anything"))
	})

	t.Run("nil node is absence", func(t *testing.T) {
		assert.False(t, NodeExists(nil, "anything"))
	})
}

func TestSourceLocation(t *testing.T) {
	tests := []struct {
		name string
		loc  SourceLocation
		want string
	}{
		{"full location with file", SourceLocation{Line: 10, Column: 5, File: "item_db.yml"}, "item_db.yml:10:5"},
		{"location without file", SourceLocation{Line: 10, Column: 5}, "10:5"},
		{"unknown with file", SourceLocation{File: "item_db.yml"}, "item_db.yml"},
		{"unknown without file", SourceLocation{}, "<unknown>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}

	t.Run("IsKnown requires a positive line", func(t *testing.T) {
		assert.True(t, SourceLocation{Line: 1}.IsKnown())
		assert.False(t, SourceLocation{}.IsKnown())
		assert.False(t, SourceLocation{Line: -1}.IsKnown())
	})
}

func TestLocation(t *testing.T) {
	node := mustNode(t, "Name: Poring\nLevel: 1\n")
	value := childValue(node, "Level")

	loc := Location(value, "item_db.yml")
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, "item_db.yml", loc.File)
	assert.True(t, loc.IsKnown())

	assert.False(t, Location(nil, "item_db.yml").IsKnown())
}
