package parser

import (
	"fmt"
	"strings"
)

// Format identifies the syntax of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name into a Format.
// Matching is case-insensitive; anything other than yaml or json
// fails with ErrUnsupportedFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Kind discriminates the node types of a parsed configuration tree.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

// Node is one value in a parsed configuration tree. Mappings keep their
// pairs in insertion order so canonical serialization is deterministic.
type Node struct {
	Kind  Kind
	Pairs []Pair  // mapping entries, insertion order
	Items []*Node // sequence elements
	Value string  // scalar literal as written
	Tag   string  // resolved YAML tag for scalars (!!str, !!int, ...)
}

// Pair is a single mapping entry.
type Pair struct {
	Key   string
	Value *Node
}

// Document is the parsed structural representation of one config file.
// Immutable once loaded; it carries no identity beyond its source content.
type Document struct {
	Format Format
	Root   *Node
}
