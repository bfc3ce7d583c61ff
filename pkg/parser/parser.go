package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the config file at path as the given format.
// It has no side effects beyond reading the file.
func Load(path string, format Format) (*Document, error) {
	switch format {
	case FormatYAML, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse parses raw config bytes as the given format.
//
// Both formats decode through yaml.v3's node API: JSON is a subset of
// YAML, and the node tree is the only decoding mode that preserves
// mapping key order. JSON content is additionally checked with
// encoding/json first so that YAML-only syntax in a declared-JSON file
// still fails with the JSON parser's diagnostic.
func Parse(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatYAML:
	case FormatJSON:
		var probe interface{}
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	converted, err := fromYAML(&root, make(map[*yaml.Node]bool))
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	return &Document{Format: format, Root: converted}, nil
}

// fromYAML converts a yaml.v3 node into the parser's own tree. The
// active set holds the nodes currently being converted: an alias that
// leads back into one of them is a cycle, which the yaml.v3 node API
// accepts but no finite tree can represent.
func fromYAML(n *yaml.Node, active map[*yaml.Node]bool) (*Node, error) {
	if active[n] {
		return nil, errors.New("anchor contains itself")
	}
	active[n] = true
	defer delete(active, n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &Node{Kind: KindNull}, nil
		}
		return fromYAML(n.Content[0], active)
	case yaml.MappingNode:
		return fromYAMLMapping(n, active)
	case yaml.SequenceNode:
		out := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(n.Content))}
		for _, item := range n.Content {
			child, err := fromYAML(item, active)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, child)
		}
		return out, nil
	case yaml.AliasNode:
		return fromYAML(n.Alias, active)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return &Node{Kind: KindNull}, nil
		}
		return &Node{Kind: KindScalar, Value: n.Value, Tag: n.Tag}, nil
	}
	// Zero node from an empty input.
	return &Node{Kind: KindNull}, nil
}

// fromYAMLMapping converts a mapping node. Merge keys (`<<`) splice the
// referenced mapping's entries ahead of the explicit ones; explicit keys
// always win, and among merged sources the earlier one wins. Explicit
// duplicate keys follow last-value-wins, with the first occurrence's
// position kept.
func fromYAMLMapping(n *yaml.Node, active map[*yaml.Node]bool) (*Node, error) {
	out := &Node{Kind: KindMapping}
	index := make(map[string]int)

	insert := func(key string, value *Node, merged bool) {
		if at, seen := index[key]; seen {
			if !merged {
				out.Pairs[at].Value = value
			}
			return
		}
		index[key] = len(out.Pairs)
		out.Pairs = append(out.Pairs, Pair{Key: key, Value: value})
	}

	splice := func(src *Node) error {
		if src.Kind != KindMapping {
			return errors.New("merge value must be a mapping or a list of mappings")
		}
		for _, p := range src.Pairs {
			insert(p.Key, p.Value, true)
		}
		return nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Tag != "!!merge" {
			continue
		}
		src, err := fromYAML(n.Content[i+1], active)
		if err != nil {
			return nil, err
		}
		if src.Kind == KindSequence {
			for _, item := range src.Items {
				if err := splice(item); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := splice(src); err != nil {
			return nil, err
		}
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Tag == "!!merge" {
			continue
		}
		if key.Kind != yaml.ScalarNode {
			return nil, errors.New("non-scalar mapping keys are not supported")
		}
		value, err := fromYAML(n.Content[i+1], active)
		if err != nil {
			return nil, err
		}
		insert(key.Value, value, false)
	}

	return out, nil
}
