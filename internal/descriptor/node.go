package descriptor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies the shape of a descriptor node.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is one element of a parsed deployment descriptor.
// Exactly one of Value, Items or Entries is meaningful, depending on Kind.
// Nodes are never modified after Parse returns, so a tree can be shared between goroutines.
type Node struct {
	Kind Kind
	// Tag is the short YAML tag, e.g. "!!str", "!!int" or a CloudFormation tag such as "!Ref".
	Tag     string
	Value   string
	Items   []*Node
	Entries []Entry
}

// Entry is a key/value pair of a mapping node. Entries keep document order.
type Entry struct {
	Key   string
	Value *Node
}

// IsString reports whether the node is a plain string scalar.
func (n *Node) IsString() bool {
	return n != nil && n.Kind == KindScalar && n.Tag == "!!str"
}

// Get returns the value stored under key in a mapping node, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// NewScalar returns a string scalar node.
func NewScalar(value string) *Node {
	return &Node{Kind: KindScalar, Tag: "!!str", Value: value}
}

// NewSequence returns a sequence node holding items.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Tag: "!!seq", Items: items}
}

// NewMapping returns a mapping node holding entries in the given order.
func NewMapping(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Tag: "!!map", Entries: entries}
}

// Parse decodes a YAML document into a descriptor tree.
// An empty document yields a nil root.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor yaml: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return convert(&doc, map[*yaml.Node]bool{})
}

// convert maps a yaml.Node onto the descriptor tree. Aliases are expanded; seen guards
// against alias cycles.
func convert(y *yaml.Node, seen map[*yaml.Node]bool) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, nil
		}
		return convert(y.Content[0], seen)

	case yaml.AliasNode:
		if seen[y.Alias] {
			return nil, fmt.Errorf("recursive alias at line %d", y.Line)
		}
		seen[y.Alias] = true
		defer delete(seen, y.Alias)
		return convert(y.Alias, seen)

	case yaml.ScalarNode:
		return &Node{Kind: KindScalar, Tag: y.ShortTag(), Value: y.Value}, nil

	case yaml.SequenceNode:
		n := &Node{Kind: KindSequence, Tag: y.ShortTag(), Items: make([]*Node, 0, len(y.Content))}
		for _, item := range y.Content {
			child, err := convert(item, seen)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, child)
		}
		return n, nil

	case yaml.MappingNode:
		if len(y.Content)%2 != 0 {
			return nil, fmt.Errorf("malformed mapping at line %d", y.Line)
		}
		n := &Node{Kind: KindMapping, Tag: y.ShortTag(), Entries: make([]Entry, 0, len(y.Content)/2)}
		for i := 0; i < len(y.Content); i += 2 {
			value, err := convert(y.Content[i+1], seen)
			if err != nil {
				return nil, err
			}
			n.Entries = append(n.Entries, Entry{Key: y.Content[i].Value, Value: value})
		}
		return n, nil

	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", y.Kind, y.Line)
	}
}
