package document

import (
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

const mergeKey = "<<"

// FromYAML builds a Node tree from a decoded yaml.Node. A nil node, or a
// document node with no content, yields a null root. Aliases are followed
// and merge keys expanded; keys written explicitly win over merged ones.
func FromYAML(root *yaml.Node) (*Node, error) {
	b := &builder{active: map[*yaml.Node]bool{}}
	return b.build(root, "")
}

type builder struct {
	// active holds anchors currently being expanded, to stop alias cycles.
	active map[*yaml.Node]bool
}

func (b *builder) build(y *yaml.Node, path string) (*Node, error) {
	if y == nil {
		return NewScalar(path, TagNull, ""), nil
	}

	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return NewScalar(path, TagNull, ""), nil
		}
		return b.build(y.Content[0], path)

	case yaml.AliasNode:
		if y.Alias == nil {
			return nil, fmt.Errorf("document: unresolved alias *%s at line %d", y.Value, y.Line)
		}
		if b.active[y.Alias] {
			return nil, fmt.Errorf("document: recursive alias *%s at line %d", y.Value, y.Line)
		}
		b.active[y.Alias] = true
		defer delete(b.active, y.Alias)
		return b.build(y.Alias, path)

	case yaml.MappingNode:
		return b.buildMapping(y, path)

	case yaml.SequenceNode:
		n := NewSequence(path)
		n.line = y.Line
		for i, child := range y.Content {
			item, err := b.build(child, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, item)
		}
		return n, nil

	case yaml.ScalarNode:
		n := NewScalar(path, y.ShortTag(), y.Value)
		n.line = y.Line
		return n, nil

	case 0:
		// Zero-value node: yaml.Unmarshal of an empty input.
		return NewScalar(path, TagNull, ""), nil

	default:
		return nil, fmt.Errorf("document: unsupported YAML node kind %d at line %d", y.Kind, y.Line)
	}
}

func (b *builder) buildMapping(y *yaml.Node, path string) (*Node, error) {
	n := NewMapping(path)
	n.line = y.Line

	var merges []*yaml.Node
	type entry struct {
		key string
		val *yaml.Node
	}
	explicit := make([]entry, 0, len(y.Content)/2)

	for i := 0; i+1 < len(y.Content); i += 2 {
		keyNode := resolveAlias(y.Content[i])
		valNode := y.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("document: non-scalar mapping key at line %d", keyNode.Line)
		}
		if keyNode.Value == mergeKey && keyNode.ShortTag() == "!!merge" {
			merges = append(merges, valNode)
			continue
		}
		explicit = append(explicit, entry{key: keyNode.Value, val: valNode})
	}

	// Merged keys come first, matching how loaders flatten "<<" entries.
	for _, m := range merges {
		if err := b.merge(n, m, path); err != nil {
			return nil, err
		}
	}
	for _, e := range explicit {
		child, err := b.build(e.val, joinPath(path, e.key))
		if err != nil {
			return nil, err
		}
		n.set(e.key, child)
	}
	return n, nil
}

// merge copies the entries of a "<<" value into n. The value is a mapping
// or a sequence of mappings; earlier mappings in a sequence take precedence.
func (b *builder) merge(n *Node, y *yaml.Node, path string) error {
	src, err := b.build(y, path)
	if err != nil {
		return err
	}
	var sources []*Node
	switch src.Kind() {
	case KindMapping:
		sources = []*Node{src}
	case KindSequence:
		sources = src.items
	default:
		return fmt.Errorf("document: merge value must be a mapping or sequence of mappings at line %d", y.Line)
	}
	for _, s := range sources {
		if !s.IsMapping() {
			return fmt.Errorf("document: merge sequence entry must be a mapping at line %d", y.Line)
		}
		for _, k := range s.keys {
			if n.Has(k) {
				continue
			}
			n.set(k, rebase(s.values[k], joinPath(path, k)))
		}
	}
	return nil
}

// rebase returns a deep copy of v with every path rooted at path. Merged
// nodes are built at their anchor site, so each descendant is re-pathed.
func rebase(v *Node, path string) *Node {
	c := *v
	c.path = path
	switch v.kind {
	case KindMapping:
		c.keys = append([]string(nil), v.keys...)
		c.values = make(map[string]*Node, len(v.values))
		for _, k := range v.keys {
			c.values[k] = rebase(v.values[k], joinPath(path, k))
		}
	case KindSequence:
		c.items = make([]*Node, len(v.items))
		for i, item := range v.items {
			c.items[i] = rebase(item, path+"["+strconv.Itoa(i)+"]")
		}
	}
	return &c
}

func resolveAlias(y *yaml.Node) *yaml.Node {
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}
	return y
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
