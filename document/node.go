// Package document provides the in-memory tree an OpenAPI document is loaded into.
//
// A Node is a mapping, a sequence, a scalar or null. Mappings keep their keys
// in document order. The tree is immutable once built: every accessor returns
// existing nodes or fresh empty ones, never a view that could be mutated.
//
// The analyzer needs one definition of "absent versus empty" for nested
// lookups such as components.schemas. [Node.Lookup] is that definition: a
// missing key at any level reads as an empty mapping, while a key that is
// present with the wrong kind is a *oaserrors.ShapeError.
package document

import (
	"strings"

	"github.com/erraggy/oacheck/oaserrors"
)

// Kind identifies the type of a Node.
type Kind int

const (
	// KindNull is an explicit YAML null or an empty document.
	KindNull Kind = iota
	// KindMapping is an ordered set of unique string keys.
	KindMapping
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindScalar is a string, number or boolean.
	KindScalar
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// YAML core schema tags carried by scalar nodes.
const (
	TagString = "!!str"
	TagInt    = "!!int"
	TagFloat  = "!!float"
	TagBool   = "!!bool"
	TagNull   = "!!null"
)

// Node is one element of a loaded document.
type Node struct {
	kind  Kind
	tag   string
	value string
	line  int
	path  string

	keys   []string
	values map[string]*Node
	items  []*Node
}

// NewMapping returns an empty mapping node located at path.
func NewMapping(path string) *Node {
	return &Node{kind: KindMapping, path: path, values: map[string]*Node{}}
}

// NewSequence returns an empty sequence node located at path.
func NewSequence(path string) *Node {
	return &Node{kind: KindSequence, path: path}
}

// NewScalar returns a scalar node. Use TagNull for an explicit null.
func NewScalar(path, tag, value string) *Node {
	if tag == TagNull {
		return &Node{kind: KindNull, tag: tag, value: value, path: path}
	}
	return &Node{kind: KindScalar, tag: tag, value: value, path: path}
}

// set adds or replaces key. A replaced key keeps its original position.
func (n *Node) set(key string, v *Node) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = v
}

// Kind returns the node kind. A nil node is KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsMapping reports whether n is a mapping.
func (n *Node) IsMapping() bool { return n.Kind() == KindMapping }

// IsSequence reports whether n is a sequence.
func (n *Node) IsSequence() bool { return n.Kind() == KindSequence }

// Tag returns the resolved YAML tag of a scalar or null node.
func (n *Node) Tag() string {
	if n == nil {
		return TagNull
	}
	return n.tag
}

// Line returns the 1-based source line, or 0 when unknown.
func (n *Node) Line() int {
	if n == nil {
		return 0
	}
	return n.line
}

// Path returns the dotted location of n in the document ("" for the root).
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	return n.path
}

// Len returns the number of entries of a mapping or sequence, 0 otherwise.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindMapping:
		return len(n.keys)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// Keys returns the mapping keys in document order.
func (n *Node) Keys() []string {
	if !n.IsMapping() {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Items returns the sequence elements in document order.
func (n *Node) Items() []*Node {
	if !n.IsSequence() {
		return nil
	}
	out := make([]*Node, len(n.items))
	copy(out, n.items)
	return out
}

// Get returns the value stored under key. Non-mapping nodes have no keys.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}
	v, ok := n.values[key]
	return v, ok
}

// Has reports whether key exists, regardless of its value.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Text returns the source text of a scalar. ok is false for mappings,
// sequences, nulls and nil nodes.
func (n *Node) Text() (string, bool) {
	if n.Kind() != KindScalar {
		return "", false
	}
	return n.value, true
}

// StringValue returns the value of a string-tagged scalar.
func (n *Node) StringValue() (string, bool) {
	if n.Kind() != KindScalar || n.tag != TagString {
		return "", false
	}
	return n.value, true
}

// Display renders a scalar as text, "null" for nulls, and the kind name for
// collections.
func (n *Node) Display() string {
	switch n.Kind() {
	case KindScalar:
		return n.value
	case KindNull:
		return "null"
	default:
		return n.Kind().String()
	}
}

// Lookup walks keys from n and returns the mapping found there. Missing
// keys at any level yield an empty mapping. A present value that is not a
// mapping yields a *oaserrors.ShapeError. When n itself is not a mapping,
// every key is treated as missing.
func (n *Node) Lookup(keys ...string) (*Node, error) {
	cur := n
	if !cur.IsMapping() {
		return NewMapping(childPath(n.Path(), keys...)), nil
	}
	for i, key := range keys {
		next, ok := cur.Get(key)
		if !ok {
			return NewMapping(childPath(cur.Path(), keys[i:]...)), nil
		}
		if !next.IsMapping() {
			return nil, shapeError(next, KindMapping)
		}
		cur = next
	}
	return cur, nil
}

// LookupSequence is Lookup for a sequence-valued leaf: intermediate keys
// must be mappings, the last one a sequence. Missing keys yield an empty
// sequence.
func (n *Node) LookupSequence(keys ...string) (*Node, error) {
	if len(keys) == 0 {
		if n.IsSequence() {
			return n, nil
		}
		return nil, shapeError(n, KindSequence)
	}
	parent, err := n.Lookup(keys[:len(keys)-1]...)
	if err != nil {
		return nil, err
	}
	last := keys[len(keys)-1]
	v, ok := parent.Get(last)
	if !ok {
		return NewSequence(childPath(parent.Path(), last)), nil
	}
	if !v.IsSequence() {
		return nil, shapeError(v, KindSequence)
	}
	return v, nil
}

// ExpectMapping returns a *oaserrors.ShapeError unless n is a mapping.
func (n *Node) ExpectMapping() error {
	if n.IsMapping() {
		return nil
	}
	return shapeError(n, KindMapping)
}

func shapeError(n *Node, want Kind) error {
	return &oaserrors.ShapeError{
		Path:     n.Path(),
		Expected: want.String(),
		Actual:   n.Kind().String(),
		Line:     n.Line(),
	}
}

func childPath(parent string, keys ...string) string {
	parts := make([]string, 0, len(keys)+1)
	if parent != "" {
		parts = append(parts, parent)
	}
	parts = append(parts, keys...)
	return strings.Join(parts, ".")
}
