package analyzer

import (
	"slices"

	"github.com/erraggy/oacheck/document"
)

// MethodCount is the number of operations declared for one HTTP method.
type MethodCount struct {
	Method string
	Count  int
}

// Stats contains counts computed from the document
type Stats struct {
	Paths           int // Number of entries under paths
	Schemas         int // Number of entries under components.schemas
	SecuritySchemes int // Number of entries under components.securitySchemes
	Tags            int // Number of entries in the root tags sequence
	Operations      int // Total operations across all paths
	// Methods holds one counter per entry of Methods, in the same order.
	Methods []MethodCount
}

// MethodCount returns the operation count for method (lowercase).
func (s Stats) MethodCount(method string) int {
	for _, m := range s.Methods {
		if m.Method == method {
			return m.Count
		}
	}
	return 0
}

// Text is an optional scalar read from the document.
type Text struct {
	Value string
	Set   bool
}

// Or returns the value, or def when the field is absent.
func (t Text) Or(def string) string {
	if !t.Set {
		return def
	}
	return t.Value
}

// Info holds the fields the report shows from the root and the info block.
type Info struct {
	OpenAPI     Text
	Title       Text
	Version     Text
	Description Text
}

// Tag is one entry of the root tags sequence.
type Tag struct {
	Name        Text
	Description Text
}

// SecurityScheme is one entry of components.securitySchemes.
type SecurityScheme struct {
	Name   string
	Type   Text
	Scheme Text
}

// textOf reads key from a mapping. Scalars keep their source text; other
// kinds render as their kind name.
func textOf(m *document.Node, key string) Text {
	v, ok := m.Get(key)
	if !ok {
		return Text{}
	}
	return Text{Value: v.Display(), Set: true}
}

// collect walks the tree once, filling statistics and the summary views.
// Kinds the walk depends on are checked here, so rules never see them.
func (p *pass) collect() error {
	var err error
	if p.paths, err = p.root.Lookup("paths"); err != nil {
		return err
	}
	if p.components, err = p.root.Lookup("components"); err != nil {
		return err
	}
	if p.info, err = p.root.Lookup("info"); err != nil {
		return err
	}
	schemas, err := p.components.Lookup("schemas")
	if err != nil {
		return err
	}
	schemes, err := p.components.Lookup("securitySchemes")
	if err != nil {
		return err
	}
	tags, err := p.root.LookupSequence("tags")
	if err != nil {
		return err
	}

	res := p.result
	res.Info = Info{
		Title:       textOf(p.info, "title"),
		Version:     textOf(p.info, "version"),
		Description: textOf(p.info, "description"),
	}
	if p.root.IsMapping() {
		res.Info.OpenAPI = textOf(p.root, "openapi")
	}

	res.Stats = Stats{
		Paths:           p.paths.Len(),
		Schemas:         schemas.Len(),
		SecuritySchemes: schemes.Len(),
		Tags:            tags.Len(),
		Methods:         make([]MethodCount, len(Methods)),
	}
	for i, m := range Methods {
		res.Stats.Methods[i].Method = m
	}

	for _, tag := range tags.Items() {
		if err := tag.ExpectMapping(); err != nil {
			return err
		}
		res.Tags = append(res.Tags, Tag{
			Name:        textOf(tag, "name"),
			Description: textOf(tag, "description"),
		})
	}

	for _, name := range schemes.Keys() {
		scheme, _ := schemes.Get(name)
		if err := scheme.ExpectMapping(); err != nil {
			return err
		}
		res.SecuritySchemes = append(res.SecuritySchemes, SecurityScheme{
			Name:   name,
			Type:   textOf(scheme, "type"),
			Scheme: textOf(scheme, "scheme"),
		})
	}

	return p.countOperations()
}

// countOperations counts every operation and records the ones that lack a
// responses key as "METHOD path".
func (p *pass) countOperations() error {
	res := p.result
	for _, path := range p.paths.Keys() {
		item, _ := p.paths.Get(path)
		if err := item.ExpectMapping(); err != nil {
			return err
		}
		for _, key := range item.Keys() {
			idx := slices.Index(Methods, p.lower.String(key))
			if idx < 0 {
				continue
			}
			res.Stats.Methods[idx].Count++
			res.Stats.Operations++

			op, _ := item.Get(key)
			if err := op.ExpectMapping(); err != nil {
				return err
			}
			if !op.Has("responses") {
				res.MissingResponses = append(res.MissingResponses, p.upper.String(key)+" "+path)
			}
		}
	}
	return nil
}
