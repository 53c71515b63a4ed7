// Package config loads diagram documents: the YAML files the linter
// consumes, describing named diagrams as node and edge lists. Documents
// are schema-validated before any graph is built, so the builder only has
// to resolve references.
package config

import (
	"fmt"

	"github.com/graphol-dev/grapholint/internal/diagram"
	"github.com/graphol-dev/grapholint/internal/owl"
)

// Document is the root of a diagram document file.
type Document struct {
	// Graphol is the document format version, gated against the
	// supported range at load time.
	Graphol  string       `yaml:"graphol" json:"graphol"`
	Diagrams []DiagramDoc `yaml:"diagrams" json:"diagrams"`
}

// DiagramDoc describes one named diagram.
type DiagramDoc struct {
	Name  string    `yaml:"name" json:"name"`
	Nodes []NodeDoc `yaml:"nodes" json:"nodes"`
	Edges []EdgeDoc `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// NodeDoc describes a single node. Only the fields meaningful for the
// node's type are expected to be set.
type NodeDoc struct {
	ID    string `yaml:"id" json:"id"`
	Type  string `yaml:"type" json:"type"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`

	IRI               string `yaml:"iri,omitempty" json:"iri,omitempty"`
	Functional        bool   `yaml:"functional,omitempty" json:"functional,omitempty"`
	InverseFunctional bool   `yaml:"inverseFunctional,omitempty" json:"inverseFunctional,omitempty"`
	Transitive        bool   `yaml:"transitive,omitempty" json:"transitive,omitempty"`

	Datatype    string          `yaml:"datatype,omitempty" json:"datatype,omitempty"`
	Facet       string          `yaml:"facet,omitempty" json:"facet,omitempty"`
	Restriction *RestrictionDoc `yaml:"restriction,omitempty" json:"restriction,omitempty"`
}

// RestrictionDoc qualifies a domain/range restriction node.
type RestrictionDoc struct {
	Kind string `yaml:"kind" json:"kind"`
	Min  *int   `yaml:"min,omitempty" json:"min,omitempty"`
	Max  *int   `yaml:"max,omitempty" json:"max,omitempty"`
}

// EdgeDoc describes a single edge by endpoint node IDs.
type EdgeDoc struct {
	ID     string `yaml:"id" json:"id"`
	Type   string `yaml:"type" json:"type"`
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
}

// Build resolves the document into diagrams, in document order. Node
// references are resolved here; duplicate IDs and dangling endpoints are
// rejected by the diagram itself.
func (d *Document) Build() ([]*diagram.Diagram, error) {
	out := make([]*diagram.Diagram, 0, len(d.Diagrams))
	for _, dd := range d.Diagrams {
		dg, err := dd.Build()
		if err != nil {
			return nil, fmt.Errorf("diagram %s: %w", dd.Name, err)
		}
		out = append(out, dg)
	}
	return out, nil
}

// Build constructs the diagram graph from the node and edge lists.
func (d *DiagramDoc) Build() (*diagram.Diagram, error) {
	dg := diagram.New(d.Name)
	for _, nd := range d.Nodes {
		n, err := nd.build()
		if err != nil {
			return nil, err
		}
		if err := dg.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, ed := range d.Edges {
		source, ok := dg.Node(ed.Source)
		if !ok {
			return nil, fmt.Errorf("edge %s: unknown source node %s", ed.ID, ed.Source)
		}
		target, ok := dg.Node(ed.Target)
		if !ok {
			return nil, fmt.Errorf("edge %s: unknown target node %s", ed.ID, ed.Target)
		}
		if _, err := dg.AddEdge(ed.ID, diagram.EdgeType(ed.Type), source, target); err != nil {
			return nil, err
		}
	}
	return dg, nil
}

func (nd *NodeDoc) build() (*diagram.Node, error) {
	var opts []diagram.NodeOption
	if nd.Label != "" {
		opts = append(opts, diagram.WithLabel(nd.Label))
	}
	if nd.IRI != "" {
		iri := diagram.NewIRI(nd.IRI)
		iri.Functional = nd.Functional
		iri.InverseFunctional = nd.InverseFunctional
		iri.Transitive = nd.Transitive
		opts = append(opts, diagram.WithIRI(iri))
	}
	if nd.Datatype != "" {
		dt, ok := owl.ParseDatatype(nd.Datatype)
		if !ok {
			return nil, fmt.Errorf("node %s: unknown datatype %q", nd.ID, nd.Datatype)
		}
		opts = append(opts, diagram.WithDatatype(dt))
	}
	if nd.Facet != "" {
		f, ok := owl.ParseFacet(nd.Facet)
		if !ok {
			return nil, fmt.Errorf("node %s: unknown facet %q", nd.ID, nd.Facet)
		}
		opts = append(opts, diagram.WithFacet(f))
	}
	if nd.Restriction != nil {
		opts = append(opts, diagram.WithRestriction(diagram.Restriction{
			Kind: diagram.RestrictionKind(nd.Restriction.Kind),
			Min:  nd.Restriction.Min,
			Max:  nd.Restriction.Max,
		}))
	}
	return diagram.NewNode(nd.ID, diagram.NodeType(nd.Type), opts...), nil
}
