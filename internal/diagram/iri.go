package diagram

import (
	"strings"

	"github.com/graphol-dev/grapholint/internal/owl"
)

// IRI references the ontology entity a predicate node denotes, together
// with the property characteristics asserted on it.
type IRI struct {
	Value             string
	Functional        bool
	InverseFunctional bool
	Transitive        bool
}

// NewIRI returns an IRI reference with no characteristics asserted.
func NewIRI(value string) *IRI {
	return &IRI{Value: value}
}

// IsOwlThing reports whether the IRI is owl:Thing.
func (i *IRI) IsOwlThing() bool {
	return i != nil && i.Value == owl.Thing
}

// IsOwlNothing reports whether the IRI is owl:Nothing.
func (i *IRI) IsOwlNothing() bool {
	return i != nil && i.Value == owl.Nothing
}

// IsTopObjectProperty reports whether the IRI is owl:topObjectProperty.
func (i *IRI) IsTopObjectProperty() bool {
	return i != nil && i.Value == owl.TopObjectProperty
}

// IsBottomObjectProperty reports whether the IRI is owl:bottomObjectProperty.
func (i *IRI) IsBottomObjectProperty() bool {
	return i != nil && i.Value == owl.BottomObjectProperty
}

// IsTopDataProperty reports whether the IRI is owl:topDataProperty.
func (i *IRI) IsTopDataProperty() bool {
	return i != nil && i.Value == owl.TopDataProperty
}

// IsBottomDataProperty reports whether the IRI is owl:bottomDataProperty.
func (i *IRI) IsBottomDataProperty() bool {
	return i != nil && i.Value == owl.BottomDataProperty
}

// Short returns the fragment or last path segment of the IRI, for display.
func (i *IRI) Short() string {
	if i == nil {
		return ""
	}
	if idx := strings.LastIndexAny(i.Value, "#/"); idx >= 0 && idx < len(i.Value)-1 {
		return i.Value[idx+1:]
	}
	return i.Value
}
