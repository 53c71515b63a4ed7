package profiles

import (
	"github.com/graphol-dev/grapholint/internal/diagram"
)

// rlEdgeRules returns the edge rules appended to the base catalog by the
// OWL 2 RL profile.
func rlEdgeRules() []EdgeRule {
	return []EdgeRule{
		NewEdgeRule("rl-input-union", rlInputUnionRule),
		NewEdgeRule("rl-input-enumeration", rlInputEnumerationRule),
		NewEdgeRule("rl-inclusion-concepts", rlInclusionConceptsRule),
	}
}

// rlNodeRules returns the node rules appended by the OWL 2 RL profile.
func rlNodeRules() []NodeRule {
	return []NodeRule{
		NewNodeRule("rl-forbidden-nodes", rlForbiddenNodesRule),
		NewNodeRule("rl-datatypes", rlDatatypesRule),
		NewNodeRule("rl-top-bottom-properties", rlTopBottomPropertiesRule),
		NewNodeRule("rl-self-restriction", rlSelfRestrictionRule),
		NewNodeRule("rl-max-cardinality", rlMaxCardinalityRule),
	}
}

func rlInputUnionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput {
		return nil
	}
	if target.Type() != diagram.NodeUnion && target.Type() != diagram.NodeDisjointUnion {
		return nil
	}
	if source.Identity() == diagram.IdentityValueDomain {
		return failf("Union of value-domain expressions is forbidden in OWL 2 RL")
	}
	return nil
}

func rlInputEnumerationRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeEnumeration {
		return nil
	}
	if source.Type() == diagram.NodeLiteral || source.Identity() == diagram.IdentityValue {
		return failf("Enumeration of values is forbidden in OWL 2 RL")
	}
	return nil
}

// rlInclusionConceptsRule enforces the RL grammar split between subclass
// and superclass expressions: a union cannot appear on the superclass
// side, a universal restriction cannot appear on the subclass side.
func rlInclusionConceptsRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInclusion {
		return nil
	}
	if !source.Identities().Contains(diagram.IdentityConcept) ||
		!target.Identities().Contains(diagram.IdentityConcept) {
		return nil
	}
	if target.Type() == diagram.NodeUnion || target.Type() == diagram.NodeDisjointUnion {
		return failf("Union of class expressions cannot be the target of an inclusion in OWL 2 RL")
	}
	if source.Type().IsRestriction() {
		if r := source.Restriction(); r != nil && r.Kind == diagram.RestrictionForall {
			return failf("Universal restrictions cannot be the source of an inclusion in OWL 2 RL")
		}
	}
	return nil
}

func rlForbiddenNodesRule(node *diagram.Node) error {
	switch node.Type() {
	case diagram.NodeDatatypeRestriction, diagram.NodeFacet:
		return failf("%s nodes are forbidden in OWL 2 RL", node.Type())
	}
	return nil
}

func rlDatatypesRule(node *diagram.Node) error {
	if node.Type() != diagram.NodeValueDomain {
		return nil
	}
	if d := node.Datatype(); d != "" && !d.InRLProfile() {
		return failf("Datatype %s is forbidden in OWL 2 RL", d.Short())
	}
	return nil
}

func rlTopBottomPropertiesRule(node *diagram.Node) error {
	if node.Type() != diagram.NodeRole && node.Type() != diagram.NodeAttribute {
		return nil
	}
	iri := node.IRI()
	if iri == nil {
		return nil
	}
	if iri.IsTopObjectProperty() || iri.IsBottomObjectProperty() ||
		iri.IsTopDataProperty() || iri.IsBottomDataProperty() {
		return failf("%s is forbidden in OWL 2 RL", iri.Short())
	}
	return nil
}

func rlSelfRestrictionRule(node *diagram.Node) error {
	if r := node.Restriction(); r != nil && r.Kind == diagram.RestrictionSelf {
		return failf("Self restrictions are forbidden in OWL 2 RL")
	}
	return nil
}

func rlMaxCardinalityRule(node *diagram.Node) error {
	r := node.Restriction()
	if r == nil || r.Kind != diagram.RestrictionCardinality {
		return nil
	}
	if r.Max != nil && *r.Max > 1 {
		return failf("Cardinality restrictions with maximum above one are forbidden in OWL 2 RL")
	}
	return nil
}
