package profiles

import (
	"github.com/graphol-dev/grapholint/internal/diagram"
)

// qlEdgeRules returns the edge rules appended to the base catalog by the
// OWL 2 QL profile. They only restrict: every edge they reject is rejected
// on top of a verdict the base rules already accepted.
func qlEdgeRules() []EdgeRule {
	return []EdgeRule{
		NewEdgeRule("ql-same-edge", qlSameEdgeRule),
		NewEdgeRule("ql-inclusion-equivalence", qlInclusionEquivalenceRule),
		NewEdgeRule("ql-input-complement", qlInputComplementRule),
		NewEdgeRule("ql-input-intersection", qlInputIntersectionRule),
		NewEdgeRule("ql-restriction-filler", qlRestrictionFillerRule),
		NewEdgeRule("ql-membership-complement", qlMembershipComplementRule),
	}
}

// qlNodeRules returns the node rules appended by the OWL 2 QL profile.
func qlNodeRules() []NodeRule {
	return []NodeRule{
		NewNodeRule("ql-forbidden-nodes", qlForbiddenNodesRule),
		NewNodeRule("ql-property-characteristics", qlPropertyCharacteristicsRule),
	}
}

func qlSameEdgeRule(_ *diagram.Node, edge *diagram.Edge, _ *diagram.Node) error {
	if edge.Type() == diagram.EdgeSame {
		return failf("Same is forbidden in OWL 2 QL")
	}
	return nil
}

// qualifiedRestriction reports whether a restriction node carries a filler
// input besides its property input.
func qualifiedRestriction(n *diagram.Node) bool {
	return n.Type().IsRestriction() && len(inputsTo(n, nil)) >= 2
}

func qlInclusionEquivalenceRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInclusion && edge.Type() != diagram.EdgeEquivalence {
		return nil
	}
	for _, n := range []*diagram.Node{source, target} {
		switch n.Type() {
		case diagram.NodeIntersection, diagram.NodeComplement:
			return failf("%s nodes cannot take part in a %s in OWL 2 QL", n.Type(), edge.Type())
		}
		if n.Type().IsRestriction() {
			if r := n.Restriction(); r != nil && r.Kind != diagram.RestrictionExists {
				return failf("Only existential restrictions can take part in a %s in OWL 2 QL", edge.Type())
			}
			if qualifiedRestriction(n) {
				return failf("Qualified restrictions cannot take part in a %s in OWL 2 QL", edge.Type())
			}
		}
	}
	return nil
}

func qlInputComplementRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeComplement {
		return nil
	}
	if source.Identity() == diagram.IdentityValueDomain {
		return failf("Complement of a value-domain expression is forbidden in OWL 2 QL")
	}
	return nil
}

// qlInputIntersectionRule rejects a value-domain input to an intersection
// whose undetermined chain already reaches a complement node: once the
// chain commits, the diagram would express the complement of a
// value-domain expression.
func qlInputIntersectionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeIntersection {
		return nil
	}
	if source.Identity() != diagram.IdentityValueDomain {
		return nil
	}
	cross := func(e *diagram.Edge) bool {
		return e != edge && e.Type() == diagram.EdgeInput
	}
	visit := func(n *diagram.Node) bool {
		return n.Identity() == diagram.IdentityNeutral ||
			n.Identities().Contains(diagram.IdentityValueDomain)
	}
	for _, n := range diagram.BFS(target, cross, visit) {
		if n.Type() == diagram.NodeComplement {
			return failf("Complement of a value-domain expression is forbidden in OWL 2 QL")
		}
	}
	return nil
}

// qlRestrictionFillerRule constrains restriction fillers: QL admits only a
// named class as the filler of a qualified existential, and that class may
// not specialize another expression elsewhere in the diagram.
func qlRestrictionFillerRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || !target.Type().IsRestriction() {
		return nil
	}
	if !source.Identities().Contains(diagram.IdentityConcept) {
		return nil
	}
	if source.Type() != diagram.NodeConcept {
		return failf("Restriction fillers must be named classes in OWL 2 QL")
	}
	if iri := source.IRI(); iri != nil && iri.IsOwlThing() {
		return nil
	}
	specializes := source.Outgoing(func(e *diagram.Edge) bool {
		return e != edge && (e.Type() == diagram.EdgeInclusion || e.Type() == diagram.EdgeEquivalence)
	}, nil)
	if len(specializes) > 0 {
		return failf("A class used as a restriction filler cannot specialize another expression in OWL 2 QL")
	}
	return nil
}

func qlMembershipComplementRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeMembership || target.Type() != diagram.NodeComplement {
		return nil
	}
	switch {
	case source.Identity() == diagram.IdentityRoleInstance,
		source.Identity() == diagram.IdentityAttributeInstance,
		source.Type() == diagram.NodePropertyAssertion && source.Identity() == diagram.IdentityNeutral:
		return failf("Negative property assertions are forbidden in OWL 2 QL")
	}
	return nil
}

func qlForbiddenNodesRule(node *diagram.Node) error {
	switch node.Type() {
	case diagram.NodeUnion, diagram.NodeDisjointUnion, diagram.NodeDatatypeRestriction,
		diagram.NodeFacet, diagram.NodeEnumeration, diagram.NodeRoleChain:
		return failf("%s nodes are forbidden in OWL 2 QL", node.Type())
	}
	return nil
}

func qlPropertyCharacteristicsRule(node *diagram.Node) error {
	if node.Type() != diagram.NodeRole && node.Type() != diagram.NodeAttribute {
		return nil
	}
	iri := node.IRI()
	if iri == nil {
		return nil
	}
	kind := "roles"
	if node.Type() == diagram.NodeAttribute {
		kind = "attributes"
	}
	switch {
	case iri.Functional:
		return failf("Functional %s are forbidden in OWL 2 QL", kind)
	case iri.InverseFunctional:
		return failf("Inverse functional %s are forbidden in OWL 2 QL", kind)
	case iri.Transitive:
		return failf("Transitive %s are forbidden in OWL 2 QL", kind)
	}
	return nil
}
