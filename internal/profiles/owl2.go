package profiles

import (
	"github.com/graphol-dev/grapholint/internal/diagram"
)

// owl2EdgeRules returns the base OWL 2 edge rules in evaluation order.
// Order is behavior: compatibility checks run before the narrow checks
// that assume them, and the first failure decides the verdict.
func owl2EdgeRules() []EdgeRule {
	return []EdgeRule{
		NewEdgeRule("self-connection", selfConnectionRule),
		NewEdgeRule("equivalence-between-expressions", equivalenceBetweenExpressionsRule),
		NewEdgeRule("equivalence-between-value-domains", equivalenceBetweenValueDomainsRule),
		NewEdgeRule("equivalence-with-complement", equivalenceWithComplementRule),
		NewEdgeRule("equivalence-with-role-chain", equivalenceWithRoleChainRule),
		NewEdgeRule("inclusion-between-expressions", inclusionBetweenExpressionsRule),
		NewEdgeRule("inclusion-between-value-domains", inclusionBetweenValueDomainsRule),
		NewEdgeRule("inclusion-with-complement", inclusionWithComplementRule),
		NewEdgeRule("inclusion-with-role-chain", inclusionWithRoleChainRule),
		NewEdgeRule("input-to-constructor", inputToConstructorRule),
		NewEdgeRule("input-to-complement", inputToComplementRule),
		NewEdgeRule("input-to-intersection-or-union", inputToIntersectionOrUnionRule),
		NewEdgeRule("input-to-enumeration", inputToEnumerationRule),
		NewEdgeRule("input-to-role-inverse", inputToRoleInverseRule),
		NewEdgeRule("input-to-role-chain", inputToRoleChainRule),
		NewEdgeRule("input-to-datatype-restriction", inputToDatatypeRestrictionRule),
		NewEdgeRule("input-to-property-assertion", inputToPropertyAssertionRule),
		NewEdgeRule("input-to-domain-restriction", inputToDomainRestrictionRule),
		NewEdgeRule("input-to-range-restriction", inputToRangeRestrictionRule),
		NewEdgeRule("input-to-facet", inputToFacetRule),
		NewEdgeRule("input-to-has-key", inputToHasKeyRule),
		NewEdgeRule("membership-assertion", membershipRule),
		NewEdgeRule("same-different-individuals", sameDifferentRule),
	}
}

// owl2NodeRules returns the base OWL 2 node rules in evaluation order.
func owl2NodeRules() []NodeRule {
	return []NodeRule{
		NewNodeRule("cardinality-bounds", cardinalityBoundsRule),
		NewNodeRule("unknown-identity", unknownIdentityRule),
	}
}

// inputsTo returns the sources of input edges targeting n, excluding the
// edge currently under validation.
func inputsTo(n *diagram.Node, exclude *diagram.Edge) []*diagram.Node {
	return n.Incoming(func(e *diagram.Edge) bool {
		return e.Type() == diagram.EdgeInput && e != exclude
	}, nil)
}

// selfConnectionRule rejects any edge whose endpoints coincide, regardless
// of edge type.
func selfConnectionRule(source *diagram.Node, _ *diagram.Edge, target *diagram.Node) error {
	if source == target {
		return failf("Self connection is not valid")
	}
	return nil
}

// expressionsCompatible reports whether two endpoints may be related by an
// inclusion or equivalence: their admissible identities must intersect on
// an expression category, or both must still admit Individual among more
// than one candidate.
func expressionsCompatible(source, target *diagram.Node) bool {
	shared := diagram.NewIdentitySet()
	targetIDs := target.Identities()
	for id := range source.Identities() {
		if targetIDs.Contains(id) {
			shared.Add(id)
		}
	}
	if shared.ContainsAny(diagram.IdentityConcept, diagram.IdentityRole,
		diagram.IdentityAttribute, diagram.IdentityValueDomain) {
		return true
	}
	return source.Identities().Contains(diagram.IdentityIndividual) &&
		target.Identities().Contains(diagram.IdentityIndividual) &&
		source.Identities().Len() > 1 && target.Identities().Len() > 1
}

func equivalenceBetweenExpressionsRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeEquivalence {
		return nil
	}
	if !expressionsCompatible(source, target) {
		return failf("Equivalence is forbidden between %s and %s", source.Name(), target.Name())
	}
	return nil
}

func equivalenceBetweenValueDomainsRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeEquivalence {
		return nil
	}
	if source.Identity() == diagram.IdentityValueDomain || target.Identity() == diagram.IdentityValueDomain {
		return failf("Equivalence is forbidden between value-domain expressions")
	}
	return nil
}

// equivalenceWithComplementRule rejects equivalences pairing a role or
// attribute expression with a complement node: that shape expresses
// disjointness, which is an inclusion, not an equivalence.
func equivalenceWithComplementRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeEquivalence {
		return nil
	}
	if source.Type() != diagram.NodeComplement && target.Type() != diagram.NodeComplement {
		return nil
	}
	for _, n := range []*diagram.Node{source, target} {
		switch n.Identity() {
		case diagram.IdentityRole:
			return failf("Equivalence is forbidden in presence of a role complement")
		case diagram.IdentityAttribute:
			return failf("Equivalence is forbidden in presence of an attribute complement")
		}
	}
	return nil
}

// equivalenceWithRoleChainRule rejects equivalences touching a role chain:
// chains cannot be inclusion targets, and an equivalence is two inclusions.
func equivalenceWithRoleChainRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeEquivalence {
		return nil
	}
	if source.Type() == diagram.NodeRoleChain || target.Type() == diagram.NodeRoleChain {
		return failf("Equivalence is forbidden in presence of a role chain node")
	}
	return nil
}

func inclusionBetweenExpressionsRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInclusion {
		return nil
	}
	if !expressionsCompatible(source, target) {
		return failf("Inclusion is forbidden between %s and %s", source.Name(), target.Name())
	}
	return nil
}

// inclusionBetweenValueDomainsRule denies inclusions between value-domain
// expressions, carving out the one legitimate shape: the DataPropertyRange
// axiom, whose source is a range restriction and whose target is not.
func inclusionBetweenValueDomainsRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInclusion {
		return nil
	}
	if source.Identity() != diagram.IdentityValueDomain || target.Identity() != diagram.IdentityValueDomain {
		return nil
	}
	if source.Type() != diagram.NodeRangeRestriction {
		return failf("Inclusion between value-domain expressions is forbidden")
	}
	if target.Type() == diagram.NodeRangeRestriction {
		return failf("Inclusion between range restriction nodes is forbidden")
	}
	return nil
}

// inclusionWithComplementRule rejects role/attribute inclusions sourced at
// a complement node. The generated axiom (DisjointObjectProperties,
// DisjointDataProperties) is directional: the complement may only be the
// target.
func inclusionWithComplementRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInclusion {
		return nil
	}
	if source.Type() != diagram.NodeComplement {
		return nil
	}
	id := source.Identity()
	if id == diagram.IdentityNeutral {
		id = target.Identity()
	}
	switch id {
	case diagram.IdentityRole:
		return failf("Invalid source for role inclusion: %s", source.Name())
	case diagram.IdentityAttribute:
		return failf("Invalid source for attribute inclusion: %s", source.Name())
	}
	return nil
}

func inclusionWithRoleChainRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInclusion {
		return nil
	}
	if target.Type() == diagram.NodeRoleChain {
		return failf("Role chain nodes cannot be the target of an inclusion")
	}
	if source.Type() == diagram.NodeRoleChain &&
		target.Type() != diagram.NodeRole && target.Type() != diagram.NodeRoleInverse {
		return failf("Inclusion sourced from a role chain must target a role or the inverse of a role")
	}
	return nil
}

func inputToConstructorRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput {
		return nil
	}
	if !target.Type().IsConstructor() {
		return failf("Input edges can only target constructor nodes")
	}
	if source.Type() == diagram.NodePropertyAssertion {
		return failf("Property assertion nodes cannot be used as input")
	}
	return nil
}

// pendingValueDomainChainGuard polices a Neutral input that could still
// commit the target chain to ValueDomain: it walks the undetermined chain
// forward through input edges and rejects the connection when an inclusion
// attached anywhere on the chain would become an illegal inclusion between
// value-domain expressions once the chain commits.
func pendingValueDomainChainGuard(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if source.Identity() != diagram.IdentityNeutral ||
		!source.Identities().Contains(diagram.IdentityValueDomain) {
		return nil
	}
	if !target.Identities().Contains(diagram.IdentityValueDomain) {
		return nil
	}
	cross := func(e *diagram.Edge) bool {
		return e != edge && e.Type() == diagram.EdgeInput
	}
	visit := func(n *diagram.Node) bool {
		return n.Identity() == diagram.IdentityNeutral
	}
	for _, n := range diagram.BFS(target, cross, visit) {
		for _, e := range n.AdjacentEdges() {
			if e.Type() != diagram.EdgeInclusion {
				continue
			}
			// Inclusions sourced from a range restriction stay legal
			// even between value domains (DataPropertyRange).
			if e.Source().Type() == diagram.NodeRangeRestriction {
				continue
			}
			other := e.Opposite(n)
			if other != nil && other.Identities().Contains(diagram.IdentityValueDomain) {
				return failf("This expression would create an inclusion between value-domain expressions")
			}
		}
	}
	return nil
}

func inputToComplementRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeComplement {
		return nil
	}
	if len(inputsTo(target, edge)) > 0 {
		return failf("Too many inputs to %s", target.Name())
	}
	admissible := diagram.NewIdentitySet(diagram.IdentityNeutral, diagram.IdentityConcept,
		diagram.IdentityRole, diagram.IdentityAttribute, diagram.IdentityValueDomain)
	if !admissible.Contains(source.Identity()) {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	// A role or attribute complement expresses disjointness and must not
	// leak into further expressions.
	if source.Identity() == diagram.IdentityRole || source.Identity() == diagram.IdentityAttribute {
		leaks := source.Outgoing(func(e *diagram.Edge) bool {
			return e != edge && (e.Type() == diagram.EdgeInput || e.Type() == diagram.EdgeInclusion)
		}, nil)
		if len(leaks) > 0 {
			return failf("Invalid input to %s: %s is already used in another expression", target.Name(), source.Name())
		}
	}
	return pendingValueDomainChainGuard(source, edge, target)
}

func inputToIntersectionOrUnionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput {
		return nil
	}
	switch target.Type() {
	case diagram.NodeIntersection, diagram.NodeUnion, diagram.NodeDisjointUnion:
	default:
		return nil
	}
	admissible := diagram.NewIdentitySet(diagram.IdentityNeutral,
		diagram.IdentityConcept, diagram.IdentityValueDomain)
	if !admissible.Contains(source.Identity()) {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	// The node exists only to express DataPropertyRange; its identity
	// matches but its semantics do not.
	if source.Type() == diagram.NodeRangeRestriction {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	if source.Identity() != diagram.IdentityNeutral {
		for _, other := range inputsTo(target, edge) {
			if other.Identity() == diagram.IdentityNeutral || other.Identity() == source.Identity() {
				continue
			}
			return failf("Type mismatch: %s between %s and %s", target.Type(), source.Name(), other.Name())
		}
	}
	return pendingValueDomainChainGuard(source, edge, target)
}

func inputToEnumerationRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeEnumeration {
		return nil
	}
	if source.Type() != diagram.NodeIndividual && source.Type() != diagram.NodeLiteral &&
		!source.Identities().Contains(diagram.IdentityIndividual) {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	for _, other := range inputsTo(target, edge) {
		mixed := (other.Identity() == diagram.IdentityIndividual && source.Identity() == diagram.IdentityValue) ||
			(other.Identity() == diagram.IdentityValue && source.Identity() == diagram.IdentityIndividual)
		if mixed {
			return failf("Invalid input to %s: individuals and values cannot be mixed", target.Name())
		}
	}
	// An enumeration acting as a restriction filler is a degenerate
	// one-element enumeration (ObjectHasValue, DataHasValue).
	fillerOf := target.Outgoing(func(e *diagram.Edge) bool {
		return e != edge && e.Type() == diagram.EdgeInput
	}, func(n *diagram.Node) bool {
		return n.Type().IsRestriction()
	})
	if len(fillerOf) > 0 && len(inputsTo(target, edge)) >= 1 {
		return failf("Too many inputs to %s acting as a restriction filler", target.Name())
	}
	return nil
}

func inputToRoleInverseRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeRoleInverse {
		return nil
	}
	if source.Type() != diagram.NodeRole {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	if len(inputsTo(target, edge)) > 0 {
		return failf("Too many inputs to %s", target.Name())
	}
	return nil
}

func inputToRoleChainRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeRoleChain {
		return nil
	}
	if source.Type() != diagram.NodeRole && source.Type() != diagram.NodeRoleInverse {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	return nil
}

func inputToDatatypeRestrictionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeDatatypeRestriction {
		return nil
	}
	if source.Type() != diagram.NodeValueDomain && source.Type() != diagram.NodeFacet {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	existing := inputsTo(target, edge)
	if source.Type() == diagram.NodeValueDomain {
		for _, other := range existing {
			if other.Type() == diagram.NodeValueDomain {
				return failf("Too many value-domain inputs to %s", target.Name())
			}
		}
		for _, other := range existing {
			if other.Type() == diagram.NodeFacet && !other.Facet().CompatibleWith(source.Datatype()) {
				return failf("Facet %s is not compatible with datatype %s",
					other.Facet().Short(), source.Datatype().Short())
			}
		}
		return nil
	}
	for _, other := range existing {
		if other.Type() == diagram.NodeValueDomain && !source.Facet().CompatibleWith(other.Datatype()) {
			return failf("Facet %s is not compatible with datatype %s",
				source.Facet().Short(), other.Datatype().Short())
		}
	}
	return nil
}

func inputToPropertyAssertionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodePropertyAssertion {
		return nil
	}
	if source.Identity() != diagram.IdentityIndividual && source.Identity() != diagram.IdentityValue {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	existing := inputsTo(target, edge)
	if len(existing) >= 2 {
		return failf("Too many inputs to %s", target.Name())
	}
	if source.Identity() == diagram.IdentityValue {
		if target.Identity() == diagram.IdentityRoleInstance {
			return failf("Invalid input to %s: a role assertion relates individuals", target.Name())
		}
		subject := false
		for _, other := range existing {
			if other.Identity() == diagram.IdentityIndividual {
				subject = true
			}
		}
		if !subject {
			return failf("Invalid input to %s: the first input must be an individual", target.Name())
		}
	}
	if target.Identity() == diagram.IdentityAttributeInstance {
		for _, other := range existing {
			if other.Identity() == source.Identity() {
				return failf("Invalid input to %s: an attribute assertion relates one individual and one value", target.Name())
			}
		}
	}
	return nil
}

// counterpartIdentities maps the admissible identities of an attached
// restriction input to the identities its companion must admit: a concept
// filler pairs with a role, an attribute with a value domain, and vice
// versa.
func counterpartIdentities(n *diagram.Node) diagram.IdentitySet {
	want := diagram.NewIdentitySet()
	ids := n.Identities()
	if ids.Contains(diagram.IdentityRole) {
		want.Add(diagram.IdentityConcept)
	}
	if ids.Contains(diagram.IdentityConcept) {
		want.Add(diagram.IdentityRole)
	}
	if ids.Contains(diagram.IdentityAttribute) {
		want.Add(diagram.IdentityValueDomain)
	}
	if ids.Contains(diagram.IdentityValueDomain) {
		want.Add(diagram.IdentityAttribute)
	}
	return want
}

func checkRestrictionInput(source *diagram.Node, edge *diagram.Edge, target *diagram.Node, admissible diagram.IdentitySet) error {
	existing := inputsTo(target, edge)
	if len(existing) >= 2 {
		return failf("Too many inputs to %s", target.Name())
	}
	// Role chains match the role identity but not the OWL shape.
	if source.Type() == diagram.NodeRoleChain {
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
	if !admissible.Contains(source.Identity()) {
		return failf("Invalid identity of input to %s: %s", target.Name(), source.Identity())
	}
	if r := target.Restriction(); r != nil && r.Kind == diagram.RestrictionSelf {
		switch source.Identity() {
		case diagram.IdentityAttribute:
			return failf("Attributes do not have self")
		case diagram.IdentityValueDomain:
			return failf("Value-domain expressions do not have self")
		}
	}
	if len(existing) == 1 {
		other := existing[0]
		if !source.Identities().Intersects(counterpartIdentities(other)) {
			return failf("Invalid restriction qualification: %s and %s", source.Name(), other.Name())
		}
	}
	if source.Type() == diagram.NodeEnumeration && len(inputsTo(source, nil)) > 1 {
		return failf("Too many inputs to %s acting as a restriction filler", source.Name())
	}
	return nil
}

func inputToDomainRestrictionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeDomainRestriction {
		return nil
	}
	return checkRestrictionInput(source, edge, target, diagram.NewIdentitySet(
		diagram.IdentityConcept, diagram.IdentityAttribute, diagram.IdentityRole,
		diagram.IdentityValueDomain, diagram.IdentityNeutral))
}

// inputToRangeRestrictionRule mirrors the domain restriction rule but
// excludes direct ValueDomain inputs: a range restriction reaches the
// value-domain category only through an attribute's resolved range.
func inputToRangeRestrictionRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeRangeRestriction {
		return nil
	}
	return checkRestrictionInput(source, edge, target, diagram.NewIdentitySet(
		diagram.IdentityConcept, diagram.IdentityAttribute, diagram.IdentityRole,
		diagram.IdentityNeutral))
}

func inputToFacetRule(_ *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeFacet {
		return nil
	}
	return failf("Invalid input to %s: facet nodes accept no input", target.Name())
}

func inputToHasKeyRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeInput || target.Type() != diagram.NodeHasKey {
		return nil
	}
	switch {
	case source.Type() == diagram.NodeRole, source.Type() == diagram.NodeRoleInverse,
		source.Type() == diagram.NodeAttribute:
		// Property expression inputs, any number of them.
		return nil
	case source.Identities().Contains(diagram.IdentityConcept):
		for _, other := range inputsTo(target, edge) {
			switch other.Type() {
			case diagram.NodeRole, diagram.NodeRoleInverse, diagram.NodeAttribute:
				continue
			}
			if other.Identities().Contains(diagram.IdentityConcept) {
				return failf("Too many class inputs to %s", target.Name())
			}
		}
		return nil
	default:
		return failf("Invalid input to %s: %s", target.Name(), source.Name())
	}
}

// neutralChainRejects walks outward from start through still-Neutral nodes
// connected by non-membership edges and returns the first reachable node
// that does not admit any of the required identities. This catches illegal
// identity commitments several hops away before they are locked in.
func neutralChainRejects(start *diagram.Node, exclude *diagram.Edge, required ...diagram.Identity) *diagram.Node {
	cross := func(e *diagram.Edge) bool {
		return e != exclude && e.Type() != diagram.EdgeMembership
	}
	visit := func(n *diagram.Node) bool {
		return n.Identity() == diagram.IdentityNeutral
	}
	for _, n := range diagram.BFS(start, cross, visit) {
		if !n.Identities().ContainsAny(required...) {
			return n
		}
	}
	return nil
}

func membershipRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeMembership {
		return nil
	}
	if source.Identity() != diagram.IdentityIndividual && source.Type() != diagram.NodePropertyAssertion {
		return failf("Invalid source for membership edge: %s", source.Name())
	}
	switch source.Identity() {
	case diagram.IdentityIndividual:
		// ClassAssertion.
		if !target.Identities().Contains(diagram.IdentityConcept) {
			return failf("Invalid target for class assertion: %s", target.Name())
		}
		if target.Identity() == diagram.IdentityNeutral {
			if bad := neutralChainRejects(target, edge, diagram.IdentityConcept); bad != nil {
				return failf("Invalid target for class assertion: %s", bad.Name())
			}
		}
	case diagram.IdentityRoleInstance:
		if target.Type() == diagram.NodeRoleChain || !target.Identities().Contains(diagram.IdentityRole) {
			return failf("Invalid target for role assertion: %s", target.Name())
		}
		if target.Identity() == diagram.IdentityNeutral {
			if bad := neutralChainRejects(target, edge, diagram.IdentityRole); bad != nil {
				return failf("Invalid target for role assertion: %s", bad.Name())
			}
		}
	case diagram.IdentityAttributeInstance:
		if !target.Identities().Contains(diagram.IdentityAttribute) {
			return failf("Invalid target for attribute assertion: %s", target.Name())
		}
		if target.Identity() == diagram.IdentityNeutral {
			if bad := neutralChainRejects(target, edge, diagram.IdentityAttribute); bad != nil {
				return failf("Invalid target for attribute assertion: %s", bad.Name())
			}
		}
	default:
		// A property assertion whose kind is still undetermined.
		if !target.Identities().ContainsAny(diagram.IdentityRole, diagram.IdentityAttribute) {
			return failf("Invalid target for property assertion: %s", target.Name())
		}
		if target.Identity() == diagram.IdentityNeutral {
			if bad := neutralChainRejects(target, edge, diagram.IdentityRole, diagram.IdentityAttribute); bad != nil {
				return failf("Invalid target for property assertion: %s", bad.Name())
			}
		}
	}
	return nil
}

func sameDifferentRule(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error {
	if edge.Type() != diagram.EdgeSame && edge.Type() != diagram.EdgeDifferent {
		return nil
	}
	for _, n := range []*diagram.Node{source, target} {
		if !n.Identities().Contains(diagram.IdentityIndividual) {
			return failf("Invalid endpoint for %s edge: %s", edge.Type(), n.Name())
		}
	}
	return nil
}

func cardinalityBoundsRule(node *diagram.Node) error {
	r := node.Restriction()
	if r == nil || r.Kind != diagram.RestrictionCardinality {
		return nil
	}
	if r.Min != nil && *r.Min < 0 {
		return failf("Invalid cardinality on %s: minimum must be non-negative", node.Name())
	}
	if r.Max != nil && *r.Max < 0 {
		return failf("Invalid cardinality on %s: maximum must be non-negative", node.Name())
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return failf("Invalid cardinality range %s on %s", r.String(), node.Name())
	}
	return nil
}

func unknownIdentityRule(node *diagram.Node) error {
	if node.Identity() == diagram.IdentityUnknown {
		return failf("Unknown node identity: %s", node.Name())
	}
	return nil
}
