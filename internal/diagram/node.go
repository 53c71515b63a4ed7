package diagram

import (
	"fmt"

	"github.com/graphol-dev/grapholint/internal/owl"
)

// NodeType is the drawing element a node was created as. Each type carries a
// fixed arity and shape policy enforced by the profile rules.
type NodeType string

const (
	NodeConcept             NodeType = "concept"
	NodeRole                NodeType = "role"
	NodeAttribute           NodeType = "attribute"
	NodeValueDomain         NodeType = "value-domain"
	NodeIndividual          NodeType = "individual"
	NodeLiteral             NodeType = "literal"
	NodeComplement          NodeType = "complement"
	NodeIntersection        NodeType = "intersection"
	NodeUnion               NodeType = "union"
	NodeDisjointUnion       NodeType = "disjoint-union"
	NodeEnumeration         NodeType = "enumeration"
	NodeRoleChain           NodeType = "role-chain"
	NodeRoleInverse         NodeType = "role-inverse"
	NodeDatatypeRestriction NodeType = "datatype-restriction"
	NodeFacet               NodeType = "facet"
	NodeDomainRestriction   NodeType = "domain-restriction"
	NodeRangeRestriction    NodeType = "range-restriction"
	NodePropertyAssertion   NodeType = "property-assertion"
	NodeHasKey              NodeType = "has-key"
)

// NodeTypes lists every node type.
var NodeTypes = []NodeType{
	NodeConcept, NodeRole, NodeAttribute, NodeValueDomain, NodeIndividual,
	NodeLiteral, NodeComplement, NodeIntersection, NodeUnion,
	NodeDisjointUnion, NodeEnumeration, NodeRoleChain, NodeRoleInverse,
	NodeDatatypeRestriction, NodeFacet, NodeDomainRestriction,
	NodeRangeRestriction, NodePropertyAssertion, NodeHasKey,
}

// IsPredicate reports whether the type denotes an atomic predicate node.
func (t NodeType) IsPredicate() bool {
	switch t {
	case NodeConcept, NodeRole, NodeAttribute, NodeValueDomain,
		NodeIndividual, NodeLiteral:
		return true
	}
	return false
}

// IsConstructor reports whether the type denotes a complex-expression
// constructor, i.e. a node built from input edges.
func (t NodeType) IsConstructor() bool {
	switch t {
	case NodeComplement, NodeIntersection, NodeUnion, NodeDisjointUnion,
		NodeEnumeration, NodeRoleChain, NodeRoleInverse,
		NodeDatatypeRestriction, NodeFacet, NodeDomainRestriction,
		NodeRangeRestriction, NodePropertyAssertion, NodeHasKey:
		return true
	}
	return false
}

// IsRestriction reports whether the type is a domain or range restriction.
func (t NodeType) IsRestriction() bool {
	return t == NodeDomainRestriction || t == NodeRangeRestriction
}

// RestrictionKind is the flavor of a domain/range restriction node.
type RestrictionKind string

const (
	RestrictionExists      RestrictionKind = "exists"
	RestrictionForall      RestrictionKind = "forall"
	RestrictionSelf        RestrictionKind = "self"
	RestrictionCardinality RestrictionKind = "cardinality"
)

// Restriction qualifies a domain/range restriction node. Min and Max are
// meaningful only for the cardinality kind; nil means unbounded.
type Restriction struct {
	Kind RestrictionKind
	Min  *int
	Max  *int
}

// String renders the restriction for display, e.g. "(1,3)" or "exists".
func (r Restriction) String() string {
	if r.Kind != RestrictionCardinality {
		return string(r.Kind)
	}
	min, max := "-", "-"
	if r.Min != nil {
		min = fmt.Sprintf("%d", *r.Min)
	}
	if r.Max != nil {
		max = fmt.Sprintf("%d", *r.Max)
	}
	return "(" + min + "," + max + ")"
}

// Node is a vertex of a diagram. Nodes are created through Diagram.AddNode
// and are immutable from the engine's perspective: rules only read type,
// identity and adjacency.
type Node struct {
	id          string
	typ         NodeType
	label       string
	iri         *IRI
	restriction *Restriction
	datatype    owl.Datatype
	facet       owl.Facet

	identity Identity
	edges    []*Edge
}

// NodeOption configures a node at construction time.
type NodeOption func(*Node)

// WithLabel sets the display label.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.label = label }
}

// WithIRI sets the entity reference of a predicate node.
func WithIRI(iri *IRI) NodeOption {
	return func(n *Node) { n.iri = iri }
}

// WithRestriction qualifies a domain/range restriction node.
func WithRestriction(r Restriction) NodeOption {
	return func(n *Node) { n.restriction = &r }
}

// WithDatatype sets the datatype of a value-domain node.
func WithDatatype(dt owl.Datatype) NodeOption {
	return func(n *Node) { n.datatype = dt }
}

// WithFacet sets the constraining facet of a facet node.
func WithFacet(f owl.Facet) NodeOption {
	return func(n *Node) { n.facet = f }
}

// NewNode builds a detached node. Restriction nodes default to the
// existential kind when no restriction is given.
func NewNode(id string, typ NodeType, opts ...NodeOption) *Node {
	n := &Node{id: id, typ: typ}
	for _, opt := range opts {
		opt(n)
	}
	if typ.IsRestriction() && n.restriction == nil {
		n.restriction = &Restriction{Kind: RestrictionExists}
	}
	n.identity = initialIdentity(n)
	return n
}

// ID returns the node identifier, unique within its diagram.
func (n *Node) ID() string { return n.id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// IRI returns the entity reference of a predicate node, or nil.
func (n *Node) IRI() *IRI { return n.iri }

// Restriction returns the restriction qualifier, or nil for non-restriction
// nodes.
func (n *Node) Restriction() *Restriction {
	if !n.typ.IsRestriction() {
		return nil
	}
	return n.restriction
}

// Datatype returns the datatype of a value-domain node ("" otherwise).
func (n *Node) Datatype() owl.Datatype { return n.datatype }

// Facet returns the constraining facet of a facet node ("" otherwise).
func (n *Node) Facet() owl.Facet { return n.facet }

// Identity returns the currently-resolved semantic category.
func (n *Node) Identity() Identity { return n.identity }

// Identities returns the set of still-admissible categories: the full
// admissible set while the node is Neutral, the singleton of its identity
// once it has collapsed.
func (n *Node) Identities() IdentitySet {
	if n.identity == IdentityNeutral {
		return n.typ.admissibleIdentities()
	}
	return NewIdentitySet(n.identity)
}

// Name returns the display name used in validation messages.
func (n *Node) Name() string {
	switch {
	case n.label != "":
		return n.label
	case n.iri != nil:
		return n.iri.Short()
	case n.typ.IsRestriction() && n.restriction != nil:
		return string(n.typ) + " " + n.restriction.String()
	case n.datatype != "":
		return n.datatype.Short()
	case n.facet != "":
		return n.facet.Short()
	default:
		return string(n.typ)
	}
}

// EdgePred filters edges in adjacency queries; nil admits every edge.
type EdgePred func(*Edge) bool

// NodePred filters nodes in adjacency queries; nil admits every node.
type NodePred func(*Node) bool

// AdjacentEdges returns the edges attached to the node, in insertion order.
func (n *Node) AdjacentEdges() []*Edge {
	return append([]*Edge(nil), n.edges...)
}

// Incoming returns the source nodes of edges targeting this node, filtered
// by the given predicates.
func (n *Node) Incoming(edgeOK EdgePred, nodeOK NodePred) []*Node {
	var out []*Node
	for _, e := range n.edges {
		if e.target != n {
			continue
		}
		if edgeOK != nil && !edgeOK(e) {
			continue
		}
		if nodeOK != nil && !nodeOK(e.source) {
			continue
		}
		out = append(out, e.source)
	}
	return out
}

// Outgoing returns the target nodes of edges sourced at this node, filtered
// by the given predicates.
func (n *Node) Outgoing(edgeOK EdgePred, nodeOK NodePred) []*Node {
	var out []*Node
	for _, e := range n.edges {
		if e.source != n {
			continue
		}
		if edgeOK != nil && !edgeOK(e) {
			continue
		}
		if nodeOK != nil && !nodeOK(e.target) {
			continue
		}
		out = append(out, e.target)
	}
	return out
}

// Adjacent returns the nodes connected to this node in either direction,
// filtered by the given predicates.
func (n *Node) Adjacent(edgeOK EdgePred, nodeOK NodePred) []*Node {
	var out []*Node
	for _, e := range n.edges {
		if edgeOK != nil && !edgeOK(e) {
			continue
		}
		other := e.Opposite(n)
		if other == nil {
			continue
		}
		if nodeOK != nil && !nodeOK(other) {
			continue
		}
		out = append(out, other)
	}
	return out
}

// hasVariableIdentity reports whether the node's identity depends on its
// inputs rather than being fixed by its type.
func (t NodeType) hasVariableIdentity() bool {
	switch t {
	case NodeComplement, NodeIntersection, NodeUnion, NodeDisjointUnion,
		NodeEnumeration, NodeRangeRestriction, NodePropertyAssertion:
		return true
	}
	return false
}

// admissibleIdentities returns the static set of categories a node of this
// type may ever denote.
func (t NodeType) admissibleIdentities() IdentitySet {
	switch t {
	case NodeConcept:
		return NewIdentitySet(IdentityConcept)
	case NodeRole, NodeRoleInverse, NodeRoleChain:
		return NewIdentitySet(IdentityRole)
	case NodeAttribute:
		return NewIdentitySet(IdentityAttribute)
	case NodeValueDomain, NodeDatatypeRestriction:
		return NewIdentitySet(IdentityValueDomain)
	case NodeIndividual:
		return NewIdentitySet(IdentityIndividual)
	case NodeLiteral:
		return NewIdentitySet(IdentityValue)
	case NodeFacet:
		return NewIdentitySet(IdentityFacet)
	case NodeComplement:
		return NewIdentitySet(IdentityNeutral, IdentityConcept, IdentityRole,
			IdentityAttribute, IdentityValueDomain)
	case NodeIntersection, NodeUnion, NodeDisjointUnion, NodeEnumeration,
		NodeRangeRestriction:
		return NewIdentitySet(IdentityNeutral, IdentityConcept, IdentityValueDomain)
	case NodeDomainRestriction:
		return NewIdentitySet(IdentityConcept)
	case NodePropertyAssertion:
		return NewIdentitySet(IdentityNeutral, IdentityRoleInstance, IdentityAttributeInstance)
	case NodeHasKey:
		return NewIdentitySet(IdentityNeutral)
	default:
		return NewIdentitySet(IdentityUnknown)
	}
}

// initialIdentity is the identity of a node with no attached edges.
func initialIdentity(n *Node) Identity {
	if n.typ.hasVariableIdentity() {
		return IdentityNeutral
	}
	switch n.typ {
	case NodeConcept, NodeDomainRestriction:
		return IdentityConcept
	case NodeRole, NodeRoleInverse, NodeRoleChain:
		return IdentityRole
	case NodeAttribute:
		return IdentityAttribute
	case NodeValueDomain, NodeDatatypeRestriction:
		return IdentityValueDomain
	case NodeIndividual:
		return IdentityIndividual
	case NodeLiteral:
		return IdentityValue
	case NodeFacet:
		return IdentityFacet
	case NodeHasKey:
		return IdentityNeutral
	default:
		return IdentityUnknown
	}
}
