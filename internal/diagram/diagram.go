package diagram

import "fmt"

// Diagram owns a finite set of nodes and edges. Structural changes
// recompute constructor-node identities before returning, so rule
// evaluation never observes a half-resolved graph.
type Diagram struct {
	name  string
	nodes []*Node
	edges []*Edge
	byID  map[string]*Node
}

// New creates an empty diagram.
func New(name string) *Diagram {
	return &Diagram{name: name, byID: make(map[string]*Node)}
}

// Name returns the diagram name.
func (d *Diagram) Name() string { return d.name }

// Nodes returns the nodes in insertion order.
func (d *Diagram) Nodes() []*Node {
	return append([]*Node(nil), d.nodes...)
}

// Edges returns the edges in insertion order.
func (d *Diagram) Edges() []*Edge {
	return append([]*Edge(nil), d.edges...)
}

// Node looks a node up by ID.
func (d *Diagram) Node(id string) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// AddNode attaches a node to the diagram.
func (d *Diagram) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if _, dup := d.byID[n.id]; dup {
		return fmt.Errorf("duplicate node ID: %s", n.id)
	}
	d.byID[n.id] = n
	d.nodes = append(d.nodes, n)
	return nil
}

// AddEdge connects two nodes already present in the diagram and recomputes
// identities. The edge is returned so callers can hand it to the engine.
func (d *Diagram) AddEdge(id string, typ EdgeType, source, target *Node) (*Edge, error) {
	if source == nil || target == nil {
		return nil, fmt.Errorf("edge %s: nil endpoint", id)
	}
	if d.byID[source.id] != source {
		return nil, fmt.Errorf("edge %s: source %s not in diagram", id, source.id)
	}
	if d.byID[target.id] != target {
		return nil, fmt.Errorf("edge %s: target %s not in diagram", id, target.id)
	}
	for _, e := range d.edges {
		if e.id == id {
			return nil, fmt.Errorf("duplicate edge ID: %s", id)
		}
	}
	e := &Edge{id: id, typ: typ, source: source, target: target}
	d.edges = append(d.edges, e)
	source.edges = append(source.edges, e)
	if target != source {
		target.edges = append(target.edges, e)
	}
	d.resolveIdentities()
	return e, nil
}

// RemoveEdge detaches an edge and recomputes identities.
func (d *Diagram) RemoveEdge(e *Edge) {
	remove := func(edges []*Edge) []*Edge {
		out := edges[:0]
		for _, x := range edges {
			if x != e {
				out = append(out, x)
			}
		}
		return out
	}
	d.edges = remove(d.edges)
	e.source.edges = remove(e.source.edges)
	if e.target != e.source {
		e.target.edges = remove(e.target.edges)
	}
	d.resolveIdentities()
}

// resolveIdentities recomputes the identity of every variable-identity node
// from its committed inputs, iterating to a fixpoint so commitments
// propagate through constructor chains. Bounded by the node count per pass.
func (d *Diagram) resolveIdentities() {
	for _, n := range d.nodes {
		if n.typ.hasVariableIdentity() {
			n.identity = IdentityNeutral
		}
	}
	for changed := true; changed; {
		changed = false
		for _, n := range d.nodes {
			if !n.typ.hasVariableIdentity() {
				continue
			}
			if id := d.deriveIdentity(n); id != n.identity {
				n.identity = id
				changed = true
			}
		}
	}
}

func (d *Diagram) deriveIdentity(n *Node) Identity {
	inputOnly := func(e *Edge) bool { return e.typ == EdgeInput }
	inputs := n.Incoming(inputOnly, nil)

	switch n.typ {
	case NodeComplement, NodeIntersection, NodeUnion, NodeDisjointUnion:
		return mergeInputIdentities(n, inputs, func(id Identity) Identity { return id })

	case NodeEnumeration:
		// Enumerations denote a class when built from individuals and a
		// value domain when built from literals.
		return mergeInputIdentities(n, inputs, func(id Identity) Identity {
			switch id {
			case IdentityIndividual:
				return IdentityConcept
			case IdentityValue:
				return IdentityValueDomain
			default:
				return IdentityUnknown
			}
		})

	case NodeRangeRestriction:
		for _, in := range inputs {
			switch in.identity {
			case IdentityRole:
				return IdentityConcept
			case IdentityAttribute:
				return IdentityValueDomain
			}
		}
		return IdentityNeutral

	case NodePropertyAssertion:
		return d.deriveAssertionIdentity(n, inputs)

	default:
		return n.identity
	}
}

// mergeInputIdentities folds committed input identities into one, mapping
// each through convert first. Inadmissible or conflicting commitments
// collapse to Unknown; no commitment leaves the node Neutral.
func mergeInputIdentities(n *Node, inputs []*Node, convert func(Identity) Identity) Identity {
	admissible := n.typ.admissibleIdentities()
	result := IdentityNeutral
	for _, in := range inputs {
		if in.identity == IdentityNeutral {
			continue
		}
		id := convert(in.identity)
		if !admissible.Contains(id) {
			return IdentityUnknown
		}
		if result == IdentityNeutral {
			result = id
		} else if result != id {
			return IdentityUnknown
		}
	}
	return result
}

func (d *Diagram) deriveAssertionIdentity(n *Node, inputs []*Node) Identity {
	// A membership edge commits the assertion kind before the inputs do.
	membership := func(e *Edge) bool { return e.typ == EdgeMembership }
	for _, t := range n.Outgoing(membership, nil) {
		ids := t.Identities()
		role := ids.Contains(IdentityRole)
		attribute := ids.Contains(IdentityAttribute)
		switch {
		case role && !attribute:
			return IdentityRoleInstance
		case attribute && !role:
			return IdentityAttributeInstance
		}
	}
	individuals := 0
	for _, in := range inputs {
		switch in.identity {
		case IdentityValue:
			return IdentityAttributeInstance
		case IdentityIndividual:
			individuals++
		}
	}
	if individuals >= 2 {
		return IdentityRoleInstance
	}
	return IdentityNeutral
}
