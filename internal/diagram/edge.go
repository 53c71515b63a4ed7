package diagram

// EdgeType is the kind of connection an edge denotes.
type EdgeType string

const (
	EdgeInclusion   EdgeType = "inclusion"
	EdgeEquivalence EdgeType = "equivalence"
	EdgeInput       EdgeType = "input"
	EdgeMembership  EdgeType = "membership"
	EdgeSame        EdgeType = "same"
	EdgeDifferent   EdgeType = "different"
)

// EdgeTypes lists every edge type.
var EdgeTypes = []EdgeType{
	EdgeInclusion, EdgeEquivalence, EdgeInput, EdgeMembership,
	EdgeSame, EdgeDifferent,
}

// Edge is a directed connection between two diagram nodes. Edges are the
// unit the engine validates as ordered (source, edge, target) triples.
type Edge struct {
	id     string
	typ    EdgeType
	source *Node
	target *Node
}

// ID returns the edge identifier, unique within its diagram.
func (e *Edge) ID() string { return e.id }

// Type returns the edge type.
func (e *Edge) Type() EdgeType { return e.typ }

// Source returns the source endpoint.
func (e *Edge) Source() *Node { return e.source }

// Target returns the target endpoint.
func (e *Edge) Target() *Node { return e.target }

// Opposite returns the endpoint other than n, or nil if n is not an
// endpoint of the edge.
func (e *Edge) Opposite(n *Node) *Node {
	switch n {
	case e.source:
		return e.target
	case e.target:
		return e.source
	default:
		return nil
	}
}
