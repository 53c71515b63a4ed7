package profiles

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphol-dev/grapholint/internal/diagram"
)

// builder wires nodes and edges into a diagram, failing the test on
// structural errors so rule tests stay focused on verdicts.
type builder struct {
	t *testing.T
	d *diagram.Diagram
	n int
}

func newBuilder(t *testing.T) *builder {
	t.Helper()
	return &builder{t: t, d: diagram.New("test")}
}

func (b *builder) node(id string, typ diagram.NodeType, opts ...diagram.NodeOption) *diagram.Node {
	b.t.Helper()
	n := diagram.NewNode(id, typ, opts...)
	require.NoError(b.t, b.d.AddNode(n))
	return n
}

func (b *builder) edge(typ diagram.EdgeType, source, target *diagram.Node) *diagram.Edge {
	b.t.Helper()
	b.n++
	e, err := b.d.AddEdge("e"+strconv.Itoa(b.n), typ, source, target)
	require.NoError(b.t, err)
	return e
}

func checkEdge(t *testing.T, p *Profile, e *diagram.Edge) *Result {
	t.Helper()
	return p.Check(e.Source(), e, e.Target())
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{
		"owl2":     OWL2,
		"owl2ql":   OWL2QL,
		"owl2rl":   OWL2RL,
		"OWL 2":    OWL2,
		"OWL 2 QL": OWL2QL,
		"OWL 2 RL": OWL2RL,
	} {
		got, err := ParseType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseType("owl2el")
	assert.Error(t, err)
}

func TestNewDispatch(t *testing.T) {
	for _, typ := range Types {
		p, err := New(typ)
		require.NoError(t, err)
		assert.Equal(t, typ, p.Type())
	}
	_, err := New(Type("OWL 2 EL"))
	assert.Error(t, err)
}

func TestProfileRuleCounts(t *testing.T) {
	base := NewOWL2()
	ql := NewOWL2QL()
	rl := NewOWL2RL()

	// The fragments only append rules, so the base catalog is a prefix
	// of both and any base rejection carries over unchanged.
	assert.Greater(t, len(ql.EdgeRules()), len(base.EdgeRules()))
	assert.Greater(t, len(rl.EdgeRules()), len(base.EdgeRules()))
	for i, r := range base.EdgeRules() {
		assert.Equal(t, r.Name(), ql.EdgeRules()[i].Name())
		assert.Equal(t, r.Name(), rl.EdgeRules()[i].Name())
	}
}

func TestCheckCachesLastResult(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)
	c := b.node("c", diagram.NodeConcept)
	e := b.edge(diagram.EdgeInclusion, a, c)

	p := NewOWL2()
	first := checkEdge(t, p, e)
	second := checkEdge(t, p, e)
	assert.Same(t, first, second)
	assert.True(t, first.IsValid())

	p.Reset()
	third := checkEdge(t, p, e)
	assert.NotSame(t, first, third)
	assert.True(t, third.IsValid())
}

func TestCheckCacheIsSingleSlot(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)
	c := b.node("c", diagram.NodeConcept)
	e1 := b.edge(diagram.EdgeInclusion, a, c)
	e2 := b.edge(diagram.EdgeInclusion, c, a)

	p := NewOWL2()
	r1 := checkEdge(t, p, e1)
	r2 := checkEdge(t, p, e2)
	r1again := checkEdge(t, p, e1)
	assert.NotSame(t, r1, r1again)
	assert.Equal(t, r1.IsValid(), r1again.IsValid())
	assert.True(t, r2.IsValid())
}

func TestNodeCheckShape(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)

	p := NewOWL2()
	r := p.Check(a, nil, nil)
	assert.True(t, r.IsValid())
	assert.Same(t, a, r.Source())
	assert.Nil(t, r.Edge())
	assert.Nil(t, r.Target())
}

func TestFirstFailureWins(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)
	e, err := b.d.AddEdge("loop", diagram.EdgeInput, a, a)
	require.NoError(t, err)

	// The loop also violates the constructor-target rule, but the
	// self-connection rule registers first and decides alone.
	p := NewOWL2()
	r := checkEdge(t, p, e)
	require.False(t, r.IsValid())
	assert.Equal(t, "self-connection", r.Rule())
	assert.Equal(t, "Self connection is not valid", r.Message())
}

func TestCheckIsDeterministic(t *testing.T) {
	b := newBuilder(t)
	role := b.node("r", diagram.NodeRole)
	dom := b.node("d", diagram.NodeDomainRestriction)
	e := b.edge(diagram.EdgeInput, role, dom)

	p := NewOWL2()
	for i := 0; i < 5; i++ {
		p.Reset()
		r := checkEdge(t, p, e)
		assert.True(t, r.IsValid())
	}
}

func TestAddEdgeRuleAppends(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)
	c := b.node("c", diagram.NodeConcept)
	e := b.edge(diagram.EdgeInclusion, a, c)

	p := NewOWL2()
	require.True(t, checkEdge(t, p, e).IsValid())

	p.AddEdgeRule(NewEdgeRule("veto", func(*diagram.Node, *diagram.Edge, *diagram.Node) error {
		return failf("vetoed")
	}))
	p.Reset()
	r := checkEdge(t, p, e)
	require.False(t, r.IsValid())
	assert.Equal(t, "veto", r.Rule())
	assert.Equal(t, "vetoed", r.Message())
}

func TestAddNodeRuleAppends(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)

	p := NewOWL2()
	p.AddNodeRule(NewNodeRule("no-concepts", func(n *diagram.Node) error {
		if n.Type() == diagram.NodeConcept {
			return failf("concept rejected")
		}
		return nil
	}))
	r := p.Check(a, nil, nil)
	require.False(t, r.IsValid())
	assert.Equal(t, "no-concepts", r.Rule())
}

// Fragment soundness: any triple a fragment accepts, the base profile
// accepts too.
func TestFragmentVerdictsImplyBaseVerdicts(t *testing.T) {
	b := newBuilder(t)
	a := b.node("a", diagram.NodeConcept)
	c := b.node("c", diagram.NodeConcept)
	role := b.node("r", diagram.NodeRole)
	dom := b.node("dom", diagram.NodeDomainRestriction)
	ind1 := b.node("i1", diagram.NodeIndividual)
	ind2 := b.node("i2", diagram.NodeIndividual)

	edges := []*diagram.Edge{
		b.edge(diagram.EdgeInclusion, a, c),
		b.edge(diagram.EdgeInput, role, dom),
		b.edge(diagram.EdgeInclusion, a, dom),
		b.edge(diagram.EdgeMembership, ind1, a),
		b.edge(diagram.EdgeDifferent, ind1, ind2),
		b.edge(diagram.EdgeSame, ind1, ind2),
	}

	base := NewOWL2()
	for _, p := range []*Profile{NewOWL2QL(), NewOWL2RL()} {
		for _, e := range edges {
			p.Reset()
			base.Reset()
			if checkEdge(t, p, e).IsValid() {
				assert.True(t, checkEdge(t, base, e).IsValid(),
					"edge %s valid in %s but not in %s", e.ID(), p.Type(), base.Type())
			}
		}
		for _, n := range b.d.Nodes() {
			p.Reset()
			base.Reset()
			if p.Check(n, nil, nil).IsValid() {
				assert.True(t, base.Check(n, nil, nil).IsValid())
			}
		}
	}
}
