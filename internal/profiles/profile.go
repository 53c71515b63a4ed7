package profiles

import (
	"fmt"

	"github.com/graphol-dev/grapholint/internal/diagram"
)

// Type tags the OWL 2 fragment a profile enforces. It is a pure
// classification label read by callers to render the active profile; the
// rule logic never branches on it.
type Type string

const (
	OWL2   Type = "OWL 2"
	OWL2QL Type = "OWL 2 QL"
	OWL2RL Type = "OWL 2 RL"
)

// Types lists the available profile types.
var Types = []Type{OWL2, OWL2QL, OWL2RL}

// ParseType resolves a profile type from a user-supplied tag such as
// "owl2ql" or "OWL 2 QL".
func ParseType(s string) (Type, error) {
	switch s {
	case "owl2", "OWL2", string(OWL2):
		return OWL2, nil
	case "owl2ql", "OWL2QL", string(OWL2QL):
		return OWL2QL, nil
	case "owl2rl", "OWL2RL", string(OWL2RL):
		return OWL2RL, nil
	default:
		return "", fmt.Errorf("unknown profile: %q (supported: owl2, owl2ql, owl2rl)", s)
	}
}

// Profile evaluates an ordered rule collection over candidate diagram
// edits and caches the last verdict. One instance serves one diagram
// session; it is not safe for concurrent use.
type Profile struct {
	typ       Type
	edgeRules []EdgeRule
	nodeRules []NodeRule
	cached    *Result
}

// New builds the profile enforcing the given fragment.
func New(t Type) (*Profile, error) {
	switch t {
	case OWL2:
		return NewOWL2(), nil
	case OWL2QL:
		return NewOWL2QL(), nil
	case OWL2RL:
		return NewOWL2RL(), nil
	default:
		return nil, fmt.Errorf("unknown profile type: %q", t)
	}
}

// NewOWL2 builds the base profile with full OWL 2 expressivity.
func NewOWL2() *Profile {
	return &Profile{
		typ:       OWL2,
		edgeRules: owl2EdgeRules(),
		nodeRules: owl2NodeRules(),
	}
}

// NewOWL2QL builds the OWL 2 QL profile: the full OWL 2 rule set with the
// QL restrictions appended.
func NewOWL2QL() *Profile {
	return &Profile{
		typ:       OWL2QL,
		edgeRules: append(owl2EdgeRules(), qlEdgeRules()...),
		nodeRules: append(owl2NodeRules(), qlNodeRules()...),
	}
}

// NewOWL2RL builds the OWL 2 RL profile: the full OWL 2 rule set with the
// RL restrictions appended.
func NewOWL2RL() *Profile {
	return &Profile{
		typ:       OWL2RL,
		edgeRules: append(owl2EdgeRules(), rlEdgeRules()...),
		nodeRules: append(owl2NodeRules(), rlNodeRules()...),
	}
}

// Type returns the fragment this profile enforces.
func (p *Profile) Type() Type { return p.typ }

// AddEdgeRule appends an edge rule. Registration order is evaluation
// order; duplicate registration is not deduplicated.
func (p *Profile) AddEdgeRule(r EdgeRule) { p.edgeRules = append(p.edgeRules, r) }

// AddNodeRule appends a node rule.
func (p *Profile) AddNodeRule(r NodeRule) { p.nodeRules = append(p.nodeRules, r) }

// EdgeRules returns the registered edge rules in evaluation order.
func (p *Profile) EdgeRules() []EdgeRule {
	return append([]EdgeRule(nil), p.edgeRules...)
}

// NodeRules returns the registered node rules in evaluation order.
func (p *Profile) NodeRules() []NodeRule {
	return append([]NodeRule(nil), p.nodeRules...)
}

// Check validates a candidate edit. Two shapes are accepted: an edge
// triple (all three arguments set) or a single-node check (edge and target
// nil). When the cached result already pertains to exactly this triple it
// is returned unchanged, with no rule evaluation.
func (p *Profile) Check(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) *Result {
	if p.cached != nil && p.cached.Matches(source, edge, target) {
		return p.cached
	}
	p.cached = p.Validate(source, edge, target)
	return p.cached
}

// Validate runs every registered rule in order, stopping at the first
// failure. It bypasses and overwrites the cache.
func (p *Profile) Validate(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) *Result {
	if edge == nil && target == nil {
		return p.validateNode(source)
	}
	for _, r := range p.edgeRules {
		if err := r.check(source, edge, target); err != nil {
			return invalidResult(source, edge, target, r.name, err.Error())
		}
	}
	return validResult(source, edge, target)
}

func (p *Profile) validateNode(node *diagram.Node) *Result {
	for _, r := range p.nodeRules {
		if err := r.check(node); err != nil {
			return invalidResult(node, nil, nil, r.name, err.Error())
		}
	}
	return validResult(node, nil, nil)
}

// Reset clears the cached result. The next Check re-runs every rule and,
// absent diagram mutation, yields the same verdict.
func (p *Profile) Reset() { p.cached = nil }
