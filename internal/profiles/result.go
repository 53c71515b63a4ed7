package profiles

import "github.com/graphol-dev/grapholint/internal/diagram"

// Result is the immutable outcome of validating one triple or node.
type Result struct {
	source  *diagram.Node
	edge    *diagram.Edge
	target  *diagram.Node
	valid   bool
	rule    string
	message string
}

func validResult(s *diagram.Node, e *diagram.Edge, t *diagram.Node) *Result {
	return &Result{source: s, edge: e, target: t, valid: true}
}

func invalidResult(s *diagram.Node, e *diagram.Edge, t *diagram.Node, rule, message string) *Result {
	return &Result{source: s, edge: e, target: t, rule: rule, message: message}
}

// IsValid reports whether the edit is acceptable.
func (r *Result) IsValid() bool { return r.valid }

// Message returns the human-readable rejection reason, empty when valid.
func (r *Result) Message() string { return r.message }

// Rule returns the name of the rule that rejected the edit, empty when
// valid.
func (r *Result) Rule() string { return r.rule }

// Source returns the validated source node (the node itself for node
// checks).
func (r *Result) Source() *diagram.Node { return r.source }

// Edge returns the validated edge, nil for node checks.
func (r *Result) Edge() *diagram.Edge { return r.edge }

// Target returns the validated target node, nil for node checks.
func (r *Result) Target() *diagram.Node { return r.target }

// Matches reports whether the result pertains to exactly this triple.
// Identity comparison, not equality: nodes and edges are never
// value-duplicated.
func (r *Result) Matches(s *diagram.Node, e *diagram.Edge, t *diagram.Node) bool {
	return r.source == s && r.edge == e && r.target == t
}
