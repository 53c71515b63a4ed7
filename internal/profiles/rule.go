package profiles

import (
	"fmt"

	"github.com/graphol-dev/grapholint/internal/diagram"
)

// ValidationError is the single domain error kind: a rule positively
// detected a violation. It is converted to an invalid Result at the Profile
// boundary and never escapes to callers as a Go error.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Reason }

// failf builds a ValidationError with a formatted reason.
func failf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// EdgeRule checks one (source, edge, target) triple. A rule must return nil
// when its guard condition does not match (usually: this is not the edge
// type it polices) and only return a ValidationError when it positively
// detects a violation. Rules are stateless: the same triple always yields
// the same verdict.
type EdgeRule struct {
	name  string
	check func(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error
}

// NewEdgeRule builds a named edge rule.
func NewEdgeRule(name string, check func(source *diagram.Node, edge *diagram.Edge, target *diagram.Node) error) EdgeRule {
	return EdgeRule{name: name, check: check}
}

// Name returns the stable rule identifier, used in reports.
func (r EdgeRule) Name() string { return r.name }

// NodeRule checks a single node, under the same contract as EdgeRule.
type NodeRule struct {
	name  string
	check func(node *diagram.Node) error
}

// NewNodeRule builds a named node rule.
func NewNodeRule(name string, check func(node *diagram.Node) error) NodeRule {
	return NodeRule{name: name, check: check}
}

// Name returns the stable rule identifier, used in reports.
func (r NodeRule) Name() string { return r.name }
