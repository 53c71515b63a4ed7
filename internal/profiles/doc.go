// Package profiles implements the rule-based validation engine deciding
// whether a candidate diagram edit keeps the diagram inside a chosen OWL 2
// fragment (OWL 2, OWL 2 QL, OWL 2 RL).
//
// A Profile owns an ordered collection of edge rules and node rules.
// Registration order is behavior: broad compatibility checks run before
// narrow checks that assume the broad ones already passed, and the first
// failing rule decides the verdict. The QL and RL profiles are built by
// appending rules to the full OWL 2 set, never by replacing any, so
// anything they accept is accepted by plain OWL 2 too.
package profiles
