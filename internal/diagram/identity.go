package diagram

import (
	"sort"
	"strings"
)

// Identity is the semantic category a diagram node currently denotes.
// Constructor nodes with incomplete inputs stay Neutral until enough inputs
// commit them; conflicting commitments collapse to Unknown.
type Identity string

const (
	IdentityConcept           Identity = "Concept"
	IdentityRole              Identity = "Role"
	IdentityAttribute         Identity = "Attribute"
	IdentityValueDomain       Identity = "Value Domain"
	IdentityIndividual        Identity = "Individual"
	IdentityValue             Identity = "Value"
	IdentityRoleInstance      Identity = "Role Instance"
	IdentityAttributeInstance Identity = "Attribute Instance"
	IdentityNeutral           Identity = "Neutral"
	IdentityUnknown           Identity = "Unknown"

	// IdentityFacet is carried only by facet nodes, which never take part
	// in identity negotiation. Keeping it distinct keeps facet nodes out
	// of Neutral-chain traversals.
	IdentityFacet Identity = "Facet"
)

// IdentitySet is a set of still-admissible identities.
type IdentitySet map[Identity]struct{}

// NewIdentitySet builds a set from the given identities.
func NewIdentitySet(ids ...Identity) IdentitySet {
	s := make(IdentitySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s IdentitySet) Contains(id Identity) bool {
	_, ok := s[id]
	return ok
}

// ContainsAny reports whether any of the given identities is a member.
func (s IdentitySet) ContainsAny(ids ...Identity) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// Intersects reports whether the two sets share a member.
func (s IdentitySet) Intersects(other IdentitySet) bool {
	for id := range other {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// Add inserts an identity.
func (s IdentitySet) Add(id Identity) {
	s[id] = struct{}{}
}

// Len returns the number of members.
func (s IdentitySet) Len() int {
	return len(s)
}

// String renders the set in stable order, for messages and tests.
func (s IdentitySet) String() string {
	members := make([]string, 0, len(s))
	for id := range s {
		members = append(members, string(id))
	}
	sort.Strings(members)
	return "{" + strings.Join(members, ", ") + "}"
}
