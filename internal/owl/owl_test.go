package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatatype(t *testing.T) {
	dt, ok := ParseDatatype("xsd:string")
	require.True(t, ok)
	assert.Equal(t, XSDString, dt)

	dt, ok = ParseDatatype(NamespaceXSD + "integer")
	require.True(t, ok)
	assert.Equal(t, XSDInteger, dt)

	dt, ok = ParseDatatype("owl:real")
	require.True(t, ok)
	assert.Equal(t, OWLReal, dt)

	_, ok = ParseDatatype("xsd:bogus")
	assert.False(t, ok)
}

func TestDatatypeShort(t *testing.T) {
	assert.Equal(t, "xsd:string", XSDString.Short())
	assert.Equal(t, "rdf:PlainLiteral", RDFPlainLiteral.Short())
	assert.Equal(t, "rdfs:Literal", RDFSLiteral.Short())
	assert.Equal(t, "owl:rational", OWLRational.Short())
}

func TestInRLProfile(t *testing.T) {
	assert.False(t, OWLReal.InRLProfile())
	assert.False(t, OWLRational.InRLProfile())
	assert.True(t, XSDString.InRLProfile())
	assert.True(t, XSDDecimal.InRLProfile())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, XSDInteger.IsNumeric())
	assert.True(t, OWLReal.IsNumeric())
	assert.False(t, XSDString.IsNumeric())
	assert.False(t, XSDBoolean.IsNumeric())
}

func TestParseFacet(t *testing.T) {
	f, ok := ParseFacet("xsd:pattern")
	require.True(t, ok)
	assert.Equal(t, FacetPattern, f)

	f, ok = ParseFacet(string(NamespaceRDF + "langRange"))
	require.True(t, ok)
	assert.Equal(t, FacetLangRange, f)

	_, ok = ParseFacet("xsd:whiteSpace")
	assert.False(t, ok)
}

func TestFacetCompatibility(t *testing.T) {
	tests := []struct {
		facet Facet
		dt    Datatype
		ok    bool
	}{
		{FacetMinInclusive, XSDInteger, true},
		{FacetMaxExclusive, XSDDateTime, true},
		{FacetPattern, XSDString, true},
		{FacetLength, XSDAnyURI, true},
		{FacetLangRange, RDFPlainLiteral, true},
		{FacetLangRange, XSDString, false},
		{FacetPattern, XSDInteger, false},
		{FacetMinInclusive, XSDString, false},
		{FacetPattern, XSDBoolean, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.facet.CompatibleWith(tt.dt),
			"%s vs %s", tt.facet.Short(), tt.dt.Short())
	}
}

func TestBooleanAdmitsNoFacets(t *testing.T) {
	assert.Empty(t, FacetsForDatatype(XSDBoolean))
}
