package owl

// Facet identifies a constraining facet by its IRI.
type Facet string

// Constraining facets admitted by OWL 2 datatype restrictions.
const (
	FacetLength       Facet = NamespaceXSD + "length"
	FacetMinLength    Facet = NamespaceXSD + "minLength"
	FacetMaxLength    Facet = NamespaceXSD + "maxLength"
	FacetPattern      Facet = NamespaceXSD + "pattern"
	FacetMinInclusive Facet = NamespaceXSD + "minInclusive"
	FacetMinExclusive Facet = NamespaceXSD + "minExclusive"
	FacetMaxInclusive Facet = NamespaceXSD + "maxInclusive"
	FacetMaxExclusive Facet = NamespaceXSD + "maxExclusive"
	FacetLangRange    Facet = NamespaceRDF + "langRange"
)

// Facets lists every constraining facet.
var Facets = []Facet{
	FacetLength, FacetMinLength, FacetMaxLength, FacetPattern,
	FacetMinInclusive, FacetMinExclusive, FacetMaxInclusive,
	FacetMaxExclusive, FacetLangRange,
}

// ParseFacet resolves a facet by full IRI or prefixed short form.
func ParseFacet(s string) (Facet, bool) {
	for _, f := range Facets {
		if s == string(f) || s == f.Short() {
			return f, true
		}
	}
	return "", false
}

// Short returns the prefixed short form of the facet, e.g. "xsd:pattern".
func (f Facet) Short() string {
	return shortForm(string(f))
}

var (
	orderFacets  = []Facet{FacetMinInclusive, FacetMinExclusive, FacetMaxInclusive, FacetMaxExclusive}
	stringFacets = []Facet{FacetLength, FacetMinLength, FacetMaxLength, FacetPattern}
)

// FacetsForDatatype returns the constraining facets declared compatible with
// the datatype, per the OWL 2 structural specification. Datatypes that admit
// no restriction (e.g. xsd:boolean) yield an empty slice.
func FacetsForDatatype(d Datatype) []Facet {
	switch {
	case d.IsNumeric():
		return append([]Facet(nil), orderFacets...)
	case d == XSDDateTime || d == XSDDateTimeStamp:
		return append([]Facet(nil), orderFacets...)
	case d == RDFPlainLiteral:
		return append(append([]Facet(nil), stringFacets...), FacetLangRange)
	case d == XSDAnyURI || d == XSDBase64Binary || d == XSDHexBinary ||
		d == XSDLanguage || d == XSDName || d == XSDNCName ||
		d == XSDNMTOKEN || d == XSDNormalizedString || d == XSDString ||
		d == XSDToken:
		return append([]Facet(nil), stringFacets...)
	default:
		return nil
	}
}

// CompatibleWith reports whether the facet may constrain the datatype.
func (f Facet) CompatibleWith(d Datatype) bool {
	for _, allowed := range FacetsForDatatype(d) {
		if f == allowed {
			return true
		}
	}
	return false
}
