package owl

import "strings"

// Datatype identifies a datatype from the OWL 2 datatype map by its IRI.
type Datatype string

// The OWL 2 datatype map.
const (
	OWLRational Datatype = NamespaceOWL + "rational"
	OWLReal     Datatype = NamespaceOWL + "real"

	RDFPlainLiteral Datatype = NamespaceRDF + "PlainLiteral"
	RDFXMLLiteral   Datatype = NamespaceRDF + "XMLLiteral"
	RDFSLiteral     Datatype = NamespaceRDFS + "Literal"

	XSDAnyURI             Datatype = NamespaceXSD + "anyURI"
	XSDBase64Binary       Datatype = NamespaceXSD + "base64Binary"
	XSDBoolean            Datatype = NamespaceXSD + "boolean"
	XSDByte               Datatype = NamespaceXSD + "byte"
	XSDDateTime           Datatype = NamespaceXSD + "dateTime"
	XSDDateTimeStamp      Datatype = NamespaceXSD + "dateTimeStamp"
	XSDDecimal            Datatype = NamespaceXSD + "decimal"
	XSDDouble             Datatype = NamespaceXSD + "double"
	XSDFloat              Datatype = NamespaceXSD + "float"
	XSDHexBinary          Datatype = NamespaceXSD + "hexBinary"
	XSDInt                Datatype = NamespaceXSD + "int"
	XSDInteger            Datatype = NamespaceXSD + "integer"
	XSDLanguage           Datatype = NamespaceXSD + "language"
	XSDLong               Datatype = NamespaceXSD + "long"
	XSDName               Datatype = NamespaceXSD + "Name"
	XSDNCName             Datatype = NamespaceXSD + "NCName"
	XSDNegativeInteger    Datatype = NamespaceXSD + "negativeInteger"
	XSDNMTOKEN            Datatype = NamespaceXSD + "NMTOKEN"
	XSDNonNegativeInteger Datatype = NamespaceXSD + "nonNegativeInteger"
	XSDNonPositiveInteger Datatype = NamespaceXSD + "nonPositiveInteger"
	XSDNormalizedString   Datatype = NamespaceXSD + "normalizedString"
	XSDPositiveInteger    Datatype = NamespaceXSD + "positiveInteger"
	XSDShort              Datatype = NamespaceXSD + "short"
	XSDString             Datatype = NamespaceXSD + "string"
	XSDToken              Datatype = NamespaceXSD + "token"
	XSDUnsignedByte       Datatype = NamespaceXSD + "unsignedByte"
	XSDUnsignedInt        Datatype = NamespaceXSD + "unsignedInt"
	XSDUnsignedLong       Datatype = NamespaceXSD + "unsignedLong"
	XSDUnsignedShort      Datatype = NamespaceXSD + "unsignedShort"
)

// Datatypes lists every datatype in the OWL 2 datatype map.
var Datatypes = []Datatype{
	OWLRational, OWLReal,
	RDFPlainLiteral, RDFXMLLiteral, RDFSLiteral,
	XSDAnyURI, XSDBase64Binary, XSDBoolean, XSDByte, XSDDateTime,
	XSDDateTimeStamp, XSDDecimal, XSDDouble, XSDFloat, XSDHexBinary,
	XSDInt, XSDInteger, XSDLanguage, XSDLong, XSDName, XSDNCName,
	XSDNegativeInteger, XSDNMTOKEN, XSDNonNegativeInteger,
	XSDNonPositiveInteger, XSDNormalizedString, XSDPositiveInteger,
	XSDShort, XSDString, XSDToken, XSDUnsignedByte, XSDUnsignedInt,
	XSDUnsignedLong, XSDUnsignedShort,
}

// ParseDatatype resolves a datatype by full IRI or by prefixed short form
// (e.g. "xsd:string").
func ParseDatatype(s string) (Datatype, bool) {
	for _, dt := range Datatypes {
		if s == string(dt) || s == dt.Short() {
			return dt, true
		}
	}
	return "", false
}

// Short returns the prefixed short form of the datatype, e.g. "xsd:string".
func (d Datatype) Short() string {
	return shortForm(string(d))
}

// InRLProfile reports whether the datatype is admitted by OWL 2 RL, whose
// datatype map excludes owl:real and owl:rational.
func (d Datatype) InRLProfile() bool {
	return d != OWLReal && d != OWLRational
}

// IsNumeric reports whether the datatype denotes a subset of the reals.
func (d Datatype) IsNumeric() bool {
	switch d {
	case OWLRational, OWLReal, XSDByte, XSDDecimal, XSDDouble, XSDFloat,
		XSDInt, XSDInteger, XSDLong, XSDNegativeInteger,
		XSDNonNegativeInteger, XSDNonPositiveInteger, XSDPositiveInteger,
		XSDShort, XSDUnsignedByte, XSDUnsignedInt, XSDUnsignedLong,
		XSDUnsignedShort:
		return true
	}
	return false
}

func shortForm(iri string) string {
	for prefix, ns := range map[string]string{
		"owl":  NamespaceOWL,
		"rdf":  NamespaceRDF,
		"rdfs": NamespaceRDFS,
		"xsd":  NamespaceXSD,
	} {
		if strings.HasPrefix(iri, ns) {
			return prefix + ":" + strings.TrimPrefix(iri, ns)
		}
	}
	return iri
}
