package owl

// Namespaces used by the vocabulary.
const (
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Special entity IRIs with fixed semantics.
const (
	// Thing is the universal class.
	Thing = NamespaceOWL + "Thing"

	// Nothing is the empty class.
	Nothing = NamespaceOWL + "Nothing"

	// TopObjectProperty relates every pair of individuals.
	TopObjectProperty = NamespaceOWL + "topObjectProperty"

	// BottomObjectProperty relates no pair of individuals.
	BottomObjectProperty = NamespaceOWL + "bottomObjectProperty"

	// TopDataProperty relates every individual to every literal.
	TopDataProperty = NamespaceOWL + "topDataProperty"

	// BottomDataProperty relates no individual to any literal.
	BottomDataProperty = NamespaceOWL + "bottomDataProperty"
)
