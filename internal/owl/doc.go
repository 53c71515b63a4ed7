// Package owl provides the OWL 2 vocabulary consumed by the validation
// engine: well-known IRIs, the OWL 2 datatype map, and the constraining
// facet compatibility table.
package owl
