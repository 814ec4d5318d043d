// Package query defines the Query value passed between retrieval pipeline stages.
//
// A Query carries the text of a single retrieval request together with
// optional caller-defined metadata (routing hints, request identifiers, etc.).
// Metadata is opaque to the pipeline: stages carry it through unchanged and
// never inspect or modify it.
package query

// Query represents a single unit of search intent.
//
// A Query is treated as immutable after construction. Transformation stages
// that derive new queries from an existing one attach the *same* metadata
// map to each derived query rather than copying it; a nil metadata map stays
// nil on every derived query.
//
// Example:
//
//	q := query.NewWithMetadata("how to learn spanish", map[string]interface{}{
//	    "request_id": "req_42",
//	})
type Query struct {
	// Text is the query text. Never empty for a well-formed query.
	Text string

	// Metadata contains opaque caller-defined data carried through the
	// pipeline unchanged. Nil when the query has no metadata.
	Metadata map[string]interface{}
}

// New creates a Query with the given text and no metadata.
func New(text string) *Query {
	return &Query{Text: text}
}

// NewWithMetadata creates a Query with the given text and metadata.
//
// The metadata map is stored as-is, not copied. Callers must not mutate it
// after construction.
func NewWithMetadata(text string, metadata map[string]interface{}) *Query {
	return &Query{Text: text, Metadata: metadata}
}
