// Package transformer provides query transformation strategies for
// retrieval pipelines.
//
// A transformer rewrites one query into one or more queries before
// retrieval runs. Strategies are independent types behind a single
// interface and compose through ordinary interface dispatch:
//
//   - Expanding generates several alternative phrasings of a query to
//     broaden retrieval recall (one LLM call per transformation).
//   - Compressing condenses a query plus prior conversation turns into one
//     standalone query.
//   - Default passes the query through unchanged.
package transformer

import (
	"context"

	"github.com/raglabs/querykit-go/pkg/query"
)

// Transformer rewrites a query into one or more queries for retrieval.
//
// Implementations are stateless across calls: each Transform invocation is
// an independent request/response cycle, so concurrent calls on one
// instance are safe. Metadata on the input query is carried onto every
// output query unchanged.
type Transformer interface {
	// Transform rewrites the given query.
	//
	// The returned slice preserves the order in which the strategy
	// produced the queries. It may be empty; callers that require at
	// least one query must check for emptiness themselves.
	Transform(ctx context.Context, q *query.Query) ([]*query.Query, error)
}
