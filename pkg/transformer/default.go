package transformer

import (
	"context"

	"github.com/raglabs/querykit-go/pkg/query"
)

// Default is the identity Transformer: it returns the input query
// unchanged as a single-element slice. Useful as a drop-in stand-in where
// a Transformer is required but no rewriting is wanted.
type Default struct{}

// NewDefault creates a new identity transformer.
func NewDefault() *Default {
	return &Default{}
}

// Transform returns q unchanged.
func (d *Default) Transform(ctx context.Context, q *query.Query) ([]*query.Query, error) {
	return []*query.Query{q}, nil
}
