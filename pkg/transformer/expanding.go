package transformer

import (
	"context"

	"github.com/raglabs/querykit-go/pkg/llm"
	"github.com/raglabs/querykit-go/pkg/prompt"
	"github.com/raglabs/querykit-go/pkg/query"
)

// DefaultN is the number of reformulations requested when no explicit
// count is configured.
const DefaultN = 3

// Expanding is a Transformer that expands one query into several
// differently worded, meaning-preserving versions using an LLM.
//
// The configured count n is a hint embedded in the prompt, not a
// structural guarantee: the result holds one query per non-blank line of
// the model's response, which may be fewer or more than n, or none at all.
// Callers must not assume len(result) == n.
//
// Example:
//
//	expanding, err := transformer.NewExpanding(provider, transformer.WithN(5))
//	if err != nil {
//	    return err
//	}
//	queries, err := expanding.Transform(ctx, query.New("how to learn spanish"))
type Expanding struct {
	// provider is the text-generation capability.
	provider llm.Provider

	// template is the prompt template with {{query}} and {{n}} variables.
	template *prompt.Template

	// n is the reformulation count requested from the model.
	n int

	// generateOpts are sampling options forwarded to every Generate call.
	generateOpts []llm.GenerateOption
}

// ExpandingOption configures an Expanding transformer at construction.
type ExpandingOption func(*Expanding)

// WithN sets the number of reformulations requested from the model.
//
// Must be greater than zero; NewExpanding rejects other values.
func WithN(n int) ExpandingOption {
	return func(e *Expanding) {
		e.n = n
	}
}

// WithTemplate replaces the default prompt template.
//
// The template should reference the {{query}} and {{n}} variables; both are
// bound on every Transform call, and unreferenced bindings are ignored.
func WithTemplate(template *prompt.Template) ExpandingOption {
	return func(e *Expanding) {
		e.template = template
	}
}

// WithGenerateOptions sets sampling options (temperature, max tokens, etc.)
// forwarded to the provider on every Transform call.
func WithGenerateOptions(opts ...llm.GenerateOption) ExpandingOption {
	return func(e *Expanding) {
		e.generateOpts = opts
	}
}

// NewExpanding creates an expanding transformer.
//
// The provider is required. Unset options fall back to documented
// defaults: DefaultExpandingTemplate and DefaultN. Validation happens here,
// before any call is made: a nil provider, nil template, or non-positive n
// fails construction.
func NewExpanding(provider llm.Provider, opts ...ExpandingOption) (*Expanding, error) {
	e := &Expanding{
		provider: provider,
		template: DefaultExpandingTemplate,
		n:        DefaultN,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.provider == nil {
		return nil, NewConfigError("NewExpanding", ErrNilProvider)
	}
	if e.template == nil {
		return nil, NewConfigError("NewExpanding", ErrNilTemplate)
	}
	if e.n <= 0 {
		return nil, NewConfigError("NewExpanding", ErrInvalidCount)
	}

	return e, nil
}

// N returns the configured reformulation count.
func (e *Expanding) N() int {
	return e.n
}

// Template returns the configured prompt template.
func (e *Expanding) Template() *prompt.Template {
	return e.template
}

// Transform expands q into alternative phrasings.
//
// It makes exactly one Generate call per invocation. Each non-blank line
// of the response becomes one query, in response order, carrying q's
// metadata map (the same reference, not a copy; nil stays nil). A
// generation failure is returned to the caller unchanged, with no retry
// and no fallback. An all-blank response yields an empty result and a nil
// error.
func (e *Expanding) Transform(ctx context.Context, q *query.Query) ([]*query.Query, error) {
	promptText, err := e.createPrompt(q)
	if err != nil {
		return nil, err
	}

	response, err := e.provider.Generate(ctx, promptText, e.generateOpts...)
	if err != nil {
		return nil, err
	}

	lines := ParseLines(response)
	queries := make([]*query.Query, 0, len(lines))
	for _, line := range lines {
		if q.Metadata == nil {
			queries = append(queries, query.New(line))
		} else {
			queries = append(queries, query.NewWithMetadata(line, q.Metadata))
		}
	}
	return queries, nil
}

// createPrompt renders the template with the query text and the
// reformulation count.
func (e *Expanding) createPrompt(q *query.Query) (string, error) {
	return e.template.Render(map[string]interface{}{
		"query": q.Text,
		"n":     e.n,
	})
}
