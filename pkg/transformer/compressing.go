package transformer

import (
	"context"
	"fmt"
	"strings"

	"github.com/raglabs/querykit-go/pkg/llm"
	"github.com/raglabs/querykit-go/pkg/prompt"
	"github.com/raglabs/querykit-go/pkg/query"
)

// HistoryKey is the metadata key under which prior conversation turns
// travel for the compressing transformer. The value may be a []string of
// turns or a single string.
const HistoryKey = "chat_history"

// Compressing is a Transformer that condenses a follow-up query plus the
// conversation that preceded it into one standalone query. It resolves
// pronouns and implicit references ("what about the second one?") so the
// retrieval stage sees a self-contained request.
//
// Conversation turns are read from the query's metadata under HistoryKey.
// A query without history passes through unchanged, identity-style, with
// no LLM call.
type Compressing struct {
	// provider is the text-generation capability.
	provider llm.Provider

	// template is the prompt template with {{query}} and {{chat_history}}
	// variables.
	template *prompt.Template

	// generateOpts are sampling options forwarded to every Generate call.
	generateOpts []llm.GenerateOption
}

// CompressingOption configures a Compressing transformer at construction.
type CompressingOption func(*Compressing)

// WithCompressingTemplate replaces the default prompt template.
//
// The template should reference the {{query}} and {{chat_history}}
// variables; both are bound on every Transform call.
func WithCompressingTemplate(template *prompt.Template) CompressingOption {
	return func(c *Compressing) {
		c.template = template
	}
}

// WithCompressingGenerateOptions sets sampling options forwarded to the
// provider on every Transform call.
func WithCompressingGenerateOptions(opts ...llm.GenerateOption) CompressingOption {
	return func(c *Compressing) {
		c.generateOpts = opts
	}
}

// NewCompressing creates a compressing transformer.
//
// The provider is required; the template defaults to
// DefaultCompressingTemplate. Validation happens at construction.
func NewCompressing(provider llm.Provider, opts ...CompressingOption) (*Compressing, error) {
	c := &Compressing{
		provider: provider,
		template: DefaultCompressingTemplate,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		return nil, NewConfigError("NewCompressing", ErrNilProvider)
	}
	if c.template == nil {
		return nil, NewConfigError("NewCompressing", ErrNilTemplate)
	}

	return c, nil
}

// Transform compresses q and its conversation history into one standalone
// query.
//
// With history present, it makes exactly one Generate call and returns a
// single query holding the model's response (trimmed of surrounding
// whitespace) with q's metadata attached unchanged. A blank response falls
// back to the original query text. Without history, q is returned as-is
// and no call is made. Generation failures propagate unchanged.
func (c *Compressing) Transform(ctx context.Context, q *query.Query) ([]*query.Query, error) {
	history := historyFromMetadata(q.Metadata)
	if history == "" {
		return []*query.Query{q}, nil
	}

	promptText, err := c.template.Render(map[string]interface{}{
		"query":        q.Text,
		"chat_history": history,
	})
	if err != nil {
		return nil, err
	}

	response, err := c.provider.Generate(ctx, promptText, c.generateOpts...)
	if err != nil {
		return nil, err
	}

	compressed := strings.TrimSpace(response)
	if compressed == "" {
		compressed = q.Text
	}

	if q.Metadata == nil {
		return []*query.Query{query.New(compressed)}, nil
	}
	return []*query.Query{query.NewWithMetadata(compressed, q.Metadata)}, nil
}

// historyFromMetadata extracts conversation history from query metadata.
//
// Accepts a []string of turns (joined with newlines) or a single string.
// Returns "" when no usable history is present.
func historyFromMetadata(metadata map[string]interface{}) string {
	if metadata == nil {
		return ""
	}

	switch value := metadata[HistoryKey].(type) {
	case []string:
		return strings.TrimSpace(strings.Join(value, "\n"))
	case []interface{}:
		turns := make([]string, 0, len(value))
		for _, turn := range value {
			turns = append(turns, fmt.Sprintf("%v", turn))
		}
		return strings.TrimSpace(strings.Join(turns, "\n"))
	case string:
		return strings.TrimSpace(value)
	default:
		return ""
	}
}
