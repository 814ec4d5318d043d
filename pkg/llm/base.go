// Package llm defines the text-generation capability used by query
// transformers.
//
// It declares the Provider interface that all generation backends (OpenAI,
// Ollama, Anthropic, or any OpenAI-compatible endpoint) must satisfy, along
// with functional options for sampling parameters.
package llm

import "context"

// Provider is a text-generation capability: it accepts a fully rendered
// prompt and returns the model's free-form response text.
//
// Implementations must be safe for concurrent use. Cancellation and
// deadlines are delegated entirely to the caller-supplied context; the
// consuming transformer enforces no timeout of its own.
type Provider interface {
	// Generate produces text for the given prompt.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadline propagation
	//   - prompt: The fully rendered prompt text
	//   - opts: Optional sampling parameters (temperature, max tokens, etc.)
	//
	// Returns the generated text and any transport or model error.
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)

	// Close releases any resources held by the provider.
	Close() error
}

// GenerateOptions contains sampling parameters for a generation call.
type GenerateOptions struct {
	// Temperature controls randomness (0.0-2.0). Higher = more random.
	Temperature float64

	// MaxTokens limits the maximum number of tokens in the response.
	MaxTokens int

	// TopP controls nucleus sampling (0.0-1.0). Higher = more diverse.
	TopP float64

	// Stop contains stop sequences that end generation early.
	Stop []string
}

// GenerateOption configures a single generation call.
type GenerateOption func(*GenerateOptions)

// WithTemperature sets the sampling temperature.
//
// Example:
//
//	text, _ := provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
func WithTemperature(temperature float64) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.Temperature = temperature
	}
}

// WithMaxTokens caps the number of tokens in the response.
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.MaxTokens = maxTokens
	}
}

// WithTopP sets the top-p (nucleus sampling) parameter.
func WithTopP(topP float64) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.TopP = topP
	}
}

// WithStop sets stop sequences that end generation early.
func WithStop(stop ...string) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.Stop = stop
	}
}

// ApplyGenerateOptions resolves a slice of GenerateOption functions into a
// GenerateOptions value.
//
// This is a helper used internally by provider implementations.
// Defaults: Temperature=0.7, MaxTokens=1000, TopP=1.0.
func ApplyGenerateOptions(opts []GenerateOption) *GenerateOptions {
	options := &GenerateOptions{
		Temperature: 0.7,
		MaxTokens:   1000,
		TopP:        1.0,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
