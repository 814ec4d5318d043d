package transformer_test

import (
	"context"

	"github.com/raglabs/querykit-go/pkg/llm"
)

// stubProvider is an llm.Provider test double that returns a canned
// response (or error) and records every prompt it receives.
type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Close() error {
	return nil
}
