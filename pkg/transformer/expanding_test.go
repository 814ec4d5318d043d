package transformer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raglabs/querykit-go/pkg/prompt"
	"github.com/raglabs/querykit-go/pkg/query"
	"github.com/raglabs/querykit-go/pkg/transformer"
)

func TestNewExpanding_Defaults(t *testing.T) {
	expanding, err := transformer.NewExpanding(&stubProvider{})
	require.NoError(t, err)

	assert.Equal(t, transformer.DefaultN, expanding.N())
	assert.Equal(t, 3, expanding.N())
	assert.Equal(t, transformer.DefaultExpandingTemplate, expanding.Template())
}

func TestNewExpanding_NilProvider(t *testing.T) {
	_, err := transformer.NewExpanding(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, transformer.ErrNilProvider)
}

func TestNewExpanding_InvalidN(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := transformer.NewExpanding(&stubProvider{}, transformer.WithN(n))

		require.Error(t, err)
		assert.ErrorIs(t, err, transformer.ErrInvalidCount)
	}
}

func TestNewExpanding_NilTemplate(t *testing.T) {
	_, err := transformer.NewExpanding(&stubProvider{}, transformer.WithTemplate(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, transformer.ErrNilTemplate)
}

func TestExpanding_Transform(t *testing.T) {
	provider := &stubProvider{
		response: "1. How can I study Spanish?\n\nWhat's the best way to learn the Spanish language?\nTips for learning Spanish",
	}
	expanding, err := transformer.NewExpanding(provider)
	require.NoError(t, err)

	metadata := map[string]interface{}{"request_id": "req_42"}
	original := query.NewWithMetadata("How to learn Spanish?", metadata)

	queries, err := expanding.Transform(context.Background(), original)
	require.NoError(t, err)

	require.Len(t, queries, 3)
	assert.Equal(t, "1. How can I study Spanish?", queries[0].Text)
	assert.Equal(t, "What's the best way to learn the Spanish language?", queries[1].Text)
	assert.Equal(t, "Tips for learning Spanish", queries[2].Text)

	// Every derived query shares the original metadata map.
	metadata["late"] = true
	for _, q := range queries {
		assert.Equal(t, true, q.Metadata["late"])
	}
}

func TestExpanding_Transform_NoMetadata(t *testing.T) {
	provider := &stubProvider{response: "alpha\nbeta"}
	expanding, err := transformer.NewExpanding(provider)
	require.NoError(t, err)

	queries, err := expanding.Transform(context.Background(), query.New("original"))
	require.NoError(t, err)

	require.Len(t, queries, 2)
	for _, q := range queries {
		assert.Nil(t, q.Metadata)
	}
}

func TestExpanding_Transform_PromptContents(t *testing.T) {
	provider := &stubProvider{response: "whatever"}
	expanding, err := transformer.NewExpanding(provider, transformer.WithN(5))
	require.NoError(t, err)

	_, err = expanding.Transform(context.Background(), query.New("how to learn spanish"))
	require.NoError(t, err)

	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "Generate 5 different versions")
	assert.Contains(t, provider.prompts[0], "User query: how to learn spanish")
	assert.False(t, strings.Contains(provider.prompts[0], "{{"))
}

func TestExpanding_Transform_OneCallPerInvocation(t *testing.T) {
	provider := &stubProvider{response: "a\nb\nc\nd\ne\nf"}
	expanding, err := transformer.NewExpanding(provider)
	require.NoError(t, err)

	_, err = expanding.Transform(context.Background(), query.New("q"))
	require.NoError(t, err)
	assert.Len(t, provider.prompts, 1)

	_, err = expanding.Transform(context.Background(), query.New("q"))
	require.NoError(t, err)
	assert.Len(t, provider.prompts, 2)
}

func TestExpanding_Transform_CountIsAHint(t *testing.T) {
	// The model returned five lines even though three were requested; the
	// result is not truncated or padded.
	provider := &stubProvider{response: "one\ntwo\nthree\nfour\nfive"}
	expanding, err := transformer.NewExpanding(provider, transformer.WithN(3))
	require.NoError(t, err)

	queries, err := expanding.Transform(context.Background(), query.New("q"))
	require.NoError(t, err)

	assert.Len(t, queries, 5)
}

func TestExpanding_Transform_BlankResponse(t *testing.T) {
	provider := &stubProvider{response: "   \n\n  "}
	expanding, err := transformer.NewExpanding(provider)
	require.NoError(t, err)

	queries, err := expanding.Transform(context.Background(), query.New("q"))

	require.NoError(t, err)
	assert.Empty(t, queries)
}

func TestExpanding_Transform_GenerationFailurePropagatesUnchanged(t *testing.T) {
	generationErr := errors.New("model unavailable")
	provider := &stubProvider{err: generationErr}
	expanding, err := transformer.NewExpanding(provider)
	require.NoError(t, err)

	queries, err := expanding.Transform(context.Background(), query.New("q"))

	assert.Nil(t, queries)
	// Not wrapped, not reinterpreted.
	assert.Equal(t, generationErr, err)
}

func TestExpanding_CustomTemplate(t *testing.T) {
	tmpl, err := prompt.New("Rephrase {{query}} exactly {{n}} times.")
	require.NoError(t, err)

	provider := &stubProvider{response: "done"}
	expanding, err := transformer.NewExpanding(provider,
		transformer.WithTemplate(tmpl),
		transformer.WithN(2),
	)
	require.NoError(t, err)

	_, err = expanding.Transform(context.Background(), query.New("hello"))
	require.NoError(t, err)

	require.Len(t, provider.prompts, 1)
	assert.Equal(t, "Rephrase hello exactly 2 times.", provider.prompts[0])
}

func TestExpanding_ImplementsTransformer(t *testing.T) {
	expanding, err := transformer.NewExpanding(&stubProvider{})
	require.NoError(t, err)

	var _ transformer.Transformer = expanding
}
