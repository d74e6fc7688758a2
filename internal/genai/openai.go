package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	chromem "github.com/philippgille/chromem-go"
)

// OpenAIEmbeddingModel is the default embedding model for OpenAI-compatible
// endpoints.
const OpenAIEmbeddingModel = openai.EmbeddingModelTextEmbedding3Small

// OpenAIClient generates embeddings through an OpenAI-compatible API.
// A custom base URL allows any endpoint that speaks the OpenAI embeddings
// protocol.
type OpenAIClient struct {
	client openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIClient creates an OpenAI embedding client. baseURL is optional;
// empty means api.openai.com.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  OpenAIEmbeddingModel,
	}
}

// Embed generates an embedding vector for the given text.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty or whitespace-only text cannot be embedded")
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embedding request: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding returned")
	}

	vec := make([]float32, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}

// EmbeddingFunc adapts the client to chromem's embedding interface.
func (c *OpenAIClient) EmbeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return c.Embed(ctx, text)
	}
}
