package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the abstraction over the embedding/generation provider
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// EmbedText returns the embedding vector for a text
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ProviderError{Code: CodeInvalidCredential, Message: "API key is required"}
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, Classify(fmt.Errorf("failed to create Gemini client: %w", err))
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", &ProviderError{Code: CodeMalformedResponse, Message: fmt.Sprintf("no model configured for tier %s", tier)}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", Classify(err)
	}

	return extractTextFromResponse(resp)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", &ProviderError{Code: CodeMalformedResponse, Message: fmt.Sprintf("no model configured for tier %s", tier)}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", Classify(err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// EmbedText returns the embedding vector for a text
func (c *GeminiClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	em := c.client.EmbeddingModel(c.config.EmbeddingModel)

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, Classify(err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &ProviderError{Code: CodeMalformedResponse, Message: "empty embedding in response"}
	}
	return resp.Embedding.Values, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", &ProviderError{Code: CodeSafetyBlocked, Message: "prompt blocked by safety filter"}
		}
		return "", &ProviderError{Code: CodeMalformedResponse, Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", &ProviderError{Code: CodeSafetyBlocked, Message: "response blocked by safety filter"}
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ProviderError{Code: CodeMalformedResponse, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &ProviderError{Code: CodeMalformedResponse, Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
