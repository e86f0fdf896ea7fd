// Package llm provides the provider boundary for the semantic analyzer:
// text generation, JSON generation and embeddings behind one client
// interface, with a typed error taxonomy and bounded retry.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured JSON output
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the provider client
type Config struct {
	Models         map[ModelTier]string
	EmbeddingModel string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		EmbeddingModel: "text-embedding-004",
	}
}

// GetModel returns the model name for a tier, falling back to standard
// then lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
