package llm

import (
	"fmt"

	"compass-utils/internal/config"
	"compass-utils/internal/llm/providers"
)

// Factory creates completion provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates a completion provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "groq":
		return providers.NewGroqProvider(f.config), nil
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// GetSupportedProviders returns a list of supported completion providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"groq", "claude"}
}
