package llm

import (
	"context"

	"compass-utils/pkg/models"
)

// Provider defines the interface for completion backends
type Provider interface {
	// Complete sends a chat completion request and returns the raw response
	// text. The text is not interpreted here; callers decide whether it is
	// free text or JSON to be decoded.
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)

	// IsHealthy checks if the provider is available and properly configured
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
