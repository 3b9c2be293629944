// Package provider performs the HTTP round trips against LLM hosting
// providers and maps transport and status failures into one error taxonomy.
package provider

import (
	"context"

	"github.com/theirongolddev/llminfo/internal/llm"
)

// Provider is one configured LLM hosting service.
type Provider interface {
	// GetModels fetches the provider's model catalog. With useCache set,
	// a fresh-enough cached list short-circuits the network call.
	GetModels(ctx context.Context, useCache bool) ([]llm.ModelInfo, error)

	// GetCredits fetches the account credit balance. Providers without a
	// credits endpoint return nil, nil.
	GetCredits(ctx context.Context) (*llm.CreditInfo, error)

	// Name returns the provider's registry key.
	Name() string
}
