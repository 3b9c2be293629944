// Package llm defines domain types for provider model and credit data.
package llm

import (
	"strconv"
	"strings"
)

// freeSuffix marks free-tier model variants in provider model IDs,
// e.g. "meta-llama/llama-3.1-8b-instruct:free".
const freeSuffix = ":free"

// ModelInfo describes a single model offered by a provider.
type ModelInfo struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ContextLength *int              `json:"context_length,omitempty"`
	Pricing       map[string]string `json:"pricing,omitempty"`
	IsFree        bool              `json:"is_free"`
}

// NewModelInfo builds a ModelInfo, deriving Name and IsFree from the ID
// when possible. Name falls back to the ID if empty.
func NewModelInfo(id, name string, contextLength *int, pricing map[string]string) ModelInfo {
	if name == "" {
		name = id
	}
	return ModelInfo{
		ID:            id,
		Name:          name,
		ContextLength: contextLength,
		Pricing:       pricing,
		IsFree:        strings.Contains(id, freeSuffix),
	}
}

// CreditInfo describes an account credit balance.
// Remaining is whatever the provider's parser computed; it can go negative
// when usage exceeds purchased credits and is deliberately not clamped.
type CreditInfo struct {
	TotalCredits float64 `json:"total_credits"`
	Usage        float64 `json:"usage"`
	Remaining    float64 `json:"remaining"`
}

// PromptPrice returns the model's prompt price in dollars per token.
// Models without usable pricing sort last: the fallback is a sentinel
// larger than any real per-token price.
func (m ModelInfo) PromptPrice() float64 {
	const noPrice = 999999
	if m.Pricing == nil {
		return noPrice
	}
	raw, ok := m.Pricing["prompt"]
	if !ok {
		return noPrice
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return noPrice
	}
	return p
}
