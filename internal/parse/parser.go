// Package parse converts raw provider JSON payloads into normalized records.
//
// Providers diverge on envelope shape and on strictness: OpenAI-compatible
// APIs get a lenient parser that degrades to an empty model list, while the
// OpenRouter parser rejects malformed entries outright. The Parser interface
// isolates that variance from the HTTP and caching layers.
package parse

import (
	"fmt"

	"github.com/theirongolddev/llminfo/internal/llm"
)

// Parser is the strategy for decoding one provider's response envelopes.
type Parser interface {
	// ParseModels extracts the model list from a models-endpoint payload.
	ParseModels(raw []byte) ([]llm.ModelInfo, error)

	// ParseCredits extracts the credit balance from a credits-endpoint
	// payload. Returns nil when the parser does not support credits.
	ParseCredits(raw []byte) (*llm.CreditInfo, error)
}

// Parser strategy names as they appear in provider catalog files.
const (
	TypeOpenAICompatible = "openai_compatible"
	TypeOpenRouter       = "openrouter"
)

// ForType returns the parser registered under the given strategy name.
func ForType(name string) (Parser, error) {
	switch name {
	case TypeOpenAICompatible:
		return NewOpenAICompatible("data", ""), nil
	case TypeOpenRouter:
		return &OpenRouter{}, nil
	default:
		return nil, fmt.Errorf("unknown parser type: %q", name)
	}
}

// MissingFieldError indicates a response entry lacked a required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// WrongTypeError indicates a response field had an unexpected JSON type.
type WrongTypeError struct {
	Field string
	Want  string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("field %q is not a %s", e.Field, e.Want)
}
