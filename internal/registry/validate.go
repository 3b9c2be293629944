package registry

import (
	"strings"
	"unicode"

	"github.com/theirongolddev/llminfo/internal/parse"
	"github.com/theirongolddev/llminfo/internal/provider"
)

// Validate checks a provider config the way plugin files are checked before
// being tested or imported.
func Validate(cfg ProviderConfig) error {
	if cfg.Name == "" {
		return confErr("name", "missing required field")
	}
	if cfg.BaseURL == "" {
		return confErr("base_url", "missing required field")
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return confErr("base_url", "must start with http:// or https://")
	}
	if cfg.APIKeyEnv == "" {
		return confErr("api_key_env", "missing required field")
	}
	if !isUpper(cfg.APIKeyEnv) {
		return confErr("api_key_env", "must be uppercase")
	}
	if cfg.ModelsEndpoint == "" {
		return confErr("models_endpoint", "missing required field")
	}
	if cfg.Parser != parse.TypeOpenAICompatible && cfg.Parser != parse.TypeOpenRouter {
		return confErr("parser", "must be one of [openai_compatible, openrouter]")
	}
	return nil
}

func confErr(field, msg string) error {
	return &provider.ConfigurationError{Field: field, Message: msg}
}

// isUpper reports whether s contains no lowercase letters.
func isUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
