package provider

import "fmt"

// ConfigurationError indicates invalid or missing provider configuration,
// including an API key that could not be resolved.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error (%s): %s", e.Field, e.Message)
	}
	return "configuration error: " + e.Message
}

// AuthenticationError indicates the provider rejected the API key (HTTP 401).
type AuthenticationError struct {
	Provider string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for provider %s", e.Provider)
}

// RateLimitError indicates the provider throttled the request (HTTP 429).
// RetryAfter is seconds from the Retry-After header, 0 when absent.
type RateLimitError struct {
	Provider   string
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for provider %s", e.Provider)
}

// APIError indicates a non-2xx response outside the dedicated cases above.
type APIError struct {
	Provider   string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d for provider %s", e.StatusCode, e.Provider)
}

// NetworkError wraps a transport-level failure (DNS, refused connection, timeout).
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for provider %s: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
