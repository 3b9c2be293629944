package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/llminfo/internal/llm"
	"github.com/theirongolddev/llminfo/internal/parse"
	"github.com/theirongolddev/llminfo/internal/store"
)

const (
	requestTimeout = 30 * time.Second
	maxBodySize    = 10 << 20 // 10 MB; OpenRouter's full catalog runs into megabytes
)

// Config holds the declarative settings a Generic provider is built from.
type Config struct {
	Name            string
	BaseURL         string
	APIKeyEnv       string
	ModelsEndpoint  string
	CreditsEndpoint string // empty when the provider has no credits API
	APIKey          string // explicit key, overrides the environment lookup
}

// Generic is the single Provider implementation: any provider reachable with
// a bearer token and a Parser strategy is a Generic instance.
type Generic struct {
	cfg    Config
	apiKey string
	parser parse.Parser
	cache  *store.Cache
	http   *http.Client
	log    *logrus.Logger
}

// NewGeneric builds a provider from its config. The API key resolves from
// cfg.APIKey first, then the environment variable named by cfg.APIKeyEnv;
// an unresolved key is reported by the fetch methods, not here, so that
// providers can be constructed in bulk without every key being set.
func NewGeneric(cfg Config, parser parse.Parser, cache *store.Cache, log *logrus.Logger) *Generic {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	return &Generic{
		cfg:    cfg,
		apiKey: apiKey,
		parser: parser,
		cache:  cache,
		http:   &http.Client{},
		log:    log,
	}
}

// Name returns the provider's registry key.
func (g *Generic) Name() string {
	return g.cfg.Name
}

// GetModels fetches the model catalog, consulting the cache first when
// useCache is set. Successful fetches are cached best-effort regardless of
// useCache.
func (g *Generic) GetModels(ctx context.Context, useCache bool) ([]llm.ModelInfo, error) {
	if g.apiKey == "" {
		return nil, &ConfigurationError{
			Field:   g.cfg.APIKeyEnv,
			Message: fmt.Sprintf("%s environment variable not set", g.cfg.APIKeyEnv),
		}
	}

	if useCache {
		cached, err := g.cache.Get(g.cfg.Name)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			g.log.WithField("provider", g.cfg.Name).Debug("models served from cache")
			return cached, nil
		}
	}

	body, err := g.get(ctx, g.cfg.ModelsEndpoint)
	if err != nil {
		return nil, err
	}

	models, err := g.parser.ParseModels(body)
	if err != nil {
		return nil, err
	}

	if err := g.cache.Set(g.cfg.Name, models); err != nil {
		g.log.WithField("provider", g.cfg.Name).WithError(err).Warn("cache write failed")
	}

	return models, nil
}

// GetCredits fetches the account credit balance, uncached. Providers
// without a credits endpoint report nil without touching the network.
func (g *Generic) GetCredits(ctx context.Context) (*llm.CreditInfo, error) {
	if g.apiKey == "" {
		return nil, &ConfigurationError{
			Field:   g.cfg.APIKeyEnv,
			Message: fmt.Sprintf("%s environment variable not set", g.cfg.APIKeyEnv),
		}
	}

	if g.cfg.CreditsEndpoint == "" {
		return nil, nil
	}

	body, err := g.get(ctx, g.cfg.CreditsEndpoint)
	if err != nil {
		return nil, err
	}

	return g.parser.ParseCredits(body)
}

// get performs an authenticated GET against baseURL+path and maps failures
// into the package error taxonomy.
func (g *Generic) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, &ConfigurationError{Field: "base_url", Message: err.Error()}
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/llminfo/1.0")

	g.log.WithFields(logrus.Fields{
		"provider": g.cfg.Name,
		"path":     path,
	}).Debug("provider request")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Provider: g.cfg.Name, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthenticationError{Provider: g.cfg.Name}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{
			Provider:   g.cfg.Name,
			RetryAfter: retryAfterSeconds(resp),
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &APIError{Provider: g.cfg.Name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Provider: g.cfg.Name, Err: err}
	}
	return body, nil
}

// retryAfterSeconds reads an integral Retry-After header, 0 when absent or
// in the HTTP-date form.
func retryAfterSeconds(resp *http.Response) int {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	return 0
}
