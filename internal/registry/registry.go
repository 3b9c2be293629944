package registry

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/llminfo/internal/parse"
	"github.com/theirongolddev/llminfo/internal/provider"
	"github.com/theirongolddev/llminfo/internal/store"
)

// Registry resolves provider names to constructed Provider instances.
type Registry struct {
	catalog Catalog
	cache   *store.Cache
	log     *logrus.Logger
}

// New loads the merged catalog and returns a registry over it.
func New(userCatalogPath string, cache *store.Cache, log *logrus.Logger) (*Registry, error) {
	catalog, err := LoadCatalog(userCatalogPath)
	if err != nil {
		return nil, err
	}
	return &Registry{catalog: catalog, cache: cache, log: log}, nil
}

// Get resolves a single provider by name. apiKey, when non-empty, overrides
// the environment variable lookup.
func (r *Registry) Get(name, apiKey string) (provider.Provider, error) {
	cfg, ok := r.catalog.Providers[name]
	if !ok {
		return nil, &provider.ConfigurationError{
			Field:   "provider",
			Message: "unknown provider: " + name,
		}
	}
	return r.Build(cfg, apiKey)
}

// All eagerly builds every configured provider, keyed by name.
func (r *Registry) All() (map[string]provider.Provider, error) {
	providers := make(map[string]provider.Provider, len(r.catalog.Providers))
	for name, cfg := range r.catalog.Providers {
		p, err := r.Build(cfg, "")
		if err != nil {
			return nil, err
		}
		providers[name] = p
	}
	return providers, nil
}

// Names returns the configured provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.catalog.Providers))
	for name := range r.catalog.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs a provider from a catalog or plugin entry without
// requiring it to be registered. test-provider uses this directly.
func (r *Registry) Build(cfg ProviderConfig, apiKey string) (provider.Provider, error) {
	parser, err := parse.ForType(cfg.Parser)
	if err != nil {
		return nil, &provider.ConfigurationError{Field: "parser", Message: err.Error()}
	}

	creditsEndpoint := ""
	if cfg.CreditsEndpoint != nil {
		creditsEndpoint = *cfg.CreditsEndpoint
	}

	return provider.NewGeneric(provider.Config{
		Name:            cfg.Name,
		BaseURL:         cfg.BaseURL,
		APIKeyEnv:       cfg.APIKeyEnv,
		ModelsEndpoint:  cfg.ModelsEndpoint,
		CreditsEndpoint: creditsEndpoint,
		APIKey:          apiKey,
	}, parser, r.cache, r.log), nil
}
