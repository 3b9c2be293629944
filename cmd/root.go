package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/theirongolddev/llminfo/internal/config"
	"github.com/theirongolddev/llminfo/internal/provider"
	"github.com/theirongolddev/llminfo/internal/registry"
	"github.com/theirongolddev/llminfo/internal/store"
)

var (
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "llminfo",
	Short:         "LLM provider model and credit info",
	Long:          "Query LLM hosting providers for model catalogs and account credit balances.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// env bundles the wiring every command needs: settings, logger, cache, and
// the provider registry.
type env struct {
	cfg   config.Config
	log   *logrus.Logger
	cache *store.Cache
	reg   *registry.Registry
}

// newEnv loads config and builds the shared component graph.
func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg)

	cache, err := store.New(config.CacheDir(cfg), config.CacheTTL(cfg), log)
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(registry.UserCatalogPath(config.ConfigDir()), cache, log)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log, cache: cache, reg: reg}, nil
}

// newLogger builds the process logger from config. Output goes to stderr so
// tables and JSON stay pipeable; an optional rotating file sink mirrors it.
func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	var out io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
		})
	}
	log.SetOutput(out)

	return log
}

// providerName resolves the effective provider: the flag when set, else the
// configured default.
func (e *env) providerName(flag string) string {
	if flag != "" {
		return flag
	}
	return e.cfg.General.DefaultProvider
}

// reportError converts a fault into a user-facing message. This is the only
// place faults turn into process exit behavior.
func reportError(err error) {
	var (
		confErr *provider.ConfigurationError
		authErr *provider.AuthenticationError
		rateErr *provider.RateLimitError
		apiErr  *provider.APIError
		netErr  *provider.NetworkError
	)

	switch {
	case errors.As(err, &authErr):
		fmt.Fprintln(os.Stderr, "Authentication failed: invalid or missing API key.")
		fmt.Fprintf(os.Stderr, "Provider: %s\n", authErr.Provider)
		fmt.Fprintln(os.Stderr, "Check the provider's api_key_env environment variable.")
	case errors.As(err, &rateErr):
		fmt.Fprintf(os.Stderr, "Rate limit exceeded for provider %s.\n", rateErr.Provider)
		if rateErr.RetryAfter > 0 {
			fmt.Fprintf(os.Stderr, "Retry after %d seconds.\n", rateErr.RetryAfter)
		} else {
			fmt.Fprintln(os.Stderr, "Please wait before making more requests.")
		}
	case errors.As(err, &apiErr):
		switch {
		case apiErr.StatusCode == 404:
			fmt.Fprintln(os.Stderr, "Resource not found: the requested endpoint does not exist.")
		case apiErr.StatusCode >= 500:
			fmt.Fprintf(os.Stderr, "Server error (%d): the provider's server encountered an error. Try again later.\n", apiErr.StatusCode)
		default:
			fmt.Fprintf(os.Stderr, "API error (%d) for provider %s.\n", apiErr.StatusCode, apiErr.Provider)
		}
	case errors.As(err, &netErr):
		fmt.Fprintf(os.Stderr, "Network error: %v\n", netErr.Err)
		fmt.Fprintln(os.Stderr, "Check your internet connection and firewall settings.")
	case errors.As(err, &confErr):
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
