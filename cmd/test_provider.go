package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/llminfo/internal/llm"
	"github.com/theirongolddev/llminfo/internal/registry"
)

var flagTestAPIKey string

var testProviderCmd = &cobra.Command{
	Use:   "test-provider <file>",
	Short: "Test a provider plugin file without importing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestProvider,
}

func init() {
	testProviderCmd.Flags().StringVar(&flagTestAPIKey, "api-key", "", "API key for testing (overrides environment)")
	rootCmd.AddCommand(testProviderCmd)
}

func runTestProvider(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	_, _, err = testPlugin(cmd.Context(), e, args[0], flagTestAPIKey)
	return err
}

// testPlugin loads and validates a plugin file, builds the provider, and
// fetches its model list uncached. Shared by test-provider and
// import-provider.
func testPlugin(ctx context.Context, e *env, path, apiKey string) (registry.ProviderConfig, []llm.ModelInfo, error) {
	cfg, err := registry.LoadPluginFile(path)
	if err != nil {
		return registry.ProviderConfig{}, nil, err
	}

	p, err := e.reg.Build(cfg, apiKey)
	if err != nil {
		return registry.ProviderConfig{}, nil, err
	}

	fmt.Printf("Testing provider: %s\n", cfg.Name)
	fmt.Printf("Base URL: %s\n", cfg.BaseURL)

	models, err := p.GetModels(ctx, false)
	if err != nil {
		return registry.ProviderConfig{}, nil, err
	}

	fmt.Printf("✓ Successfully retrieved %d models\n", len(models))
	if len(models) > 0 {
		fmt.Println("\nFirst few models:")
		for i, m := range models {
			if i == 3 {
				break
			}
			fmt.Printf("  - %s\n", m.ID)
		}
	}

	return cfg, models, nil
}
