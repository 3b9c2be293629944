package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/llminfo/internal/config"
	"github.com/theirongolddev/llminfo/internal/registry"
)

var flagImportAPIKey string

var importProviderCmd = &cobra.Command{
	Use:   "import-provider <file>",
	Short: "Test a provider plugin file and add it to the user catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportProvider,
}

func init() {
	importProviderCmd.Flags().StringVar(&flagImportAPIKey, "api-key", "", "API key for testing (overrides environment)")
	rootCmd.AddCommand(importProviderCmd)
}

func runImportProvider(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	cfg, _, err := testPlugin(cmd.Context(), e, args[0], flagImportAPIKey)
	if err != nil {
		return err
	}

	catalogPath := registry.UserCatalogPath(config.ConfigDir())
	fmt.Printf("\nAdding %s to %s...\n", cfg.Name, catalogPath)

	if err := registry.Import(catalogPath, cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Provider %q added to the user catalog\n", cfg.Name)
	fmt.Printf("Plugin file can be deleted: %s\n", args[0])

	return nil
}
