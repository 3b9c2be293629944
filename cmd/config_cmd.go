// Package cmd implements the llminfo CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/llminfo/internal/config"
	"github.com/theirongolddev/llminfo/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration and catalog",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg := e.cfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default provider: %s\n", cfg.General.DefaultProvider)
	fmt.Println()

	fmt.Println("  [Cache]")
	fmt.Printf("    Directory: %s\n", config.CacheDir(cfg))
	fmt.Printf("    TTL:       %s\n", config.CacheTTL(cfg))
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Logging.File)
	}
	fmt.Println()

	fmt.Println("  [Providers]")
	fmt.Printf("    User catalog: %s\n", registry.UserCatalogPath(config.ConfigDir()))
	fmt.Printf("    Configured:   %s\n", strings.Join(e.reg.Names(), ", "))
	fmt.Println()

	return nil
}
