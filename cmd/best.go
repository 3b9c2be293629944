package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/llminfo/internal/cli"
	"github.com/theirongolddev/llminfo/internal/llm"
)

var flagBestProvider string

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Pick the best free model for coding-agent use",
	Long:  "Select the free model with the largest usable context window and lowest prompt price.",
	RunE:  runBest,
}

func init() {
	bestCmd.Flags().StringVar(&flagBestProvider, "provider", "", "Limit to one provider")
	rootCmd.AddCommand(bestCmd)
}

func runBest(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	rows, err := collectModels(cmd.Context(), e, flagBestProvider, true)
	if err != nil {
		return err
	}

	models := make([]llm.ModelInfo, 0, len(rows))
	for _, r := range rows {
		models = append(models, r.Model)
	}

	best, err := llm.SelectBestFreeModel(models)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(best, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Best free model: %s\n", best.ID)
	fmt.Printf("  Name:    %s\n", best.Name)
	fmt.Printf("  Context: %s\n", cli.FormatContext(best.ContextLength))

	return nil
}
