package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/llminfo/internal/cli"
	"github.com/theirongolddev/llminfo/internal/llm"
)

var (
	flagListProvider string
	flagForce        bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources from providers",
}

var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models from all or specified providers",
	RunE:  runListModels,
}

func init() {
	listModelsCmd.Flags().StringVar(&flagListProvider, "provider", "", "Limit to one provider")
	listModelsCmd.Flags().BoolVar(&flagForce, "force", false, "Force refresh from API (ignore cache)")
	listCmd.AddCommand(listModelsCmd)
	rootCmd.AddCommand(listCmd)
}

// providerModel pairs a model with the provider that serves it, for output.
type providerModel struct {
	Provider string        `json:"provider"`
	Model    llm.ModelInfo `json:"model"`
}

func runListModels(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	rows, err := collectModels(ctx, e, flagListProvider, !flagForce)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if len(rows) == 0 {
		fmt.Println("No models available")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("AVAILABLE MODELS"))
	fmt.Println()

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Provider,
			r.Model.ID,
			r.Model.Name,
			cli.FormatContext(r.Model.ContextLength),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Provider", "Model ID", "Name", "Context"},
		Rows:    tableRows,
	}))

	return nil
}

// collectModels fetches models from one provider, or from every configured
// provider one after another when name is empty.
func collectModels(ctx context.Context, e *env, name string, useCache bool) ([]providerModel, error) {
	var rows []providerModel

	if name != "" {
		p, err := e.reg.Get(name, "")
		if err != nil {
			return nil, err
		}
		models, err := p.GetModels(ctx, useCache)
		if err != nil {
			return nil, err
		}
		for _, m := range models {
			rows = append(rows, providerModel{Provider: p.Name(), Model: m})
		}
		return rows, nil
	}

	providers, err := e.reg.All()
	if err != nil {
		return nil, err
	}
	for _, pname := range e.reg.Names() {
		p := providers[pname]
		models, err := p.GetModels(ctx, useCache)
		if err != nil {
			return nil, err
		}
		e.log.WithFields(logrus.Fields{
			"provider": pname,
			"models":   len(models),
		}).Debug("models retrieved")
		for _, m := range models {
			rows = append(rows, providerModel{Provider: p.Name(), Model: m})
		}
	}
	return rows, nil
}
