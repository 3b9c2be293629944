package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/llminfo/internal/cli"
)

var flagCreditsProvider string

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show credit balance for a provider",
	RunE:  runCredits,
}

func init() {
	creditsCmd.Flags().StringVar(&flagCreditsProvider, "provider", "", "Provider name")
	rootCmd.AddCommand(creditsCmd)
}

func runCredits(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	name := e.providerName(flagCreditsProvider)
	p, err := e.reg.Get(name, "")
	if err != nil {
		return err
	}

	credits, err := p.GetCredits(cmd.Context())
	if err != nil {
		return err
	}

	// Not every provider has a credits endpoint; that's not a fault.
	if credits == nil {
		fmt.Fprintln(os.Stderr, "Credits not available for this provider")
		return nil
	}

	if flagJSON {
		out, err := json.MarshalIndent(credits, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CREDITS  %s", name)))
	fmt.Println()
	fmt.Print(cli.RenderCredits(credits.TotalCredits, credits.Usage, credits.Remaining))

	return nil
}
