package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneta-svc/moneta/internal/core/domain"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format AMOUNT CODE",
	Short: "Format a decimal amount in a currency",
	Long: `Renders an amount in a currency, e.g. "format 1234.5 EUR --locale de-DE".
The first output line is the canonical round-trippable form, the second the
locale display form.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		tag := requestTag()

		m, err := domain.NewMoneyFromString(args[0], args[1])
		if err != nil {
			exitWithError(err)
		}

		canonical, display, err := moneyService.FormatMoney(context.Background(), m, tag)
		if err != nil {
			exitWithError(err)
		}
		fmt.Println(canonical)
		fmt.Println(display)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
