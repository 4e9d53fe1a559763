package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/core/domain"
)

var (
	parseCurrencyHint string
	parseTry          bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse monetary text into a currency and an exact amount",
	Long: `Parses a monetary string like "EUR 234.25", "€ 1.234,56" or "1234.5 BTC"
into its currency and exact decimal amount.

A currency hint (--currency) pins the expected currency; text that denotes a
different one fails. With --try, text that is not money reports "not money"
instead of an error.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tag := requestTag()
		ctx := context.Background()

		if parseTry {
			m, ok, err := moneyService.TryParseMoney(ctx, args[0], parseCurrencyHint, tag)
			if err != nil {
				exitWithError(err)
			}
			if !ok {
				fmt.Printf("not money: %q\n", args[0])
				return
			}
			printMoney(m, tag)
			return
		}

		m, err := moneyService.ParseMoney(ctx, args[0], parseCurrencyHint, tag)
		if err != nil {
			exitWithError(err)
		}
		printMoney(m, tag)
	},
}

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum TEXT...",
	Short: "Parse several monetary strings and add them",
	Long: `Parses each argument as monetary text and adds the results. All amounts
must resolve to the same currency; a mismatch fails rather than converting.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tag := requestTag()
		ctx := context.Background()

		total, err := moneyService.ParseMoney(ctx, args[0], "", tag)
		if err != nil {
			exitWithError(fmt.Errorf("failed to parse %q: %w", args[0], err))
		}
		for _, arg := range args[1:] {
			m, err := moneyService.ParseMoney(ctx, arg, "", tag)
			if err != nil {
				exitWithError(fmt.Errorf("failed to parse %q: %w", arg, err))
			}
			summed, err := total.Add(*m)
			if err != nil {
				exitWithError(err)
			}
			total = &summed
		}
		printMoney(total, tag)
	},
}

// printMoney renders a parsed amount: canonical form first, then the parts.
func printMoney(m *domain.Money, tag language.Tag) {
	canonical, display, err := moneyService.FormatMoney(context.Background(), *m, tag)
	if err != nil {
		exitWithError(err)
	}
	fmt.Println(canonical)
	fmt.Printf("  currency: %s\n", m.CurrencyCode)
	fmt.Printf("  amount:   %s\n", m.Amount.String())
	fmt.Printf("  display:  %s\n", display)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(sumCmd)

	parseCmd.Flags().StringVarP(&parseCurrencyHint, "currency", "c", "", "Expected currency code; parsing fails if the text denotes another")
	parseCmd.Flags().BoolVar(&parseTry, "try", false, "Report unparseable text instead of failing")
}
