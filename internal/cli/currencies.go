package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moneta-svc/moneta/internal/core/domain"
)

// currenciesCmd represents the currencies command group
var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "Inspect the currency registry",
	Long:  `Provides commands to list, show and search the built-in ISO 4217 registry.`,
}

// listCmd represents the currencies list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered currencies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		currencies, err := registryService.ListCurrencies(context.Background())
		if err != nil {
			exitWithError(err)
		}
		for _, c := range currencies {
			fmt.Printf("%s  %-4s  %-40s  %s\n", c.Code, c.MinorUnit, c.Name, c.Symbol)
		}
	},
}

// showCmd represents the currencies show command
var showCmd = &cobra.Command{
	Use:   "show CODE",
	Short: "Show a currency's registry entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := registryService.GetCurrencyByCode(context.Background(), args[0])
		if err != nil {
			exitWithError(err)
		}
		printCurrency(c)
	},
}

// findCmd represents the currencies find command
var findCmd = &cobra.Command{
	Use:   "find TOKEN",
	Short: "Find currencies matching a symbol or code token",
	Long: `Lists every registered currency whose symbol, international symbol,
alternative symbol or code matches the token, e.g. "find kr" or "find usd".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matches, err := registryService.FindCurrenciesByToken(context.Background(), args[0])
		if err != nil {
			exitWithError(err)
		}
		if len(matches) == 0 {
			fmt.Printf("no currency matches %q\n", args[0])
			return
		}
		for _, c := range matches {
			fmt.Printf("%s  %-40s  %s\n", c.Code, c.Name, c.Symbol)
		}
	},
}

// printCurrency renders one registry entry in full.
func printCurrency(c *domain.CurrencyInfo) {
	fmt.Printf("Code:         %s\n", c.Code)
	fmt.Printf("Numeric:      %s\n", c.NumericCode)
	fmt.Printf("Name:         %s\n", c.Name)
	fmt.Printf("Symbol:       %s\n", c.Symbol)
	fmt.Printf("Intl symbol:  %s\n", c.InternationalSymbol)
	if len(c.AlternativeSymbols) > 0 {
		fmt.Printf("Alternates:   %s\n", strings.Join(c.AlternativeSymbols, ", "))
	}
	fmt.Printf("Minor unit:   %s\n", c.MinorUnit)
	fmt.Printf("ISO 4217:     %t\n", c.IsISO)
	if c.ReferenceTag != "" {
		fmt.Printf("Reference:    %s\n", c.ReferenceTag)
	}
	if c.IntroducedOn != nil {
		fmt.Printf("Introduced:   %s\n", c.IntroducedOn.Format("2006-01-02"))
	}
	if c.ExpiredOn != nil {
		fmt.Printf("Expired:      %s\n", c.ExpiredOn.Format("2006-01-02"))
	}
}

func init() {
	rootCmd.AddCommand(currenciesCmd)

	currenciesCmd.AddCommand(listCmd)
	currenciesCmd.AddCommand(showCmd)
	currenciesCmd.AddCommand(findCmd)
}
