package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/core/services"
	"github.com/moneta-svc/moneta/internal/platform/locale"
)

var (
	// Shared engine instances, built once in init. The CLI runs entirely in
	// process against the seeded ISO registry.
	registryService portssvc.CurrencySvcFacade
	moneyService    portssvc.MoneySvcFacade

	localeFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moneta",
	Short: "Parse, format and inspect monetary text",
	Long: `moneta runs the currency engine in process: no server, no database.
It parses locale-dependent monetary strings like "€ 1.234,56" or "USD 99.99",
formats amounts back out, and inspects the built-in ISO 4217 registry.

Without --locale, invariant conventions apply (period decimal point, comma
grouping) and bare amounts resolve to the XXX no-currency sentinel.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	registryService = services.NewCurrencyRegistryService(nil)
	moneyService = services.NewMoneyTextService(registryService)

	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "BCP 47 locale tag for numeric conventions and currency fallback (e.g. de-DE)")
}

// requestTag resolves the --locale flag; language.Und means invariant
// conventions and the XXX fallback.
func requestTag() language.Tag {
	if localeFlag == "" {
		return language.Und
	}
	tag, err := locale.Parse(localeFlag)
	if err != nil {
		exitWithError(fmt.Errorf("invalid locale %q: %w", localeFlag, err))
	}
	return tag
}

// exitWithError prints the error and exits non-zero.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
