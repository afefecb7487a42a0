package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "updown-resolver",
	Short: "Up/down market resolver",
	Long: `Resolves the current short-lived up/down prediction-market contract for
an asset and interval, and returns the contract's implied probabilities.

Contracts rotate every window and have no stable identifier, so the
resolver guesses candidate slugs (or runs full-text searches), validates
what the discovery service returns, and fetches midpoint prices for the
two outcome tokens of the chosen market.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
