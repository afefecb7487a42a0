package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/updownlabs/updown-resolver/internal/assets"
)

//nolint:gochecknoglobals // Cobra boilerplate
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List resolvable assets and intervals",
	RunE:  runAssets,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(cmd *cobra.Command, args []string) error {
	fmt.Println("Assets:")
	for _, a := range assets.All() {
		fmt.Printf("  %-6s aliases: %s\n", a.Symbol, strings.Join(a.Aliases, ", "))
	}

	fmt.Println("\nIntervals:")
	for _, i := range assets.AllIntervals() {
		fmt.Printf("  %-4s %s (%s)\n", i.Label, i.Duration, i.Phrase)
	}

	return nil
}
