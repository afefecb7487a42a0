package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/updownlabs/updown-resolver/internal/app"
	"github.com/updownlabs/updown-resolver/pkg/config"
	"github.com/updownlabs/updown-resolver/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the current up/down contract for an asset and interval",
	Long: `Runs one resolution and prints the result.

On success the implied up/down probabilities are printed; on failure the
full candidate trail is printed, so you can see which identifiers were
tried and why the last one failed.`,
	RunE: runResolve,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("asset", "a", "", "Asset symbol, e.g. btc (required)")
	resolveCmd.Flags().StringP("interval", "i", "", "Interval label, e.g. 5m (required)")
	resolveCmd.Flags().StringP("strategy", "s", "", "Locator strategy: slug or search (overrides LOCATOR_STRATEGY)")
	_ = resolveCmd.MarkFlagRequired("asset")
	_ = resolveCmd.MarkFlagRequired("interval")
}

func runResolve(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found\n")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
		cfg.LocatorStrategy = strategy
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	defer func() {
		_ = application.Shutdown()
	}()

	asset, _ := cmd.Flags().GetString("asset")
	interval, _ := cmd.Flags().GetString("interval")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := application.Resolver().Resolve(ctx, asset, interval)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	printResult(result)
	return nil
}

func printResult(result *types.Result) {
	if !result.Found {
		fmt.Printf("No contract found (strategy: %s, window: %d)\n",
			result.Diagnostics.Strategy, result.Diagnostics.WindowStart)
		fmt.Printf("Candidates tried (%d):\n", len(result.Diagnostics.Tried))
		for _, c := range result.Diagnostics.Tried {
			fmt.Printf("  - %s\n", c)
		}
		if result.Diagnostics.LastError != "" {
			fmt.Printf("Last error: %s\n", result.Diagnostics.LastError)
		}
		return
	}

	fmt.Printf("Market:   %s\n", result.MarketTitle)
	fmt.Printf("Slug:     %s\n", result.MarketSlug)
	fmt.Printf("Up:       %s  (token %s)\n", fmtPrice(result.UpPrice), result.UpToken)
	fmt.Printf("Down:     %s  (token %s)\n", fmtPrice(result.DownPrice), result.DownToken)
	for _, note := range result.Diagnostics.Notes {
		fmt.Printf("Note:     %s\n", note)
	}
}

func fmtPrice(p *float64) string {
	if p == nil {
		return "unavailable"
	}
	return fmt.Sprintf("%.4f", *p)
}
