package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ConsoleStorage implements Storage by pretty-printing to console.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

const consoleRule = "────────────────────────────────────────────────────────────"

// StoreResolution pretty-prints a resolution record to console.
func (c *ConsoleStorage) StoreResolution(ctx context.Context, rec *ResolutionRecord) error {
	fmt.Println("\n" + consoleRule)
	fmt.Printf("RESOLUTION %s\n", rec.ID[:8])
	fmt.Println(consoleRule)
	fmt.Printf("Asset:      %s  Interval: %s\n", rec.Asset, rec.Interval)
	fmt.Printf("Window:     %d\n", rec.WindowStart)
	fmt.Printf("Resolved:   %s (took %s)\n", rec.ResolvedAt.Format("2006-01-02 15:04:05"), rec.Duration)

	if !rec.Found {
		fmt.Printf("Outcome:    NOT FOUND after %d candidates\n", rec.CandidatesTried)
		if rec.LastError != "" {
			fmt.Printf("Last error: %s\n", rec.LastError)
		}
		fmt.Println(consoleRule)
		return nil
	}

	fmt.Printf("Market:     %s\n", rec.MarketSlug)
	fmt.Printf("Question:   %s\n", rec.MarketQuestion)
	fmt.Printf("Up:         %s\n", formatPrice(rec.UpPrice))
	fmt.Printf("Down:       %s\n", formatPrice(rec.DownPrice))
	fmt.Println(consoleRule)

	return nil
}

func formatPrice(p *float64) string {
	if p == nil {
		return "unavailable"
	}
	return fmt.Sprintf("%.4f", *p)
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
