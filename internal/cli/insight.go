package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/trackly/internal/insight"
	"github.com/julianstephens/trackly/internal/keyring"
	"github.com/julianstephens/trackly/internal/logger"
)

type InsightCmd struct{}

func (c *InsightCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	habits, entries := tr.Snapshot()
	payload := insight.BuildContext(habits, entries)
	if payload == nil {
		fmt.Println("You need habits to get insights. Add one with 'trackly habit add'.")
		return nil
	}

	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		return fmt.Errorf("no API key available: %w (run 'trackly key set')", err)
	}

	fmt.Println("Generating insights...")

	client := insight.NewGeminiClient(apiKey)
	data, err := client.Generate(context.Background(), payload)
	if err != nil {
		logger.Warn("Insight generation failed", "error", err)
		return err
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Printf("  %s\n\n", data.Summary)

	fmt.Println("Recommendations")
	for _, rec := range data.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	fmt.Println()

	fmt.Printf("\"%s\"\n", data.MotivationalQuote)
	return nil
}
