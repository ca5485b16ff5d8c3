package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/trackly/internal/insight"
	"github.com/julianstephens/trackly/internal/keyring"
	"github.com/julianstephens/trackly/internal/models"
	"github.com/julianstephens/trackly/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	tr, err := ctx.OpenTracker()
	if err != nil {
		return err
	}

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	var gen insight.Generator
	if apiKey, err := keyring.GetAPIKey(); err == nil {
		gen = insight.NewGeminiClient(apiKey)
	} else {
		// Keep the insights tab functional so a keypress explains the fix
		// instead of silently doing nothing
		gen = insight.GeneratorFunc(func(context.Context, []insight.HabitContext) (*models.InsightData, error) {
			return nil, fmt.Errorf("no API key configured, run 'trackly key set'")
		})
	}

	p := tea.NewProgram(tui.NewModel(tr, gen), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
