// Package tui implements the interactive trip calculator form built on
// Bubble Tea.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// Run starts the interactive calculator and blocks until the user quits.
func Run(ctx context.Context, calculator *trip.Calculator) error {
	model := NewCalculatorModel(ctx, calculator)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running calculator ui: %w", err)
	}
	return nil
}
