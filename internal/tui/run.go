package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the browser and blocks until the user quits or ctx is canceled.
// It returns the criteria the user ended with so the caller can persist them.
func Run(ctx context.Context, cfg Config) (Model, error) {
	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("browser error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("browser returned unexpected model %T", final)
	}
	return m, nil
}
