package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts of the listing browser.
// Plain letters always go to the search box, so every binding uses a modifier or a special key.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Filters
	CycleGender  key.Binding
	ToggleFood   key.Binding
	RentDown     key.Binding
	RentUp       key.Binding
	DistanceDown key.Binding
	DistanceUp   key.Binding
	Reset        key.Binding

	// Application
	ToggleDetail key.Binding
	ToggleHelp   key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		CycleGender: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "gender"),
		),
		ToggleFood: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "food"),
		),
		RentDown: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", "rent -"),
		),
		RentUp: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "rent +"),
		),
		DistanceDown: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "distance -"),
		),
		DistanceUp: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "distance +"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear filters"),
		),
		ToggleDetail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleGender, k.ToggleFood, k.Reset, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleDetail},
		{k.CycleGender, k.ToggleFood, k.Reset},
		{k.RentDown, k.RentUp, k.DistanceDown, k.DistanceUp},
		{k.ToggleHelp, k.Quit},
	}
}
