// Package tui implements the interactive listing browser.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/rentalmate/internal/filter"
	"github.com/Veraticus/rentalmate/internal/model"
)

// Config holds what the browser starts with.
type Config struct {
	Listings []model.Listing
	Criteria model.FilterCriteria
	Defaults model.FilterCriteria
	Width    int
	Height   int
}

// Model holds the browser state. Results are recomputed synchronously after every
// change to the criteria, so the list always reflects the latest input.
type Model struct {
	search   textinput.Model
	help     help.Model
	keymap   KeyMap
	listings []model.Listing
	results  []model.Listing
	criteria model.FilterCriteria
	defaults model.FilterCriteria
	cursor   int
	width    int
	height   int
	detail   bool
	quitting bool
}

var genderCycle = []model.Gender{model.GenderAll, model.GenderMale, model.GenderFemale}

func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search by name or location"
	search.Prompt = "🔍 "
	search.CharLimit = 64
	search.SetValue(cfg.Criteria.SearchQuery)
	search.Focus()

	m := Model{
		search:   search,
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		listings: cfg.Listings,
		criteria: cfg.Criteria,
		defaults: cfg.Defaults,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.refilter()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.criteria.SearchQuery = m.search.Value()
		m.refilter()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.ToggleDetail):
		m.detail = !m.detail && len(m.results) > 0

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.CycleGender):
		m.criteria.Gender = nextGender(m.criteria.Gender)
		m.refilter()

	case key.Matches(msg, m.keymap.ToggleFood):
		m.criteria.FoodIncluded = !m.criteria.FoodIncluded
		m.refilter()

	case key.Matches(msg, m.keymap.RentDown):
		m.adjust(-filter.RentStep, 0)

	case key.Matches(msg, m.keymap.RentUp):
		m.adjust(filter.RentStep, 0)

	case key.Matches(msg, m.keymap.DistanceDown):
		m.adjust(0, -1)

	case key.Matches(msg, m.keymap.DistanceUp):
		m.adjust(0, 1)

	case key.Matches(msg, m.keymap.Reset):
		m.criteria = filter.Reset(m.defaults)
		m.search.SetValue("")
		m.refilter()

	default:
		return nil, false
	}

	return nil, true
}

// adjust moves the rent and distance bounds, keeping them inside the editor limits.
func (m *Model) adjust(rent int, distance float64) {
	c := m.criteria
	c.MaxRent += rent
	c.Distance += distance
	if normalized, err := filter.Normalize(c); err == nil {
		m.criteria.MaxRent = normalized.MaxRent
		m.criteria.Distance = normalized.Distance
	}
	m.refilter()
}

func (m *Model) refilter() {
	m.results = filter.Apply(m.listings, m.criteria)
	if m.cursor >= len(m.results) {
		m.cursor = max(0, len(m.results)-1)
	}
	if len(m.results) == 0 {
		m.detail = false
	}
}

func nextGender(g model.Gender) model.Gender {
	for i, candidate := range genderCycle {
		if candidate == g {
			return genderCycle[(i+1)%len(genderCycle)]
		}
	}
	return model.GenderMale
}

// Criteria returns the criteria the browser ended with.
func (m Model) Criteria() model.FilterCriteria {
	return m.criteria
}

// Results returns the listings currently shown.
func (m Model) Results() []model.Listing {
	return m.results
}
