package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/rentalmate/internal/cli"
	"github.com/Veraticus/rentalmate/internal/filter"
)

// cardHeight is the rendered height of one listing card, borders included.
const cardHeight = 7

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		cli.FormatTitle("RentalMate"),
		m.search.View(),
		cli.RenderCriteriaSummary(m.criteria, filter.CountActive(m.criteria, m.defaults)),
		"",
		cli.RenderResultsHeader(len(m.results)),
	}

	switch {
	case len(m.results) == 0:
		sections = append(sections, cli.SubtleStyle.Render("No PGs match these filters. Press ctrl+r to clear them."))
	case m.detail:
		sections = append(sections, cli.RenderListingDetail(m.results[m.cursor]))
	default:
		sections = append(sections, m.renderCards())
	}

	sections = append(sections, "", m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCards renders the window of cards that fits the terminal, keeping the cursor visible.
func (m Model) renderCards() string {
	visible := len(m.results)
	if m.height > 0 {
		// title, search, summary, blank, header, blank, help
		visible = max(1, (m.height-8)/cardHeight)
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(len(m.results), start+visible)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		card := cli.RenderListingCard(m.results[i])
		if i == m.cursor {
			card = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(cli.PrimaryColor).
				Render(card)
		} else {
			card = lipgloss.NewStyle().PaddingLeft(1).Render(card)
		}
		cards = append(cards, card)
	}

	return strings.Join(cards, "\n")
}
