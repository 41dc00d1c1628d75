package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).MarginBottom(1)
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Terminal renders the page as bordered cards. Narrow terminals get one
// card per line.
func Terminal(p Page, width int) string {
	var rows []string
	for _, row := range p.Rows {
		cards := make([]string, len(row))
		for i, box := range row {
			cards[i] = card(box)
		}
		if width < 80 {
			rows = append(rows, strings.Join(cards, "\n"))
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{titleStyle.Render(p.Title)}, rows...)...)
}

func card(b Box) string {
	value := cardValueStyle
	if b.Style.Background != "" {
		value = value.Background(lipgloss.Color(b.Style.Background))
	}
	if b.Style.Foreground != "" {
		value = value.Foreground(lipgloss.Color(b.Style.Foreground))
	}
	lines := []string{cardTitleStyle.Render(b.Title), value.Render(b.Value)}
	for _, m := range b.Footers() {
		lines = append(lines, cardFooterStyle.Render(m.String()))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
