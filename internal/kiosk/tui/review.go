package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateReview(msg tea.KeyMsg) Model {
	cards := m.deps.Review.Cards()

	switch msg.String() {
	case "up", "k":
		if m.reviewCursor > 0 {
			m.reviewCursor--
		}
	case "down", "j":
		if m.reviewCursor < len(cards)-1 {
			m.reviewCursor++
		}
	case "d", "delete", "backspace":
		if m.deps.Review.RemoveCard(m.deps.Ctx, m.reviewCursor) {
			if n := len(m.deps.Review.Cards()); m.reviewCursor >= n && n > 0 {
				m.reviewCursor = n - 1
			}
		}
	case "enter":
		m.deps.Review.Confirm(m.deps.Ctx)
	}
	return m
}

func (m Model) viewReview() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Reçetenizdeki İlaçlar"))
	b.WriteString("\n\n")

	cards := m.deps.Review.Cards()
	if len(cards) == 0 {
		b.WriteString(m.styles.Help.Render("Reçetede ilaç bulunmuyor."))
		b.WriteString("\n")
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	for _, c := range cards {
		style := m.styles.Card
		if c.Index == m.reviewCursor {
			style = m.styles.CardActive
		}
		body := m.styles.CardTitle.Render(m.upper.String(c.Name)) + "\n" +
			"SKT: " + c.Expiry + "\n" +
			c.UsageInstructions
		b.WriteString(style.Width(width).Render(body))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Button.Render("[ Onayla ]"))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓: seç • d: sil • enter: onayla"))
	b.WriteString("\n")
	return b.String()
}
