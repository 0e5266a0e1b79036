package tui

import (
	"fmt"
	"strings"

	"ilac-otomasyon/internal/kiosk/nav"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateSelection(msg tea.KeyMsg) Model {
	form := m.deps.Selection

	switch msg.String() {
	case "up", "k":
		if m.slotCursor > 0 {
			m.slotCursor--
		}
	case "down", "j":
		if m.slotCursor < form.Slots()-1 {
			m.slotCursor++
		}
	case "right", "l":
		form.Cycle(m.slotCursor, 1)
	case "left", "h":
		form.Cycle(m.slotCursor, -1)
	case "enter":
		_ = form.Confirm()
	case "x":
		_ = form.Clear()
	case "esc":
		m.deps.Navigator.Navigate(nav.Login)
	}
	return m
}

func (m Model) viewSelection() string {
	var b strings.Builder
	form := m.deps.Selection

	b.WriteString(m.styles.Label.Render("İlaç Seçimi"))
	b.WriteString("\n\n")

	for i := 0; i < form.Slots(); i++ {
		value := form.Value(i)
		if value == "" {
			value = m.styles.Help.Render("< seçiniz >")
		}
		cursor := "  "
		if i == m.slotCursor {
			cursor = m.styles.Button.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%sİlaç %d: ‹ %s ›\n", cursor, i+1, value))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Button.Render("[ Onayla ]") + "  " + m.styles.Button.Render("[ Temizle ]"))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓: kutu • ←/→: ilaç • enter: onayla • x: temizle • esc: ana sayfa"))
	b.WriteString("\n")
	return b.String()
}
