package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) focusField(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	m.focus = i
}

func (m Model) updateLogin(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focusField((m.focus + 1) % fieldCount)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case tea.KeyEnter:
		if m.focus == fieldReport {
			if err := m.deps.Gateway.Report(m.inputs[fieldReport].Value()); err == nil {
				m.inputs[fieldReport].Reset()
			}
			return m, nil
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit lanza el request fuera del loop. Mientras tanto el botón queda
// deshabilitado y enter no hace nada.
func (m Model) submit() (Model, tea.Cmd) {
	if m.submitting || m.deps.Gateway.Busy() {
		return m, nil
	}

	code := m.inputs[fieldCode].Value()
	id := m.inputs[fieldID].Value()
	if (strings.TrimSpace(code) == "") == (strings.TrimSpace(id) == "") {
		// validación local: el gateway avisa y no hace request
		_ = m.deps.Gateway.Submit(m.deps.Ctx, code, id)
		return m, nil
	}

	m.submitting = true
	gw, ctx := m.deps.Gateway, m.deps.Ctx
	return m, func() tea.Msg {
		return submitDoneMsg{err: gw.Submit(ctx, code, id)}
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	labels := [fieldCount]string{"Reçete Kodu", "TC Kimlik No", "Şikayet / İstek"}

	for i, in := range m.inputs {
		if i == fieldReport {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
		if i == fieldID {
			b.WriteString(m.submitButton())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("Reçete kodu ya da TC kimlik no girin (ikisini birden değil)."))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab: alan değiştir • enter: gönder"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) submitButton() string {
	if m.submitting {
		return m.styles.Disabled.Render("[ Giriş ]") + " " + m.styles.Help.Render("Sorgulanıyor...")
	}
	return m.styles.Button.Render("[ Giriş ]")
}
