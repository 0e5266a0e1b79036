// Package tui es la interfaz de terminal del kiosk: página de entrada,
// revisión de receta y selección de medicamentos sin receta.
package tui

import (
	"context"
	"strings"
	"time"

	"ilac-otomasyon/internal/kiosk/gateway"
	"ilac-otomasyon/internal/kiosk/nav"
	"ilac-otomasyon/internal/kiosk/notify"
	"ilac-otomasyon/internal/kiosk/review"
	"ilac-otomasyon/internal/kiosk/selection"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const refreshEvery = 250 * time.Millisecond

// Notifications es la parte del presenter que la vista necesita.
type Notifications interface {
	Active() []notify.Notification
}

type Deps struct {
	Ctx           context.Context
	Gateway       *gateway.Gateway
	Review        *review.Workflow
	Selection     *selection.Form
	Notifications Notifications
	Navigator     *Navigator
	Dark          bool
}

// campos de la página de entrada
const (
	fieldCode = iota
	fieldID
	fieldReport
	fieldCount
)

type submitDoneMsg struct{ err error }

type tickMsg time.Time

type Model struct {
	deps   Deps
	styles Styles
	upper  cases.Caser

	page       nav.Page
	inputs     []textinput.Model
	focus      int
	submitting bool

	reviewCursor int
	slotCursor   int

	width int
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	theme := LightTheme()
	if deps.Dark {
		theme = DarkTheme()
	}

	m := Model{
		deps:   deps,
		styles: NewStyles(theme),
		upper:  cases.Upper(language.Turkish),
		page:   nav.Login,
		width:  80,
	}

	placeholders := [fieldCount]string{"Reçete kodu", "TC kimlik no", "Sorun veya isteğiniz"}
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = "│ "
		ti.CharLimit = 256
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.inputs[fieldID].CharLimit = 11
	m.inputs[fieldCode].Focus()
	return m
}

func (m Model) Page() nav.Page {
	return m.page
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case tickMsg:
		// solo redibuja: las notificaciones vencen por su cuenta
		return m, tick()

	case submitDoneMsg:
		m.submitting = false
		if msg.err == nil {
			m.inputs[fieldCode].Reset()
			m.inputs[fieldID].Reset()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		}

		switch m.page {
		case nav.Login:
			m, cmd = m.updateLogin(msg)
		case nav.Review:
			m = m.updateReview(msg)
		case nav.DrugSelection:
			m = m.updateSelection(msg)
		}
	}

	m = m.applyNavigation()
	return m, cmd
}

func (m *Model) toggleTheme() {
	if m.styles.Theme.IsDark {
		m.styles = NewStyles(LightTheme())
		return
	}
	m.styles = NewStyles(DarkTheme())
}

// applyNavigation cambia de página si alguien lo pidió.
func (m Model) applyNavigation() Model {
	page, ok := m.deps.Navigator.take()
	if !ok {
		return m
	}
	m.page = page

	switch page {
	case nav.Review:
		m.deps.Review.Load(m.deps.Ctx)
		m.reviewCursor = 0
	case nav.DrugSelection:
		m.slotCursor = 0
	case nav.Login:
		m.focusField(fieldCode)
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("İLAÇ OTOMASYONU"))
	b.WriteString("\n")

	switch m.page {
	case nav.Login:
		b.WriteString(m.viewLogin())
	case nav.Review:
		b.WriteString(m.viewReview())
	case nav.DrugSelection:
		b.WriteString(m.viewSelection())
	}

	if notes := m.viewNotifications(); notes != "" {
		b.WriteString("\n")
		b.WriteString(notes)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("ctrl+t: tema (" + m.styles.Theme.Name + ") • ctrl+c: çıkış"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewNotifications() string {
	if m.deps.Notifications == nil {
		return ""
	}
	var lines []string
	for _, n := range m.deps.Notifications.Active() {
		line := n.Kind.Icon() + " " + n.Message
		switch n.Kind {
		case notify.Success:
			line = m.styles.Success.Render(line)
		case notify.Error:
			line = m.styles.Error.Render(line)
		case notify.Warning:
			line = m.styles.Warning.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
