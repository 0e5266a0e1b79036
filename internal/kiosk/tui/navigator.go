package tui

import (
	"sync"

	"ilac-otomasyon/internal/kiosk/nav"
)

// Navigator guarda la última navegación pedida. El gateway la pide desde la
// goroutine del request; el loop de la TUI la aplica en Update.
type Navigator struct {
	mu      sync.Mutex
	pending *nav.Page
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) Navigate(to nav.Page) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = &to
}

func (n *Navigator) take() (nav.Page, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending == nil {
		return nav.Login, false
	}
	p := *n.pending
	n.pending = nil
	return p, true
}
