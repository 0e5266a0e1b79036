// Package notify muestra mensajes efímeros (éxito, error, aviso) que se
// borran solos después de un TTL fijo.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 3 * time.Second

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
)

func (k Kind) Icon() string {
	switch k {
	case Success:
		return "✅"
	case Error:
		return "❌"
	case Warning:
		return "⚠️"
	default:
		return ""
	}
}

type Notification struct {
	ID        string
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

// Notifier es lo que consumen el gateway, la revisión y la selección.
type Notifier interface {
	Notify(kind Kind, message string) string
}

type entry struct {
	n     Notification
	timer *time.Timer
}

// Presenter agenda un timer por notificación. Cada una vence por su cuenta;
// no hay cola ni orden garantizado entre vencimientos.
type Presenter struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries []*entry
	closed  bool
}

func NewPresenter(ttl time.Duration) *Presenter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Presenter{ttl: ttl, now: time.Now}
}

// Notify nunca falla. Después de Close devuelve el id pero no muestra nada.
func (p *Presenter) Notify(kind Kind, message string) string {
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: p.now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return n.ID
	}

	e := &entry{n: n}
	e.timer = time.AfterFunc(p.ttl, func() { p.Dismiss(n.ID) })
	p.entries = append(p.entries, e)
	return n.ID
}

// Dismiss cancela el timer y quita la notificación. false si ya no estaba.
func (p *Presenter) Dismiss(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, e := range p.entries {
		if e.n.ID != id {
			continue
		}
		e.timer.Stop()
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
		return true
	}
	return false
}

// Active devuelve las notificaciones visibles, de la más vieja a la más nueva.
func (p *Presenter) Active() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Notification, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.n)
	}
	return out
}

// Close cancela todos los timers pendientes.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range p.entries {
		e.timer.Stop()
	}
	p.entries = nil
	p.closed = true
}

// Recorder guarda lo notificado sin timers; para tests de otros paquetes.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(kind Kind, message string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.items = append(r.items, Notification{ID: id, Kind: kind, Message: message})
	return id
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last devuelve la última notificación (ok=false si no hubo).
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
