package review

import (
	"context"
	"sync"

	"ilac-otomasyon/internal/kiosk/nav"
	"ilac-otomasyon/internal/kiosk/notify"
	"ilac-otomasyon/internal/kiosk/session"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/google/uuid"
)

const MsgConfirmed = "İşleminiz başarılı. Otomattan ilacınızı alabilirsiniz."

// Workflow aplica Reduce y mantiene la sesión en línea con lo que se ve.
// Los errores de almacenamiento se loguean; el paciente nunca los ve.
type Workflow struct {
	store    session.Store
	notifier notify.Notifier
	nav      nav.Navigator
	log      logger.Logger

	mu    sync.Mutex
	state State
}

func NewWorkflow(store session.Store, notifier notify.Notifier, navigator nav.Navigator, log logger.Logger) *Workflow {
	if log == nil {
		log = logger.Nop()
	}
	return &Workflow{
		store:    store,
		notifier: notifier,
		nav:      navigator,
		log:      log,
	}
}

// Load (re)lee la sesión. Sesión vacía o ilegible => página vacía, sin error.
func (w *Workflow) Load(ctx context.Context) State {
	drugs := w.store.Load(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = Reduce(State{Phase: Loading}, Loaded{Drugs: drugs})
	return w.state
}

// RemoveCard quita la tarjeta y todos los registros guardados con ese nombre,
// así la sesión deduplicada sigue coincidiendo con las tarjetas.
// false si el índice no corresponde a ninguna tarjeta.
func (w *Workflow) RemoveCard(ctx context.Context, index int) bool {
	w.mu.Lock()
	if w.state.Phase != Rendered || index < 0 || index >= len(w.state.Drugs) {
		w.mu.Unlock()
		return false
	}
	name := w.state.Drugs[index].Name
	w.state = Reduce(w.state, RemoveCard{Index: index})
	w.mu.Unlock()

	w.purge(ctx, name)
	return true
}

func (w *Workflow) purge(ctx context.Context, name string) {
	stored := w.store.Load(ctx)
	pending := 0
	for _, d := range stored {
		if d.Name == name {
			pending++
		}
	}

	// Remove quita de a uno; acotado por lo que había al empezar.
	for ; pending > 0; pending-- {
		if err := w.store.Remove(ctx, name); err != nil {
			w.log.Warn("session remove failed", map[string]any{"drug": name, "error": err})
			return
		}
	}
}

// Confirm cierra la visita: aviso de éxito, sesión borrada, vuelta al login.
func (w *Workflow) Confirm(ctx context.Context) {
	visit := uuid.NewString()

	w.mu.Lock()
	dispensed := len(w.state.Drugs)
	w.state = Reduce(w.state, Confirm{})
	w.mu.Unlock()

	w.notifier.Notify(notify.Success, MsgConfirmed)
	if err := w.store.Clear(ctx); err != nil {
		w.log.Error("session clear failed", map[string]any{"visit_id": visit, "error": err})
	}
	w.log.Info("prescription confirmed", map[string]any{"visit_id": visit, "drugs": dispensed})

	w.nav.Navigate(nav.Login)
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{Phase: w.state.Phase, Drugs: append([]session.Drug(nil), w.state.Drugs...)}
}

func (w *Workflow) Cards() []Card {
	return Cards(w.State())
}
