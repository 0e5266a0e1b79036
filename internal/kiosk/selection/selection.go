// Package selection es la página de medicamentos sin receta: unas pocas
// casillas, cada una vacía o con un medicamento del catálogo.
package selection

import (
	"errors"
	"sync"

	"ilac-otomasyon/internal/kiosk/notify"
	"ilac-otomasyon/internal/platform/logger"
)

const (
	MsgNothingSelected = "Lütfen en az bir ilaç seçiniz."
	MsgDispensed       = "İşleminiz başarılı. Otomattan ilacınızı alabilirsiniz."
	MsgNothingToClear  = "İlaç seçmeden silme işlemi yapılamaz."
)

const DefaultSlots = 3

var ErrNothingSelected = errors.New("no drug selected")

// Catalog son los medicamentos de venta libre que tiene el otomat.
var Catalog = []string{
	"Parol 500 mg",
	"Majezik 100 mg",
	"Arveles 25 mg",
	"Aferin Forte",
	"Gripin",
	"Talcid",
}

// none marca una casilla vacía.
const none = -1

type Form struct {
	catalog  []string
	notifier notify.Notifier
	log      logger.Logger

	mu    sync.Mutex
	slots []int
}

func NewForm(slots int, catalog []string, notifier notify.Notifier, log logger.Logger) *Form {
	if slots <= 0 {
		slots = DefaultSlots
	}
	if catalog == nil {
		catalog = Catalog
	}
	if log == nil {
		log = logger.Nop()
	}
	f := &Form{catalog: catalog, notifier: notifier, log: log, slots: make([]int, slots)}
	f.reset()
	return f
}

func (f *Form) reset() {
	for i := range f.slots {
		f.slots[i] = none
	}
}

func (f *Form) Slots() int {
	return len(f.slots)
}

// Cycle mueve la casilla delta posiciones: vacía -> primero -> ... -> último -> vacía.
func (f *Form) Cycle(slot, delta int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if slot < 0 || slot >= len(f.slots) || len(f.catalog) == 0 {
		return
	}
	n := len(f.catalog) + 1 // +1 por la opción vacía
	pos := (f.slots[slot] + 1 + delta) % n
	if pos < 0 {
		pos += n
	}
	f.slots[slot] = pos - 1
}

// Value devuelve el medicamento de la casilla ("" si está vacía).
func (f *Form) Value(slot int) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if slot < 0 || slot >= len(f.slots) || f.slots[slot] == none {
		return ""
	}
	return f.catalog[f.slots[slot]]
}

func (f *Form) Selected() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedLocked()
}

func (f *Form) selectedLocked() []string {
	out := make([]string, 0, len(f.slots))
	for _, idx := range f.slots {
		if idx != none {
			out = append(out, f.catalog[idx])
		}
	}
	return out
}

// Confirm entrega lo seleccionado y limpia el formulario.
func (f *Form) Confirm() error {
	f.mu.Lock()
	selected := f.selectedLocked()
	if len(selected) == 0 {
		f.mu.Unlock()
		f.notifier.Notify(notify.Warning, MsgNothingSelected)
		return ErrNothingSelected
	}
	f.reset()
	f.mu.Unlock()

	f.log.Info("otc drugs dispensed", map[string]any{"drugs": selected})
	f.notifier.Notify(notify.Success, MsgDispensed)
	return nil
}

// Clear limpia el formulario; sin nada seleccionado solo avisa.
func (f *Form) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.selectedLocked()) == 0 {
		f.notifier.Notify(notify.Warning, MsgNothingToClear)
		return ErrNothingSelected
	}
	f.reset()
	return nil
}
