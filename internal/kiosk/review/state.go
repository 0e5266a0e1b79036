// Package review es la página de revisión de receta: carga la sesión,
// muestra una tarjeta por medicamento único y al confirmar cierra la visita.
package review

import "ilac-otomasyon/internal/kiosk/session"

type Phase int

const (
	Loading Phase = iota
	Rendered
	Confirmed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// State es lo que se ve en pantalla. Drugs ya está deduplicado.
type State struct {
	Phase Phase
	Drugs []session.Drug
}

type Action interface {
	isAction()
}

// Loaded trae el contenido crudo de la sesión.
type Loaded struct {
	Drugs []session.Drug
}

// RemoveCard quita la tarjeta en Index.
type RemoveCard struct {
	Index int
}

type Confirm struct{}

func (Loaded) isAction()     {}
func (RemoveCard) isAction() {}
func (Confirm) isAction()    {}

// Dedup deja el primer registro de cada nombre, en el orden original.
// Idempotente: Dedup(Dedup(x)) == Dedup(x).
func Dedup(drugs []session.Drug) []session.Drug {
	seen := make(map[string]struct{}, len(drugs))
	out := make([]session.Drug, 0, len(drugs))
	for _, d := range drugs {
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Reduce es la transición pura (estado, acción) -> estado. No toca la sesión.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Loaded:
		return State{Phase: Rendered, Drugs: Dedup(a.Drugs)}

	case RemoveCard:
		if s.Phase != Rendered || a.Index < 0 || a.Index >= len(s.Drugs) {
			return s
		}
		rest := make([]session.Drug, 0, len(s.Drugs)-1)
		rest = append(rest, s.Drugs[:a.Index]...)
		rest = append(rest, s.Drugs[a.Index+1:]...)
		return State{Phase: Rendered, Drugs: rest}

	case Confirm:
		return State{Phase: Confirmed, Drugs: []session.Drug{}}
	}
	return s
}

// Card es la proyección de un medicamento para dibujar.
type Card struct {
	Index             int
	Name              string
	Expiry            string
	UsageInstructions string
}

func Cards(s State) []Card {
	if s.Phase != Rendered {
		return nil
	}
	out := make([]Card, 0, len(s.Drugs))
	for i, d := range s.Drugs {
		out = append(out, Card{
			Index:             i,
			Name:              d.Name,
			Expiry:            d.Expiry,
			UsageInstructions: d.UsageInstructions,
		})
	}
	return out
}
