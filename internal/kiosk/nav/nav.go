// Package nav define las páginas del kiosk y cómo se pasa de una a otra.
package nav

type Page int

const (
	Login Page = iota
	Review
	DrugSelection
)

func (p Page) String() string {
	switch p {
	case Login:
		return "login"
	case Review:
		return "review"
	case DrugSelection:
		return "drug-selection"
	default:
		return "unknown"
	}
}

// Navigator cambia la página visible. La TUI es la implementación real.
type Navigator interface {
	Navigate(to Page)
}

// Recorder guarda las navegaciones pedidas; útil en tests.
type Recorder struct {
	Pages []Page
}

func (r *Recorder) Navigate(to Page) {
	r.Pages = append(r.Pages, to)
}

// Last devuelve la última página pedida (ok=false si no hubo ninguna).
func (r *Recorder) Last() (Page, bool) {
	if len(r.Pages) == 0 {
		return Login, false
	}
	return r.Pages[len(r.Pages)-1], true
}
