// Package gateway es el formulario de entrada del kiosk: código de receta
// o número de identidad, nunca ambos ni ninguno.
package gateway

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"ilac-otomasyon/internal/kiosk/lookup"
	"ilac-otomasyon/internal/kiosk/nav"
	"ilac-otomasyon/internal/kiosk/notify"
	"ilac-otomasyon/internal/kiosk/session"
	"ilac-otomasyon/internal/platform/logger"
)

const (
	MsgBothOrNeither = "Lütfen ya kod ya da TC girin, ikisini birlikte doldurmayın."
	MsgGeneric       = "Sunucu hatası, lütfen tekrar deneyin."
	MsgEmptyReport   = "Lütfen önce sorun/isteğinizi yazın."
	msgReportPrefix  = "Şikayetiniz iletildi: "
)

var (
	ErrValidation = errors.New("invalid form input")
	ErrBusy       = errors.New("a submission is already in flight")
)

// Lookup es lo que el gateway necesita del servicio de consulta.
type Lookup interface {
	LoginPrescription(ctx context.Context, code string) ([]session.Drug, error)
	LoginWithoutPrescription(ctx context.Context, id string) error
}

type Gateway struct {
	lookup   Lookup
	store    session.Store
	notifier notify.Notifier
	nav      nav.Navigator
	log      logger.Logger

	inFlight atomic.Bool
}

func New(l Lookup, store session.Store, notifier notify.Notifier, navigator nav.Navigator, log logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		lookup:   l,
		store:    store,
		notifier: notifier,
		nav:      navigator,
		log:      log,
	}
}

// Busy indica si hay un envío en curso; la TUI deshabilita el botón mientras tanto.
func (g *Gateway) Busy() bool {
	return g.inFlight.Load()
}

// Submit valida el formulario y hace exactamente un request, sin reintentos.
// Validación => aviso y ningún request. Rechazo del servicio => su mensaje.
// Cualquier otro fallo => MsgGeneric. En error nunca se navega.
func (g *Gateway) Submit(ctx context.Context, code, id string) error {
	code = strings.TrimSpace(code)
	id = strings.TrimSpace(id)

	if (code == "") == (id == "") {
		g.notifier.Notify(notify.Warning, MsgBothOrNeither)
		return ErrValidation
	}

	if !g.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer g.inFlight.Store(false)

	if code != "" {
		return g.withPrescription(ctx, code)
	}
	return g.withoutPrescription(ctx, id)
}

func (g *Gateway) withPrescription(ctx context.Context, code string) error {
	drugs, err := g.lookup.LoginPrescription(ctx, code)
	if err != nil {
		g.fail("prescription", err)
		return err
	}

	if err := g.store.Save(ctx, drugs); err != nil {
		g.log.Error("session save failed", map[string]any{"error": err})
	}
	g.log.Info("prescription login ok", map[string]any{"drugs": len(drugs)})
	g.nav.Navigate(nav.Review)
	return nil
}

func (g *Gateway) withoutPrescription(ctx context.Context, id string) error {
	if err := g.lookup.LoginWithoutPrescription(ctx, id); err != nil {
		g.fail("without_prescription", err)
		return err
	}

	g.log.Info("identity login ok", nil)
	g.nav.Navigate(nav.DrugSelection)
	return nil
}

func (g *Gateway) fail(mode string, err error) {
	var rejected *lookup.Error
	if errors.As(err, &rejected) {
		g.log.Info("login rejected", map[string]any{"mode": mode, "status": rejected.Status})
		g.notifier.Notify(notify.Error, rejected.Message)
		return
	}

	g.log.Warn("lookup failed", map[string]any{"mode": mode, "error": err})
	g.notifier.Notify(notify.Error, MsgGeneric)
}

// Report es el buzón de quejas de la página de entrada.
func (g *Gateway) Report(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		g.notifier.Notify(notify.Warning, MsgEmptyReport)
		return ErrValidation
	}

	g.log.Info("complaint received", map[string]any{"text": text})
	g.notifier.Notify(notify.Success, msgReportPrefix+text)
	return nil
}
