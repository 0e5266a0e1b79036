package main

import (
	"context"

	"ilac-otomasyon/internal/kiosk/gateway"
	"ilac-otomasyon/internal/kiosk/lookup"
	"ilac-otomasyon/internal/kiosk/notify"
	"ilac-otomasyon/internal/kiosk/review"
	"ilac-otomasyon/internal/kiosk/selection"
	"ilac-otomasyon/internal/kiosk/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func runKiosk(cmd *cobra.Command, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	db, _, store, err := openSession(ctx, cfg, log)
	if err != nil {
		log.Error("open session db failed", map[string]any{"error": err, "path": cfg.SessionDB})
		return err
	}
	defer db.Close()

	client, err := lookup.New(cfg.APIURL, cfg.KioskID, cfg.RequestTimeout)
	if err != nil {
		return err
	}

	presenter := notify.NewPresenter(cfg.NotificationTTL)
	defer presenter.Close()
	navigator := tui.NewNavigator()

	deps := tui.Deps{
		Ctx:           ctx,
		Gateway:       gateway.New(client, store, presenter, navigator, log),
		Review:        review.NewWorkflow(store, presenter, navigator, log),
		Selection:     selection.NewForm(selection.DefaultSlots, selection.Catalog, presenter, log),
		Notifications: presenter,
		Navigator:     navigator,
		Dark:          f.dark,
	}

	log.Info("kiosk started", map[string]any{"api_url": cfg.APIURL})
	if _, err := tea.NewProgram(tui.New(deps), tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		log.Error("tui exited with error", map[string]any{"error": err})
		return err
	}
	log.Info("kiosk stopped", nil)
	return nil
}
