package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ilac-otomasyon/internal/adapters/storage/sqlite"
	"ilac-otomasyon/internal/config"
	"ilac-otomasyon/internal/kiosk/session"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/spf13/cobra"
)

// flags de la línea de comandos; pisan al YAML solo si se usaron.
type flags struct {
	configPath      string
	apiURL          string
	sessionDB       string
	logFile         string
	logLevel        string
	kioskID         string
	requestTimeout  time.Duration
	notificationTTL time.Duration
	dark            bool
}

func newRootCmd(f *flags) *cobra.Command {
	def := config.DefaultKiosk()

	root := &cobra.Command{
		Use:           "kiosk",
		Short:         "Kiosk de dispensación de medicamentos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKiosk(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "archivo YAML de configuración")
	pf.StringVar(&f.apiURL, "api-url", def.APIURL, "URL base del servicio de consulta")
	pf.StringVar(&f.sessionDB, "session-db", def.SessionDB, "archivo SQLite con la sesión del paciente")
	pf.StringVar(&f.logFile, "log-file", def.LogFile, "archivo de log (stdout lo usa la interfaz)")
	pf.StringVar(&f.logLevel, "log-level", def.LogLevel, "debug|info|warn|error")
	pf.StringVar(&f.kioskID, "kiosk-id", def.KioskID, "identificador enviado en X-Kiosk-ID")
	pf.DurationVar(&f.requestTimeout, "request-timeout", def.RequestTimeout, "timeout de cada consulta")
	pf.DurationVar(&f.notificationTTL, "notification-ttl", def.NotificationTTL, "tiempo en pantalla de cada aviso")
	root.Flags().BoolVar(&f.dark, "dark", false, "arrancar con el tema oscuro")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Abrir la interfaz del kiosk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKiosk(cmd, f)
		},
	}
	runCmd.Flags().BoolVar(&f.dark, "dark", false, "arrancar con el tema oscuro")

	root.AddCommand(runCmd, newSessionCmd(f))
	return root
}

// resolveConfig aplica defaults -> YAML -> flags cambiados.
func resolveConfig(cmd *cobra.Command, f *flags) (config.Kiosk, error) {
	cfg := config.DefaultKiosk()
	if err := config.LoadKioskFile(f.configPath, &cfg); err != nil {
		return cfg, err
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("api-url") {
		cfg.APIURL = f.apiURL
	}
	if changed("session-db") {
		cfg.SessionDB = f.sessionDB
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("kiosk-id") {
		cfg.KioskID = f.kioskID
	}
	if changed("request-timeout") {
		cfg.RequestTimeout = f.requestTimeout
	}
	if changed("notification-ttl") {
		cfg.NotificationTTL = f.notificationTTL
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("kiosk config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Kiosk) (logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:      logger.ParseLevel(cfg.LogLevel),
		Format:     logger.FormatJSON,
		App:        "ilac-kiosk",
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}
	return log.With(map[string]any{"kiosk_id": cfg.KioskID}), nil
}

// openSession abre la base local y devuelve el repo crudo y el store de sesión.
func openSession(ctx context.Context, cfg config.Kiosk, log logger.Logger) (*sql.DB, *sqlite.KVRepo, *session.KVStore, error) {
	db, err := sqlite.Open(ctx, cfg.SessionDB)
	if err != nil {
		return nil, nil, nil, err
	}
	repo := sqlite.NewKVRepo(db)
	return db, repo, session.NewKVStore(repo, log), nil
}
