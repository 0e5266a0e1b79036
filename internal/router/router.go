package router

import (
	"database/sql"
	"net/http"
	"net/netip"

	_ "ilac-otomasyon/docs"
	mem "ilac-otomasyon/internal/adapters/storage/memory"
	pg "ilac-otomasyon/internal/adapters/storage/postgres"
	"ilac-otomasyon/internal/domain/patients"
	"ilac-otomasyon/internal/domain/prescriptions"
	"ilac-otomasyon/internal/health"
	"ilac-otomasyon/internal/metrics"
	"ilac-otomasyon/internal/middleware"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultMaxBodyKB = 16

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
	// SeedDemoData carga recetas/pacientes de demo en los repos in-memory.
	SeedDemoData bool

	// Repos explícitos (tests); pisan a DB.
	Prescriptions prescriptions.Repository
	Patients      patients.Repository

	Logger      logger.Logger
	Health      *health.Monitor
	RateLimiter *middleware.RateLimiter // nil => sin límite
	MaxBodyKB   int64

	// Solo desde estos proxies se cree X-Forwarded-For / X-Real-IP.
	TrustedProxies []netip.Prefix
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	monitor := opts.Health
	if monitor == nil {
		var pinger health.Pinger
		if opts.DB != nil {
			pinger = opts.DB
		}
		monitor = health.NewMonitor(pinger, 0, log)
	}
	maxBody := opts.MaxBodyKB
	if maxBody <= 0 {
		maxBody = defaultMaxBodyKB
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RealIP(opts.TrustedProxies))
	r.Use(middleware.Recover(log))
	r.Use(middleware.KioskContext)
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Metrics)

	r.Get("/health", monitor.Handler())
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	prescRepo, patientRepo := repositories(opts)

	// Services por módulo
	prescSvc := prescriptions.NewService(prescRepo)
	patientSvc := patients.NewService(patientRepo)

	// Rutas de login: limitadas por IP y con cuerpo acotado
	r.Group(func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Handler)
		}
		r.Use(middleware.MaxBody(maxBody))

		prescriptions.RegisterRoutes(r, prescSvc, log)
		patients.RegisterRoutes(r, patientSvc, log)
	})

	return r
}

func repositories(opts Options) (prescriptions.Repository, patients.Repository) {
	prescRepo, patientRepo := opts.Prescriptions, opts.Patients

	if opts.DB != nil {
		if prescRepo == nil {
			prescRepo = pg.NewPrescriptionsRepo(opts.DB)
		}
		if patientRepo == nil {
			patientRepo = pg.NewPatientsRepo(opts.DB)
		}
		return prescRepo, patientRepo
	}

	if prescRepo == nil {
		if opts.SeedDemoData {
			prescRepo = mem.NewPrescriptionsRepo(mem.DemoDrugs()...)
		} else {
			prescRepo = mem.NewPrescriptionsRepo()
		}
	}
	if patientRepo == nil {
		if opts.SeedDemoData {
			patientRepo = mem.NewPatientsRepo(mem.DemoPatients()...)
		} else {
			patientRepo = mem.NewPatientsRepo()
		}
	}
	return prescRepo, patientRepo
}
