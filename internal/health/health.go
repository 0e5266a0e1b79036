// Package health vigila la base de datos con un ping periódico (gocron) y
// sirve GET /health con el último resultado.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ilac-otomasyon/internal/metrics"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/go-co-op/gocron"
)

const pingTimeout = 2 * time.Second

// Estado de la base.
const (
	DatabaseUp     = "up"
	DatabaseDown   = "down"
	DatabaseMemory = "memory"
)

// Pinger lo cumple *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Status struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	CheckedAt time.Time `json:"checked_at"`
}

// Job es una tarea periódica extra (p.ej. limpiar buckets del rate limiter).
type Job struct {
	Name  string
	Every time.Duration
	Run   func()
}

type Monitor struct {
	db       Pinger
	interval time.Duration
	log      logger.Logger
	now      func() time.Time

	sched *gocron.Scheduler

	mu   sync.RWMutex
	last Status
}

// NewMonitor: db nil => backend en memoria, siempre sano.
func NewMonitor(db Pinger, interval time.Duration, log logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	m := &Monitor{
		db:       db,
		interval: interval,
		log:      log,
		now:      time.Now,
		sched:    gocron.NewScheduler(time.UTC),
	}
	m.last = Status{Status: "starting", Database: DatabaseDown}
	if db == nil {
		m.last.Database = DatabaseMemory
	}
	return m
}

// Check hace un ping ahora y guarda el resultado.
func (m *Monitor) Check(ctx context.Context) Status {
	st := Status{Status: "ok", Database: DatabaseMemory, CheckedAt: m.now().UTC()}

	if m.db != nil {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := m.db.PingContext(ctx); err != nil {
			st.Status = "degraded"
			st.Database = DatabaseDown
			m.log.Warn("database ping failed", map[string]any{"error": err})
		} else {
			st.Database = DatabaseUp
		}
		metrics.SetDatabaseUp(st.Database == DatabaseUp)
	}

	m.mu.Lock()
	prev := m.last.Database
	m.last = st
	m.mu.Unlock()

	if prev != st.Database {
		m.log.Info("database status changed", map[string]any{"from": prev, "to": st.Database})
	}
	return st
}

func (m *Monitor) Last() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

// Start agenda el ping y las tareas extra. El primer ping corre enseguida.
func (m *Monitor) Start(jobs ...Job) error {
	if _, err := m.sched.Every(m.interval).Do(func() { m.Check(context.Background()) }); err != nil {
		return fmt.Errorf("schedule db ping: %w", err)
	}
	for _, j := range jobs {
		if j.Every <= 0 || j.Run == nil {
			continue
		}
		if _, err := m.sched.Every(j.Every).Do(j.Run); err != nil {
			return fmt.Errorf("schedule %s: %w", j.Name, err)
		}
	}
	m.sched.StartAsync()
	return nil
}

func (m *Monitor) Stop() {
	m.sched.Stop()
}

// Handler godoc
// @Summary Estado del servicio
// @Description Último resultado del ping a la base de datos.
// @Tags health
// @Produce json
// @Success 200 {object} Status
// @Router /health [get]
func (m *Monitor) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(m.Last())
	}
}
