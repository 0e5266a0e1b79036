// Package config carga la configuración del API y del kiosk.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config del API de consulta (cmd/api).
type Config struct {
	Port     string
	Address  string
	Env      string
	LogLevel string
	LogFmt   string
	AppName  string

	// DatabaseDSN vacío => repos in-memory.
	DatabaseDSN     string
	DBCheckInterval time.Duration
	SeedDemoData    bool

	// Token bucket por IP para los endpoints de login.
	RateLimitPerSec  float64
	RateLimitBurst   int64
	MaxRequestBodyKB int64

	// Proxies cuyo X-Forwarded-For se cree. Vacío => se usa RemoteAddr.
	TrustedProxies []netip.Prefix
}

// Load lee un .env opcional y luego las variables de entorno.
// El .env no pisa variables ya definidas en el entorno.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "3000"),
		Address:          getEnv("ADDRESS", "0.0.0.0"),
		Env:              strings.ToLower(getEnv("ENV", "dev")),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFmt:           strings.ToLower(getEnv("LOG_FORMAT", "text")),
		AppName:          getEnv("APP_NAME", "ilac-otomasyon-api"),
		DatabaseDSN:      strings.TrimSpace(os.Getenv("DB_DSN")),
		DBCheckInterval:  getDurationEnv("DB_CHECK_INTERVAL", 30*time.Second),
		SeedDemoData:     getBoolEnv("SEED_DEMO_DATA", true),
		RateLimitPerSec:  getFloatEnv("RATE_LIMIT_PER_SEC", 1),
		RateLimitBurst:   getInt64Env("RATE_LIMIT_BURST", 10),
		MaxRequestBodyKB: getInt64Env("MAX_REQUEST_BODY_KB", 16),
	}

	proxies, err := parseTrustedProxies(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = proxies

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	if c.Address != "localhost" && net.ParseIP(c.Address) == nil {
		return fmt.Errorf("invalid ADDRESS: %q is not an IP address", c.Address)
	}
	if !slices.Contains([]string{"dev", "staging", "prod", "test"}, c.Env) {
		return fmt.Errorf("invalid ENV: %q", c.Env)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFmt) {
		return fmt.Errorf("invalid LOG_FORMAT: %q", c.LogFmt)
	}
	if c.DBCheckInterval < time.Second {
		return fmt.Errorf("invalid DB_CHECK_INTERVAL: must be at least 1s, got %s", c.DBCheckInterval)
	}
	if c.RateLimitPerSec <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_PER_SEC: must be positive")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("invalid RATE_LIMIT_BURST: must be at least 1")
	}
	if c.MaxRequestBodyKB < 1 || c.MaxRequestBodyKB > 1024 {
		return fmt.Errorf("invalid MAX_REQUEST_BODY_KB: must be between 1 and 1024")
	}
	return nil
}

// ListenAddr arma host:port para http.Server.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Address, c.Port)
}

func (c *Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "test"
}

// parseTrustedProxies lee una lista de CIDRs o IPs sueltas separadas por coma.
func parseTrustedProxies(raw string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			p, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy cidr %q: %w", part, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy ip %q: %w", part, err)
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("must be a number: %w", err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("must be between 1 and 65535")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt64Env(key string, def int64) int64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
