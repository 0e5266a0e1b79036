package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Kiosk es la configuración del front end (cmd/kiosk).
// Orden: defaults -> archivo YAML opcional -> flags de cobra.
type Kiosk struct {
	APIURL          string        `yaml:"api_url"`
	SessionDB       string        `yaml:"session_db"`
	LogFile         string        `yaml:"log_file"`
	LogLevel        string        `yaml:"log_level"`
	KioskID         string        `yaml:"kiosk_id"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	NotificationTTL time.Duration `yaml:"notification_ttl"`
}

func DefaultKiosk() Kiosk {
	host, _ := os.Hostname()
	return Kiosk{
		APIURL:          "http://127.0.0.1:3000",
		SessionDB:       "kiosk.db",
		LogFile:         "kiosk.log",
		LogLevel:        "info",
		KioskID:         host,
		RequestTimeout:  10 * time.Second,
		NotificationTTL: 3 * time.Second,
	}
}

// LoadKioskFile superpone un YAML sobre cfg. Campos ausentes no se tocan.
func LoadKioskFile(path string, cfg *Kiosk) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read kiosk config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse kiosk config %s: %w", path, err)
	}
	return nil
}

func (k Kiosk) Validate() error {
	u, err := url.ParseRequestURI(k.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid api_url: %q", k.APIURL)
	}
	if strings.TrimSpace(k.SessionDB) == "" {
		return fmt.Errorf("session_db cannot be empty")
	}
	if k.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout cannot be negative")
	}
	if k.NotificationTTL <= 0 {
		return fmt.Errorf("notification_ttl must be positive")
	}
	return nil
}
