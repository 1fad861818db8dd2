package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port           string
	BackendURL     string
	SessionBackend string // memory | sqlite | redis
	SessionDSN     string // sqlite file or redis address
	LogFile        string
	HTTPTimeout    time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:8080"
	}
	sessBackend := os.Getenv("SESSION_BACKEND")
	if sessBackend == "" {
		sessBackend = "sqlite"
	}
	sessDSN := os.Getenv("SESSION_DSN")
	if sessDSN == "" {
		switch sessBackend {
		case "sqlite":
			sessDSN = "storefront-sessions.db"
		case "redis":
			sessDSN = "localhost:6379"
		}
	}
	logFile := os.Getenv("LOG_FILE")

	timeout := 30 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	cfg := Config{
		Port:           port,
		BackendURL:     backend,
		SessionBackend: sessBackend,
		SessionDSN:     sessDSN,
		LogFile:        logFile,
		HTTPTimeout:    timeout,
	}
	log.Printf("[config] PORT=%s BACKEND_URL=%s SESSION_BACKEND=%s SESSION_DSN=%s HTTP_TIMEOUT=%s",
		cfg.Port, cfg.BackendURL, cfg.SessionBackend, cfg.SessionDSN, cfg.HTTPTimeout)
	return cfg
}
