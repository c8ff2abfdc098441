package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultAddr           = ":8080"
	defaultBackendBaseURL = "http://localhost:4000"
	defaultRequestTimeout = "10s"
	defaultAppEnv         = "dev"
)

type Config struct {
	AppEnv         string
	Addr           string
	BackendBaseURL string
	RequestTimeout time.Duration
	CORSOrigins    []string
}

func Load() *Config {
	cfg := &Config{
		AppEnv:         strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		Addr:           getEnv("ADDR", defaultAddr),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", defaultBackendBaseURL),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", defaultRequestTimeout),
	}

	// Local dev UI origins by default; extend via env.
	// Example: CORS_ALLOWED_ORIGINS=https://app.example.com,https://admin.example.com
	cfg.CORSOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
