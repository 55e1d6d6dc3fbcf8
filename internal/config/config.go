package config

import (
	"os"
)

type Config struct {
	AppPort string
	Env     string // "production" enables Secure cookies

	// External grading backend.
	BackendURL string

	// Cookie scope. Usually empty so cookies stay host-only.
	CookieDomain string

	// Directory of static pages. Empty disables page serving.
	WebDir string

	// Fallback store selection. Redis wins over SQLite; with neither
	// set an in-memory store is used.
	RedisAddr     string
	RedisPassword string
	SQLitePath    string
}

func Load() Config {
	cfg := Config{
		AppPort: getenv("APP_PORT", "3000"),
		Env:     getenv("APP_ENV", "development"),

		BackendURL: getenv("BACKEND_URL", "http://localhost:8000"),

		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
		WebDir:       os.Getenv("WEB_DIR"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
	}

	return cfg
}

// IsProduction reports whether the gateway runs in production mode.
// The cookie Secure attribute keys off this.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
