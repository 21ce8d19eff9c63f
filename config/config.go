/*
config.go - Process configuration

PURPOSE:
  Loads server configuration from environment variables with sensible
  defaults, so the binary runs with zero setup in development and is
  fully configurable in deployment.

ENVIRONMENT VARIABLES:
  PORT             HTTP server port (default: 8080)
  DB_PATH          SQLite database path (default: payroll.db)
                   Use ":memory:" for an in-memory database
  ALLOWED_ORIGINS  Comma-separated CORS origins
                   (default: http://localhost:5173,http://localhost:8080)

SEE ALSO:
  - cmd/server/main.go: Startup sequence
  - api/server.go: Router and CORS wiring
*/
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the process-level settings for the server binary.
type Config struct {
	Port           int      `env:"PORT" env-default:"8080"`
	DBPath         string   `env:"DB_PATH" env-default:"payroll.db"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:8080"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
