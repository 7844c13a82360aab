package config

import "time"

// HTTPConfig holds HTTP server configuration. Zero timeouts and sizes
// fall back to the infrastructure defaults.
type HTTPConfig struct {
	Host              string        `env:"SEMANA_HTTP_HOST"`
	Port              string        `env:"SEMANA_HTTP_PORT" default:"8080"`
	ReadTimeout       time.Duration `env:"SEMANA_HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"SEMANA_HTTP_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"SEMANA_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"SEMANA_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes    int           `env:"SEMANA_HTTP_MAX_HEADER_BYTES"`
	MaxBodyBytes      int64         `env:"SEMANA_HTTP_MAX_BODY_BYTES"`

	// APIToken enables static bearer-token auth on the API routes when
	// non-empty. The health endpoint stays open.
	APIToken string `env:"SEMANA_API_TOKEN"`
}
