package config

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	Enabled     bool   `env:"SEMANA_OTEL_ENABLED" default:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" default:"semana"`
}
