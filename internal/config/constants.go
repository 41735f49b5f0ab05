package config

import "time"

const (
	envPort            = "PORT"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envSeedGames       = "SEED_GAMES"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultShutdownTimeout = 10 * time.Second
	defaultSeedGames       = true
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "games-catalog-service"
)
