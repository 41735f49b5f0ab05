package config

import "time"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	SeedGames       bool
	CORS            CORSConfig
	Logging         LoggingConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		SeedGames:       boolEnvOrDefault(envSeedGames, defaultSeedGames),
		CORS:            loadCORS(),
		Logging:         loadLogging(),
		Metrics:         loadMetrics(),
	}
}
