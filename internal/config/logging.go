package config

// LoggingConfig selects log level and output format (text or json).
type LoggingConfig struct {
	Level  string
	Format string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
