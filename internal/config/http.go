package config

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORS() CORSConfig {
	return CORSConfig{
		AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
	}
}
