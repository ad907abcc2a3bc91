package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DataDir string

	JWTSecretKey         string
	JWTSessionExpiration string

	AdvisoryBaseURL  string
	AdvisoryAPIKey   string
	AdvisoryModel    string
	AdvisoryDebounce string
	AdvisoryTimeout  string

	FrontendURL string
}

func Load() (*Config, error) {
	// Best effort, environment variables may come from the process itself.
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:  getEnv("APP_PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataDir: getEnv("DATA_DIR", "./data"),

		JWTSecretKey:         getEnv("JWT_SECRET_KEY", ""),
		JWTSessionExpiration: getEnv("JWT_SESSION_EXPIRATION_TIME", "24h"),

		AdvisoryBaseURL:  getEnv("ADVISORY_BASE_URL", "https://generativelanguage.googleapis.com"),
		AdvisoryAPIKey:   getEnv("ADVISORY_API_KEY", ""),
		AdvisoryModel:    getEnv("ADVISORY_MODEL", "gemini-2.0-flash"),
		AdvisoryDebounce: getEnv("ADVISORY_DEBOUNCE", "800ms"),
		AdvisoryTimeout:  getEnv("ADVISORY_TIMEOUT", "15s"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
