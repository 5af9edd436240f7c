package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries every external setting the application needs. It is built
// once at startup and injected; business logic never reads the environment
// directly.
type Config struct {
	Port        string
	PostgresURL string

	// AIProvider selects the generative model backend: "gemini" (default)
	// or "openai".
	AIProvider   string
	AIModel      string
	GeminiAPIKey string
	OpenAIAPIKey string
}

// ModelAPIKey returns the credential for the selected provider. An empty
// value is not fatal at load time; the generation pipeline reports a
// configuration error on first use instead of preventing startup.
func (c Config) ModelAPIKey() string {
	if c.AIProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func Load() Config {
	// Best-effort: a .env file is a dev convenience, not a requirement.
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault("PORT", "8080"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		AIProvider:   envOrDefault("AI_PROVIDER", "gemini"),
		AIModel:      os.Getenv("AI_MODEL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
