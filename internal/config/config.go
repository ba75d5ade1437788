package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	PrefsBackendSQLite  = "sqlite"
	PrefsBackendSurreal = "surreal"
)

type Config struct {
	GitHubToken  string
	GitHubAPIURL string

	PrefsBackend string
	PrefsPath    string

	SurrealURL  string
	SurrealNS   string
	SurrealDB   string
	SurrealUser string
	SurrealPass string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),

		PrefsBackend: strings.ToLower(os.Getenv("PREFS_BACKEND")),
		PrefsPath:    os.Getenv("PREFS_PATH"),

		SurrealURL:  os.Getenv("SURREAL_URL"),
		SurrealNS:   os.Getenv("SURREAL_NS"),
		SurrealDB:   os.Getenv("SURREAL_DB"),
		SurrealUser: os.Getenv("SURREAL_USER"),
		SurrealPass: os.Getenv("SURREAL_PASS"),

		LLMBaseURL: os.Getenv("LLM_BASE_URL"),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   os.Getenv("LLM_MODEL"),

		LogLevel: os.Getenv("LOG_LEVEL"),
	}

	// The SDK appends /rpc automatically
	cfg.SurrealURL = strings.TrimSuffix(cfg.SurrealURL, "/rpc")
	cfg.SurrealURL = strings.TrimSuffix(cfg.SurrealURL, "/")

	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = "https://api.github.com"
	}
	if cfg.PrefsBackend == "" {
		cfg.PrefsBackend = PrefsBackendSQLite
	}
	if cfg.PrefsPath == "" {
		cfg.PrefsPath = defaultPrefsPath()
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = "https://api.openai.com/v1"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o-mini"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg
}

// SummariesEnabled reports whether an LLM key is configured.
func (c *Config) SummariesEnabled() bool {
	return c.LLMAPIKey != ""
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gh-user-search", "prefs.db")
}
