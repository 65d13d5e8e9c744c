package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all rake configuration. Values come from environment
// variables with sensible defaults; the CLI layers flag overrides on top.
type Config struct {
	Input  string // raw inventory CSV path
	OutDir string // directory receiving all generated files

	// Escalation. Both UseLLM and a non-empty APIKey are required for the
	// remote classifier to be consulted.
	UseLLM      bool
	APIKey      string
	LLMEndpoint string // empty means the provider default
	LLMModel    string
	LLMTimeout  time.Duration

	DictPath   string // optional YAML dictionary overlay
	Workers    int    // worker pool size for row processing
	SQLitePath string // optional SQLite mirror; empty disables
	LogLevel   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Input:       getenv("RAKE_INPUT", "inventory_raw.csv"),
		OutDir:      getenv("RAKE_OUTDIR", "."),
		UseLLM:      getenvBool("RAKE_USE_LLM", false),
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		LLMEndpoint: os.Getenv("RAKE_LLM_ENDPOINT"),
		LLMModel:    getenv("RAKE_LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:  getenvDuration("RAKE_LLM_TIMEOUT", 8*time.Second),
		DictPath:    os.Getenv("RAKE_DICT_PATH"),
		Workers:     getenvInt("RAKE_WORKERS", 4),
		SQLitePath:  os.Getenv("RAKE_SQLITE_PATH"),
		LogLevel:    getenv("RAKE_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
