package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the exporter.
type Config struct {
	// ResultsDir is the directory the test runner writes *-result.json
	// files into.
	ResultsDir string
	// Port is the HTTP listen port.
	Port int
}

// Load reads configuration from the environment, after a best-effort load of
// a local .env file. Both settings have defaults, so Load always succeeds;
// unparseable values fall back to their defaults.
func Load() *Config {
	// Missing .env is the normal case in containers; ignore the error.
	_ = godotenv.Load()

	return &Config{
		ResultsDir: envString("RESULTS_DIR", "/results"),
		Port:       envInt("PORT", 8080),
	}
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
