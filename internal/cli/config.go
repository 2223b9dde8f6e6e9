package cli

import (
	"os"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/rosterapi"
)

// Config holds CLI configuration
type Config struct {
	APIURL  string
	WebURL  string
	Timeout time.Duration
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		APIURL:  getEnvOrDefault("ROSTER_API_URL", rosterapi.DefaultBaseURL),
		WebURL:  getEnvOrDefault("ROSTER_WEB_URL", "http://localhost:8080"),
		Timeout: rosterapi.DefaultTimeout,
		Output:  "text",
		Verbose: false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
