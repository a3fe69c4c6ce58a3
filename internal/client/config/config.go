// Package config handles configuration for the client component.
package config

import "time"

// Config holds runtime settings for the Memora client. RedirectURL is the
// post-login URL pasted back from the browser; it carries the one-time
// session credential in its fragment.
type Config struct {
	ServerBaseURL  string
	RedirectURL    string
	RequestTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8081"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
