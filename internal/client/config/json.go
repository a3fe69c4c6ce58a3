package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ndmitriev/memora/internal/flagx"
	"github.com/ndmitriev/memora/internal/timex"
)

// JsonConfig is the JSON-facing shape of the client configuration.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays configuration values from a JSON file onto config.
// The file path comes from the -c/-config flags.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerBaseURL = c.ServerBaseURL
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
