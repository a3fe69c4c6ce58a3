package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ndmitriev/memora/internal/flagx"
	"github.com/ndmitriev/memora/internal/timex"
)

// JsonConfig is the JSON-facing shape of the server configuration. It uses
// timex.Duration for interval fields so both "168h" and integer nanoseconds
// parse. After unmarshalling, its values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr            string         `json:"endpoint_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	EncryptionKey           string         `json:"encryption_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	AuthSessionDataURL      string         `json:"auth_session_data_url"`
	AuthLoginURL            string         `json:"auth_login_url"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
}

// parseJson overlays configuration values from a JSON file onto config.
// The file path comes from the -c/-config flags; when neither is set, no
// JSON file is loaded. Unreadable or invalid files cause a panic, since the
// server cannot run with half-applied configuration.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
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

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.EncryptionKey = c.EncryptionKey
	config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	config.AuthSessionDataURL = c.AuthSessionDataURL
	config.AuthLoginURL = c.AuthLoginURL
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
