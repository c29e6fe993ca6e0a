package config

import (
	"encoding/json"
	"os"

	"github.com/northlink/selfcare/internal/flagx"
	"github.com/northlink/selfcare/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. Interval fields use
// timex.Duration so both "15m" strings and integer nanoseconds parse.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC               string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                    string         `json:"database_dsn"`
	SecretKey                      string         `json:"secret_key"`
	AccessTokenValidityDuration    timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration   timex.Duration `json:"refresh_token_validity_duration"`
	RememberDeviceValidityDuration timex.Duration `json:"remember_device_validity_duration"`
	S3RootUser                     string         `json:"s3_root_user"`
	S3RootPassword                 string         `json:"s3_root_password"`
	S3Bucket                       string         `json:"s3_bucket"`
	S3Region                       string         `json:"s3_region"`
	S3BaseEndpoint                 string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If no flag is set, nothing is
// loaded. If the file cannot be read or parsed, the function panics.
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

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.RememberDeviceValidityDuration = c.RememberDeviceValidityDuration.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
