package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/northlink/selfcare/internal/flagx"
	"github.com/northlink/selfcare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	RefreshMargin      timex.Duration `json:"refresh_margin"`
	IdleTimeout        timex.Duration `json:"idle_timeout"`
	WarningDuration    timex.Duration `json:"warning_duration"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given the function is a no-op. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RefreshMargin.Duration > 0 {
		cfg.RefreshMargin = time.Duration(jc.RefreshMargin.Duration)
	}
	if jc.IdleTimeout.Duration > 0 {
		cfg.IdleTimeout = time.Duration(jc.IdleTimeout.Duration)
	}
	if jc.WarningDuration.Duration > 0 {
		cfg.WarningDuration = time.Duration(jc.WarningDuration.Duration)
	}
}
