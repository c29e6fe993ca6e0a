package config

import "time"

// Config holds runtime settings for the selfcare terminal client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the portal gRPC endpoint.
//   - DatabaseDSN: path of the local sqlite cache.
//   - RefreshMargin: how long before access-token expiry the silent
//     refresh fires.
//   - IdleTimeout: inactivity budget before the session is ended.
//   - WarningDuration: how long before the idle timeout the countdown
//     warning is shown.
type Config struct {
	ServerEndpointAddr string
	DatabaseDSN        string
	RefreshMargin      time.Duration
	IdleTimeout        time.Duration
	WarningDuration    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabaseDSN = "selfcare.db"
	c.RefreshMargin = time.Minute
	c.IdleTimeout = 10 * time.Minute
	c.WarningDuration = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
