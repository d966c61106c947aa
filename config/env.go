package config

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvHost     = "LUXDTA_HOST"
	EnvPassword = "LUXDTA_PASSWORD"
	EnvLogLevel = "LUXDTA_LOG_LEVEL"
)

// ApplyEnvConfig applies LUXDTA_* environment variables to cfg. They
// override file values but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newSetter(changed)

	s.setString("host", os.Getenv(EnvHost), &cfg.Host)
	s.setString("password", os.Getenv(EnvPassword), &cfg.Password)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
}
