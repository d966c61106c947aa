// Package config holds the configuration of the luxdta command.
//
// Values come from three layers. Explicitly set command-line flags win,
// LUXDTA_* environment variables come next, then the TOML file, and finally
// the defaults of Default:
//
//	cfg := config.Default()
//	// bind flags to cfg, parse them, collect the changed flag names
//	fc, err := config.LoadFileConfig(config.DefaultConfigPath())
//	err = config.ApplyFileConfig(&cfg, fc, changed)
//	config.ApplyEnvConfig(&cfg, changed)
//	err = cfg.Validate()
//
// A config file looks like:
//
//	host = "192.168.1.50"
//	timeout = "5s"
//	output = "/var/lib/luxdta/history.json.zst"
//	drop_constant = true
package config
