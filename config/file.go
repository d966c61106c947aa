package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arloliu/luxdta/errs"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Host     string `toml:"host"`
	TCPPort  int    `toml:"tcp_port"`
	WSPort   int    `toml:"ws_port"`
	Timeout  string `toml:"timeout"`
	Password string `toml:"password"`

	LogLevel string `toml:"log_level"`

	Output      string `toml:"output"`
	Format      string `toml:"format"`
	Compression string `toml:"compression"`

	DropConstant       *bool `toml:"drop_constant"`
	StrictRecordLength *bool `toml:"strict_record_length"`

	WatchDir string `toml:"watch_dir"`
	Settle   string `toml:"settle"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// Unknown keys are rejected.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, fmt.Errorf("%w: %s: %w", errs.ErrInvalidConfig, path, err)
	}

	return fc, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/luxdta/config.toml, or the
// platform equivalent. It returns "" when no config directory is known.
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "luxdta", "config.toml")
	}

	return ""
}

// ApplyFileConfig applies configuration from a file to cfg.
// Values whose flag appears in changed are left untouched.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newSetter(changed)

	s.setString("host", fc.Host, &cfg.Host)
	s.setString("password", fc.Password, &cfg.Password)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("compress", fc.Compression, &cfg.Compression)
	s.setString("watch-dir", fc.WatchDir, &cfg.WatchDir)

	s.setInt("tcp-port", fc.TCPPort, &cfg.TCPPort)
	s.setInt("ws-port", fc.WSPort, &cfg.WSPort)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("settle", fc.Settle, &cfg.Settle); err != nil {
		return err
	}

	s.setBool("drop-constant", fc.DropConstant, &cfg.DropConstant)
	s.setBool("strict", fc.StrictRecordLength, &cfg.StrictRecordLength)

	return nil
}
