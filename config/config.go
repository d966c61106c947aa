package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/arloliu/luxdta/compress"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/export"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/transport"
)

// Config holds the CLI configuration of luxdta.
type Config struct {
	Host     string
	TCPPort  int
	WSPort   int
	Timeout  time.Duration
	Password string

	LogLevel string

	Output      string
	Format      string
	Compression string

	DropConstant       bool
	StrictRecordLength bool

	WatchDir string
	Settle   time.Duration
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		TCPPort:  transport.DefaultTCPPort,
		WSPort:   transport.DefaultWSPort,
		Timeout:  transport.DefaultTimeout,
		LogLevel: "info",
		Format:   "json",
		Settle:   500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := checkPort("tcp-port", c.TCPPort); err != nil {
		return err
	}
	if err := checkPort("ws-port", c.WSPort); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", errs.ErrInvalidConfig)
	}
	if c.Settle < 0 {
		return fmt.Errorf("%w: settle must not be negative", errs.ErrInvalidConfig)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	if _, err := compress.ParseType(c.Compression); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	return nil
}

// TCPAddr returns the host:port of the live TCP interface.
func (c *Config) TCPAddr() string {
	return joinHostPort(c.Host, c.TCPPort)
}

// WSAddr returns the host:port of the WebSocket interface.
func (c *Config) WSAddr() string {
	return joinHostPort(c.Host, c.WSPort)
}

// OutputPath returns Output with the extension of the configured compression
// appended, unless Output already names a compressed file.
func (c *Config) OutputPath() string {
	if c.Output == "" || compress.Detect(c.Output) != format.CompressionNone {
		return c.Output
	}
	ct, err := compress.ParseType(c.Compression)
	if err != nil {
		return c.Output
	}

	return c.Output + compress.Extension(ct)
}

// Redacted returns a copy with the password masked, for logging.
func (c Config) Redacted() Config {
	if c.Password != "" {
		c.Password = "*****"
	}

	return c
}

func checkPort(name string, port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%w: %s %d out of range", errs.ErrInvalidConfig, name, port)
	}

	return nil
}

func joinHostPort(host string, port int) string {
	if host == "" {
		return ""
	}

	return net.JoinHostPort(host, strconv.Itoa(port))
}

// setter applies configuration values while respecting flag precedence.
// It only applies values whose flag has not been set explicitly.
type setter struct {
	changed map[string]bool
}

func newSetter(changed map[string]bool) *setter {
	return &setter{changed: changed}
}

func (s *setter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *setter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *setter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: parse %s: %w", errs.ErrInvalidConfig, flag, err)
	}
	*dst = d

	return nil
}

func (s *setter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// FileExists reports whether p exists.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
