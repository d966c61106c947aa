package transport

import (
	"fmt"
	"time"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/internal/options"
	"github.com/arloliu/luxdta/log"
)

// Default endpoints of the controller.
const (
	DefaultTCPPort = 8889
	DefaultWSPort  = 8214

	DefaultTimeout = 10 * time.Second

	// maxVectorLength bounds the length word of a read reply.
	maxVectorLength = 1 << 16
)

type clientConfig struct {
	logger  log.Logger
	timeout time.Duration
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		logger:  log.NewNoopLogger(),
		timeout: DefaultTimeout,
	}
}

// Option configures a TCP or WebSocket client.
type Option = options.Option[*clientConfig]

// WithLogger sets the logger receiving connection diagnostics.
func WithLogger(logger log.Logger) Option {
	return options.NoError(func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithTimeout bounds every request/reply exchange that runs under a context
// without deadline. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return options.New(func(c *clientConfig) error {
		if d < 0 {
			return fmt.Errorf("%w: negative timeout %s", errs.ErrInvalidConfig, d)
		}
		c.timeout = d

		return nil
	})
}

func newClientConfig(opts []Option) (*clientConfig, error) {
	return options.Build(defaultClientConfig, opts...)
}
