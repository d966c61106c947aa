package dta

import (
	"github.com/arloliu/luxdta/internal/options"
	"github.com/arloliu/luxdta/log"
)

type decodeConfig struct {
	logger             log.Logger
	dropConstant       bool
	strictRecordLength bool
}

func defaultDecodeConfig() *decodeConfig {
	return &decodeConfig{logger: log.NewNoopLogger()}
}

// DecodeOption configures a decode call.
type DecodeOption = options.Option[*decodeConfig]

// WithLogger sets the logger receiving decode diagnostics.
func WithLogger(logger log.Logger) DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithDropConstantFields removes fields whose value never changes across
// the decoded series. The time field is always kept.
func WithDropConstantFields() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.dropConstant = true
	})
}

// WithStrictRecordLength makes a 9003 decode fail when the declared record
// length disagrees with the bytes its schema consumes. By default the
// declared length is ignored and records are read at the schema width.
func WithStrictRecordLength() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.strictRecordLength = true
	})
}
