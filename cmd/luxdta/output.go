package main

import (
	"io"

	pflag "github.com/spf13/pflag"

	"github.com/arloliu/luxdta/dta"
	"github.com/arloliu/luxdta/export"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
)

func (a *app) addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "merge results into this JSON or YAML file instead of printing them")
	fs.StringVar(&a.cfg.Format, "format", a.cfg.Format, "format for printed results: json or yaml")
	fs.StringVar(&a.cfg.Compression, "compress", a.cfg.Compression, "compress the output file: none, zstd, s2 or lz4")
}

func (a *app) addDecodeFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&a.cfg.DropConstant, "drop-constant", a.cfg.DropConstant, "drop fields that never change across a file")
	fs.BoolVar(&a.cfg.StrictRecordLength, "strict", a.cfg.StrictRecordLength, "fail on 9003 files whose record length disagrees with the schema")
}

func (a *app) addConnectionFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.cfg.Host, "host", a.cfg.Host, "controller host name or address")
	fs.IntVar(&a.cfg.TCPPort, "tcp-port", a.cfg.TCPPort, "controller TCP port")
	fs.IntVar(&a.cfg.WSPort, "ws-port", a.cfg.WSPort, "controller WebSocket port")
	fs.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "timeout of one request")
	fs.StringVar(&a.cfg.Password, "password", a.cfg.Password, "WebSocket password")
}

func (a *app) decodeOptions() []dta.DecodeOption {
	opts := []dta.DecodeOption{dta.WithLogger(a.logger)}
	if a.cfg.DropConstant {
		opts = append(opts, dta.WithDropConstantFields())
	}
	if a.cfg.StrictRecordLength {
		opts = append(opts, dta.WithStrictRecordLength())
	}

	return opts
}

// emit merges series into the configured output file, or prints it to w
// when no output file is configured.
func (a *app) emit(w io.Writer, series sample.Series) error {
	path := a.cfg.OutputPath()
	if path == "" {
		format, err := export.ParseFormat(a.cfg.Format)
		if err != nil {
			return err
		}

		return export.Encode(w, series, format)
	}

	added, err := export.Merge(path, series)
	if err != nil {
		return err
	}
	a.logger.Info("merged samples",
		log.String("output", path),
		log.Int("added", added),
		log.Int("skipped", len(series)-added),
	)

	return nil
}
