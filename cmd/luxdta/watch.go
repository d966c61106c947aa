package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/luxdta"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/internal/watcher"
	"github.com/arloliu/luxdta/log"
)

func newWatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [DIR]",
		Short: "Decode DTA dumps as they appear in a directory",
		Long: `Watch a directory and decode every DTA dump written into it, merging the
samples into the --output file. Because a controller's ring buffer overlaps
from one dump to the next, samples already present in the output are kept
and only new times are added. Runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.WatchDir = args[0]
			}
			if a.cfg.WatchDir == "" {
				return fmt.Errorf("%w: a directory to watch is required", errs.ErrInvalidConfig)
			}
			if a.cfg.OutputPath() == "" {
				return fmt.Errorf("%w: --output is required", errs.ErrInvalidConfig)
			}

			w, err := watcher.New(a.cfg.WatchDir, a.handleDump,
				watcher.WithLogger(a.logger),
				watcher.WithSettle(a.cfg.Settle),
			)
			if err != nil {
				return err
			}

			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&a.cfg.WatchDir, "watch-dir", a.cfg.WatchDir, "directory to watch")
	cmd.Flags().DurationVar(&a.cfg.Settle, "settle", a.cfg.Settle, "quiet period before a changed file is decoded")
	a.addOutputFlags(cmd.Flags())
	a.addDecodeFlags(cmd.Flags())

	return cmd
}

func (a *app) handleDump(_ context.Context, path string) error {
	res, err := luxdta.DecodeFile(path, a.decodeOptions()...)
	if err != nil {
		return err
	}
	a.logger.Info("decoded dump",
		log.String("path", path),
		log.String("version", res.Version.String()),
		log.Int("samples", len(res.Samples)),
	)

	return a.emit(nil, res.Samples)
}
