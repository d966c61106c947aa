package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/luxdta"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
)

func newDecodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode FILE...",
		Short: "Decode DTA files into a JSON or YAML time series",
		Long: `Decode one or more DTA files, compressed or not, and print the samples
ordered by time. With --output the samples are merged into that file; samples
whose time is already present there are kept as they are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var all sample.Series
			for _, path := range args {
				res, err := luxdta.DecodeFile(path, a.decodeOptions()...)
				if err != nil {
					return fmt.Errorf("decode %s: %w", path, err)
				}
				a.logger.Info("decoded file",
					log.String("path", path),
					log.String("version", res.Version.String()),
					log.Int("samples", len(res.Samples)),
				)
				all = append(all, res.Samples...)
			}

			return a.emit(cmd.OutOrStdout(), sample.Merge(nil, all))
		},
	}

	a.addOutputFlags(cmd.Flags())
	a.addDecodeFlags(cmd.Flags())

	return cmd
}
