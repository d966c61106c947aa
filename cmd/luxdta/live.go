package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/live"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/transport"
)

var vectorNames = map[string]*live.Vector{
	"parameters":   live.Parameters(),
	"calculations": live.Calculations(),
	"visibilities": live.Visibilities(),
}

func newLiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Read or write the live values of a controller",
	}
	a.addConnectionFlags(cmd.PersistentFlags())

	cmd.AddCommand(newLiveReadCommand(a), newLiveWriteCommand(a))

	return cmd
}

func newLiveReadCommand(a *app) *cobra.Command {
	var useWS bool

	cmd := &cobra.Command{
		Use:   "read [parameters|calculations|visibilities]...",
		Short: "Read live vectors and print them as one sample",
		Long: `Read one or more live vectors over TCP and print them as a single sample
stamped with the current time. Without arguments the Calculations vector is
read. With --ws the WebSocket interface is used instead, which returns the
values of the Information menu as text.`,
		ValidArgs: []string{"parameters", "calculations", "visibilities"},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireHost(); err != nil {
				return err
			}

			var (
				s   *sample.Sample
				err error
			)
			if useWS {
				s, err = a.readWS(cmd.Context())
			} else {
				s, err = a.readTCP(cmd.Context(), args)
			}
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), sample.Series{s})
		},
	}
	cmd.Flags().BoolVar(&useWS, "ws", false, "read over the WebSocket interface")
	a.addOutputFlags(cmd.Flags())

	return cmd
}

func newLiveWriteCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write NAME=VALUE...",
		Short: "Write Parameters values",
		Long: `Write one or more Parameters fields. Selection fields take their label,
for example ID_Ba_Hz_akt=Automatic. Every assignment is checked before the
first write is sent; if any of them fails nothing is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireHost(); err != nil {
				return err
			}

			reqs, err := encodeAssignments(live.Parameters(), args)
			if err != nil {
				return err
			}

			client, err := transport.Dial(cmd.Context(), a.cfg.TCPAddr(), a.transportOptions()...)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Write(cmd.Context(), reqs...); err != nil {
				return err
			}
			a.logger.Info("parameters written", log.Int("count", len(reqs)))

			return nil
		},
	}

	return cmd
}

func encodeAssignments(v *live.Vector, exprs []string) ([]live.WriteRequest, error) {
	assignments := make([]live.Assignment, 0, len(exprs))
	for _, expr := range exprs {
		asg, err := v.ParseAssignment(expr)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, asg)
	}

	return v.EncodeBatch(assignments)
}

func (a *app) requireHost() error {
	if a.cfg.Host == "" {
		return fmt.Errorf("%w: --host is required", errs.ErrInvalidConfig)
	}

	return nil
}

func (a *app) transportOptions() []transport.Option {
	return []transport.Option{
		transport.WithLogger(a.logger),
		transport.WithTimeout(a.cfg.Timeout),
	}
}

func (a *app) readTCP(ctx context.Context, names []string) (*sample.Sample, error) {
	if len(names) == 0 {
		names = []string{"calculations"}
	}

	client, err := transport.Dial(ctx, a.cfg.TCPAddr(), a.transportOptions()...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	out := sample.New(0)
	out.SetTime(time.Now().Unix())
	for _, name := range names {
		v := vectorNames[strings.ToLower(name)]
		raw, err := client.Read(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", v.Name(), err)
		}
		a.logger.Debug("vector read", log.String("vector", v.Name()), log.Int("values", len(raw)))
		combine(out, v.Name(), v.Read(raw))
	}

	return out, nil
}

func (a *app) readWS(ctx context.Context) (*sample.Sample, error) {
	client, err := transport.DialWS(ctx, a.cfg.WSAddr(), a.transportOptions()...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	snap, err := client.Fetch(ctx, a.cfg.Password)
	if err != nil {
		return nil, err
	}

	return snap.Sample(time.Now().Unix()), nil
}

// combine copies the fields of src into dst. A name dst already holds is
// stored as "<vector>.<name>".
func combine(dst *sample.Sample, vector string, src *sample.Sample) {
	for name, v := range src.All() {
		if dst.Has(name) {
			name = vector + "." + name
		}
		dst.Set(name, v)
	}
}
