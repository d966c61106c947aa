package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/arloliu/luxdta/config"
	"github.com/arloliu/luxdta/log"
)

const longHelp = `Decode heat pump DTA history dumps and talk to the controller's live interface.

DTA files of version 8208, 8209, 9000, 9001 and 9003 are decoded into a
time series and written as JSON or YAML, optionally compressed with zstd,
s2 or lz4. The live commands read and write the Parameters, Calculations
and Visibilities vectors over TCP, or take a snapshot over WebSocket.

Settings are read from flags, then LUXDTA_* environment variables, then the
config file (default: $XDG_CONFIG_HOME/luxdta/config.toml).`

var exampleUsage = strings.TrimSpace(`
  luxdta decode proclog.dta -o history.json.zst
  luxdta schema proclog.dta
  luxdta live read calculations --host 192.168.1.50
  luxdta live write --host 192.168.1.50 ID_Einst_BWS_akt=48.5
  luxdta watch /srv/dta -o /var/lib/luxdta/history.yaml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the state shared by all commands.
type app struct {
	cfg     config.Config
	cfgPath string
	logger  log.Logger
}

func newApp() *app {
	return &app{
		cfg:    config.Default(),
		logger: log.NewNoopLogger(),
	}
}

// load resolves the configuration of cmd: explicitly set flags win over
// LUXDTA_* variables, which win over the config file.
func (a *app) load(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
		if cfgFile != "" && !config.FileExists(cfgFile) {
			cfgFile = ""
		}
	}

	if cfgFile != "" {
		fc, err := config.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := config.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}
	config.ApplyEnvConfig(&a.cfg, changed)

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = log.NewConsoleAdapter(cmd.ErrOrStderr(), log.ParseLevel(a.cfg.LogLevel))
	a.logger.Debug("configuration",
		log.String("config_file", cfgFile),
		log.Any("config", a.cfg.Redacted()),
	)

	return nil
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "luxdta",
		Short:         "Decode heat pump DTA dumps and access the live controller interface",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $XDG_CONFIG_HOME/luxdta/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		newDecodeCommand(a),
		newSchemaCommand(a),
		newLiveCommand(a),
		newWatchCommand(a),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	root := newRootCommand(a)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "luxdta:", err)
		stop()
		os.Exit(1)
	}
}
