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

	"github.com/bft-labs/nernst/internal/adapters/render"
	"github.com/bft-labs/nernst/internal/cliconfig"
	"github.com/bft-labs/nernst/internal/ports"
)

const longHelp = `
Compute the Nernst equilibrium potential of an ionic species:

  V = (R*T)/(z*F) * ln(outer/inner)

with R = 8.314 J/(mol*K) and F = 96485 C/mol. Concentrations on both sides
of the membrane must share a unit (millimolar by convention). Results are
shown in millivolts unless --unit V is given.

Configuration is read from $HOME/.nernst/config.toml, then NERNST_*
environment variables, then flags.
`

var exampleUsage = strings.TrimSpace(`
  nernst compute --valence 1 --inner 140 --outer 5
  nernst compute --valence 2 --inner 0.0001 --outer 2 --celsius 20
  nernst prompt
  nernst batch ions.csv --format json
  nernst batch ions.csv --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("nernst")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "nernst",
		Short:         "Nernst equilibrium potentials for single ionic species",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg, cfgPath)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.nernst/config.toml)")
	flags.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "temperature in kelvin when none is given per ion")
	flags.StringVar(&cfg.Unit, "unit", cfg.Unit, "display unit: mV or V")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	flags.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimal places of the potential")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent evaluations for batch files")
	flags.DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "quiet period after a change before re-evaluating")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newComputeCmd(&cfg),
		newPromptCmd(&cfg),
		newBatchCmd(&cfg),
	)
	return root
}

// loadConfig layers file, environment and flags into cfg, then validates it.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cliconfig.SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	log := cliconfig.Logger()
	log.Debug().Interface("config", cfg).Msg("configuration")
	return nil
}

func newRenderer(cfg *cliconfig.Config) ports.ResultRenderer {
	opts := render.Options{Unit: cfg.Unit, Precision: cfg.Precision}
	if cfg.Format == cliconfig.FormatJSON {
		return render.JSON{Options: opts}
	}
	return render.Text{Options: opts}
}
