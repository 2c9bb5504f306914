package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bft-labs/nernst/internal/adapters/fs"
	"github.com/bft-labs/nernst/internal/app"
	"github.com/bft-labs/nernst/internal/cliconfig"
	"github.com/bft-labs/nernst/internal/watch"
	"github.com/bft-labs/nernst/pkg/nernst"
)

func newBatchCmd(cfg *cliconfig.Config) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate every ion of a CSV file (name,charge,temperature,inner,outer)",
		Long: `Evaluate every ion of a CSV file.

The first row is a header. Columns are name, charge, temperature (K), inner
and outer concentration. An empty temperature uses --temperature. Lines
starting with # are ignored. Rows that cannot be evaluated are reported and
skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log := cliconfig.Logger()
			renderer := newRenderer(cfg)
			evaluator := app.NewEvaluator(nernst.Default, cfg.Workers, log)

			run := func(ctx context.Context) error {
				src, err := fs.OpenCSV(path, cfg.Temperature)
				if err != nil {
					return err
				}
				defer src.Close()

				results, err := evaluator.Run(ctx, src)
				if err != nil {
					return err
				}
				sum := app.Summarize(results)
				log.Info().Str("file", path).Int("ions", sum.Total).Int("rejected", sum.Rejected).Msg("batch evaluated")
				return renderer.Render(cmd.OutOrStdout(), results)
			}

			if !follow {
				return run(cmd.Context())
			}
			log.Info().Str("file", path).Msg("watching for changes")
			return watch.New(path, cfg.WatchDebounce, run, log).Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&follow, "watch", "w", false, "re-evaluate whenever the file changes, until interrupted")
	return cmd
}
