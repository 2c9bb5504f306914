package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/nernst/internal/cliconfig"
	"github.com/bft-labs/nernst/internal/domain"
	"github.com/bft-labs/nernst/internal/prompt"
	"github.com/bft-labs/nernst/pkg/nernst"
)

func newPromptCmd(cfg *cliconfig.Config) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for temperature, valence and concentrations interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			s, err := p.Sample(cmd.Context())
			if err != nil {
				return err
			}

			v, err := nernst.Default.Evaluate(s)
			if err != nil {
				return err
			}

			rec := domain.Record{Name: name, Sample: s}
			return newRenderer(cfg).Render(cmd.OutOrStdout(), []domain.Result{{Record: rec, Volts: v}})
		},
	}

	cmd.Flags().StringVar(&name, "name", "ion", "label for the ionic species")
	return cmd
}
