package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/nernst/internal/cliconfig"
	"github.com/bft-labs/nernst/internal/domain"
	"github.com/bft-labs/nernst/pkg/nernst"
)

func newComputeCmd(cfg *cliconfig.Config) *cobra.Command {
	var (
		name    string
		valence int
		inner   float64
		outer   float64
		celsius float64
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the potential of one ionic species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			temp := cfg.Temperature
			if cmd.Flags().Changed("celsius") {
				temp = nernst.CelsiusToKelvin(celsius)
			}

			rec := domain.Record{
				Name: name,
				Sample: domain.Sample{
					TemperatureKelvin:  temp,
					Valence:            valence,
					InnerConcentration: inner,
					OuterConcentration: outer,
				},
			}
			v, err := nernst.Default.Evaluate(rec.Sample)
			if err != nil {
				return err
			}

			return newRenderer(cfg).Render(cmd.OutOrStdout(), []domain.Result{{Record: rec, Volts: v}})
		},
	}

	cmd.Flags().StringVar(&name, "name", "ion", "label for the ionic species")
	cmd.Flags().IntVarP(&valence, "valence", "z", 0, "signed charge number, e.g. 1 for K+, -1 for Cl-")
	cmd.Flags().Float64Var(&inner, "inner", 0, "concentration inside the membrane (mM)")
	cmd.Flags().Float64Var(&outer, "outer", 0, "concentration outside the membrane (mM)")
	cmd.Flags().Float64Var(&celsius, "celsius", 0, "temperature in °C (overrides --temperature)")
	for _, f := range []string{"valence", "inner", "outer"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
