// Package render presents evaluated results as a text table or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/bft-labs/nernst/internal/domain"
	"github.com/bft-labs/nernst/internal/ports"
)

var (
	_ ports.ResultRenderer = Text{}
	_ ports.ResultRenderer = JSON{}
)

// Unit names.
const (
	Millivolts = "mV"
	Volts      = "V"
)

// Options control unit and number formatting.
type Options struct {
	Unit      string
	Precision int
}

func (o Options) scale(volts float64) float64 {
	if volts == 0 {
		return 0 // drop the sign of -0
	}
	if o.Unit == Volts {
		return volts
	}
	return volts * 1000
}

func (o Options) unit() string {
	if o.Unit == Volts {
		return Volts
	}
	return Millivolts
}

// Text renders an aligned table, one row per result.
type Text struct {
	Options
}

// Render implements ports.ResultRenderer.
func (r Text) Render(w io.Writer, results []domain.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ION\tZ\tT (K)\tINNER\tOUTER\tPOTENTIAL (%s)\n", r.unit())
	for _, res := range results {
		name := res.Record.Name
		if name == "" {
			name = "-"
		}
		if res.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\terror: %v\n", name, res.Err)
			continue
		}
		s := res.Record.Sample
		fmt.Fprintf(tw, "%s\t%+d\t%s\t%s\t%s\t%s\n",
			name,
			s.Valence,
			formatFloat(s.TemperatureKelvin, -1),
			formatFloat(s.InnerConcentration, -1),
			formatFloat(s.OuterConcentration, -1),
			formatFloat(r.scale(res.Volts), r.Precision),
		)
	}
	return tw.Flush()
}

// JSON renders an indented array of objects.
type JSON struct {
	Options
}

type jsonResult struct {
	Line        int      `json:"line,omitempty"`
	Name        string   `json:"name,omitempty"`
	Valence     int      `json:"valence"`
	Temperature *float64 `json:"temperature_k,omitempty"`
	Inner       *float64 `json:"inner,omitempty"`
	Outer       *float64 `json:"outer,omitempty"`
	Potential   *float64 `json:"potential,omitempty"`
	Unit        string   `json:"unit"`
	Error       string   `json:"error,omitempty"`
}

// Render implements ports.ResultRenderer.
func (r JSON) Render(w io.Writer, results []domain.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		s := res.Record.Sample
		jr := jsonResult{
			Line:        res.Record.Line,
			Name:        res.Record.Name,
			Valence:     s.Valence,
			Temperature: finite(s.TemperatureKelvin),
			Inner:       finite(s.InnerConcentration),
			Outer:       finite(s.OuterConcentration),
			Unit:        r.unit(),
		}
		switch {
		case res.Err != nil:
			jr.Error = res.Err.Error()
		case finite(r.scale(res.Volts)) == nil:
			jr.Error = fmt.Sprintf("potential %v is not finite", res.Volts)
		default:
			v, err := strconv.ParseFloat(formatFloat(r.scale(res.Volts), r.Precision), 64)
			if err != nil {
				return err
			}
			jr.Potential = &v
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// finite returns nil for values encoding/json cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
