// Package prompt acquires one ionic gradient interactively.
//
// The prompter only reads and validates input; computing the potential is
// left to the caller.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/nernst/internal/domain"
	"github.com/bft-labs/nernst/pkg/nernst"
)

// Prompter asks for temperature (°C), valence and both concentrations (mM).
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

type field struct {
	label  string
	domain string // DomainError.Field this answer feeds
	read   func(s string, dst *domain.Sample) error
}

var fields = []field{
	{
		label:  "Temperature (°C)",
		domain: "temperature",
		read: func(s string, dst *domain.Sample) error {
			c, err := strconv.ParseFloat(s, 64)
			dst.TemperatureKelvin = nernst.CelsiusToKelvin(c)
			return err
		},
	},
	{
		label:  "Valence",
		domain: "valence",
		read: func(s string, dst *domain.Sample) error {
			z, err := strconv.Atoi(s)
			dst.Valence = z
			return err
		},
	},
	{
		label:  "Inner concentration (mM)",
		domain: "inner concentration",
		read: func(s string, dst *domain.Sample) error {
			v, err := strconv.ParseFloat(s, 64)
			dst.InnerConcentration = v
			return err
		},
	},
	{
		label:  "Outer concentration (mM)",
		domain: "outer concentration",
		read: func(s string, dst *domain.Sample) error {
			v, err := strconv.ParseFloat(s, 64)
			dst.OuterConcentration = v
			return err
		},
	},
}

// Sample asks for every value and returns a validated sample.
// Unparsable answers and answers outside the calculator's domain are
// reported and asked again. It fails with io.ErrUnexpectedEOF when input
// ends first.
func (p *Prompter) Sample(ctx context.Context) (domain.Sample, error) {
	var s domain.Sample
	answers := make(map[string]string, len(fields))
	for _, f := range fields {
		a, err := p.ask(ctx, f, &s)
		if err != nil {
			return domain.Sample{}, err
		}
		answers[f.domain] = a
	}

	for {
		err := s.Validate()
		if err == nil {
			return s, nil
		}
		var de *domain.DomainError
		if !errors.As(err, &de) {
			return domain.Sample{}, err
		}
		for _, f := range fields {
			if f.domain != de.Field {
				continue
			}
			// Report what was typed: the sample may hold a converted value.
			fmt.Fprintf(p.out, "%s %s: %s\n", f.label, answers[f.domain], de.Reason)
			a, err := p.ask(ctx, f, &s)
			if err != nil {
				return domain.Sample{}, err
			}
			answers[f.domain] = a
		}
	}
}

// ask prompts for f until its answer parses and returns the answer as typed.
func (p *Prompter) ask(ctx context.Context, f field, dst *domain.Sample) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(p.out, "%s: ", f.label)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		answer := strings.TrimSpace(p.in.Text())
		if err := f.read(answer, dst); err != nil {
			fmt.Fprintf(p.out, "%q is not a valid %s\n", answer, strings.ToLower(f.label))
			continue
		}
		return answer, nil
	}
}
