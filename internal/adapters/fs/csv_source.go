package fs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bft-labs/nernst/internal/domain"
	"github.com/bft-labs/nernst/internal/ports"
)

// Column order of a batch file. The first row is a header and is skipped.
const (
	colName = iota
	colCharge
	colTemperature
	colInner
	colOuter
	numColumns
)

var _ ports.RecordSource = (*CSVSource)(nil)

// CSVSource implements ports.RecordSource over comma separated rows of
// name,charge,temperature,inner,outer.
type CSVSource struct {
	r           *csv.Reader
	closer      io.Closer
	defaultTemp float64
	header      bool
}

// NewCSVSource reads records from r. Rows with an empty temperature column
// use defaultTemp (kelvin).
func NewCSVSource(r io.Reader, defaultTemp float64) *CSVSource {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &CSVSource{r: cr, defaultTemp: defaultTemp, header: true}
}

// OpenCSV opens the file at path as a CSVSource. Close releases it.
func OpenCSV(path string, defaultTemp float64) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := NewCSVSource(f, defaultTemp)
	s.closer = f
	return s, nil
}

// Close closes the underlying file, if any.
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Next returns the next record, io.EOF at the end of input, or a
// *domain.RecordError wrapping domain.ErrInvalidRecord for a bad row.
func (s *CSVSource) Next(ctx context.Context) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}

	fields, err := s.r.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			s.header = false
			return domain.Record{Line: pe.Line}, &domain.RecordError{
				Line:    pe.Line,
				Wrapped: fmt.Errorf("%w: %v", domain.ErrInvalidRecord, pe.Err),
			}
		}
		return domain.Record{}, err
	}

	line, _ := s.r.FieldPos(0)
	if s.header {
		s.header = false
		return s.Next(ctx)
	}

	return parseRecord(line, fields, s.defaultTemp)
}

func parseRecord(line int, fields []string, defaultTemp float64) (domain.Record, error) {
	rec := domain.Record{Line: line}
	if len(fields) > 0 {
		rec.Name = strings.TrimSpace(fields[colName])
	}

	invalid := func(format string, args ...any) (domain.Record, error) {
		return rec, &domain.RecordError{
			Line:    line,
			Name:    rec.Name,
			Wrapped: fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidRecord}, args...)...),
		}
	}

	if len(fields) != numColumns {
		return invalid("want %d fields, got %d", numColumns, len(fields))
	}

	charge, err := strconv.Atoi(strings.TrimSpace(fields[colCharge]))
	if err != nil {
		return invalid("charge %q is not an integer", fields[colCharge])
	}

	temp := defaultTemp
	if raw := strings.TrimSpace(fields[colTemperature]); raw != "" {
		if temp, err = strconv.ParseFloat(raw, 64); err != nil {
			return invalid("temperature %q is not a number", raw)
		}
	}

	inner, err := strconv.ParseFloat(strings.TrimSpace(fields[colInner]), 64)
	if err != nil {
		return invalid("inner %q is not a number", fields[colInner])
	}
	outer, err := strconv.ParseFloat(strings.TrimSpace(fields[colOuter]), 64)
	if err != nil {
		return invalid("outer %q is not a number", fields[colOuter])
	}

	rec.Sample = domain.Sample{
		TemperatureKelvin:  temp,
		Valence:            charge,
		InnerConcentration: inner,
		OuterConcentration: outer,
	}
	return rec, nil
}
