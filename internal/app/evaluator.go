package app

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bft-labs/nernst/internal/domain"
	"github.com/bft-labs/nernst/internal/ports"
)

// Evaluator computes potentials for every record of a source.
type Evaluator struct {
	calc    ports.Calculator
	workers int
	logger  zerolog.Logger
}

// NewEvaluator creates an Evaluator using up to workers goroutines.
func NewEvaluator(calc ports.Calculator, workers int, logger zerolog.Logger) *Evaluator {
	if workers <= 0 {
		workers = 1
	}
	return &Evaluator{calc: calc, workers: workers, logger: logger}
}

// Run drains src and evaluates each record. Results keep source order.
// Rows that fail to parse or violate the calculator's domain are kept in the
// results with their error and logged; evaluation continues past them.
// Run returns early only on context cancellation or a source read failure.
func (e *Evaluator) Run(ctx context.Context, src ports.RecordSource) ([]domain.Result, error) {
	var results []domain.Result
	for {
		rec, err := src.Next(ctx)
		if errors.Is(err, ports.ErrNoMoreRecords) {
			break
		}
		if err != nil && !errors.Is(err, domain.ErrInvalidRecord) {
			return nil, err
		}
		results = append(results, domain.Result{Record: rec, Err: err})
	}

	if err := e.evaluate(ctx, results); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.Err != nil {
			e.logger.Warn().Err(r.Err).Int("line", r.Record.Line).Str("ion", r.Record.Name).Msg("skipping record")
		}
	}
	return results, nil
}

// evaluate fills in Volts or Err for every result that parsed.
func (e *Evaluator) evaluate(ctx context.Context, results []domain.Result) error {
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := e.workers
	if workers > len(results) {
		workers = len(results)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r := &results[idx]
				v, err := e.calc.Evaluate(r.Record.Sample)
				if err != nil {
					r.Err = &domain.RecordError{Line: r.Record.Line, Name: r.Record.Name, Wrapped: err}
					continue
				}
				r.Volts = v
			}
		}()
	}

	var err error
feed:
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return err
}

// Summary counts evaluated and rejected results.
type Summary struct {
	Total    int
	Rejected int
}

// Summarize returns counts over results.
func Summarize(results []domain.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Rejected++
		}
	}
	return s
}
