package ports

import (
	"context"
	"io"

	"github.com/bft-labs/nernst/internal/domain"
)

// RecordSource provides labelled samples one at a time.
type RecordSource interface {
	// Next returns the next record.
	// Returns io.EOF when the source is exhausted.
	// A record that cannot be parsed is returned together with an error
	// wrapping domain.ErrInvalidRecord; the caller may continue reading.
	// Other errors are unrecoverable.
	Next(ctx context.Context) (domain.Record, error)
}

// ErrNoMoreRecords indicates that the source is exhausted.
var ErrNoMoreRecords = io.EOF
