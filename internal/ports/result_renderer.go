package ports

import (
	"io"

	"github.com/bft-labs/nernst/internal/domain"
)

// ResultRenderer writes evaluated results to w.
// It receives voltages in volts and owns every unit and layout decision.
type ResultRenderer interface {
	Render(w io.Writer, results []domain.Result) error
}
