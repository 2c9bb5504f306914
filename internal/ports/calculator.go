package ports

import "github.com/bft-labs/nernst/internal/domain"

// Calculator computes the equilibrium potential of a sample in volts.
// Implementations must be safe for concurrent use.
type Calculator interface {
	Evaluate(s domain.Sample) (float64, error)
}
