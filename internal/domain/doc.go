// Package domain contains the value objects and error kinds shared by the
// equilibrium potential calculator and its collaborators.
//
// This package has no dependencies on infrastructure concerns (files,
// terminals, logging) and contains only input constraints.
//
// # Values
//
//   - [Sample]: the four scalars one potential is computed from
//   - [Record]: a labelled sample, as read from a batch file
//   - [Result]: the outcome of evaluating one record
//
// Values are immutable after construction and are discarded after use.
package domain
