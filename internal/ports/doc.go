// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [Calculator]: computes one equilibrium potential
//   - [RecordSource]: yields labelled samples, e.g. from a CSV file
//   - [ResultRenderer]: presents evaluated results
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// file and terminal handling. The kernel in pkg/nernst satisfies Calculator
// directly.
package ports
