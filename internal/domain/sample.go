package domain

import "math"

// Sample is one ionic gradient: temperature in kelvin, signed valence and
// the concentrations on either side of the membrane. Both concentrations
// must use the same unit; millimolar is the convention.
type Sample struct {
	TemperatureKelvin  float64
	Valence            int
	InnerConcentration float64
	OuterConcentration float64
}

// NewSample creates a Sample and validates it.
func NewSample(temperatureKelvin float64, valence int, inner, outer float64) (Sample, error) {
	s := Sample{
		TemperatureKelvin:  temperatureKelvin,
		Valence:            valence,
		InnerConcentration: inner,
		OuterConcentration: outer,
	}
	if err := s.Validate(); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// Validate returns a *DomainError for the first violated constraint.
func (s Sample) Validate() error {
	if s.Valence == 0 {
		return &DomainError{Field: "valence", Value: 0, Reason: "must be nonzero"}
	}
	if !positive(s.InnerConcentration) {
		return &DomainError{Field: "inner concentration", Value: s.InnerConcentration, Reason: "must be positive and finite"}
	}
	if !positive(s.OuterConcentration) {
		return &DomainError{Field: "outer concentration", Value: s.OuterConcentration, Reason: "must be positive and finite"}
	}
	if !positive(s.TemperatureKelvin) {
		return &DomainError{Field: "temperature", Value: s.TemperatureKelvin, Reason: "must be above absolute zero and finite"}
	}
	return nil
}

// positive is false for NaN and +Inf as well as for values <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Record is a labelled sample read from a batch source.
type Record struct {
	// Line is the 1-based source line, 0 when not read from a file
	Line int

	// Name labels the ionic species, e.g. "K+"
	Name string

	Sample Sample
}

// Result is the outcome of evaluating one record.
// Exactly one of Volts or Err is meaningful.
type Result struct {
	Record Record
	Volts  float64
	Err    error
}

// OK reports whether the record produced a potential.
func (r Result) OK() bool {
	return r.Err == nil
}
