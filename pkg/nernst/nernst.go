package nernst

import (
	"math"

	"github.com/bft-labs/nernst/internal/domain"
)

const (
	// GasConstant is R in J/(mol*K).
	GasConstant = 8.314

	// FaradayConstant is F in C/mol.
	FaradayConstant = 96485.0

	// ZeroCelsius is 0 °C in kelvin.
	ZeroCelsius = 273.15
)

// Sample is one ionic gradient. See domain.Sample.
type Sample = domain.Sample

// DomainError reports an input outside the calculator's domain.
type DomainError = domain.DomainError

// ErrDomain is matched by every DomainError via errors.Is.
var ErrDomain = domain.ErrDomain

// Calculator computes equilibrium potentials with fixed physical constants.
type Calculator struct {
	r float64
	f float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithGasConstant overrides R.
func WithGasConstant(r float64) Option {
	return func(c *Calculator) { c.r = r }
}

// WithFaradayConstant overrides F.
func WithFaradayConstant(f float64) Option {
	return func(c *Calculator) { c.f = f }
}

// New creates a Calculator. Without options it is equivalent to Default.
func New(opts ...Option) Calculator {
	c := Calculator{r: GasConstant, f: FaradayConstant}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Default uses GasConstant and FaradayConstant.
var Default = New()

// GasConstant returns the calculator's R.
func (c Calculator) GasConstant() float64 { return c.r }

// FaradayConstant returns the calculator's F.
func (c Calculator) FaradayConstant() float64 { return c.f }

// EquilibriumPotential returns the potential in volts for the given
// temperature (K), valence and inner/outer concentrations.
// It returns a *DomainError when valence is zero or when the temperature
// or either concentration is not positive.
func (c Calculator) EquilibriumPotential(temperatureKelvin float64, valence int, inner, outer float64) (float64, error) {
	return c.Evaluate(Sample{
		TemperatureKelvin:  temperatureKelvin,
		Valence:            valence,
		InnerConcentration: inner,
		OuterConcentration: outer,
	})
}

// Evaluate is EquilibriumPotential over a Sample.
func (c Calculator) Evaluate(s Sample) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	thermal := (c.r * s.TemperatureKelvin) / (float64(s.Valence) * c.f)
	// ln(outer/inner) as a difference; the ratio itself can overflow.
	return thermal * (math.Log(s.OuterConcentration) - math.Log(s.InnerConcentration)), nil
}

// EquilibriumPotential computes with the Default calculator.
func EquilibriumPotential(temperatureKelvin float64, valence int, inner, outer float64) (float64, error) {
	return Default.EquilibriumPotential(temperatureKelvin, valence, inner, outer)
}

// CelsiusToKelvin converts a temperature in °C to kelvin.
func CelsiusToKelvin(c float64) float64 {
	return c + ZeroCelsius
}

// Millivolts converts volts to millivolts.
func Millivolts(v float64) float64 {
	return v * 1000
}
