// Package nernst computes the Nernst equilibrium potential of a single ionic
// species.
//
// The potential is the membrane voltage at which the electrochemical driving
// force on the species is zero:
//
//	V = (R*T)/(z*F) * ln(outer/inner)
//
// with R the gas constant, F the Faraday constant, T the temperature in
// kelvin and z the signed valence. The result is in volts.
//
// # Usage
//
//	v, err := nernst.EquilibriumPotential(310.15, 1, 140, 5)
//	if errors.Is(err, nernst.ErrDomain) {
//	    // reject the input
//	}
//	fmt.Printf("%.1f mV\n", nernst.Millivolts(v))
//
// A [Calculator] carries its constants as immutable fields and is safe for
// concurrent use. [Default] uses the canonical values.
package nernst
