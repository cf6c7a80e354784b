package reactor

import "math"

// minExponent keeps exp() representable for very small temperatures.
const minExponent = -700.0

// RateConstant evaluates the Arrhenius law k = k0·exp(−Ea/(Rg·T)).
//
// The exponent is floored at -700; there is no ceiling. T must be non-zero.
func RateConstant(T float64, p Params) float64 {
	exponent := -p.Ea / (p.Rg * T)
	if exponent < minExponent {
		exponent = minExponent
	}
	return p.K0 * math.Exp(exponent)
}
