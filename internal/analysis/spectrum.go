package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X_k|^2 for k = 0..n/2 of the real signal data.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	x := fft.FFTReal(data)
	ps := make([]float64, len(x)/2+1)
	for k := range ps {
		a := cmplx.Abs(x[k])
		ps[k] = a * a
	}
	return ps
}

// Differences returns data[i+1]-data[i].
func Differences(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	d := make([]float64, len(data)-1)
	for i := range d {
		d[i] = data[i+1] - data[i]
	}
	return d
}

// HighFrequencyFraction is the share of spectral power of the profile's
// increments at or above cutoff (a fraction of the Nyquist frequency).
// Differencing removes the trend, so a smooth profile scores near zero and
// a grid-scale oscillation near one. Profiles shorter than four points
// score zero.
func HighFrequencyFraction(profile []float64, cutoff float64) float64 {
	if len(profile) < 4 {
		return 0
	}
	ps := PowerSpectrum(Differences(profile))
	nyquist := len(ps) - 1

	var total, high float64
	for k := 1; k <= nyquist; k++ {
		total += ps[k]
		if float64(k)/float64(nyquist) >= cutoff {
			high += ps[k]
		}
	}
	// a constant slope leaves only rounding noise outside the DC bin
	if total <= 1e-12*(total+ps[0]) {
		return 0
	}
	return high / total
}
