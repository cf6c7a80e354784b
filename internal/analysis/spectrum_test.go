package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrum_PureTone(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(ps))
	}

	peak := 0
	for k := range ps {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak != 4 {
		t.Errorf("expected peak at bin 4, got %d", peak)
	}
}

func TestHighFrequencyFraction(t *testing.T) {
	n := 65

	saw := make([]float64, n)
	smooth := make([]float64, n)
	ramp := make([]float64, n)
	for i := 0; i < n; i++ {
		saw[i] = float64(i % 2)
		smooth[i] = math.Sin(2 * math.Pi * 2 * float64(i) / float64(n-1))
		ramp[i] = 300 + 0.5*float64(i)
	}

	if f := HighFrequencyFraction(saw, 0.5); f < 0.8 {
		t.Errorf("saw-tooth should be dominated by high frequencies, got %v", f)
	}
	if f := HighFrequencyFraction(smooth, 0.5); f > 0.1 {
		t.Errorf("smooth profile should score low, got %v", f)
	}
	if f := HighFrequencyFraction(ramp, 0.5); f > 1e-9 {
		t.Errorf("linear ramp has no oscillation, got %v", f)
	}
	if f := HighFrequencyFraction([]float64{1, 2, 3}, 0.5); f != 0 {
		t.Errorf("short profile should score 0, got %v", f)
	}
}

func TestDifferences(t *testing.T) {
	d := Differences([]float64{1, 4, 9})
	if len(d) != 2 || d[0] != 3 || d[1] != 5 {
		t.Errorf("unexpected differences %v", d)
	}
	if Differences([]float64{1}) != nil {
		t.Error("expected nil for a single sample")
	}
}
