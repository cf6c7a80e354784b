package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/pfrsim/internal/reactor"
)

func testProfile() *reactor.Profile {
	return &reactor.Profile{
		Z: []float64{0, 1, 2, 3, 4},
		T: []float64{300, 330, 370, 360, 340},
		C: []float64{1, 0.6, 0.3, 0.1, 0.05},
	}
}

func TestEvaluate(t *testing.T) {
	got := Evaluate(testProfile(), Defaults()...)

	tests := []struct {
		name string
		want float64
	}{
		{"hot_spot_z", 2},
		{"temperature_rise", 70},
		{"outlet_temperature", 340},
		// 370, 360 exceed 300+50
		{"runaway_fraction", 0.4},
	}

	for _, tt := range tests {
		v, ok := got[tt.name]
		if !ok {
			t.Errorf("metric %s missing", tt.name)
			continue
		}
		if math.Abs(v-tt.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", tt.name, v, tt.want)
		}
	}
}

func TestEvaluate_ResetsBetweenProfiles(t *testing.T) {
	ms := Defaults()
	Evaluate(testProfile(), ms...)

	flat := &reactor.Profile{
		Z: []float64{0, 1},
		T: []float64{300, 300},
		C: []float64{1, 1},
	}
	got := Evaluate(flat, ms...)

	if got["temperature_rise"] != 0 {
		t.Errorf("expected zero rise after reset, got %v", got["temperature_rise"])
	}
	if got["runaway_fraction"] != 0 {
		t.Errorf("expected zero runaway after reset, got %v", got["runaway_fraction"])
	}
	if got["hot_spot_z"] != 0 {
		t.Errorf("expected hot spot at inlet, got %v", got["hot_spot_z"])
	}
}

func TestEmptyMetrics(t *testing.T) {
	for _, m := range Defaults() {
		if v := m.Value(); v != 0 {
			t.Errorf("%s: expected 0 before observations, got %v", m.Name(), v)
		}
	}
}

func TestEvaluate_DefaultOperatingPoint(t *testing.T) {
	p := reactor.DefaultParams()
	prof := reactor.Integrate(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, p)
	got := Evaluate(prof, Defaults()...)
	sum := reactor.Summarize(prof, p)

	if got["temperature_rise"] != sum.MaxTemperature-310 {
		t.Errorf("rise %v does not match summary peak %v", got["temperature_rise"], sum.MaxTemperature)
	}
	if z := got["hot_spot_z"]; z < 0 || z > p.Length {
		t.Errorf("hot spot outside reactor: %v", z)
	}
	if got["outlet_temperature"] != prof.T[prof.Len()-1] {
		t.Errorf("outlet mismatch")
	}
}

func TestOscillation(t *testing.T) {
	o := NewOscillation(DefaultOscillationCutoff)

	zig := &reactor.Profile{Z: make([]float64, 33), T: make([]float64, 33), C: make([]float64, 33)}
	for i := range zig.T {
		zig.T[i] = 300 + 5*float64(i%2)
	}
	if v := Evaluate(zig, o)["oscillation_index"]; v < 0.8 {
		t.Errorf("expected saw-tooth profile to score high, got %v", v)
	}

	p := reactor.DefaultParams()
	prof := reactor.Integrate(reactor.Request{TIn: 300, Velocity: 2, TJacket: 280}, p)
	if v := Evaluate(prof, o)["oscillation_index"]; v > 0.5 {
		t.Errorf("expected smooth reference profile, got %v", v)
	}
}
