package metrics

import (
	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

// DefaultRunawayThreshold is the temperature rise over inlet, in kelvin,
// counted as runaway by Defaults.
const DefaultRunawayThreshold = 50.0

func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewHotSpot(),
		NewTemperatureRise(),
		NewOutletTemperature(),
		NewRunaway(DefaultRunawayThreshold),
		NewOscillation(DefaultOscillationCutoff),
	}
}

// Evaluate resets each metric, replays the profile through it from inlet
// to outlet and collects the values by name.
func Evaluate(prof *reactor.Profile, ms ...dynamo.Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < prof.Len(); i++ {
		x := prof.State(i)
		for _, m := range ms {
			m.Observe(x, prof.Z[i])
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
