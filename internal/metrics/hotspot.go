package metrics

import (
	"math"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

// HotSpot records the axial position of the temperature peak.
type HotSpot struct {
	name     string
	maxT     float64
	position float64
	samples  int
}

func NewHotSpot() *HotSpot {
	h := &HotSpot{name: "hot_spot_z"}
	h.Reset()
	return h
}

func (h *HotSpot) Name() string { return h.name }

func (h *HotSpot) Observe(x dynamo.State, z float64) {
	h.samples++
	if t := x[reactor.IdxTemperature]; t > h.maxT {
		h.maxT = t
		h.position = z
	}
}

func (h *HotSpot) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return h.position
}

func (h *HotSpot) Reset() {
	h.maxT = math.Inf(-1)
	h.position = 0
	h.samples = 0
}

// TemperatureRise is the peak temperature minus the first observed one.
type TemperatureRise struct {
	name  string
	first float64
	maxT  float64
	seen  bool
}

func NewTemperatureRise() *TemperatureRise {
	return &TemperatureRise{name: "temperature_rise"}
}

func (r *TemperatureRise) Name() string { return r.name }

func (r *TemperatureRise) Observe(x dynamo.State, z float64) {
	t := x[reactor.IdxTemperature]
	if !r.seen {
		r.first, r.maxT, r.seen = t, t, true
		return
	}
	if t > r.maxT {
		r.maxT = t
	}
}

func (r *TemperatureRise) Value() float64 {
	if !r.seen {
		return 0
	}
	return r.maxT - r.first
}

func (r *TemperatureRise) Reset() {
	r.first, r.maxT, r.seen = 0, 0, false
}
