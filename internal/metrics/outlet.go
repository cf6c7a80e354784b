package metrics

import (
	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

type OutletTemperature struct {
	name string
	last float64
}

func NewOutletTemperature() *OutletTemperature {
	return &OutletTemperature{name: "outlet_temperature"}
}

func (o *OutletTemperature) Name() string { return o.name }

func (o *OutletTemperature) Observe(x dynamo.State, z float64) {
	o.last = x[reactor.IdxTemperature]
}

func (o *OutletTemperature) Value() float64 { return o.last }

func (o *OutletTemperature) Reset() { o.last = 0 }
