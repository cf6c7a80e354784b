package reactor

import "github.com/san-kum/pfrsim/internal/dynamo"

// State indices for the reactor's two balances.
const (
	IdxConcentration = 0
	IdxTemperature   = 1
)

// Model is the right-hand side of the steady-state PFR balances with the
// axial coordinate as independent variable. State is [C_A, T].
type Model struct {
	params   Params
	velocity float64
	tJacket  float64
	area     float64
}

func NewModel(req Request, p Params) *Model {
	return &Model{
		params:   p,
		velocity: req.Velocity,
		tJacket:  req.TJacket,
		area:     p.ExchangeArea(),
	}
}

func (m *Model) StateDim() int { return 2 }

func (m *Model) Derive(x dynamo.State, z float64) dynamo.State {
	c := x[IdxConcentration]
	temp := x[IdxTemperature]
	p := m.params

	k := RateConstant(temp, p)

	dCdz := -k / m.velocity * c

	heatGenerated := -p.DeltaH * k * c * p.CMolar
	heatExchanged := p.U * m.area * (temp - m.tJacket)
	dTdz := (heatGenerated - heatExchanged) / (p.Rho * p.Cp * m.velocity)

	return dynamo.State{dCdz, dTdz}
}
