package reactor

import (
	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/integrators"
)

type Result struct {
	Request    Request
	Integrator string
	Profile    *Profile
	Summary    Summary
}

// Simulate validates req and p, integrates, and summarizes. It is the entry
// point for transports; integ may be nil for forward Euler.
func Simulate(req Request, p Params, integ dynamo.Integrator) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if integ == nil {
		integ = integrators.NewEuler()
	}

	prof := IntegrateWith(req, p, integ)

	return &Result{
		Request:    req,
		Integrator: integ.Name(),
		Profile:    prof,
		Summary:    Summarize(prof, p),
	}, nil
}
