package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/reactor"
)

// Grid lists the values tried for each boundary condition. Requests are
// the cartesian product in TIn, Velocity, TJacket order.
type Grid struct {
	TIn      []float64
	Velocity []float64
	TJacket  []float64
}

func (g Grid) Size() int {
	return len(g.TIn) * len(g.Velocity) * len(g.TJacket)
}

func (g Grid) Requests() []reactor.Request {
	reqs := make([]reactor.Request, 0, g.Size())
	for _, tIn := range g.TIn {
		for _, u := range g.Velocity {
			for _, tJ := range g.TJacket {
				reqs = append(reqs, reactor.Request{TIn: tIn, Velocity: u, TJacket: tJ})
			}
		}
	}
	return reqs
}

// Range returns start, start+step, ... up to and including stop.
func Range(start, stop, step float64) ([]float64, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if stop < start {
		return nil, fmt.Errorf("stop %g below start %g", stop, start)
	}
	n := int(math.Floor((stop-start)/step+1e-9)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values, nil
}

type Point struct {
	Request reactor.Request
	Summary reactor.Summary
	Err     error
}

// Runner evaluates grids of operating points concurrently.
type Runner struct {
	params     reactor.Params
	integrator string
	minChunk   int
}

func NewRunner(params reactor.Params, integrator string) *Runner {
	return &Runner{params: params, integrator: integrator, minChunk: 4}
}

// Run integrates every request of the grid. Points come back in grid
// order; a request that fails validation is reported in its Point.Err and
// does not stop the sweep. Cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, grid Grid) ([]Point, error) {
	if err := r.params.Validate(); err != nil {
		return nil, err
	}
	if _, err := integrators.New(r.integrator); err != nil {
		return nil, err
	}

	reqs := grid.Requests()
	points := make([]Point, len(reqs))

	dynamo.ParallelFor(len(reqs), r.minChunk, func(start, end int) {
		// one integrator per goroutine, RK4 keeps scratch state
		integ, _ := integrators.New(r.integrator)
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			res, err := reactor.Simulate(reqs[i], r.params, integ)
			points[i] = Point{Request: reqs[i], Err: err}
			if err == nil {
				points[i].Summary = res.Summary
			}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// Best returns the point with the highest conversion whose peak temperature
// does not exceed maxTemperature. A non-positive limit disables the check.
func Best(points []Point, maxTemperature float64) (Point, bool) {
	limit := maxTemperature
	if limit <= 0 {
		limit = math.Inf(1)
	}

	var best Point
	found := false
	for _, p := range points {
		if p.Err != nil || p.Summary.MaxTemperature > limit {
			continue
		}
		if !found || p.Summary.FinalConversion > best.Summary.FinalConversion {
			best = p
			found = true
		}
	}
	return best, found
}
