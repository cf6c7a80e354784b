package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/reactor"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of simulations
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one operating point, optionally with its own integrator
// and reactor parameter overrides applied on top of the base parameters.
type ScenarioStep struct {
	Name       string             `yaml:"name"`
	Integrator string             `yaml:"integrator"`
	Request    reactor.Request    `yaml:"operating_point"`
	Params     map[string]float64 `yaml:"params"`
}

type StepResult struct {
	Step   ScenarioStep
	Params reactor.Params
	Result *reactor.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// RunScenario executes all steps in order and stops at the first failure.
// Results of the steps completed so far are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, base reactor.Params, logger *log.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.WithFields(log.Fields{
			"scenario": scenario.Name,
			"step":     fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)),
			"name":     step.Name,
		}).Info("running step")

		p := base
		for k, v := range step.Params {
			if err := p.SetParam(k, v); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		integ, err := integrators.New(step.Integrator)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := reactor.Simulate(step.Request, p, integ)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Params: p, Result: res})
	}

	return results, nil
}

// ParameterSweep varies one reactor parameter at a fixed operating point
type ParameterSweep struct {
	Integrator string
	ParamName  string
	ParamMin   float64
	ParamMax   float64
	NumSteps   int
	Request    reactor.Request
}

// SweepResult holds one point of a parameter sweep
type SweepResult struct {
	ParamValue float64
	Summary    reactor.Summary
	Err        error
}

// RunSweep executes a parameter sweep. Values the reactor rejects are
// reported per point and do not stop the sweep.
func RunSweep(ctx context.Context, sweep *ParameterSweep, base reactor.Params) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if _, ok := base.GetParams()[sweep.ParamName]; !ok {
		return nil, fmt.Errorf("unknown param: %s (available: %v)", sweep.ParamName, reactor.ParamNames())
	}
	integ, err := integrators.New(sweep.Integrator)
	if err != nil {
		return nil, err
	}

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		paramVal := sweep.ParamMin + float64(i)*paramStep
		p := base
		// name checked above
		_ = p.SetParam(sweep.ParamName, paramVal)

		point := SweepResult{ParamValue: paramVal}
		res, err := reactor.Simulate(sweep.Request, p, integ)
		if err != nil {
			point.Err = err
		} else {
			point.Summary = res.Summary
		}
		results = append(results, point)
	}

	return results, nil
}
