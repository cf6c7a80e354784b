package automation

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/logging"
	"github.com/san-kum/pfrsim/internal/reactor"
	log "github.com/sirupsen/logrus"
)

const scenarioYAML = `
name: start-up
description: heat the inlet in two stages
steps:
  - name: cold
    operating_point: {t_in: 300, velocity: 2.0, t_jacket: 280}
  - name: warm, better cooling
    integrator: rk4
    operating_point: {t_in: 320, velocity: 2.0, t_jacket: 280}
    params: {u: 800}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func quietLogger(t *testing.T) *log.Logger {
	t.Helper()
	logger, err := logging.NewWithWriter(io.Discard, "error", "text")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return logger
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Name != "start-up" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}

	base := reactor.DefaultParams()
	results, err := RunScenario(context.Background(), sc, base, quietLogger(t))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Result.Integrator != "euler" || results[1].Result.Integrator != "rk4" {
		t.Errorf("unexpected integrators: %s, %s", results[0].Result.Integrator, results[1].Result.Integrator)
	}
	if results[1].Params.U != 800 {
		t.Errorf("override not applied: U=%v", results[1].Params.U)
	}
	if base.U != reactor.DefaultParams().U {
		t.Error("base params were modified")
	}
	if results[1].Result.Profile.T[0] != 320 {
		t.Errorf("unexpected inlet: %v", results[1].Result.Profile.T[0])
	}
}

func TestRunScenario_StopsOnInvalidStep(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Request: reactor.Request{TIn: 300, Velocity: 2, TJacket: 280}},
		{Request: reactor.Request{TIn: 300, Velocity: 0, TJacket: 280}},
		{Request: reactor.Request{TIn: 310, Velocity: 2, TJacket: 280}},
	}}

	results, err := RunScenario(context.Background(), sc, reactor.DefaultParams(), quietLogger(t))
	if !errors.Is(err, dynamo.ErrInvalidRequest) {
		t.Fatalf("expected invalid request error, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected the first step only, got %d", len(results))
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
	if _, err := LoadScenario(writeScenario(t, "steps: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestRunSweep(t *testing.T) {
	sw := &ParameterSweep{
		ParamName: "u",
		ParamMin:  0,
		ParamMax:  1000,
		NumSteps:  3,
		Request:   reactor.Request{TIn: 320, Velocity: 1.5, TJacket: 280},
	}

	results, err := RunSweep(context.Background(), sw, reactor.DefaultParams())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 points, got %d", len(results))
	}

	// U=0 is rejected by parameter validation
	if !errors.Is(results[0].Err, dynamo.ErrParameterBounds) {
		t.Errorf("expected bounds error at U=0, got %v", results[0].Err)
	}
	if results[1].ParamValue != 500 || results[2].ParamValue != 1000 {
		t.Errorf("unexpected values: %v %v", results[1].ParamValue, results[2].ParamValue)
	}
	if results[2].Summary.MaxTemperature > results[1].Summary.MaxTemperature {
		t.Errorf("stronger cooling should not raise the peak: %v > %v",
			results[2].Summary.MaxTemperature, results[1].Summary.MaxTemperature)
	}
}

func TestRunSweep_Errors(t *testing.T) {
	base := reactor.DefaultParams()
	if _, err := RunSweep(context.Background(), &ParameterSweep{ParamName: "nope", NumSteps: 2}, base); err == nil {
		t.Error("expected error for unknown param")
	}
	if _, err := RunSweep(context.Background(), &ParameterSweep{ParamName: "u", NumSteps: 0}, base); err == nil {
		t.Error("expected error for zero steps")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSweep(ctx, &ParameterSweep{ParamName: "u", ParamMin: 100, ParamMax: 200, NumSteps: 2,
		Request: reactor.Request{TIn: 300, Velocity: 2, TJacket: 280}}, base)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
