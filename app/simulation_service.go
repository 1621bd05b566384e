package app

import (
	"context"
	"time"

	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
	"gomonte/internal/config"
)

// SimulationService turns boundary-level requests (functions and criteria by
// name) into engine runs. One engine is built per request; nothing is shared
// between calls.
type SimulationService struct {
	defaults config.SimulationConfig
}

// SimulationRequest defines the inputs for one estimator run
type SimulationRequest struct {
	Method    string  `json:"method"`
	Function  string  `json:"function"`
	Criterion string  `json:"criteria"`
	Low       float64 `json:"lowest"`
	High      float64 `json:"highest"`
	Samples   int     `json:"n_samples"`
	Seed      uint64  `json:"seed,omitempty"`
}

// SimulationRun wraps a simulation with run-level metadata
type SimulationRun struct {
	RunID      core.RunID             `json:"run_id"`
	Request    SimulationRequest      `json:"request"`
	Simulation *montecarlo.Simulation `json:"simulation"`
	RuntimeMs  int64                  `json:"runtime_ms"`
}

// NewSimulationService creates a simulation service with the given defaults
func NewSimulationService(defaults config.SimulationConfig) *SimulationService {
	return &SimulationService{defaults: defaults}
}

// applyDefaults fills the request fields the caller left empty
func (s *SimulationService) applyDefaults(req SimulationRequest) SimulationRequest {
	if req.Method == "" {
		req.Method = string(montecarlo.MethodAverage)
	}
	if req.Function == "" {
		req.Function = s.defaults.DefaultFunction
	}
	if req.Criterion == "" {
		req.Criterion = s.defaults.DefaultCriterion
	}
	if req.Samples == 0 {
		req.Samples = s.defaults.DefaultSamples
	}
	if req.Seed == 0 {
		req.Seed = s.defaults.Seed
	}
	return req
}

// buildEngine resolves the named function and criterion and constructs a
// fresh engine for them.
func buildEngine(req SimulationRequest) (*montecarlo.Engine, error) {
	fn, err := montecarlo.Lookup(req.Function)
	if err != nil {
		return nil, err
	}
	criterion, err := montecarlo.ParseCriterion(req.Criterion)
	if err != nil {
		return nil, err
	}

	opts := []montecarlo.Option{montecarlo.WithCriterion(criterion)}
	if req.Seed != 0 {
		opts = append(opts, montecarlo.WithSeed(req.Seed))
	}
	return montecarlo.New(fn, opts...)
}

// Run executes one estimator call described by the request
func (s *SimulationService) Run(ctx context.Context, req SimulationRequest) (*SimulationRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req = s.applyDefaults(req)
	engine, err := buildEngine(req)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	var sim *montecarlo.Simulation
	switch montecarlo.Method(req.Method) {
	case montecarlo.MethodHitOrMiss:
		sim, err = engine.HitOrMiss(req.Low, req.High, req.Samples)
	case montecarlo.MethodAverage:
		sim, err = engine.Average(req.Low, req.High, req.Samples)
	default:
		return nil, core.NewUnknownMethodError(req.Method,
			[]string{string(montecarlo.MethodHitOrMiss), string(montecarlo.MethodAverage)})
	}
	if err != nil {
		return nil, err
	}

	return &SimulationRun{
		RunID:      core.RunID(core.NewID()),
		Request:    req,
		Simulation: sim,
		RuntimeMs:  time.Since(startTime).Milliseconds(),
	}, nil
}
