package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"gomonte/domain/core"
	"gomonte/domain/montecarlo"
)

// SweepService runs the hit-or-miss estimator across every criterion for one
// target function. Each goroutine builds its own engine: engines are
// single-threaded and must not be shared.
type SweepService struct {
	simulations *SimulationService
}

// SweepRequest defines the inputs for a full criterion sweep
type SweepRequest struct {
	Function string  `json:"function"`
	Low      float64 `json:"lowest"`
	High     float64 `json:"highest"`
	Samples  int     `json:"n_samples"`
	Seed     uint64  `json:"seed,omitempty"`
}

// CriterionEstimate pairs one criterion with its simulation
type CriterionEstimate struct {
	Criterion  string                 `json:"criteria"`
	Simulation *montecarlo.Simulation `json:"simulation"`
}

// SweepResult contains the complete output of a criterion sweep
type SweepResult struct {
	SweepID   core.ID             `json:"sweep_id"`
	Request   SweepRequest        `json:"request"`
	Estimates []CriterionEstimate `json:"estimates"`
	RuntimeMs int64               `json:"runtime_ms"`
}

// NewSweepService creates a sweep service on top of the simulation service
func NewSweepService(simulations *SimulationService) *SweepService {
	return &SweepService{simulations: simulations}
}

// Run executes the hit-or-miss method once per criterion, concurrently
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	startTime := time.Now()

	names := montecarlo.CriterionNames()
	estimates := make([]CriterionEstimate, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			run, err := s.simulations.Run(ctx, SimulationRequest{
				Method:    string(montecarlo.MethodHitOrMiss),
				Function:  req.Function,
				Criterion: name,
				Low:       req.Low,
				High:      req.High,
				Samples:   req.Samples,
				Seed:      req.Seed,
			})
			if err != nil {
				return err
			}
			estimates[i] = CriterionEstimate{Criterion: name, Simulation: run.Simulation}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SweepResult{
		SweepID:   core.NewID(),
		Request:   req,
		Estimates: estimates,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}
