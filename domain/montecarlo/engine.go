package montecarlo

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"gomonte/domain/core"
)

// Engine estimates definite integrals of a target function with the
// hit-or-miss and average Monte Carlo methods.
//
// An Engine owns exactly one validated target function and one criterion at a
// time. It is single-threaded: reconfiguring while a sampling call is in
// flight on another goroutine is not supported. A target function that never
// returns blocks the caller; guarding against that is a caller responsibility.
type Engine struct {
	target    Func
	criterion Criterion
	src       rand.Source
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCriterion sets the hit-or-miss comparison criterion.
// The default is CriterionMinor, the most common configuration.
func WithCriterion(c Criterion) Option {
	return func(e *Engine) { e.criterion = c }
}

// WithSeed makes the engine's sampling deterministic.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.src = rand.NewPCG(seed, seed) }
}

// WithSource sets a custom random source.
func WithSource(src rand.Source) Option {
	return func(e *Engine) { e.src = src }
}

// New builds an engine around the target candidate, validating it against the
// function contract before committing it. The candidate may be a Func, a
// func([]float64) []float64, a scalar func(float64) float64, or any
// dynamically supplied value, in which case the contract errors of
// domain/core describe what went wrong.
func New(target interface{}, opts ...Option) (*Engine, error) {
	e := &Engine{criterion: CriterionMinor}
	for _, opt := range opts {
		opt(e)
	}
	if !e.criterion.Valid() {
		return nil, core.NewUnknownCriterionError(e.criterion.String(), CriterionNames())
	}
	if err := e.SetTarget(target); err != nil {
		return nil, err
	}
	return e, nil
}

// SetTarget replaces the target function after re-running the contract
// validation. On failure the previous target stays in place.
func (e *Engine) SetTarget(candidate interface{}) error {
	fn, err := validateTarget(candidate, e.uniform(0, 1, probeSize))
	if err != nil {
		return err
	}
	e.target = fn
	return nil
}

// SetCriterion replaces the comparison criterion. On failure the previous
// criterion stays in place.
func (e *Engine) SetCriterion(c Criterion) error {
	if !c.Valid() {
		return core.NewUnknownCriterionError(c.String(), CriterionNames())
	}
	e.criterion = c
	return nil
}

// Criterion returns the active comparison criterion.
func (e *Engine) Criterion() Criterion {
	return e.criterion
}

// Initialized reports whether the engine holds a validated target function.
// A zero-value Engine is uninitialized and rejects sampling calls.
func (e *Engine) Initialized() bool {
	return e.target != nil
}

// HitOrMiss estimates the integral of the target over [low, high) with the
// geometric hit-or-miss method: n candidate points are drawn inside the
// bounding rectangle of height fMax and classified by the active criterion;
// the hit fraction scales the rectangle area.
//
// Reversed bounds are accepted and flip the sign of the estimate, matching
// the average method.
func (e *Engine) HitOrMiss(low, high float64, n int) (*Simulation, error) {
	xs, ys, err := e.sampleTarget(low, high, n)
	if err != nil {
		return nil, err
	}

	fMax := floats.Max(ys)
	candidates := e.uniform(0, fMax, n)

	hitMask, missMask := e.criterion.Masks(candidates, ys)

	hitX, hitY := filter(xs, candidates, hitMask)
	missX, missY := filter(xs, candidates, missMask)

	estimate := fMax * (high - low) * float64(len(hitX)) / float64(n)

	return newHitOrMissSimulation(hitOrMissInputs{
		low: low, high: high, samples: n,
		criterion: e.criterion,
		sampleX:   xs, sampleY: ys,
		hitX: hitX, hitY: hitY,
		missX: missX, missY: missY,
		fMax:     fMax,
		estimate: estimate,
	}), nil
}

// Average estimates the integral of the target over [low, high) with the
// standard Monte Carlo mean estimator: the mean of n function values scaled
// by the interval width.
func (e *Engine) Average(low, high float64, n int) (*Simulation, error) {
	xs, ys, err := e.sampleTarget(low, high, n)
	if err != nil {
		return nil, err
	}

	estimate := floats.Sum(ys) / float64(n) * (high - low)

	return newAverageSimulation(low, high, n, xs, ys, estimate), nil
}

// sampleTarget draws n uniform X values in [low, high) and evaluates the
// target, enforcing the engine-level preconditions shared by both methods.
func (e *Engine) sampleTarget(low, high float64, n int) (xs, ys []float64, err error) {
	if n <= 0 {
		return nil, nil, core.NewInvalidSampleCountError(n)
	}
	if !e.Initialized() {
		return nil, nil, core.ErrEngineUninitialized
	}

	xs = e.uniform(low, high, n)
	ys, err = e.eval(xs)
	if err != nil {
		return nil, nil, err
	}
	if len(ys) != len(xs) {
		// The probe only sees probeSize elements; a size-dependent
		// function is caught here instead.
		return nil, nil, core.NewReturnShapeError(len(xs), len(ys))
	}
	return xs, ys, nil
}

// eval runs the target, converting panics into execution errors so a
// misbehaving function cannot take down the caller.
func (e *Engine) eval(xs []float64) (ys []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewExecutionError(r)
		}
	}()
	return e.target(xs), nil
}

// uniform draws n values from U[0,1) and rescales them onto [low, high),
// so reversed bounds produce a mirrored range rather than an error.
func (e *Engine) uniform(low, high float64, n int) []float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: e.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = u.Rand()*(high-low) + low
	}
	return out
}

// filter partitions (xs, candidates) by the mask, preserving sample order.
func filter(xs, candidates []float64, mask []bool) (fx, fy []float64) {
	fx = make([]float64, 0, len(xs))
	fy = make([]float64, 0, len(xs))
	for i, keep := range mask {
		if keep {
			fx = append(fx, xs[i])
			fy = append(fy, candidates[i])
		}
	}
	return fx, fy
}
