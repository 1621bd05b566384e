package montecarlo

import (
	"math"

	"github.com/montanaflynn/stats"

	"gomonte/domain/core"
)

// Method tags the estimator that produced a Simulation.
type Method string

const (
	MethodHitOrMiss Method = "hitormiss"
	MethodAverage   Method = "average"
)

// Summary condenses the sampled function values and the precision of the
// estimate. It is derived once, at packaging time.
type Summary struct {
	MeanY    float64 `json:"mean_y"`
	StdDevY  float64 `json:"std_dev_y"`
	MinY     float64 `json:"min_y"`
	MaxY     float64 `json:"max_y"`
	StdError float64 `json:"std_error"` // standard error of the estimate
}

// Simulation is the atomic record produced by one estimator call. It is never
// mutated after construction; plotting and export collaborators read only the
// fields documented for its Method.
//
// JSON field names follow the historical result layout so downstream
// consumers keep working.
type Simulation struct {
	ID     core.SimulationID `json:"id"`
	Method Method            `json:"type"`

	Low     float64    `json:"lowest"`
	High    float64    `json:"highest"`
	Samples int        `json:"n_samples"`
	Crit    *Criterion `json:"criteria,omitempty"` // hit-or-miss only

	SampleX []float64 `json:"random_values_x"`
	SampleY []float64 `json:"random_values_y"`

	// Hit-or-miss only: order-preserving partitions of the candidate draw.
	HitX  []float64 `json:"hit_values_x,omitempty"`
	HitY  []float64 `json:"hit_values_y,omitempty"`
	MissX []float64 `json:"miss_values_x,omitempty"`
	MissY []float64 `json:"miss_values_y,omitempty"`
	FMax  float64   `json:"f_max,omitempty"`

	Estimate float64 `json:"result"`
	Summary  Summary `json:"summary"`

	ComputedAt core.Timestamp `json:"computed_at"`
}

// IsHitOrMiss reports whether the record carries the geometric variant fields.
func (s *Simulation) IsHitOrMiss() bool {
	return s.Method == MethodHitOrMiss
}

// hitOrMissInputs gathers everything the engine computed for one
// hit-or-miss call.
type hitOrMissInputs struct {
	low, high    float64
	samples      int
	criterion    Criterion
	sampleX      []float64
	sampleY      []float64
	hitX, hitY   []float64
	missX, missY []float64
	fMax         float64
	estimate     float64
}

func newHitOrMissSimulation(in hitOrMissInputs) *Simulation {
	crit := in.criterion
	sim := &Simulation{
		ID:         core.SimulationID(core.NewID()),
		Method:     MethodHitOrMiss,
		Low:        in.low,
		High:       in.high,
		Samples:    in.samples,
		Crit:       &crit,
		SampleX:    in.sampleX,
		SampleY:    in.sampleY,
		HitX:       in.hitX,
		HitY:       in.hitY,
		MissX:      in.missX,
		MissY:      in.missY,
		FMax:       in.fMax,
		Estimate:   in.estimate,
		ComputedAt: core.Now(),
	}
	sim.Summary = summarize(in.sampleY, hitOrMissStdError(in))
	return sim
}

func newAverageSimulation(low, high float64, n int, xs, ys []float64, estimate float64) *Simulation {
	stdDev, _ := stats.StandardDeviation(ys)
	stdErr := math.Abs(high-low) * stdDev / math.Sqrt(float64(n))

	sim := &Simulation{
		ID:         core.SimulationID(core.NewID()),
		Method:     MethodAverage,
		Low:        low,
		High:       high,
		Samples:    n,
		SampleX:    xs,
		SampleY:    ys,
		Estimate:   estimate,
		ComputedAt: core.Now(),
	}
	sim.Summary = summarize(ys, stdErr)
	return sim
}

// summarize computes the sampled-Y descriptive block. The stats calls only
// fail on empty input, which the engine's sample-count check rules out.
func summarize(ys []float64, stdErr float64) Summary {
	mean, _ := stats.Mean(ys)
	stdDev, _ := stats.StandardDeviation(ys)
	minY, _ := stats.Min(ys)
	maxY, _ := stats.Max(ys)
	return Summary{
		MeanY:    mean,
		StdDevY:  stdDev,
		MinY:     minY,
		MaxY:     maxY,
		StdError: stdErr,
	}
}

// hitOrMissStdError is the binomial standard error of the hit fraction scaled
// onto the bounding rectangle area.
func hitOrMissStdError(in hitOrMissInputs) float64 {
	p := float64(len(in.hitX)) / float64(in.samples)
	return math.Abs(in.fMax*(in.high-in.low)) * math.Sqrt(p*(1-p)/float64(in.samples))
}
