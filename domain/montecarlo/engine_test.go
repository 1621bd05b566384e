package montecarlo

import (
	"errors"
	"math"
	"testing"

	"gomonte/domain/core"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	e, err := New(Gauss, opts...)
	if err != nil {
		t.Fatalf("New(Gauss) failed: %v", err)
	}
	return e
}

func TestNew_Defaults(t *testing.T) {
	e := newTestEngine(t)
	if !e.Initialized() {
		t.Error("engine should be initialized after successful construction")
	}
	if e.Criterion() != CriterionMinor {
		t.Errorf("default criterion = %v, want minor", e.Criterion())
	}
}

func TestNew_ContractFailures(t *testing.T) {
	tests := []struct {
		name    string
		target  interface{}
		wantErr error
	}{
		{"no function", nil, core.ErrFunctionNotProvided},
		{"not callable", "string", core.ErrFunctionNotCallable},
		{"wrong return type", func(xs []float64) string { return "string" }, core.ErrFunctionReturnType},
		{"wrong return shape", func(xs []float64) []float64 { return []float64{1, 2} }, core.ErrFunctionReturnShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New(%s) = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestNew_UnknownCriterion(t *testing.T) {
	_, err := New(Gauss, WithCriterion(Criterion(42)))
	if !errors.Is(err, core.ErrUnknownCriterion) {
		t.Errorf("expected ErrUnknownCriterion, got %v", err)
	}
}

func TestAverage_GaussApproximatesSqrt2Pi(t *testing.T) {
	e := newTestEngine(t)

	sim, err := e.Average(-3, 3, 5000)
	if err != nil {
		t.Fatalf("Average failed: %v", err)
	}

	// The integral of exp(-x²/2) over [-3,3] is ~0.9973·√(2π) ≈ 2.4998.
	// Monte Carlo with 5000 samples lands well within a 10% band.
	want := math.Sqrt(2 * math.Pi)
	if math.Abs(sim.Estimate-want) > 0.1*want {
		t.Errorf("estimate = %v, want %v within 10%%", sim.Estimate, want)
	}

	if sim.Method != MethodAverage {
		t.Errorf("method = %q, want %q", sim.Method, MethodAverage)
	}
	if len(sim.SampleX) != 5000 || len(sim.SampleY) != 5000 {
		t.Errorf("sample lengths = %d/%d, want 5000", len(sim.SampleX), len(sim.SampleY))
	}
	if sim.Crit != nil {
		t.Error("average result should not carry a criterion")
	}
}

func TestHitOrMiss_PartitionSumsToN(t *testing.T) {
	e := newTestEngine(t)

	sim, err := e.HitOrMiss(-2, 3, 100)
	if err != nil {
		t.Fatalf("HitOrMiss failed: %v", err)
	}

	if got := len(sim.HitX) + len(sim.MissX); got != 100 {
		t.Errorf("len(hitX)+len(missX) = %d, want 100", got)
	}
	if got := len(sim.HitY) + len(sim.MissY); got != 100 {
		t.Errorf("len(hitY)+len(missY) = %d, want 100", got)
	}
	if len(sim.SampleX) != 100 || len(sim.SampleY) != 100 {
		t.Errorf("sample lengths = %d/%d, want 100", len(sim.SampleX), len(sim.SampleY))
	}
	if sim.Method != MethodHitOrMiss {
		t.Errorf("method = %q, want %q", sim.Method, MethodHitOrMiss)
	}
	if sim.Crit == nil || *sim.Crit != CriterionMinor {
		t.Errorf("criterion = %v, want minor", sim.Crit)
	}
}

func TestHitOrMiss_FMaxBoundsSamples(t *testing.T) {
	e := newTestEngine(t)

	sim, err := e.HitOrMiss(-3, 3, 500)
	if err != nil {
		t.Fatalf("HitOrMiss failed: %v", err)
	}

	for _, y := range sim.SampleY {
		if y > sim.FMax {
			t.Fatalf("sampled Y %v exceeds f_max %v", y, sim.FMax)
		}
	}
	// Gaussian peaks at 1; with 500 draws over [-3,3] the max gets close.
	if sim.FMax <= 0 || sim.FMax > 1 {
		t.Errorf("f_max = %v, want within (0, 1]", sim.FMax)
	}
}

func TestHitOrMiss_GaussEstimate(t *testing.T) {
	e := newTestEngine(t)

	sim, err := e.HitOrMiss(-3, 3, 10000)
	if err != nil {
		t.Fatalf("HitOrMiss failed: %v", err)
	}

	want := math.Sqrt(2 * math.Pi)
	if math.Abs(sim.Estimate-want) > 0.15*want {
		t.Errorf("estimate = %v, want %v within 15%%", sim.Estimate, want)
	}
}

func TestSampling_ReversedBoundsFlipSign(t *testing.T) {
	e := newTestEngine(t)

	sim, err := e.Average(3, -3, 2000)
	if err != nil {
		t.Fatalf("Average with reversed bounds failed: %v", err)
	}
	if sim.Estimate >= 0 {
		t.Errorf("reversed bounds should flip the estimate sign, got %v", sim.Estimate)
	}
}

func TestSampling_InvalidSampleCount(t *testing.T) {
	e := newTestEngine(t)

	for _, n := range []int{0, -5} {
		if _, err := e.HitOrMiss(-1, 1, n); !errors.Is(err, core.ErrInvalidSampleCount) {
			t.Errorf("HitOrMiss(n=%d) = %v, want ErrInvalidSampleCount", n, err)
		}
		if _, err := e.Average(-1, 1, n); !errors.Is(err, core.ErrInvalidSampleCount) {
			t.Errorf("Average(n=%d) = %v, want ErrInvalidSampleCount", n, err)
		}
	}
}

func TestSampling_UninitializedEngine(t *testing.T) {
	var e Engine

	if _, err := e.HitOrMiss(-1, 1, 10); !errors.Is(err, core.ErrEngineUninitialized) {
		t.Errorf("HitOrMiss on zero engine = %v, want ErrEngineUninitialized", err)
	}
	if _, err := e.Average(-1, 1, 10); !errors.Is(err, core.ErrEngineUninitialized) {
		t.Errorf("Average on zero engine = %v, want ErrEngineUninitialized", err)
	}
}

func TestSetTarget_KeepsPriorOnFailure(t *testing.T) {
	e := newTestEngine(t)

	err := e.SetTarget(func(xs []float64) []float64 { return []float64{1, 2} })
	if !errors.Is(err, core.ErrFunctionReturnShape) {
		t.Fatalf("expected ErrFunctionReturnShape, got %v", err)
	}

	// The prior valid target must still be usable.
	sim, err := e.Average(-1, 1, 100)
	if err != nil {
		t.Fatalf("engine unusable after failed SetTarget: %v", err)
	}
	if len(sim.SampleY) != 100 {
		t.Errorf("sample length = %d, want 100", len(sim.SampleY))
	}
}

func TestSetCriterion(t *testing.T) {
	e := newTestEngine(t)

	if err := e.SetCriterion(CriterionMajor); err != nil {
		t.Fatalf("SetCriterion(major) failed: %v", err)
	}
	if e.Criterion() != CriterionMajor {
		t.Errorf("criterion = %v, want major", e.Criterion())
	}

	if err := e.SetCriterion(Criterion(-1)); !errors.Is(err, core.ErrUnknownCriterion) {
		t.Fatalf("expected ErrUnknownCriterion, got %v", err)
	}
	if e.Criterion() != CriterionMajor {
		t.Errorf("failed SetCriterion must keep prior value, got %v", e.Criterion())
	}
}

func TestEngine_RecoversTargetPanicDuringSampling(t *testing.T) {
	calls := 0
	// Behaves during the 10-element probe, panics on the production size.
	flaky := func(xs []float64) []float64 {
		calls++
		if len(xs) > probeSize {
			panic("production-size failure")
		}
		return make([]float64, len(xs))
	}

	e, err := New(flaky, WithSeed(1))
	if err != nil {
		t.Fatalf("construction should pass the probe: %v", err)
	}

	if _, err := e.Average(0, 1, 100); !errors.Is(err, core.ErrFunctionExecution) {
		t.Errorf("expected ErrFunctionExecution, got %v", err)
	}
}

func TestEngine_SeededRunsAreReproducible(t *testing.T) {
	a, err := New(Gauss, WithSeed(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Gauss, WithSeed(99))
	if err != nil {
		t.Fatal(err)
	}

	simA, err := a.Average(-3, 3, 200)
	if err != nil {
		t.Fatal(err)
	}
	simB, err := b.Average(-3, 3, 200)
	if err != nil {
		t.Fatal(err)
	}

	if simA.Estimate != simB.Estimate {
		t.Errorf("seeded runs differ: %v vs %v", simA.Estimate, simB.Estimate)
	}
}
