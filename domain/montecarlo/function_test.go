package montecarlo

import (
	"errors"
	"strings"
	"testing"

	"gomonte/domain/core"
)

func probeValues() []float64 {
	probe := make([]float64, probeSize)
	for i := range probe {
		probe[i] = float64(i) / probeSize
	}
	return probe
}

func TestValidateTarget_ContractFailures(t *testing.T) {
	tests := []struct {
		name      string
		candidate interface{}
		wantErr   error
	}{
		{"nil candidate", nil, core.ErrFunctionNotProvided},
		{"nil typed func", Func(nil), core.ErrFunctionNotProvided},
		{"not a function", "string", core.ErrFunctionNotCallable},
		{"integer", 42, core.ErrFunctionNotCallable},
		{"zero-argument function", func() int { return 1 }, core.ErrFunctionNotCallable},
		{"string-returning function", func(xs []float64) string { return "string" }, core.ErrFunctionReturnType},
		{"int-slice-returning function", func(xs []float64) []int { return []int{1} }, core.ErrFunctionReturnType},
		{"short output", func(xs []float64) []float64 { return []float64{1, 2} }, core.ErrFunctionReturnShape},
		{"panicking function", func(xs []float64) []float64 { panic("boom") }, core.ErrFunctionExecution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateTarget(tt.candidate, probeValues())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateTarget(%s) = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTarget_ReturnShapeReportsLengths(t *testing.T) {
	_, err := validateTarget(func(xs []float64) []float64 { return []float64{1, 2} }, probeValues())
	if !errors.Is(err, core.ErrFunctionReturnShape) {
		t.Fatalf("expected ErrFunctionReturnShape, got %v", err)
	}
	if !strings.Contains(err.Error(), "X(10)") || !strings.Contains(err.Error(), "Y(2)") {
		t.Errorf("shape error %q should report X(10) and Y(2)", err.Error())
	}
}

func TestValidateTarget_AcceptsVectorFunction(t *testing.T) {
	fn, err := validateTarget(Gauss, probeValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ys := fn([]float64{0})
	if len(ys) != 1 || ys[0] != 1 {
		t.Errorf("gauss(0) = %v, want [1]", ys)
	}
}

func TestValidateTarget_LiftsScalarFunction(t *testing.T) {
	fn, err := validateTarget(func(x float64) float64 { return x * x }, probeValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ys := fn([]float64{2, 3})
	if ys[0] != 4 || ys[1] != 9 {
		t.Errorf("lifted square = %v, want [4 9]", ys)
	}
}

func TestLookup(t *testing.T) {
	fn, err := Lookup("gauss")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn == nil {
		t.Fatal("Lookup returned nil function")
	}

	_, err = Lookup("laplace")
	if !errors.Is(err, core.ErrUnknownFunction) {
		t.Errorf("Lookup(laplace) = %v, want ErrUnknownFunction", err)
	}
}
