package montecarlo

import (
	"reflect"

	"gomonte/domain/core"
)

// Func is the target function contract: an ordered slice of X values mapped to
// a slice of Y values of identical length. Implementations must be pure.
type Func func(xs []float64) []float64

// probeSize is the length of the random slice used to exercise a candidate at
// assignment time. A function whose output shape depends on the input size is
// only caught later, by the per-call length check in the engine.
const probeSize = 10

// compileTarget normalizes a candidate into a Func without executing it.
// Typed vector and scalar functions take a fast path; anything else goes
// through reflection so dynamically supplied candidates still surface the
// right contract error.
func compileTarget(candidate interface{}) (Func, error) {
	if candidate == nil {
		return nil, core.ErrFunctionNotProvided
	}

	switch fn := candidate.(type) {
	case Func:
		if fn == nil {
			return nil, core.ErrFunctionNotProvided
		}
		return fn, nil
	case func([]float64) []float64:
		if fn == nil {
			return nil, core.ErrFunctionNotProvided
		}
		return Func(fn), nil
	case func(float64) float64:
		if fn == nil {
			return nil, core.ErrFunctionNotProvided
		}
		// Lift a scalar function to the vector contract.
		return func(xs []float64) []float64 {
			ys := make([]float64, len(xs))
			for i, x := range xs {
				ys[i] = fn(x)
			}
			return ys
		}, nil
	}

	rv := reflect.ValueOf(candidate)
	if rv.Kind() != reflect.Func {
		return nil, core.NewNotCallableError(candidate)
	}
	if rv.IsNil() {
		return nil, core.ErrFunctionNotProvided
	}

	rt := rv.Type()
	if rt.NumIn() != 1 || rt.In(0) != reflect.TypeOf([]float64(nil)) || rt.NumOut() != 1 {
		// Cannot be invoked as a one-argument X-to-Y function.
		return nil, core.NewNotCallableError(candidate)
	}

	return func(xs []float64) []float64 {
		out := rv.Call([]reflect.Value{reflect.ValueOf(xs)})[0].Interface()
		ys, ok := out.([]float64)
		if !ok {
			// Surfaces through the engine's panic recovery as an
			// execution failure on post-probe calls.
			panic(core.NewReturnTypeError(out))
		}
		return ys
	}, nil
}

// validateTarget probes a candidate with a small random slice and checks the
// full contract: provided, callable, numeric output, matching shape. It is a
// pure check run at assignment time only.
func validateTarget(candidate interface{}, probe []float64) (Func, error) {
	fn, err := compileTarget(candidate)
	if err != nil {
		return nil, err
	}

	ys, err := probeCall(candidate, probe)
	if err != nil {
		return nil, err
	}
	if len(ys) != len(probe) {
		return nil, core.NewReturnShapeError(len(probe), len(ys))
	}
	return fn, nil
}

// probeCall invokes the raw candidate against the probe slice, translating
// panics into execution errors and non-[]float64 outputs into return type
// errors.
func probeCall(candidate interface{}, probe []float64) (ys []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewExecutionError(r)
		}
	}()

	switch fn := candidate.(type) {
	case Func:
		return fn(probe), nil
	case func([]float64) []float64:
		return fn(probe), nil
	case func(float64) float64:
		ys = make([]float64, len(probe))
		for i, x := range probe {
			ys[i] = fn(x)
		}
		return ys, nil
	}

	out := reflect.ValueOf(candidate).Call([]reflect.Value{reflect.ValueOf(probe)})[0].Interface()
	ys, ok := out.([]float64)
	if !ok {
		return nil, core.NewReturnTypeError(out)
	}
	return ys, nil
}
