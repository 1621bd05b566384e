package montecarlo

import (
	"math"
	"sort"

	"gomonte/domain/core"
)

// Gauss is the unnormalized gaussian exp(-x²/2). Its integral over the whole
// real line is √(2π), which makes it a handy benchmark target.
func Gauss(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Exp(-x * x / 2)
	}
	return ys
}

// Square is f(x) = x².
func Square(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}
	return ys
}

// Cube is f(x) = x³.
func Cube(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x * x
	}
	return ys
}

// Sine is f(x) = sin(x).
func Sine(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}
	return ys
}

// Absolute is f(x) = |x|.
func Absolute(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Abs(x)
	}
	return ys
}

// Linear is f(x) = x.
func Linear(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	copy(ys, xs)
	return ys
}

// library maps the names accepted at the CLI/HTTP boundary to target
// functions. The core never resolves functions by name on the sampling path.
var library = map[string]Func{
	"gauss":    Gauss,
	"square":   Square,
	"cube":     Cube,
	"sine":     Sine,
	"absolute": Absolute,
	"linear":   Linear,
}

// FunctionNames returns the names of the built-in target functions, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a built-in target function by name.
func Lookup(name string) (Func, error) {
	fn, ok := library[name]
	if !ok {
		return nil, core.NewUnknownFunctionError(name, FunctionNames())
	}
	return fn, nil
}
