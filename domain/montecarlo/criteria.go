package montecarlo

import (
	"strings"

	"gomonte/domain/core"
)

// Criterion selects how a freshly drawn candidate value is compared against
// the function-evaluated value to decide hit vs miss in the hit-or-miss method.
//
// To picture it with a gaussian bell between (0,0) and (3,3): with "minor" the
// hit points are the ones inside the bell, with "major" the ones outside it.
// The other criteria follow from the same principle.
type Criterion int

const (
	CriterionMinor Criterion = iota
	CriterionMinorEqual
	CriterionEqual
	CriterionNotEqual
	CriterionMajorEqual
	CriterionMajor
)

// predicate compares one candidate value against one actual value.
type predicate func(candidate, actual float64) bool

// criterionPolicy holds the hit/miss predicate pair for one criterion.
// The two predicates are exact logical complements for finite inputs.
type criterionPolicy struct {
	name string
	hit  predicate
	miss predicate
}

// Equality criteria compare floats exactly, no tolerance. Continuous functions
// will rarely produce equal values; that is the documented behavior.
var criterionPolicies = [...]criterionPolicy{
	CriterionMinor: {
		name: "minor",
		hit:  func(a, b float64) bool { return a < b },
		miss: func(a, b float64) bool { return a >= b },
	},
	CriterionMinorEqual: {
		name: "minor_equal",
		hit:  func(a, b float64) bool { return a <= b },
		miss: func(a, b float64) bool { return a > b },
	},
	CriterionEqual: {
		name: "equal",
		hit:  func(a, b float64) bool { return a == b },
		miss: func(a, b float64) bool { return a != b },
	},
	CriterionNotEqual: {
		name: "not_equal",
		hit:  func(a, b float64) bool { return a != b },
		miss: func(a, b float64) bool { return a == b },
	},
	CriterionMajorEqual: {
		name: "major_equal",
		hit:  func(a, b float64) bool { return a >= b },
		miss: func(a, b float64) bool { return a < b },
	},
	CriterionMajor: {
		name: "major",
		hit:  func(a, b float64) bool { return a > b },
		miss: func(a, b float64) bool { return a <= b },
	},
}

// CriterionNames returns the valid criterion names in declaration order.
func CriterionNames() []string {
	names := make([]string, len(criterionPolicies))
	for i, p := range criterionPolicies {
		names[i] = p.name
	}
	return names
}

// ParseCriterion resolves a criterion by name. Hyphenated spellings
// ("minor-equal") are accepted alongside the canonical underscore form.
func ParseCriterion(name string) (Criterion, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), "-", "_")
	for i, p := range criterionPolicies {
		if p.name == normalized {
			return Criterion(i), nil
		}
	}
	return 0, core.NewUnknownCriterionError(name, CriterionNames())
}

// Valid reports whether c is one of the declared criteria.
func (c Criterion) Valid() bool {
	return c >= 0 && int(c) < len(criterionPolicies)
}

// String returns the canonical criterion name.
func (c Criterion) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return criterionPolicies[c].name
}

// MarshalJSON encodes the criterion as its canonical name.
func (c Criterion) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a criterion from its name.
func (c *Criterion) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, err := ParseCriterion(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Masks applies the criterion's hit/miss predicates elementwise over the
// candidate and actual values. The slices must have equal length; every index
// is flagged in exactly one of the two returned masks.
func (c Criterion) Masks(candidates, actual []float64) (hit, miss []bool) {
	policy := criterionPolicies[c]
	hit = make([]bool, len(candidates))
	miss = make([]bool, len(candidates))
	for i := range candidates {
		hit[i] = policy.hit(candidates[i], actual[i])
		miss[i] = policy.miss(candidates[i], actual[i])
	}
	return hit, miss
}
