package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntPredicates(t *testing.T) {
	tests := []struct {
		name string
		req  IntRequest
		want Outcome
	}{
		{"eq", IntRequest{Verb: NumEq, A: 5, B: 5}, True},
		{"ne", IntRequest{Verb: NumNe, A: 5, B: 5}, False},
		{"gt", IntRequest{Verb: NumGt, A: 6, B: 5}, True},
		{"ge equal", IntRequest{Verb: NumGe, A: 5, B: 5}, True},
		{"lt negative", IntRequest{Verb: NumLt, A: -5, B: 3}, True},
		{"le", IntRequest{Verb: NumLe, A: 4, B: 3}, False},
		{"in-range lower bound", IntRequest{Verb: NumInRange, A: 1, B: 1, C: 10}, True},
		{"in-range upper bound", IntRequest{Verb: NumInRange, A: 10, B: 1, C: 10}, True},
		{"in-range outside", IntRequest{Verb: NumInRange, A: 11, B: 1, C: 10}, False},
		{"extremes", IntRequest{Verb: NumLt, A: math.MinInt64, B: math.MaxInt64}, True},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalInt(tt.req).Outcome)
		})
	}
}

func TestFloatPredicates(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	// Summed at run time; as constants 0.1 + 0.2 folds to exactly 0.3.
	tenth, fifth := 0.1, 0.2
	sum := tenth + fifth
	tests := []struct {
		name string
		req  FloatRequest
		want Outcome
	}{
		{"eq is exact", FloatRequest{Verb: NumEq, A: sum, B: 0.3}, False},
		{"eq", FloatRequest{Verb: NumEq, A: 1.5, B: 1.5}, True},
		{"ne", FloatRequest{Verb: NumNe, A: sum, B: 0.3}, True},
		{"approx-eq", FloatRequest{Verb: NumApproxEq, A: sum, B: 0.3, C: 1e-9}, True},
		{"approx-eq zero epsilon", FloatRequest{Verb: NumApproxEq, A: sum, B: 0.3}, False},
		{"approx-eq outside epsilon", FloatRequest{Verb: NumApproxEq, A: 1, B: 1.1, C: 0.01}, False},
		{"gt", FloatRequest{Verb: NumGt, A: 2.5, B: 2.4}, True},
		{"ge", FloatRequest{Verb: NumGe, A: 2.5, B: 2.5}, True},
		{"lt", FloatRequest{Verb: NumLt, A: -1, B: 0}, True},
		{"le", FloatRequest{Verb: NumLe, A: 1, B: 0}, False},
		{"in-range", FloatRequest{Verb: NumInRange, A: 0, B: 1, C: 0.5}, True},
		{"in-range outside", FloatRequest{Verb: NumInRange, A: 0, B: 1, C: 1.5}, False},
		{"positive", FloatRequest{Verb: NumPositive, A: 0.001}, True},
		{"zero is not positive", FloatRequest{Verb: NumPositive, A: 0}, False},
		{"negative", FloatRequest{Verb: NumNegative, A: -0.5}, True},
		{"nan eq", FloatRequest{Verb: NumEq, A: nan, B: nan}, False},
		{"nan ne", FloatRequest{Verb: NumNe, A: nan, B: 1}, True},
		{"inf eq inf", FloatRequest{Verb: NumEq, A: inf, B: inf}, False},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalFloat(tt.req).Outcome)
		})
	}
}
