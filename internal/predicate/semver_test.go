package predicate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemverPredicates(t *testing.T) {
	tests := []struct {
		name string
		verb Verb
		a, b string
		want Outcome
	}{
		{"release above pre-release", NumGt, "1.2.3", "1.2.3-alpha", True},
		{"patch ordering", NumLt, "1.0.0", "1.0.1", True},
		{"numeric fields not lexical", NumGt, "1.10.0", "1.9.0", True},
		{"numeric pre-release identifiers", NumLt, "1.0.0-alpha.2", "1.0.0-alpha.10", True},
		{"numeric below alphanumeric", NumLt, "1.0.0-1", "1.0.0-alpha", True},
		{"longer pre-release wins", NumLt, "1.0.0-alpha", "1.0.0-alpha.1", True},
		{"build metadata ignored", NumEq, "1.0.0+build.1", "1.0.0+build.2", True},
		{"ne", NumNe, "1.0.0", "2.0.0", True},
		{"ge equal", NumGe, "2.0.0", "2.0.0", True},
		{"le", NumLe, "2.0.1", "2.0.0", False},
		{"v prefix rejected", NumEq, "v1.0.0", "1.0.0", False},
		{"short form rejected", NumEq, "1.0", "1.0.0", False},
		{"leading zero rejected", NumEq, "01.0.0", "1.0.0", False},
		{"garbage", NumLt, "banana", "1.0.0", False},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalSemver(SemverRequest{Verb: tt.verb, A: tt.a, B: tt.b})
			assert.Equal(t, tt.want, got.Outcome)
		})
	}
}

func TestCompareSemverReportsUnparseable(t *testing.T) {
	_, err := CompareSemver("1.0.0", "not.a.version")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparseable))
}
