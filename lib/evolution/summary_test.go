package evolution

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
)

func TestPercentMath(t *testing.T) {
	testgroup.RunInParallel(t, &PercentMathTests{})
}

type PercentMathTests struct {
}

func (g *PercentMathTests) ZeroTotalMeansZeroPercent(t *testgroup.T) {
	t.Equal(0.0, percentOf(0, 0))
	t.Equal(0.0, percentOf(5, 0))
}

func (g *PercentMathTests) WholeFileEvolved(t *testgroup.T) {
	t.Equal(100.0, percentOf(7, 7))
}

func (g *PercentMathTests) RoundsHalfAwayFromZero(t *testgroup.T) {
	t.Equal(0.13, round2(0.125))
	t.Equal(33.33, round2(100.0/3))
	t.Equal(66.67, round2(200.0/3))
}

func (g *PercentMathTests) PercentFormula(t *testgroup.T) {
	// evolutionPercent = round((b-a)/b*100, 2) for a base lines of b total.
	cases := []struct {
		base, total int
		expected    float64
	}{
		{0, 1, 100.00},
		{1, 1, 0.00},
		{40, 100, 60.00},
		{1, 3, 66.67},
		{2, 3, 33.33},
		{999, 1000, 0.10},
	}

	for _, c := range cases {
		t.Equal(c.expected, percentOf(c.total-c.base, c.total))
	}
}
