package element_test

import (
	"math"
	"testing"

	"github.com/marisol/aquanet/element"
)

func TestNewTimeSeries(t *testing.T) {
	pattern := element.NewPattern("p", []float64{1.0, 1.2, 1.0}, 10, true)

	t.Run("rejects a non-finite base", func(t *testing.T) {
		_, err := element.NewTimeSeries(math.NaN(), pattern, "")
		assertGotError(t, err)

		_, err = element.NewTimeSeries(math.Inf(1), pattern, "")
		assertGotError(t, err)
	})

	t.Run("accepts zero and negative bases", func(t *testing.T) {
		for _, base := range []float64{0, -2.5} {
			ts, err := element.NewTimeSeries(base, pattern, "")
			assertNoError(t, err)
			assertFloat(t, ts.BaseValue(), base)
		}
	})

	t.Run("nil pattern means constant base", func(t *testing.T) {
		ts, err := element.NewTimeSeries(1.35, nil, "")
		assertNoError(t, err)
		assertFloat(t, ts.At(0), 1.35)
		assertFloat(t, ts.At(86400), 1.35)
		assertString(t, ts.PatternName(), "")
	})
}

func TestTimeSeries_At(t *testing.T) {
	pattern := element.NewPattern("p", []float64{1.0, 1.2, 1.0}, 10, true)
	ts, err := element.NewTimeSeries(1.35, pattern, "")
	assertNoError(t, err)

	t.Run("scales the pattern by the base", func(t *testing.T) {
		assertFloatNear(t, ts.At(0), 1.35, 1e-12)
		assertFloatNear(t, ts.At(10), 1.62, 1e-12)
		assertFloatNear(t, ts.At(20), 1.35, 1e-12)
	})

	t.Run("inherits the pattern's wrap", func(t *testing.T) {
		assertFloatNear(t, ts.At(40), ts.At(10), 1e-12)
	})
}

func TestTimeSeries_GetValues(t *testing.T) {
	pattern := element.NewPattern("p", []float64{1.0, 1.2, 1.0}, 10, true)
	ts, err := element.NewTimeSeries(1.35, pattern, "")
	assertNoError(t, err)

	t.Run("one sample per step, inclusive of the end", func(t *testing.T) {
		got := ts.GetValues(0, 40, 10)
		want := []float64{1.35, 1.62, 1.35, 1.35, 1.62}
		assertFloatSlice(t, got, want, 1e-12)
	})

	t.Run("finer sampling repeats within a step", func(t *testing.T) {
		got := ts.GetValues(0, 40, 5)
		want := []float64{1.35, 1.35, 1.62, 1.62, 1.35, 1.35, 1.35, 1.35, 1.62}
		assertFloatSlice(t, got, want, 1e-12)
	})

	t.Run("degenerate window yields a single sample", func(t *testing.T) {
		got := ts.GetValues(10, 10, 5)
		assertFloatSlice(t, got, []float64{1.62}, 1e-12)
	})
}

func TestTimeSeries_Equal(t *testing.T) {
	pattern := element.NewPattern("p", []float64{1.0, 1.2, 1.0}, 10, true)

	t.Run("base, pattern, and category all participate", func(t *testing.T) {
		ts1, _ := element.NewTimeSeries(1.35, pattern, "residential")
		ts2, _ := element.NewTimeSeries(1.35, pattern, "residential")
		if !ts1.Equal(ts2) {
			t.Error("identical time series must be equal")
		}

		ts3, _ := element.NewTimeSeries(2.0, pattern, "residential")
		if ts1.Equal(ts3) {
			t.Error("different base must not be equal")
		}

		ts4, _ := element.NewTimeSeries(1.35, nil, "residential")
		if ts1.Equal(ts4) {
			t.Error("different pattern must not be equal")
		}

		ts5, _ := element.NewTimeSeries(1.35, pattern, "commercial")
		if ts1.Equal(ts5) {
			t.Error("different category must not be equal")
		}
	})
}

func TestTimeSeries_Setters(t *testing.T) {
	pattern := element.NewPattern("p", []float64{1.0, 1.2, 1.0}, 10, true)
	ts, err := element.NewTimeSeries(1.0, pattern, "")
	assertNoError(t, err)

	t.Run("SetBaseValue rejects non-finite values", func(t *testing.T) {
		assertGotError(t, ts.SetBaseValue(math.NaN()))
		assertNoError(t, ts.SetBaseValue(2.0))
		assertFloat(t, ts.BaseValue(), 2.0)
	})

	t.Run("SetCategory changes the label", func(t *testing.T) {
		ts.SetCategory("industrial")
		assertString(t, ts.Category(), "industrial")
	})
}

func assertNoError(t testing.TB, got error) {
	t.Helper()
	if got != nil {
		t.Errorf("got an error but didn't want one: %v", got)
	}
}

func assertFloatSlice(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch, got %d want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}
