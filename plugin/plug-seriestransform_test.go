package plugin_test

import (
	"math"
	"testing"

	"github.com/marisol/aquanet/plugin"
	"github.com/marisol/aquanet/results"
)

func makeSeries(t *testing.T, times, values []float64) *results.Series {
	t.Helper()
	s, err := results.NewSeries(times, values)
	assertNoError(t, err)
	return s
}

func TestCumSumPlugin(t *testing.T) {
	p := &plugin.CumSumPlugin{}

	t.Run("identifies itself", func(t *testing.T) {
		assertString(t, p.Type(), "cumsum")
	})

	t.Run("accumulates the series", func(t *testing.T) {
		s := makeSeries(t, []float64{0, 900, 1800}, []float64{5, 10, 15})
		out, err := p.Transform("mass_consumed", s)
		assertNoError(t, err)
		assertFloatSlice(t, out.Values(), []float64{5, 15, 30}, 1e-12)
	})

	t.Run("leaves the source untouched", func(t *testing.T) {
		s := makeSeries(t, []float64{0, 900}, []float64{5, 10})
		_, err := p.Transform("mass_consumed", s)
		assertNoError(t, err)
		assertFloatSlice(t, s.Values(), []float64{5, 10}, 0)
	})

	t.Run("rejects a nil series", func(t *testing.T) {
		_, err := p.Transform("mass_consumed", nil)
		assertGotError(t, err)
	})
}

func TestRunningMaxPlugin(t *testing.T) {
	p := &plugin.RunningMaxPlugin{}

	t.Run("identifies itself", func(t *testing.T) {
		assertString(t, p.Type(), "running_max")
	})

	t.Run("latches the peak", func(t *testing.T) {
		s := makeSeries(t, []float64{0, 1, 2, 3}, []float64{1, 3, 2, 5})
		out, err := p.Transform("extent_indirect", s)
		assertNoError(t, err)
		assertFloatSlice(t, out.Values(), []float64{1, 3, 3, 5}, 0)
		if !out.IsNonDecreasing() {
			t.Error("running max must be non-decreasing")
		}
	})

	t.Run("is an identity for non-decreasing input", func(t *testing.T) {
		s := makeSeries(t, []float64{0, 1, 2}, []float64{0, 100, 130})
		out, err := p.Transform("extent_indirect", s)
		assertNoError(t, err)
		assertFloatSlice(t, out.Values(), s.Values(), 0)
	})

	t.Run("rejects a nil series", func(t *testing.T) {
		_, err := p.Transform("extent_indirect", nil)
		assertGotError(t, err)
	})
}

func TestTransformerLookup(t *testing.T) {
	t.Run("resolves registered transformers", func(t *testing.T) {
		for _, name := range []string{"cumsum", "running_max"} {
			tr, err := plugin.TransformerLookup(name)
			assertNoError(t, err)
			assertString(t, tr.Type(), name)
		}
	})

	t.Run("unknown name is an error", func(t *testing.T) {
		_, err := plugin.TransformerLookup("derivative")
		assertGotError(t, err)
	})
}

func assertString(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func assertInt(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("did not get correct value, got %d, want %d", got, want)
	}
}

func assertNoError(t testing.TB, got error) {
	t.Helper()
	if got != nil {
		t.Fatalf("got an error but didn't want one: %v", got)
	}
}

func assertGotError(t testing.TB, got error) {
	t.Helper()
	if got == nil {
		t.Errorf("Expected an error but got %q", got)
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
