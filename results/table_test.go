package results_test

import (
	"math"
	"testing"

	"github.com/marisol/aquanet/results"
)

func TestNewTable(t *testing.T) {
	times := []float64{0, 900, 1800}

	t.Run("starts all-zero", func(t *testing.T) {
		tab, err := results.NewTable(times, []string{"101", "102"})
		assertNoError(t, err)
		assertInt(t, tab.Len(), 3)
		assertInt(t, tab.NumColumns(), 2)
		for _, id := range tab.IDs() {
			col, err := tab.Column(id)
			assertNoError(t, err)
			for _, v := range col {
				assertFloat(t, v, 0)
			}
		}
	})

	t.Run("rejects duplicate identifiers", func(t *testing.T) {
		_, err := results.NewTable(times, []string{"101", "101"})
		assertGotError(t, err)
	})

	t.Run("copies the time axis", func(t *testing.T) {
		src := append([]float64(nil), times...)
		tab, err := results.NewTable(src, []string{"101"})
		assertNoError(t, err)
		src[0] = 42
		assertFloat(t, tab.Times()[0], 0)
	})
}

func TestTable_Cells(t *testing.T) {
	tab, err := results.NewTable([]float64{0, 900, 1800}, []string{"101", "102"})
	assertNoError(t, err)

	t.Run("set then read back", func(t *testing.T) {
		assertNoError(t, tab.Set(1, "101", 3.5))
		got, err := tab.Value(1, "101")
		assertNoError(t, err)
		assertFloat(t, got, 3.5)
	})

	t.Run("unknown column is an error", func(t *testing.T) {
		_, err := tab.Column("999")
		assertGotError(t, err)
		_, err = tab.Value(0, "999")
		assertGotError(t, err)
		assertGotError(t, tab.Set(0, "999", 1))
	})

	t.Run("SetColumn enforces length", func(t *testing.T) {
		assertGotError(t, tab.SetColumn("102", []float64{1, 2}))
		assertNoError(t, tab.SetColumn("102", []float64{1, 2, 3}))
		got, err := tab.Value(2, "102")
		assertNoError(t, err)
		assertFloat(t, got, 3)
	})

	t.Run("SetColumn copies the values", func(t *testing.T) {
		src := []float64{4, 5, 6}
		assertNoError(t, tab.SetColumn("102", src))
		src[0] = 99
		got, err := tab.Value(0, "102")
		assertNoError(t, err)
		assertFloat(t, got, 4)
	})

	t.Run("HasColumn", func(t *testing.T) {
		if !tab.HasColumn("101") {
			t.Error("expected column 101")
		}
		if tab.HasColumn("999") {
			t.Error("did not expect column 999")
		}
	})
}

func TestTable_EmptyLike(t *testing.T) {
	tab, err := results.NewTable([]float64{0, 900}, []string{"101", "102"})
	assertNoError(t, err)
	assertNoError(t, tab.Set(0, "101", 7))

	out := tab.EmptyLike()
	assertInt(t, out.Len(), tab.Len())
	assertInt(t, out.NumColumns(), tab.NumColumns())
	got, err := out.Value(0, "101")
	assertNoError(t, err)
	assertFloat(t, got, 0)
}

func TestTable_SumRows(t *testing.T) {
	tab, err := results.NewTable([]float64{0, 900, 1800}, []string{"101", "102"})
	assertNoError(t, err)
	assertNoError(t, tab.SetColumn("101", []float64{1, 2, 3}))
	assertNoError(t, tab.SetColumn("102", []float64{10, 20, 30}))

	s := tab.SumRows()
	assertFloatSlice(t, s.Values(), []float64{11, 22, 33}, 0)
	assertFloatSlice(t, s.Times(), tab.Times(), 0)
}

func TestSeries(t *testing.T) {
	t.Run("rejects mismatched lengths", func(t *testing.T) {
		_, err := results.NewSeries([]float64{0, 900}, []float64{1})
		assertGotError(t, err)
	})

	t.Run("sum and cumulative sum", func(t *testing.T) {
		s, err := results.NewSeries([]float64{0, 900, 1800}, []float64{1, 2, 3})
		assertNoError(t, err)
		assertFloat(t, s.Sum(), 6)
		assertFloatSlice(t, s.CumSum().Values(), []float64{1, 3, 6}, 0)
		assertFloatSlice(t, s.Values(), []float64{1, 2, 3}, 0)
	})

	t.Run("running max latches the peak", func(t *testing.T) {
		s, err := results.NewSeries([]float64{0, 1, 2, 3, 4}, []float64{1, 3, 2, 5, 4})
		assertNoError(t, err)
		rm := s.RunningMax()
		assertFloatSlice(t, rm.Values(), []float64{1, 3, 3, 5, 5}, 0)
		if !rm.IsNonDecreasing() {
			t.Error("running max must be non-decreasing")
		}
		if s.IsNonDecreasing() {
			t.Error("source series is not non-decreasing")
		}
	})

	t.Run("value at time", func(t *testing.T) {
		s, err := results.NewSeries([]float64{0, 900, 1800}, []float64{1, 2, 3})
		assertNoError(t, err)
		got, err := s.ValueAtTime(900)
		assertNoError(t, err)
		assertFloat(t, got, 2)
		_, err = s.ValueAtTime(450)
		assertGotError(t, err)
	})
}

func assertFloat(t *testing.T, got, want float64) {
	t.Helper()
	if got != want {
		t.Errorf("did not get correct value, got %v, want %v", got, want)
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
		t.Errorf("got an error but didn't want one: %v", got)
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
