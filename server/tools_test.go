package aquanet

import (
	"math"
	"testing"
)

func TestFillEnvVar(t *testing.T) {
	t.Run("returns the set value", func(t *testing.T) {
		t.Setenv("AQUANET_TEST_EV", "/etc/aquanet/config.json")
		got := FillEnvVar("AQUANET_TEST_EV")
		want := "/etc/aquanet/config.json"
		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})

	t.Run("returns the default when unset", func(t *testing.T) {
		got := FillEnvVar("AQUANET_TEST_EV_MISSING")
		want := "ENOENT"
		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	})
}

func TestFloatPrecise(t *testing.T) {
	cases := []struct {
		f      float64
		places int
		want   float64
	}{
		{3.14159, 2, 3.14},
		{3.14159, 4, 3.1416},
		{0.076923, 3, 0.077},
		{100, 2, 100},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
	}
	for _, c := range cases {
		if got := FloatPrecise(c.f, c.places); got != c.want {
			t.Errorf("FloatPrecise(%v, %d) = %v, want %v", c.f, c.places, got, c.want)
		}
	}
}

func TestRelativeError(t *testing.T) {
	t.Run("matching values have no error", func(t *testing.T) {
		if got := RelativeError(130, 130); got != 0 {
			t.Errorf("got %v want 0", got)
		}
	})

	t.Run("scales by the reference", func(t *testing.T) {
		if got := RelativeError(110, 100); math.Abs(got-0.1) > 1e-12 {
			t.Errorf("got %v want 0.1", got)
		}
	})

	t.Run("zero reference", func(t *testing.T) {
		if got := RelativeError(0, 0); got != 0 {
			t.Errorf("got %v want 0", got)
		}
		if got := RelativeError(5, 0); !math.IsInf(got, 1) {
			t.Errorf("got %v want +Inf", got)
		}
	})
}
