package element

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotImplemented is returned by constructors for pattern shapes
// that are reserved but not yet supported.
var ErrNotImplemented = errors.New("not implemented")

// Pattern is a named step-function multiplier over time.
// Each multiplier holds for StepSize seconds. A wrapping pattern
// repeats forever; a non-wrapping pattern is zero outside its span.
//
// The multiplier slice is always an independent copy: two Patterns
// built from the same source slice never alias each other.
type Pattern struct {
	Name        string
	multipliers []float64
	stepSize    float64
	wrap        bool
}

// NewPattern builds a pattern from a multiplier slice.
// The slice is copied, never aliased.
func NewPattern(name string, multipliers []float64, stepSize float64, wrap bool) *Pattern {
	m := make([]float64, len(multipliers))
	copy(m, multipliers)
	return &Pattern{
		Name:        name,
		multipliers: m,
		stepSize:    stepSize,
		wrap:        wrap,
	}
}

// NewConstantPattern coerces a scalar multiplier source
// into a single-element pattern.
func NewConstantPattern(name string, multiplier float64, stepSize float64, wrap bool) *Pattern {
	return NewPattern(name, []float64{multiplier}, stepSize, wrap)
}

// NewBinaryPattern builds an on/off square-wave pattern spanning duration
// at stepSize resolution: 1 on [startTime, endTime), 0 elsewhere.
// Binary patterns do not wrap.
func NewBinaryPattern(name string, startTime, endTime, stepSize, duration float64) *Pattern {
	patternStart := int(startTime / stepSize)
	patternEnd := int(endTime / stepSize)
	patternLen := int(math.Ceil(duration / stepSize))

	m := make([]float64, patternLen)
	for i := patternStart; i < patternEnd && i < patternLen; i++ {
		if i < 0 {
			continue
		}
		m[i] = 1.0
	}

	return &Pattern{
		Name:        name,
		multipliers: m,
		stepSize:    stepSize,
		wrap:        false,
	}
}

// NewSquareWavePattern is reserved for arbitrary-phase square waves.
// Use NewBinaryPattern for a single on-interval.
func NewSquareWavePattern(name string, amplitude, period, phase, stepSize float64) (*Pattern, error) {
	return nil, fmt.Errorf("square wave pattern: %w", ErrNotImplemented)
}

// Len returns the number of multipliers.
func (p *Pattern) Len() int { return len(p.multipliers) }

// StepSize returns the seconds each multiplier holds for.
func (p *Pattern) StepSize() float64 { return p.stepSize }

// Wrap reports whether the pattern repeats past its span.
func (p *Pattern) Wrap() bool { return p.wrap }

// Multipliers returns a copy of the multiplier slice.
// Callers may slice or mutate the result freely.
func (p *Pattern) Multipliers() []float64 {
	m := make([]float64, len(p.multipliers))
	copy(m, p.multipliers)
	return m
}

// SetMultipliers replaces the multiplier slice with a copy of m.
func (p *Pattern) SetMultipliers(m []float64) {
	c := make([]float64, len(m))
	copy(c, m)
	p.multipliers = c
}

// SetStepSize replaces the pattern timestep.
func (p *Pattern) SetStepSize(stepSize float64) { p.stepSize = stepSize }

// SetWrap replaces the wrap flag.
func (p *Pattern) SetWrap(wrap bool) { p.wrap = wrap }

// At returns the multiplier in effect at time t (seconds).
// An empty pattern is the constant 1. A wrapping pattern reduces the
// step index modulo its length; a non-wrapping pattern is 0 outside
// [0, Len×StepSize).
func (p *Pattern) At(t float64) float64 {
	n := len(p.multipliers)
	if n == 0 {
		return 1.0
	}

	step := int(math.Floor(t / p.stepSize))
	if p.wrap {
		step %= n
		if step < 0 {
			step += n
		}
		return p.multipliers[step]
	}

	if step < 0 || step >= n {
		return 0.0
	}
	return p.multipliers[step]
}

// Index returns the multiplier at sequence position i (not a time!).
// Wrap and clamp semantics match At: a wrapping pattern reduces i
// modulo its length, a non-wrapping pattern is 0 out of range,
// and an empty pattern is the constant 1.
func (p *Pattern) Index(i int) float64 {
	n := len(p.multipliers)
	if n == 0 {
		return 1.0
	}

	if p.wrap {
		i %= n
		if i < 0 {
			i += n
		}
		return p.multipliers[i]
	}

	if i < 0 || i >= n {
		return 0.0
	}
	return p.multipliers[i]
}

// Equal reports value equality: multipliers, step size, and wrap flag.
// The name does not participate.
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.stepSize != o.stepSize || p.wrap != o.wrap {
		return false
	}
	if len(p.multipliers) != len(o.multipliers) {
		return false
	}
	for i, m := range p.multipliers {
		if m != o.multipliers[i] {
			return false
		}
	}
	return true
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern: %q, multipliers=%v, step_size=%v, wrap=%t>",
		p.Name, p.multipliers, p.stepSize, p.wrap)
}
