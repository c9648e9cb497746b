package element

import "fmt"

// Curve is a named, typed sequence of (x, y) points, e.g. a pump or
// head curve. The type tag is carried through unchanged. Points are
// deep-copied at construction so curves never alias a source slice.
type Curve struct {
	Name      string
	CurveType string // "HEAD", "PUMP", "EFFICIENCY", "VOLUME"
	points    [][2]float64
}

// NewCurve builds a curve from a point slice. The points are copied.
func NewCurve(name, curveType string, points [][2]float64) *Curve {
	p := make([][2]float64, len(points))
	copy(p, points)
	return &Curve{
		Name:      name,
		CurveType: curveType,
		points:    p,
	}
}

// NumPoints returns the number of points.
func (c *Curve) NumPoints() int { return len(c.points) }

// Point returns the point at index i.
func (c *Curve) Point(i int) [2]float64 { return c.points[i] }

// Points returns a copy of the point slice.
func (c *Curve) Points() [][2]float64 {
	p := make([][2]float64, len(c.points))
	copy(p, c.points)
	return p
}

// Equal reports value equality over name, type, and every point.
func (c *Curve) Equal(o *Curve) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.Name != o.Name || c.CurveType != o.CurveType {
		return false
	}
	if len(c.points) != len(o.points) {
		return false
	}
	for i, p := range c.points {
		if p != o.points[i] {
			return false
		}
	}
	return true
}

func (c *Curve) String() string {
	return fmt.Sprintf("<Curve: %q, curve_type=%q, points=%v>",
		c.Name, c.CurveType, c.points)
}
