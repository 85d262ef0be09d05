package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/rectgo/geo"
)

// Calculator computes the minimum distance from a query point to a
// rectangle.
type Calculator interface {
	// Distance returns the minimum distance from (x, y) to any point of
	// r. It returns 0 when the point lies inside r, edges inclusive.
	Distance(x, y float32, r geo.Rect) float64
}

// Metric identifies a provided distance calculator.
type Metric int

const (
	// MetricEuclideanPlane measures straight-line distance on a flat
	// plane, in the coordinate units of the rectangles themselves.
	MetricEuclideanPlane Metric = iota

	// MetricSphericalEarth measures great-circle kilometers on a
	// spherical earth, reading x as latitude and y as longitude in
	// degrees.
	MetricSphericalEarth
)

// String returns a string representation of the Metric.
func (m Metric) String() string {
	switch m {
	case MetricEuclideanPlane:
		return "EuclideanPlane"
	case MetricSphericalEarth:
		return "SphericalEarth"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Provider returns the calculator for the given metric.
func Provider(m Metric) (Calculator, error) {
	switch m {
	case MetricEuclideanPlane:
		return EuclideanPlane, nil
	case MetricSphericalEarth:
		return SphericalEarth, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// EuclideanPlane measures straight-line distance on a flat plane.
var EuclideanPlane Calculator = euclideanPlane{}

type euclideanPlane struct{}

func (euclideanPlane) Distance(x, y float32, r geo.Rect) float64 {
	cx := (float64(r.X1) + float64(r.X2)) / 2
	cy := (float64(r.Y1) + float64(r.Y2)) / 2
	hx := (float64(r.X2) - float64(r.X1)) / 2
	hy := (float64(r.Y2) - float64(r.Y1)) / 2
	dx := math.Max(math.Abs(cx-float64(x))-hx, 0)
	dy := math.Max(math.Abs(cy-float64(y))-hy, 0)
	return math.Hypot(dx, dy)
}
