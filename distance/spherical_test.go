package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/rectgo/geo"
)

// kmPerDegree is the great-circle length of one degree of arc.
const kmPerDegree = 111.19492664455873

func TestSphericalEarthInside(t *testing.T) {
	r := geo.Rect{X1: 40, Y1: 10, X2: 50, Y2: 20}

	tests := []struct {
		name string
		x, y float32
	}{
		{"Center", 45, 15},
		{"Corner", 40, 10},
		{"LatEdge", 50, 12},
		{"LonEdge", 43, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, SphericalEarth.Distance(tt.x, tt.y, r))
		})
	}
}

func TestSphericalEarthDegenerate(t *testing.T) {
	// A degenerate rectangle reduces to plain great-circle distance.
	vienna := geo.Rect{X1: 48.2082, Y1: 16.3738, X2: 48.2082, Y2: 16.3738}

	tests := []struct {
		name     string
		lat, lon float32
		expected float64
		delta    float64
	}{
		{"Berlin", 52.5200, 13.4050, 523.6, 1.0},
		{"Self", 48.2082, 16.3738, 0, 1e-9},
		{"Antipode", -48.2082, -163.6262, 20015.1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphericalEarth.Distance(tt.lat, tt.lon, vienna)
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestSphericalEarthLatBand(t *testing.T) {
	r := geo.Rect{X1: -10, Y1: 10, X2: 10, Y2: 20}

	// Query at the equator, 5 degrees west of the nearer lon edge: the
	// closest rectangle point is (0, 10).
	got := SphericalEarth.Distance(0, 5, r)
	assert.InDelta(t, 5*kmPerDegree, got, 0.5)
}

func TestSphericalEarthLonBand(t *testing.T) {
	r := geo.Rect{X1: 10, Y1: -20, X2: 20, Y2: 20}

	// Query due south of the rectangle: the closest point is (10, lon)
	// on the southern latitude edge.
	got := SphericalEarth.Distance(4, 0, r)
	assert.InDelta(t, 6*kmPerDegree, got, 0.5)
}

func TestSphericalEarthAntimeridian(t *testing.T) {
	// Rectangle hugging the antimeridian from the west; query just east
	// of it, expressed with the opposite longitude sign. The short way
	// around is half a degree of arc, not nearly the whole parallel.
	r := geo.Rect{X1: 0, Y1: 179, X2: 1, Y2: 180}

	got := SphericalEarth.Distance(0.5, -179.5, r)
	assert.InDelta(t, 55.6, got, 0.1)
	assert.LessOrEqual(t, got, greatCircleKm(0.5, -179.5, 0.5, 180)+0.1)
}

func TestSphericalEarthNearPole(t *testing.T) {
	// At high latitudes a longitude edge at the query latitude can be
	// farther than a poleward corner. The result must never exceed the
	// nearest corner distance.
	r := geo.Rect{X1: 85, Y1: 10, X2: 89, Y2: 20}
	lat, lon := float32(88.0), float32(-170.0)

	got := SphericalEarth.Distance(lat, lon, r)

	corners := [][2]float64{
		{85, 10}, {85, 20}, {89, 10}, {89, 20},
	}
	for _, c := range corners {
		assert.LessOrEqual(t, got, greatCircleKm(float64(lat), float64(lon), c[0], c[1])+1e-9)
	}
	assert.Positive(t, got)
}

func TestSphericalEarthCornerCase(t *testing.T) {
	r := geo.Rect{X1: 10, Y1: 10, X2: 20, Y2: 20}

	// Query diagonal from the rectangle: neither band applies, so the
	// nearest corner wins.
	got := SphericalEarth.Distance(25, 25, r)
	assert.InDelta(t, greatCircleKm(25, 25, 20, 20), got, 1e-9)
}
