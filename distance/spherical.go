package distance

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/hupe1980/rectgo/geo"
)

// EarthRadiusKm is the mean earth radius used by SphericalEarth.
const EarthRadiusKm = 6371.0088

// SphericalEarth measures great-circle kilometers on a spherical earth.
// Rectangle X coordinates are latitudes in -90..90 degrees, Y
// coordinates are longitudes in -180..180 degrees. Distances wrap
// across the antimeridian.
var SphericalEarth Calculator = sphericalEarth{}

type sphericalEarth struct{}

func (sphericalEarth) Distance(x, y float32, r geo.Rect) float64 {
	if r.ContainsPoint(x, y) {
		return 0
	}

	lat := float64(x)
	lon := float64(y)

	best := math.Inf(1)
	consider := func(lat2, lon2 float64) {
		if d := greatCircleKm(lat, lon, lat2, lon2); d < best {
			best = d
		}
	}

	// Corner candidates bound every case below: the result never
	// exceeds the distance to the nearest corner.
	consider(float64(r.X1), float64(r.Y1))
	consider(float64(r.X1), float64(r.Y2))
	consider(float64(r.X2), float64(r.Y1))
	consider(float64(r.X2), float64(r.Y2))

	switch {
	case float64(r.X1) <= lat && lat <= float64(r.X2):
		// Same latitude band: the nearest rectangle point sits on a
		// longitude edge at the query latitude.
		consider(lat, float64(r.Y1))
		consider(lat, float64(r.Y2))
	case inLonBand(lon, float64(r.Y1), float64(r.Y2)):
		// Same longitude band: the nearest rectangle point sits on a
		// latitude edge along the query meridian.
		consider(float64(r.X1), lon)
		consider(float64(r.X2), lon)
	}

	return best
}

// inLonBand reports whether lon falls between lo and hi, allowing the
// query longitude to be expressed on the far side of the antimeridian.
func inLonBand(lon, lo, hi float64) bool {
	if lo <= lon && lon <= hi {
		return true
	}
	if lo <= lon+360 && lon+360 <= hi {
		return true
	}
	return lo <= lon-360 && lon-360 <= hi
}

// greatCircleKm returns the great-circle distance in kilometers between
// two degree-denominated coordinates. The shorter way around the sphere
// is always taken, so antimeridian wrap needs no special casing here.
func greatCircleKm(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusKm
}
