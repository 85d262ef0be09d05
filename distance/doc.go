// Package distance provides point-to-rectangle distance calculators
// used by rectgo for nearest-neighbor pruning and scoring.
//
// A Calculator returns the minimum distance from a query point to any
// point of a rectangle, and 0 when the point lies inside it. Two
// calculators are provided: EuclideanPlane for flat coordinates and
// SphericalEarth for latitude/longitude degrees on a spherical earth.
package distance
