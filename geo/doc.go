// Package geo provides the shared planar geometry types for rectgo:
// the Rect minimum bounding rectangle and its predicates.
package geo
