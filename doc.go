// Package rectgo provides an immutable, bulk-loaded, in-memory spatial
// index over axis-aligned rectangles with opaque payloads.
//
// Entries are packed into a shallow, high-fanout R-tree with the
// sort-tile-recursive (STR) algorithm. The tree answers three query
// families: point containment, rectangle overlap, and nearest-neighbor
// under a pluggable distance metric. Structural updates never mutate an
// existing tree; Merge, Diff and Update produce a fresh tree from the
// combined entry sequence.
//
// # Quick Start
//
// Build an index and query it:
//
//	tree, err := rectgo.BulkLoad([]rectgo.Entry[string]{
//	    rectgo.NewEntry(0, 0, 1, 1, "a"),
//	    rectgo.NewEntry(2, 2, 3, 3, "b"),
//	}, rectgo.WithCapacity(16))
//	if err != nil {
//	    panic(err)
//	}
//
//	for _, e := range tree.SearchPoint(0.5, 0.5) {
//	    fmt.Println(e.Data)
//	}
//
//	if m, ok := tree.Nearest(1.5, 1.5, distance.EuclideanPlane); ok {
//	    fmt.Println(m.Entry.Data, m.Distance)
//	}
//
// Count matches without allocating:
//
//	var hits int
//	tree.SearchRectFunc(query, func(e rectgo.Entry[string]) bool {
//	    hits++
//	    return false
//	})
//
// # Concurrency
//
// A Tree is fully immutable after construction: any number of readers
// may share it across goroutines without synchronization. Construction
// is single-threaded by default; WithParallel packs the vertical slices
// of each level concurrently and produces a tree structurally identical
// to the serial build.
//
// # Geographic Queries
//
// The distance package ships a spherical-earth calculator that reads
// rectangle X coordinates as latitudes and Y coordinates as longitudes
// in degrees and returns great-circle kilometers, wrapping correctly
// across the antimeridian:
//
//	m, ok := tree.Nearest(48.2, 16.4, distance.SphericalEarth)
package rectgo
