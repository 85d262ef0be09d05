package rectgo

import (
	"cmp"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// bulkPack builds the root node by sort-tile-recursive packing. It
// returns nil for an empty entry sequence and the single leaf for a
// one-entry sequence. The result is deterministic for a given input
// order and capacity, with or without Options.Parallel.
func bulkPack[T comparable](entries []Entry[T], opts Options) *node[T] {
	if len(entries) == 0 {
		return nil
	}

	level := make([]node[T], len(entries))
	for i, e := range entries {
		level[i] = node[T]{rect: e.Rect, entry: e}
	}
	if len(level) == 1 {
		return &level[0]
	}

	for len(level) > 1 {
		level = packLevel(level, opts)
	}
	return &level[0]
}

// packLevel packs one homogeneous level of nodes into the level above
// it. When at most capacity nodes remain they are wrapped in a single
// root branch; otherwise the nodes are tiled: stable-sorted by center
// x, cut into ceil(sqrt(ceil(n/M))) vertical slices, stable-sorted by
// center y within each slice, and chunked into branches of at most M
// children. The last tile of a slice may hold fewer children, down to
// one.
func packLevel[T comparable](nodes []node[T], opts Options) []node[T] {
	m := opts.Capacity
	if len(nodes) <= m {
		return []node[T]{newBranch(nodes)}
	}

	slices.SortStableFunc(nodes, func(a, b node[T]) int {
		return cmp.Compare(a.rect.X1+a.rect.X2, b.rect.X1+b.rect.X2)
	})

	tiles := ceilDiv(len(nodes), m)
	numSlices := int(math.Ceil(math.Sqrt(float64(tiles))))
	sliceSize := ceilDiv(len(nodes), numSlices)

	// Per-slice output offsets are fixed up front so that parallel
	// workers write disjoint ranges of the next level.
	type span struct{ lo, hi, out int }
	spans := make([]span, 0, numSlices)
	out := 0
	for lo := 0; lo < len(nodes); lo += sliceSize {
		hi := min(lo+sliceSize, len(nodes))
		spans = append(spans, span{lo: lo, hi: hi, out: out})
		out += ceilDiv(hi-lo, m)
	}

	level := make([]node[T], out)
	pack := func(sp span) {
		part := nodes[sp.lo:sp.hi]
		slices.SortStableFunc(part, func(a, b node[T]) int {
			return cmp.Compare(a.rect.Y1+a.rect.Y2, b.rect.Y1+b.rect.Y2)
		})
		o := sp.out
		for lo := 0; lo < len(part); lo += m {
			hi := min(lo+m, len(part))
			level[o] = newBranch(part[lo:hi:hi])
			o++
		}
	}

	if opts.Parallel && len(spans) > 1 {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, sp := range spans {
			g.Go(func() error {
				pack(sp)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, sp := range spans {
			pack(sp)
		}
	}

	return level
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
