package rectgo

import (
	"iter"

	"github.com/hupe1980/rectgo/geo"
)

// Tree is an immutable, bulk-loaded spatial index over axis-aligned
// rectangles. A Tree is safe for unsynchronized concurrent use by any
// number of readers; there are no mutating operations. Structural
// updates (Merge, Diff, Update) produce a new Tree and leave the
// receiver untouched.
type Tree[T comparable] struct {
	root  *node[T]
	count int
	opts  Options
}

// BulkLoad packs the given entries into a balanced tree using
// sort-tile-recursive packing. The entries slice is not retained.
//
// The only construction failure is a capacity below 2.
func BulkLoad[T comparable](entries []Entry[T], optFns ...func(o *Options)) (*Tree[T], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return newTree(entries, opts)
}

// newTree validates opts, packs entries and logs the construction.
// All construction paths (BulkLoad, Merge, Diff, Update) funnel here.
func newTree[T comparable](entries []Entry[T], opts Options) (*Tree[T], error) {
	if opts.Capacity < 2 {
		return nil, &ErrInvalidCapacity{Capacity: opts.Capacity}
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	t := &Tree[T]{
		root:  bulkPack(entries, opts),
		count: len(entries),
		opts:  opts,
	}
	opts.Logger.LogBulkLoad(t.count, opts.Capacity, t.Depth())
	return t, nil
}

// Rect returns the minimum bounding rectangle of the whole tree. For an
// empty tree it is the canonical empty rectangle, so intersection tests
// against it are always false.
func (t *Tree[T]) Rect() geo.Rect {
	if t.root == nil {
		return geo.Empty()
	}
	return t.root.rect
}

// Len returns the number of entries in the tree.
func (t *Tree[T]) Len() int { return t.count }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[T]) IsEmpty() bool { return t.count == 0 }

// Capacity returns the node capacity the tree was built with.
func (t *Tree[T]) Capacity() int { return t.opts.Capacity }

// Entries returns all entries in traversal order. The result is a
// fresh slice owned by the caller.
func (t *Tree[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, t.count)
	for e := range t.All() {
		out = append(out, e)
	}
	return out
}

// All returns a restartable iterator over all entries in traversal
// order. Iteration allocates nothing beyond the recursion stack.
func (t *Tree[T]) All() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		if t.root != nil {
			t.root.walk(yield)
		}
	}
}

// Depth returns the number of node levels, counting the root and the
// leaf level. An empty tree has depth 0.
func (t *Tree[T]) Depth() int {
	if t.root == nil {
		return 0
	}
	d := 1
	for n := t.root; !n.isLeaf(); n = &n.children[0] {
		d++
	}
	return d
}

// Stats describes the shape of a tree.
type Stats struct {
	Entries  int
	Leaves   int
	Branches int
	Depth    int
	Capacity int
}

// Stats walks the tree and returns its shape.
func (t *Tree[T]) Stats() Stats {
	s := Stats{
		Entries:  t.count,
		Depth:    t.Depth(),
		Capacity: t.opts.Capacity,
	}
	if t.root != nil {
		countNodes(t.root, &s)
	}
	return s
}

func countNodes[T comparable](n *node[T], s *Stats) {
	if n.isLeaf() {
		s.Leaves++
		return
	}
	s.Branches++
	for i := range n.children {
		countNodes(&n.children[i], s)
	}
}
