package rectgo

import "github.com/hupe1980/rectgo/geo"

// Entry is a leaf record: a bounding rectangle plus an opaque payload.
// Entries are value-typed and immutable. The payload type must be
// comparable so that Diff can match entries structurally.
type Entry[T comparable] struct {
	Rect geo.Rect
	Data T
}

// NewEntry returns an entry covering the rectangle spanned by the two
// corner points.
func NewEntry[T comparable](x1, y1, x2, y2 float32, data T) Entry[T] {
	return Entry[T]{Rect: geo.NewRect(x1, y1, x2, y2), Data: data}
}

// node is the closed two-variant tree node. A node with a nil children
// slice is a leaf carrying one entry; otherwise it is a branch whose
// rect covers the contiguous children block. Levels are homogeneous: a
// branch's children are either all leaves or all branches.
type node[T comparable] struct {
	rect     geo.Rect
	children []node[T]
	entry    Entry[T]
}

func (n *node[T]) isLeaf() bool { return n.children == nil }

// newBranch wraps a contiguous child block in a branch whose rect is
// the union of the children's rects. children must be non-empty and is
// retained, not copied.
func newBranch[T comparable](children []node[T]) node[T] {
	rect := children[0].rect
	for i := 1; i < len(children); i++ {
		rect = rect.Union(children[i].rect)
	}
	return node[T]{rect: rect, children: children}
}

// walk yields every entry below n in traversal order until yield
// returns false. It reports whether the walk ran to completion.
func (n *node[T]) walk(yield func(Entry[T]) bool) bool {
	if n.isLeaf() {
		return yield(n.entry)
	}
	for i := range n.children {
		if !n.children[i].walk(yield) {
			return false
		}
	}
	return true
}
