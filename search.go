package rectgo

import "github.com/hupe1980/rectgo/geo"

// SearchPoint returns every entry whose rectangle contains (x, y),
// edges inclusive, in traversal order.
func (t *Tree[T]) SearchPoint(x, y float32) []Entry[T] {
	var out []Entry[T]
	t.SearchPointFunc(x, y, func(e Entry[T]) bool {
		out = append(out, e)
		return false
	})
	return out
}

// SearchRect returns every entry whose rectangle intersects r, in
// traversal order.
func (t *Tree[T]) SearchRect(r geo.Rect) []Entry[T] {
	var out []Entry[T]
	t.SearchRectFunc(r, func(e Entry[T]) bool {
		out = append(out, e)
		return false
	})
	return out
}

// SearchPointFunc invokes fn on every entry whose rectangle contains
// (x, y) and stops as soon as fn returns true. If fn never returns
// true, it is invoked exactly once per matching entry. The traversal
// itself does not allocate.
func (t *Tree[T]) SearchPointFunc(x, y float32, fn func(e Entry[T]) bool) {
	if t.root != nil {
		searchPoint(t.root, x, y, fn)
	}
}

// SearchRectFunc invokes fn on every entry whose rectangle intersects r
// and stops as soon as fn returns true. If fn never returns true, it is
// invoked exactly once per matching entry. The traversal itself does
// not allocate.
func (t *Tree[T]) SearchRectFunc(r geo.Rect, fn func(e Entry[T]) bool) {
	if t.root != nil {
		searchRect(t.root, r, fn)
	}
}

func searchPoint[T comparable](n *node[T], x, y float32, fn func(e Entry[T]) bool) bool {
	if !n.rect.ContainsPoint(x, y) {
		return false
	}
	if n.isLeaf() {
		return fn(n.entry)
	}
	for i := range n.children {
		if searchPoint(&n.children[i], x, y, fn) {
			return true
		}
	}
	return false
}

func searchRect[T comparable](n *node[T], r geo.Rect, fn func(e Entry[T]) bool) bool {
	if !n.rect.Intersects(r) {
		return false
	}
	if n.isLeaf() {
		return fn(n.entry)
	}
	for i := range n.children {
		if searchRect(&n.children[i], r, fn) {
			return true
		}
	}
	return false
}
