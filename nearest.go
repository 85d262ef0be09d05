package rectgo

import (
	"math"

	"github.com/hupe1980/rectgo/distance"
	"github.com/hupe1980/rectgo/internal/queue"
)

// Match is a nearest-neighbor result: the winning entry and its
// distance under the calculator the query ran with.
type Match[T comparable] struct {
	Distance float64
	Entry    Entry[T]
}

// Nearest returns the entry closest to (x, y) under calc, or false for
// an empty tree. Equidistant entries tie-break deterministically in
// favor of the first one visited.
func (t *Tree[T]) Nearest(x, y float32, calc distance.Calculator) (Match[T], bool) {
	return t.NearestWithin(x, y, math.Inf(1), calc)
}

// NearestWithin returns the entry closest to (x, y) among those whose
// distance under calc is strictly less than maxDistance. Branches are
// pruned against the best distance seen so far, and children are
// visited closest-first so an early leaf tightens the bound for the
// rest of the traversal.
func (t *Tree[T]) NearestWithin(x, y float32, maxDistance float64, calc distance.Calculator) (Match[T], bool) {
	if t.root == nil {
		return Match[T]{}, false
	}

	s := nearestState[T]{x: x, y: y, calc: calc, best: maxDistance}
	if calc.Distance(x, y, t.root.rect) < s.best {
		s.descend(t.root)
	}
	return s.match, s.found
}

type nearestState[T comparable] struct {
	x, y  float32
	calc  distance.Calculator
	best  float64
	match Match[T]
	found bool
}

func (s *nearestState[T]) descend(n *node[T]) {
	if n.isLeaf() {
		if d := s.calc.Distance(s.x, s.y, n.rect); d < s.best {
			s.best = d
			s.match = Match[T]{Distance: d, Entry: n.entry}
			s.found = true
		}
		return
	}

	pq := queue.NewMin[*node[T]](len(n.children))
	for i := range n.children {
		child := &n.children[i]
		if d := s.calc.Distance(s.x, s.y, child.rect); d < s.best {
			pq.Push(queue.Item[*node[T]]{Node: child, Distance: d})
		}
	}
	for {
		item, ok := pq.Pop()
		if !ok {
			return
		}
		// The bound may have tightened since the child was queued.
		if item.Distance >= s.best {
			continue
		}
		s.descend(item.Node)
	}
}
