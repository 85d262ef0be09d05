package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float32
		expected       Rect
	}{
		{"Ordered", 0, 0, 2, 3, Rect{0, 0, 2, 3}},
		{"SwappedX", 2, 0, 0, 3, Rect{0, 0, 2, 3}},
		{"SwappedY", 0, 3, 2, 0, Rect{0, 0, 2, 3}},
		{"SwappedBoth", 2, 3, 0, 0, Rect{0, 0, 2, 3}},
		{"Degenerate", 1, 1, 1, 1, Rect{1, 1, 1, 1}},
		{"Negative", -2, -3, -5, -1, Rect{-5, -3, -2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewRect(tt.x1, tt.y1, tt.x2, tt.y2))
		})
	}
}

func TestEmpty(t *testing.T) {
	e := Empty()

	assert.True(t, e.IsEmpty())
	assert.False(t, e.ContainsPoint(0, 0))
	assert.False(t, e.Intersects(Rect{-1, -1, 1, 1}))
	assert.False(t, Rect{-1, -1, 1, 1}.Intersects(e))

	t.Run("UnionIdentity", func(t *testing.T) {
		r := Rect{1, 2, 3, 4}
		assert.Equal(t, r, e.Union(r))
		assert.Equal(t, r, r.Union(e))
	})
}

func TestContainsPoint(t *testing.T) {
	r := Rect{0, 0, 2, 2}

	tests := []struct {
		name     string
		x, y     float32
		expected bool
	}{
		{"Inside", 1, 1, true},
		{"Corner", 0, 0, true},
		{"OppositeCorner", 2, 2, true},
		{"Edge", 2, 1, true},
		{"OutsideX", 2.5, 1, false},
		{"OutsideY", 1, -0.5, false},
		{"OutsideBoth", 3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ContainsPoint(tt.x, tt.y))
		})
	}
}

func TestIntersects(t *testing.T) {
	r := Rect{0, 0, 2, 2}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"Overlap", Rect{1, 1, 3, 3}, true},
		{"Contained", Rect{0.5, 0.5, 1.5, 1.5}, true},
		{"Containing", Rect{-1, -1, 3, 3}, true},
		{"SharedEdge", Rect{2, 0, 4, 2}, true},
		{"SharedCorner", Rect{2, 2, 3, 3}, true},
		{"DisjointX", Rect{2.1, 0, 3, 2}, false},
		{"DisjointY", Rect{0, -2, 2, -0.1}, false},
		{"Self", r, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(r))
		})
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"Disjoint", Rect{0, 0, 1, 1}, Rect{2, 2, 3, 3}, Rect{0, 0, 3, 3}},
		{"Overlap", Rect{0, 0, 2, 2}, Rect{1, 1, 3, 3}, Rect{0, 0, 3, 3}},
		{"Contained", Rect{0, 0, 4, 4}, Rect{1, 1, 2, 2}, Rect{0, 0, 4, 4}},
		{"Self", Rect{1, 2, 3, 4}, Rect{1, 2, 3, 4}, Rect{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Union(tt.b))
			assert.Equal(t, tt.expected, tt.b.Union(tt.a))
		})
	}
}

func TestArea(t *testing.T) {
	assert.Equal(t, float32(6), Rect{0, 0, 2, 3}.Area())
	assert.Equal(t, float32(0), Rect{1, 1, 1, 1}.Area())
}

func TestCenter(t *testing.T) {
	x, y := Rect{0, 0, 2, 4}.Center()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Rect(0 0, 2 3)", Rect{0, 0, 2, 3}.String())
}
