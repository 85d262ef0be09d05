package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/rectgo"
	"github.com/hupe1980/rectgo/distance"
	"github.com/hupe1980/rectgo/geo"
	"github.com/hupe1980/rectgo/testutil"
)

func main() {
	seed := int64(4711)
	size := 1_000_000
	world := geo.Rect{X1: -1000, Y1: -1000, X2: 1000, Y2: 1000}

	rng := testutil.NewRNG(seed)
	entries := make([]rectgo.Entry[int], size)
	for i, r := range rng.Rects(size, world, 5) {
		entries[i] = rectgo.Entry[int]{Rect: r, Data: i}
	}

	fmt.Println("--- Bulk Load ---")
	fmt.Println("Size:", size)

	start := time.Now()

	tree, err := rectgo.BulkLoad(entries, rectgo.WithCapacity(16), rectgo.WithParallel())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	s := tree.Stats()
	fmt.Printf("Depth: %d Leaves: %d Branches: %d\n\n", s.Depth, s.Leaves, s.Branches)

	fmt.Println("--- Search ---")

	query := geo.NewRect(0, 0, 10, 10)
	start = time.Now()

	var hits int
	tree.SearchRectFunc(query, func(e rectgo.Entry[int]) bool {
		hits++
		return false
	})

	fmt.Println("Query:", query)
	fmt.Println("Hits:", hits)
	fmt.Printf("Micros: %d\n\n", time.Since(start).Microseconds())

	fmt.Println("--- Nearest ---")

	start = time.Now()
	m, ok := tree.Nearest(500, -500, distance.EuclideanPlane)
	if !ok {
		log.Fatal("empty tree")
	}

	fmt.Println("Entry:", m.Entry.Data, m.Entry.Rect)
	fmt.Printf("Distance: %.4f\n", m.Distance)
	fmt.Printf("Micros: %d\n", time.Since(start).Microseconds())
}
