// Stress test comparing the region-hashed broad phase's per-Step cost
// against a naive O(n^2) AABB sweep over the same body set.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"step2d/physics2d"
)

func main() {
	for _, count := range []int{100, 500, 1000, 2000, 5000, 10000, 20000} {
		bench(count)
	}
}

func bench(count int) {
	rand.Seed(42) // consistent results across runs

	spawnSize := 2000.0 + float64(count)*4.0

	w := physics2d.NewWorld(physics2d.WorldConfig{})
	for i := 0; i < count; i++ {
		pos := physics2d.Vec2{
			X: rand.Float64()*spawnSize - spawnSize/2,
			Y: rand.Float64()*spawnSize - spawnSize/2,
		}
		size := physics2d.Vec2{X: 4 + rand.Float64()*4, Y: 4 + rand.Float64()*4}
		if i%2 == 0 {
			w.CreateStaticBody(pos, size, false, nil)
		} else {
			w.CreatePlayerBody(pos, size, 0, 0, nil)
		}
	}

	// Warm up.
	w.Step(16)

	const iterations = 10
	gridStart := time.Now()
	for i := 0; i < iterations; i++ {
		w.Step(16)
	}
	gridTime := time.Since(gridStart) / iterations

	bodies := w.Bodies()
	naiveStart := time.Now()
	var naivePairs int
	for iter := 0; iter < iterations; iter++ {
		naivePairs = 0
		for i := range bodies {
			for j := i + 1; j < len(bodies); j++ {
				if overlaps(bodies[i], bodies[j]) {
					naivePairs++
				}
			}
		}
	}
	naiveTime := time.Since(naiveStart) / iterations

	speedup := float64(naiveTime) / float64(gridTime)
	fmt.Printf("%6d bodies: grid %10v | naive O(n^2) %12v (%6d overlaps) | %.1fx speedup\n",
		count, gridTime.Round(time.Microsecond), naiveTime.Round(time.Microsecond), naivePairs, speedup)
}

func overlaps(a, b *physics2d.Body) bool {
	return a.Bounds.Min.X <= b.Bounds.Max.X && a.Bounds.Max.X >= b.Bounds.Min.X &&
		a.Bounds.Min.Y <= b.Bounds.Max.Y && a.Bounds.Max.Y >= b.Bounds.Min.Y
}
