package life

import (
	"fmt"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	noiseScale   = 0.08
)

// Random seeds a grid by including every coordinate inside dim independently
// with probability p. p at or below 0 yields an empty grid and p at or above
// 1 a full one. The result is deterministic for a deterministically seeded
// rng. A negative dimension is a programming error and panics.
func Random(dim Dim, p float64, rng *rand.Rand) Grid {
	if dim.W < 0 || dim.H < 0 {
		panic(fmt.Sprintf("life: negative grid dimension %dx%d", dim.W, dim.H))
	}
	cells := make(map[Cell]struct{})
	for x := 0; x < dim.W; x++ {
		for y := 0; y < dim.H; y++ {
			if rng.Float64() < p {
				cells[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return Grid{Dim: dim, Cells: cells}
}

// Noise seeds a grid from 2D Perlin noise: a coordinate is live when its
// noise value exceeds threshold. Unlike Random this produces spatially
// clustered starting patterns, which most variants find more interesting than
// uniform static. threshold is in [-1, 1]; lower values produce denser
// grids. Panics on a negative dimension, like Random.
func Noise(dim Dim, threshold float64, seed int64) Grid {
	if dim.W < 0 || dim.H < 0 {
		panic(fmt.Sprintf("life: negative grid dimension %dx%d", dim.W, dim.H))
	}
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	cells := make(map[Cell]struct{})
	for x := 0; x < dim.W; x++ {
		for y := 0; y < dim.H; y++ {
			if noise.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) > threshold {
				cells[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return Grid{Dim: dim, Cells: cells}
}
