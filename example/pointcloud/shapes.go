package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/akmonengine/convexhull"
	"github.com/go-gl/mathgl/mgl64"
)

// Shape names accepted by -shape.
const (
	ShapeCube   = "cube"
	ShapeSphere = "sphere"
	ShapeGrid   = "grid"
	ShapeRandom = "random"
)

// Generate builds a point cloud of the given shape. The result is fully
// determined by seed.
func Generate(shape string, n, dim int, seed uint64) ([]convexhull.Point, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dim)
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	switch shape {
	case ShapeCube:
		return cube(rng, n, dim), nil
	case ShapeSphere:
		return sphere(rng, n, dim), nil
	case ShapeGrid:
		return grid(n, dim), nil
	case ShapeRandom:
		return uniform(rng, n, dim), nil
	}

	return nil, fmt.Errorf("unknown shape %q", shape)
}

// cube returns the 2^dim corners of [-1, 1]^dim followed by n points drawn
// inside it.
func cube(rng *rand.Rand, n, dim int) []convexhull.Point {
	corners := 1 << dim
	points := make([]convexhull.Point, 0, corners+n)

	for c := 0; c < corners; c++ {
		p := make(convexhull.Point, dim)
		for i := range p {
			p[i] = -1
			if c&(1<<i) != 0 {
				p[i] = 1
			}
		}
		points = append(points, p)
	}

	// keep interior points strictly inside
	for _, p := range uniform(rng, n, dim) {
		for i := range p {
			p[i] *= 0.99
		}
		points = append(points, p)
	}

	return points
}

// sphere returns n points on the unit sphere.
func sphere(rng *rand.Rand, n, dim int) []convexhull.Point {
	points := make([]convexhull.Point, n)

	for k := range points {
		if dim == 3 {
			v := mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}.Normalize()
			points[k] = convexhull.Point{v[0], v[1], v[2]}
			continue
		}

		p := make([]float64, dim)
		for i := range p {
			p[i] = rng.NormFloat64()
		}
		points[k] = mgl64.NewVecNFromData(p).Normalize(nil).Raw()
	}

	return points
}

// grid returns a regular lattice in [0, 1]^dim with about n points. Many
// of them are coplanar, which makes it a degenerate input.
func grid(n, dim int) []convexhull.Point {
	side := max(2, int(math.Round(math.Pow(float64(n), 1/float64(dim)))))
	total := int(math.Pow(float64(side), float64(dim)))
	step := 1 / float64(side-1)

	points := make([]convexhull.Point, total)
	for k := range points {
		p := make(convexhull.Point, dim)
		rest := k
		for i := range p {
			p[i] = float64(rest%side) * step
			rest /= side
		}
		points[k] = p
	}

	return points
}

// uniform returns n points drawn uniformly from [-1, 1]^dim.
func uniform(rng *rand.Rand, n, dim int) []convexhull.Point {
	points := make([]convexhull.Point, n)
	for k := range points {
		p := make(convexhull.Point, dim)
		for i := range p {
			p[i] = 2*rng.Float64() - 1
		}
		points[k] = p
	}
	return points
}
