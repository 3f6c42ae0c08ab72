// Package geometry implements the numeric kernel used by the hull engine.
//
// Every vertex is addressed by its index into a flat position array: the
// coordinates of vertex i live at [i*D, (i+1)*D). Keeping positions in one
// slice and passing indices around avoids pointer chasing in the hot loops
// (distance tests run once per candidate point per face).
//
// A Kernel is owned by exactly one hull computation. Its scratch buffers are
// reused between calls and must not be shared between goroutines.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kernel holds the working positions and the scratch buffers needed to
// compute hyperplanes without allocating.
type Kernel struct {
	dimension int
	positions []float64

	// scratch for closed-form normals and point differences
	ntX, ntY []float64

	// scratch for the general (D >= 4) normal
	minor     *mgl64.MatMxN
	rows      *mgl64.MatMxN
	normalVec mgl64.VecN
	pointVec  mgl64.VecN
}

// NewKernel creates a kernel over positions, a flat array of D-dimensional
// coordinates. The slice is used in place and never copied.
func NewKernel(dimension int, positions []float64) *Kernel {
	k := &Kernel{
		dimension: dimension,
		positions: positions,
		ntX:       make([]float64, dimension),
		ntY:       make([]float64, dimension),
	}

	if dimension > 3 {
		k.rows = mgl64.NewMatrix(dimension-1, dimension)
		k.minor = mgl64.NewMatrix(dimension-1, dimension-1)
	}

	return k
}

// Coordinate returns the i-th coordinate of vertex v.
func (k *Kernel) Coordinate(v, i int) float64 {
	return k.positions[v*k.dimension+i]
}

// Position returns the coordinates of vertex v. The returned slice aliases
// the kernel's storage.
func (k *Kernel) Position(v int) []float64 {
	o := v * k.dimension
	return k.positions[o : o+k.dimension : o+k.dimension]
}

// SubtractFast stores position(x) - position(y) in target.
func (k *Kernel) SubtractFast(x, y int, target []float64) {
	u, v := x*k.dimension, y*k.dimension
	for i := range target {
		target[i] = k.positions[u+i] - k.positions[v+i]
	}
}

// LengthSquared returns the squared euclidean length of x.
func LengthSquared(x []float64) float64 {
	var norm float64
	for _, t := range x {
		norm += t * t
	}
	return norm
}

// SquaredDistanceSum returns the sum of squared distances from pivot to
// every vertex in points.
func (k *Kernel) SquaredDistanceSum(pivot int, points []int) float64 {
	var sum float64
	for _, p := range points {
		k.SubtractFast(p, pivot, k.ntX)
		sum += LengthSquared(k.ntX)
	}
	return sum
}

// LexCompare compares two vertices coordinate by coordinate.
// Returns -1, 0 or 1.
func (k *Kernel) LexCompare(u, v int) int {
	uo, vo := u*k.dimension, v*k.dimension
	for i := 0; i < k.dimension; i++ {
		x, y := k.positions[uo+i], k.positions[vo+i]
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}
	return 0
}

// FindNormalVector computes the unit normal of the hyperplane through the
// given D vertices and stores it in normal.
//
// The orientation follows the vertex order: in 2D the normal is the left
// perpendicular of v1-v0, in 3D it is (v1-v0) x (v2-v1), and in higher
// dimensions it is the generalized cross product with the same sign
// convention. A degenerate vertex set produces NaN components.
func (k *Kernel) FindNormalVector(vertices []int, normal []float64) {
	switch k.dimension {
	case 2:
		k.findNormalVector2D(vertices, normal)
	case 3:
		k.findNormalVector3D(vertices, normal)
	default:
		k.findNormalVectorND(vertices, normal)
	}
}

func (k *Kernel) findNormalVector2D(vertices []int, normal []float64) {
	k.SubtractFast(vertices[1], vertices[0], k.ntX)

	n := mgl64.Vec2{-k.ntX[1], k.ntX[0]}
	f := 1.0 / n.Len()

	normal[0] = f * n[0]
	normal[1] = f * n[1]
}

func (k *Kernel) findNormalVector3D(vertices []int, normal []float64) {
	k.SubtractFast(vertices[1], vertices[0], k.ntX)
	k.SubtractFast(vertices[2], vertices[1], k.ntY)

	x := mgl64.Vec3{k.ntX[0], k.ntX[1], k.ntX[2]}
	y := mgl64.Vec3{k.ntY[0], k.ntY[1], k.ntY[2]}
	n := x.Cross(y)
	f := 1.0 / n.Len()

	normal[0] = f * n[0]
	normal[1] = f * n[1]
	normal[2] = f * n[2]
}

// findNormalVectorND expands the formal determinant
//
//	| e_0 ... e_{D-1} |
//	| v1 - v0         |
//	| ...             |
//	| v_{D-1} - v0    |
//
// along its first row. Component j is the signed (D-1)x(D-1) minor obtained
// by deleting column j.
func (k *Kernel) findNormalVectorND(vertices []int, normal []float64) {
	d := k.dimension
	for r := 1; r < d; r++ {
		k.SubtractFast(vertices[r], vertices[0], k.ntX)
		for c := 0; c < d; c++ {
			k.rows.Set(r-1, c, k.ntX[c])
		}
	}

	for j := 0; j < d; j++ {
		for r := 0; r < d-1; r++ {
			col := 0
			for c := 0; c < d; c++ {
				if c == j {
					continue
				}
				k.minor.Set(r, col, k.rows.At(r, c))
				col++
			}
		}

		det := determinant(k.minor)
		if (j+d+1)%2 == 1 {
			det = -det
		}
		normal[j] = det
	}

	k.normalVec.SetBackingSlice(normal)
	k.normalVec.Mul(&k.normalVec, 1.0/k.normalVec.Len())
}

// determinant destroys m while computing its determinant by gaussian
// elimination with partial pivoting.
func determinant(m *mgl64.MatMxN) float64 {
	n := m.NumRows()
	det := 1.0

	for c := 0; c < n; c++ {
		pivot := c
		best := math.Abs(m.At(c, c))
		for r := c + 1; r < n; r++ {
			if a := math.Abs(m.At(r, c)); a > best {
				best = a
				pivot = r
			}
		}

		if best == 0 {
			return 0
		}

		if pivot != c {
			for cc := c; cc < n; cc++ {
				a, b := m.At(c, cc), m.At(pivot, cc)
				m.Set(c, cc, b)
				m.Set(pivot, cc, a)
			}
			det = -det
		}

		p := m.At(c, c)
		det *= p
		for r := c + 1; r < n; r++ {
			f := m.At(r, c) / p
			if f == 0 {
				continue
			}
			for cc := c + 1; cc < n; cc++ {
				m.Set(r, cc, m.At(r, cc)-f*m.At(c, cc))
			}
		}
	}

	return det
}

// CalculateFacePlane computes the unit normal and plane offset of the face
// spanned by vertices, oriented so that center lies on the negative side.
//
// It returns ok == false when the vertices do not span a hyperplane (the
// normal came out as NaN). flipped reports whether the normal was negated
// relative to the vertex order.
func (k *Kernel) CalculateFacePlane(vertices []int, normal, center []float64) (offset float64, flipped, ok bool) {
	k.FindNormalVector(vertices, normal)

	for _, n := range normal {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false, false
		}
	}

	fi := vertices[0] * k.dimension
	var centerDistance float64
	for i, n := range normal {
		offset += n * k.positions[fi+i]
		centerDistance += n * center[i]
	}
	centerDistance -= offset

	if centerDistance > 0 {
		for i := range normal {
			normal[i] = -normal[i]
		}
		return offset, true, true
	}

	return -offset, false, true
}

// VertexDistance returns the signed distance of vertex v to the plane
// normal·x + offset = 0. Positive values are outside.
func (k *Kernel) VertexDistance(v int, normal []float64, offset float64) float64 {
	p := k.Position(v)

	switch k.dimension {
	case 2:
		return offset + mgl64.Vec2{normal[0], normal[1]}.Dot(mgl64.Vec2{p[0], p[1]})
	case 3:
		return offset + mgl64.Vec3{normal[0], normal[1], normal[2]}.Dot(mgl64.Vec3{p[0], p[1], p[2]})
	}

	k.normalVec.SetBackingSlice(normal)
	k.pointVec.SetBackingSlice(p)
	return offset + k.normalVec.Dot(&k.pointVec)
}
