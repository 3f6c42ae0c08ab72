package convexhull

import (
	"fmt"
	"math"
	"slices"

	"github.com/akmonengine/convexhull/arena"
	"github.com/akmonengine/convexhull/geometry"
)

// initConvexHull finds D+1 initial points, builds the simplex they span and
// distributes the remaining vertices into the simplex faces' beyond sets.
func (e *engine) initConvexHull() error {
	switch {
	case e.vertexCount < e.dimension:
		// no facet can be formed
		return nil
	case e.vertexCount == e.dimension:
		return e.initSingle()
	}

	extremes := e.findExtremes()
	initialPoints, err := e.findInitialPoints(extremes)
	if err != nil {
		return err
	}

	for _, v := range initialPoints {
		e.currentVertex = v
		e.updateCenter()
		// initial points never go into a beyond set
		e.vertexMarks[v] = true
	}

	Logger().Debug("convexhull: initial simplex", "vertices", initialPoints)

	faces, err := e.createInitialHull(initialPoints)
	if err != nil {
		return err
	}

	for _, h := range faces {
		face := e.manager.Face(h)
		e.findBeyondVerticesInit(face)
		if face.BeyondCount() == 0 {
			e.finalizeFace(face)
		} else {
			e.unprocessed.Add(h)
		}
	}

	for _, v := range initialPoints {
		e.vertexMarks[v] = false
	}

	return nil
}

// initSingle builds the hull of exactly D vertices: one face holding them
// all. The normal is turned to point down the last axis.
func (e *engine) initSingle() error {
	face := e.newFace()
	for i := range face.Vertices {
		face.Vertices[i] = i
	}

	if !e.calculateFacePlane(face) {
		return fmt.Errorf("%w: the %d input vertices do not span a hyperplane", ErrSingularInput, e.vertexCount)
	}

	if face.Normal[e.dimension-1] >= 0 {
		for i := range face.Normal {
			face.Normal[i] = -face.Normal[i]
		}
		face.Offset = -face.Offset
		face.IsNormalFlipped = !face.IsNormalFlipped
	}

	e.manager.DepositVertexBuffer(face.VerticesBeyond)
	face.VerticesBeyond = nil
	e.convexFaces.Add(face.Index)
	return nil
}

// createInitialHull creates face i from every initial point except the i-th
// and links every pair of faces that share a ridge.
func (e *engine) createInitialHull(initialPoints []int) ([]int, error) {
	d := e.dimension
	faces := make([]int, d+1)

	for i := 0; i <= d; i++ {
		face := e.newFace()
		k := 0
		for j, p := range initialPoints {
			if i != j {
				face.Vertices[k] = p
				k++
			}
		}
		slices.Sort(face.Vertices)

		// the omitted point lies strictly inside a proper simplex
		if !e.calculateFacePlane(face) || e.vertexDistance(initialPoints[i], face) >= 0 {
			return nil, fmt.Errorf("%w: initial simplex is flat", ErrSingularInput)
		}
		faces[i] = face.Index
	}

	for i := 0; i < d; i++ {
		for j := i + 1; j <= d; j++ {
			e.updateAdjacency(e.manager.Face(faces[i]), e.manager.Face(faces[j]))
		}
	}

	return faces, nil
}

// updateAdjacency links l and r if they differ in exactly one vertex.
func (e *engine) updateAdjacency(l, r *arena.Face) {
	lv, rv := l.Vertices, r.Vertices
	marks := e.vertexMarks
	defer e.restoreMarks(lv, rv)

	for _, v := range lv {
		marks[v] = false
	}
	for _, v := range rv {
		marks[v] = true
	}

	// first vertex of l not in r
	i := 0
	for ; i < len(lv); i++ {
		if !marks[lv[i]] {
			break
		}
	}

	if i == e.dimension {
		return
	}

	// a second unmarked vertex means they share less than a ridge
	for j := i + 1; j < len(lv); j++ {
		if !marks[lv[j]] {
			return
		}
	}

	l.AdjacentFaces[i] = r.Index

	for _, v := range lv {
		marks[v] = false
	}
	for j, v := range rv {
		if marks[v] {
			r.AdjacentFaces[j] = l.Index
			break
		}
	}
}

// restoreMarks puts back the marks that identify initial points, which
// updateAdjacency borrows as scratch.
func (e *engine) restoreMarks(lv, rv []int) {
	for _, v := range lv {
		e.vertexMarks[v] = true
	}
	for _, v := range rv {
		e.vertexMarks[v] = true
	}
}

// findBeyondVerticesInit scans every unmarked vertex against face.
func (e *engine) findBeyondVerticesInit(face *arena.Face) {
	beyond := face.VerticesBeyond
	if beyond == nil {
		beyond = e.manager.GetVertexBuffer()
		face.VerticesBeyond = beyond
	}

	e.maxDistance = math.Inf(-1)
	e.furthestVertex = 0

	for v := 0; v < e.vertexCount; v++ {
		if e.vertexMarks[v] {
			continue
		}
		e.isBeyond(face, beyond, v)
	}

	face.FurthestVertex = e.furthestVertex
}

// findInitialPoints greedily picks D+1 affinely independent points: the two
// extremes furthest apart, then repeatedly the point maximising the sum of
// squared distances to those already chosen, among the points at least
// tolerance away from their affine span. Extremes are tried first and the
// whole vertex set only when none of them qualifies.
func (e *engine) findInitialPoints(extremes []int) ([]int, error) {
	initialPoints := make([]int, 0, e.dimension+1)

	first, second := -1, -1
	maxDist := 0.0
	temp := make([]float64, e.dimension)
	for i := 0; i < len(extremes)-1; i++ {
		a := extremes[i]
		for j := i + 1; j < len(extremes); j++ {
			b := extremes[j]
			e.kernel.SubtractFast(a, b, temp)
			if dist := geometry.LengthSquared(temp); dist > maxDist {
				first, second = a, b
				maxDist = dist
			}
		}
	}

	if first < 0 {
		return nil, fmt.Errorf("%w: all extreme points coincide", ErrSingularInput)
	}
	initialPoints = append(initialPoints, first, second)

	span := e.kernel.NewSpan(first)
	span.Add(second)

	for i := 2; i <= e.dimension; i++ {
		maximum := math.Inf(-1)
		maxPoint := -1

		consider := func(v int) {
			if slices.Contains(initialPoints, v) {
				return
			}
			val := e.kernel.SquaredDistanceSum(v, initialPoints)
			if val <= maximum || span.Distance(v) < e.tolerance {
				return
			}
			maximum = val
			maxPoint = v
		}

		for _, v := range extremes {
			consider(v)
		}
		if maxPoint < 0 {
			for v := 0; v < e.vertexCount; v++ {
				consider(v)
			}
		}

		if maxPoint < 0 {
			return nil, fmt.Errorf("%w: input spans only %d of %d dimensions", ErrSingularInput, span.Rank(), e.dimension)
		}
		initialPoints = append(initialPoints, maxPoint)
		span.Add(maxPoint)
	}

	return initialPoints, nil
}

// findExtremes returns, for every axis, the vertices with the minimal and
// maximal coordinate. Coordinates within tolerance of the current extreme
// are resolved towards the lexicographically larger vertex. The set is
// padded with the first vertices until it holds at least D+1 entries.
func (e *engine) findExtremes() []int {
	d := e.dimension
	extremes := make([]int, 0, 2*d)
	var seen arena.Set[int]

	add := func(v int) {
		if !seen.Has(v) {
			seen.Insert(v)
			extremes = append(extremes, v)
		}
	}

	for i := 0; i < d; i++ {
		minV, maxV := math.MaxFloat64, -math.MaxFloat64
		minInd, maxInd := 0, 0

		for j := 0; j < e.vertexCount; j++ {
			v := e.kernel.Coordinate(j, i)

			if diff := minV - v; diff >= 0 {
				if diff >= e.tolerance || e.kernel.LexCompare(j, minInd) > 0 {
					minV = v
					minInd = j
				}
			}

			if diff := v - maxV; diff >= 0 {
				if diff >= e.tolerance || e.kernel.LexCompare(j, maxInd) > 0 {
					maxV = v
					maxInd = j
				}
			}
		}

		add(minInd)
		add(maxInd)
	}

	for v := 0; v < e.vertexCount && len(extremes) <= d; v++ {
		add(v)
	}

	return extremes
}
