package convexhull

import (
	"fmt"

	"github.com/akmonengine/convexhull/arena"
	"github.com/akmonengine/convexhull/geometry"
)

// dimensionSamples is the number of input vertices inspected to determine D.
const dimensionSamples = 10

// engine holds the whole mutable state of one hull computation. It is
// created per call to Create and dropped when the call returns.
type engine struct {
	dimension int
	tolerance float64

	// Vertices are represented by their index. positions is the flat
	// working copy of the coordinates (perturbed if configured).
	vertexCount int
	positions   []float64
	vertexMarks []bool
	kernel      *geometry.Kernel

	manager    *arena.Manager
	connectors *arena.ConnectorTable

	// affected[h] marks faces visible from the current vertex.
	affected []bool

	// convexHullSize counts the vertices folded into center.
	convexHullSize int
	center         []float64

	unprocessed *arena.FaceList
	convexFaces arena.IndexBuffer

	currentVertex  int
	maxDistance    float64
	furthestVertex int

	updateBuffer  []int
	updateIndices []int

	traverseStack      arena.IndexBuffer
	affectedFaceBuffer arena.IndexBuffer
	coneFaceBuffer     arena.IndexBuffer
	beyondBuffer       *arena.IndexBuffer

	singular arena.Set[int]

	iterations int
}

func newEngine(positions [][]float64, cfg Config) (*engine, error) {
	dimension, err := determineDimension(positions)
	if err != nil {
		return nil, err
	}
	if dimension < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}

	e := &engine{
		dimension:   dimension,
		tolerance:   cfg.PlaneDistanceTolerance,
		vertexCount: len(positions),
	}

	if err := e.initializePositions(positions, cfg); err != nil {
		return nil, err
	}
	e.initializeData()

	Logger().Debug("convexhull: computation started",
		"dimension", dimension,
		"points", e.vertexCount,
		"tolerance", e.tolerance,
		"degenerateInputHandling", cfg.DegenerateInputHandling.String())

	return e, nil
}

// determineDimension reads the position length of a spread of sample
// vertices and requires that they agree.
func determineDimension(positions [][]float64) (int, error) {
	n := len(positions)
	samples := min(n, dimensionSamples)

	dimension := len(positions[0])
	for i := 1; i < samples; i++ {
		idx := i * (n - 1) / max(samples-1, 1)
		if d := len(positions[idx]); d != dimension {
			return 0, fmt.Errorf("%w: vertex 0 has %d coordinates, vertex %d has %d", ErrDimensionMismatch, dimension, idx, d)
		}
	}

	return dimension, nil
}

// initializePositions copies the coordinates into one flat array, applying
// the perturbation when configured. Every vertex is checked against D here
// since the copy touches each coordinate anyway.
func (e *engine) initializePositions(positions [][]float64, cfg Config) error {
	d := e.dimension
	e.positions = make([]float64, len(positions)*d)

	perturb := cfg.DegenerateInputHandling == DegeneratePerturbInternal
	for i, p := range positions {
		if len(p) != d {
			return fmt.Errorf("%w: expected %d coordinates, vertex %d has %d", ErrDimensionMismatch, d, i, len(p))
		}

		o := i * d
		if perturb {
			for j, t := range p {
				e.positions[o+j] = t + cfg.PerturbationGenerator()
			}
		} else {
			copy(e.positions[o:o+d], p)
		}
	}

	return nil
}

func (e *engine) initializeData() {
	d := e.dimension
	capacity := (d + 1) * 10

	e.manager = arena.NewManager(d, capacity)
	e.connectors = arena.NewConnectorTable(e.manager)
	e.unprocessed = arena.NewFaceList(e.manager)
	e.affected = make([]bool, capacity)

	e.center = make([]float64, d)
	e.updateBuffer = make([]int, d)
	e.updateIndices = make([]int, d)
	e.beyondBuffer = e.manager.GetVertexBuffer()

	e.vertexMarks = make([]bool, e.vertexCount)
	e.kernel = geometry.NewKernel(d, e.positions)
}

// newFace takes a face from the pool and makes sure the affected flags
// cover its handle.
func (e *engine) newFace() *arena.Face {
	h := e.manager.GetFace()
	if h >= len(e.affected) {
		grown := make([]bool, 2*len(e.affected)+1)
		copy(grown, e.affected)
		e.affected = grown
	}
	return e.manager.Face(h)
}

// calculateFacePlane computes the plane of face relative to the current
// center. Returns false for a degenerate face.
func (e *engine) calculateFacePlane(face *arena.Face) bool {
	offset, flipped, ok := e.kernel.CalculateFacePlane(face.Vertices, face.Normal, e.center)
	if !ok {
		return false
	}
	face.Offset = offset
	face.IsNormalFlipped = flipped
	return true
}

func (e *engine) vertexDistance(v int, face *arena.Face) float64 {
	return e.kernel.VertexDistance(v, face.Normal, face.Offset)
}

// finalizeFace moves a face onto the hull and releases its beyond buffer.
func (e *engine) finalizeFace(face *arena.Face) {
	e.convexFaces.Add(face.Index)
	e.unprocessed.Remove(face.Index)
	e.manager.DepositVertexBuffer(face.VerticesBeyond)
	face.VerticesBeyond = nil
}
