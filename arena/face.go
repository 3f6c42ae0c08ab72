// Package arena stores the mutable state of a hull computation: faces,
// ridge connectors and deferred cone faces, all addressed by integer handles
// into pools that are recycled instead of garbage collected.
//
// A handle is only valid between a Get and the matching Deposit. Nothing in
// this package is safe for concurrent use; each computation owns its arena.
package arena

// None is the handle that refers to no face.
const None = -1

// Face is one facet of the polytope under construction.
type Face struct {
	// Index is the face's own handle.
	Index int

	// AdjacentFaces[i] is the face sharing every vertex except Vertices[i].
	AdjacentFaces []int

	// Vertices is kept sorted by vertex index.
	Vertices []int

	// VerticesBeyond lists the points strictly outside the face plane.
	// nil once the face is final.
	VerticesBeyond *IndexBuffer

	// FurthestVertex is the beyond point with the largest distance.
	FurthestVertex int

	// Normal and Offset define normal·x + Offset = 0, with the interior on
	// the negative side.
	Normal []float64
	Offset float64

	// IsNormalFlipped is set when Normal points against the orientation
	// implied by the sorted vertex order.
	IsNormalFlipped bool

	// Tag is scratch space for result renumbering.
	Tag int

	// Queue linkage.
	Previous, Next int
	InList         bool
}

func newFace(dimension, index int) *Face {
	f := &Face{
		Index:         index,
		AdjacentFaces: make([]int, dimension),
		Vertices:      make([]int, dimension),
		Normal:        make([]float64, dimension),
		Previous:      None,
		Next:          None,
	}
	for i := range f.AdjacentFaces {
		f.AdjacentFaces[i] = None
	}
	return f
}

// BeyondCount returns the size of the beyond set.
func (f *Face) BeyondCount() int {
	return f.VerticesBeyond.Len()
}

// DeferredFace records a cone face before it is committed: the new face,
// the horizon face it will be glued to, and the affected face it replaces.
type DeferredFace struct {
	Face, Pivot, OldFace int

	// FaceIndex is the slot of the new face that faces Pivot;
	// PivotIndex is the slot of Pivot that faces OldFace.
	FaceIndex, PivotIndex int
}
