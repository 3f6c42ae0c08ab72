// Package convexhull computes the convex hull of a point set in any
// dimension D >= 2.
//
// The algorithm is an incremental QuickHull: starting from a simplex of D+1
// well spread points, it repeatedly takes the face with the most points
// outside it, finds every face visible from that face's furthest point
// (the horizon), replaces them with a cone of new faces joined to the point,
// and redistributes the outside points. Faces with no outside points are
// final.
//
// Faces are stored in pooled arenas addressed by integer handles (see the
// arena package), and new faces find their neighbours through a hash table
// of ridges instead of pairwise comparison.
//
// Example:
//
//	points := convexhull.PointsFromVec3(cloud)
//	hull, err := convexhull.Create(points, nil)
//	if err != nil {
//		return err
//	}
//	for _, f := range hull.Faces {
//		fmt.Println(f.Vertices, f.Normal3())
//	}
package convexhull

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is anything with a position. All vertices passed to one
// computation must have positions of the same length.
type Vertex interface {
	Position() []float64
}

// Point is the default Vertex, a bare coordinate vector.
type Point []float64

// Position implements Vertex.
func (p Point) Position() []float64 {
	return p
}

// PointsFromVec3 wraps 3D vectors as Points.
func PointsFromVec3(vs []mgl64.Vec3) []Point {
	points := make([]Point, len(vs))
	for i, v := range vs {
		points[i] = Point{v[0], v[1], v[2]}
	}
	return points
}

// Face is one facet of a computed hull.
type Face[V Vertex] struct {
	// Vertices holds D vertices, ordered so that the oriented normal of
	// (v1-v0, ..., v_{D-1}-v0) points along Normal.
	Vertices []V

	// Adjacency[i] is the face sharing every vertex of this face except
	// Vertices[i]. An entry is nil when there is no such face, which only
	// happens for the single-simplex result.
	Adjacency []*Face[V]

	// Normal is the outward unit normal.
	Normal []float64
}

// Normal3 returns the normal of a 3D face as a vector.
func (f *Face[V]) Normal3() mgl64.Vec3 {
	return mgl64.Vec3{f.Normal[0], f.Normal[1], f.Normal[2]}
}

// Hull is the result of a computation. It never refers to internal state
// of the engine that produced it.
type Hull[V Vertex] struct {
	// Points are the input vertices lying on at least one face, in no
	// particular order.
	Points []V

	// Faces are the facets of the hull.
	Faces []*Face[V]
}

// Create computes the convex hull of data. A nil cfg means DefaultConfig.
//
// Inputs with fewer than D points yield an empty hull; exactly D points
// yield a single face. Configuration and dimension problems are reported
// before any geometry work; ErrSingularInput is returned when the points do
// not span D dimensions.
func Create[V Vertex](data []V, cfg *Config) (*Hull[V], error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}

	c, err := c.validate()
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &Hull[V]{}, nil
	}

	start := time.Now()

	positions := make([][]float64, len(data))
	for i, v := range data {
		positions[i] = v.Position()
	}

	e, err := newEngine(positions, c)
	if err != nil {
		return nil, err
	}

	if err := e.findConvexHull(); err != nil {
		return nil, err
	}

	hull := &Hull[V]{
		Points: hullVertices(e, data),
		Faces:  convexFaces(e, data),
	}

	Logger().Info("convexhull: hull computed",
		"dimension", e.dimension,
		"points", len(data),
		"faces", len(hull.Faces),
		"vertices", len(hull.Points),
		"duration", time.Since(start))

	return hull, nil
}
