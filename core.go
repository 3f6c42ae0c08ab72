package convexhull

import (
	"math"

	"github.com/akmonengine/convexhull/arena"
)

// findConvexHull runs the incremental construction until no face has points
// beyond it.
//
// Each iteration:
//  1. takes the queue head and its furthest vertex v
//  2. folds v into the running center
//  3. collects every face visible from v (breadth first over adjacency)
//  4. builds the cone of new faces joining v to the horizon ridges
//  5. commits the cone, or, if v is degenerate, finalizes the visible
//     faces as they are and marks their outside points singular
func (e *engine) findConvexHull() error {
	if err := e.initConvexHull(); err != nil {
		return err
	}

	for e.unprocessed.First() != arena.None {
		e.processFace()
	}

	faces, connectors, deferred := e.manager.Live()
	Logger().Debug("convexhull: construction finished",
		"iterations", e.iterations,
		"faces", e.convexFaces.Len(),
		"singularVertices", e.singular.Len(),
		"liveFaces", faces,
		"liveConnectors", connectors,
		"liveDeferred", deferred,
		"pendingConnectors", e.connectors.Pending())

	return nil
}

// processFace runs one iteration on the queue head: it either replaces the
// faces visible from the head's furthest vertex with a cone, or falls back
// to handleSingular.
func (e *engine) processFace() {
	currentFace := e.manager.Face(e.unprocessed.First())
	e.currentVertex = currentFace.FurthestVertex
	e.iterations++

	e.updateCenter()
	e.tagAffectedFaces(currentFace)

	if !e.singular.Has(e.currentVertex) && e.createCone() {
		e.commitCone()
	} else {
		e.handleSingular()
	}

	for _, h := range e.affectedFaceBuffer.Values() {
		e.affected[h] = false
	}
}

// tagAffectedFaces fills affectedFaceBuffer with currentFace and every face
// reachable from it through faces the current vertex can see.
func (e *engine) tagAffectedFaces(currentFace *arena.Face) {
	e.affectedFaceBuffer.Clear()
	e.affectedFaceBuffer.Add(currentFace.Index)

	e.traverseStack.Clear()
	e.traverseStack.Push(currentFace.Index)
	e.affected[currentFace.Index] = true

	for e.traverseStack.Len() > 0 {
		top := e.manager.Face(e.traverseStack.Pop())
		for _, adj := range top.AdjacentFaces {
			if adj == arena.None || e.affected[adj] {
				continue
			}
			if e.vertexDistance(e.currentVertex, e.manager.Face(adj)) >= e.tolerance {
				e.affectedFaceBuffer.Add(adj)
				e.affected[adj] = true
				e.traverseStack.Push(adj)
			}
		}
	}
}

// createCone builds one new face per horizon ridge of the affected region.
// Returns false, with every new face returned to the pool, as soon as one
// of them is degenerate.
func (e *engine) createCone() bool {
	d := e.dimension
	current := e.currentVertex
	e.coneFaceBuffer.Clear()

	for _, oldFaceIndex := range e.affectedFaceBuffer.Values() {
		oldFace := e.manager.Face(oldFaceIndex)

		// horizon neighbours of oldFace
		updateCount := 0
		for i, af := range oldFace.AdjacentFaces {
			if af != arena.None && !e.affected[af] {
				e.updateBuffer[updateCount] = af
				e.updateIndices[updateCount] = i
				updateCount++
			}
		}

		for i := 0; i < updateCount; i++ {
			adjacentFace := e.manager.Face(e.updateBuffer[i])

			oldFaceAdjacentIndex := 0
			for j, h := range adjacentFace.AdjacentFaces {
				if h == oldFaceIndex {
					oldFaceAdjacentIndex = j
					break
				}
			}

			// slot of the vertex replaced by current
			forbidden := e.updateIndices[i]

			newFace := e.newFace()
			vertices := newFace.Vertices
			copy(vertices, oldFace.Vertices)
			oldVertexIndex := vertices[forbidden]

			// shift to keep the tuple sorted with current inserted
			var orderedPivotIndex int
			if current < oldVertexIndex {
				orderedPivotIndex = 0
				for j := forbidden - 1; j >= 0; j-- {
					if vertices[j] > current {
						vertices[j+1] = vertices[j]
					} else {
						orderedPivotIndex = j + 1
						break
					}
				}
			} else {
				orderedPivotIndex = d - 1
				for j := forbidden + 1; j < d; j++ {
					if vertices[j] < current {
						vertices[j-1] = vertices[j]
					} else {
						orderedPivotIndex = j - 1
						break
					}
				}
			}
			vertices[orderedPivotIndex] = current

			if !e.calculateFacePlane(newFace) {
				e.manager.DepositFace(newFace.Index)
				e.discardCone()
				return false
			}

			h := e.manager.GetDeferredFace()
			deferred := e.manager.DeferredFace(h)
			deferred.Face = newFace.Index
			deferred.FaceIndex = orderedPivotIndex
			deferred.Pivot = adjacentFace.Index
			deferred.PivotIndex = oldFaceAdjacentIndex
			deferred.OldFace = oldFace.Index
			e.coneFaceBuffer.Add(h)
		}
	}

	return true
}

// discardCone returns the faces of a failed cone to the pools.
func (e *engine) discardCone() {
	for _, h := range e.coneFaceBuffer.Values() {
		e.manager.DepositFace(e.manager.DeferredFace(h).Face)
		e.manager.DepositDeferredFace(h)
	}
	e.coneFaceBuffer.Clear()
}

// commitCone glues the cone into the adjacency graph, redistributes beyond
// points and releases the faces it replaced.
func (e *engine) commitCone() {
	for _, h := range e.coneFaceBuffer.Values() {
		deferred := e.manager.DeferredFace(h)

		newFace := e.manager.Face(deferred.Face)
		adjacentFace := e.manager.Face(deferred.Pivot)
		oldFace := e.manager.Face(deferred.OldFace)
		orderedPivotIndex := deferred.FaceIndex

		newFace.AdjacentFaces[orderedPivotIndex] = adjacentFace.Index
		adjacentFace.AdjacentFaces[deferred.PivotIndex] = newFace.Index

		// the other ridges meet sibling cone faces
		for j := 0; j < e.dimension; j++ {
			if j == orderedPivotIndex {
				continue
			}
			c := e.manager.GetConnector()
			e.manager.Connector(c).Update(newFace, j)
			e.connectors.Connect(c)
		}

		switch {
		case adjacentFace.BeyondCount() == 0:
			e.findBeyondVertices(newFace, oldFace.VerticesBeyond, nil)
		case adjacentFace.BeyondCount() < oldFace.BeyondCount():
			// scan the smaller set first
			e.findBeyondVertices(newFace, adjacentFace.VerticesBeyond, oldFace.VerticesBeyond)
		default:
			e.findBeyondVertices(newFace, oldFace.VerticesBeyond, adjacentFace.VerticesBeyond)
		}

		if newFace.BeyondCount() == 0 {
			e.finalizeFace(newFace)
		} else {
			e.unprocessed.Add(newFace.Index)
		}

		e.manager.DepositDeferredFace(h)
	}
	e.coneFaceBuffer.Clear()

	for _, h := range e.affectedFaceBuffer.Values() {
		e.unprocessed.Remove(h)
		e.manager.DepositFace(h)
	}
}

// isBeyond adds v to beyond if it lies outside face, tracking the furthest
// such vertex. Distances within tolerance of the current maximum go to the
// lexicographically larger vertex.
func (e *engine) isBeyond(face *arena.Face, beyond *arena.IndexBuffer, v int) {
	distance := e.vertexDistance(v, face)
	if distance < e.tolerance {
		return
	}

	if distance > e.maxDistance {
		if distance-e.maxDistance >= e.tolerance || e.kernel.LexCompare(v, e.furthestVertex) > 0 {
			e.maxDistance = distance
			e.furthestVertex = v
		}
	}
	beyond.Add(v)
}

// findBeyondVertices computes the beyond set of a cone face from the union
// of beyond and beyond1, skipping the current vertex. beyond1 may be nil.
func (e *engine) findBeyondVertices(face *arena.Face, beyond, beyond1 *arena.IndexBuffer) {
	beyondVertices := e.beyondBuffer

	e.maxDistance = math.Inf(-1)
	e.furthestVertex = 0

	for _, v := range beyond1.Values() {
		e.vertexMarks[v] = true
	}
	e.vertexMarks[e.currentVertex] = false

	for _, v := range beyond.Values() {
		if v == e.currentVertex {
			continue
		}
		e.vertexMarks[v] = false
		e.isBeyond(face, beyondVertices, v)
	}

	for _, v := range beyond1.Values() {
		if e.vertexMarks[v] {
			e.vertexMarks[v] = false
			e.isBeyond(face, beyondVertices, v)
		}
	}

	face.FurthestVertex = e.furthestVertex

	// swap the scratch buffer in
	old := face.VerticesBeyond
	face.VerticesBeyond = beyondVertices
	if old == nil {
		old = e.manager.GetVertexBuffer()
	}
	old.Clear()
	e.beyondBuffer = old
}

// updateCenter folds the current vertex into the running centroid.
func (e *engine) updateCenter() {
	for i := range e.center {
		e.center[i] *= float64(e.convexHullSize)
	}
	e.convexHullSize++

	f := 1.0 / float64(e.convexHullSize)
	p := e.kernel.Position(e.currentVertex)
	for i := range e.center {
		e.center[i] = f * (e.center[i] + p[i])
	}
}

// rollbackCenter undoes the last updateCenter.
func (e *engine) rollbackCenter() {
	for i := range e.center {
		e.center[i] *= float64(e.convexHullSize)
	}
	e.convexHullSize--

	f := 0.0
	if e.convexHullSize > 0 {
		f = 1.0 / float64(e.convexHullSize)
	}
	p := e.kernel.Position(e.currentVertex)
	for i := range e.center {
		e.center[i] = f * (e.center[i] - p[i])
	}
}

// handleSingular treats the current vertex as degenerate: every affected
// face is kept on the hull unchanged and every point beyond them is marked
// singular so it is never processed again.
func (e *engine) handleSingular() {
	e.rollbackCenter()
	e.singular.Insert(e.currentVertex)

	for _, h := range e.affectedFaceBuffer.Values() {
		face := e.manager.Face(h)
		if face.VerticesBeyond == nil {
			// already on the hull
			continue
		}
		for _, v := range face.VerticesBeyond.Values() {
			e.singular.Insert(v)
		}
		e.finalizeFace(face)
	}

	Logger().Debug("convexhull: singular vertex",
		"vertex", e.currentVertex,
		"affectedFaces", e.affectedFaceBuffer.Len())
}
