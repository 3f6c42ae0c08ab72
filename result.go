package convexhull

// hullVertices returns the input vertices referenced by at least one final
// face.
func hullVertices[V Vertex](e *engine, data []V) []V {
	marks := e.vertexMarks
	clear(marks)

	count := 0
	for _, h := range e.convexFaces.Values() {
		for _, v := range e.manager.Face(h).Vertices {
			if !marks[v] {
				marks[v] = true
				count++
			}
		}
	}

	result := make([]V, 0, count)
	for i, marked := range marks {
		if marked {
			result = append(result, data[i])
		}
	}

	return result
}

// convexFaces converts the final faces into public faces, renumbering
// internal handles through the faces' Tag field.
func convexFaces[V Vertex](e *engine, data []V) []*Face[V] {
	d := e.dimension
	handles := e.convexFaces.Values()
	cells := make([]*Face[V], len(handles))

	for h := 0; h < e.manager.Size(); h++ {
		e.manager.Face(h).Tag = -1
	}

	for i, h := range handles {
		face := e.manager.Face(h)

		vertices := make([]V, d)
		for j, v := range face.Vertices {
			vertices[j] = data[v]
		}

		cells[i] = &Face[V]{
			Vertices:  vertices,
			Adjacency: make([]*Face[V], d),
			Normal:    append([]float64(nil), face.Normal...),
		}
		face.Tag = i
	}

	for i, h := range handles {
		face := e.manager.Face(h)
		cell := cells[i]

		for j, adj := range face.AdjacentFaces {
			if adj < 0 {
				continue
			}
			if tag := e.manager.Face(adj).Tag; tag >= 0 {
				cell.Adjacency[j] = cells[tag]
			}
		}

		// flipped faces get their first and last vertex swapped so every
		// face winds the same way around its normal
		if face.IsNormalFlipped {
			cell.Vertices[0], cell.Vertices[d-1] = cell.Vertices[d-1], cell.Vertices[0]
			cell.Adjacency[0], cell.Adjacency[d-1] = cell.Adjacency[d-1], cell.Adjacency[0]
		}
	}

	return cells
}
