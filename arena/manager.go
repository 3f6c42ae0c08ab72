package arena

// Manager hands out pooled faces, connectors, deferred faces and index
// buffers. Deposited objects are pushed on free stacks and reissued before
// anything new is allocated, so steady-state hull updates allocate nothing.
type Manager struct {
	dimension int

	faces     []*Face
	freeFaces IndexBuffer

	connectors     []*FaceConnector
	freeConnectors IndexBuffer

	deferred     []*DeferredFace
	freeDeferred IndexBuffer

	emptyBuffers []*IndexBuffer
}

// NewManager creates a manager for D-dimensional faces with room for
// capacity faces before the first reallocation.
func NewManager(dimension, capacity int) *Manager {
	return &Manager{
		dimension: dimension,
		faces:     make([]*Face, 0, capacity),
	}
}

// Size returns the number of faces ever created; every handle is below it.
func (m *Manager) Size() int {
	return len(m.faces)
}

// Live returns how many faces, connectors and deferred faces are currently
// handed out.
func (m *Manager) Live() (faces, connectors, deferred int) {
	return len(m.faces) - m.freeFaces.Len(),
		len(m.connectors) - m.freeConnectors.Len(),
		len(m.deferred) - m.freeDeferred.Len()
}

// Face resolves a face handle.
func (m *Manager) Face(h int) *Face {
	return m.faces[h]
}

// GetFace returns the handle of an unused face, creating one if the free
// stack is empty.
func (m *Manager) GetFace() int {
	if m.freeFaces.Len() > 0 {
		return m.freeFaces.Pop()
	}

	h := len(m.faces)
	f := newFace(m.dimension, h)
	f.VerticesBeyond = m.GetVertexBuffer()
	m.faces = append(m.faces, f)
	return h
}

// DepositFace returns h to the pool. Adjacency and queue linkage are reset;
// the beyond buffer stays attached for reuse.
func (m *Manager) DepositFace(h int) {
	f := m.faces[h]
	for i := range f.AdjacentFaces {
		f.AdjacentFaces[i] = None
	}
	f.Previous = None
	f.Next = None
	f.InList = false
	f.IsNormalFlipped = false
	m.freeFaces.Push(h)
}

// Connector resolves a connector handle.
func (m *Manager) Connector(h int) *FaceConnector {
	return m.connectors[h]
}

// GetConnector returns the handle of an unused connector.
func (m *Manager) GetConnector() int {
	if m.freeConnectors.Len() > 0 {
		return m.freeConnectors.Pop()
	}

	m.connectors = append(m.connectors, newFaceConnector(m.dimension))
	return len(m.connectors) - 1
}

// DepositConnector returns h to the pool.
func (m *Manager) DepositConnector(h int) {
	c := m.connectors[h]
	c.Face = None
	c.Previous = None
	c.Next = None
	m.freeConnectors.Push(h)
}

// DeferredFace resolves a deferred face handle.
func (m *Manager) DeferredFace(h int) *DeferredFace {
	return m.deferred[h]
}

// GetDeferredFace returns the handle of an unused deferred face.
func (m *Manager) GetDeferredFace() int {
	if m.freeDeferred.Len() > 0 {
		return m.freeDeferred.Pop()
	}

	m.deferred = append(m.deferred, &DeferredFace{})
	return len(m.deferred) - 1
}

// DepositDeferredFace returns h to the pool.
func (m *Manager) DepositDeferredFace(h int) {
	*m.deferred[h] = DeferredFace{Face: None, Pivot: None, OldFace: None}
	m.freeDeferred.Push(h)
}

// GetVertexBuffer returns an empty index buffer.
func (m *Manager) GetVertexBuffer() *IndexBuffer {
	if n := len(m.emptyBuffers); n > 0 {
		b := m.emptyBuffers[n-1]
		m.emptyBuffers = m.emptyBuffers[:n-1]
		return b
	}
	return &IndexBuffer{}
}

// DepositVertexBuffer clears b and keeps it for later use.
func (m *Manager) DepositVertexBuffer(b *IndexBuffer) {
	if b == nil {
		return
	}
	b.Clear()
	m.emptyBuffers = append(m.emptyBuffers, b)
}
