package arena

// ConnectorTableSize is the number of hash buckets. A prime keeps the
// modulo spread reasonable for the multiplicative hash below.
const ConnectorTableSize = 2017

// FaceConnector describes one ridge of a freshly built face: the face's
// vertices minus the one at EdgeIndex.
type FaceConnector struct {
	Face      int
	EdgeIndex int
	Vertices  []int
	HashCode  uint32

	Previous, Next int
}

func newFaceConnector(dimension int) *FaceConnector {
	return &FaceConnector{
		Face:     None,
		Vertices: make([]int, dimension-1),
		Previous: None,
		Next:     None,
	}
}

// Update points the connector at the ridge of face opposite edgeIndex.
func (c *FaceConnector) Update(face *Face, edgeIndex int) {
	c.Face = face.Index
	c.EdgeIndex = edgeIndex

	hash := uint32(23)
	n := 0
	for i, v := range face.Vertices {
		if i == edgeIndex {
			continue
		}
		c.Vertices[n] = v
		n++
		hash += 31*hash + uint32(v)
	}

	c.HashCode = hash
}

// AreConnectable reports whether two connectors describe the same ridge.
func AreConnectable(a, b *FaceConnector) bool {
	if a.HashCode != b.HashCode {
		return false
	}

	for i, v := range a.Vertices {
		if v != b.Vertices[i] {
			return false
		}
	}

	return true
}

type connectorBucket struct {
	first, last int
}

// ConnectorTable pairs up ridges of new faces. Each bucket is an intrusive
// doubly linked list threaded through the connectors' Previous/Next handles.
type ConnectorTable struct {
	manager *Manager
	buckets [ConnectorTableSize]connectorBucket
	pending int
}

// NewConnectorTable creates an empty table backed by manager's connectors.
func NewConnectorTable(manager *Manager) *ConnectorTable {
	t := &ConnectorTable{manager: manager}
	for i := range t.buckets {
		t.buckets[i] = connectorBucket{first: None, last: None}
	}
	return t
}

// Pending returns the number of connectors still waiting for their twin.
func (t *ConnectorTable) Pending() int {
	return t.pending
}

// Connect looks for the twin of the connector h. When found, the two faces
// are made adjacent and both connectors go back to the pool; otherwise h is
// stored until its twin arrives. Returns true when a pair was made.
func (t *ConnectorTable) Connect(h int) bool {
	m := t.manager
	connector := m.Connector(h)
	bucket := &t.buckets[connector.HashCode%ConnectorTableSize]

	for current := bucket.first; current != None; current = m.Connector(current).Next {
		other := m.Connector(current)
		if !AreConnectable(connector, other) {
			continue
		}

		t.remove(bucket, current)
		m.Face(other.Face).AdjacentFaces[other.EdgeIndex] = connector.Face
		m.Face(connector.Face).AdjacentFaces[connector.EdgeIndex] = other.Face

		m.DepositConnector(current)
		m.DepositConnector(h)
		return true
	}

	t.add(bucket, h)
	return false
}

func (t *ConnectorTable) add(bucket *connectorBucket, h int) {
	c := t.manager.Connector(h)
	c.Previous = bucket.last
	c.Next = None

	if bucket.last != None {
		t.manager.Connector(bucket.last).Next = h
	}
	bucket.last = h
	if bucket.first == None {
		bucket.first = h
	}
	t.pending++
}

func (t *ConnectorTable) remove(bucket *connectorBucket, h int) {
	c := t.manager.Connector(h)

	if c.Previous != None {
		t.manager.Connector(c.Previous).Next = c.Next
	} else {
		bucket.first = c.Next
	}

	if c.Next != None {
		t.manager.Connector(c.Next).Previous = c.Previous
	} else {
		bucket.last = c.Previous
	}

	c.Previous = None
	c.Next = None
	t.pending--
}
