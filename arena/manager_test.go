package arena

import "testing"

func TestManagerReusesFaces(t *testing.T) {
	m := NewManager(3, 4)

	a := m.GetFace()
	b := m.GetFace()
	if a != 0 || b != 1 {
		t.Fatalf("GetFace() = %d, %d, want 0, 1", a, b)
	}
	if m.Face(a).Index != a || m.Face(b).Index != b {
		t.Fatal("face Index does not match its handle")
	}

	m.Face(a).AdjacentFaces[1] = b
	m.Face(a).InList = true
	m.DepositFace(a)

	if got := m.GetFace(); got != a {
		t.Fatalf("GetFace() after deposit = %d, want %d", got, a)
	}
	if m.Size() != 2 {
		t.Errorf("Size() = %d, want 2", m.Size())
	}

	f := m.Face(a)
	for i, adj := range f.AdjacentFaces {
		if adj != None {
			t.Errorf("AdjacentFaces[%d] = %d after reuse, want None", i, adj)
		}
	}
	if f.InList {
		t.Error("InList survived deposit")
	}
	if f.VerticesBeyond == nil {
		t.Error("reused face lost its beyond buffer")
	}
	if len(f.Vertices) != 3 || len(f.Normal) != 3 {
		t.Errorf("face sized %d/%d, want 3", len(f.Vertices), len(f.Normal))
	}
}

func TestManagerConnectorsAndDeferred(t *testing.T) {
	m := NewManager(4, 0)

	c := m.GetConnector()
	if got := len(m.Connector(c).Vertices); got != 3 {
		t.Errorf("connector holds %d vertices, want 3", got)
	}
	m.DepositConnector(c)
	if got := m.GetConnector(); got != c {
		t.Errorf("GetConnector() after deposit = %d, want %d", got, c)
	}

	d := m.GetDeferredFace()
	m.DeferredFace(d).Face = 5
	m.DepositDeferredFace(d)
	if m.DeferredFace(d).Face != None {
		t.Errorf("deferred face kept Face = %d after deposit", m.DeferredFace(d).Face)
	}
	if got := m.GetDeferredFace(); got != d {
		t.Errorf("GetDeferredFace() after deposit = %d, want %d", got, d)
	}
}

func TestManagerLive(t *testing.T) {
	m := NewManager(3, 0)

	a, b := m.GetFace(), m.GetFace()
	c := m.GetConnector()
	d := m.GetDeferredFace()
	if faces, connectors, deferred := m.Live(); faces != 2 || connectors != 1 || deferred != 1 {
		t.Fatalf("Live() = %d, %d, %d, want 2, 1, 1", faces, connectors, deferred)
	}

	m.DepositFace(a)
	m.DepositFace(b)
	m.DepositConnector(c)
	m.DepositDeferredFace(d)
	if faces, connectors, deferred := m.Live(); faces != 0 || connectors != 0 || deferred != 0 {
		t.Errorf("Live() after deposits = %d, %d, %d, want 0, 0, 0", faces, connectors, deferred)
	}
}

func TestManagerVertexBuffers(t *testing.T) {
	m := NewManager(2, 0)

	b := m.GetVertexBuffer()
	b.Add(1)
	b.Add(2)
	m.DepositVertexBuffer(b)
	m.DepositVertexBuffer(nil)

	got := m.GetVertexBuffer()
	if got != b {
		t.Fatal("GetVertexBuffer() did not reuse the deposited buffer")
	}
	if got.Len() != 0 {
		t.Errorf("reused buffer has %d items, want 0", got.Len())
	}
	if m.GetVertexBuffer() == b {
		t.Error("the same buffer was handed out twice")
	}
}

func TestIndexBuffer(t *testing.T) {
	var nilBuffer *IndexBuffer
	if nilBuffer.Len() != 0 || nilBuffer.Values() != nil {
		t.Error("nil buffer must be empty")
	}

	var b IndexBuffer
	b.Push(1)
	b.Push(2)
	b.Add(3)
	if b.Len() != 3 || b.Values()[1] != 2 {
		t.Fatalf("buffer = %v", b.Values())
	}
	if got := b.Pop(); got != 3 {
		t.Errorf("Pop() = %d, want 3", got)
	}
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() after Clear = %d", b.Len())
	}
}

func TestSet(t *testing.T) {
	var s Set[int]
	if s.Has(1) || s.Len() != 0 {
		t.Fatal("zero set must be empty")
	}

	s.Insert(1)
	s.Insert(4)
	s.Insert(1)
	if !s.Has(1) || !s.Has(4) || s.Has(2) || s.Len() != 2 {
		t.Errorf("set = %v", s.values)
	}
}
