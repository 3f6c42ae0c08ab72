package arena

import "testing"

// newQueuedFaces creates faces whose beyond sets hold sizes[i] points.
func newQueuedFaces(m *Manager, sizes ...int) []int {
	handles := make([]int, len(sizes))
	for i, n := range sizes {
		h := m.GetFace()
		for v := 0; v < n; v++ {
			m.Face(h).VerticesBeyond.Add(v)
		}
		handles[i] = h
	}
	return handles
}

func listOrder(l *FaceList) []int {
	var order []int
	for h := l.First(); h != None; h = l.manager.Face(h).Next {
		order = append(order, h)
	}
	return order
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFaceListAdd(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []int
		expected []int
	}{
		{"single", []int{3}, []int{0}},
		{"larger goes first", []int{1, 5}, []int{1, 0}},
		{"smaller goes last", []int{5, 1}, []int{0, 1}},
		{"equal goes last", []int{2, 2}, []int{0, 1}},
		{"mixed", []int{2, 1, 7, 3}, []int{2, 0, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(3, 0)
			l := NewFaceList(m)
			for _, h := range newQueuedFaces(m, tt.sizes...) {
				l.Add(h)
			}

			if got := listOrder(l); !equalInts(got, tt.expected) {
				t.Errorf("order = %v, want %v", got, tt.expected)
			}
			if l.Len() != len(tt.sizes) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.sizes))
			}
		})
	}
}

func TestFaceListReAddMovesToHead(t *testing.T) {
	m := NewManager(3, 0)
	l := NewFaceList(m)
	faces := newQueuedFaces(m, 4, 2, 1)
	for _, h := range faces {
		l.Add(h)
	}

	// face 2 grows beyond the head
	for v := 0; v < 10; v++ {
		m.Face(faces[2]).VerticesBeyond.Add(v)
	}
	l.Add(faces[2])

	if got := listOrder(l); !equalInts(got, []int{2, 0, 1}) {
		t.Errorf("order = %v, want [2 0 1]", got)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}

	// re-adding a face that is not larger than the head is a no-op
	l.Add(faces[1])
	if got := listOrder(l); !equalInts(got, []int{2, 0, 1}) {
		t.Errorf("order = %v, want [2 0 1]", got)
	}
}

func TestFaceListRemove(t *testing.T) {
	m := NewManager(3, 0)
	l := NewFaceList(m)
	faces := newQueuedFaces(m, 3, 2, 1)
	for _, h := range faces {
		l.Add(h)
	}

	l.Remove(faces[1])
	if got := listOrder(l); !equalInts(got, []int{0, 2}) {
		t.Errorf("order after removing middle = %v, want [0 2]", got)
	}

	l.Remove(faces[1])
	if l.Len() != 2 {
		t.Errorf("removing twice changed Len() to %d", l.Len())
	}

	l.Remove(faces[0])
	l.Remove(faces[2])
	if l.First() != None || l.Len() != 0 {
		t.Errorf("list not empty: first = %d, len = %d", l.First(), l.Len())
	}

	l.Add(faces[1])
	if l.First() != faces[1] {
		t.Errorf("First() = %d after re-adding to an empty list, want %d", l.First(), faces[1])
	}
}
