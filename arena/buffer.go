package arena

// IndexBuffer is a growable list of vertex or face indices that doubles as
// a stack. Clearing keeps the backing array so a buffer can be recycled.
type IndexBuffer struct {
	items []int
}

// Len returns the number of stored indices. A nil buffer is empty.
func (b *IndexBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Add appends an index.
func (b *IndexBuffer) Add(v int) {
	b.items = append(b.items, v)
}

// Push is Add under its stack name.
func (b *IndexBuffer) Push(v int) {
	b.items = append(b.items, v)
}

// Pop removes and returns the last index.
func (b *IndexBuffer) Pop() int {
	n := len(b.items) - 1
	v := b.items[n]
	b.items = b.items[:n]
	return v
}

// Clear empties the buffer without releasing memory.
func (b *IndexBuffer) Clear() {
	b.items = b.items[:0]
}

// Values returns the stored indices. The slice aliases the buffer.
func (b *IndexBuffer) Values() []int {
	if b == nil {
		return nil
	}
	return b.items
}

// Set is a map-backed set.
type Set[T comparable] struct {
	values map[T]struct{}
}

func (s *Set[T]) Insert(value T) {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	s.values[value] = struct{}{}
}

func (s *Set[T]) Has(value T) bool {
	_, ok := s.values[value]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.values)
}
