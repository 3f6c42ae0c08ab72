package arena

// FaceList is the queue of faces that still have points beyond them. It is
// an intrusive doubly linked list over the faces' Previous/Next handles.
//
// Ordering is loose: a face goes to the head when its beyond set is larger
// than the current head's, otherwise to the tail. That keeps insertion O(1)
// while the head tends to hold the face with the most outside points.
type FaceList struct {
	manager     *Manager
	first, last int
	count       int
}

// NewFaceList creates an empty queue over manager's faces.
func NewFaceList(manager *Manager) *FaceList {
	return &FaceList{manager: manager, first: None, last: None}
}

// First returns the head handle, or None when the queue is empty.
func (l *FaceList) First() int {
	return l.first
}

// Len returns the number of queued faces.
func (l *FaceList) Len() int {
	return l.count
}

func (l *FaceList) addFirst(face *Face) {
	face.InList = true
	face.Previous = None
	face.Next = l.first
	if l.first != None {
		l.manager.Face(l.first).Previous = face.Index
	} else {
		l.last = face.Index
	}
	l.first = face.Index
	l.count++
}

// Add queues the face h. A face already in the queue is moved to the head
// if it has outgrown the head.
func (l *FaceList) Add(h int) {
	face := l.manager.Face(h)

	if face.InList {
		if l.manager.Face(l.first).BeyondCount() < face.BeyondCount() {
			l.Remove(h)
			l.addFirst(face)
		}
		return
	}

	if l.first != None && l.manager.Face(l.first).BeyondCount() < face.BeyondCount() {
		l.addFirst(face)
		return
	}

	face.InList = true
	face.Previous = l.last
	face.Next = None
	if l.last != None {
		l.manager.Face(l.last).Next = h
	}
	l.last = h
	if l.first == None {
		l.first = h
	}
	l.count++
}

// Remove takes h out of the queue. It is a no-op for faces not queued.
func (l *FaceList) Remove(h int) {
	face := l.manager.Face(h)
	if !face.InList {
		return
	}

	face.InList = false

	if face.Previous != None {
		l.manager.Face(face.Previous).Next = face.Next
	} else {
		l.first = face.Next
	}

	if face.Next != None {
		l.manager.Face(face.Next).Previous = face.Previous
	} else {
		l.last = face.Previous
	}

	face.Previous = None
	face.Next = None
	l.count--
}
