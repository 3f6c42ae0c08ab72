package geometry

import "github.com/go-gl/mathgl/mgl64"

// Span is the affine hull of a growing set of vertices, kept as an origin
// vertex plus an orthonormal basis built by Gram-Schmidt.
type Span struct {
	kernel *Kernel
	origin int
	basis  []mgl64.VecN

	residual mgl64.VecN
	buf      []float64
}

// NewSpan starts a span holding only origin.
func (k *Kernel) NewSpan(origin int) *Span {
	return &Span{
		kernel: k,
		origin: origin,
		basis:  make([]mgl64.VecN, 0, k.dimension),
		buf:    make([]float64, k.dimension),
	}
}

// Rank returns the number of independent directions added so far.
func (s *Span) Rank() int {
	return len(s.basis)
}

// Distance returns the euclidean distance from vertex v to the span.
func (s *Span) Distance(v int) float64 {
	s.project(v)
	return s.residual.Len()
}

// Add extends the span with v. It returns false, leaving the span
// unchanged, when v - origin has no component outside the span at all.
// Callers screen candidates with Distance first.
func (s *Span) Add(v int) bool {
	s.project(v)

	l := s.residual.Len()
	if l == 0 {
		return false
	}

	direction := mgl64.NewVecNFromData(s.buf)
	direction.Mul(direction, 1/l)
	s.basis = append(s.basis, *direction)
	return true
}

// project leaves in residual the component of v - origin orthogonal to
// every basis direction.
func (s *Span) project(v int) {
	s.kernel.SubtractFast(v, s.origin, s.buf)
	s.residual.SetBackingSlice(s.buf)

	for i := range s.basis {
		b := &s.basis[i]
		d := s.residual.Dot(b)
		for j, x := range b.Raw() {
			s.buf[j] -= d * x
		}
	}
}
