package fabrik

// Sequence produces successive values from a monotonic counter via a
// user-supplied produce function. The counter starts at 1 and increments once
// per value; there is no ceiling and no reset, restart by creating a new
// Sequence. Not safe for concurrent use without external synchronization.
type Sequence[T any] struct {
	counter int
	produce func(n int) T
}

// NewSequence creates a sequence whose values come from produce(1),
// produce(2), and so on.
func NewSequence[T any](produce func(n int) T) *Sequence[T] {
	if produce == nil {
		panic("fabrik: nil produce function")
	}
	return &Sequence[T]{counter: 1, produce: produce}
}

// Next returns the next value in the sequence.
func (s *Sequence[T]) Next() T {
	n := s.counter
	s.counter++
	return s.produce(n)
}

// Take returns the next n values in the sequence, equivalent to n calls to
// Next.
func (s *Sequence[T]) Take(n int) []T {
	values := make([]T, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, s.Next())
	}
	return values
}
