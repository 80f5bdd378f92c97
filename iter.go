package dynarray

import "iter"

// Get returns the element at i without bounds checking against Len. Reading
// at or past Len is the caller's mistake: past Capacity it panics, below it
// the result is unspecified.
func (a *Array[T]) Get(i int) T {
	return a.buf[i]
}

// Set stores x at i without bounds checking against Len and without running
// the destructor on the value it overwrites.
func (a *Array[T]) Set(i int, x T) {
	a.buf[i] = x
}

// At returns the element at i, or the sentinel if i is not a live index.
// A stored value equal to the sentinel cannot be told apart from a miss;
// compare i against Len when that matters.
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= a.n {
		return a.sentinel
	}
	return a.buf[i]
}

// Front returns the first element, or the sentinel if the array is empty.
func (a *Array[T]) Front() T {
	if a.n == 0 {
		return a.sentinel
	}
	return a.buf[0]
}

// Back returns the last element, or the sentinel if the array is empty.
func (a *Array[T]) Back() T {
	if a.n == 0 {
		return a.sentinel
	}
	return a.buf[a.n-1]
}

// Slice returns the live elements as a slice sharing the backing storage.
// It is nil for an empty array and is invalidated by any mutation.
func (a *Array[T]) Slice() []T {
	if a.n == 0 {
		return nil
	}
	return a.buf[:a.n:a.n]
}

// Iterator is a position in an array. Begin and End delimit the half-open
// live range; step from Begin with Next until Equal(End).
type Iterator[T any] struct {
	buf []T
	i   int
}

// Begin returns the position of the first element.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: a.buf[:a.n], i: 0}
}

// End returns the position one past the last element.
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{buf: a.buf[:a.n], i: a.n}
}

// Value returns the element at the iterator. Calling it on End panics.
func (it Iterator[T]) Value() T {
	return it.buf[it.i]
}

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] {
	it.i++
	return it
}

// Index returns the element index the iterator points at.
func (it Iterator[T]) Index() int {
	return it.i
}

// Equal reports whether two iterators point at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.i == other.i
}

// ForEach calls visit once per element in index order, passing the element
// by value together with ctx. visit must not mutate a.
func ForEach[T, C any](a *Array[T], visit func(T, C), ctx C) {
	for it, end := a.Begin(), a.End(); !it.Equal(end); it = it.Next() {
		visit(it.Value(), ctx)
	}
}

// All yields index/element pairs in order. The loop body must not mutate a.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}
