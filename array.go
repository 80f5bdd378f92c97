package dynarray

// Array is a growable array of T with an explicit growth policy, a sentinel
// returned by guarded reads and an optional destructor run on every element
// as it leaves the array.
//
// The zero value is an empty array with a zero sentinel, no destructor, heap
// storage and the DoublePlusOne growth policy.
//
// Array is not safe for concurrent use. Any operation that may reallocate
// (growth, Reserve, ShrinkToFit, Release) can move the backing storage, so
// slices, iterators and values obtained from Slice, Begin, End or All before
// a mutation must not be used after it.
type Array[T any] struct {
	buf        []T
	n          int
	sentinel   T
	destructor func(T)
	status     Status
	alloc      Allocator[T]
	growth     GrowthPolicy

	reallocs int
	failures int
}

// New returns an initialized array. sentinel is what At, Front and Back
// return when there is no element to return. destructor, if non-nil, is
// called exactly once on each element as it is removed, cleared or dropped
// by Release.
func New[T any](sentinel T, destructor func(T), opts ...Option[T]) *Array[T] {
	return new(Array[T]).Init(sentinel, destructor, opts...)
}

// Init (re)initializes a and returns it. Storage held from earlier use is
// dropped without running the destructor; call Release first to run it.
func (a *Array[T]) Init(sentinel T, destructor func(T), opts ...Option[T]) *Array[T] {
	*a = Array[T]{sentinel: sentinel, destructor: destructor}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetDestructor replaces the destructor. A nil destructor turns removal into
// pure bookkeeping.
func (a *Array[T]) SetDestructor(destructor func(T)) {
	a.destructor = destructor
}

// Sentinel returns the value guarded reads fall back to.
func (a *Array[T]) Sentinel() T {
	return a.sentinel
}

// Release runs the destructor over every live element in index order and
// gives the backing storage back to the allocator. Afterwards the array is
// empty with zero capacity and StatusOK, keeps its sentinel, destructor,
// allocator and growth policy, and may be used again.
func (a *Array[T]) Release() {
	a.destroy(0, a.n)
	if a.buf != nil {
		a.allocator().Free(a.buf)
	}
	a.buf = nil
	a.n = 0
	a.status = StatusOK
}

// destroy runs the destructor on elements [from, to) in ascending order and
// zeroes their slots so the buffer keeps nothing reachable.
func (a *Array[T]) destroy(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		if a.destructor != nil {
			a.destructor(a.buf[i])
		}
		a.buf[i] = zero
	}
}

// HadError reports whether the most recent allocation failed.
func (a *Array[T]) HadError() bool {
	return a.status != StatusOK
}

// LastError returns the outcome of the most recent allocation.
func (a *Array[T]) LastError() Status {
	return a.status
}

// ErrorDescription describes the outcome of the most recent allocation.
func (a *Array[T]) ErrorDescription() string {
	return a.status.String()
}
