package dynarray

import (
	"fmt"
	"math"
)

// GrowthPolicy returns the capacity a full array grows to, given its current
// capacity. The result must be greater than capacity.
type GrowthPolicy func(capacity int) int

// DoublePlusOne is the default growth policy: an empty array targets 2
// slots, anything else doubles, and one extra slot is added on top. The
// resulting capacities run 3, 7, 15, 31, ...
func DoublePlusOne(capacity int) int {
	if capacity > (math.MaxInt-1)/2 {
		return math.MaxInt
	}
	target := 2
	if capacity > 0 {
		target = capacity * 2
	}
	return target + 1
}

// Doubling grows an empty array to 2 slots and doubles from there.
func Doubling(capacity int) int {
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	if capacity == 0 {
		return 2
	}
	return capacity * 2
}

func (a *Array[T]) allocator() Allocator[T] {
	if a.alloc == nil {
		return HeapAllocator[T]{}
	}
	return a.alloc
}

// realloc moves the live elements into a buffer of exactly n slots. On
// failure the array is untouched. Either way the outcome is recorded as the
// last status.
func (a *Array[T]) realloc(n int) error {
	alloc := a.allocator()
	var buf []T
	if n > 0 {
		var err error
		buf, err = alloc.Alloc(n)
		if err == nil && len(buf) != n {
			alloc.Free(buf)
			err = fmt.Errorf("%w: allocator returned %d slots, want %d", ErrOutOfMemory, len(buf), n)
		}
		if err != nil {
			a.status = StatusOutOfMemory
			a.failures++
			return err
		}
		copy(buf, a.buf[:a.n])
	}
	if a.buf != nil {
		alloc.Free(a.buf)
	}
	a.buf = buf
	a.status = StatusOK
	a.reallocs++
	return nil
}

// grow makes room for one more element when the array is full.
func (a *Array[T]) grow() error {
	if a.n < len(a.buf) {
		return nil
	}
	policy := a.growth
	if policy == nil {
		policy = DoublePlusOne
	}
	target := policy(len(a.buf))
	if target <= len(a.buf) {
		a.status = StatusOutOfMemory
		a.failures++
		return fmt.Errorf("%w: cannot grow past %d slots", ErrOutOfMemory, len(a.buf))
	}
	return a.realloc(target)
}

// Reserve reallocates the backing storage to exactly n slots. Asking for
// fewer slots than the current length, or a negative count, fails with
// ErrInvalidCapacity and changes nothing. Allocation failure returns an
// error wrapping ErrOutOfMemory.
func (a *Array[T]) Reserve(n int) error {
	if n < 0 || n < a.n {
		return fmt.Errorf("%w: %d slots requested for %d elements", ErrInvalidCapacity, n, a.n)
	}
	if n == len(a.buf) {
		return nil
	}
	return a.realloc(n)
}

// ShrinkToFit reallocates the backing storage down to exactly Len slots.
// An empty array gives its storage back entirely.
func (a *Array[T]) ShrinkToFit() error {
	if len(a.buf) <= a.n {
		return nil
	}
	return a.realloc(a.n)
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	return len(a.buf)
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.n
}

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.n == 0
}

// ElemSize returns the size of one element in bytes.
func (a *Array[T]) ElemSize() int {
	return elemSize[T]()
}
