package dynarray

// Option customizes an Array at initialization.
type Option[T any] func(*Array[T])

// WithAllocator sets the allocator that provides backing storage. A nil
// allocator selects the Go heap.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(a *Array[T]) {
		a.alloc = alloc
	}
}

// WithGrowth sets the policy used when a full array needs room for one more
// element. A nil policy selects DoublePlusOne.
func WithGrowth[T any](policy GrowthPolicy) Option[T] {
	return func(a *Array[T]) {
		a.growth = policy
	}
}
