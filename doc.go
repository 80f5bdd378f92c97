// Package dynarray implements a generic, manually managed dynamic array.
//
// # Overview
//
// Array[T] is a resizable array with explicit control over when its storage
// grows and where that storage comes from. It is meant for code that wants
// C++-vector semantics on top of Go slices:
//
//   - A per-element destructor that runs exactly once as each element leaves
//   - A caller-chosen sentinel returned by guarded reads instead of panicking
//   - Allocation failure reported as a value, never as a crash
//   - Pluggable storage: Go heap, a chunked arena, or off-heap mmap memory
//
// # Basic Usage
//
//	a := dynarray.New[int](-1, nil) // sentinel -1, no destructor
//	defer a.Release()
//
//	if err := a.Reserve(100); err != nil {
//		return err
//	}
//	for i := 1; i <= 100; i++ {
//		if err := a.PushBack(i); err != nil {
//			return err // errors.Is(err, dynarray.ErrOutOfMemory)
//		}
//	}
//
//	a.Front()  // 1
//	a.At(200)  // -1, the sentinel
//
// # Destructors
//
// The destructor passed to New fires on Erase, EraseRange, PopFront,
// PopBack, Clear and Release, in ascending index order when several
// elements go at once. It never fires on an element still in the array:
//
//	args := dynarray.New[*Argument](nil, func(a *Argument) { a.Close() })
//	defer args.Release() // closes every remaining argument
//
// # Growth
//
// A full array grows by its GrowthPolicy. The default, DoublePlusOne,
// produces capacities 3, 7, 15, 31, ...; Doubling produces 2, 4, 8, ....
// Both keep PushBack amortized O(1).
//
// # Errors
//
// Every operation that may allocate returns an error wrapping ErrOutOfMemory
// on failure and leaves length, capacity and storage as they were. The
// outcome of the last allocation attempt is also kept and can be queried
// with HadError, LastError and ErrorDescription.
//
// # Storage
//
// Storage comes from an Allocator. HeapAllocator is the default;
// LimitAllocator caps the bytes held. ArenaAllocator and MmapAllocator keep
// storage away from the garbage collector and only accept element types
// without Go pointers.
//
//	mem, err := dynarray.NewMmapAllocator[float64]()
//	if err != nil {
//		return err
//	}
//	defer mem.Close()
//	samples := dynarray.New[float64](0, nil, dynarray.WithAllocator[float64](mem))
//	defer samples.Release()
//
// # Important Notes
//
//   - An Array is not goroutine-safe
//   - Any mutation may move the storage; slices and iterators taken earlier
//     must not be used afterwards
//   - Get and Set are unchecked; use At when the index may be out of range
package dynarray
