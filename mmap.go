package dynarray

import (
	"fmt"
	"math"
	"unsafe"

	"modernc.org/memory"
)

// MmapAllocator serves array storage from memory mapped outside the Go heap,
// so large arrays of plain values add nothing to garbage collector work.
// Every buffer must be given back through Free, which the owning Array does
// on reallocation and Release. Close unmaps everything still held.
//
// An MmapAllocator is not safe for concurrent use.
type MmapAllocator[T any] struct {
	mem    memory.Allocator
	allocs int
	bytes  int
}

// NewMmapAllocator returns an off-heap allocator for T. It fails with
// ErrPointerElem if T holds Go pointers.
func NewMmapAllocator[T any]() (*MmapAllocator[T], error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	return &MmapAllocator[T]{}, nil
}

func (m *MmapAllocator[T]) Alloc(n int) ([]T, error) {
	size := elemSize[T]()
	if n <= 0 {
		return nil, nil
	}
	if size == 0 {
		return make([]T, n), nil
	}
	if n > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, size)
	}
	b, err := m.mem.Calloc(n * size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	m.allocs++
	m.bytes += n * size
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

func (m *MmapAllocator[T]) Free(buf []T) {
	size := elemSize[T]()
	if cap(buf) == 0 || size == 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), cap(buf)*size)
	// Free only fails for buffers it did not hand out.
	if err := m.mem.Free(b); err != nil {
		panic(fmt.Sprintf("dynarray: mmap free: %v", err))
	}
	m.allocs--
	m.bytes -= len(b)
}

// Close releases all memory still held by the allocator. Arrays using it
// must not be touched afterwards.
func (m *MmapAllocator[T]) Close() error {
	m.allocs, m.bytes = 0, 0
	return m.mem.Close()
}

// Allocs returns the number of buffers currently outstanding.
func (m *MmapAllocator[T]) Allocs() int {
	return m.allocs
}

// Bytes returns the number of bytes held by outstanding buffers.
func (m *MmapAllocator[T]) Bytes() int {
	return m.bytes
}
