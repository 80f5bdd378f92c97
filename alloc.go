package dynarray

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Allocator provides backing storage for an Array.
//
// Alloc returns a zeroed buffer of exactly n elements, or an error wrapping
// ErrOutOfMemory. Free hands back a buffer previously returned by Alloc on the
// same allocator; the caller must not touch buf afterwards.
//
// An Array never asks for n == 0; it represents empty storage as nil.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(buf []T)
}

// HeapAllocator allocates storage from the Go heap. Free is a no-op and the
// garbage collector reclaims released buffers.
type HeapAllocator[T any] struct{}

// Alloc returns make([]T, n). Allocation size errors raised by the runtime
// are reported as ErrOutOfMemory instead of panicking.
func (HeapAllocator[T]) Alloc(n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", ErrOutOfMemory, n)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]T, n), nil
}

// Free is a no-op.
func (HeapAllocator[T]) Free([]T) {}

// LimitAllocator enforces a byte budget on top of another allocator.
// Requests that would push the bytes held above the budget fail with
// ErrOutOfMemory without reaching the underlying allocator.
//
// During a reallocation the old and new buffers are both held, so growing
// from c to c' slots needs room for c+c' elements at that moment.
type LimitAllocator[T any] struct {
	next     Allocator[T]
	maxBytes int
	inUse    int
}

// NewLimitAllocator wraps next with a budget of maxBytes. A nil next uses the
// heap.
func NewLimitAllocator[T any](next Allocator[T], maxBytes int) *LimitAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &LimitAllocator[T]{next: next, maxBytes: maxBytes}
}

func (l *LimitAllocator[T]) Alloc(n int) ([]T, error) {
	need := n * elemSize[T]()
	if need < 0 || l.inUse+need > l.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrOutOfMemory, need, l.inUse, l.maxBytes)
	}
	buf, err := l.next.Alloc(n)
	if err != nil {
		return nil, err
	}
	l.inUse += need
	return buf, nil
}

func (l *LimitAllocator[T]) Free(buf []T) {
	l.inUse -= len(buf) * elemSize[T]()
	l.next.Free(buf)
}

// InUse returns the number of bytes currently held through this allocator.
func (l *LimitAllocator[T]) InUse() int {
	return l.inUse
}

// Limit returns the byte budget.
func (l *LimitAllocator[T]) Limit() int {
	return l.maxBytes
}

// elemSize returns the size in bytes of one T.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// pointerFree reports whether values of type t can live in memory the
// garbage collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// checkPointerFree returns ErrPointerElem if T holds Go pointers.
func checkPointerFree[T any]() error {
	t := reflect.TypeFor[T]()
	if !pointerFree(t) {
		return fmt.Errorf("%w: %s", ErrPointerElem, t)
	}
	return nil
}
