package dynarray

import (
	"fmt"
	"math"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator used as backing storage for arrays of
// pointer-free elements. Buffers handed out by an arena are never freed
// individually; Reset recycles every chunk at once and Release drops them.
// Not goroutine-safe; use SafeArena to share one arena between goroutines.
type Arena struct {
	chunks    []chunk
	chunkSize int
	maxBytes  int
	reserved  int
	cur       int
}

// NewArena creates an arena with the given chunk size and byte budget.
// If chunkSize <= 0, DefaultChunkSize is used. If maxBytes <= 0 the arena
// is unbounded; otherwise the total size of all chunks never exceeds it and
// requests that would need more fail with ErrOutOfMemory.
func NewArena(chunkSize, maxBytes int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if maxBytes > 0 && chunkSize > maxBytes {
		chunkSize = maxBytes
	}
	a := &Arena{chunkSize: chunkSize, maxBytes: maxBytes}
	a.chunks = make([]chunk, 0, 4)
	// Cannot fail: chunkSize was clamped to the budget above.
	_ = a.grow(chunkSize, 1)
	return a
}

// AllocBytes returns n bytes aligned to the pointer size. The memory is not
// zeroed if the arena has been Reset. Returns nil, nil if n <= 0.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	return a.allocAligned(n, int(unsafe.Sizeof(uintptr(0))))
}

func (a *Arena) allocAligned(n, align int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if a.chunks == nil {
		return nil, ErrReleased
	}
	if align < 1 {
		align = 1
	}

	// Fast path: current chunk
	if b := a.chunks[a.cur].take(n, align); b != nil {
		return b, nil
	}

	// Chunks left over from before a Reset may still have room.
	for a.cur+1 < len(a.chunks) {
		a.cur++
		if b := a.chunks[a.cur].take(n, align); b != nil {
			return b, nil
		}
	}

	if err := a.grow(n, align); err != nil {
		return nil, err
	}
	if b := a.chunks[a.cur].take(n, align); b != nil {
		return b, nil
	}
	return nil, fmt.Errorf("%w: no aligned room for %d bytes within arena budget %d",
		ErrOutOfMemory, n, a.maxBytes)
}

// take carves n bytes at the given alignment out of c, or returns nil if c
// is too small.
func (c *chunk) take(n, align int) []byte {
	if len(c.buf) == 0 {
		return nil
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base+c.offset, uintptr(align)) - base
	if off+uintptr(n) > uintptr(len(c.buf)) {
		return nil
	}
	c.offset = off + uintptr(n)
	return c.buf[off : off+uintptr(n) : off+uintptr(n)]
}

// Reset rewinds every chunk so its memory can be reused. Buffers handed out
// earlier become invalid.
func (a *Arena) Reset() error {
	if a.chunks == nil {
		return ErrReleased
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.cur = 0
	return nil
}

// Release drops all chunks. Any later allocation fails with ErrReleased.
func (a *Arena) Release() {
	a.chunks = nil
	a.reserved = 0
	a.cur = 0
}

// grow appends a new chunk with room for n bytes at the given alignment and
// makes it current. Near the budget the chunk may shrink to just n bytes,
// which still fits since fresh heap buffers are word aligned.
func (a *Arena) grow(n, align int) error {
	size := max(a.chunkSize, n+align-1)
	if a.maxBytes > 0 {
		left := a.maxBytes - a.reserved
		if left < n {
			return fmt.Errorf("%w: arena budget %d bytes, %d reserved, %d requested",
				ErrOutOfMemory, a.maxBytes, a.reserved, n)
		}
		size = min(size, left)
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.reserved += size
	a.cur = len(a.chunks) - 1
	return nil
}

// SizeInUse returns the number of bytes handed out since the last Reset,
// including alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently held.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total size of all chunks in bytes.
func (a *Arena) Capacity() int {
	return a.reserved
}

// Utilization returns SizeInUse/Capacity, or 0 for an empty arena.
func (a *Arena) Utilization() float64 {
	if a.reserved == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.reserved)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// alignUp rounds p up to a multiple of align, which must be a power of two.
func alignUp(p, align uintptr) uintptr {
	mask := align - 1
	return (p + mask) &^ mask
}

// byteSource is implemented by Arena and SafeArena.
type byteSource interface {
	allocAligned(n, align int) ([]byte, error)
}

// ArenaAllocator serves array storage out of an arena. Free is a no-op: the
// memory of outgrown buffers comes back only when the arena is Reset, which
// invalidates every array still using it.
type ArenaAllocator[T any] struct {
	src byteSource
}

// NewArenaAllocator returns an allocator backed by a. T must not contain Go
// pointers, since arena memory is not scanned by the garbage collector.
func NewArenaAllocator[T any](a *Arena) (*ArenaAllocator[T], error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	return &ArenaAllocator[T]{src: a}, nil
}

// NewSafeArenaAllocator is NewArenaAllocator for a SafeArena shared between
// goroutines, each owning its own arrays.
func NewSafeArenaAllocator[T any](s *SafeArena) (*ArenaAllocator[T], error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	return &ArenaAllocator[T]{src: s}, nil
}

func (aa *ArenaAllocator[T]) Alloc(n int) ([]T, error) {
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
	var zero T
	b, err := aa.src.allocAligned(n*size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

func (aa *ArenaAllocator[T]) Free([]T) {}
