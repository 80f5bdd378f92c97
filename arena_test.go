package dynarray

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"unsafe"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		maxBytes  int
		expected  int
	}{
		{"default chunk size", 0, 0, DefaultChunkSize},
		{"negative chunk size", -1, 0, DefaultChunkSize},
		{"custom chunk size", 8192, 0, 8192},
		{"chunk clamped to budget", 8192, 4096, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.chunkSize, tt.maxBytes)
			if a.ChunkSize() != tt.expected {
				t.Errorf("NewArena(%d, %d) chunk size = %d, want %d", tt.chunkSize, tt.maxBytes, a.ChunkSize(), tt.expected)
			}
			if a.NumChunks() != 1 {
				t.Errorf("NewArena(%d, %d) chunks = %d, want 1", tt.chunkSize, tt.maxBytes, a.NumChunks())
			}
		})
	}
}

func TestArenaAllocBytes(t *testing.T) {
	a := NewArena(1024, 0)

	b1, err := a.AllocBytes(100)
	if err != nil || len(b1) != 100 {
		t.Errorf("AllocBytes(100) = len %d, %v, want 100, nil", len(b1), err)
	}

	for _, n := range []int{0, -1} {
		if b, err := a.AllocBytes(n); b != nil || err != nil {
			t.Errorf("AllocBytes(%d) = %v, %v, want nil, nil", n, b, err)
		}
	}

	// Larger than a chunk
	b4, err := a.AllocBytes(2000)
	if err != nil || len(b4) != 2000 {
		t.Errorf("AllocBytes(2000) = len %d, %v, want 2000, nil", len(b4), err)
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after large allocation = %d, want 2", a.NumChunks())
	}
}

func TestArenaBudget(t *testing.T) {
	a := NewArena(1024, 2048)

	if _, err := a.AllocBytes(1000); err != nil {
		t.Fatalf("first AllocBytes(1000) error = %v", err)
	}
	if _, err := a.AllocBytes(1000); err != nil {
		t.Fatalf("second AllocBytes(1000) error = %v", err)
	}
	if _, err := a.AllocBytes(100); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("AllocBytes over budget error = %v, want ErrOutOfMemory", err)
	}
	if a.Capacity() != 2048 {
		t.Errorf("Capacity() = %d, want 2048", a.Capacity())
	}
}

func TestArenaResetReusesChunks(t *testing.T) {
	a := NewArena(1024, 0)
	a.AllocBytes(1000)
	a.AllocBytes(1000)
	if a.NumChunks() != 2 {
		t.Fatalf("NumChunks = %d, want 2", a.NumChunks())
	}

	if err := a.Reset(); err != nil {
		t.Fatal(err)
	}
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", a.SizeInUse())
	}

	a.AllocBytes(1000)
	a.AllocBytes(1000)
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after reuse = %d, want 2", a.NumChunks())
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(1024, 0)
	a.AllocBytes(100)

	a.Release()

	if a.NumChunks() != 0 || a.Capacity() != 0 {
		t.Errorf("after Release chunks, capacity = %d, %d, want 0, 0", a.NumChunks(), a.Capacity())
	}
	if _, err := a.AllocBytes(100); !errors.Is(err, ErrReleased) {
		t.Errorf("AllocBytes after Release error = %v, want ErrReleased", err)
	}
	if err := a.Reset(); !errors.Is(err, ErrReleased) {
		t.Errorf("Reset after Release error = %v, want ErrReleased", err)
	}
}

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024, 0)
	if a.Utilization() != 0 {
		t.Errorf("initial Utilization = %f, want 0", a.Utilization())
	}

	a.AllocBytes(100)
	a.AllocBytes(200)

	// 100 rounds up to 104 for the second allocation's alignment.
	if a.SizeInUse() != 304 {
		t.Errorf("SizeInUse = %d, want 304", a.SizeInUse())
	}
	if u := a.Utilization(); u <= 0 || u > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", u)
	}
}

func TestAlignUp(t *testing.T) {
	ptrSize := unsafe.Sizeof(uintptr(0))

	tests := []struct {
		input    uintptr
		expected uintptr
	}{
		{0, 0},
		{1, ptrSize},
		{ptrSize, ptrSize},
		{ptrSize + 1, ptrSize * 2},
	}

	for _, tt := range tests {
		if result := alignUp(tt.input, ptrSize); result != tt.expected {
			t.Errorf("alignUp(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestArenaAllocatorRejectsPointers(t *testing.T) {
	if _, err := NewArenaAllocator[*int](NewArena(0, 0)); !errors.Is(err, ErrPointerElem) {
		t.Errorf("NewArenaAllocator[*int] error = %v, want ErrPointerElem", err)
	}
	if _, err := NewSafeArenaAllocator[string](NewSafeArena(0, 0)); !errors.Is(err, ErrPointerElem) {
		t.Errorf("NewSafeArenaAllocator[string] error = %v, want ErrPointerElem", err)
	}
}

func TestArenaBackedArray(t *testing.T) {
	ar := NewArena(4096, 0)
	defer ar.Release()

	// Misalign the arena so the allocator has to fix it up.
	ar.AllocBytes(1)

	aa, err := NewArenaAllocator[int64](ar)
	if err != nil {
		t.Fatal(err)
	}
	a := New(int64(-1), nil, WithAllocator[int64](aa))
	for i := int64(1); i <= 100; i++ {
		if err := a.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d) error = %v", i, err)
		}
	}

	if a.Len() != 100 || a.Front() != 1 || a.Back() != 100 {
		t.Errorf("Len, Front, Back = %d, %d, %d, want 100, 1, 100", a.Len(), a.Front(), a.Back())
	}
	if addr := uintptr(unsafe.Pointer(&a.Slice()[0])); addr%unsafe.Alignof(int64(0)) != 0 {
		t.Errorf("arena storage not aligned: %x", addr)
	}
}

func TestArenaBackedArrayOutOfMemory(t *testing.T) {
	ar := NewArena(256, 256)
	aa, err := NewArenaAllocator[int64](ar)
	if err != nil {
		t.Fatal(err)
	}
	a := New(int64(0), nil, WithAllocator[int64](aa))

	// 3 + 7 + 15 slots use 200 of 256 bytes; 31 slots do not fit.
	for i := int64(0); i < 15; i++ {
		if err := a.PushBack(i); err != nil {
			t.Fatalf("PushBack(%d) error = %v", i, err)
		}
	}
	if err := a.PushBack(15); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("PushBack(15) error = %v, want ErrOutOfMemory", err)
	}
	if a.Len() != 15 || a.Capacity() != 15 || a.Back() != 14 {
		t.Errorf("Len, Capacity, Back = %d, %d, %d, want 15, 15, 14", a.Len(), a.Capacity(), a.Back())
	}
}

func TestArenaBackedArrayFillsBudgetExactly(t *testing.T) {
	ar := NewArena(8, 24)
	aa, err := NewArenaAllocator[int64](ar)
	if err != nil {
		t.Fatal(err)
	}
	a := New(int64(0), nil, WithAllocator[int64](aa))

	// The first 8-byte chunk is too small; the remaining 16 bytes fit exactly.
	if err := a.Reserve(2); err != nil {
		t.Fatalf("Reserve(2) error = %v", err)
	}
	if ar.Capacity() != 24 {
		t.Errorf("arena Capacity() = %d, want 24", ar.Capacity())
	}
	if _, err := ar.AllocBytes(1); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("AllocBytes past budget error = %v, want ErrOutOfMemory", err)
	}
}

func TestArenaAllocatorZeroesReusedMemory(t *testing.T) {
	ar := NewArena(1024, 0)
	b, _ := ar.AllocBytes(64)
	for i := range b {
		b[i] = 0xff
	}
	ar.Reset()

	aa, err := NewArenaAllocator[uint64](ar)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := aa.Alloc(8)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range buf {
		if v != 0 {
			t.Errorf("buf[%d] = %x, want 0", i, v)
		}
	}
}

func TestSafeArenaSharedByArrays(t *testing.T) {
	s := NewSafeArena(1024, 0)
	defer s.Release()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int32) {
			defer wg.Done()
			aa, err := NewSafeArenaAllocator[int32](s)
			if err != nil {
				errs <- err
				return
			}
			a := New(int32(-1), nil, WithAllocator[int32](aa))
			for i := int32(0); i < 200; i++ {
				if err := a.PushBack(id*1000 + i); err != nil {
					errs <- err
					return
				}
			}
			for i := 0; i < a.Len(); i++ {
				if want := id*1000 + int32(i); a.Get(i) != want {
					errs <- fmt.Errorf("worker %d: Get(%d) = %d, want %d", id, i, a.Get(i), want)
					return
				}
			}
		}(int32(w))
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	if s.SizeInUse() == 0 || s.Capacity() < s.SizeInUse() {
		t.Errorf("SizeInUse, Capacity = %d, %d", s.SizeInUse(), s.Capacity())
	}
}

func BenchmarkArenaAllocBytes(b *testing.B) {
	a := NewArena(1024*1024, 0)
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.AllocBytes(size)
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})
	}
}
