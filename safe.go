package dynarray

import "sync"

// SafeArena is a mutex-protected wrapper around Arena. It lets arrays owned
// by different goroutines draw storage from one arena. A single Array is
// still not safe for concurrent use.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena. Arguments are as for NewArena.
func NewSafeArena(chunkSize, maxBytes int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize, maxBytes)}
}

// AllocBytes thread-safely allocates n bytes.
func (s *SafeArena) AllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

func (s *SafeArena) allocAligned(n, align int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.allocAligned(n, align)
}

// Reset thread-safely rewinds the arena.
func (s *SafeArena) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reset()
}

// Release thread-safely drops all chunks.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SizeInUse thread-safely returns the bytes handed out since the last Reset.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the total size of all chunks.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}
