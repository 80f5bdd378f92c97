package dynarray

import "fmt"

// PushBack appends x. If the array is full it grows first; when that fails
// the array is unchanged and the returned error wraps ErrOutOfMemory.
func (a *Array[T]) PushBack(x T) error {
	if err := a.grow(); err != nil {
		return err
	}
	a.buf[a.n] = x
	a.n++
	return nil
}

// PushFront inserts x before the first element.
func (a *Array[T]) PushFront(x T) error {
	return a.Insert(0, x)
}

// Insert places x at pos, shifting elements [pos, Len) one slot toward the
// end. pos must be within [0, Len].
func (a *Array[T]) Insert(pos int, x T) error {
	if pos < 0 || pos > a.n {
		return fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, pos, a.n)
	}
	if err := a.grow(); err != nil {
		return err
	}
	copy(a.buf[pos+1:a.n+1], a.buf[pos:a.n])
	a.buf[pos] = x
	a.n++
	return nil
}

// PopBack removes the last element. It is a no-op on an empty array.
func (a *Array[T]) PopBack() {
	if a.n == 0 {
		return
	}
	a.destroy(a.n-1, a.n)
	a.n--
}

// PopFront removes the first element. It is a no-op on an empty array.
func (a *Array[T]) PopFront() {
	if a.n == 0 {
		return
	}
	a.removeRange(0, 1)
}

// Erase removes the element at pos, shifting the rest one slot toward the
// start. It is a no-op on an empty array; otherwise pos must be within
// [0, Len).
func (a *Array[T]) Erase(pos int) error {
	if a.n == 0 {
		return nil
	}
	if pos < 0 || pos >= a.n {
		return fmt.Errorf("%w: erase at %d, length %d", ErrOutOfRange, pos, a.n)
	}
	a.removeRange(pos, 1)
	return nil
}

// EraseRange removes up to count elements starting at pos. The range is
// clamped to the live elements, so EraseRange(p, n) with n past the end
// leaves Len() == p. A zero count or pos >= Len is a no-op; negative
// arguments fail with ErrOutOfRange.
func (a *Array[T]) EraseRange(pos, count int) error {
	if pos < 0 || count < 0 {
		return fmt.Errorf("%w: erase %d at %d", ErrOutOfRange, count, pos)
	}
	if count == 0 || pos >= a.n {
		return nil
	}
	if count > a.n-pos {
		count = a.n - pos
	}
	a.removeRange(pos, count)
	return nil
}

// Clear removes every element, running the destructor on each in index
// order. Capacity is unchanged.
func (a *Array[T]) Clear() {
	a.destroy(0, a.n)
	a.n = 0
}

// removeRange destroys [pos, pos+count), closes the gap and zeroes the
// slots vacated at the tail. The range must be valid.
func (a *Array[T]) removeRange(pos, count int) {
	a.destroy(pos, pos+count)
	copy(a.buf[pos:], a.buf[pos+count:a.n])
	clear(a.buf[a.n-count : a.n])
	a.n -= count
}
