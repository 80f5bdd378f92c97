package dynarray

import "errors"

// Status is the outcome of the most recent allocation attempted by an Array.
type Status int

const (
	// StatusOK means the last allocation succeeded, or none was attempted
	// since the array was (re)initialized.
	StatusOK Status = 0
	// StatusOutOfMemory means the last allocation failed.
	StatusOutOfMemory Status = -1
)

// String returns a short human readable description of the status.
func (s Status) String() string {
	if s == StatusOutOfMemory {
		return "Out of memory"
	}
	return "No error"
}

var (
	// ErrOutOfMemory is returned when the backing storage could not be
	// (re)allocated. The array is left exactly as it was before the call.
	ErrOutOfMemory = errors.New("dynarray: out of memory")

	// ErrOutOfRange is returned by positional mutations given a position
	// outside the live range.
	ErrOutOfRange = errors.New("dynarray: position out of range")

	// ErrInvalidCapacity is returned by Reserve when asked for a capacity
	// that is negative or smaller than the current length.
	ErrInvalidCapacity = errors.New("dynarray: invalid capacity")

	// ErrPointerElem is returned when an off-heap allocator is created for
	// an element type that holds Go pointers.
	ErrPointerElem = errors.New("dynarray: element type contains pointers")

	// ErrReleased is returned by an arena that has already been released.
	ErrReleased = errors.New("dynarray: arena used after Release")
)
