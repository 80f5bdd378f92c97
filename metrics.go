package dynarray

// Metrics contains statistical information about an array's storage.
type Metrics struct {
	Len           int     // Live elements
	Capacity      int     // Allocated slots
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Len * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Len / Capacity (0.0-1.0)
	Reallocs      int     // Successful reallocations since Init
	Failures      int     // Failed allocation attempts since Init
}

// Utilization returns the ratio of live elements to allocated slots.
// Returns 0.0 if the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.n) / float64(len(a.buf))
}

// Metrics returns a snapshot of storage statistics.
func (a *Array[T]) Metrics() Metrics {
	size := a.ElemSize()
	return Metrics{
		Len:           a.n,
		Capacity:      len(a.buf),
		ElemSize:      size,
		BytesInUse:    a.n * size,
		BytesReserved: len(a.buf) * size,
		Utilization:   a.Utilization(),
		Reallocs:      a.reallocs,
		Failures:      a.failures,
	}
}
