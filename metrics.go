package vec

import "github.com/pavanmanishd/vec/internal/alloc"

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vec[T]) SizeInUse() int {
	return v.len * int(elemSize[T]())
}

// Capacity returns the number of bytes allocated for slots.
func (v *Vec[T]) Capacity() int {
	return v.buf.cap * int(elemSize[T]())
}

// Utilization returns the ratio of live elements to slots (0.0 to 1.0).
// Returns 0.0 if nothing is allocated.
func (v *Vec[T]) Utilization() float64 {
	if v.buf.cap == 0 {
		return 0
	}
	return float64(v.len) / float64(v.buf.cap)
}

// Metrics returns a snapshot of the Vec's statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:         v.len,
		Cap:         v.buf.cap,
		ElemSize:    int(elemSize[T]()),
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.Capacity(),
		Utilization: v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	ElemSize    int     // Bytes per slot
	SizeInUse   int     // Bytes held by live elements
	Capacity    int     // Bytes allocated
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}

// AllocStats contains process-wide storage counters shared by every Vec and
// IntoIter.
type AllocStats = alloc.Statistics

// Stats returns a snapshot of the process-wide storage counters.
func Stats() AllocStats {
	return alloc.Stats()
}
