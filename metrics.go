package vec

import "unsafe"

// VectorMetrics contains a snapshot of a vector's storage statistics.
type VectorMetrics struct {
	Live        int     // live elements
	Slots       int     // total slots in the current block
	Spare       int     // raw slots left before the next reallocation
	ElemSize    int     // bytes per slot
	Utilization float64 // ratio of live to total slots (0.0-1.0)
}

// Live returns the number of live elements. Alias of Len, provided for
// symmetry with the other metric accessors.
func (v *Vector[T]) Live() int {
	return v.size
}

// Spare returns how many raw slots remain before the next reallocation.
func (v *Vector[T]) Spare() int {
	return v.Cap() - v.size
}

// Utilization returns the ratio of live elements to total slots (0.0 to
// 1.0). Returns 0.0 for a vector with no storage.
func (v *Vector[T]) Utilization() float64 {
	if v.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.Cap())
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	var zero T
	return VectorMetrics{
		Live:        v.size,
		Slots:       v.Cap(),
		Spare:       v.Spare(),
		ElemSize:    int(unsafe.Sizeof(zero)),
		Utilization: v.Utilization(),
	}
}
