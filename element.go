package sinew

import "unsafe"

// Scalar is the closed set of numeric element types the dispatch layer
// accepts as operands. The byte layout of each member is identical to its
// native counterpart (float/double/cuComplex/cuDoubleComplex), so buffers
// cross the interop boundary without conversion. Anything outside this set
// is a compile error, not a runtime fault.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Element extends Scalar with int64, the width index-returning routines
// (iamax/iamin) write their results in.
type Element interface {
	~float32 | ~float64 | ~complex64 | ~complex128 | ~int64
}

// elemSize returns the in-memory size of T in bytes.
func elemSize[T Element]() int64 {
	var z T
	return int64(unsafe.Sizeof(z))
}
