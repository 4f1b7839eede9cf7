package blas

import (
	"math"

	sinew "github.com/23skdu/longbow-sinew"
)

// maxNativeIndex is the widest count/stride value every registered backend
// accepts. All three vendors take 32-bit signed integers, so callers'
// 64-bit arguments are range-checked here, locally and synchronously,
// before any device work is enqueued.
const maxNativeIndex = math.MaxInt32

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// checkVector faults when n, any stride, or the traversal span
// n*max(|stride|) does not fit the native integer width.
func checkVector(routine string, n int64, incs ...int64) error {
	if n > maxNativeIndex {
		return sinew.OverflowFault(routine, "n=%d exceeds native index width", n)
	}
	var maxInc int64
	for _, inc := range incs {
		a := abs64(inc)
		if a > maxNativeIndex {
			return sinew.OverflowFault(routine, "stride %d exceeds native index width", inc)
		}
		if a > maxInc {
			maxInc = a
		}
	}
	if n > 0 && maxInc > 0 && n > maxNativeIndex/maxInc {
		return sinew.OverflowFault(routine, "traversal span n*|stride| = %d*%d exceeds native index width", n, maxInc)
	}
	return nil
}

// checkDims faults when any matrix dimension exceeds the native width.
func checkDims(routine string, dims ...int64) error {
	for _, d := range dims {
		if d > maxNativeIndex {
			return sinew.OverflowFault(routine, "dimension %d exceeds native index width", d)
		}
	}
	return nil
}

// checkLD faults when a leading dimension or the rows*ld extent of one
// stored operand does not fit the native width.
func checkLD(routine string, rows, ld int64) error {
	if ld > maxNativeIndex {
		return sinew.OverflowFault(routine, "leading dimension %d exceeds native index width", ld)
	}
	if rows > 0 && ld > 0 && rows > maxNativeIndex/ld {
		return sinew.OverflowFault(routine, "matrix extent %d*%d exceeds native index width", rows, ld)
	}
	return nil
}

// storedRows returns the row count of the stored (row-major) operand given
// the op applied to it: op(X) is rows×cols, so the stored matrix is
// rows×cols for NoTrans and cols×rows otherwise.
func storedRows(trans Transpose, rows, cols int64) int64 {
	if trans == NoTrans {
		return rows
	}
	return cols
}
