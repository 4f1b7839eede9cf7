package host

import (
	"math"
	"math/cmplx"
)

// Local kernels for the routines the gonum and netlib executors do not
// expose: index-of-minimum, complex Givens generation, and real plane
// rotation of complex vectors. Traversal and tie-breaking follow the
// reference implementations (first extremum wins, negative strides walk
// from the far end).

func iaminKernel[T any](n int, x []T, incX int, metric func(T) float64) int {
	best := 0
	bestV := metric(x[0])
	ix := incX
	for i := 1; i < n; i++ {
		if v := metric(x[ix]); v < bestV {
			best, bestV = i, v
		}
		ix += incX
	}
	return best
}

func isaminKernel(n int, x []float32, incX int) int {
	return iaminKernel(n, x, incX, func(v float32) float64 { return math.Abs(float64(v)) })
}

func idaminKernel(n int, x []float64, incX int) int {
	return iaminKernel(n, x, incX, math.Abs)
}

// Complex extrema order by |re|+|im|, the convention the native index
// routines share. The single-precision metric rounds the sum in float32
// before comparing, like a single-precision executor would.
func icaminKernel(n int, x []complex64, incX int) int {
	return iaminKernel(n, x, incX, func(v complex64) float64 {
		return float64(abs32(real(v)) + abs32(imag(v)))
	})
}

func izaminKernel(n int, x []complex128, incX int) int {
	return iaminKernel(n, x, incX, func(v complex128) float64 {
		return math.Abs(real(v)) + math.Abs(imag(v))
	})
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}

// zrotgKernel generates a complex Givens rotation: r replaces a, b is
// untouched, c is real and c²+|s|² = 1. The scaled-norm formulation is
// the reference one.
func zrotgKernel(a, b complex128) (r complex128, c float64, s complex128) {
	absA := cmplx.Abs(a)
	if absA == 0 {
		return b, 0, 1
	}
	scale := absA + cmplx.Abs(b)
	norm := scale * math.Sqrt(sq(absA/scale)+sq(cmplx.Abs(b)/scale))
	alpha := a / complex(absA, 0)
	c = absA / norm
	s = alpha * cmplx.Conj(b) / complex(norm, 0)
	r = alpha * complex(norm, 0)
	return r, c, s
}

func sq(v float64) float64 { return v * v }

// rotComplex applies the rotation [c s; -s c] with real c, s to a pair of
// complex vectors.
func rotComplex[T ~complex64 | ~complex128](n int, x []T, incX int, y []T, incY int, cc, ss T) {
	if n < 1 {
		return
	}
	ix, iy := 0, 0
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		tmp := cc*x[ix] + ss*y[iy]
		y[iy] = cc*y[iy] - ss*x[ix]
		x[ix] = tmp
		ix += incX
		iy += incY
	}
}
