package blas

import (
	"context"

	sinew "github.com/23skdu/longbow-sinew"
)

// Asum family. The native routines define no negative-stride semantics for
// magnitude reductions, so backends traverse with |incx|; results for
// stride -s equal those for stride s.

// Sasum writes the sum of absolute values of x into result[0].
func Sasum(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Sasum", n, func(impl Implementation) error {
		if err := checkVector("Sasum", n, incx); err != nil {
			return err
		}
		return impl.Sasum(q, n, x, incx, result)
	})
}

// Dasum writes the sum of absolute values of x into result[0].
func Dasum(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Dasum", n, func(impl Implementation) error {
		if err := checkVector("Dasum", n, incx); err != nil {
			return err
		}
		return impl.Dasum(q, n, x, incx, result)
	})
}

// Scasum writes the sum of |re|+|im| over x into result[0].
func Scasum(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Scasum", n, func(impl Implementation) error {
		if err := checkVector("Scasum", n, incx); err != nil {
			return err
		}
		return impl.Scasum(q, n, x, incx, result)
	})
}

// Dzasum writes the sum of |re|+|im| over x into result[0].
func Dzasum(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Dzasum", n, func(impl Implementation) error {
		if err := checkVector("Dzasum", n, incx); err != nil {
			return err
		}
		return impl.Dzasum(q, n, x, incx, result)
	})
}

// Snrm2 writes the Euclidean norm of x into result[0]. Stride sign is
// ignored, matching Sasum.
func Snrm2(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Snrm2", n, func(impl Implementation) error {
		if err := checkVector("Snrm2", n, incx); err != nil {
			return err
		}
		return impl.Snrm2(q, n, x, incx, result)
	})
}

// Dnrm2 writes the Euclidean norm of x into result[0].
func Dnrm2(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Dnrm2", n, func(impl Implementation) error {
		if err := checkVector("Dnrm2", n, incx); err != nil {
			return err
		}
		return impl.Dnrm2(q, n, x, incx, result)
	})
}

// Scnrm2 writes the Euclidean norm of x into result[0].
func Scnrm2(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Scnrm2", n, func(impl Implementation) error {
		if err := checkVector("Scnrm2", n, incx); err != nil {
			return err
		}
		return impl.Scnrm2(q, n, x, incx, result)
	})
}

// Dznrm2 writes the Euclidean norm of x into result[0].
func Dznrm2(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Dznrm2", n, func(impl Implementation) error {
		if err := checkVector("Dznrm2", n, incx); err != nil {
			return err
		}
		return impl.Dznrm2(q, n, x, incx, result)
	})
}

// Scal family. Stride sign is ignored: the native routines scale
// min-to-max memory order regardless of direction.

// Sscal scales x by alpha.
func Sscal(ctx context.Context, q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64) error {
	return dispatch(ctx, q, "Sscal", n, func(impl Implementation) error {
		if err := checkVector("Sscal", n, incx); err != nil {
			return err
		}
		return impl.Sscal(q, n, alpha, x, incx)
	})
}

// Dscal scales x by alpha.
func Dscal(ctx context.Context, q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64) error {
	return dispatch(ctx, q, "Dscal", n, func(impl Implementation) error {
		if err := checkVector("Dscal", n, incx); err != nil {
			return err
		}
		return impl.Dscal(q, n, alpha, x, incx)
	})
}

// Cscal scales x by complex alpha.
func Cscal(ctx context.Context, q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64) error {
	return dispatch(ctx, q, "Cscal", n, func(impl Implementation) error {
		if err := checkVector("Cscal", n, incx); err != nil {
			return err
		}
		return impl.Cscal(q, n, alpha, x, incx)
	})
}

// Zscal scales x by complex alpha.
func Zscal(ctx context.Context, q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64) error {
	return dispatch(ctx, q, "Zscal", n, func(impl Implementation) error {
		if err := checkVector("Zscal", n, incx); err != nil {
			return err
		}
		return impl.Zscal(q, n, alpha, x, incx)
	})
}

// Csscal scales complex x by real alpha.
func Csscal(ctx context.Context, q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[complex64], incx int64) error {
	return dispatch(ctx, q, "Csscal", n, func(impl Implementation) error {
		if err := checkVector("Csscal", n, incx); err != nil {
			return err
		}
		return impl.Csscal(q, n, alpha, x, incx)
	})
}

// Zdscal scales complex x by real alpha.
func Zdscal(ctx context.Context, q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[complex128], incx int64) error {
	return dispatch(ctx, q, "Zdscal", n, func(impl Implementation) error {
		if err := checkVector("Zdscal", n, incx); err != nil {
			return err
		}
		return impl.Zdscal(q, n, alpha, x, incx)
	})
}

// Saxpy computes y += alpha*x. Negative strides traverse in reverse.
func Saxpy(ctx context.Context, q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return dispatch(ctx, q, "Saxpy", n, func(impl Implementation) error {
		if err := checkVector("Saxpy", n, incx, incy); err != nil {
			return err
		}
		return impl.Saxpy(q, n, alpha, x, incx, y, incy)
	})
}

// Daxpy computes y += alpha*x.
func Daxpy(ctx context.Context, q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return dispatch(ctx, q, "Daxpy", n, func(impl Implementation) error {
		if err := checkVector("Daxpy", n, incx, incy); err != nil {
			return err
		}
		return impl.Daxpy(q, n, alpha, x, incx, y, incy)
	})
}

// Caxpy computes y += alpha*x.
func Caxpy(ctx context.Context, q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return dispatch(ctx, q, "Caxpy", n, func(impl Implementation) error {
		if err := checkVector("Caxpy", n, incx, incy); err != nil {
			return err
		}
		return impl.Caxpy(q, n, alpha, x, incx, y, incy)
	})
}

// Zaxpy computes y += alpha*x.
func Zaxpy(ctx context.Context, q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return dispatch(ctx, q, "Zaxpy", n, func(impl Implementation) error {
		if err := checkVector("Zaxpy", n, incx, incy); err != nil {
			return err
		}
		return impl.Zaxpy(q, n, alpha, x, incx, y, incy)
	})
}

// Scopy copies x into y.
func Scopy(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return dispatch(ctx, q, "Scopy", n, func(impl Implementation) error {
		if err := checkVector("Scopy", n, incx, incy); err != nil {
			return err
		}
		return impl.Scopy(q, n, x, incx, y, incy)
	})
}

// Dcopy copies x into y.
func Dcopy(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return dispatch(ctx, q, "Dcopy", n, func(impl Implementation) error {
		if err := checkVector("Dcopy", n, incx, incy); err != nil {
			return err
		}
		return impl.Dcopy(q, n, x, incx, y, incy)
	})
}

// Ccopy copies x into y.
func Ccopy(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return dispatch(ctx, q, "Ccopy", n, func(impl Implementation) error {
		if err := checkVector("Ccopy", n, incx, incy); err != nil {
			return err
		}
		return impl.Ccopy(q, n, x, incx, y, incy)
	})
}

// Zcopy copies x into y.
func Zcopy(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return dispatch(ctx, q, "Zcopy", n, func(impl Implementation) error {
		if err := checkVector("Zcopy", n, incx, incy); err != nil {
			return err
		}
		return impl.Zcopy(q, n, x, incx, y, incy)
	})
}

// Sswap exchanges x and y.
func Sswap(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return dispatch(ctx, q, "Sswap", n, func(impl Implementation) error {
		if err := checkVector("Sswap", n, incx, incy); err != nil {
			return err
		}
		return impl.Sswap(q, n, x, incx, y, incy)
	})
}

// Dswap exchanges x and y.
func Dswap(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return dispatch(ctx, q, "Dswap", n, func(impl Implementation) error {
		if err := checkVector("Dswap", n, incx, incy); err != nil {
			return err
		}
		return impl.Dswap(q, n, x, incx, y, incy)
	})
}

// Cswap exchanges x and y.
func Cswap(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return dispatch(ctx, q, "Cswap", n, func(impl Implementation) error {
		if err := checkVector("Cswap", n, incx, incy); err != nil {
			return err
		}
		return impl.Cswap(q, n, x, incx, y, incy)
	})
}

// Zswap exchanges x and y.
func Zswap(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return dispatch(ctx, q, "Zswap", n, func(impl Implementation) error {
		if err := checkVector("Zswap", n, incx, incy); err != nil {
			return err
		}
		return impl.Zswap(q, n, x, incx, y, incy)
	})
}

// Sdot writes x·y into result[0].
func Sdot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Sdot", n, func(impl Implementation) error {
		if err := checkVector("Sdot", n, incx, incy); err != nil {
			return err
		}
		return impl.Sdot(q, n, x, incx, y, incy, result)
	})
}

// Ddot writes x·y into result[0].
func Ddot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, result *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Ddot", n, func(impl Implementation) error {
		if err := checkVector("Ddot", n, incx, incy); err != nil {
			return err
		}
		return impl.Ddot(q, n, x, incx, y, incy, result)
	})
}

// Cdotc writes conj(x)·y into result[0].
func Cdotc(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error {
	return dispatch(ctx, q, "Cdotc", n, func(impl Implementation) error {
		if err := checkVector("Cdotc", n, incx, incy); err != nil {
			return err
		}
		return impl.Cdotc(q, n, x, incx, y, incy, result)
	})
}

// Cdotu writes the unconjugated x·y into result[0].
func Cdotu(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error {
	return dispatch(ctx, q, "Cdotu", n, func(impl Implementation) error {
		if err := checkVector("Cdotu", n, incx, incy); err != nil {
			return err
		}
		return impl.Cdotu(q, n, x, incx, y, incy, result)
	})
}

// Zdotc writes conj(x)·y into result[0].
func Zdotc(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error {
	return dispatch(ctx, q, "Zdotc", n, func(impl Implementation) error {
		if err := checkVector("Zdotc", n, incx, incy); err != nil {
			return err
		}
		return impl.Zdotc(q, n, x, incx, y, incy, result)
	})
}

// Zdotu writes the unconjugated x·y into result[0].
func Zdotu(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error {
	return dispatch(ctx, q, "Zdotu", n, func(impl Implementation) error {
		if err := checkVector("Zdotu", n, incx, incy); err != nil {
			return err
		}
		return impl.Zdotu(q, n, x, incx, y, incy, result)
	})
}

// Sdsdot writes sb + x·y into result[0], accumulating the products in
// double precision where the backend supports it. Backends lacking the
// ternary primitive compute the plain dot product on device and add sb on
// the host afterwards, which serializes the caller with device completion.
func Sdsdot(ctx context.Context, q *sinew.Queue, n int64, sb float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Sdsdot", n, func(impl Implementation) error {
		if err := checkVector("Sdsdot", n, incx, incy); err != nil {
			return err
		}
		return impl.Sdsdot(q, n, sb, x, incx, y, incy, result)
	})
}

// Dsdot writes the float64 dot product of two float32 vectors into
// result[0]. Backends with no mixed-precision dot compute in single
// precision and widen afterwards; that precision loss is documented
// behavior, not a fault.
func Dsdot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Dsdot", n, func(impl Implementation) error {
		if err := checkVector("Dsdot", n, incx, incy); err != nil {
			return err
		}
		return impl.Dsdot(q, n, x, incx, y, incy, result)
	})
}

// Srot applies the plane rotation (c, s) to x and y.
func Srot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, c, s float32) error {
	return dispatch(ctx, q, "Srot", n, func(impl Implementation) error {
		if err := checkVector("Srot", n, incx, incy); err != nil {
			return err
		}
		return impl.Srot(q, n, x, incx, y, incy, c, s)
	})
}

// Drot applies the plane rotation (c, s) to x and y.
func Drot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, c, s float64) error {
	return dispatch(ctx, q, "Drot", n, func(impl Implementation) error {
		if err := checkVector("Drot", n, incx, incy); err != nil {
			return err
		}
		return impl.Drot(q, n, x, incx, y, incy, c, s)
	})
}

// Csrot applies a real plane rotation to complex vectors.
func Csrot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, c, s float32) error {
	return dispatch(ctx, q, "Csrot", n, func(impl Implementation) error {
		if err := checkVector("Csrot", n, incx, incy); err != nil {
			return err
		}
		return impl.Csrot(q, n, x, incx, y, incy, c, s)
	})
}

// Zdrot applies a real plane rotation to complex vectors.
func Zdrot(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, c, s float64) error {
	return dispatch(ctx, q, "Zdrot", n, func(impl Implementation) error {
		if err := checkVector("Zdrot", n, incx, incy); err != nil {
			return err
		}
		return impl.Zdrot(q, n, x, incx, y, incy, c, s)
	})
}

// Srotg generates a plane rotation: on return a holds r, b holds z, and
// c/s hold the rotation. All four are one-element buffers.
func Srotg(ctx context.Context, q *sinew.Queue, a, b, c, s *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Srotg", 1, func(impl Implementation) error {
		return impl.Srotg(q, a, b, c, s)
	})
}

// Drotg generates a plane rotation.
func Drotg(ctx context.Context, q *sinew.Queue, a, b, c, s *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Drotg", 1, func(impl Implementation) error {
		return impl.Drotg(q, a, b, c, s)
	})
}

// Crotg generates a complex Givens rotation: a is replaced by r, b is
// left untouched, c is real.
func Crotg(ctx context.Context, q *sinew.Queue, a, b *sinew.Buffer[complex64], c *sinew.Buffer[float32], s *sinew.Buffer[complex64]) error {
	return dispatch(ctx, q, "Crotg", 1, func(impl Implementation) error {
		return impl.Crotg(q, a, b, c, s)
	})
}

// Zrotg generates a complex Givens rotation.
func Zrotg(ctx context.Context, q *sinew.Queue, a, b *sinew.Buffer[complex128], c *sinew.Buffer[float64], s *sinew.Buffer[complex128]) error {
	return dispatch(ctx, q, "Zrotg", 1, func(impl Implementation) error {
		return impl.Zrotg(q, a, b, c, s)
	})
}

// Srotm applies a modified Givens rotation described by the five-element
// param buffer [flag, h11, h21, h12, h22].
func Srotm(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, param *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Srotm", n, func(impl Implementation) error {
		if err := checkVector("Srotm", n, incx, incy); err != nil {
			return err
		}
		return impl.Srotm(q, n, x, incx, y, incy, param)
	})
}

// Drotm applies a modified Givens rotation.
func Drotm(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, param *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Drotm", n, func(impl Implementation) error {
		if err := checkVector("Drotm", n, incx, incy); err != nil {
			return err
		}
		return impl.Drotm(q, n, x, incx, y, incy, param)
	})
}

// Srotmg generates a modified Givens rotation. d1, d2, x1 are one-element
// buffers updated in place; y1 is a host scalar; param receives the
// five-element description written by Srotm's convention.
func Srotmg(ctx context.Context, q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float32], y1 float32, param *sinew.Buffer[float32]) error {
	return dispatch(ctx, q, "Srotmg", 1, func(impl Implementation) error {
		return impl.Srotmg(q, d1, d2, x1, y1, param)
	})
}

// Drotmg generates a modified Givens rotation.
func Drotmg(ctx context.Context, q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float64], y1 float64, param *sinew.Buffer[float64]) error {
	return dispatch(ctx, q, "Drotmg", 1, func(impl Implementation) error {
		return impl.Drotmg(q, d1, d2, x1, y1, param)
	})
}

// Index-of-extremum family. The index written into result[0] is zero-based
// regardless of the native backend's convention; n <= 0 or a non-positive
// stride yields exactly 0, matching reference BLAS degenerate traversal.

// Isamax writes the zero-based index of the element of x with the largest
// absolute value into result[0].
func Isamax(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Isamax", n, func(impl Implementation) error {
		if err := checkVector("Isamax", n, incx); err != nil {
			return err
		}
		return impl.Isamax(q, n, x, incx, result)
	})
}

// Isamin writes the zero-based index of the element of x with the smallest
// absolute value into result[0].
func Isamin(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Isamin", n, func(impl Implementation) error {
		if err := checkVector("Isamin", n, incx); err != nil {
			return err
		}
		return impl.Isamin(q, n, x, incx, result)
	})
}

// Idamax writes the zero-based index of the largest-magnitude element.
func Idamax(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Idamax", n, func(impl Implementation) error {
		if err := checkVector("Idamax", n, incx); err != nil {
			return err
		}
		return impl.Idamax(q, n, x, incx, result)
	})
}

// Idamin writes the zero-based index of the smallest-magnitude element.
func Idamin(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Idamin", n, func(impl Implementation) error {
		if err := checkVector("Idamin", n, incx); err != nil {
			return err
		}
		return impl.Idamin(q, n, x, incx, result)
	})
}

// Icamax writes the zero-based index of the element maximizing |re|+|im|.
func Icamax(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Icamax", n, func(impl Implementation) error {
		if err := checkVector("Icamax", n, incx); err != nil {
			return err
		}
		return impl.Icamax(q, n, x, incx, result)
	})
}

// Icamin writes the zero-based index of the element minimizing |re|+|im|.
func Icamin(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Icamin", n, func(impl Implementation) error {
		if err := checkVector("Icamin", n, incx); err != nil {
			return err
		}
		return impl.Icamin(q, n, x, incx, result)
	})
}

// Izamax writes the zero-based index of the element maximizing |re|+|im|.
func Izamax(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Izamax", n, func(impl Implementation) error {
		if err := checkVector("Izamax", n, incx); err != nil {
			return err
		}
		return impl.Izamax(q, n, x, incx, result)
	})
}

// Izamin writes the zero-based index of the element minimizing |re|+|im|.
func Izamin(ctx context.Context, q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error {
	return dispatch(ctx, q, "Izamin", n, func(impl Implementation) error {
		if err := checkVector("Izamin", n, incx); err != nil {
			return err
		}
		return impl.Izamin(q, n, x, incx, result)
	})
}
