package blas

import (
	"context"

	sinew "github.com/23skdu/longbow-sinew"
)

// Matrices are row-major: a is stored m×n with row stride lda >= n. The
// operand lengths of x and y follow op(A): n and m for NoTrans, swapped
// otherwise.

func gemvLens(trans Transpose, m, n int64) (lenX, lenY int64) {
	if trans == NoTrans {
		return n, m
	}
	return m, n
}

// Sgemv computes y = alpha*op(A)*x + beta*y.
func Sgemv(ctx context.Context, q *sinew.Queue, trans Transpose, m, n int64, alpha float32, a *sinew.Buffer[float32], lda int64, x *sinew.Buffer[float32], incx int64, beta float32, y *sinew.Buffer[float32], incy int64) error {
	return dispatch(ctx, q, "Sgemv", m*n, func(impl Implementation) error {
		if err := checkGemv("Sgemv", trans, m, n, lda, incx, incy); err != nil {
			return err
		}
		return impl.Sgemv(q, trans, m, n, alpha, a, lda, x, incx, beta, y, incy)
	})
}

// Dgemv computes y = alpha*op(A)*x + beta*y.
func Dgemv(ctx context.Context, q *sinew.Queue, trans Transpose, m, n int64, alpha float64, a *sinew.Buffer[float64], lda int64, x *sinew.Buffer[float64], incx int64, beta float64, y *sinew.Buffer[float64], incy int64) error {
	return dispatch(ctx, q, "Dgemv", m*n, func(impl Implementation) error {
		if err := checkGemv("Dgemv", trans, m, n, lda, incx, incy); err != nil {
			return err
		}
		return impl.Dgemv(q, trans, m, n, alpha, a, lda, x, incx, beta, y, incy)
	})
}

// Cgemv computes y = alpha*op(A)*x + beta*y. op may conjugate-transpose.
func Cgemv(ctx context.Context, q *sinew.Queue, trans Transpose, m, n int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, x *sinew.Buffer[complex64], incx int64, beta complex64, y *sinew.Buffer[complex64], incy int64) error {
	return dispatch(ctx, q, "Cgemv", m*n, func(impl Implementation) error {
		if err := checkGemv("Cgemv", trans, m, n, lda, incx, incy); err != nil {
			return err
		}
		return impl.Cgemv(q, trans, m, n, alpha, a, lda, x, incx, beta, y, incy)
	})
}

// Zgemv computes y = alpha*op(A)*x + beta*y.
func Zgemv(ctx context.Context, q *sinew.Queue, trans Transpose, m, n int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, x *sinew.Buffer[complex128], incx int64, beta complex128, y *sinew.Buffer[complex128], incy int64) error {
	return dispatch(ctx, q, "Zgemv", m*n, func(impl Implementation) error {
		if err := checkGemv("Zgemv", trans, m, n, lda, incx, incy); err != nil {
			return err
		}
		return impl.Zgemv(q, trans, m, n, alpha, a, lda, x, incx, beta, y, incy)
	})
}

func checkGemv(routine string, trans Transpose, m, n, lda, incx, incy int64) error {
	if err := checkDims(routine, m, n); err != nil {
		return err
	}
	if err := checkLD(routine, m, lda); err != nil {
		return err
	}
	lenX, lenY := gemvLens(trans, m, n)
	if err := checkVector(routine, lenX, incx); err != nil {
		return err
	}
	return checkVector(routine, lenY, incy)
}
