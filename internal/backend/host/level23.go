package host

import (
	"gonum.org/v1/gonum/blas"

	sinew "github.com/23skdu/longbow-sinew"
)

// Matrix operands are row-major, the executors' native layout, so the
// call lowers without operand or op swaps.

func gemv[T sinew.Element](be *Backend, q *sinew.Queue, routine string, trans blas.Transpose, m, n int64, alpha T, a *sinew.Buffer[T], lda int64, x *sinew.Buffer[T], incx int64, beta T, y *sinew.Buffer[T], incy int64, kernel func(tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rx, err := x.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		kernel(trans, int(m), int(n), alpha, ra.Slice(), int(lda), rx.Slice(), int(incx), beta, ry.Slice(), int(incy))
		return nil
	})
}

func gemm[T sinew.Element](be *Backend, q *sinew.Queue, routine string, ta, tb blas.Transpose, m, n, k int64, alpha T, a *sinew.Buffer[T], lda int64, b *sinew.Buffer[T], ldb int64, beta T, c *sinew.Buffer[T], ldc int64, kernel func(tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rb, err := b.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rc, err := c.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		kernel(ta, tb, int(m), int(n), int(k), alpha, ra.Slice(), int(lda), rb.Slice(), int(ldb), beta, rc.Slice(), int(ldc))
		return nil
	})
}

func (be *Backend) Sgemv(q *sinew.Queue, trans blas.Transpose, m, n int64, alpha float32, a *sinew.Buffer[float32], lda int64, x *sinew.Buffer[float32], incx int64, beta float32, y *sinew.Buffer[float32], incy int64) error {
	return gemv(be, q, "Sgemv", trans, m, n, alpha, a, lda, x, incx, beta, y, incy, be.impl.Sgemv)
}

func (be *Backend) Dgemv(q *sinew.Queue, trans blas.Transpose, m, n int64, alpha float64, a *sinew.Buffer[float64], lda int64, x *sinew.Buffer[float64], incx int64, beta float64, y *sinew.Buffer[float64], incy int64) error {
	return gemv(be, q, "Dgemv", trans, m, n, alpha, a, lda, x, incx, beta, y, incy, be.impl.Dgemv)
}

func (be *Backend) Cgemv(q *sinew.Queue, trans blas.Transpose, m, n int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, x *sinew.Buffer[complex64], incx int64, beta complex64, y *sinew.Buffer[complex64], incy int64) error {
	return gemv(be, q, "Cgemv", trans, m, n, alpha, a, lda, x, incx, beta, y, incy, be.impl.Cgemv)
}

func (be *Backend) Zgemv(q *sinew.Queue, trans blas.Transpose, m, n int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, x *sinew.Buffer[complex128], incx int64, beta complex128, y *sinew.Buffer[complex128], incy int64) error {
	return gemv(be, q, "Zgemv", trans, m, n, alpha, a, lda, x, incx, beta, y, incy, be.impl.Zgemv)
}

func (be *Backend) Sgemm(q *sinew.Queue, ta, tb blas.Transpose, m, n, k int64, alpha float32, a *sinew.Buffer[float32], lda int64, b *sinew.Buffer[float32], ldb int64, beta float32, c *sinew.Buffer[float32], ldc int64) error {
	return gemm(be, q, "Sgemm", ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc, be.impl.Sgemm)
}

func (be *Backend) Dgemm(q *sinew.Queue, ta, tb blas.Transpose, m, n, k int64, alpha float64, a *sinew.Buffer[float64], lda int64, b *sinew.Buffer[float64], ldb int64, beta float64, c *sinew.Buffer[float64], ldc int64) error {
	return gemm(be, q, "Dgemm", ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc, be.impl.Dgemm)
}

func (be *Backend) Cgemm(q *sinew.Queue, ta, tb blas.Transpose, m, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta complex64, c *sinew.Buffer[complex64], ldc int64) error {
	return gemm(be, q, "Cgemm", ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc, be.impl.Cgemm)
}

func (be *Backend) Zgemm(q *sinew.Queue, ta, tb blas.Transpose, m, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta complex128, c *sinew.Buffer[complex128], ldc int64) error {
	return gemm(be, q, "Zgemm", ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc, be.impl.Zgemm)
}

func (be *Backend) Cher2k(q *sinew.Queue, uplo blas.Uplo, trans blas.Transpose, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta float32, c *sinew.Buffer[complex64], ldc int64) error {
	return be.launch(q, "Cher2k", func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rb, err := b.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rc, err := c.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		be.impl.Cher2k(uplo, trans, int(n), int(k), alpha, ra.Slice(), int(lda), rb.Slice(), int(ldb), beta, rc.Slice(), int(ldc))
		return nil
	})
}

func (be *Backend) Zher2k(q *sinew.Queue, uplo blas.Uplo, trans blas.Transpose, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta float64, c *sinew.Buffer[complex128], ldc int64) error {
	return be.launch(q, "Zher2k", func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rb, err := b.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		rc, err := c.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		be.impl.Zher2k(uplo, trans, int(n), int(k), alpha, ra.Slice(), int(lda), rb.Slice(), int(ldb), beta, rc.Slice(), int(ldc))
		return nil
	})
}
