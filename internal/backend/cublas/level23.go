//go:build linux && cuda

package cublas

/*
#include <cuda_runtime_api.h>
#include <cublas_v2.h>
*/
import "C"
import (
	sinew "github.com/23skdu/longbow-sinew"
	gblas "gonum.org/v1/gonum/blas"
)

// Callers hand us row-major operands; cuBLAS is column-major. The same
// bytes read column-major are the transpose, which each lowering folds
// into the native arguments:
//
//   gemv   op flips N<->T and the stored dims swap to (n, m). A real
//          ConjTrans is plain Trans; a complex one has no single-call
//          lowering and faults as unsupported.
//   gemm   C^T = op(B)^T * op(A)^T: swap the operands and m/n, keep ops.
//   her2k  the result triangle transposes and conjugates, so uplo flips,
//          trans flips N<->C, and alpha conjugates. beta stays real.

func (be *Backend) Sgemv(q *sinew.Queue, trans gblas.Transpose, m, n int64, alpha float32, a *sinew.Buffer[float32], lda int64, x *sinew.Buffer[float32], incx int64, beta float32, y *sinew.Buffer[float32], incy int64) error {
	return be.launch(q, "Sgemv", func(t *sinew.Task) error {
		ra, rx, ry, err := acquire3(t, a, sinew.ReadOnly, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := C.float(alpha), C.float(beta)
		return be.call(t, "Sgemv", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSgemv(h, cuOp(flipNT(trans)), C.int(n), C.int(m), &al, (*C.float)(ra.Ptr()), C.int(lda), (*C.float)(rx.Ptr()), C.int(incx), &bt, (*C.float)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Dgemv(q *sinew.Queue, trans gblas.Transpose, m, n int64, alpha float64, a *sinew.Buffer[float64], lda int64, x *sinew.Buffer[float64], incx int64, beta float64, y *sinew.Buffer[float64], incy int64) error {
	return be.launch(q, "Dgemv", func(t *sinew.Task) error {
		ra, rx, ry, err := acquire3(t, a, sinew.ReadOnly, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := C.double(alpha), C.double(beta)
		return be.call(t, "Dgemv", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDgemv(h, cuOp(flipNT(trans)), C.int(n), C.int(m), &al, (*C.double)(ra.Ptr()), C.int(lda), (*C.double)(rx.Ptr()), C.int(incx), &bt, (*C.double)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Cgemv(q *sinew.Queue, trans gblas.Transpose, m, n int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, x *sinew.Buffer[complex64], incx int64, beta complex64, y *sinew.Buffer[complex64], incy int64) error {
	if trans == gblas.ConjTrans {
		return sinew.UnsupportedFault("Cgemv", "conjugate transpose has no column-major lowering here; conjugate the operand and use Trans")
	}
	return be.launch(q, "Cgemv", func(t *sinew.Task) error {
		ra, rx, ry, err := acquire3(t, a, sinew.ReadOnly, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := cuC(alpha), cuC(beta)
		return be.call(t, "Cgemv", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCgemv(h, cuOp(flipNT(trans)), C.int(n), C.int(m), &al, (*C.cuComplex)(ra.Ptr()), C.int(lda), (*C.cuComplex)(rx.Ptr()), C.int(incx), &bt, (*C.cuComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Zgemv(q *sinew.Queue, trans gblas.Transpose, m, n int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, x *sinew.Buffer[complex128], incx int64, beta complex128, y *sinew.Buffer[complex128], incy int64) error {
	if trans == gblas.ConjTrans {
		return sinew.UnsupportedFault("Zgemv", "conjugate transpose has no column-major lowering here; conjugate the operand and use Trans")
	}
	return be.launch(q, "Zgemv", func(t *sinew.Task) error {
		ra, rx, ry, err := acquire3(t, a, sinew.ReadOnly, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := cuZ(alpha), cuZ(beta)
		return be.call(t, "Zgemv", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZgemv(h, cuOp(flipNT(trans)), C.int(n), C.int(m), &al, (*C.cuDoubleComplex)(ra.Ptr()), C.int(lda), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), &bt, (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Sgemm(q *sinew.Queue, ta, tb gblas.Transpose, m, n, k int64, alpha float32, a *sinew.Buffer[float32], lda int64, b *sinew.Buffer[float32], ldb int64, beta float32, c *sinew.Buffer[float32], ldc int64) error {
	return be.launch(q, "Sgemm", func(t *sinew.Task) error {
		ra, rb, rc, err := acquire3(t, a, sinew.ReadOnly, b, sinew.ReadOnly, c, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := C.float(alpha), C.float(beta)
		return be.call(t, "Sgemm", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSgemm(h, cuOp(tb), cuOp(ta), C.int(n), C.int(m), C.int(k), &al, (*C.float)(rb.Ptr()), C.int(ldb), (*C.float)(ra.Ptr()), C.int(lda), &bt, (*C.float)(rc.Ptr()), C.int(ldc))
		})
	})
}

func (be *Backend) Dgemm(q *sinew.Queue, ta, tb gblas.Transpose, m, n, k int64, alpha float64, a *sinew.Buffer[float64], lda int64, b *sinew.Buffer[float64], ldb int64, beta float64, c *sinew.Buffer[float64], ldc int64) error {
	return be.launch(q, "Dgemm", func(t *sinew.Task) error {
		ra, rb, rc, err := acquire3(t, a, sinew.ReadOnly, b, sinew.ReadOnly, c, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := C.double(alpha), C.double(beta)
		return be.call(t, "Dgemm", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDgemm(h, cuOp(tb), cuOp(ta), C.int(n), C.int(m), C.int(k), &al, (*C.double)(rb.Ptr()), C.int(ldb), (*C.double)(ra.Ptr()), C.int(lda), &bt, (*C.double)(rc.Ptr()), C.int(ldc))
		})
	})
}

func (be *Backend) Cgemm(q *sinew.Queue, ta, tb gblas.Transpose, m, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta complex64, c *sinew.Buffer[complex64], ldc int64) error {
	return be.launch(q, "Cgemm", func(t *sinew.Task) error {
		ra, rb, rc, err := acquire3(t, a, sinew.ReadOnly, b, sinew.ReadOnly, c, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := cuC(alpha), cuC(beta)
		return be.call(t, "Cgemm", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCgemm(h, cuOp(tb), cuOp(ta), C.int(n), C.int(m), C.int(k), &al, (*C.cuComplex)(rb.Ptr()), C.int(ldb), (*C.cuComplex)(ra.Ptr()), C.int(lda), &bt, (*C.cuComplex)(rc.Ptr()), C.int(ldc))
		})
	})
}

func (be *Backend) Zgemm(q *sinew.Queue, ta, tb gblas.Transpose, m, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta complex128, c *sinew.Buffer[complex128], ldc int64) error {
	return be.launch(q, "Zgemm", func(t *sinew.Task) error {
		ra, rb, rc, err := acquire3(t, a, sinew.ReadOnly, b, sinew.ReadOnly, c, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al, bt := cuZ(alpha), cuZ(beta)
		return be.call(t, "Zgemm", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZgemm(h, cuOp(tb), cuOp(ta), C.int(n), C.int(m), C.int(k), &al, (*C.cuDoubleComplex)(rb.Ptr()), C.int(ldb), (*C.cuDoubleComplex)(ra.Ptr()), C.int(lda), &bt, (*C.cuDoubleComplex)(rc.Ptr()), C.int(ldc))
		})
	})
}

func (be *Backend) Cher2k(q *sinew.Queue, uplo gblas.Uplo, trans gblas.Transpose, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta float32, c *sinew.Buffer[complex64], ldc int64) error {
	return be.launch(q, "Cher2k", func(t *sinew.Task) error {
		ra, rb, rc, err := acquire3(t, a, sinew.ReadOnly, b, sinew.ReadOnly, c, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := cuC(complex(real(alpha), -imag(alpha)))
		bt := C.float(beta)
		return be.call(t, "Cher2k", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCher2k(h, cuUplo(flipUplo(uplo)), cuOp(flipNC(trans)), C.int(n), C.int(k), &al, (*C.cuComplex)(ra.Ptr()), C.int(lda), (*C.cuComplex)(rb.Ptr()), C.int(ldb), &bt, (*C.cuComplex)(rc.Ptr()), C.int(ldc))
		})
	})
}

func (be *Backend) Zher2k(q *sinew.Queue, uplo gblas.Uplo, trans gblas.Transpose, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta float64, c *sinew.Buffer[complex128], ldc int64) error {
	return be.launch(q, "Zher2k", func(t *sinew.Task) error {
		ra, rb, rc, err := acquire3(t, a, sinew.ReadOnly, b, sinew.ReadOnly, c, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := cuZ(complex(real(alpha), -imag(alpha)))
		bt := C.double(beta)
		return be.call(t, "Zher2k", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZher2k(h, cuUplo(flipUplo(uplo)), cuOp(flipNC(trans)), C.int(n), C.int(k), &al, (*C.cuDoubleComplex)(ra.Ptr()), C.int(lda), (*C.cuDoubleComplex)(rb.Ptr()), C.int(ldb), &bt, (*C.cuDoubleComplex)(rc.Ptr()), C.int(ldc))
		})
	})
}
