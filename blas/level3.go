package blas

import (
	"context"

	sinew "github.com/23skdu/longbow-sinew"
)

// Sgemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m×k and
// op(B) is k×n. Storage is row-major: lda/ldb/ldc are row strides.
func Sgemm(ctx context.Context, q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha float32, a *sinew.Buffer[float32], lda int64, b *sinew.Buffer[float32], ldb int64, beta float32, c *sinew.Buffer[float32], ldc int64) error {
	return dispatch(ctx, q, "Sgemm", m*n, func(impl Implementation) error {
		if err := checkGemm("Sgemm", ta, tb, m, n, k, lda, ldb, ldc); err != nil {
			return err
		}
		return impl.Sgemm(q, ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	})
}

// Dgemm computes C = alpha*op(A)*op(B) + beta*C.
func Dgemm(ctx context.Context, q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha float64, a *sinew.Buffer[float64], lda int64, b *sinew.Buffer[float64], ldb int64, beta float64, c *sinew.Buffer[float64], ldc int64) error {
	return dispatch(ctx, q, "Dgemm", m*n, func(impl Implementation) error {
		if err := checkGemm("Dgemm", ta, tb, m, n, k, lda, ldb, ldc); err != nil {
			return err
		}
		return impl.Dgemm(q, ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	})
}

// Cgemm computes C = alpha*op(A)*op(B) + beta*C.
func Cgemm(ctx context.Context, q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta complex64, c *sinew.Buffer[complex64], ldc int64) error {
	return dispatch(ctx, q, "Cgemm", m*n, func(impl Implementation) error {
		if err := checkGemm("Cgemm", ta, tb, m, n, k, lda, ldb, ldc); err != nil {
			return err
		}
		return impl.Cgemm(q, ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	})
}

// Zgemm computes C = alpha*op(A)*op(B) + beta*C.
func Zgemm(ctx context.Context, q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta complex128, c *sinew.Buffer[complex128], ldc int64) error {
	return dispatch(ctx, q, "Zgemm", m*n, func(impl Implementation) error {
		if err := checkGemm("Zgemm", ta, tb, m, n, k, lda, ldb, ldc); err != nil {
			return err
		}
		return impl.Zgemm(q, ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	})
}

// Cher2k computes the Hermitian rank-2k update
// C = alpha*A*Bᴴ + conj(alpha)*B*Aᴴ + beta*C (trans == NoTrans) or
// C = alpha*Aᴴ*B + conj(alpha)*Bᴴ*A + beta*C (trans == ConjTrans),
// touching only the uplo triangle of C. beta is real. Plain Trans is not
// defined for the Hermitian update and faults as unsupported.
func Cher2k(ctx context.Context, q *sinew.Queue, uplo Uplo, trans Transpose, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta float32, c *sinew.Buffer[complex64], ldc int64) error {
	return dispatch(ctx, q, "Cher2k", n*k, func(impl Implementation) error {
		if err := checkHer2k("Cher2k", trans, n, k, lda, ldb, ldc); err != nil {
			return err
		}
		return impl.Cher2k(q, uplo, trans, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	})
}

// Zher2k computes the Hermitian rank-2k update with float64 beta.
func Zher2k(ctx context.Context, q *sinew.Queue, uplo Uplo, trans Transpose, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta float64, c *sinew.Buffer[complex128], ldc int64) error {
	return dispatch(ctx, q, "Zher2k", n*k, func(impl Implementation) error {
		if err := checkHer2k("Zher2k", trans, n, k, lda, ldb, ldc); err != nil {
			return err
		}
		return impl.Zher2k(q, uplo, trans, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	})
}

func checkGemm(routine string, ta, tb Transpose, m, n, k, lda, ldb, ldc int64) error {
	if err := checkDims(routine, m, n, k); err != nil {
		return err
	}
	if err := checkLD(routine, storedRows(ta, m, k), lda); err != nil {
		return err
	}
	if err := checkLD(routine, storedRows(tb, k, n), ldb); err != nil {
		return err
	}
	return checkLD(routine, m, ldc)
}

func checkHer2k(routine string, trans Transpose, n, k, lda, ldb, ldc int64) error {
	if trans == Trans {
		return sinew.UnsupportedFault(routine, "plain transpose is undefined for Hermitian updates; use ConjTrans")
	}
	if err := checkDims(routine, n, k); err != nil {
		return err
	}
	if err := checkLD(routine, storedRows(trans, n, k), lda); err != nil {
		return err
	}
	if err := checkLD(routine, storedRows(trans, n, k), ldb); err != nil {
		return err
	}
	return checkLD(routine, n, ldc)
}
