package blas_test

import (
	"context"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/23skdu/longbow-sinew/blas"
)

func TestAsumSumsMagnitudes(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Sasum", func(t *testing.T) {
		x := bufFrom(t, q, []float32{-3, 4, -5})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Sasum(ctx, q, 3, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(12), readOne(t, res))
	})

	t.Run("stride direction is irrelevant", func(t *testing.T) {
		x := bufFrom(t, q, []float32{-3, 4, -5})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Sasum(ctx, q, 3, x, -1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(12), readOne(t, res))
	})

	t.Run("Dasum strided", func(t *testing.T) {
		x := bufFrom(t, q, []float64{-3, 99, 4, 99, -5})
		res := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Dasum(ctx, q, 3, x, 2, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float64(12), readOne(t, res))
	})

	// Complex asum is |re|+|im|, not the modulus.
	t.Run("Scasum", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{3 + 4i, -1 + 2i})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Scasum(ctx, q, 2, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(10), readOne(t, res))
	})

	t.Run("Dzasum", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{3 + 4i, -1 + 2i})
		res := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Dzasum(ctx, q, 2, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float64(10), readOne(t, res))
	})
}

func TestNrm2EuclideanNorm(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Snrm2", func(t *testing.T) {
		x := bufFrom(t, q, []float32{3, 4})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Snrm2(ctx, q, 2, x, 1, res))
		require.NoError(t, q.Wait())
		assert.InDelta(t, 5, readOne(t, res), 1e-6)
	})

	t.Run("Dnrm2 negative stride", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, 2, 2})
		res := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Dnrm2(ctx, q, 3, x, -1, res))
		require.NoError(t, q.Wait())
		assert.InDelta(t, 3, readOne(t, res), 1e-12)
	})

	t.Run("Scnrm2", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{3 + 4i})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Scnrm2(ctx, q, 1, x, 1, res))
		require.NoError(t, q.Wait())
		assert.InDelta(t, 5, readOne(t, res), 1e-6)
	})

	t.Run("Dznrm2", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{3i, 4})
		res := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Dznrm2(ctx, q, 2, x, 1, res))
		require.NoError(t, q.Wait())
		assert.InDelta(t, 5, readOne(t, res), 1e-12)
	})
}

func TestDotProducts(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Sdot", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, 2, 3})
		y := bufFrom(t, q, []float32{4, 5, 6})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Sdot(ctx, q, 3, x, 1, y, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(32), readOne(t, res))
	})

	t.Run("Ddot strided", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, 0, 2, 0, 3})
		y := bufFrom(t, q, []float64{4, 5, 6})
		res := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Ddot(ctx, q, 3, x, 2, y, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float64(32), readOne(t, res))
	})

	t.Run("Sdsdot adds the shift after extended accumulation", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, 2, 3})
		y := bufFrom(t, q, []float32{4, 5, 6})
		res := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Sdsdot(ctx, q, 3, 0.5, x, 1, y, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(32.5), readOne(t, res))
	})

	// 1e8 is exactly representable in float32 but 1e8+1 is not; float64
	// accumulation keeps the unit term that single precision would drop.
	t.Run("Dsdot accumulates in float64", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1e8, 1, -1e8})
		y := bufFrom(t, q, []float32{1, 1, 1})
		res := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Dsdot(ctx, q, 3, x, 1, y, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float64(1), readOne(t, res))
	})

	t.Run("Cdotu", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 2i, 3 - 1i})
		y := bufFrom(t, q, []complex64{2 + 1i, 0 + 4i})
		res := newBuf[complex64](t, q, 1)
		require.NoError(t, blas.Cdotu(ctx, q, 2, x, 1, y, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, complex64(4+17i), readOne(t, res))
	})

	t.Run("Cdotc conjugates x", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 2i, 3 - 1i})
		y := bufFrom(t, q, []complex64{2 + 1i, 0 + 4i})
		res := newBuf[complex64](t, q, 1)
		require.NoError(t, blas.Cdotc(ctx, q, 2, x, 1, y, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, complex64(0+9i), readOne(t, res))
	})

	t.Run("Zdotu and Zdotc", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1 + 2i, 3 - 1i})
		y := bufFrom(t, q, []complex128{2 + 1i, 0 + 4i})
		ru := newBuf[complex128](t, q, 1)
		rc := newBuf[complex128](t, q, 1)
		require.NoError(t, blas.Zdotu(ctx, q, 2, x, 1, y, 1, ru))
		require.NoError(t, blas.Zdotc(ctx, q, 2, x, 1, y, 1, rc))
		require.NoError(t, q.Wait())
		assert.Equal(t, complex128(4+17i), readOne(t, ru))
		assert.Equal(t, complex128(0+9i), readOne(t, rc))
	})
}

func TestIndexOfExtremum(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Idamax picks largest magnitude", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, -9, 3})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Idamax(ctx, q, 3, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(1), readOne(t, res))
	})

	t.Run("non-positive stride degenerates to zero", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, -9, 3})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Isamax(ctx, q, 3, x, -1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(0), readOne(t, res))
	})

	t.Run("empty vector degenerates to zero", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Idamax(ctx, q, 0, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(0), readOne(t, res))
	})

	t.Run("Izamax ranks by |re|+|im|", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1 + 1i, 3 + 4i, 2})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Izamax(ctx, q, 3, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(1), readOne(t, res))
	})

	t.Run("Isamin first tie wins", func(t *testing.T) {
		x := bufFrom(t, q, []float32{2, 1, 3, 1})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Isamin(ctx, q, 4, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(1), readOne(t, res))
	})

	t.Run("Icamin ranks by |re|+|im|", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{3 + 4i, 1 + 1i, 0 + 2i})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Icamin(ctx, q, 3, x, 1, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(1), readOne(t, res))
	})

	t.Run("Izamin strided", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{5, 0, 1 + 1i, 0, 4i})
		res := newBuf[int64](t, q, 1)
		require.NoError(t, blas.Izamin(ctx, q, 3, x, 2, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, int64(1), readOne(t, res))
	})
}

func TestCopyAndSwap(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Scopy strided destination keeps gaps", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, 2, 3})
		y := newBuf[float32](t, q, 5)
		require.NoError(t, blas.Scopy(ctx, q, 3, x, 1, y, 2))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float32{1, 0, 2, 0, 3}, readAll(t, y))
	})

	t.Run("Dcopy", func(t *testing.T) {
		x := bufFrom(t, q, []float64{7, 8, 9})
		y := newBuf[float64](t, q, 3)
		require.NoError(t, blas.Dcopy(ctx, q, 3, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float64{7, 8, 9}, readAll(t, y))
	})

	t.Run("Ccopy", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 1i, 2 - 2i})
		y := newBuf[complex64](t, q, 2)
		require.NoError(t, blas.Ccopy(ctx, q, 2, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex64{1 + 1i, 2 - 2i}, readAll(t, y))
	})

	t.Run("Zcopy", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1 + 2i, -3i, 4})
		y := newBuf[complex128](t, q, 3)
		require.NoError(t, blas.Zcopy(ctx, q, 3, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex128{1 + 2i, -3i, 4}, readAll(t, y))
	})

	t.Run("Zswap exchanges", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1 + 2i, 3 + 4i})
		y := bufFrom(t, q, []complex128{-5i, 6})
		require.NoError(t, blas.Zswap(ctx, q, 2, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex128{-5i, 6}, readAll(t, x))
		assert.Equal(t, []complex128{1 + 2i, 3 + 4i}, readAll(t, y))
	})

	t.Run("Cswap twice is identity", func(t *testing.T) {
		orig := []complex64{1 + 2i, 3 - 4i, -5 + 6i}
		x := bufFrom(t, q, orig)
		y := bufFrom(t, q, []complex64{9, 8i, 7})
		require.NoError(t, blas.Cswap(ctx, q, 3, x, 1, y, 1))
		require.NoError(t, blas.Cswap(ctx, q, 3, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, orig, readAll(t, x))
		assert.Equal(t, []complex64{9, 8i, 7}, readAll(t, y))
	})
}

func TestScalScalesInPlace(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Dscal", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, 2, 3})
		require.NoError(t, blas.Dscal(ctx, q, 3, -2, x, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float64{-2, -4, -6}, readAll(t, x))
	})

	t.Run("negative stride touches the same elements", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, 9, 2})
		require.NoError(t, blas.Sscal(ctx, q, 2, 3, x, -2))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float32{3, 9, 6}, readAll(t, x))
	})

	t.Run("Cscal rotates by i", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 2i})
		require.NoError(t, blas.Cscal(ctx, q, 1, 1i, x, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, complex64(-2+1i), readAll(t, x)[0])
	})

	t.Run("Csscal scales by a real", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 2i, 3 + 4i})
		require.NoError(t, blas.Csscal(ctx, q, 2, 2, x, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex64{2 + 4i, 6 + 8i}, readAll(t, x))
	})

	t.Run("Zdscal", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1 + 2i, -3i})
		require.NoError(t, blas.Zdscal(ctx, q, 2, 0.5, x, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex128{0.5 + 1i, -1.5i}, readAll(t, x))
	})
}

func TestAxpyAccumulates(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Daxpy", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, 2, 3})
		y := bufFrom(t, q, []float64{10, 20, 30})
		require.NoError(t, blas.Daxpy(ctx, q, 3, 2, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float64{12, 24, 36}, readAll(t, y))
	})

	t.Run("negative stride pairs x reversed", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, 2, 3})
		y := bufFrom(t, q, []float64{10, 20, 30})
		require.NoError(t, blas.Daxpy(ctx, q, 3, 1, x, -1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float64{13, 22, 31}, readAll(t, y))
	})

	t.Run("Caxpy complex alpha", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 1i})
		y := bufFrom(t, q, []complex64{2})
		require.NoError(t, blas.Caxpy(ctx, q, 1, 1i, x, 1, y, 1))
		require.NoError(t, q.Wait())
		// 2 + i*(1+i) = 1 + i
		assert.Equal(t, complex64(1+1i), readAll(t, y)[0])
	})

	t.Run("Zaxpy", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1 + 1i, 2})
		y := bufFrom(t, q, []complex128{0, 1i})
		require.NoError(t, blas.Zaxpy(ctx, q, 2, 2, x, 1, y, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex128{2 + 2i, 4 + 1i}, readAll(t, y))
	})
}

func TestPlaneRotations(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Drot quarter turn swaps and negates", func(t *testing.T) {
		x := bufFrom(t, q, []float64{1, 2})
		y := bufFrom(t, q, []float64{3, 4})
		require.NoError(t, blas.Drot(ctx, q, 2, x, 1, y, 1, 0, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float64{3, 4}, readAll(t, x))
		assert.Equal(t, []float64{-1, -2}, readAll(t, y))
	})

	t.Run("Srot identity leaves operands", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, 2})
		y := bufFrom(t, q, []float32{3, 4})
		require.NoError(t, blas.Srot(ctx, q, 2, x, 1, y, 1, 1, 0))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float32{1, 2}, readAll(t, x))
		assert.Equal(t, []float32{3, 4}, readAll(t, y))
	})

	t.Run("Csrot rotates complex pairs with real weights", func(t *testing.T) {
		x := bufFrom(t, q, []complex64{1 + 1i})
		y := bufFrom(t, q, []complex64{2 - 2i})
		require.NoError(t, blas.Csrot(ctx, q, 1, x, 1, y, 1, 0, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, complex64(2-2i), readAll(t, x)[0])
		assert.Equal(t, complex64(-1-1i), readAll(t, y)[0])
	})

	t.Run("Zdrot negative strides", func(t *testing.T) {
		x := bufFrom(t, q, []complex128{1, 2})
		y := bufFrom(t, q, []complex128{10, 20})
		require.NoError(t, blas.Zdrot(ctx, q, 2, x, -1, y, -1, 0, 1))
		require.NoError(t, q.Wait())
		assert.Equal(t, []complex128{10, 20}, readAll(t, x))
		assert.Equal(t, []complex128{-1, -2}, readAll(t, y))
	})
}

func TestRotgGeneratesGivens(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Drotg matches direct evaluation", func(t *testing.T) {
		a := bufFrom(t, q, []float64{3})
		b := bufFrom(t, q, []float64{4})
		c := newBuf[float64](t, q, 1)
		s := newBuf[float64](t, q, 1)
		require.NoError(t, blas.Drotg(ctx, q, a, b, c, s))
		require.NoError(t, q.Wait())

		wc, ws, wr, wz := gonum.Implementation{}.Drotg(3, 4)
		assert.Equal(t, wr, readOne(t, a))
		assert.Equal(t, wz, readOne(t, b))
		assert.Equal(t, wc, readOne(t, c))
		assert.Equal(t, ws, readOne(t, s))
	})

	t.Run("Srotg matches direct evaluation", func(t *testing.T) {
		a := bufFrom(t, q, []float32{-2})
		b := bufFrom(t, q, []float32{5})
		c := newBuf[float32](t, q, 1)
		s := newBuf[float32](t, q, 1)
		require.NoError(t, blas.Srotg(ctx, q, a, b, c, s))
		require.NoError(t, q.Wait())

		wc, ws, wr, wz := gonum.Implementation{}.Srotg(-2, 5)
		assert.Equal(t, wr, readOne(t, a))
		assert.Equal(t, wz, readOne(t, b))
		assert.Equal(t, wc, readOne(t, c))
		assert.Equal(t, ws, readOne(t, s))
	})

	t.Run("Zrotg annihilates b and keeps it", func(t *testing.T) {
		a0, b0 := complex128(1+2i), complex128(3-1i)
		a := bufFrom(t, q, []complex128{a0})
		b := bufFrom(t, q, []complex128{b0})
		c := newBuf[float64](t, q, 1)
		s := newBuf[complex128](t, q, 1)
		require.NoError(t, blas.Zrotg(ctx, q, a, b, c, s))
		require.NoError(t, q.Wait())

		r := readOne(t, a)
		cv := readOne(t, c)
		sv := readOne(t, s)
		assert.Equal(t, b0, readOne(t, b))
		assert.InDelta(t, 1, cv*cv+real(sv*cmplx.Conj(sv)), 1e-12)
		assert.Less(t, cmplx.Abs(complex(cv, 0)*a0+sv*b0-r), 1e-12)
		assert.Less(t, cmplx.Abs(-cmplx.Conj(sv)*a0+complex(cv, 0)*b0), 1e-12)
	})

	t.Run("Crotg degenerate inputs", func(t *testing.T) {
		a := bufFrom(t, q, []complex64{3 + 4i})
		b := bufFrom(t, q, []complex64{0})
		c := newBuf[float32](t, q, 1)
		s := newBuf[complex64](t, q, 1)
		require.NoError(t, blas.Crotg(ctx, q, a, b, c, s))
		require.NoError(t, q.Wait())

		assert.InDelta(t, 1, readOne(t, c), 1e-6)
		assert.InDelta(t, 0, cmplx.Abs(complex128(readOne(t, s))), 1e-6)
		got := readOne(t, a)
		assert.InDelta(t, 3, real(got), 1e-5)
		assert.InDelta(t, 4, imag(got), 1e-5)
	})
}

func TestModifiedRotations(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	t.Run("Drotmg matches direct evaluation", func(t *testing.T) {
		d1 := bufFrom(t, q, []float64{4})
		d2 := bufFrom(t, q, []float64{9})
		x1 := bufFrom(t, q, []float64{1})
		param := newBuf[float64](t, q, 5)
		require.NoError(t, blas.Drotmg(ctx, q, d1, d2, x1, 0.5, param))
		require.NoError(t, q.Wait())

		p, wd1, wd2, wx1 := gonum.Implementation{}.Drotmg(4, 9, 1, 0.5)
		assert.Equal(t, wd1, readOne(t, d1))
		assert.Equal(t, wd2, readOne(t, d2))
		assert.Equal(t, wx1, readOne(t, x1))
		got := readAll(t, param)
		assert.Equal(t, float64(p.Flag), got[0])
		assert.Equal(t, p.H[:], got[1:])
	})

	t.Run("Drotm applies packed params", func(t *testing.T) {
		p, _, _, _ := gonum.Implementation{}.Drotmg(4, 9, 1, 0.5)
		packed := append([]float64{float64(p.Flag)}, p.H[:]...)

		xs := []float64{1, 2, 3}
		ys := []float64{4, 5, 6}
		x := bufFrom(t, q, xs)
		y := bufFrom(t, q, ys)
		param := bufFrom(t, q, packed)
		require.NoError(t, blas.Drotm(ctx, q, 3, x, 1, y, 1, param))
		require.NoError(t, q.Wait())

		wx := append([]float64(nil), xs...)
		wy := append([]float64(nil), ys...)
		gonum.Implementation{}.Drotm(3, wx, 1, wy, 1, p)
		assert.Equal(t, wx, readAll(t, x))
		assert.Equal(t, wy, readAll(t, y))
	})

	t.Run("Srotm identity flag is a no-op", func(t *testing.T) {
		x := bufFrom(t, q, []float32{1, 2})
		y := bufFrom(t, q, []float32{3, 4})
		param := bufFrom(t, q, []float32{-2, 0, 0, 0, 0})
		require.NoError(t, blas.Srotm(ctx, q, 2, x, 1, y, 1, param))
		require.NoError(t, q.Wait())
		assert.Equal(t, []float32{1, 2}, readAll(t, x))
		assert.Equal(t, []float32{3, 4}, readAll(t, y))
	})

	t.Run("Srotmg packs flag first", func(t *testing.T) {
		d1 := bufFrom(t, q, []float32{1})
		d2 := bufFrom(t, q, []float32{1})
		x1 := bufFrom(t, q, []float32{3})
		param := newBuf[float32](t, q, 5)
		require.NoError(t, blas.Srotmg(ctx, q, d1, d2, x1, 1, param))
		require.NoError(t, q.Wait())

		p, _, _, _ := gonum.Implementation{}.Srotmg(1, 1, 3, 1)
		got := readAll(t, param)
		assert.Equal(t, float32(p.Flag), got[0])
		assert.Equal(t, p.H[:], got[1:])
	})
}

// Guards against accidental float64 paths in float32 routines: scaling by
// an irrational keeps float32 rounding.
func TestSscalStaysSinglePrecision(t *testing.T) {
	q := refQueue(t)
	x := bufFrom(t, q, []float32{1})
	alpha := float32(math.Pi)
	require.NoError(t, blas.Sscal(context.Background(), q, 1, alpha, x, 1))
	require.NoError(t, q.Wait())
	assert.Equal(t, alpha, readAll(t, x)[0])
}
