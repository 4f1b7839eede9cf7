package blas_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
	"github.com/23skdu/longbow-sinew/internal/backend/ref"
)

// refQueue pins the pure-Go reference backend so results are deterministic
// regardless of which accelerated backends this build carries.
func refQueue(t *testing.T) *sinew.Queue {
	t.Helper()
	q, err := sinew.NewQueue(sinew.ByKind(sinew.KindCPU)[0], sinew.WithBackend(ref.Name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func bufFrom[T sinew.Element](t *testing.T, q *sinew.Queue, data []T) *sinew.Buffer[T] {
	t.Helper()
	b, err := sinew.NewBufferFrom(q.Device(), data)
	require.NoError(t, err)
	t.Cleanup(b.Release)
	return b
}

func newBuf[T sinew.Element](t *testing.T, q *sinew.Queue, n int64) *sinew.Buffer[T] {
	t.Helper()
	b, err := sinew.NewBuffer[T](q.Device(), n)
	require.NoError(t, err)
	t.Cleanup(b.Release)
	return b
}

func readOne[T sinew.Element](t *testing.T, b *sinew.Buffer[T]) T {
	t.Helper()
	vals, err := b.Read()
	require.NoError(t, err)
	return vals[0]
}

func readAll[T sinew.Element](t *testing.T, b *sinew.Buffer[T]) []T {
	t.Helper()
	vals, err := b.Read()
	require.NoError(t, err)
	return vals
}

func TestRegisteredListsReference(t *testing.T) {
	assert.Contains(t, blas.Registered(sinew.KindCPU), ref.Name)
}

func TestDispatchUnavailableBackend(t *testing.T) {
	q, err := sinew.NewQueue(sinew.ByKind(sinew.KindCPU)[0], sinew.WithBackend("no-such-backend"))
	require.NoError(t, err)
	defer q.Close()

	x := bufFrom(t, q, []float32{1, 2, 3})
	res := newBuf[float32](t, q, 1)

	err = blas.Sasum(context.Background(), q, 3, x, 1, res)
	assert.True(t, sinew.IsFault(err, sinew.FaultBackendUnavailable), "got %v", err)
}

func TestOverflowGuards(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	x := bufFrom(t, q, []float32{1, 2, 3})
	res := newBuf[float32](t, q, 1)

	t.Run("n exceeds native width", func(t *testing.T) {
		err := blas.Sasum(ctx, q, int64(math.MaxInt32)+1, x, 1, res)
		assert.True(t, sinew.IsFault(err, sinew.FaultOverflow), "got %v", err)
	})

	t.Run("stride exceeds native width", func(t *testing.T) {
		err := blas.Sasum(ctx, q, 3, x, int64(math.MaxInt32)+1, res)
		assert.True(t, sinew.IsFault(err, sinew.FaultOverflow), "got %v", err)
	})

	t.Run("negative stride exceeds native width", func(t *testing.T) {
		err := blas.Sasum(ctx, q, 3, x, -(int64(math.MaxInt32) + 1), res)
		assert.True(t, sinew.IsFault(err, sinew.FaultOverflow), "got %v", err)
	})

	t.Run("traversal span overflows", func(t *testing.T) {
		err := blas.Sasum(ctx, q, 3, x, 1<<30, res)
		assert.True(t, sinew.IsFault(err, sinew.FaultOverflow), "got %v", err)
	})

	t.Run("fault is synchronous and nothing runs", func(t *testing.T) {
		require.NoError(t, res.Write([]float32{-1}))
		err := blas.Sasum(ctx, q, int64(math.MaxInt32)+1, x, 1, res)
		require.Error(t, err)
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(-1), readOne(t, res))
	})

	t.Run("fitting span passes", func(t *testing.T) {
		x7 := bufFrom(t, q, []float32{1, 0, 2, 0, 3, 0, 4})
		require.NoError(t, blas.Sasum(ctx, q, 4, x7, 2, res))
		require.NoError(t, q.Wait())
		assert.Equal(t, float32(10), readOne(t, res))
	})

	t.Run("matrix extent overflows", func(t *testing.T) {
		a := bufFrom(t, q, make([]float32, 4))
		b := bufFrom(t, q, make([]float32, 4))
		c := newBuf[float32](t, q, 4)
		err := blas.Sgemm(ctx, q, blas.NoTrans, blas.NoTrans, 1<<20, 2, 2, 1, a, 1<<20, b, 2, 0, c, 2)
		assert.True(t, sinew.IsFault(err, sinew.FaultOverflow), "got %v", err)
	})

	t.Run("gemv dimension overflows", func(t *testing.T) {
		a := bufFrom(t, q, make([]float64, 4))
		xv := bufFrom(t, q, make([]float64, 2))
		yv := newBuf[float64](t, q, 2)
		err := blas.Dgemv(ctx, q, blas.NoTrans, int64(math.MaxInt32)+1, 2, 1, a, 2, xv, 1, 0, yv, 1)
		assert.True(t, sinew.IsFault(err, sinew.FaultOverflow), "got %v", err)
	})
}

// Operations on one queue execute in submission order, so chained
// transformations of a shared buffer observe each other.
func TestSequentialOpsRetainProgramOrder(t *testing.T) {
	q := refQueue(t)
	ctx := context.Background()

	x := bufFrom(t, q, []float64{1, 2, 3, 4})
	y := bufFrom(t, q, []float64{1, 1, 1, 1})
	res := newBuf[float64](t, q, 1)

	// x := 2x; y := y + x; res := x . y
	require.NoError(t, blas.Dscal(ctx, q, 4, 2, x, 1))
	require.NoError(t, blas.Daxpy(ctx, q, 4, 1, x, 1, y, 1))
	require.NoError(t, blas.Ddot(ctx, q, 4, x, 1, y, 1, res))
	require.NoError(t, q.Wait())

	// x = [2 4 6 8], y = [3 5 7 9], dot = 6+20+42+72 = 140
	assert.Equal(t, float64(140), readOne(t, res))
}
