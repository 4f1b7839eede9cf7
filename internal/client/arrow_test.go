package client

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBatch(t *testing.T) {
	pool := memory.NewGoAllocator()

	t.Run("Empty input", func(t *testing.T) {
		assert.Nil(t, SampleBatch(pool, nil))
	})

	t.Run("Valid input", func(t *testing.T) {
		samples := []Sample{
			{Routine: "axpy", Backend: "reference", Device: "cpu:0", N: 1024, Iters: 10, ElapsedNS: 5000, MFlops: 409.6},
			{Routine: "gemm", Backend: "cublas", Device: "cuda:0", N: 1 << 20, Iters: 50, ElapsedNS: 7_500_000, MFlops: 14_316.5},
		}

		rb := SampleBatch(pool, samples)
		require.NotNil(t, rb)
		defer rb.Release()

		assert.Equal(t, int64(2), rb.NumRows())
		assert.Equal(t, int64(7), rb.NumCols())
		assert.True(t, rb.Schema().Equal(SampleSchema))

		routines := rb.Column(0).(*array.String)
		assert.Equal(t, "axpy", routines.Value(0))
		assert.Equal(t, "gemm", routines.Value(1))

		backends := rb.Column(1).(*array.String)
		assert.Equal(t, "cublas", backends.Value(1))

		ns := rb.Column(3).(*array.Int64)
		assert.Equal(t, int64(1024), ns.Value(0))
		assert.Equal(t, int64(1<<20), ns.Value(1))

		elapsed := rb.Column(5).(*array.Int64)
		assert.Equal(t, int64(7_500_000), elapsed.Value(1))

		mflops := rb.Column(6).(*array.Float64)
		assert.InDelta(t, 409.6, mflops.Value(0), 1e-9)
	})
}

func TestSampleBatchAccountsAllocations(t *testing.T) {
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)

	rb := SampleBatch(pool, []Sample{
		{Routine: "dot", Backend: "reference", Device: "cpu:0", N: 64, Iters: 1, ElapsedNS: 100, MFlops: 1.0},
	})
	require.NotNil(t, rb)
	rb.Release()
}
