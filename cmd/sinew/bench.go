package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
	"github.com/23skdu/longbow-sinew/internal/client"
)

var benchRoutines = []string{"axpy", "dot", "gemm"}

var benchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "sinew_bench_duration_seconds",
	Help:    "Wall time of one benchmark iteration.",
	Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
}, []string{"routine"})

// benchFlops is the floating-point operation count of one iteration.
func benchFlops(routine string, n int64) int64 {
	switch routine {
	case "axpy", "dot":
		return 2 * n
	case "gemm":
		d := benchDim(n)
		return 2 * d * d * d
	default:
		return 0
	}
}

// benchDim derives a square matrix dimension holding roughly n elements.
func benchDim(n int64) int64 {
	d := int64(math.Sqrt(float64(n)))
	if d < 1 {
		d = 1
	}
	return d
}

// runBench times the selected routines on dev. Routines run concurrently,
// each on its own queue, bounded by -workers; results come back in
// selection order.
func runBench(ctx context.Context, dev *sinew.Device, spec string, n int64, iters int, workers int64) ([]client.Sample, error) {
	routines := splitSpec(spec, benchRoutines)
	samples := make([]client.Sample, len(routines))
	errs := make([]error, len(routines))

	p := message.NewPrinter(language.English)
	sem := semaphore.NewWeighted(workers)
	var wg sync.WaitGroup

	for i, routine := range routines {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			s, err := benchOne(ctx, dev, routine, n, iters)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", routine, err)
				return
			}
			samples[i] = s
			p.Fprintf(os.Stderr, "%-6s %-12s n=%-12d %12.1f MFLOP/s (%v/iter)\n",
				s.Routine, s.Backend, s.N, s.MFlops, time.Duration(s.ElapsedNS/s.Iters))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return samples, nil
}

func benchOne(ctx context.Context, dev *sinew.Device, routine string, n int64, iters int) (client.Sample, error) {
	q, err := sinew.NewQueue(dev, queueOptions()...)
	if err != nil {
		return client.Sample{}, err
	}
	defer q.Close()

	run, cleanup, err := benchSetup(ctx, q, routine, n)
	if err != nil {
		return client.Sample{}, err
	}
	defer cleanup()

	// One untimed iteration absorbs device allocation and upload.
	if err := run(); err != nil {
		return client.Sample{}, err
	}
	if err := q.Wait(); err != nil {
		return client.Sample{}, err
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return client.Sample{}, err
		}
	}
	if err := q.Wait(); err != nil {
		return client.Sample{}, err
	}
	elapsed := time.Since(start)

	benchDuration.WithLabelValues(routine).Observe(elapsed.Seconds() / float64(iters))

	flops := benchFlops(routine, n) * int64(iters)
	return client.Sample{
		Routine:   routine,
		Backend:   activeBackend(dev),
		Device:    dev.String(),
		N:         n,
		Iters:     int64(iters),
		ElapsedNS: elapsed.Nanoseconds(),
		MFlops:    float64(flops) / elapsed.Seconds() / 1e6,
	}, nil
}

// benchSetup builds the operands for one routine and returns a closure that
// enqueues a single iteration, plus a cleanup releasing the buffers.
func benchSetup(ctx context.Context, q *sinew.Queue, routine string, n int64) (func() error, func(), error) {
	dev := q.Device()
	rng := rand.New(rand.NewSource(*flagSeed))

	switch routine {
	case "axpy":
		x, err := sinew.NewBufferFrom(dev, randFloat32(rng, n))
		if err != nil {
			return nil, nil, err
		}
		y, err := sinew.NewBufferFrom(dev, randFloat32(rng, n))
		if err != nil {
			x.Release()
			return nil, nil, err
		}
		run := func() error { return blas.Saxpy(ctx, q, n, 1.0001, x, 1, y, 1) }
		return run, func() { x.Release(); y.Release() }, nil

	case "dot":
		x, err := sinew.NewBufferFrom(dev, randFloat32(rng, n))
		if err != nil {
			return nil, nil, err
		}
		y, err := sinew.NewBufferFrom(dev, randFloat32(rng, n))
		if err != nil {
			x.Release()
			return nil, nil, err
		}
		res, err := sinew.NewBuffer[float32](dev, 1)
		if err != nil {
			x.Release()
			y.Release()
			return nil, nil, err
		}
		run := func() error { return blas.Sdot(ctx, q, n, x, 1, y, 1, res) }
		return run, func() { x.Release(); y.Release(); res.Release() }, nil

	case "gemm":
		d := benchDim(n)
		a, err := sinew.NewBufferFrom(dev, randFloat32(rng, d*d))
		if err != nil {
			return nil, nil, err
		}
		b, err := sinew.NewBufferFrom(dev, randFloat32(rng, d*d))
		if err != nil {
			a.Release()
			return nil, nil, err
		}
		c, err := sinew.NewBuffer[float32](dev, d*d)
		if err != nil {
			a.Release()
			b.Release()
			return nil, nil, err
		}
		run := func() error {
			return blas.Sgemm(ctx, q, blas.NoTrans, blas.NoTrans, d, d, d, 1, a, d, b, d, 0, c, d)
		}
		return run, func() { a.Release(); b.Release(); c.Release() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown bench routine %q", routine)
	}
}

func randFloat32(rng *rand.Rand, n int64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32() - 0.5
	}
	return out
}

func randFloat64(rng *rand.Rand, n int64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() - 0.5
	}
	return out
}
