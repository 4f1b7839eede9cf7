package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
	"github.com/23skdu/longbow-sinew/internal/backend/ref"
)

var verifyRoutines = []string{"axpy", "dot", "asum", "nrm2", "iamax", "gemv", "gemm"}

// runVerify checks the selected backend against the reference backend on
// randomized operands. Each routine gets its own queue pair; routines run
// concurrently and the first mismatch cancels the rest.
func runVerify(ctx context.Context, dev *sinew.Device, spec string, n, seed int64) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, routine := range splitSpec(spec, verifyRoutines) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := verifyOne(ctx, dev, routine, n, seed); err != nil {
				return fmt.Errorf("%s: %w", routine, err)
			}
			log.Info().Str("routine", routine).Msg("verified")
			return nil
		})
	}
	return g.Wait()
}

func verifyOne(ctx context.Context, dev *sinew.Device, routine string, n, seed int64) error {
	subj, err := sinew.NewQueue(dev, queueOptions()...)
	if err != nil {
		return err
	}
	defer subj.Close()

	host := sinew.ByKind(sinew.KindCPU)[0]
	oracle, err := sinew.NewQueue(host, sinew.WithBackend(ref.Name))
	if err != nil {
		return err
	}
	defer oracle.Close()

	side, tol, err := verifySide(ctx, routine, n, seed)
	if err != nil {
		return err
	}

	got, err := side(subj)
	if err != nil {
		return err
	}
	want, err := side(oracle)
	if err != nil {
		return err
	}
	return compareSlices(got, want, tol)
}

// verifySide builds deterministic operands for routine and returns a closure
// running it on one queue, plus the tolerance for comparing the two sides.
// The closure allocates fresh buffers per queue so each side sees identical
// inputs.
func verifySide(ctx context.Context, routine string, n, seed int64) (func(*sinew.Queue) ([]float64, error), float64, error) {
	rng := rand.New(rand.NewSource(seed))
	n = min(n, 1<<16)

	switch routine {
	case "axpy":
		x := randFloat64(rng, n)
		y := randFloat64(rng, n)
		side := func(q *sinew.Queue) ([]float64, error) {
			bx, by, err := pairBuffers(q, x, y)
			if err != nil {
				return nil, err
			}
			defer bx.Release()
			defer by.Release()
			if err := blas.Daxpy(ctx, q, n, 1.25, bx, 1, by, 1); err != nil {
				return nil, err
			}
			return by.Read()
		}
		return side, verifyTol(1), nil

	case "dot":
		x := randFloat64(rng, n)
		y := randFloat64(rng, n)
		side := func(q *sinew.Queue) ([]float64, error) {
			bx, by, err := pairBuffers(q, x, y)
			if err != nil {
				return nil, err
			}
			defer bx.Release()
			defer by.Release()
			res, err := sinew.NewBuffer[float64](q.Device(), 1)
			if err != nil {
				return nil, err
			}
			defer res.Release()
			if err := blas.Ddot(ctx, q, n, bx, 1, by, 1, res); err != nil {
				return nil, err
			}
			return res.Read()
		}
		return side, verifyTol(n), nil

	case "asum", "nrm2":
		x := randFloat64(rng, n)
		side := func(q *sinew.Queue) ([]float64, error) {
			bx, err := sinew.NewBufferFrom(q.Device(), x)
			if err != nil {
				return nil, err
			}
			defer bx.Release()
			res, err := sinew.NewBuffer[float64](q.Device(), 1)
			if err != nil {
				return nil, err
			}
			defer res.Release()
			if routine == "asum" {
				err = blas.Dasum(ctx, q, n, bx, 1, res)
			} else {
				err = blas.Dnrm2(ctx, q, n, bx, 1, res)
			}
			if err != nil {
				return nil, err
			}
			return res.Read()
		}
		return side, verifyTol(n), nil

	case "iamax":
		x := randFloat64(rng, n)
		x[n/3] = 7.5 // unique winner, so backends cannot disagree on ties
		side := func(q *sinew.Queue) ([]float64, error) {
			bx, err := sinew.NewBufferFrom(q.Device(), x)
			if err != nil {
				return nil, err
			}
			defer bx.Release()
			res, err := sinew.NewBuffer[int64](q.Device(), 1)
			if err != nil {
				return nil, err
			}
			defer res.Release()
			if err := blas.Idamax(ctx, q, n, bx, 1, res); err != nil {
				return nil, err
			}
			idx, err := res.Read()
			if err != nil {
				return nil, err
			}
			return []float64{float64(idx[0])}, nil
		}
		return side, 0, nil

	case "gemv":
		m := min(benchDim(n), 256)
		cols := m + 5
		lda := cols + 3
		a := randFloat64(rng, m*lda)
		x := randFloat64(rng, cols)
		y := randFloat64(rng, m)
		side := func(q *sinew.Queue) ([]float64, error) {
			ba, err := sinew.NewBufferFrom(q.Device(), a)
			if err != nil {
				return nil, err
			}
			defer ba.Release()
			bx, by, err := pairBuffers(q, x, y)
			if err != nil {
				return nil, err
			}
			defer bx.Release()
			defer by.Release()
			if err := blas.Dgemv(ctx, q, blas.NoTrans, m, cols, 1.25, ba, lda, bx, 1, 0.5, by, 1); err != nil {
				return nil, err
			}
			return by.Read()
		}
		return side, verifyTol(cols), nil

	case "gemm":
		m := min(benchDim(n), 192)
		k := m + 3
		cols := m + 5
		lda, ldb, ldc := k+2, cols+2, cols+2
		a := randFloat64(rng, m*lda)
		b := randFloat64(rng, k*ldb)
		c := randFloat64(rng, m*ldc)
		side := func(q *sinew.Queue) ([]float64, error) {
			ba, err := sinew.NewBufferFrom(q.Device(), a)
			if err != nil {
				return nil, err
			}
			defer ba.Release()
			bb, bc, err := pairBuffers(q, b, c)
			if err != nil {
				return nil, err
			}
			defer bb.Release()
			defer bc.Release()
			if err := blas.Dgemm(ctx, q, blas.NoTrans, blas.NoTrans, m, cols, k, 1.25, ba, lda, bb, ldb, 0.5, bc, ldc); err != nil {
				return nil, err
			}
			return bc.Read()
		}
		return side, verifyTol(k), nil

	default:
		return nil, 0, fmt.Errorf("unknown verify routine %q", routine)
	}
}

func pairBuffers(q *sinew.Queue, x, y []float64) (*sinew.Buffer[float64], *sinew.Buffer[float64], error) {
	bx, err := sinew.NewBufferFrom(q.Device(), x)
	if err != nil {
		return nil, nil, err
	}
	by, err := sinew.NewBufferFrom(q.Device(), y)
	if err != nil {
		bx.Release()
		return nil, nil, err
	}
	return bx, by, nil
}

// verifyTol bounds the acceptable relative deviation of an accumulation
// over k terms between two correct backends.
func verifyTol(k int64) float64 {
	const eps = 2.220446049250313e-16
	return 10 * eps * float64(max(k, 1))
}

func compareSlices(got, want []float64, tol float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("result length %d, reference %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > tol*(1+math.Abs(want[i])) {
			return fmt.Errorf("element %d: got %v, reference %v (|diff| %.3e, tol %.3e)",
				i, got[i], want[i], diff, tol)
		}
	}
	return nil
}
