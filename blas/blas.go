// Package blas is the vendor-dispatch call surface: one entry point per
// BLAS routine per supported element type, routed to a native backend
// implementation based on the device a work queue targets.
//
// Entry points validate sizes against the native integer width, then hand
// the call to the selected backend, which enqueues exactly one native
// invocation on the queue. Faults detected before enqueue (overflow,
// missing backend, context binding) return synchronously; native failures
// surface through the queue's fault collection and Event.Wait.
package blas

import (
	"context"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	gblas "gonum.org/v1/gonum/blas"

	sinew "github.com/23skdu/longbow-sinew"
)

var tracer = otel.Tracer("sinew/blas")

// Transpose, Uplo and the rotm parameter types follow the gonum BLAS
// conventions so operands move between this layer and gonum code without
// translation.
type (
	Transpose   = gblas.Transpose
	Uplo        = gblas.Uplo
	Flag        = gblas.Flag
	SrotmParams = gblas.SrotmParams
	DrotmParams = gblas.DrotmParams
)

const (
	NoTrans   = gblas.NoTrans
	Trans     = gblas.Trans
	ConjTrans = gblas.ConjTrans

	Upper = gblas.Upper
	Lower = gblas.Lower
)

// Real32 is the float32 routine set a backend provides.
type Real32 interface {
	Sasum(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error
	Snrm2(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error
	Sscal(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64) error
	Saxpy(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error
	Scopy(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error
	Sswap(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error
	Sdot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error
	Sdsdot(q *sinew.Queue, n int64, sb float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error
	Dsdot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float64]) error
	Srot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, c, s float32) error
	Srotg(q *sinew.Queue, a, b, c, s *sinew.Buffer[float32]) error
	Srotm(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, param *sinew.Buffer[float32]) error
	Srotmg(q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float32], y1 float32, param *sinew.Buffer[float32]) error
	Isamax(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error
	Isamin(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error
	Sgemv(q *sinew.Queue, trans Transpose, m, n int64, alpha float32, a *sinew.Buffer[float32], lda int64, x *sinew.Buffer[float32], incx int64, beta float32, y *sinew.Buffer[float32], incy int64) error
	Sgemm(q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha float32, a *sinew.Buffer[float32], lda int64, b *sinew.Buffer[float32], ldb int64, beta float32, c *sinew.Buffer[float32], ldc int64) error
}

// Real64 is the float64 routine set a backend provides.
type Real64 interface {
	Dasum(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error
	Dnrm2(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error
	Dscal(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64) error
	Daxpy(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error
	Dcopy(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error
	Dswap(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error
	Ddot(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, result *sinew.Buffer[float64]) error
	Drot(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, c, s float64) error
	Drotg(q *sinew.Queue, a, b, c, s *sinew.Buffer[float64]) error
	Drotm(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, param *sinew.Buffer[float64]) error
	Drotmg(q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float64], y1 float64, param *sinew.Buffer[float64]) error
	Idamax(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error
	Idamin(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error
	Dgemv(q *sinew.Queue, trans Transpose, m, n int64, alpha float64, a *sinew.Buffer[float64], lda int64, x *sinew.Buffer[float64], incx int64, beta float64, y *sinew.Buffer[float64], incy int64) error
	Dgemm(q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha float64, a *sinew.Buffer[float64], lda int64, b *sinew.Buffer[float64], ldb int64, beta float64, c *sinew.Buffer[float64], ldc int64) error
}

// Complex64 is the complex64 routine set a backend provides.
type Complex64 interface {
	Scasum(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error
	Scnrm2(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error
	Cscal(q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64) error
	Csscal(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[complex64], incx int64) error
	Caxpy(q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error
	Ccopy(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error
	Cswap(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error
	Cdotc(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error
	Cdotu(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error
	Csrot(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, c, s float32) error
	Crotg(q *sinew.Queue, a, b *sinew.Buffer[complex64], c *sinew.Buffer[float32], s *sinew.Buffer[complex64]) error
	Icamax(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error
	Icamin(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error
	Cgemv(q *sinew.Queue, trans Transpose, m, n int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, x *sinew.Buffer[complex64], incx int64, beta complex64, y *sinew.Buffer[complex64], incy int64) error
	Cgemm(q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta complex64, c *sinew.Buffer[complex64], ldc int64) error
	Cher2k(q *sinew.Queue, uplo Uplo, trans Transpose, n, k int64, alpha complex64, a *sinew.Buffer[complex64], lda int64, b *sinew.Buffer[complex64], ldb int64, beta float32, c *sinew.Buffer[complex64], ldc int64) error
}

// Complex128 is the complex128 routine set a backend provides.
type Complex128 interface {
	Dzasum(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error
	Dznrm2(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error
	Zscal(q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64) error
	Zdscal(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[complex128], incx int64) error
	Zaxpy(q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error
	Zcopy(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error
	Zswap(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error
	Zdotc(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error
	Zdotu(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error
	Zdrot(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, c, s float64) error
	Zrotg(q *sinew.Queue, a, b *sinew.Buffer[complex128], c *sinew.Buffer[float64], s *sinew.Buffer[complex128]) error
	Izamax(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error
	Izamin(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error
	Zgemv(q *sinew.Queue, trans Transpose, m, n int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, x *sinew.Buffer[complex128], incx int64, beta complex128, y *sinew.Buffer[complex128], incy int64) error
	Zgemm(q *sinew.Queue, ta, tb Transpose, m, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta complex128, c *sinew.Buffer[complex128], ldc int64) error
	Zher2k(q *sinew.Queue, uplo Uplo, trans Transpose, n, k int64, alpha complex128, a *sinew.Buffer[complex128], lda int64, b *sinew.Buffer[complex128], ldb int64, beta float64, c *sinew.Buffer[complex128], ldc int64) error
}

// Implementation is one native backend: the full routine surface for every
// supported element type.
type Implementation interface {
	Name() string
	Real32
	Real64
	Complex64
	Complex128
}

type entry struct {
	impl     Implementation
	priority int
}

var (
	implMu sync.RWMutex
	impls  = make(map[sinew.DeviceKind][]entry)
)

// Register adds an implementation for a device kind. Higher priority wins
// when several backends serve the same kind. Call from init.
func Register(kind sinew.DeviceKind, priority int, impl Implementation) {
	implMu.Lock()
	defer implMu.Unlock()
	impls[kind] = append(impls[kind], entry{impl: impl, priority: priority})
	sort.SliceStable(impls[kind], func(i, j int) bool {
		return impls[kind][i].priority > impls[kind][j].priority
	})
}

// Registered lists the implementations serving a device kind, best first.
func Registered(kind sinew.DeviceKind) []string {
	implMu.RLock()
	defer implMu.RUnlock()
	names := make([]string, 0, len(impls[kind]))
	for _, e := range impls[kind] {
		names = append(names, e.impl.Name())
	}
	return names
}

// implFor resolves the implementation serving q's device, honoring the
// queue's pinned backend name when set.
func implFor(q *sinew.Queue) (Implementation, error) {
	kind := q.Device().Kind()
	implMu.RLock()
	defer implMu.RUnlock()

	if pref := q.BackendPreference(); pref != "" {
		for _, e := range impls[kind] {
			if e.impl.Name() == pref {
				return e.impl, nil
			}
		}
		return nil, sinew.UnavailableFault("dispatch", "backend %q not registered for %s devices", pref, kind)
	}
	if len(impls[kind]) == 0 {
		return nil, sinew.UnavailableFault("dispatch", "no backend registered for %s devices", kind)
	}
	return impls[kind][0].impl, nil
}

// dispatch wraps routing, tracing, and synchronous fault recording shared
// by every entry point.
func dispatch(ctx context.Context, q *sinew.Queue, routine string, n int64, fn func(Implementation) error) error {
	_, span := tracer.Start(ctx, "blas."+routine, trace.WithAttributes(
		attribute.Int64("n", n),
		attribute.String("device", q.Device().Kind().String()),
	))
	defer span.End()

	impl, err := implFor(q)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.String("backend", impl.Name()))
	if err := fn(impl); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
