package host

import (
	sinew "github.com/23skdu/longbow-sinew"
)

// The adapter folds the routine surface into a handful of launch shapes.
// Each shape acquires its operands for the task, narrows sizes to the
// executor's int width (validated upstream against the native index
// width), and runs one executor kernel.

// reduce runs a magnitude reduction x -> result[0]. Stride direction is
// dropped: the covered elements are the same either way.
func reduce[T, R sinew.Element](be *Backend, q *sinew.Queue, routine string, n int64, x *sinew.Buffer[T], incx int64, result *sinew.Buffer[R], kernel func(n int, x []T, incX int) R) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		res, err := result.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		res.Slice()[0] = kernel(int(n), rx.Slice(), absInc(incx))
		return nil
	})
}

// scale runs an in-place x *= alpha with direction-free stride.
func scale[T sinew.Element, A sinew.Scalar](be *Backend, q *sinew.Queue, routine string, n int64, alpha A, x *sinew.Buffer[T], incx int64, kernel func(n int, alpha A, x []T, incX int)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		kernel(int(n), alpha, rx.Slice(), absInc(incx))
		return nil
	})
}

// axpy runs y += alpha*x with signed strides.
func axpy[T sinew.Element](be *Backend, q *sinew.Queue, routine string, n int64, alpha T, x *sinew.Buffer[T], incx int64, y *sinew.Buffer[T], incy int64, kernel func(n int, alpha T, x []T, incX int, y []T, incY int)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		kernel(int(n), alpha, rx.Slice(), int(incx), ry.Slice(), int(incy))
		return nil
	})
}

// pair runs a two-vector kernel (copy, swap) with caller-chosen access
// modes. Strided writes touch a subset of the destination, so writers use
// ReadWrite to keep the untouched elements.
func pair[T sinew.Element](be *Backend, q *sinew.Queue, routine string, n int64, x *sinew.Buffer[T], incx int64, xMode sinew.AccessMode, y *sinew.Buffer[T], incy int64, yMode sinew.AccessMode, kernel func(n int, x []T, incX int, y []T, incY int)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, xMode)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, yMode)
		if err != nil {
			return err
		}
		kernel(int(n), rx.Slice(), int(incx), ry.Slice(), int(incy))
		return nil
	})
}

// dotp runs a two-vector reduction into result[0].
func dotp[T, R sinew.Element](be *Backend, q *sinew.Queue, routine string, n int64, x *sinew.Buffer[T], incx int64, y *sinew.Buffer[T], incy int64, result *sinew.Buffer[R], kernel func(n int, x []T, incX int, y []T, incY int) R) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		res, err := result.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		res.Slice()[0] = kernel(int(n), rx.Slice(), int(incx), ry.Slice(), int(incy))
		return nil
	})
}

// rot2 applies a plane rotation to x and y in place.
func rot2[T sinew.Element, S sinew.Scalar](be *Backend, q *sinew.Queue, routine string, n int64, x *sinew.Buffer[T], incx int64, y *sinew.Buffer[T], incy int64, c, s S, kernel func(n int, x []T, incX int, y []T, incY int, c, s S)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		kernel(int(n), rx.Slice(), int(incx), ry.Slice(), int(incy), c, s)
		return nil
	})
}

// rotg generates a real plane rotation: a, b are replaced by r, z and c, s
// receive the rotation. All four buffers hold one element.
func rotg[T sinew.Element](be *Backend, q *sinew.Queue, routine string, a, b, c, s *sinew.Buffer[T], kernel func(a, b T) (cv, sv, r, z T)) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rb, err := b.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rc, err := c.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		rs, err := s.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		cv, sv, r, z := kernel(ra.Slice()[0], rb.Slice()[0])
		ra.Slice()[0] = r
		rb.Slice()[0] = z
		rc.Slice()[0] = cv
		rs.Slice()[0] = sv
		return nil
	})
}

// indexOf runs an index-of-extremum reduction. The written index is
// zero-based; n < 1 or a non-positive stride pins the result to 0 without
// touching x, matching reference degenerate traversal.
func indexOf[T sinew.Element](be *Backend, q *sinew.Queue, routine string, n int64, x *sinew.Buffer[T], incx int64, result *sinew.Buffer[int64], kernel func(n int, x []T, incX int) int) error {
	return be.launch(q, routine, func(t *sinew.Task, _ *Handle) error {
		res, err := result.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		if n < 1 || incx < 1 {
			res.Slice()[0] = 0
			return nil
		}
		rx, err := x.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		idx := kernel(int(n), rx.Slice(), int(incx))
		if idx < 0 {
			idx = 0
		}
		res.Slice()[0] = int64(idx)
		return nil
	})
}
