package host

import (
	sinew "github.com/23skdu/longbow-sinew"
)

func (be *Backend) Scasum(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error {
	return reduce(be, q, "Scasum", n, x, incx, result, be.impl.Scasum)
}

func (be *Backend) Scnrm2(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error {
	return reduce(be, q, "Scnrm2", n, x, incx, result, be.impl.Scnrm2)
}

func (be *Backend) Cscal(q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64) error {
	return scale(be, q, "Cscal", n, alpha, x, incx, be.impl.Cscal)
}

func (be *Backend) Csscal(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[complex64], incx int64) error {
	return scale(be, q, "Csscal", n, alpha, x, incx, be.impl.Csscal)
}

func (be *Backend) Caxpy(q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return axpy(be, q, "Caxpy", n, alpha, x, incx, y, incy, be.impl.Caxpy)
}

func (be *Backend) Ccopy(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return pair(be, q, "Ccopy", n, x, incx, sinew.ReadOnly, y, incy, sinew.ReadWrite, be.impl.Ccopy)
}

func (be *Backend) Cswap(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return pair(be, q, "Cswap", n, x, incx, sinew.ReadWrite, y, incy, sinew.ReadWrite, be.impl.Cswap)
}

func (be *Backend) Cdotc(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error {
	return dotp(be, q, "Cdotc", n, x, incx, y, incy, result, be.impl.Cdotc)
}

func (be *Backend) Cdotu(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error {
	return dotp(be, q, "Cdotu", n, x, incx, y, incy, result, be.impl.Cdotu)
}

func (be *Backend) Csrot(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, c, s float32) error {
	return rot2(be, q, "Csrot", n, x, incx, y, incy, c, s, func(n int, x []complex64, incX int, y []complex64, incY int, c, s float32) {
		rotComplex(n, x, incX, y, incY, complex(c, 0), complex(s, 0))
	})
}

// Crotg replaces a with r and leaves b untouched; c is real. The kernel
// computes in double and narrows, so results are at worst one rounding
// step from a single-precision generator.
func (be *Backend) Crotg(q *sinew.Queue, a, b *sinew.Buffer[complex64], c *sinew.Buffer[float32], s *sinew.Buffer[complex64]) error {
	return be.launch(q, "Crotg", func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rb, err := b.Acquire(t, sinew.ReadOnly)
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
		r, cv, sv := zrotgKernel(complex128(ra.Slice()[0]), complex128(rb.Slice()[0]))
		ra.Slice()[0] = complex64(r)
		rc.Slice()[0] = float32(cv)
		rs.Slice()[0] = complex64(sv)
		return nil
	})
}

func (be *Backend) Icamax(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Icamax", n, x, incx, result, be.impl.Icamax)
}

func (be *Backend) Icamin(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Icamin", n, x, incx, result, icaminKernel)
}

func (be *Backend) Dzasum(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error {
	return reduce(be, q, "Dzasum", n, x, incx, result, be.impl.Dzasum)
}

func (be *Backend) Dznrm2(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error {
	return reduce(be, q, "Dznrm2", n, x, incx, result, be.impl.Dznrm2)
}

func (be *Backend) Zscal(q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64) error {
	return scale(be, q, "Zscal", n, alpha, x, incx, be.impl.Zscal)
}

func (be *Backend) Zdscal(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[complex128], incx int64) error {
	return scale(be, q, "Zdscal", n, alpha, x, incx, be.impl.Zdscal)
}

func (be *Backend) Zaxpy(q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return axpy(be, q, "Zaxpy", n, alpha, x, incx, y, incy, be.impl.Zaxpy)
}

func (be *Backend) Zcopy(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return pair(be, q, "Zcopy", n, x, incx, sinew.ReadOnly, y, incy, sinew.ReadWrite, be.impl.Zcopy)
}

func (be *Backend) Zswap(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return pair(be, q, "Zswap", n, x, incx, sinew.ReadWrite, y, incy, sinew.ReadWrite, be.impl.Zswap)
}

func (be *Backend) Zdotc(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error {
	return dotp(be, q, "Zdotc", n, x, incx, y, incy, result, be.impl.Zdotc)
}

func (be *Backend) Zdotu(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error {
	return dotp(be, q, "Zdotu", n, x, incx, y, incy, result, be.impl.Zdotu)
}

func (be *Backend) Zdrot(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, c, s float64) error {
	return rot2(be, q, "Zdrot", n, x, incx, y, incy, c, s, func(n int, x []complex128, incX int, y []complex128, incY int, c, s float64) {
		rotComplex(n, x, incX, y, incY, complex(c, 0), complex(s, 0))
	})
}

func (be *Backend) Zrotg(q *sinew.Queue, a, b *sinew.Buffer[complex128], c *sinew.Buffer[float64], s *sinew.Buffer[complex128]) error {
	return be.launch(q, "Zrotg", func(t *sinew.Task, _ *Handle) error {
		ra, err := a.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rb, err := b.Acquire(t, sinew.ReadOnly)
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
		r, cv, sv := zrotgKernel(ra.Slice()[0], rb.Slice()[0])
		ra.Slice()[0] = r
		rc.Slice()[0] = cv
		rs.Slice()[0] = sv
		return nil
	})
}

func (be *Backend) Izamax(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Izamax", n, x, incx, result, be.impl.Izamax)
}

func (be *Backend) Izamin(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Izamin", n, x, incx, result, izaminKernel)
}
