package host

import (
	"gonum.org/v1/gonum/blas"

	sinew "github.com/23skdu/longbow-sinew"
)

func (be *Backend) Sasum(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error {
	return reduce(be, q, "Sasum", n, x, incx, result, be.impl.Sasum)
}

func (be *Backend) Snrm2(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error {
	return reduce(be, q, "Snrm2", n, x, incx, result, be.impl.Snrm2)
}

func (be *Backend) Sscal(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64) error {
	return scale(be, q, "Sscal", n, alpha, x, incx, be.impl.Sscal)
}

func (be *Backend) Saxpy(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return axpy(be, q, "Saxpy", n, alpha, x, incx, y, incy, be.impl.Saxpy)
}

func (be *Backend) Scopy(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return pair(be, q, "Scopy", n, x, incx, sinew.ReadOnly, y, incy, sinew.ReadWrite, be.impl.Scopy)
}

func (be *Backend) Sswap(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return pair(be, q, "Sswap", n, x, incx, sinew.ReadWrite, y, incy, sinew.ReadWrite, be.impl.Sswap)
}

func (be *Backend) Sdot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error {
	return dotp(be, q, "Sdot", n, x, incx, y, incy, result, be.impl.Sdot)
}

// Sdsdot and Dsdot ride the executor's native mixed-precision kernels;
// no narrowing shim is involved on the host path.

func (be *Backend) Sdsdot(q *sinew.Queue, n int64, sb float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error {
	return dotp(be, q, "Sdsdot", n, x, incx, y, incy, result, func(n int, x []float32, incX int, y []float32, incY int) float32 {
		return be.impl.Sdsdot(n, sb, x, incX, y, incY)
	})
}

func (be *Backend) Dsdot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float64]) error {
	return dotp(be, q, "Dsdot", n, x, incx, y, incy, result, be.impl.Dsdot)
}

func (be *Backend) Srot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, c, s float32) error {
	return rot2(be, q, "Srot", n, x, incx, y, incy, c, s, be.impl.Srot)
}

func (be *Backend) Srotg(q *sinew.Queue, a, b, c, s *sinew.Buffer[float32]) error {
	return rotg(be, q, "Srotg", a, b, c, s, be.impl.Srotg)
}

func (be *Backend) Srotm(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, param *sinew.Buffer[float32]) error {
	return be.launch(q, "Srotm", func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rp, err := param.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		pp := rp.Slice()
		p := blas.SrotmParams{Flag: blas.Flag(pp[0]), H: [4]float32{pp[1], pp[2], pp[3], pp[4]}}
		be.impl.Srotm(int(n), rx.Slice(), int(incx), ry.Slice(), int(incy), p)
		return nil
	})
}

func (be *Backend) Srotmg(q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float32], y1 float32, param *sinew.Buffer[float32]) error {
	return be.launch(q, "Srotmg", func(t *sinew.Task, _ *Handle) error {
		rd1, err := d1.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rd2, err := d2.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rx1, err := x1.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rp, err := param.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		p, nd1, nd2, nx1 := be.impl.Srotmg(rd1.Slice()[0], rd2.Slice()[0], rx1.Slice()[0], y1)
		rd1.Slice()[0] = nd1
		rd2.Slice()[0] = nd2
		rx1.Slice()[0] = nx1
		writeParams32(rp.Slice(), p)
		return nil
	})
}

func (be *Backend) Isamax(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Isamax", n, x, incx, result, be.impl.Isamax)
}

func (be *Backend) Isamin(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Isamin", n, x, incx, result, isaminKernel)
}

func (be *Backend) Dasum(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error {
	return reduce(be, q, "Dasum", n, x, incx, result, be.impl.Dasum)
}

func (be *Backend) Dnrm2(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error {
	return reduce(be, q, "Dnrm2", n, x, incx, result, be.impl.Dnrm2)
}

func (be *Backend) Dscal(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64) error {
	return scale(be, q, "Dscal", n, alpha, x, incx, be.impl.Dscal)
}

func (be *Backend) Daxpy(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return axpy(be, q, "Daxpy", n, alpha, x, incx, y, incy, be.impl.Daxpy)
}

func (be *Backend) Dcopy(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return pair(be, q, "Dcopy", n, x, incx, sinew.ReadOnly, y, incy, sinew.ReadWrite, be.impl.Dcopy)
}

func (be *Backend) Dswap(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return pair(be, q, "Dswap", n, x, incx, sinew.ReadWrite, y, incy, sinew.ReadWrite, be.impl.Dswap)
}

func (be *Backend) Ddot(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, result *sinew.Buffer[float64]) error {
	return dotp(be, q, "Ddot", n, x, incx, y, incy, result, be.impl.Ddot)
}

func (be *Backend) Drot(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, c, s float64) error {
	return rot2(be, q, "Drot", n, x, incx, y, incy, c, s, be.impl.Drot)
}

func (be *Backend) Drotg(q *sinew.Queue, a, b, c, s *sinew.Buffer[float64]) error {
	return rotg(be, q, "Drotg", a, b, c, s, be.impl.Drotg)
}

func (be *Backend) Drotm(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, param *sinew.Buffer[float64]) error {
	return be.launch(q, "Drotm", func(t *sinew.Task, _ *Handle) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		ry, err := y.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rp, err := param.Acquire(t, sinew.ReadOnly)
		if err != nil {
			return err
		}
		pp := rp.Slice()
		p := blas.DrotmParams{Flag: blas.Flag(pp[0]), H: [4]float64{pp[1], pp[2], pp[3], pp[4]}}
		be.impl.Drotm(int(n), rx.Slice(), int(incx), ry.Slice(), int(incy), p)
		return nil
	})
}

func (be *Backend) Drotmg(q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float64], y1 float64, param *sinew.Buffer[float64]) error {
	return be.launch(q, "Drotmg", func(t *sinew.Task, _ *Handle) error {
		rd1, err := d1.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rd2, err := d2.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rx1, err := x1.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rp, err := param.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		p, nd1, nd2, nx1 := be.impl.Drotmg(rd1.Slice()[0], rd2.Slice()[0], rx1.Slice()[0], y1)
		rd1.Slice()[0] = nd1
		rd2.Slice()[0] = nd2
		rx1.Slice()[0] = nx1
		writeParams64(rp.Slice(), p)
		return nil
	})
}

func (be *Backend) Idamax(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Idamax", n, x, incx, result, be.impl.Idamax)
}

func (be *Backend) Idamin(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error {
	return indexOf(be, q, "Idamin", n, x, incx, result, idaminKernel)
}

// The five-element rotm parameter layout is [flag, h11, h21, h12, h22];
// gonum's H packs the same four entries column by column.

func writeParams32(dst []float32, p blas.SrotmParams) {
	dst[0] = float32(p.Flag)
	dst[1], dst[2], dst[3], dst[4] = p.H[0], p.H[1], p.H[2], p.H[3]
}

func writeParams64(dst []float64, p blas.DrotmParams) {
	dst[0] = float64(p.Flag)
	dst[1], dst[2], dst[3], dst[4] = p.H[0], p.H[1], p.H[2], p.H[3]
}
