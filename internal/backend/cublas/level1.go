//go:build linux && cuda

package cublas

/*
#include <cuda_runtime_api.h>
#include <cublas_v2.h>
*/
import "C"
import (
	"unsafe"

	sinew "github.com/23skdu/longbow-sinew"
)

// Scalar-result routines (asum, nrm2, dot, rotg, rotm, rotmg, iamax,
// iamin) run in device pointer mode: their scalar cells are device
// buffers and the call stays asynchronous on the stream. Routines taking
// host scalars (scal, axpy, rot) run in host pointer mode; cuBLAS reads
// those before returning, so stack locals are safe.

// Asum family. Direction-free traversal: |incx| is what the native call
// sees.

func (be *Backend) Sasum(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error {
	return be.launch(q, "Sasum", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Sasum", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSasum(h, C.int(n), (*C.float)(rx.Ptr()), absInc(incx), (*C.float)(res.Ptr()))
		})
	})
}

func (be *Backend) Dasum(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error {
	return be.launch(q, "Dasum", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Dasum", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDasum(h, C.int(n), (*C.double)(rx.Ptr()), absInc(incx), (*C.double)(res.Ptr()))
		})
	})
}

func (be *Backend) Scasum(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error {
	return be.launch(q, "Scasum", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Scasum", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasScasum(h, C.int(n), (*C.cuComplex)(rx.Ptr()), absInc(incx), (*C.float)(res.Ptr()))
		})
	})
}

func (be *Backend) Dzasum(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error {
	return be.launch(q, "Dzasum", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Dzasum", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDzasum(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), absInc(incx), (*C.double)(res.Ptr()))
		})
	})
}

func (be *Backend) Snrm2(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[float32]) error {
	return be.launch(q, "Snrm2", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Snrm2", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSnrm2(h, C.int(n), (*C.float)(rx.Ptr()), absInc(incx), (*C.float)(res.Ptr()))
		})
	})
}

func (be *Backend) Dnrm2(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[float64]) error {
	return be.launch(q, "Dnrm2", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Dnrm2", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDnrm2(h, C.int(n), (*C.double)(rx.Ptr()), absInc(incx), (*C.double)(res.Ptr()))
		})
	})
}

func (be *Backend) Scnrm2(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[float32]) error {
	return be.launch(q, "Scnrm2", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Scnrm2", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasScnrm2(h, C.int(n), (*C.cuComplex)(rx.Ptr()), absInc(incx), (*C.float)(res.Ptr()))
		})
	})
}

func (be *Backend) Dznrm2(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[float64]) error {
	return be.launch(q, "Dznrm2", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Dznrm2", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDznrm2(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), absInc(incx), (*C.double)(res.Ptr()))
		})
	})
}

// Scal family: host-mode alpha, direction-free stride.

func (be *Backend) Sscal(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64) error {
	return be.launch(q, "Sscal", func(t *sinew.Task) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := C.float(alpha)
		return be.call(t, "Sscal", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSscal(h, C.int(n), &al, (*C.float)(rx.Ptr()), absInc(incx))
		})
	})
}

func (be *Backend) Dscal(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64) error {
	return be.launch(q, "Dscal", func(t *sinew.Task) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := C.double(alpha)
		return be.call(t, "Dscal", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDscal(h, C.int(n), &al, (*C.double)(rx.Ptr()), absInc(incx))
		})
	})
}

func (be *Backend) Cscal(q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64) error {
	return be.launch(q, "Cscal", func(t *sinew.Task) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := cuC(alpha)
		return be.call(t, "Cscal", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCscal(h, C.int(n), &al, (*C.cuComplex)(rx.Ptr()), absInc(incx))
		})
	})
}

func (be *Backend) Csscal(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[complex64], incx int64) error {
	return be.launch(q, "Csscal", func(t *sinew.Task) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := C.float(alpha)
		return be.call(t, "Csscal", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCsscal(h, C.int(n), &al, (*C.cuComplex)(rx.Ptr()), absInc(incx))
		})
	})
}

func (be *Backend) Zscal(q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64) error {
	return be.launch(q, "Zscal", func(t *sinew.Task) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := cuZ(alpha)
		return be.call(t, "Zscal", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZscal(h, C.int(n), &al, (*C.cuDoubleComplex)(rx.Ptr()), absInc(incx))
		})
	})
}

func (be *Backend) Zdscal(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[complex128], incx int64) error {
	return be.launch(q, "Zdscal", func(t *sinew.Task) error {
		rx, err := x.Acquire(t, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := C.double(alpha)
		return be.call(t, "Zdscal", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZdscal(h, C.int(n), &al, (*C.cuDoubleComplex)(rx.Ptr()), absInc(incx))
		})
	})
}

// Axpy family: host-mode alpha, signed strides.

func (be *Backend) Saxpy(q *sinew.Queue, n int64, alpha float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return be.launch(q, "Saxpy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := C.float(alpha)
		return be.call(t, "Saxpy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSaxpy(h, C.int(n), &al, (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Daxpy(q *sinew.Queue, n int64, alpha float64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return be.launch(q, "Daxpy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := C.double(alpha)
		return be.call(t, "Daxpy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDaxpy(h, C.int(n), &al, (*C.double)(rx.Ptr()), C.int(incx), (*C.double)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Caxpy(q *sinew.Queue, n int64, alpha complex64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return be.launch(q, "Caxpy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := cuC(alpha)
		return be.call(t, "Caxpy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCaxpy(h, C.int(n), &al, (*C.cuComplex)(rx.Ptr()), C.int(incx), (*C.cuComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Zaxpy(q *sinew.Queue, n int64, alpha complex128, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return be.launch(q, "Zaxpy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		al := cuZ(alpha)
		return be.call(t, "Zaxpy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZaxpy(h, C.int(n), &al, (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

// Copy and swap take no scalars; pointer mode is irrelevant and left at
// host.

func (be *Backend) Scopy(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return be.launch(q, "Scopy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Scopy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasScopy(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Dcopy(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return be.launch(q, "Dcopy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Dcopy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDcopy(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), (*C.double)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Ccopy(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return be.launch(q, "Ccopy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Ccopy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCcopy(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), (*C.cuComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Zcopy(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return be.launch(q, "Zcopy", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadOnly, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Zcopy", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZcopy(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Sswap(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64) error {
	return be.launch(q, "Sswap", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Sswap", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSswap(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Dswap(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64) error {
	return be.launch(q, "Dswap", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Dswap", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDswap(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), (*C.double)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Cswap(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64) error {
	return be.launch(q, "Cswap", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Cswap", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCswap(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), (*C.cuComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

func (be *Backend) Zswap(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64) error {
	return be.launch(q, "Zswap", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		return be.call(t, "Zswap", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZswap(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy))
		})
	})
}

// Dot family: device-mode result, fully asynchronous.

func (be *Backend) Sdot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error {
	return be.launch(q, "Sdot", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Sdot", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSdot(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy), (*C.float)(res.Ptr()))
		})
	})
}

func (be *Backend) Ddot(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, result *sinew.Buffer[float64]) error {
	return be.launch(q, "Ddot", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Ddot", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDdot(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), (*C.double)(ry.Ptr()), C.int(incy), (*C.double)(res.Ptr()))
		})
	})
}

func (be *Backend) Cdotc(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error {
	return be.launch(q, "Cdotc", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Cdotc", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCdotc(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), (*C.cuComplex)(ry.Ptr()), C.int(incy), (*C.cuComplex)(res.Ptr()))
		})
	})
}

func (be *Backend) Cdotu(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, result *sinew.Buffer[complex64]) error {
	return be.launch(q, "Cdotu", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Cdotu", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCdotu(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), (*C.cuComplex)(ry.Ptr()), C.int(incy), (*C.cuComplex)(res.Ptr()))
		})
	})
}

func (be *Backend) Zdotc(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error {
	return be.launch(q, "Zdotc", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Zdotc", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZdotc(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy), (*C.cuDoubleComplex)(res.Ptr()))
		})
	})
}

func (be *Backend) Zdotu(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, result *sinew.Buffer[complex128]) error {
	return be.launch(q, "Zdotu", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Zdotu", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZdotu(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy), (*C.cuDoubleComplex)(res.Ptr()))
		})
	})
}

// Sdsdot has no native cuBLAS routine: run Sdot into the result cell,
// drain the stream, and fold sb in on the host. The barrier makes this
// call a synchronization point.
func (be *Backend) Sdsdot(q *sinew.Queue, n int64, sb float32, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float32]) error {
	return be.launch(q, "Sdsdot", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		if err := be.call(t, "Sdsdot", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSdot(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy), (*C.float)(res.Ptr()))
		}); err != nil {
			return err
		}
		if err := barrier(t, "Sdsdot"); err != nil {
			return err
		}
		var dot float32
		if err := copyOut("Sdsdot", unsafe.Pointer(&dot), res.Ptr(), 4); err != nil {
			return err
		}
		dot += sb
		return copyIn("Sdsdot", res.Ptr(), unsafe.Pointer(&dot), 4)
	})
}

// Dsdot narrows to the native single-precision dot and widens the result
// on the host. The float64 accumulation the reference backend performs is
// lost here; that loss is documented, not a fault.
func (be *Backend) Dsdot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, result *sinew.Buffer[float64]) error {
	return be.launch(q, "Dsdot", func(t *sinew.Task) error {
		rx, ry, res, err := acquire3(t, x, sinew.ReadOnly, y, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		scr, err := scratch(t, "Dsdot", 4)
		if err != nil {
			return err
		}
		defer scr.Free()
		if err := be.call(t, "Dsdot", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSdot(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy), (*C.float)(scr.Ptr()))
		}); err != nil {
			return err
		}
		if err := barrier(t, "Dsdot"); err != nil {
			return err
		}
		var narrow float32
		if err := copyOut("Dsdot", unsafe.Pointer(&narrow), scr.Ptr(), 4); err != nil {
			return err
		}
		wide := float64(narrow)
		return copyIn("Dsdot", res.Ptr(), unsafe.Pointer(&wide), 8)
	})
}

// Rot family: c and s are host scalars.

func (be *Backend) Srot(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, c, s float32) error {
	return be.launch(q, "Srot", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		cc, ss := C.float(c), C.float(s)
		return be.call(t, "Srot", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSrot(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy), &cc, &ss)
		})
	})
}

func (be *Backend) Drot(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, c, s float64) error {
	return be.launch(q, "Drot", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		cc, ss := C.double(c), C.double(s)
		return be.call(t, "Drot", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDrot(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), (*C.double)(ry.Ptr()), C.int(incy), &cc, &ss)
		})
	})
}

func (be *Backend) Csrot(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, y *sinew.Buffer[complex64], incy int64, c, s float32) error {
	return be.launch(q, "Csrot", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		cc, ss := C.float(c), C.float(s)
		return be.call(t, "Csrot", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCsrot(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), (*C.cuComplex)(ry.Ptr()), C.int(incy), &cc, &ss)
		})
	})
}

func (be *Backend) Zdrot(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, y *sinew.Buffer[complex128], incy int64, c, s float64) error {
	return be.launch(q, "Zdrot", func(t *sinew.Task) error {
		rx, ry, err := acquire2(t, x, sinew.ReadWrite, y, sinew.ReadWrite)
		if err != nil {
			return err
		}
		cc, ss := C.double(c), C.double(s)
		return be.call(t, "Zdrot", C.CUBLAS_POINTER_MODE_HOST, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZdrot(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), (*C.cuDoubleComplex)(ry.Ptr()), C.int(incy), &cc, &ss)
		})
	})
}

// Givens generators: every cell is a device buffer, device pointer mode.

func (be *Backend) Srotg(q *sinew.Queue, a, b, c, s *sinew.Buffer[float32]) error {
	return be.launch(q, "Srotg", func(t *sinew.Task) error {
		ra, rb, err := acquire2(t, a, sinew.ReadWrite, b, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rc, rs, err := acquire2(t, c, sinew.WriteOnly, s, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Srotg", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSrotg(h, (*C.float)(ra.Ptr()), (*C.float)(rb.Ptr()), (*C.float)(rc.Ptr()), (*C.float)(rs.Ptr()))
		})
	})
}

func (be *Backend) Drotg(q *sinew.Queue, a, b, c, s *sinew.Buffer[float64]) error {
	return be.launch(q, "Drotg", func(t *sinew.Task) error {
		ra, rb, err := acquire2(t, a, sinew.ReadWrite, b, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rc, rs, err := acquire2(t, c, sinew.WriteOnly, s, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Drotg", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDrotg(h, (*C.double)(ra.Ptr()), (*C.double)(rb.Ptr()), (*C.double)(rc.Ptr()), (*C.double)(rs.Ptr()))
		})
	})
}

func (be *Backend) Crotg(q *sinew.Queue, a, b *sinew.Buffer[complex64], c *sinew.Buffer[float32], s *sinew.Buffer[complex64]) error {
	return be.launch(q, "Crotg", func(t *sinew.Task) error {
		ra, rb, err := acquire2(t, a, sinew.ReadWrite, b, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rc, rs, err := acquire2(t, c, sinew.WriteOnly, s, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Crotg", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasCrotg(h, (*C.cuComplex)(ra.Ptr()), (*C.cuComplex)(rb.Ptr()), (*C.float)(rc.Ptr()), (*C.cuComplex)(rs.Ptr()))
		})
	})
}

func (be *Backend) Zrotg(q *sinew.Queue, a, b *sinew.Buffer[complex128], c *sinew.Buffer[float64], s *sinew.Buffer[complex128]) error {
	return be.launch(q, "Zrotg", func(t *sinew.Task) error {
		ra, rb, err := acquire2(t, a, sinew.ReadWrite, b, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rc, rs, err := acquire2(t, c, sinew.WriteOnly, s, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Zrotg", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasZrotg(h, (*C.cuDoubleComplex)(ra.Ptr()), (*C.cuDoubleComplex)(rb.Ptr()), (*C.double)(rc.Ptr()), (*C.cuDoubleComplex)(rs.Ptr()))
		})
	})
}

func (be *Backend) Srotm(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, y *sinew.Buffer[float32], incy int64, param *sinew.Buffer[float32]) error {
	return be.launch(q, "Srotm", func(t *sinew.Task) error {
		rx, ry, rp, err := acquire3(t, x, sinew.ReadWrite, y, sinew.ReadWrite, param, sinew.ReadOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Srotm", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSrotm(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), (*C.float)(ry.Ptr()), C.int(incy), (*C.float)(rp.Ptr()))
		})
	})
}

func (be *Backend) Drotm(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, y *sinew.Buffer[float64], incy int64, param *sinew.Buffer[float64]) error {
	return be.launch(q, "Drotm", func(t *sinew.Task) error {
		rx, ry, rp, err := acquire3(t, x, sinew.ReadWrite, y, sinew.ReadWrite, param, sinew.ReadOnly)
		if err != nil {
			return err
		}
		return be.call(t, "Drotm", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDrotm(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), (*C.double)(ry.Ptr()), C.int(incy), (*C.double)(rp.Ptr()))
		})
	})
}

// Rotmg takes y1 by value; device pointer mode needs it in device memory,
// so it rides a transient cell for the call.

func (be *Backend) Srotmg(q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float32], y1 float32, param *sinew.Buffer[float32]) error {
	return be.launch(q, "Srotmg", func(t *sinew.Task) error {
		rd1, rd2, rx1, err := acquire3(t, d1, sinew.ReadWrite, d2, sinew.ReadWrite, x1, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rp, err := param.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		scr, err := scratch(t, "Srotmg", 4)
		if err != nil {
			return err
		}
		defer scr.Free()
		hv := y1
		if err := copyIn("Srotmg", scr.Ptr(), unsafe.Pointer(&hv), 4); err != nil {
			return err
		}
		if err := be.call(t, "Srotmg", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasSrotmg(h, (*C.float)(rd1.Ptr()), (*C.float)(rd2.Ptr()), (*C.float)(rx1.Ptr()), (*C.float)(scr.Ptr()), (*C.float)(rp.Ptr()))
		}); err != nil {
			return err
		}
		// drain before the deferred Free releases the y1 cell
		return barrier(t, "Srotmg")
	})
}

func (be *Backend) Drotmg(q *sinew.Queue, d1, d2, x1 *sinew.Buffer[float64], y1 float64, param *sinew.Buffer[float64]) error {
	return be.launch(q, "Drotmg", func(t *sinew.Task) error {
		rd1, rd2, rx1, err := acquire3(t, d1, sinew.ReadWrite, d2, sinew.ReadWrite, x1, sinew.ReadWrite)
		if err != nil {
			return err
		}
		rp, err := param.Acquire(t, sinew.WriteOnly)
		if err != nil {
			return err
		}
		scr, err := scratch(t, "Drotmg", 8)
		if err != nil {
			return err
		}
		defer scr.Free()
		hv := y1
		if err := copyIn("Drotmg", scr.Ptr(), unsafe.Pointer(&hv), 8); err != nil {
			return err
		}
		if err := be.call(t, "Drotmg", C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
			return C.cublasDrotmg(h, (*C.double)(rd1.Ptr()), (*C.double)(rd2.Ptr()), (*C.double)(rx1.Ptr()), (*C.double)(scr.Ptr()), (*C.double)(rp.Ptr()))
		}); err != nil {
			return err
		}
		return barrier(t, "Drotmg")
	})
}

// Index-of-extremum family: the native routines report one-based indices
// into an int32 cell and 0 for degenerate traversal; the shim converts
// with max(native-1, 0) into the int64 result.

func (be *Backend) indexShim(t *sinew.Task, routine string, res *sinew.Resolved[int64], fn func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t) error {
	scr, err := scratch(t, routine, 4)
	if err != nil {
		return err
	}
	defer scr.Free()
	if err := be.call(t, routine, C.CUBLAS_POINTER_MODE_DEVICE, func(h C.cublasHandle_t) C.cublasStatus_t {
		return fn(h, (*C.int)(scr.Ptr()))
	}); err != nil {
		return err
	}
	if err := barrier(t, routine); err != nil {
		return err
	}
	var native C.int
	if err := copyOut(routine, unsafe.Pointer(&native), scr.Ptr(), 4); err != nil {
		return err
	}
	idx := int64(native) - 1
	if idx < 0 {
		idx = 0
	}
	return copyIn(routine, res.Ptr(), unsafe.Pointer(&idx), 8)
}

func (be *Backend) Isamax(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Isamax", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Isamax", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIsamax(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Isamin(q *sinew.Queue, n int64, x *sinew.Buffer[float32], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Isamin", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Isamin", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIsamin(h, C.int(n), (*C.float)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Idamax(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Idamax", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Idamax", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIdamax(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Idamin(q *sinew.Queue, n int64, x *sinew.Buffer[float64], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Idamin", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Idamin", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIdamin(h, C.int(n), (*C.double)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Icamax(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Icamax", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Icamax", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIcamax(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Icamin(q *sinew.Queue, n int64, x *sinew.Buffer[complex64], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Icamin", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Icamin", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIcamin(h, C.int(n), (*C.cuComplex)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Izamax(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Izamax", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Izamax", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIzamax(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), out)
		})
	})
}

func (be *Backend) Izamin(q *sinew.Queue, n int64, x *sinew.Buffer[complex128], incx int64, result *sinew.Buffer[int64]) error {
	return be.launch(q, "Izamin", func(t *sinew.Task) error {
		rx, res, err := acquire2(t, x, sinew.ReadOnly, result, sinew.WriteOnly)
		if err != nil {
			return err
		}
		return be.indexShim(t, "Izamin", res, func(h C.cublasHandle_t, out *C.int) C.cublasStatus_t {
			return C.cublasIzamin(h, C.int(n), (*C.cuDoubleComplex)(rx.Ptr()), C.int(incx), out)
		})
	})
}
