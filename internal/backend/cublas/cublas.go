//go:build linux && cuda

// Package cublas binds NVIDIA's cuBLAS library as the backend for CUDA
// queues. It registers both halves: the device driver (discovery, memory,
// streams) and the routine implementation.
//
// cuBLAS is column-major with one-based index results; this package owns
// the lowering from the row-major, zero-based dispatch conventions. One
// cublasHandle_t is created per CUDA device and cached; per call the
// handle is pointed at the queue's stream and the scalar pointer mode, so
// pointer-mode mutation is serialized under the handle lock.
package cublas

/*
#cgo CFLAGS: -I/usr/local/cuda/include
#cgo LDFLAGS: -L/usr/local/cuda/lib64 -lcudart -lcublas
#include <cuda_runtime_api.h>
#include <cublas_v2.h>
*/
import "C"
import (
	"sync"
	"unsafe"

	gblas "gonum.org/v1/gonum/blas"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
	"github.com/23skdu/longbow-sinew/internal/backend"
)

// Name is the dispatch name for queue backend pinning.
const Name = "cublas"

var _ blas.Implementation = (*Backend)(nil)

func init() {
	sinew.RegisterDriver(driver{})
	blas.Register(sinew.KindCUDA, 100, &Backend{
		handles: backend.NewCache(newHandle),
	})
}

// Handle owns one cublasHandle_t. Stream binding and pointer mode are
// handle state in cuBLAS, so both are set and used under mu.
type Handle struct {
	mu  sync.Mutex
	raw C.cublasHandle_t
	dev int
}

func newHandle(ordinal int) (*Handle, error) {
	if st := C.cudaSetDevice(C.int(ordinal)); st != C.cudaSuccess {
		return nil, cudaErr("cublasCreate", st)
	}
	var raw C.cublasHandle_t
	if st := C.cublasCreate(&raw); st != C.CUBLAS_STATUS_SUCCESS {
		return nil, sinew.NativeFault("cublasCreate", int64(st), statusName(st))
	}
	return &Handle{raw: raw, dev: ordinal}, nil
}

// Backend implements the routine surface on top of cached handles.
type Backend struct {
	handles *backend.Cache[int, *Handle]
}

func (be *Backend) Name() string { return Name }

// launch counts the call and submits fn as one queue task; native
// failures surface through the queue's fault collection.
func (be *Backend) launch(q *sinew.Queue, routine string, fn func(t *sinew.Task) error) error {
	backend.CountCall(Name, routine)
	q.Submit(routine, func(t *sinew.Task) error {
		if err := fn(t); err != nil {
			backend.CountFailure(Name, routine)
			return err
		}
		return nil
	})
	return nil
}

// call acquires the device's handle, binds it to the queue's stream and
// the given pointer mode, and runs one native invocation.
func (be *Backend) call(t *sinew.Task, routine string, mode C.cublasPointerMode_t, fn func(h C.cublasHandle_t) C.cublasStatus_t) error {
	q := t.Queue()
	h, err := be.handles.Get(q.Device().Info().Ordinal)
	if err != nil {
		return sinew.BindingFault(routine, err, "acquiring cublas handle for %s", q.Device())
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if st := C.cublasSetStream(h.raw, C.cudaStream_t(q.Stream().Native())); st != C.CUBLAS_STATUS_SUCCESS {
		return sinew.BindingFault(routine, nil, "cublasSetStream: %s", statusName(st))
	}
	if st := C.cublasSetPointerMode(h.raw, mode); st != C.CUBLAS_STATUS_SUCCESS {
		return sinew.BindingFault(routine, nil, "cublasSetPointerMode: %s", statusName(st))
	}
	if st := fn(h.raw); st != C.CUBLAS_STATUS_SUCCESS {
		return sinew.NativeFault(routine, int64(st), statusName(st))
	}
	return nil
}

// barrier drains the queue's stream. Shimmed routines use it between the
// native call and their host finishing step.
func barrier(t *sinew.Task, routine string) error {
	if err := t.Queue().Stream().Synchronize(); err != nil {
		return sinew.RuntimeFault(routine, err)
	}
	return nil
}

// scratch allocates transient device memory for one call.
func scratch(t *sinew.Task, routine string, bytes int64) (sinew.Memory, error) {
	alloc, ok := t.Queue().Device().Ops().(sinew.Allocator)
	if !ok {
		return nil, sinew.BindingFault(routine, nil, "device %s has no native allocator", t.Queue().Device())
	}
	mem, err := alloc.Alloc(bytes)
	if err != nil {
		return nil, sinew.BindingFault(routine, err, "allocating %d scratch bytes", bytes)
	}
	return mem, nil
}

// copyOut reads bytes device -> host after the stream has been drained.
func copyOut(routine string, dst unsafe.Pointer, src unsafe.Pointer, bytes int64) error {
	if st := C.cudaMemcpy(dst, src, C.size_t(bytes), C.cudaMemcpyDeviceToHost); st != C.cudaSuccess {
		return cudaErr(routine, st)
	}
	return nil
}

// copyIn writes bytes host -> device.
func copyIn(routine string, dst unsafe.Pointer, src unsafe.Pointer, bytes int64) error {
	if st := C.cudaMemcpy(dst, src, C.size_t(bytes), C.cudaMemcpyHostToDevice); st != C.cudaSuccess {
		return cudaErr(routine, st)
	}
	return nil
}

// cuOp lowers a dispatch op constant. Callers that cannot express
// ConjTrans reject it before lowering.
func cuOp(tr gblas.Transpose) C.cublasOperation_t {
	switch tr {
	case gblas.Trans:
		return C.CUBLAS_OP_T
	case gblas.ConjTrans:
		return C.CUBLAS_OP_C
	default:
		return C.CUBLAS_OP_N
	}
}

// flipNT exchanges NoTrans and Trans for the row-major gemv lowering.
func flipNT(tr gblas.Transpose) gblas.Transpose {
	if tr == gblas.NoTrans {
		return gblas.Trans
	}
	return gblas.NoTrans
}

// flipNC exchanges NoTrans and ConjTrans for the row-major her2k lowering.
func flipNC(tr gblas.Transpose) gblas.Transpose {
	if tr == gblas.NoTrans {
		return gblas.ConjTrans
	}
	return gblas.NoTrans
}

func flipUplo(ul gblas.Uplo) gblas.Uplo {
	if ul == gblas.Upper {
		return gblas.Lower
	}
	return gblas.Upper
}

func cuUplo(ul gblas.Uplo) C.cublasFillMode_t {
	if ul == gblas.Upper {
		return C.CUBLAS_FILL_MODE_UPPER
	}
	return C.CUBLAS_FILL_MODE_LOWER
}

func cuC(v complex64) C.cuComplex {
	return C.cuComplex{x: C.float(real(v)), y: C.float(imag(v))}
}

func cuZ(v complex128) C.cuDoubleComplex {
	return C.cuDoubleComplex{x: C.double(real(v)), y: C.double(imag(v))}
}

// absInc drops stride direction for the magnitude reductions and scaling,
// which share traversal for both signs.
func absInc(inc int64) C.int {
	if inc < 0 {
		return C.int(-inc)
	}
	return C.int(inc)
}

// acquire2 and acquire3 bundle the per-operand interop resolution shared
// by most routines.
func acquire2[A, B sinew.Element](t *sinew.Task, a *sinew.Buffer[A], am sinew.AccessMode, b *sinew.Buffer[B], bm sinew.AccessMode) (*sinew.Resolved[A], *sinew.Resolved[B], error) {
	ra, err := a.Acquire(t, am)
	if err != nil {
		return nil, nil, err
	}
	rb, err := b.Acquire(t, bm)
	if err != nil {
		return nil, nil, err
	}
	return ra, rb, nil
}

func acquire3[A, B, D sinew.Element](t *sinew.Task, a *sinew.Buffer[A], am sinew.AccessMode, b *sinew.Buffer[B], bm sinew.AccessMode, d *sinew.Buffer[D], dm sinew.AccessMode) (*sinew.Resolved[A], *sinew.Resolved[B], *sinew.Resolved[D], error) {
	ra, rb, err := acquire2(t, a, am, b, bm)
	if err != nil {
		return nil, nil, nil, err
	}
	rd, err := d.Acquire(t, dm)
	if err != nil {
		return nil, nil, nil, err
	}
	return ra, rb, rd, nil
}
