//go:build linux && cuda

package cublas

/*
#include <cuda_runtime_api.h>
#include <cublas_v2.h>
*/
import "C"
import (
	"unsafe"

	"github.com/rs/zerolog/log"

	sinew "github.com/23skdu/longbow-sinew"
)

// driver enumerates CUDA devices for the runtime.
type driver struct{}

func (driver) Kind() sinew.DeviceKind { return sinew.KindCUDA }

func (driver) Probe() []sinew.DeviceInfo {
	var count C.int
	if st := C.cudaGetDeviceCount(&count); st != C.cudaSuccess {
		log.Debug().Str("error", C.GoString(C.cudaGetErrorString(st))).Msg("cuda probe: no devices")
		return nil
	}
	infos := make([]sinew.DeviceInfo, 0, int(count))
	for i := 0; i < int(count); i++ {
		var prop C.struct_cudaDeviceProp
		if st := C.cudaGetDeviceProperties(&prop, C.int(i)); st != C.cudaSuccess {
			log.Error().Int("ordinal", i).Str("error", C.GoString(C.cudaGetErrorString(st))).Msg("cuda probe: skipping device")
			continue
		}
		infos = append(infos, sinew.DeviceInfo{
			Kind:     sinew.KindCUDA,
			Ordinal:  i,
			Name:     C.GoString(&prop.name[0]),
			TotalMem: int64(prop.totalGlobalMem),
		})
	}
	return infos
}

func (driver) Open(info sinew.DeviceInfo) (sinew.DeviceOps, error) {
	if st := C.cudaSetDevice(C.int(info.Ordinal)); st != C.cudaSuccess {
		return nil, cudaErr("open", st)
	}
	return &devOps{ordinal: info.Ordinal}, nil
}

// devOps is one opened CUDA device. Calls pin the ordinal first; the CUDA
// runtime keys its current-device state per host thread.
type devOps struct {
	ordinal int
}

func (d *devOps) NewStream() (sinew.Stream, error) {
	if st := C.cudaSetDevice(C.int(d.ordinal)); st != C.cudaSuccess {
		return nil, cudaErr("stream-create", st)
	}
	var s C.cudaStream_t
	if st := C.cudaStreamCreate(&s); st != C.cudaSuccess {
		return nil, cudaErr("stream-create", st)
	}
	return &stream{raw: s}, nil
}

func (d *devOps) Close() error { return nil }

func (d *devOps) Alloc(bytes int64) (sinew.Memory, error) {
	if st := C.cudaSetDevice(C.int(d.ordinal)); st != C.cudaSuccess {
		return nil, cudaErr("alloc", st)
	}
	var p unsafe.Pointer
	if st := C.cudaMalloc(&p, C.size_t(bytes)); st != C.cudaSuccess {
		return nil, cudaErr("alloc", st)
	}
	return &devMem{ptr: p, size: bytes}, nil
}

type stream struct {
	raw C.cudaStream_t
}

func (s *stream) Native() unsafe.Pointer { return unsafe.Pointer(s.raw) }

func (s *stream) Synchronize() error {
	if st := C.cudaStreamSynchronize(s.raw); st != C.cudaSuccess {
		return cudaErr("stream-sync", st)
	}
	return nil
}

func (s *stream) Destroy() error {
	if st := C.cudaStreamDestroy(s.raw); st != C.cudaSuccess {
		return cudaErr("stream-destroy", st)
	}
	return nil
}

type devMem struct {
	ptr  unsafe.Pointer
	size int64
}

func (m *devMem) Ptr() unsafe.Pointer { return m.ptr }

func (m *devMem) Upload(src []byte) error {
	if len(src) == 0 {
		return nil
	}
	return copyIn("upload", m.ptr, unsafe.Pointer(&src[0]), int64(len(src)))
}

func (m *devMem) Download(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	return copyOut("download", unsafe.Pointer(&dst[0]), m.ptr, int64(len(dst)))
}

func (m *devMem) Free() {
	if m.ptr != nil {
		C.cudaFree(m.ptr)
		m.ptr = nil
	}
}
