//go:build linux && cuda

package cublas

/*
#include <cuda_runtime_api.h>
#include <cublas_v2.h>
*/
import "C"
import (
	"errors"
	"fmt"

	sinew "github.com/23skdu/longbow-sinew"
)

func statusName(st C.cublasStatus_t) string {
	switch st {
	case C.CUBLAS_STATUS_SUCCESS:
		return "CUBLAS_STATUS_SUCCESS"
	case C.CUBLAS_STATUS_NOT_INITIALIZED:
		return "CUBLAS_STATUS_NOT_INITIALIZED"
	case C.CUBLAS_STATUS_ALLOC_FAILED:
		return "CUBLAS_STATUS_ALLOC_FAILED"
	case C.CUBLAS_STATUS_INVALID_VALUE:
		return "CUBLAS_STATUS_INVALID_VALUE"
	case C.CUBLAS_STATUS_ARCH_MISMATCH:
		return "CUBLAS_STATUS_ARCH_MISMATCH"
	case C.CUBLAS_STATUS_MAPPING_ERROR:
		return "CUBLAS_STATUS_MAPPING_ERROR"
	case C.CUBLAS_STATUS_EXECUTION_FAILED:
		return "CUBLAS_STATUS_EXECUTION_FAILED"
	case C.CUBLAS_STATUS_INTERNAL_ERROR:
		return "CUBLAS_STATUS_INTERNAL_ERROR"
	case C.CUBLAS_STATUS_NOT_SUPPORTED:
		return "CUBLAS_STATUS_NOT_SUPPORTED"
	default:
		return fmt.Sprintf("CUBLAS_STATUS(%d)", int(st))
	}
}

func cudaErr(op string, st C.cudaError_t) error {
	return sinew.RuntimeFault(op, errors.New(C.GoString(C.cudaGetErrorString(st))))
}
