//go:build cgo

package cblas

// This file registers the netlib CBLAS backend, which binds the system
// BLAS (Accelerate on macOS, OpenBLAS on Linux) when CGO is available. It
// outranks the reference backend for CPU queues.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/netlib/blas/netlib"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
	"github.com/23skdu/longbow-sinew/internal/backend/host"
)

// Name is the dispatch name for queue backend pinning.
const Name = "cblas"

func init() {
	blas.Register(sinew.KindCPU, 20, host.New(Name, netlib.Implementation{}))
	log.Debug().Msg("⚡ CGO/BLAS Acceleration Enabled (netlib)")
}
