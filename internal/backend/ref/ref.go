// Package ref registers the pure-Go reference backend. It is always
// available and anchors verification runs: every other backend is checked
// against its results.
package ref

import (
	"gonum.org/v1/gonum/blas/gonum"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
	"github.com/23skdu/longbow-sinew/internal/backend/host"
)

// Name is the dispatch name verification runs pin.
const Name = "reference"

var _ blas.Implementation = (*host.Backend)(nil)

var impl = host.New(Name, gonum.Implementation{})

func init() {
	blas.Register(sinew.KindCPU, 10, impl)
}
