// Package host adapts a gonum-interface BLAS implementation to the queue
// and buffer runtime. Both the pure-Go reference backend and the CBLAS
// cgo backend are instances of this adapter; they differ only in the
// executor they bind.
//
// Routine semantics follow the native dispatch conventions: magnitude
// reductions and scaling traverse with |incx|, index-of-extremum results
// are zero-based with degenerate traversal pinned to 0, and routines the
// bound executor lacks (iamin, complex Givens generation, real rotation
// of complex vectors) run as local host kernels.
package host

import (
	"gonum.org/v1/gonum/blas"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/internal/backend"
)

// BLAS is the executor surface an adapter binds: the four gonum routine
// sets. gonum's pure-Go implementation and the netlib CBLAS bindings both
// satisfy it.
type BLAS interface {
	blas.Float32
	blas.Float64
	blas.Complex64
	blas.Complex128
}

// Handle is the per-device bound executor, the host analog of a native
// library handle. Binding the same device twice yields the same Handle.
type Handle struct {
	impl BLAS
	dev  int
}

// Backend adapts one executor to the dispatch surface.
type Backend struct {
	name    string
	impl    BLAS
	handles *backend.Cache[int, *Handle]
}

// New builds an adapter around impl. name is the dispatch name callers pin
// with a queue backend preference.
func New(name string, impl BLAS) *Backend {
	be := &Backend{name: name, impl: impl}
	be.handles = backend.NewCache(func(dev int) (*Handle, error) {
		return &Handle{impl: impl, dev: dev}, nil
	})
	return be
}

func (be *Backend) Name() string { return be.name }

// handle binds the cached executor for the queue's device.
func (be *Backend) handle(q *sinew.Queue) (*Handle, error) {
	return be.handles.Get(q.Device().ID())
}

// launch counts the call and runs fn as one task on the queue, binding the
// executor handle first. Failures inside fn surface through the queue's
// fault collection, not the submitting caller.
func (be *Backend) launch(q *sinew.Queue, routine string, fn func(t *sinew.Task, h *Handle) error) error {
	backend.CountCall(be.name, routine)
	q.Submit(routine, func(t *sinew.Task) error {
		h, err := be.handle(q)
		if err != nil {
			backend.CountFailure(be.name, routine)
			return sinew.BindingFault(routine, err, "binding %s executor to device %d", be.name, q.Device().ID())
		}
		if err := fn(t, h); err != nil {
			backend.CountFailure(be.name, routine)
			return err
		}
		return nil
	})
	return nil
}

// absInc narrows a stride to the native int width, dropping direction.
func absInc(inc int64) int {
	if inc < 0 {
		return int(-inc)
	}
	return int(inc)
}
