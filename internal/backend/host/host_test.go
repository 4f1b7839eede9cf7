package host

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/blas/gonum"

	sinew "github.com/23skdu/longbow-sinew"
)

func hostQueue(t *testing.T) *sinew.Queue {
	t.Helper()
	q, err := sinew.NewQueue(sinew.ByKind(sinew.KindCPU)[0])
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func TestHandleBoundOncePerDevice(t *testing.T) {
	be := New("adapter-under-test", gonum.Implementation{})
	q1 := hostQueue(t)
	q2 := hostQueue(t)

	h1, err := be.handle(q1)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	h2, err := be.handle(q2)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if h1 != h2 {
		t.Errorf("two queues on one device bound different handles: %p %p", h1, h2)
	}
	if h1.dev != q1.Device().ID() {
		t.Errorf("handle bound to device %d, queue targets %d", h1.dev, q1.Device().ID())
	}
}

func TestLaunchRunsOnQueue(t *testing.T) {
	be := New("adapter-under-test", gonum.Implementation{})
	q := hostQueue(t)

	var got *Handle
	if err := be.launch(q, "Probe", func(_ *sinew.Task, h *Handle) error {
		got = h
		return nil
	}); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if err := q.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got == nil {
		t.Fatal("launched task never ran")
	}

	want, err := be.handle(q)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got != want {
		t.Errorf("task saw handle %p, cache holds %p", got, want)
	}
}

func TestLaunchErrorSurfacesThroughQueue(t *testing.T) {
	be := New("adapter-under-test", gonum.Implementation{})
	q := hostQueue(t)

	fault := sinew.RuntimeFault("Probe", errors.New("executor refused"))
	if err := be.launch(q, "Probe", func(_ *sinew.Task, _ *Handle) error {
		return fault
	}); err != nil {
		t.Fatalf("launch returned synchronously: %v", err)
	}

	err := q.Wait()
	if err == nil {
		t.Fatal("Wait returned nil, want the launched task's fault")
	}
	if !sinew.IsFault(err, sinew.FaultRuntime) {
		t.Errorf("Wait error = %v, want a runtime fault", err)
	}
}
