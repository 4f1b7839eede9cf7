package sinew

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestBufferReadWriteRoundTrip(t *testing.T) {
	host := ByKind(KindCPU)[0]

	b, err := NewBufferFrom(host, []float64{1.5, -2.5, 3.25})
	if err != nil {
		t.Fatalf("NewBufferFrom: %v", err)
	}
	defer b.Release()

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if b.Device() != host {
		t.Error("buffer bound to wrong device")
	}

	got, err := b.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, want := range []float64{1.5, -2.5, 3.25} {
		if got[i] != want {
			t.Errorf("element %d: got %v, want %v", i, got[i], want)
		}
	}

	if err := b.Write([]float64{9, 8, 7}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err = b.Read()
	if err != nil {
		t.Fatalf("Read after Write: %v", err)
	}
	for i, want := range []float64{9, 8, 7} {
		if got[i] != want {
			t.Errorf("element %d after write: got %v, want %v", i, got[i], want)
		}
	}
}

func TestBufferZeroInitialized(t *testing.T) {
	b, err := NewBuffer[complex128](ByKind(KindCPU)[0], 16)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	defer b.Release()

	got, err := b.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, v := range got {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestBufferRejectsNonPositiveLength(t *testing.T) {
	if _, err := NewBuffer[float32](ByKind(KindCPU)[0], 0); !IsFault(err, FaultRuntime) {
		t.Errorf("NewBuffer(0) = %v, want runtime fault", err)
	}
	if _, err := NewBuffer[float32](ByKind(KindCPU)[0], -4); !IsFault(err, FaultRuntime) {
		t.Errorf("NewBuffer(-4) = %v, want runtime fault", err)
	}
}

func TestBufferWriteLengthMismatch(t *testing.T) {
	b, err := NewBuffer[float32](ByKind(KindCPU)[0], 4)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	defer b.Release()

	if err := b.Write([]float32{1, 2}); !IsFault(err, FaultRuntime) {
		t.Errorf("short Write = %v, want runtime fault", err)
	}
}

func TestBufferAcquireOutsideTask(t *testing.T) {
	b, err := NewBuffer[float32](ByKind(KindCPU)[0], 4)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	defer b.Release()

	if _, err := b.Acquire(nil, ReadOnly); !IsFault(err, FaultRuntime) {
		t.Errorf("Acquire(nil) = %v, want runtime fault", err)
	}
}

func TestBufferTaskAccess(t *testing.T) {
	q := hostQueue(t)

	b, err := NewBufferFrom(q.Device(), []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewBufferFrom: %v", err)
	}
	defer b.Release()

	ev := q.Submit("test.scale", func(task *Task) error {
		r, err := b.Acquire(task, ReadWrite)
		if err != nil {
			return err
		}
		if r.Len() != 3 {
			t.Errorf("resolved length = %d, want 3", r.Len())
		}
		s := r.Slice()
		for i := range s {
			s[i] *= 2
		}
		return nil
	})
	if err := ev.Wait(); err != nil {
		t.Fatalf("task: %v", err)
	}

	got, err := b.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, want := range []float64{2, 4, 6} {
		if got[i] != want {
			t.Errorf("element %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestBufferResolvedGuardPanics(t *testing.T) {
	q := hostQueue(t)

	b, err := NewBuffer[float32](q.Device(), 4)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	defer b.Release()

	leak := make(chan *Resolved[float32], 1)
	ev := q.Submit("test.leak", func(task *Task) error {
		r, err := b.Acquire(task, ReadOnly)
		if err != nil {
			return err
		}
		leak <- r
		return nil
	})
	if err := ev.Wait(); err != nil {
		t.Fatalf("task: %v", err)
	}

	r := <-leak
	defer func() {
		if recover() == nil {
			t.Error("expected panic using a resolved accessor after its task returned")
		}
	}()
	r.Ptr()
}

func TestBufferStagingAccounted(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer alloc.AssertSize(t, 0)

	b, err := NewBufferFromIn(alloc, ByKind(KindCPU)[0], []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewBufferFromIn: %v", err)
	}

	if _, err := b.Read(); err != nil {
		t.Fatalf("Read: %v", err)
	}
	b.Release()
}

func TestBufferReleaseIdempotent(t *testing.T) {
	b, err := NewBuffer[float64](ByKind(KindCPU)[0], 4)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	b.Release()
	b.Release()

	if _, err := b.Read(); !IsFault(err, FaultRuntime) {
		t.Errorf("Read after Release = %v, want runtime fault", err)
	}
	if err := b.Write([]float64{1, 2, 3, 4}); !IsFault(err, FaultRuntime) {
		t.Errorf("Write after Release = %v, want runtime fault", err)
	}
}
