package sinew

import (
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

// AccessMode declares how a task uses a buffer it resolves.
type AccessMode int

const (
	ReadOnly AccessMode = iota
	WriteOnly
	ReadWrite
)

type bufState int

const (
	stateHost   bufState = iota // host staging is authoritative
	stateDevice                 // device allocation is authoritative
	stateSynced                 // both copies valid
)

// Buffer is a caller-owned array of element type T, staged in host memory
// and mirrored into device memory on first device access. Host staging
// comes from an arrow allocator, so it is 64-byte aligned and accountable
// in tests.
//
// Write and read-write access from a task marks the device copy
// authoritative; the host copy is stale until Read or Write synchronizes
// it back. Nothing here forces synchronization between queues sharing a
// buffer.
type Buffer[T Element] struct {
	dev     *Device
	n       int64
	hostBuf *memory.Buffer
	host    []T
	mem     Memory

	mu         sync.Mutex
	state      bufState
	lastEv     *Event
	lastStream Stream
	released   bool
}

// NewBuffer allocates a zeroed buffer of n elements on dev using the
// default arrow allocator.
func NewBuffer[T Element](dev *Device, n int64) (*Buffer[T], error) {
	return NewBufferIn[T](memory.DefaultAllocator, dev, n)
}

// NewBufferIn is NewBuffer with an explicit arrow allocator, so tests can
// account every staging byte with memory.CheckedAllocator.
func NewBufferIn[T Element](alloc memory.Allocator, dev *Device, n int64) (*Buffer[T], error) {
	if dev == nil {
		dev = Default()
	}
	if n <= 0 {
		return nil, RuntimeFault("buffer", errors.New("buffer length must be positive"))
	}
	size := n * elemSize[T]()
	hb := memory.NewResizableBuffer(alloc)
	hb.Resize(int(size))

	raw := hb.Bytes()
	host := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	for i := range host {
		var zero T
		host[i] = zero
	}

	buffersActive.Inc()
	bufferBytes.Add(float64(size))
	return &Buffer[T]{dev: dev, n: n, hostBuf: hb, host: host, state: stateHost}, nil
}

// NewBufferFrom allocates a buffer on dev initialized with a copy of data.
func NewBufferFrom[T Element](dev *Device, data []T) (*Buffer[T], error) {
	return NewBufferFromIn(memory.DefaultAllocator, dev, data)
}

// NewBufferFromIn is NewBufferFrom with an explicit arrow allocator.
func NewBufferFromIn[T Element](alloc memory.Allocator, dev *Device, data []T) (*Buffer[T], error) {
	b, err := NewBufferIn[T](alloc, dev, int64(len(data)))
	if err != nil {
		return nil, err
	}
	copy(b.host, data)
	return b, nil
}

// Len returns the element count.
func (b *Buffer[T]) Len() int64 { return b.n }

// Device returns the device the buffer is bound to.
func (b *Buffer[T]) Device() *Device { return b.dev }

// Acquire resolves the buffer to memory usable inside task t. The returned
// accessor is valid only until the task function returns; holding it past
// that point panics on use. Device-kind buffers are allocated and migrated
// here, so the native pointer denotes valid device memory for the whole
// task.
func (b *Buffer[T]) Acquire(t *Task, mode AccessMode) (*Resolved[T], error) {
	if t == nil || !t.active {
		return nil, RuntimeFault("acquire", errors.New("buffer acquired outside a running task"))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil, RuntimeFault(t.op, errors.New("buffer already released"))
	}
	if b.dev != t.queue.dev {
		return nil, BindingFault(t.op, nil, "buffer bound to %s, queue targets %s", b.dev, t.queue.dev)
	}

	if b.dev.IsHost() {
		if mode != ReadOnly {
			b.noteWriter(t)
		}
		return &Resolved[T]{task: t, ptr: unsafe.Pointer(&b.host[0]), slice: b.host, n: b.n}, nil
	}

	if b.mem == nil {
		alloc, ok := b.dev.ops.(Allocator)
		if !ok {
			return nil, BindingFault(t.op, nil, "device %s exposes no allocator", b.dev)
		}
		m, err := alloc.Alloc(b.n * elemSize[T]())
		if err != nil {
			return nil, BindingFault(t.op, err, "device allocation failed")
		}
		b.mem = m
		// Last-resort reclaim if the owner never calls Release.
		runtime.SetFinalizer(b, func(b *Buffer[T]) {
			if !b.released && b.mem != nil {
				b.mem.Free()
			}
		})
	}

	if b.state == stateHost && mode != WriteOnly {
		if err := b.mem.Upload(b.hostBuf.Bytes()); err != nil {
			return nil, RuntimeFault(t.op, err)
		}
		b.state = stateSynced
	}
	if mode != ReadOnly {
		b.state = stateDevice
		b.noteWriter(t)
	}
	return &Resolved[T]{task: t, ptr: b.mem.Ptr(), n: b.n}, nil
}

// noteWriter records the task as the buffer's most recent writer so host
// reads can wait for it. Caller holds b.mu.
func (b *Buffer[T]) noteWriter(t *Task) {
	b.lastEv = t.event
	b.lastStream = t.queue.stream
}

// Read waits for the last writing operation, synchronizes the device copy
// back when needed, and returns a copy of the contents. Calling Read from
// inside a task on the writing queue deadlocks; read from host code only.
func (b *Buffer[T]) Read() ([]T, error) {
	if err := b.settle(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil, RuntimeFault("read", errors.New("buffer already released"))
	}
	if b.state == stateDevice {
		if err := b.mem.Download(b.hostBuf.Bytes()); err != nil {
			return nil, RuntimeFault("read", err)
		}
		b.state = stateSynced
	}
	out := make([]T, b.n)
	copy(out, b.host)
	return out, nil
}

// Write waits for in-flight work, replaces the contents with data, and
// marks the host copy authoritative.
func (b *Buffer[T]) Write(data []T) error {
	if int64(len(data)) != b.n {
		return RuntimeFault("write", errors.New("length mismatch"))
	}
	if err := b.settle(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return RuntimeFault("write", errors.New("buffer already released"))
	}
	copy(b.host, data)
	b.state = stateHost
	return nil
}

// settle blocks until the last recorded writer completed, including its
// native stream work.
func (b *Buffer[T]) settle() error {
	b.mu.Lock()
	ev, st := b.lastEv, b.lastStream
	b.mu.Unlock()
	if ev != nil {
		if err := ev.Wait(); err != nil {
			return err
		}
	}
	if st != nil {
		if err := st.Synchronize(); err != nil {
			return RuntimeFault("read", err)
		}
	}
	return nil
}

// Release frees the device allocation and the host staging memory. The
// buffer is unusable afterwards. Safe to call once.
func (b *Buffer[T]) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return
	}
	b.released = true
	if b.mem != nil {
		b.mem.Free()
		b.mem = nil
		runtime.SetFinalizer(b, nil)
	}
	bufferBytes.Sub(float64(b.n * elemSize[T]()))
	buffersActive.Dec()
	b.hostBuf.Release()
	b.host = nil
}

// Resolved is a task-scoped view of a buffer's memory. Its pointer is the
// native device address for device buffers and the host staging address
// otherwise.
type Resolved[T Element] struct {
	task  *Task
	ptr   unsafe.Pointer
	slice []T // nil when the memory is device-resident
	n     int64
}

// Ptr returns the resolved native address.
func (r *Resolved[T]) Ptr() unsafe.Pointer {
	r.guard()
	return r.ptr
}

// Slice returns the host view. It panics for device-resident memory; use
// Ptr for those.
func (r *Resolved[T]) Slice() []T {
	r.guard()
	if r.slice == nil {
		panic("sinew: device-resident buffer has no host slice")
	}
	return r.slice
}

// Len returns the element count.
func (r *Resolved[T]) Len() int64 { return r.n }

func (r *Resolved[T]) guard() {
	if !r.task.active {
		panic("sinew: resolved accessor used outside its task")
	}
}
