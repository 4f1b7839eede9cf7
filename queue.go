package sinew

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Event tracks completion of one submitted task. Wait returns the task's
// fault, if any. For device queues completion means the native work was
// enqueued on the stream, not that the device finished it; callers needing
// device completion synchronize the queue's stream afterwards.
type Event struct {
	done chan struct{}
	err  error
}

func newEvent() *Event {
	return &Event{done: make(chan struct{})}
}

func (e *Event) complete(err error) {
	e.err = err
	close(e.done)
}

// Wait blocks until the task ran and returns its fault, if any.
func (e *Event) Wait() error {
	<-e.done
	return e.err
}

// Task is the execution scope of one submitted operation. Resolved buffer
// accessors obtained through it are valid only until the task function
// returns.
type Task struct {
	queue  *Queue
	op     string
	event  *Event
	active bool
}

// Queue returns the owning queue.
func (t *Task) Queue() *Queue { return t.queue }

// Op returns the submitted operation name.
func (t *Task) Op() string { return t.op }

// QueueOption configures queue creation.
type QueueOption func(*Queue)

// WithFaultHandler installs a callback invoked for every task fault, in
// addition to the queue collecting it for Wait.
func WithFaultHandler(fn func(error)) QueueOption {
	return func(q *Queue) { q.onFault = fn }
}

// WithBackend pins the queue to a named BLAS implementation instead of the
// highest-priority one registered for the device kind.
func WithBackend(name string) QueueOption {
	return func(q *Queue) { q.backendPref = name }
}

// Queue is an in-order stream of asynchronous operations bound to one
// device. A dedicated worker goroutine executes submitted tasks FIFO, so
// operations touching the same buffers retain program order. Work on
// different queues is unordered.
type Queue struct {
	dev         *Device
	stream      Stream
	backendPref string

	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.Mutex
	faults []error
	closed bool

	onFault func(error)
}

// NewQueue creates a queue on dev and starts its worker. Device queues own
// one native stream for their lifetime.
func NewQueue(dev *Device, opts ...QueueOption) (*Queue, error) {
	if dev == nil {
		dev = Default()
	}
	stream, err := dev.ops.NewStream()
	if err != nil {
		return nil, BindingFault("queue", err, "stream creation on %s", dev)
	}
	q := &Queue{
		dev:    dev,
		stream: stream,
		tasks:  make(chan func(), 64),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	queuesActive.Inc()
	log.Debug().Str("device", dev.String()).Msg("queue created")
	return q, nil
}

func (q *Queue) run() {
	for fn := range q.tasks {
		fn()
	}
}

// Device returns the device this queue targets.
func (q *Queue) Device() *Device { return q.dev }

// Stream returns the queue's native stream.
func (q *Queue) Stream() Stream { return q.stream }

// BackendPreference returns the pinned implementation name, or "".
func (q *Queue) BackendPreference() string { return q.backendPref }

// Submit enqueues fn for FIFO execution and returns its Event. Submit
// blocks only while the task channel is full. Panics inside fn are
// recovered and surfaced as runtime faults rather than killing the worker.
func (q *Queue) Submit(op string, fn func(*Task) error) *Event {
	ev := newEvent()

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		err := RuntimeFault(op, errors.New("submit on closed queue"))
		q.recordFault(err)
		ev.complete(err)
		return ev
	}
	q.wg.Add(1)
	q.mu.Unlock()

	q.tasks <- func() {
		defer q.wg.Done()
		t := &Task{queue: q, op: op, event: ev, active: true}
		err := runTask(t, fn)
		t.active = false
		if err != nil {
			q.recordFault(err)
		}
		tasksTotal.WithLabelValues(q.dev.Kind().String()).Inc()
		ev.complete(err)
	}
	return ev
}

func runTask(t *Task, fn func(*Task) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = RuntimeFault(t.op, fmt.Errorf("task panic: %v", r))
		}
	}()
	return fn(t)
}

func (q *Queue) recordFault(err error) {
	var f *Fault
	kind := "unknown"
	if errors.As(err, &f) {
		kind = f.Kind.String()
	}
	faultsTotal.WithLabelValues(kind).Inc()
	log.Error().Err(err).Str("device", q.dev.String()).Msg("queue fault")

	q.mu.Lock()
	q.faults = append(q.faults, err)
	handler := q.onFault
	q.mu.Unlock()

	if handler != nil {
		handler(err)
	}
}

// Wait drains every pending task, synchronizes the native stream, and
// returns the faults collected since the previous Wait joined into one
// error (nil when the queue is clean).
func (q *Queue) Wait() error {
	q.wg.Wait()
	if err := q.stream.Synchronize(); err != nil {
		q.recordFault(RuntimeFault("wait", err))
	}

	q.mu.Lock()
	collected := q.faults
	q.faults = nil
	q.mu.Unlock()
	return errors.Join(collected...)
}

// Close drains the queue, stops the worker, and destroys the native
// stream. The queue accepts no work afterwards. Close is idempotent.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	err := q.Wait()
	close(q.tasks)
	if derr := q.stream.Destroy(); derr != nil && err == nil {
		err = derr
	}
	queuesActive.Dec()
	return err
}
