package sinew

import (
	"errors"
	"fmt"
)

// FaultKind classifies a dispatch or runtime failure.
type FaultKind int

const (
	// FaultOverflow: a size/stride combination does not fit the native
	// integer width. Raised before any device work is enqueued.
	FaultOverflow FaultKind = iota

	// FaultBackendUnavailable: no native backend is registered for the
	// device a queue targets.
	FaultBackendUnavailable

	// FaultContextBinding: the native context behind a queue could not be
	// acquired or a buffer is bound to a different device's context.
	FaultContextBinding

	// FaultNativeCall: the vendor library returned a non-success status.
	// Terminal for that call; never retried here.
	FaultNativeCall

	// FaultRuntime: a failure raised by the task runtime itself, outside
	// the direct call stack (surfaced when the queue is drained).
	FaultRuntime

	// FaultUnsupported: the selected backend cannot express the requested
	// routine/argument combination.
	FaultUnsupported
)

func (k FaultKind) String() string {
	switch k {
	case FaultOverflow:
		return "overflow"
	case FaultBackendUnavailable:
		return "backend-unavailable"
	case FaultContextBinding:
		return "context-binding"
	case FaultNativeCall:
		return "native-call"
	case FaultRuntime:
		return "runtime"
	case FaultUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Fault is the error type surfaced by the dispatch layer and the queue
// runtime. Native-call faults carry the vendor status code.
type Fault struct {
	Kind    FaultKind
	Op      string // routine or runtime operation name
	Code    int64  // native status code, FaultNativeCall only
	Message string
	Err     error // wrapped cause, may be nil
}

func (f *Fault) Error() string {
	switch {
	case f.Kind == FaultNativeCall && f.Message != "":
		return fmt.Sprintf("sinew: %s: %s failed with native status %d (%s)", f.Kind, f.Op, f.Code, f.Message)
	case f.Kind == FaultNativeCall:
		return fmt.Sprintf("sinew: %s: %s failed with native status %d", f.Kind, f.Op, f.Code)
	case f.Message != "" && f.Err != nil:
		return fmt.Sprintf("sinew: %s: %s: %s: %v", f.Kind, f.Op, f.Message, f.Err)
	case f.Message != "":
		return fmt.Sprintf("sinew: %s: %s: %s", f.Kind, f.Op, f.Message)
	case f.Err != nil:
		return fmt.Sprintf("sinew: %s: %s: %v", f.Kind, f.Op, f.Err)
	default:
		return fmt.Sprintf("sinew: %s: %s", f.Kind, f.Op)
	}
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// OverflowFault reports arguments that exceed the native integer width.
func OverflowFault(op, format string, args ...any) *Fault {
	return &Fault{Kind: FaultOverflow, Op: op, Message: fmt.Sprintf(format, args...)}
}

// UnavailableFault reports a missing native backend.
func UnavailableFault(op, format string, args ...any) *Fault {
	return &Fault{Kind: FaultBackendUnavailable, Op: op, Message: fmt.Sprintf(format, args...)}
}

// BindingFault reports a failed native context acquisition.
func BindingFault(op string, err error, format string, args ...any) *Fault {
	return &Fault{Kind: FaultContextBinding, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// NativeFault wraps a non-success vendor status code. name is the vendor's
// symbolic status name, empty when unknown.
func NativeFault(op string, code int64, name string) *Fault {
	return &Fault{Kind: FaultNativeCall, Op: op, Code: code, Message: name}
}

// RuntimeFault wraps a failure raised by the task runtime.
func RuntimeFault(op string, err error) *Fault {
	return &Fault{Kind: FaultRuntime, Op: op, Err: err}
}

// UnsupportedFault reports a routine/argument combination the backend
// cannot express.
func UnsupportedFault(op, format string, args ...any) *Fault {
	return &Fault{Kind: FaultUnsupported, Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsFault reports whether err is (or wraps) a Fault of the given kind.
func IsFault(err error, kind FaultKind) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == kind
	}
	return false
}
