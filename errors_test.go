package sinew

import (
	"errors"
	"strings"
	"testing"
)

func TestFaultConstructors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind FaultKind
	}{
		{"overflow", OverflowFault("sasum", "n %d exceeds the native index width", int64(1)<<40), FaultOverflow},
		{"unavailable", UnavailableFault("sdot", "no backend registered for %s", "cuda"), FaultBackendUnavailable},
		{"binding", BindingFault("sgemm", errors.New("cause"), "buffer bound to %s", "cpu:0"), FaultContextBinding},
		{"native", NativeFault("daxpy", 13, "CUBLAS_STATUS_EXECUTION_FAILED"), FaultNativeCall},
		{"runtime", RuntimeFault("dcopy", errors.New("boom")), FaultRuntime},
		{"unsupported", UnsupportedFault("zgemv", "conjugate transpose is not expressible"), FaultUnsupported},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !IsFault(c.err, c.kind) {
				t.Fatalf("IsFault(%v, %v) = false", c.err, c.kind)
			}

			var f *Fault
			if !errors.As(c.err, &f) {
				t.Fatalf("errors.As failed for %v", c.err)
			}
			if f.Kind != c.kind {
				t.Errorf("kind = %v, want %v", f.Kind, c.kind)
			}
			if f.Op == "" {
				t.Error("fault carries no op")
			}

			msg := c.err.Error()
			if !strings.HasPrefix(msg, "sinew: ") {
				t.Errorf("message %q missing package prefix", msg)
			}
			if !strings.Contains(msg, f.Kind.String()) {
				t.Errorf("message %q missing kind %q", msg, f.Kind)
			}
			if !strings.Contains(msg, f.Op) {
				t.Errorf("message %q missing op %q", msg, f.Op)
			}
		})
	}
}

func TestNativeFaultCarriesStatus(t *testing.T) {
	err := NativeFault("sgemm", 14, "CUBLAS_STATUS_INTERNAL_ERROR")

	var f *Fault
	if !errors.As(err, &f) {
		t.Fatal("errors.As failed")
	}
	if f.Code != 14 {
		t.Errorf("code = %d, want 14", f.Code)
	}
	msg := err.Error()
	if !strings.Contains(msg, "14") || !strings.Contains(msg, "CUBLAS_STATUS_INTERNAL_ERROR") {
		t.Errorf("message %q should name the status code and symbol", msg)
	}
}

func TestFaultUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := RuntimeFault("wait", cause)

	if !errors.Is(err, cause) {
		t.Error("fault should unwrap to its cause")
	}
	if IsFault(cause, FaultRuntime) {
		t.Error("bare cause should not match any fault kind")
	}
}

func TestIsFaultDistinguishesKinds(t *testing.T) {
	err := OverflowFault("idamax", "stride too large")
	if IsFault(err, FaultRuntime) {
		t.Error("overflow fault must not match runtime kind")
	}
	if IsFault(nil, FaultOverflow) {
		t.Error("nil must not match any kind")
	}
}

func TestFaultKindStringUnknown(t *testing.T) {
	if got := FaultKind(99).String(); got != "unknown" {
		t.Errorf("FaultKind(99).String() = %q, want unknown", got)
	}
}
