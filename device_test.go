package sinew

import (
	"strings"
	"testing"
)

func TestDevicesHostAlwaysFirst(t *testing.T) {
	devs := Devices()
	if len(devs) == 0 {
		t.Fatal("expected at least the host device")
	}

	host := devs[0]
	if host.ID() != 0 {
		t.Errorf("host device id = %d, want 0", host.ID())
	}
	if host.Kind() != KindCPU {
		t.Errorf("host device kind = %v, want cpu", host.Kind())
	}
	if !host.IsHost() {
		t.Error("host device should report IsHost")
	}
	if !strings.HasPrefix(host.String(), "cpu:0") {
		t.Errorf("host device string = %q, want cpu:0 prefix", host.String())
	}
	if host.Name() == "" {
		t.Error("host device has no name")
	}
}

func TestDevicesStable(t *testing.T) {
	first := Devices()
	second := Devices()
	if len(first) != len(second) {
		t.Fatalf("enumeration changed size: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("device %d changed identity between enumerations", i)
		}
	}
}

func TestByKind(t *testing.T) {
	cpus := ByKind(KindCPU)
	if len(cpus) != 1 {
		t.Fatalf("expected exactly one cpu device, got %d", len(cpus))
	}
	if !cpus[0].IsHost() {
		t.Error("cpu device should be the host")
	}
}

func TestDefaultFallsBackToHost(t *testing.T) {
	if len(ByKind(KindCUDA)) > 0 {
		t.Skip("CUDA devices present")
	}
	if d := Default(); !d.IsHost() {
		t.Errorf("Default() = %v, want the host device", d)
	}
}

func TestDeviceKindString(t *testing.T) {
	cases := map[DeviceKind]string{
		KindCPU:        "cpu",
		KindCUDA:       "cuda",
		DeviceKind(99): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("DeviceKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestHostStreamIsNoop(t *testing.T) {
	s, err := hostOps{}.NewStream()
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	if s.Native() != nil {
		t.Error("host stream should have no native handle")
	}
	if err := s.Synchronize(); err != nil {
		t.Errorf("Synchronize: %v", err)
	}
	if err := s.Destroy(); err != nil {
		t.Errorf("Destroy: %v", err)
	}
}
