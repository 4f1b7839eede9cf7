package sinew

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/rs/zerolog/log"
)

// DeviceKind identifies the class of compute device behind a queue.
type DeviceKind int

const (
	KindCPU DeviceKind = iota
	KindCUDA
)

func (k DeviceKind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindCUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// DeviceInfo describes one discoverable device.
type DeviceInfo struct {
	Kind     DeviceKind
	Ordinal  int    // kind-local index (CUDA device ordinal; 0 for the host)
	Name     string
	TotalMem int64 // bytes, 0 when unknown
}

// Stream is a native ordered execution channel bound to one queue. Host
// devices use a no-op stream because tasks complete on the worker itself.
type Stream interface {
	// Native returns the vendor stream handle, nil for host streams.
	Native() unsafe.Pointer

	// Synchronize blocks until all work submitted to the stream completed.
	Synchronize() error

	// Destroy releases the native stream.
	Destroy() error
}

// Memory is one native device allocation.
type Memory interface {
	// Ptr returns the device address.
	Ptr() unsafe.Pointer

	// Upload copies host bytes to the device allocation.
	Upload(src []byte) error

	// Download copies the device allocation back into host bytes.
	Download(dst []byte) error

	// Free releases the allocation. Safe to call once.
	Free()
}

// DeviceOps is what an opened device offers the runtime.
type DeviceOps interface {
	// NewStream creates a native stream for one queue.
	NewStream() (Stream, error)

	// Close releases the opened device.
	Close() error
}

// Allocator is implemented by DeviceOps of devices with their own memory.
// Host devices do not implement it; their buffers live in host memory only.
type Allocator interface {
	Alloc(bytes int64) (Memory, error)
}

// Driver discovers and opens devices of one kind. Backends register a
// Driver from init; registration after the first Devices call is ignored.
type Driver interface {
	Kind() DeviceKind
	Probe() []DeviceInfo
	Open(info DeviceInfo) (DeviceOps, error)
}

// Device is one opened compute device. All queues and buffers reference
// exactly one Device.
type Device struct {
	id   int
	info DeviceInfo
	ops  DeviceOps
}

func (d *Device) ID() int          { return d.id }
func (d *Device) Kind() DeviceKind { return d.info.Kind }
func (d *Device) Name() string     { return d.info.Name }
func (d *Device) Info() DeviceInfo { return d.info }

// IsHost reports whether the device shares the host address space.
func (d *Device) IsHost() bool { return d.info.Kind == KindCPU }

// Ops exposes the opened driver capabilities. Backends use it to reach
// vendor-specific state (allocation, native ordinals).
func (d *Device) Ops() DeviceOps { return d.ops }

func (d *Device) String() string {
	return fmt.Sprintf("%s:%d (%s)", d.info.Kind, d.info.Ordinal, d.info.Name)
}

var (
	regMu   sync.Mutex
	drivers []Driver

	devOnce sync.Once
	devs    []*Device
)

// RegisterDriver adds a device driver. Call from init.
func RegisterDriver(d Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	drivers = append(drivers, d)
	log.Debug().Str("kind", d.Kind().String()).Msg("device driver registered")
}

// Devices enumerates all usable devices. The host CPU device is always
// present and always first. Enumeration happens once; failures to open a
// probed device are logged and skipped.
func Devices() []*Device {
	devOnce.Do(func() {
		devs = append(devs, &Device{
			id: 0,
			info: DeviceInfo{
				Kind:    KindCPU,
				Ordinal: 0,
				Name:    fmt.Sprintf("host (%d threads)", runtime.NumCPU()),
			},
			ops: hostOps{},
		})

		regMu.Lock()
		registered := make([]Driver, len(drivers))
		copy(registered, drivers)
		regMu.Unlock()

		for _, drv := range registered {
			for _, info := range drv.Probe() {
				ops, err := drv.Open(info)
				if err != nil {
					log.Error().Err(err).Str("device", info.Name).Msg("failed to open device")
					continue
				}
				devs = append(devs, &Device{id: len(devs), info: info, ops: ops})
			}
		}
	})
	return devs
}

// Default returns the preferred device: the first CUDA device when one
// enumerated, the host device otherwise.
func Default() *Device {
	all := Devices()
	for _, d := range all {
		if d.Kind() == KindCUDA {
			return d
		}
	}
	return all[0]
}

// ByKind returns every enumerated device of the given kind.
func ByKind(k DeviceKind) []*Device {
	var out []*Device
	for _, d := range Devices() {
		if d.Kind() == k {
			out = append(out, d)
		}
	}
	return out
}

// hostOps backs the built-in CPU device. It has no native allocator; host
// buffers resolve straight to their staging memory.
type hostOps struct{}

func (hostOps) NewStream() (Stream, error) { return hostStream{}, nil }
func (hostOps) Close() error               { return nil }

// hostStream is a no-op: host tasks are complete by the time the queue
// worker returns from them.
type hostStream struct{}

func (hostStream) Native() unsafe.Pointer { return nil }
func (hostStream) Synchronize() error     { return nil }
func (hostStream) Destroy() error         { return nil }
