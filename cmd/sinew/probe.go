package main

import (
	"io"

	sinew "github.com/23skdu/longbow-sinew"
	"github.com/23skdu/longbow-sinew/blas"
)

// deviceReport is one -probe entry: an enumerated device plus the backends
// registered for its kind, best first.
type deviceReport struct {
	ID       int      `json:"id" cbor:"id"`
	Kind     string   `json:"kind" cbor:"kind"`
	Ordinal  int      `json:"ordinal" cbor:"ordinal"`
	Name     string   `json:"name" cbor:"name"`
	TotalMem int64    `json:"total_mem,omitempty" cbor:"total_mem,omitempty"`
	Backends []string `json:"backends" cbor:"backends"`
}

func buildProbe() []deviceReport {
	devs := sinew.Devices()
	out := make([]deviceReport, 0, len(devs))
	for _, d := range devs {
		out = append(out, deviceReport{
			ID:       d.ID(),
			Kind:     d.Kind().String(),
			Ordinal:  d.Info().Ordinal,
			Name:     d.Name(),
			TotalMem: d.Info().TotalMem,
			Backends: blas.Registered(d.Kind()),
		})
	}
	return out
}

func runProbe(w io.Writer, format string) error {
	return writeReport(w, format, buildProbe())
}

// activeBackend names the backend a queue on dev would dispatch to.
func activeBackend(dev *sinew.Device) string {
	if *flagBackend != "" {
		return *flagBackend
	}
	if names := blas.Registered(dev.Kind()); len(names) > 0 {
		return names[0]
	}
	return "none"
}
