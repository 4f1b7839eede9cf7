//go:build !cgo

// Package cblas binds the system BLAS through netlib when built with CGO.
// Without CGO it registers nothing and CPU queues fall through to the
// reference backend.
package cblas

// Name matches the cgo build so callers can pin it unconditionally; the
// pin faults as unavailable when this stub is compiled in.
const Name = "cblas"
