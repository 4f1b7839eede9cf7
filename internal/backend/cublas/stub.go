//go:build !linux || !cuda

// Package cublas lowers dispatched routines onto NVIDIA cuBLAS. Without
// the cuda build tag it registers nothing: CUDA queues then fail over to
// whatever else is registered for the device kind, or fault as
// unavailable.
package cublas

// Name identifies this backend in route attributes and fault text.
const Name = "cublas"
