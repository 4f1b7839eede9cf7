package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sinew_handle_cache_hits_total",
		Help: "Total number of native handle acquisitions served from cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sinew_handle_cache_misses_total",
		Help: "Total number of native handle creations",
	})

	nativeCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sinew_native_calls_total",
		Help: "Total number of native BLAS invocations",
	}, []string{"backend", "routine"})

	nativeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sinew_native_call_failures_total",
		Help: "Total number of native BLAS invocations returning a non-success status",
	}, []string{"backend", "routine"})
)

// CountCall records one native invocation.
func CountCall(backendName, routine string) {
	nativeCalls.WithLabelValues(backendName, routine).Inc()
}

// CountFailure records one failed native invocation.
func CountFailure(backendName, routine string) {
	nativeFailures.WithLabelValues(backendName, routine).Inc()
}
