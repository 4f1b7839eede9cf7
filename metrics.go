package sinew

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sinew_queue_tasks_total",
		Help: "Total number of tasks executed by queue workers",
	}, []string{"device"})

	faultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sinew_queue_faults_total",
		Help: "Total number of faults collected by queues",
	}, []string{"kind"})

	queuesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sinew_queues_active",
		Help: "Number of live queues",
	})

	buffersActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sinew_buffers_active",
		Help: "Number of live device buffers",
	})

	bufferBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sinew_buffer_bytes",
		Help: "Total host staging bytes held by live buffers",
	})
)
