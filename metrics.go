package fft3v

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/fft3v/internal/metrics"
)

// Metrics counts configuration events. A nil *Metrics records nothing.
type Metrics = metrics.Recorder

// NewMetrics creates the counters and registers them with reg, which may
// be nil to keep them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	return metrics.New(reg)
}
