// Package metrics counts configuration-time events of the transforms.
// Nothing here runs on the per-row path.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fft3v"

// Recorder holds the counters. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	configurations *prometheus.CounterVec
	tableLookups   *prometheus.CounterVec
	parallelJobs   *prometheus.CounterVec
}

// New creates the counters and registers them with reg when reg is not
// nil.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		configurations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "configurations_total",
			Help:      "Transforms configured, by transform and kernel kind.",
		}, []string{"transform", "kernel"}),
		tableLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_cache_lookups_total",
			Help:      "Shared table lookups by result (hit or miss).",
		}, []string{"result"}),
		parallelJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parallel_jobs_total",
			Help:      "Jobs handed out by the parallel 3-D executor, by phase.",
		}, []string{"phase"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{r.configurations, r.tableLookups, r.parallelJobs} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Configured counts one successful configuration.
func (r *Recorder) Configured(transform, kernel string) {
	if r == nil {
		return
	}

	r.configurations.WithLabelValues(transform, kernel).Inc()
}

// TableLookup counts one shared table cache lookup.
func (r *Recorder) TableLookup(hit bool) {
	if r == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}

	r.tableLookups.WithLabelValues(result).Inc()
}

// Jobs counts n jobs of a parallel phase.
func (r *Recorder) Jobs(phase string, n int) {
	if r == nil || n <= 0 {
		return
	}

	r.parallelJobs.WithLabelValues(phase).Add(float64(n))
}

// Snapshot returns every counter as "name{label=value,...}" -> value,
// for printing by command line tools.
func (r *Recorder) Snapshot() map[string]float64 {
	out := map[string]float64{}
	if r == nil {
		return out
	}

	vecs := []struct {
		name string
		vec  *prometheus.CounterVec
	}{
		{namespace + "_configurations_total", r.configurations},
		{namespace + "_table_cache_lookups_total", r.tableLookups},
		{namespace + "_parallel_jobs_total", r.parallelJobs},
	}

	for _, v := range vecs {
		ch := make(chan prometheus.Metric)

		go func() {
			v.vec.Collect(ch)
			close(ch)
		}()

		for m := range ch {
			var pb dto.Metric
			if err := m.Write(&pb); err != nil {
				continue
			}

			out[key(v.name, pb.GetLabel())] = pb.GetCounter().GetValue()
		}
	}

	return out
}

func key(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}

	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.GetName() + "=" + l.GetValue()
	}

	return name + "{" + strings.Join(parts, ",") + "}"
}
