// Package metric provides Prometheus metrics for buildmeta.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "buildmeta"

// Registry holds all buildmeta metrics.
type Registry struct {
	registry *prometheus.Registry

	Info        *prometheus.GaugeVec
	ProbeResult *prometheus.GaugeVec
	LastRun     prometheus.Gauge

	now func() time.Time
}

// NewRegistry creates a registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		now:      time.Now,
	}

	r.Info = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "info",
		Help:      "Build metadata of the source tree, always 1.",
	}, []string{"revision", "branch", "version", "build_dir"})

	r.ProbeResult = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "probe_result",
		Help:      "Result of the last pkg-config probe, 1 for found.",
	}, []string{"package"})

	r.LastRun = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the metrics were last written.",
	})

	r.registry.MustRegister(r.Info, r.ProbeResult, r.LastRun)
	return r
}

// SetInfo records the build metadata, replacing any earlier value.
func (r *Registry) SetInfo(revision, branch, version, buildDir string) {
	r.Info.Reset()
	r.Info.WithLabelValues(revision, branch, version, buildDir).Set(1)
}

// SetProbeResult records the outcome of probing pkg.
func (r *Registry) SetProbeResult(pkg string, found bool) {
	v := 0.0
	if found {
		v = 1
	}
	r.ProbeResult.WithLabelValues(pkg).Set(v)
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	r.LastRun.Set(float64(r.now().Unix()))
	return prometheus.WriteToTextfile(path, r.registry)
}
