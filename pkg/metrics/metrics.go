// Package metrics collects transfer and reconciliation metrics.
//
// Metrics are kept on a private prometheus registry. Short-lived CLI invocations publish them
// by writing the registry to a file picked up by the node exporter textfile collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "prebuilt"

// Metrics for a single invocation. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	transferDuration *prometheus.HistogramVec
	reconciliations  *prometheus.CounterVec
	installedBuild   *prometheus.GaugeVec
}

// New metrics, registered on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transferDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_duration_seconds",
			Help:      "Wall clock time of transfer tool runs.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1s to ~2h15m
		}, []string{"operation", "protocol", "success"}),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Version reconciliations by final state.",
		}, []string{"state"}),
		installedBuild: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "installed_build_info",
			Help:      "Build currently installed, as a label.",
		}, []string{"build_id"}),
	}
	m.registry.MustRegister(m.transferDuration, m.reconciliations, m.installedBuild)
	return m
}

// Registry holding all metrics
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveTransfer records a transfer tool run
func (m *Metrics) ObserveTransfer(operation, protocol string, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transferDuration.WithLabelValues(operation, protocol, strconv.FormatBool(success)).Observe(elapsed.Seconds())
}

// ObserveReconciliation records the final state of a reconciliation
func (m *Metrics) ObserveReconciliation(state string) {
	if m == nil {
		return
	}
	m.reconciliations.WithLabelValues(state).Inc()
}

// SetInstalledBuild publishes the installed build id
func (m *Metrics) SetInstalledBuild(buildID string) {
	if m == nil {
		return
	}
	m.installedBuild.Reset()
	m.installedBuild.WithLabelValues(buildID).Set(1)
}

// WriteTextfile writes all metrics to path, in the prometheus text format
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
