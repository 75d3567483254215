// Package metrics collects run counters in a private Prometheus registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	namespace = "dex"

	// LabelKind is the artifact kind label.
	LabelKind = "kind"
	// LabelOutcome is the write outcome label.
	LabelOutcome = "outcome"
	// LabelPass is the pass name label.
	LabelPass = "pass"
)

var _ ports.Metrics = (*Collector)(nil)

// Collector implements ports.Metrics.
type Collector struct {
	registry *prometheus.Registry

	artifactsWritten   *prometheus.CounterVec
	filesHashed        prometheus.Counter
	bytesHashed        prometheus.Counter
	descriptorsSkipped prometheus.Counter
	passDuration       *prometheus.GaugeVec
	mismatches         prometheus.Counter
}

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		artifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Generated files written, by kind and by what the write did to the file on disk.",
		}, []string{LabelKind, LabelOutcome}),
		filesHashed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_hashed_total",
			Help:      "Files whose digest was computed.",
		}),
		bytesHashed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_hashed_total",
			Help:      "Bytes read while computing digests.",
		}),
		descriptorsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "descriptors_skipped_total",
			Help:      "Package files too shallow in the tree to derive a coordinate.",
		}),
		passDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Wall time of the last run of each pass.",
		}, []string{LabelPass}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_mismatches_total",
			Help:      "Recorded digests that no longer match the tree.",
		}),
	}

	c.registry.MustRegister(
		c.artifactsWritten,
		c.filesHashed,
		c.bytesHashed,
		c.descriptorsSkipped,
		c.passDuration,
		c.mismatches,
	)

	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ArtifactWritten counts one generated file.
func (c *Collector) ArtifactWritten(kind domain.ArtifactKind, outcome domain.WriteOutcome) {
	c.artifactsWritten.WithLabelValues(string(kind), string(outcome)).Inc()
}

// FileHashed counts one hashed file.
func (c *Collector) FileHashed(size int64) {
	c.filesHashed.Inc()
	c.bytesHashed.Add(float64(size))
}

// DescriptorSkipped counts one shallow package file.
func (c *Collector) DescriptorSkipped() {
	c.descriptorsSkipped.Inc()
}

// PassCompleted records the duration of a pass.
func (c *Collector) PassCompleted(pass string, elapsed time.Duration) {
	c.passDuration.WithLabelValues(pass).Set(elapsed.Seconds())
}

// MismatchFound counts one verification mismatch.
func (c *Collector) MismatchFound() {
	c.mismatches.Inc()
}

// WriteTextfile writes the registry to path in the text exposition format,
// suitable for a node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
