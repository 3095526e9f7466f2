// File: control/prometheus.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus bridge for executor statistics. The collector reads a fresh
// snapshot on every scrape, so no background goroutine is needed.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-sync/concurrency"
)

// StatsSource produces executor statistics snapshots.
type StatsSource interface {
	Snapshot() concurrency.Stats
}

// Ensure compile-time interface compliance.
var _ prometheus.Collector = (*ExecutorCollector)(nil)

// ExecutorCollector exposes executor counters as Prometheus metrics.
type ExecutorCollector struct {
	source StatsSource

	submitted  *prometheus.Desc
	executed   *prometheus.Desc
	stolen     *prometheus.Desc
	overflowed *prometheus.Desc
	panicked   *prometheus.Desc
	workers    *prometheus.Desc
}

// NewExecutorCollector creates a collector for one executor. pool labels
// every metric so multiple executors can share a registry.
func NewExecutorCollector(pool string, source StatsSource) *ExecutorCollector {
	labels := prometheus.Labels{"pool": pool}
	return &ExecutorCollector{
		source: source,
		submitted: prometheus.NewDesc(
			"hioload_executor_tasks_submitted_total",
			"Tasks accepted by Submit.", nil, labels),
		executed: prometheus.NewDesc(
			"hioload_executor_tasks_executed_total",
			"Tasks run to completion.", nil, labels),
		stolen: prometheus.NewDesc(
			"hioload_executor_tasks_stolen_total",
			"Tasks taken from a sibling worker's queue.", nil, labels),
		overflowed: prometheus.NewDesc(
			"hioload_executor_tasks_overflowed_total",
			"Tasks that spilled to the global queue.", nil, labels),
		panicked: prometheus.NewDesc(
			"hioload_executor_tasks_panicked_total",
			"Tasks that panicked and were isolated.", nil, labels),
		workers: prometheus.NewDesc(
			"hioload_executor_workers",
			"Current worker count.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *ExecutorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.executed
	ch <- c.stolen
	ch <- c.overflowed
	ch <- c.panicked
	ch <- c.workers
}

// Collect implements prometheus.Collector.
func (c *ExecutorCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.executed, prometheus.CounterValue, float64(s.Executed))
	ch <- prometheus.MustNewConstMetric(c.stolen, prometheus.CounterValue, float64(s.Stolen))
	ch <- prometheus.MustNewConstMetric(c.overflowed, prometheus.CounterValue, float64(s.Overflowed))
	ch <- prometheus.MustNewConstMetric(c.panicked, prometheus.CounterValue, float64(s.Panicked))
	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(s.Workers))
}
