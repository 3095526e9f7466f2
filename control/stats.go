// File: control/stats.go
// Author: momentics <momentics@gmail.com>
//
// Registry bridge for executor statistics. PublishStats flattens a
// snapshot into pool-prefixed keys, for consumers that want the generic
// MetricsRegistry surface instead of a Prometheus scrape.

package control

import "github.com/momentics/hioload-sync/concurrency"

// PublishStats records an executor snapshot into mr under keys of the
// form "<pool>.<metric>". Repeated calls overwrite the previous values.
func PublishStats(mr *MetricsRegistry, pool string, s concurrency.Stats) {
	mr.Set(pool+".tasks_submitted", s.Submitted)
	mr.Set(pool+".tasks_executed", s.Executed)
	mr.Set(pool+".tasks_stolen", s.Stolen)
	mr.Set(pool+".tasks_overflowed", s.Overflowed)
	mr.Set(pool+".tasks_panicked", s.Panicked)
	mr.Set(pool+".workers", s.Workers)
}
