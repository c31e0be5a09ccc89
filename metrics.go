package qstab

import (
	"sync"
	"time"
)

// Metrics collects counters for gate application and probability
// queries. The engine itself is sequential, but hosts may read metrics
// from other goroutines, so access is guarded.
type Metrics struct {
	mu sync.RWMutex

	GatesApplied        int64
	QueriesRun          int64
	InfeasibleOutcomes  int64
	NonCanonicalQueries int64
	TotalQueryTime      time.Duration
	LastQueryTime       time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordGate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GatesApplied++
}

func (m *Metrics) recordQuery(start time.Time, infeasible, nonCanonical bool) {
	elapsed := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.QueriesRun++
	m.TotalQueryTime += elapsed
	m.LastQueryTime = elapsed
	if infeasible {
		m.InfeasibleOutcomes++
	}
	if nonCanonical {
		m.NonCanonicalQueries++
	}
}

// ExportMetrics returns a snapshot of the counters.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"gates_applied":         m.GatesApplied,
		"queries_run":           m.QueriesRun,
		"infeasible_outcomes":   m.InfeasibleOutcomes,
		"non_canonical_queries": m.NonCanonicalQueries,
		"total_query_time":      m.TotalQueryTime.Nanoseconds(),
		"last_query_time":       m.LastQueryTime.Nanoseconds(),
	}
}
