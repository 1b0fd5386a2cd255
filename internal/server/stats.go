package server

import (
	"sync/atomic"
	"time"
)

// DNSStats collects query counters. All methods are safe for concurrent
// use; the management API reads snapshots while the DNS loop records.
type DNSStats struct {
	queriesTotal   atomic.Uint64
	answered       atomic.Uint64
	dropped        atomic.Uint64
	failed         atomic.Uint64
	forwarded      atomic.Uint64
	latencyTotalNs atomic.Uint64
}

// NewDNSStats creates a statistics collector.
func NewDNSStats() *DNSStats {
	return &DNSStats{}
}

// RecordQuery counts one received datagram.
func (s *DNSStats) RecordQuery() { s.queriesTotal.Add(1) }

// RecordDropped counts a datagram discarded as malformed.
func (s *DNSStats) RecordDropped() { s.dropped.Add(1) }

// RecordFailed counts a request aborted by a resolution or encode error.
func (s *DNSStats) RecordFailed() { s.failed.Add(1) }

// RecordForwarded counts a request that needed the upstream resolver.
func (s *DNSStats) RecordForwarded() { s.forwarded.Add(1) }

// RecordAnswered counts a successfully answered request and its latency.
func (s *DNSStats) RecordAnswered(d time.Duration) {
	s.answered.Add(1)
	if d > 0 {
		s.latencyTotalNs.Add(uint64(d.Nanoseconds()))
	}
}

// DNSStatsSnapshot is a point-in-time view of the counters.
type DNSStatsSnapshot struct {
	QueriesTotal uint64  `json:"queries_total"`
	Answered     uint64  `json:"answered"`
	Dropped      uint64  `json:"dropped"`
	Failed       uint64  `json:"failed"`
	Forwarded    uint64  `json:"forwarded"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// Snapshot returns the current counters.
func (s *DNSStats) Snapshot() DNSStatsSnapshot {
	answered := s.answered.Load()
	avgMs := 0.0
	if answered > 0 {
		avgMs = float64(s.latencyTotalNs.Load()) / float64(answered) / 1e6
	}
	return DNSStatsSnapshot{
		QueriesTotal: s.queriesTotal.Load(),
		Answered:     answered,
		Dropped:      s.dropped.Load(),
		Failed:       s.failed.Load(),
		Forwarded:    s.forwarded.Load(),
		AvgLatencyMs: avgMs,
	}
}
