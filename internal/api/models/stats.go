package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string           `json:"uptime"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	StartTime     time.Time        `json:"start_time"`
	GoRoutines    int              `json:"goroutines"`
	MemoryAllocMB float64          `json:"memory_alloc_mb"`
	NumCPU        int              `json:"num_cpu"`
	Host          *HostStats       `json:"host,omitempty"`
	DNSStats      DNSStatsResponse `json:"dns"`
}

// HostStats contains system-level statistics gathered from the OS.
type HostStats struct {
	Hostname       string  `json:"hostname"`
	OS             string  `json:"os"`
	Platform       string  `json:"platform"`
	UptimeSeconds  uint64  `json:"uptime_seconds"`
	MemTotalMB     float64 `json:"mem_total_mb"`
	MemUsedMB      float64 `json:"mem_used_mb"`
	MemUsedPercent float64 `json:"mem_used_percent"`
}

// DNSStatsResponse contains DNS query statistics.
type DNSStatsResponse struct {
	QueriesTotal uint64  `json:"queries_total"`
	Answered     uint64  `json:"answered"`
	Dropped      uint64  `json:"dropped"`
	Failed       uint64  `json:"failed"`
	Forwarded    uint64  `json:"forwarded"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}
