// Package handlers implements the REST API endpoint handlers.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, goroutines, DNS metrics)
//
// Records:
//   - GET /api/v1/records - List all A records currently served
//   - POST /api/v1/records - Create or replace an A record
//   - DELETE /api/v1/records/:domain - Remove an A record
//
// Authentication:
//
// All endpoints except /health support optional API key authentication via
// the X-API-Key header.
package handlers

import (
	"log/slog"
	"sync"
	"time"

	"stubdns/internal/database"
	"stubdns/internal/store"
)

// DNSStatsSnapshot contains a point-in-time snapshot of DNS statistics.
type DNSStatsSnapshot struct {
	QueriesTotal uint64
	Answered     uint64
	Dropped      uint64
	Failed       uint64
	Forwarded    uint64
	AvgLatencyMs float64
}

// DNSStatsFunc is a function that returns DNS statistics.
type DNSStatsFunc func() DNSStatsSnapshot

// Handler contains dependencies for API handlers.
type Handler struct {
	store     *store.RecordStore
	db        *database.DB // nil when no record database is configured
	logger    *slog.Logger
	startTime time.Time

	dnsStatsFunc DNSStatsFunc
	mu           sync.RWMutex
}

// New creates a new Handler serving the given record store.
func New(st *store.RecordStore, db *database.DB, logger *slog.Logger) *Handler {
	return &Handler{
		store:     st,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// SetDNSStatsFunc sets the function to retrieve DNS statistics.
func (h *Handler) SetDNSStatsFunc(fn DNSStatsFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dnsStatsFunc = fn
}

// GetDNSStatsFunc retrieves the DNS statistics function.
func (h *Handler) GetDNSStatsFunc() DNSStatsFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dnsStatsFunc
}
