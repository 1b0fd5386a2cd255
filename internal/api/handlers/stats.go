package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"stubdns/internal/api/models"
)

// Stats returns runtime statistics including memory, goroutines, host
// information, and DNS query metrics.
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Host:          hostStats(),
	}

	if fn := h.GetDNSStatsFunc(); fn != nil {
		s := fn()
		resp.DNSStats = models.DNSStatsResponse{
			QueriesTotal: s.QueriesTotal,
			Answered:     s.Answered,
			Dropped:      s.Dropped,
			Failed:       s.Failed,
			Forwarded:    s.Forwarded,
			AvgLatencyMs: s.AvgLatencyMs,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// hostStats returns system-level statistics, or nil when the platform
// does not expose them.
func hostStats() *models.HostStats {
	info, err := host.Info()
	if err != nil {
		return nil
	}

	stats := &models.HostStats{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Platform:      info.Platform,
		UptimeSeconds: info.Uptime,
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemTotalMB = float64(vm.Total) / 1024 / 1024
		stats.MemUsedMB = float64(vm.Used) / 1024 / 1024
		stats.MemUsedPercent = vm.UsedPercent
	}

	return stats
}
