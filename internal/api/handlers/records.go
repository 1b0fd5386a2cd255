package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"stubdns/internal/api/models"
	"stubdns/internal/database"
	"stubdns/internal/store"
)

// ListRecords returns every A record currently served, sorted by domain.
func (h *Handler) ListRecords(c *gin.Context) {
	snapshot := h.store.Snapshot()

	records := make([]models.RecordResponse, 0, len(snapshot))
	for domain, rec := range snapshot {
		records = append(records, models.RecordResponse{
			Domain:  domain,
			TTL:     rec.TTL,
			Address: formatIPv4(rec.Addr),
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Domain < records[j].Domain })

	c.JSON(http.StatusOK, models.RecordListResponse{Records: records, Count: len(records)})
}

// UpsertRecord creates or replaces an A record. When a record database is
// configured the record is persisted there as well.
func (h *Handler) UpsertRecord(c *gin.Context) {
	var req models.UpsertRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	addr, err := store.ParseIPv4(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if h.db != nil {
		stored := database.StoredRecord{Domain: req.Domain, TTL: req.TTL, Address: req.Address}
		if err := h.db.UpsertRecord(stored); err != nil {
			h.logger.Error("failed to persist record", "domain", req.Domain, "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to persist record"})
			return
		}
	}

	h.store.Insert(req.Domain, store.Record{TTL: req.TTL, Addr: addr})

	c.JSON(http.StatusOK, models.RecordResponse{
		Domain:  req.Domain,
		TTL:     req.TTL,
		Address: req.Address,
	})
}

// DeleteRecord removes the A record for a domain.
func (h *Handler) DeleteRecord(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "domain is required"})
		return
	}

	if h.db != nil {
		// Best effort: the record may only exist in memory.
		if err := h.db.DeleteRecord(domain); err != nil {
			h.logger.Debug("record not in database", "domain", domain, "error", err)
		}
	}

	if !h.store.Delete(domain) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "record not found: " + domain})
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}

func formatIPv4(addr [4]byte) string {
	return fmt.Sprintf("%d.%d.%d.%d", addr[0], addr[1], addr[2], addr[3])
}
