package models

// RecordResponse represents one A record known to the server.
type RecordResponse struct {
	Domain  string `json:"domain"`
	TTL     uint32 `json:"ttl"`
	Address string `json:"address"`
}

// RecordListResponse wraps the full record listing.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// UpsertRecordRequest creates or replaces an A record.
type UpsertRecordRequest struct {
	Domain  string `json:"domain" binding:"required"`
	TTL     uint32 `json:"ttl"`
	Address string `json:"address" binding:"required"`
}
