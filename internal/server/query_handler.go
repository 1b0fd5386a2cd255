package server

import (
	"context"
	"log/slog"
	"time"

	"stubdns/internal/dns"
	"stubdns/internal/resolvers"
)

// QueryHandler decodes a request datagram, resolves it, and encodes the
// response. It separates the transport loop from the resolution engine.
type QueryHandler struct {
	Logger *slog.Logger
	Engine *resolvers.Engine
	Stats  *DNSStats
}

// Handle processes one request and returns the response bytes, or nil
// when no response must be sent.
//
// Decode failures are swallowed: the datagram is logged and dropped, and
// the server never replies to input it could not parse. An upstream
// resolution failure likewise drops the whole request — no partial
// answers, no error response (see resolvers.ErrUpstreamFailed).
func (h *QueryHandler) Handle(ctx context.Context, src string, reqBytes []byte) []byte {
	started := time.Now()
	h.Stats.RecordQuery()

	req, err := dns.ParseRequest(reqBytes)
	if err != nil {
		h.Stats.RecordDropped()
		h.Logger.Debug("dropping malformed query", "src", src, "bytes", len(reqBytes), "err", err)
		return nil
	}

	result, err := h.Engine.Resolve(ctx, req)
	if err != nil {
		h.Stats.RecordFailed()
		h.Logger.Warn("resolution failed", "src", src, "id", int(req.Header.ID), "err", err)
		return nil
	}
	if result.Source == "upstream" {
		h.Stats.RecordForwarded()
	}

	respBytes, err := result.Response.Marshal()
	if err != nil {
		// Encode errors are contract violations, not wire conditions.
		h.Stats.RecordFailed()
		h.Logger.Error("response encode failed", "src", src, "id", int(req.Header.ID), "err", err)
		return nil
	}

	h.Stats.RecordAnswered(time.Since(started))
	h.logRequest(ctx, src, req, result.Source, len(reqBytes))
	return respBytes
}

func (h *QueryHandler) logRequest(ctx context.Context, src string, req dns.Packet, source string, reqLen int) {
	if !h.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	qname := "<no-question>"
	if len(req.Questions) > 0 {
		qname = req.Questions[0].Name
	}
	h.Logger.Debug("dns request",
		"src", src,
		"id", int(req.Header.ID),
		"qname", qname,
		"questions", len(req.Questions),
		"bytes", reqLen,
		"source", source,
	)
}
