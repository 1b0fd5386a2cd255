package resolvers

import (
	"context"
	"fmt"
	"log/slog"

	"stubdns/internal/dns"
	"stubdns/internal/store"
)

// Engine turns decoded queries into response messages.
//
// Per query it (1) rejects non-QUERY opcodes with NotImplemented,
// (2) looks every question's domain up in the record store, (3) forwards
// each miss to the upstream resolver when one is configured and inserts
// the learned answer into the store, and (4) assembles one A/IN answer
// per resolvable question. Questions that stay unresolved without an
// upstream are omitted from the answer section; there is no NXDOMAIN
// path.
type Engine struct {
	store    *store.RecordStore
	upstream Upstream // nil when no forwarding resolver is configured
	logger   *slog.Logger
}

// NewEngine creates an Engine. upstream may be nil, in which case
// unresolved questions simply receive no answer.
func NewEngine(st *store.RecordStore, upstream Upstream, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: st, upstream: upstream, logger: logger}
}

// Close releases the upstream connection, if any.
func (e *Engine) Close() error {
	if e.upstream == nil {
		return nil
	}
	return e.upstream.Close()
}

// Resolve produces the response message for req.
//
// An upstream failure for any question aborts the whole request with
// ErrUpstreamFailed; the engine never answers a partial subset.
func (e *Engine) Resolve(ctx context.Context, req dns.Packet) (Result, error) {
	if req.Header.Flags.Opcode != dns.OpCodeQuery {
		return Result{
			Response: response(req, dns.RCodeNotImp, nil),
			Source:   "not-implemented",
		}, nil
	}

	source := "store"
	for _, q := range req.Questions {
		if _, ok := e.store.Lookup(q.Name); ok {
			continue
		}
		if e.upstream == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		ttl, addr, err := e.upstream.ResolveA(ctx, q.Name)
		if err != nil {
			return Result{}, fmt.Errorf("forward %q: %w", q.Name, err)
		}
		e.logger.Debug("upstream answer", "domain", q.Name, "ttl", ttl)
		e.store.Insert(q.Name, store.Record{TTL: ttl, Addr: addr})
		source = "upstream"
	}

	answers := make([]dns.ResourceRecord, 0, len(req.Questions))
	for _, q := range req.Questions {
		rec, ok := e.store.Lookup(q.Name)
		if !ok {
			continue // no upstream configured and not in the store
		}
		answers = append(answers, dns.NewARecord(q.Name, rec.TTL, rec.Addr))
	}

	return Result{Response: response(req, dns.RCodeNoError, answers), Source: source}, nil
}

// response builds the reply message: QR set, AA/TC/RA cleared, RD and
// opcode carried over, questions echoed back verbatim.
func response(req dns.Packet, rcode dns.RCode, answers []dns.ResourceRecord) dns.Packet {
	return dns.Packet{
		Header: dns.Header{
			ID:    req.Header.ID,
			Flags: dns.ResponseFlags(req.Header.Flags, rcode),
		},
		Questions: req.Questions,
		Answers:   answers,
	}
}
