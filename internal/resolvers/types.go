// Package resolvers implements query resolution for stubdns: answering
// A-record questions from the record store and forwarding unresolved
// domains to a single upstream resolver over UDP.
package resolvers

import (
	"context"
	"errors"

	"stubdns/internal/dns"
)

// ErrUpstreamFailed reports that the upstream resolver produced no usable
// reply for a forwarded question. It aborts the whole request: stubdns
// never answers a resolvable subset of a multi-question query.
var ErrUpstreamFailed = errors.New("resolvers: upstream resolution failed")

// Result is the outcome of resolving one query.
type Result struct {
	Response dns.Packet // The response message, ready to encode
	Source   string     // Where the answers came from (store, upstream, ...)
}

// Upstream resolves a single domain to an A record via a forwarding
// resolver. Implementations block for exactly one reply per call.
type Upstream interface {
	// ResolveA queries the upstream for an A record.
	ResolveA(ctx context.Context, domain string) (ttl uint32, addr [4]byte, err error)

	// Close releases the upstream connection.
	Close() error
}
