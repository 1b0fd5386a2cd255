package resolvers

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net"
	"time"

	"stubdns/internal/dns"
)

// DefaultUpstreamTimeout bounds the wait for an upstream reply when the
// configuration does not say otherwise.
const DefaultUpstreamTimeout = 5 * time.Second

const upstreamRecvSize = 2048

// Client forwards A queries to one upstream resolver over a dedicated
// UDP connection dialed at construction.
//
// One query, one blocking reply: there is no retry and no failover. A
// timeout or an unusable reply surfaces as ErrUpstreamFailed and the
// caller treats it as a hard failure for that question.
type Client struct {
	conn    *net.UDPConn
	timeout time.Duration
}

// Dial connects to the upstream resolver at addr (host:port).
func Dial(addr string, timeout time.Duration) (*Client, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolvers: resolve upstream %q: %w", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, fmt.Errorf("resolvers: dial upstream %q: %w", addr, err)
	}
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &Client{conn: conn, timeout: timeout}, nil
}

// Close releases the upstream connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ResolveA sends a single A/IN query for domain and blocks for one reply.
//
// The query carries a fresh random ID and RD=0; the reply must echo the
// ID and contain at least one 4-byte answer, whose TTL and address are
// returned. Anything else fails with ErrUpstreamFailed.
func (c *Client) ResolveA(ctx context.Context, domain string) (uint32, [4]byte, error) {
	id := uint16(rand.Uint32())
	query := dns.Packet{
		Header: dns.Header{ID: id, Flags: dns.Flags{Opcode: dns.OpCodeQuery}},
		Questions: []dns.Question{{
			Name:  domain,
			Type:  uint16(dns.TypeA),
			Class: uint16(dns.ClassIN),
		}},
	}
	reqBytes, err := query.Marshal()
	if err != nil {
		return 0, [4]byte{}, fmt.Errorf("%w: encode query for %q: %w", ErrUpstreamFailed, domain, err)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	_ = c.conn.SetDeadline(deadline)

	if _, err := c.conn.Write(reqBytes); err != nil {
		return 0, [4]byte{}, fmt.Errorf("%w: send: %w", ErrUpstreamFailed, err)
	}

	buf := make([]byte, upstreamRecvSize)
	n, err := c.conn.Read(buf)
	if err != nil {
		return 0, [4]byte{}, fmt.Errorf("%w: receive: %w", ErrUpstreamFailed, err)
	}

	reply, err := dns.ParsePacket(buf[:n])
	if err != nil {
		return 0, [4]byte{}, fmt.Errorf("%w: parse reply: %w", ErrUpstreamFailed, err)
	}
	if reply.Header.ID != id {
		return 0, [4]byte{}, fmt.Errorf("%w: reply ID %d does not match query ID %d", ErrUpstreamFailed, reply.Header.ID, id)
	}
	if len(reply.Answers) == 0 {
		return 0, [4]byte{}, fmt.Errorf("%w: reply for %q has no answers", ErrUpstreamFailed, domain)
	}

	first := reply.Answers[0]
	if len(first.Data) != 4 {
		return 0, [4]byte{}, fmt.Errorf("%w: first answer rdata is %d bytes, want 4", ErrUpstreamFailed, len(first.Data))
	}
	return first.TTL, [4]byte{first.Data[0], first.Data[1], first.Data[2], first.Data[3]}, nil
}
