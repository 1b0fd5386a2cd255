// Package server implements the stubdns UDP transport loop and the
// orchestration around it.
package server

import (
	"context"
	"log/slog"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"stubdns/internal/dns"
	"stubdns/internal/pool"
)

// bufferPool recycles receive buffers sized for the largest accepted
// datagram.
var bufferPool = pool.NewBytes(dns.MaxIncomingMessageSize)

// UDPServer owns the DNS socket and the receive loop.
//
// The loop is single-threaded and synchronous: one request is processed
// to completion before the next receive. A forwarded query therefore
// blocks the whole server for that round-trip, which also means the
// record store sees no concurrent writes from the DNS path.
type UDPServer struct {
	Logger  *slog.Logger
	Handler *QueryHandler

	conn *net.UDPConn
}

// Run binds addr and serves until ctx is canceled or the socket fails.
func (s *UDPServer) Run(ctx context.Context, addr string) error {
	lc := net.ListenConfig{Control: reuseAddr}
	pc, err := lc.ListenPacket(ctx, "udp", addr)
	if err != nil {
		return err
	}
	return s.RunOnConn(ctx, pc.(*net.UDPConn))
}

// reuseAddr sets SO_REUSEADDR so restarts don't race the kernel's
// lingering socket state.
func reuseAddr(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}

// RunOnConn serves on an existing UDP connection. Useful for tests and
// callers that manage the socket themselves.
//
// Per datagram: receive, hand to the query handler, send the response if
// there is one. Malformed input produces no response at all — the handler
// logs and the loop keeps listening. A socket-level receive error that is
// not a deadline halts the server.
func (s *UDPServer) RunOnConn(ctx context.Context, conn *net.UDPConn) error {
	s.conn = conn
	defer conn.Close()

	for {
		if ctx.Err() != nil {
			return nil
		}

		payload, peer, err := s.receive(conn)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.Logger.Error("udp receive failed", "err", err)
			return err
		}
		if payload == nil {
			continue // deadline tick, re-check ctx
		}

		resp := s.Handler.Handle(ctx, peer.String(), payload)
		if len(resp) == 0 {
			continue
		}
		if _, err := conn.WriteToUDP(resp, peer); err != nil {
			s.Logger.Warn("udp send failed", "peer", peer.String(), "err", err)
		}
	}
}

// receive reads one datagram into a pooled buffer and copies it out.
// A deadline expiry returns (nil, nil, nil) so the loop can poll ctx.
func (s *UDPServer) receive(conn *net.UDPConn) ([]byte, *net.UDPAddr, error) {
	bufPtr := bufferPool.Get()
	buf := *bufPtr
	defer bufferPool.Put(bufPtr)

	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	n, peer, err := conn.ReadFromUDP(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	payload := make([]byte, n)
	copy(payload, buf[:n])
	return payload, peer, nil
}
