package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubdns/internal/dns"
	"stubdns/internal/resolvers"
	"stubdns/internal/store"
)

func newTestHandler(t *testing.T) (*QueryHandler, *DNSStats) {
	t.Helper()
	stats := NewDNSStats()
	h := &QueryHandler{
		Logger: slog.Default(),
		Engine: resolvers.NewEngine(store.New(store.DefaultSeed()), nil, slog.Default()),
		Stats:  stats,
	}
	return h, stats
}

func marshalQuery(t *testing.T, id uint16, name string) []byte {
	t.Helper()
	p := dns.Packet{
		Header:    dns.Header{ID: id, Flags: dns.Flags{RD: true}},
		Questions: []dns.Question{{Name: name, Type: uint16(dns.TypeA), Class: uint16(dns.ClassIN)}},
	}
	b, err := p.Marshal()
	require.NoError(t, err)
	return b
}

func TestHandleAnswersFromStore(t *testing.T) {
	h, stats := newTestHandler(t)

	resp := h.Handle(t.Context(), "127.0.0.1:5353", marshalQuery(t, 0x1234, "codecrafters.io"))
	require.NotNil(t, resp)

	p, err := dns.ParsePacket(resp)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), p.Header.ID)
	assert.True(t, p.Header.Flags.QR)
	require.Len(t, p.Answers, 1)
	assert.Equal(t, []byte{192, 168, 10, 10}, p.Answers[0].Data)

	snap := stats.Snapshot()
	assert.Equal(t, uint64(1), snap.QueriesTotal)
	assert.Equal(t, uint64(1), snap.Answered)
	assert.Equal(t, uint64(0), snap.Dropped)
	assert.Equal(t, uint64(0), snap.Forwarded)
}

func TestHandleDropsMalformedDatagram(t *testing.T) {
	h, stats := newTestHandler(t)

	resp := h.Handle(t.Context(), "127.0.0.1:5353", []byte{0x01, 0x02, 0x03})
	assert.Nil(t, resp, "malformed input gets no response")

	snap := stats.Snapshot()
	assert.Equal(t, uint64(1), snap.QueriesTotal)
	assert.Equal(t, uint64(1), snap.Dropped)
	assert.Equal(t, uint64(0), snap.Answered)
}

func TestHandleDropsResponsePackets(t *testing.T) {
	h, stats := newTestHandler(t)

	msg := marshalQuery(t, 1, "codecrafters.io")
	msg[2] |= 0x80 // QR

	assert.Nil(t, h.Handle(t.Context(), "127.0.0.1:5353", msg))
	assert.Equal(t, uint64(1), stats.Snapshot().Dropped)
}

func TestHandleNotImplementedOpcode(t *testing.T) {
	h, _ := newTestHandler(t)

	msg := marshalQuery(t, 2, "codecrafters.io")
	msg[2] |= 0x08 // opcode IQUERY

	resp := h.Handle(t.Context(), "127.0.0.1:5353", msg)
	require.NotNil(t, resp, "unsupported opcodes are answered, not dropped")

	p, err := dns.ParsePacket(resp)
	require.NoError(t, err)
	assert.Equal(t, dns.RCodeNotImp, p.Header.Flags.RCode)
	assert.Equal(t, dns.OpCodeIQuery, p.Header.Flags.Opcode)
	assert.Empty(t, p.Answers)
}

func TestHandleUpstreamFailure(t *testing.T) {
	stats := NewDNSStats()
	h := &QueryHandler{
		Logger: slog.Default(),
		Engine: resolvers.NewEngine(store.New(nil), failingUpstream{}, slog.Default()),
		Stats:  stats,
	}

	resp := h.Handle(t.Context(), "127.0.0.1:5353", marshalQuery(t, 3, "unknown.example"))
	assert.Nil(t, resp, "upstream failure drops the whole request")

	snap := stats.Snapshot()
	assert.Equal(t, uint64(1), snap.Failed)
	assert.Equal(t, uint64(0), snap.Answered)
}

type failingUpstream struct{}

func (failingUpstream) ResolveA(ctx context.Context, domain string) (uint32, [4]byte, error) {
	return 0, [4]byte{}, resolvers.ErrUpstreamFailed
}

func (failingUpstream) Close() error { return nil }
