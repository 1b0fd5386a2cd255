// Package store holds the in-memory record table: an exact-match mapping
// from domain name to (TTL, IPv4 address).
//
// The table is seeded at construction and lazily extended with answers
// learned from the upstream resolver. The table is unbounded: no eviction
// and no TTL expiry. Keys are matched exactly, preserving the
// case in which the domain arrived on the wire.
package store

import (
	"fmt"
	"net"
	"sync"
)

// Record is one stored answer: a TTL and an IPv4 address.
type Record struct {
	TTL  uint32
	Addr [4]byte
}

// RecordStore is the domain → Record table.
//
// The DNS path touches the store from a single goroutine, but the
// management API reads and writes it concurrently, so access is guarded.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// New creates a store populated with the given seed entries. A nil seed
// yields an empty store.
func New(seed map[string]Record) *RecordStore {
	records := make(map[string]Record, len(seed))
	for domain, rec := range seed {
		records[domain] = rec
	}
	return &RecordStore{records: records}
}

// DefaultSeed returns the built-in record table.
func DefaultSeed() map[string]Record {
	return map[string]Record{
		"codecrafters.io":   {TTL: 60, Addr: [4]byte{192, 168, 10, 10}},
		"stackoverflow.com": {TTL: 60, Addr: [4]byte{192, 168, 10, 20}},
	}
}

// Lookup returns the record for domain, if present.
func (s *RecordStore) Lookup(domain string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[domain]
	return rec, ok
}

// Insert adds or replaces the record for domain.
func (s *RecordStore) Insert(domain string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[domain] = rec
}

// Delete removes the record for domain, reporting whether it existed.
func (s *RecordStore) Delete(domain string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[domain]
	delete(s.records, domain)
	return ok
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Snapshot returns a copy of the table for iteration outside the lock.
func (s *RecordStore) Snapshot() map[string]Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Record, len(s.records))
	for domain, rec := range s.records {
		out[domain] = rec
	}
	return out
}

// ParseIPv4 converts a dotted-quad string into the 4-byte form records
// carry. IPv6 and malformed addresses are rejected.
func ParseIPv4(s string) ([4]byte, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return [4]byte{}, fmt.Errorf("store: invalid IP address %q", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return [4]byte{}, fmt.Errorf("store: %q is not an IPv4 address", s)
	}
	return [4]byte{ip4[0], ip4[1], ip4[2], ip4[3]}, nil
}
