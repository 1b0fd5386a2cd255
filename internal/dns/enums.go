package dns

// OpCode is the query kind field in the header (RFC 1035 Section 4.1.1).
type OpCode uint8

const (
	OpCodeQuery  OpCode = 0 // Standard query
	OpCodeIQuery OpCode = 1 // Inverse query (obsolete)
	OpCodeStatus OpCode = 2 // Server status request
)

// RCode is the response status code (RFC 1035 Section 4.1.1).
type RCode uint8

const (
	RCodeNoError  RCode = 0 // No error
	RCodeFormErr  RCode = 1 // Format error: query malformed
	RCodeServFail RCode = 2 // Server failure: internal error
	RCodeNXDomain RCode = 3 // Non-existent domain
	RCodeNotImp   RCode = 4 // Not implemented: unsupported query kind
	RCodeRefused  RCode = 5 // Query refused by policy
)

// RecordType represents DNS resource record types (RFC 1035 Section 3.2.2).
// Only A records are materialized by the resolution engine; the other
// values exist so decoded questions and records stay readable.
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeNS    RecordType = 2  // Authoritative name server
	TypeCNAME RecordType = 5  // Canonical name (alias)
	TypeSOA   RecordType = 6  // Start of Authority
	TypePTR   RecordType = 12 // Domain name pointer (reverse DNS)
	TypeMX    RecordType = 15 // Mail exchange
	TypeTXT   RecordType = 16 // Text strings
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

// RecordClass represents DNS resource record classes (RFC 1035).
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // Internet class
)
