// Package dns implements the RFC 1035 wire format used by stubdns:
// header, flags, names (with compression-pointer decoding), questions,
// resource records, and whole-message composition.
//
// Error Handling:
//
// Failures are reported as one of the sentinel errors below, wrapped with
// context via fmt.Errorf("...: %w", err) and matched with errors.Is.
// Decode errors are local to a single message; the transport loop discards
// the datagram and keeps serving. Encode errors indicate a caller bug.
package dns

import "errors"

var (
	// ErrTruncated reports a buffer shorter than a field demands.
	ErrTruncated = errors.New("dns: truncated input")

	// ErrInvalidLabel reports a malformed label or label tag, including
	// the reserved 0b01/0b10 length-byte patterns and names exceeding
	// the 255-octet wire limit.
	ErrInvalidLabel = errors.New("dns: invalid label")

	// ErrPointerOutOfRange reports a compression pointer whose target
	// lies at or past the end of the message.
	ErrPointerOutOfRange = errors.New("dns: compression pointer out of range")

	// ErrPointerLoop reports a compression pointer chain that would not
	// terminate (a cycle or a non-backward jump).
	ErrPointerLoop = errors.New("dns: compression pointer loop")

	// ErrPayloadTooLarge reports rdata that cannot be expressed by the
	// 16-bit length prefix on encode.
	ErrPayloadTooLarge = errors.New("dns: rdata exceeds 16-bit length")
)
