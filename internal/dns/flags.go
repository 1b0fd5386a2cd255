package dns

import "fmt"

// DNS header flag word layout (RFC 1035 Section 4.1.1):
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// The three Z bits are reserved: never interpreted on unpack, always
// written as zero on pack.
const (
	qrBit      uint16 = 0x8000
	opcodeMask uint16 = 0x7800 // bits 14-11, >> 11 to extract
	aaBit      uint16 = 0x0400
	tcBit      uint16 = 0x0200
	rdBit      uint16 = 0x0100
	raBit      uint16 = 0x0080
	rcodeMask  uint16 = 0x000F
)

// Flags is the unpacked form of the 16-bit header flag word.
type Flags struct {
	QR     bool   // Response (true) or query (false)
	Opcode OpCode // Query kind, 4 bits
	AA     bool   // Authoritative answer
	TC     bool   // Truncated
	RD     bool   // Recursion desired
	RA     bool   // Recursion available
	RCode  RCode  // Response code, 4 bits
}

// UnpackFlags extracts the discrete bit-fields from a packed flag word.
// The reserved Z bits are discarded.
func UnpackFlags(v uint16) Flags {
	return Flags{
		QR:     v&qrBit != 0,
		Opcode: OpCode((v & opcodeMask) >> 11),
		AA:     v&aaBit != 0,
		TC:     v&tcBit != 0,
		RD:     v&rdBit != 0,
		RA:     v&raBit != 0,
		RCode:  RCode(v & rcodeMask),
	}
}

// Pack reassembles the flag word, emitting zero for the reserved bits.
// Opcode and RCode must fit in 4 bits; callers constructing Flags from the
// OpCode/RCode constants cannot exceed range, and the message encoder
// calls Validate before packing rather than truncating silently.
func (f Flags) Pack() uint16 {
	var v uint16
	if f.QR {
		v |= qrBit
	}
	v |= uint16(f.Opcode) << 11 & opcodeMask
	if f.AA {
		v |= aaBit
	}
	if f.TC {
		v |= tcBit
	}
	if f.RD {
		v |= rdBit
	}
	if f.RA {
		v |= raBit
	}
	v |= uint16(f.RCode) & rcodeMask
	return v
}

// Validate rejects field values that overflow their declared bit-widths.
func (f Flags) Validate() error {
	if f.Opcode > 0x0F {
		return fmt.Errorf("dns: opcode %d does not fit in 4 bits", f.Opcode)
	}
	if f.RCode > 0x0F {
		return fmt.Errorf("dns: rcode %d does not fit in 4 bits", f.RCode)
	}
	return nil
}
