package dns

import (
	"encoding/binary"
	"fmt"
	"net"
)

// ResourceRecord represents one DNS resource record (RFC 1035
// Section 4.1.3). Data holds the opaque rdata: decode copies exactly
// RDLENGTH bytes out of the message, encode derives the length prefix
// from len(Data).
type ResourceRecord struct {
	Name  string
	Type  uint16
	Class uint16
	TTL   uint32
	Data  []byte
}

// NewARecord builds an A/IN record for the given name from a stored
// (ttl, address) entry.
func NewARecord(name string, ttl uint32, addr [4]byte) ResourceRecord {
	return ResourceRecord{
		Name:  name,
		Type:  uint16(TypeA),
		Class: uint16(ClassIN),
		TTL:   ttl,
		Data:  []byte{addr[0], addr[1], addr[2], addr[3]},
	}
}

// IPv4 returns the rdata as an IPv4 address for A records.
func (r ResourceRecord) IPv4() (net.IP, bool) {
	if RecordType(r.Type) != TypeA || len(r.Data) != 4 {
		return nil, false
	}
	return net.IPv4(r.Data[0], r.Data[1], r.Data[2], r.Data[3]), true
}

// Marshal serializes the record to wire format. The rdata length prefix
// is derived from the payload; a payload that cannot be expressed in 16
// bits is a caller error, never a silent truncation.
func (r ResourceRecord) Marshal() ([]byte, error) {
	name, err := EncodeName(r.Name)
	if err != nil {
		return nil, err
	}
	if len(r.Data) > 0xFFFF {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(r.Data))
	}
	out := make([]byte, 0, len(name)+10+len(r.Data))
	out = append(out, name...)
	out = binary.BigEndian.AppendUint16(out, r.Type)
	out = binary.BigEndian.AppendUint16(out, r.Class)
	out = binary.BigEndian.AppendUint32(out, r.TTL)
	out = binary.BigEndian.AppendUint16(out, uint16(len(r.Data)))
	out = append(out, r.Data...)
	return out, nil
}

// ParseRecord parses a resource record from the message at the given
// offset, advancing *off past it on success. The rdata bytes are copied,
// so the record does not alias msg.
func ParseRecord(msg []byte, off *int) (ResourceRecord, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return ResourceRecord{}, err
	}
	if *off+10 > len(msg) {
		return ResourceRecord{}, fmt.Errorf("%w: message ends inside record fields", ErrTruncated)
	}
	r := ResourceRecord{
		Name:  name,
		Type:  binary.BigEndian.Uint16(msg[*off : *off+2]),
		Class: binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
		TTL:   binary.BigEndian.Uint32(msg[*off+4 : *off+8]),
	}
	rdlen := int(binary.BigEndian.Uint16(msg[*off+8 : *off+10]))
	*off += 10
	if *off+rdlen > len(msg) {
		return ResourceRecord{}, fmt.Errorf("%w: message ends inside %d-byte rdata", ErrTruncated, rdlen)
	}
	r.Data = make([]byte, rdlen)
	copy(r.Data, msg[*off:*off+rdlen])
	*off += rdlen
	return r, nil
}
