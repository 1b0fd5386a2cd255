package dns

import (
	"fmt"

	"stubdns/internal/helpers"
)

// Packet represents a complete DNS message: header, questions, answers.
//
// Authority and additional sections are not part of the model. On decode
// they are walked with the record codec and discarded so buffer offsets
// stay consistent; on encode NSCOUNT and ARCOUNT are always zero.
type Packet struct {
	Header    Header
	Questions []Question
	Answers   []ResourceRecord
}

// Marshal serializes the packet to wire format. QDCOUNT and ANCOUNT are
// derived from the section slices, never taken from the Header.
func (p Packet) Marshal() ([]byte, error) {
	h := Header{
		ID:      p.Header.ID,
		Flags:   p.Header.Flags,
		QDCount: helpers.ClampIntToUint16(len(p.Questions)),
		ANCount: helpers.ClampIntToUint16(len(p.Answers)),
	}
	hb, err := h.Marshal()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(p.Questions)*32+len(p.Answers)*48)
	out = append(out, hb...)
	for _, q := range p.Questions {
		qb, err := q.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, qb...)
	}
	for _, a := range p.Answers {
		ab, err := a.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, ab...)
	}
	return out, nil
}

// ParsePacket decodes a complete DNS message. The header counts dictate
// exactly how many entries each section holds; if the buffer ends before
// a declared entry, decoding fails with ErrTruncated.
func ParsePacket(msg []byte) (Packet, error) {
	off := 0
	h, err := ParseHeader(msg, &off)
	if err != nil {
		return Packet{}, err
	}

	p := Packet{Header: h}

	// Cap initial allocations: a hostile header can declare more entries
	// than the datagram can possibly hold.
	p.Questions = make([]Question, 0, min(int(h.QDCount), MaxQuestions))
	for range h.QDCount {
		q, err := ParseQuestion(msg, &off)
		if err != nil {
			return Packet{}, fmt.Errorf("question: %w", err)
		}
		p.Questions = append(p.Questions, q)
	}

	p.Answers = make([]ResourceRecord, 0, min(int(h.ANCount), MaxRRPerSection))
	for range h.ANCount {
		r, err := ParseRecord(msg, &off)
		if err != nil {
			return Packet{}, fmt.Errorf("answer: %w", err)
		}
		p.Answers = append(p.Answers, r)
	}

	// Authority and additional sections are decoded and discarded: the
	// engine never materializes them, but skipping keeps the offsets
	// honest and still rejects malformed trailing bytes.
	for range int(h.NSCount) + int(h.ARCount) {
		if _, err := ParseRecord(msg, &off); err != nil {
			return Packet{}, fmt.Errorf("trailing section: %w", err)
		}
	}

	return p, nil
}
