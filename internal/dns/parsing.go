package dns

import (
	"errors"
	"fmt"
)

// Limits on incoming DNS messages to prevent resource exhaustion.
const (
	MaxIncomingMessageSize = 4096 // Maximum accepted datagram size
	MaxQuestions           = 8    // Maximum questions per query
	MaxRRPerSection        = 64   // Maximum resource records per section
)

// ParseRequest parses an incoming query datagram with bounds checking.
//
// It rejects oversized messages, response packets (QR set), and header
// counts beyond the limits above. Unsupported opcodes are NOT rejected
// here: the resolution engine answers them with RCode NotImplemented.
func ParseRequest(msg []byte) (Packet, error) {
	if len(msg) > MaxIncomingMessageSize {
		return Packet{}, fmt.Errorf("dns: message of %d bytes is too large", len(msg))
	}
	p, err := ParsePacket(msg)
	if err != nil {
		return Packet{}, err
	}
	if p.Header.Flags.QR {
		return Packet{}, errors.New("dns: QR flag set, packet is a response")
	}
	if err := validateSectionCounts(p.Header); err != nil {
		return Packet{}, err
	}
	return p, nil
}

func validateSectionCounts(h Header) error {
	if h.QDCount > MaxQuestions {
		return fmt.Errorf("dns: %d questions exceeds limit of %d", h.QDCount, MaxQuestions)
	}
	if h.ANCount > MaxRRPerSection || h.NSCount > MaxRRPerSection || h.ARCount > MaxRRPerSection {
		return errors.New("dns: too many resource records")
	}
	return nil
}

// ResponseFlags builds the flag word for a response to req: QR set, AA,
// TC and RA cleared, RD and Opcode carried over from the request, and the
// given response code applied.
func ResponseFlags(req Flags, rcode RCode) Flags {
	return Flags{
		QR:     true,
		Opcode: req.Opcode,
		RD:     req.RD,
		RCode:  rcode,
	}
}
