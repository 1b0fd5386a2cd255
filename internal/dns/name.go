package dns

import (
	"fmt"
	"strings"
)

const (
	maxLabelLength    = 63  // RFC 1035 Section 2.3.4
	maxNameWireLength = 255 // labels + length prefixes + terminator
)

// EncodeName encodes a domain name to DNS wire format (RFC 1035
// Section 3.1): a sequence of length-prefixed labels terminated by a
// zero-length label.
//
// Example: "www.example.com" encodes as
//
//	0x03 'w' 'w' 'w' 0x07 'e' 'x' 'a' 'm' 'p' 'l' 'e' 0x03 'c' 'o' 'm' 0x00
//
// Encoding never emits compression pointers; compression is a decode-only
// compatibility concern for interoperating with compressing peers.
func EncodeName(domain string) ([]byte, error) {
	domain = trimDot(domain)
	if domain == "" {
		return []byte{0}, nil // root
	}

	out := make([]byte, 0, len(domain)+2)
	labelStart := 0
	for i := 0; i <= len(domain); i++ {
		if i < len(domain) && domain[i] != '.' {
			continue
		}
		label := domain[labelStart:i]
		if len(label) == 0 {
			return nil, fmt.Errorf("%w: empty label in %q", ErrInvalidLabel, domain)
		}
		if len(label) > maxLabelLength {
			return nil, fmt.Errorf("%w: label %q is %d bytes (max %d)", ErrInvalidLabel, label, len(label), maxLabelLength)
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
		labelStart = i + 1
	}
	out = append(out, 0)

	if len(out) > maxNameWireLength {
		return nil, fmt.Errorf("%w: encoded name is %d bytes (max %d)", ErrInvalidLabel, len(out), maxNameWireLength)
	}
	return out, nil
}

// DecodeName decodes a possibly-compressed DNS name from wire format.
//
// A compression pointer (RFC 1035 Section 4.1.4) is a length byte with the
// two high bits set; its low 6 bits combine with the next byte into a
// 14-bit offset from the start of the message:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	| 1  1|                OFFSET                   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//
// The pointer consumes exactly two bytes and terminates the current name;
// decoding continues at the target offset. Decoding reads from msg
// starting at *off, which is advanced past the encoded name (including
// the pointer bytes when one is present).
//
// Termination on adversarial input is guaranteed by requiring every
// pointer to target an offset strictly below the position where decoding
// of the current name began: each hop moves strictly backward, so a cycle
// or forward jump fails with ErrPointerLoop instead of spinning. This is
// the single most safety-critical invariant of the codec.
//
// Returns a dot-separated name without trailing dot. Label bytes are
// copied, so the result does not alias msg.
func DecodeName(msg []byte, off *int) (string, error) {
	if *off < 0 || *off >= len(msg) {
		return "", fmt.Errorf("%w: name offset %d past end of %d-byte message", ErrTruncated, *off, len(msg))
	}

	labels := make([]string, 0, 6)
	pos := *off
	floor := *off     // pointers must target offsets strictly below this
	followed := false // whether a pointer has redirected decoding
	wireLen := 1      // decoded name length on the wire (terminator counted)

	for {
		if pos >= len(msg) {
			return "", fmt.Errorf("%w: name runs past end of message", ErrTruncated)
		}
		b := msg[pos]
		switch {
		case b == 0:
			if !followed {
				*off = pos + 1
			}
			return strings.Join(labels, "."), nil

		case b&0xC0 == 0xC0:
			if pos+1 >= len(msg) {
				return "", fmt.Errorf("%w: message ends inside compression pointer", ErrTruncated)
			}
			target := int(b&0x3F)<<8 | int(msg[pos+1])
			if target >= len(msg) {
				return "", fmt.Errorf("%w: pointer target %d in %d-byte message", ErrPointerOutOfRange, target, len(msg))
			}
			if target >= floor {
				return "", fmt.Errorf("%w: pointer at %d targets %d", ErrPointerLoop, pos, target)
			}
			if !followed {
				*off = pos + 2
				followed = true
			}
			floor = target
			pos = target

		case b&0xC0 != 0:
			// 0b01xxxxxx and 0b10xxxxxx are reserved tag patterns.
			return "", fmt.Errorf("%w: reserved length-byte tag 0x%02x", ErrInvalidLabel, b)

		default:
			if pos+1+int(b) > len(msg) {
				return "", fmt.Errorf("%w: message ends inside %d-byte label", ErrTruncated, b)
			}
			wireLen += 1 + int(b)
			if wireLen > maxNameWireLength {
				return "", fmt.Errorf("%w: decoded name exceeds %d bytes", ErrInvalidLabel, maxNameWireLength)
			}
			labels = append(labels, string(msg[pos+1:pos+1+int(b)]))
			pos += 1 + int(b)
		}
	}
}

// trimDot removes trailing dots.
func trimDot(s string) string {
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
