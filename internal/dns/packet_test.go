package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketRoundTrip(t *testing.T) {
	p := Packet{
		Header: Header{
			ID:    0x1234,
			Flags: Flags{QR: true, RD: true},
		},
		Questions: []Question{
			{Name: "example.com", Type: uint16(TypeA), Class: uint16(ClassIN)},
		},
		Answers: []ResourceRecord{
			NewARecord("example.com", 60, [4]byte{93, 184, 216, 34}),
		},
	}

	b, err := p.Marshal()
	require.NoError(t, err)

	got, err := ParsePacket(b)
	require.NoError(t, err)

	assert.Equal(t, p.Header.ID, got.Header.ID)
	assert.Equal(t, p.Header.Flags, got.Header.Flags)
	assert.Equal(t, uint16(1), got.Header.QDCount)
	assert.Equal(t, uint16(1), got.Header.ANCount)
	assert.Equal(t, p.Questions, got.Questions)
	assert.Equal(t, p.Answers, got.Answers)
}

func TestPacketMarshalDerivesCounts(t *testing.T) {
	// Header counts are ignored in favor of the actual section sizes.
	p := Packet{
		Header: Header{ID: 1, QDCount: 99, ANCount: 99, NSCount: 99, ARCount: 99},
		Questions: []Question{
			{Name: "a.example", Type: uint16(TypeA), Class: uint16(ClassIN)},
			{Name: "b.example", Type: uint16(TypeA), Class: uint16(ClassIN)},
		},
	}

	b, err := p.Marshal()
	require.NoError(t, err)

	got, err := ParsePacket(b)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), got.Header.QDCount)
	assert.Equal(t, uint16(0), got.Header.ANCount)
	assert.Equal(t, uint16(0), got.Header.NSCount)
	assert.Equal(t, uint16(0), got.Header.ARCount)
}

func TestParsePacketDiscardsTrailingSections(t *testing.T) {
	// Build a response carrying authority and additional records by hand;
	// both sections must be walked but not surfaced.
	p := Packet{
		Header:    Header{ID: 7, Flags: Flags{QR: true}},
		Questions: []Question{{Name: "example.com", Type: uint16(TypeA), Class: uint16(ClassIN)}},
	}
	b, err := p.Marshal()
	require.NoError(t, err)

	ns, err := ResourceRecord{
		Name: "example.com", Type: uint16(TypeNS), Class: uint16(ClassIN), TTL: 60,
		Data: []byte("\x02ns\x07example\x03com\x00"),
	}.Marshal()
	require.NoError(t, err)
	ar, err := NewARecord("ns.example.com", 60, [4]byte{10, 0, 0, 53}).Marshal()
	require.NoError(t, err)

	msg := append(b, ns...)
	msg = append(msg, ar...)
	// Patch NSCOUNT and ARCOUNT to claim the appended records.
	msg[9] = 1
	msg[11] = 1

	got, err := ParsePacket(msg)
	require.NoError(t, err)
	assert.Len(t, got.Questions, 1)
	assert.Empty(t, got.Answers)
	assert.Equal(t, uint16(1), got.Header.NSCount)
	assert.Equal(t, uint16(1), got.Header.ARCount)
}

func TestParsePacketTruncatedSections(t *testing.T) {
	p := Packet{
		Header:    Header{ID: 9},
		Questions: []Question{{Name: "example.com", Type: uint16(TypeA), Class: uint16(ClassIN)}},
		Answers:   []ResourceRecord{NewARecord("example.com", 60, [4]byte{1, 2, 3, 4})},
	}
	b, err := p.Marshal()
	require.NoError(t, err)

	// Any prefix that cuts a declared section entry must fail.
	for _, cut := range []int{HeaderSize + 3, len(b) - 1} {
		_, err := ParsePacket(b[:cut])
		assert.ErrorIs(t, err, ErrTruncated, "cut at %d", cut)
	}
}

func TestParsePacketHostileCountsNoHugeAllocation(t *testing.T) {
	// Header claims 65535 questions with no body: must fail fast.
	msg := make([]byte, HeaderSize)
	msg[4], msg[5] = 0xFF, 0xFF
	_, err := ParsePacket(msg)
	assert.ErrorIs(t, err, ErrTruncated)
}
