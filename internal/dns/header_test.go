package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshal(t *testing.T) {
	h := Header{
		ID:      12345,
		Flags:   Flags{QR: true},
		QDCount: 1,
	}

	b, err := h.Marshal()
	require.NoError(t, err)

	want := []byte{
		0x30, 0x39, // ID 12345
		0x80, 0x00, // QR set, everything else clear
		0x00, 0x01, // QDCOUNT
		0x00, 0x00, // ANCOUNT
		0x00, 0x00, // NSCOUNT
		0x00, 0x00, // ARCOUNT
	}
	assert.Equal(t, want, b)
}

func TestHeaderMarshalRejectsOverflowingFields(t *testing.T) {
	_, err := Header{Flags: Flags{Opcode: 16}}.Marshal()
	assert.Error(t, err)

	_, err = Header{Flags: Flags{RCode: 16}}.Marshal()
	assert.Error(t, err)
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		ID:      0xBEEF,
		Flags:   Flags{QR: true, Opcode: OpCodeStatus, AA: true, RD: true, RCode: RCodeRefused},
		QDCount: 2,
		ANCount: 3,
		NSCount: 4,
		ARCount: 5,
	}

	b, err := h.Marshal()
	require.NoError(t, err)
	require.Len(t, b, HeaderSize)

	off := 0
	got, err := ParseHeader(b, &off)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, HeaderSize, off)
}

func TestParseHeaderTruncated(t *testing.T) {
	for size := 0; size < HeaderSize; size++ {
		off := 0
		_, err := ParseHeader(make([]byte, size), &off)
		require.ErrorIs(t, err, ErrTruncated, "size %d", size)
		assert.Equal(t, 0, off)
	}
}
