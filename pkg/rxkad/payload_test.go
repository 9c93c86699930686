package rxkad

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadMarshal(t *testing.T) {
	p := Payload{
		SessionKey: [8]byte{0xC4, 0x0B, 0x0E, 0xA4, 0x38, 0xFD, 0xFD, 0xF7},
		Ticket:     []byte{0x61, 0x82, 0x01, 0x23, 0xAA, 0xBB, 0xCC},
		Expiry:     1767225600,
		KVNO:       TicketTypeKerberosV5,
	}

	b, err := p.Marshal()
	require.NoError(t, err)
	require.Len(t, b, 24+len(p.Ticket))

	assert.Equal(t, uint32(1), binary.NativeEndian.Uint32(b[0:]))
	assert.Equal(t, uint16(2), binary.NativeEndian.Uint16(b[4:]))
	assert.Equal(t, uint16(len(p.Ticket)), binary.NativeEndian.Uint16(b[6:]))
	assert.Equal(t, p.Expiry, binary.NativeEndian.Uint32(b[8:]))
	assert.Equal(t, uint32(256), binary.NativeEndian.Uint32(b[12:]))
	assert.Equal(t, p.SessionKey[:], b[16:24])
	assert.Equal(t, p.Ticket, b[24:])
}

func TestPayloadMarshalEmptyTicket(t *testing.T) {
	p := Payload{KVNO: TicketTypeKerberosV5}

	b, err := p.Marshal()
	require.NoError(t, err)
	assert.Len(t, b, 24)
	assert.Equal(t, uint16(0), binary.NativeEndian.Uint16(b[6:]))
}

func TestPayloadMarshalTicketTooLong(t *testing.T) {
	p := Payload{Ticket: make([]byte, 0x10000)}

	_, err := p.Marshal()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")
}
