package rxkad

import (
	"encoding/binary"
	"fmt"
)

// Constants for the kernel rxrpc key payload.
const (
	// payloadVersion selects version 1 of the key data interface
	// (struct rxrpc_key_sec2_v1).
	payloadVersion = 1

	// securityIndex is the RX header security index for rxkad.
	securityIndex = 2

	// TicketTypeKerberosV5 is the key-version-number value that tells
	// the rxkad security class the ticket is Kerberos v5 derived.
	TicketTypeKerberosV5 = 256

	payloadHeaderLen = 24
)

// Payload is the rxrpc_key_sec2_v1 blob handed to the kernel when an
// rxrpc-type key is instantiated. The session key is the output of
// SessionKey; the ticket travels verbatim.
type Payload struct {
	SessionKey [8]byte
	Ticket     []byte
	Expiry     uint32 // ticket end time, seconds since the epoch
	KVNO       uint32 // TicketTypeKerberosV5 for Kerberos v5 tickets
}

// Marshal lays the payload out the way the kernel reads it - a packed
// struct in host byte order:
//
//	offset  0: u32 kver           (1)
//	offset  4: u16 security_index (2)
//	offset  6: u16 ticket_length
//	offset  8: u32 expiry
//	offset 12: u32 kvno
//	offset 16: u8  session_key[8]
//	offset 24: ticket
func (p *Payload) Marshal() ([]byte, error) {
	if len(p.Ticket) > 0xFFFF {
		return nil, fmt.Errorf("ticket is %d octets, too long for a 16-bit length field", len(p.Ticket))
	}

	b := make([]byte, payloadHeaderLen+len(p.Ticket))
	binary.NativeEndian.PutUint32(b[0:], payloadVersion)
	binary.NativeEndian.PutUint16(b[4:], securityIndex)
	binary.NativeEndian.PutUint16(b[6:], uint16(len(p.Ticket)))
	binary.NativeEndian.PutUint32(b[8:], p.Expiry)
	binary.NativeEndian.PutUint32(b[12:], p.KVNO)
	copy(b[16:24], p.SessionKey[:])
	copy(b[24:], p.Ticket)
	return b, nil
}
