package rxkad

import (
	"bytes"
	"math/bits"
)

// desWeakKeys is the standard table of DES weak and semi-weak keys in
// odd-parity form (FIPS 74; the same set OpenSSL's DES_is_weak_key
// checks). Weak keys make encryption self-inverse, semi-weak keys come
// in pairs that undo each other; rxkad must never use either.
var desWeakKeys = [16][8]byte{
	// Weak keys
	{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
	{0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE},
	{0x1F, 0x1F, 0x1F, 0x1F, 0x0E, 0x0E, 0x0E, 0x0E},
	{0xE0, 0xE0, 0xE0, 0xE0, 0xF1, 0xF1, 0xF1, 0xF1},
	// Semi-weak key pairs
	{0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE},
	{0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01},
	{0x1F, 0xE0, 0x1F, 0xE0, 0x0E, 0xF1, 0x0E, 0xF1},
	{0xE0, 0x1F, 0xE0, 0x1F, 0xF1, 0x0E, 0xF1, 0x0E},
	{0x01, 0xE0, 0x01, 0xE0, 0x01, 0xF1, 0x01, 0xF1},
	{0xE0, 0x01, 0xE0, 0x01, 0xF1, 0x01, 0xF1, 0x01},
	{0x1F, 0xFE, 0x1F, 0xFE, 0x0E, 0xFE, 0x0E, 0xFE},
	{0xFE, 0x1F, 0xFE, 0x1F, 0xFE, 0x0E, 0xFE, 0x0E},
	{0x01, 0x1F, 0x01, 0x1F, 0x01, 0x0E, 0x01, 0x0E},
	{0x1F, 0x01, 0x1F, 0x01, 0x0E, 0x01, 0x0E, 0x01},
	{0xE0, 0xFE, 0xE0, 0xFE, 0xF1, 0xFE, 0xF1, 0xFE},
	{0xFE, 0xE0, 0xFE, 0xE0, 0xFE, 0xF1, 0xFE, 0xF1},
}

// SetOddParity overlays the DES parity convention on key in place: the
// low bit of each byte is chosen so the byte has an odd number of set
// bits. This is a legacy integrity convention for DES key bytes, not a
// secrecy measure - the low bits carry no key entropy.
func SetOddParity(key []byte) {
	for i, b := range key {
		if bits.OnesCount8(b&0xFE)%2 == 0 {
			key[i] = b&0xFE | 0x01
		} else {
			key[i] = b & 0xFE
		}
	}
}

// IsWeakKey reports whether an 8-octet DES key (already in odd-parity
// form) is one of the known weak or semi-weak keys.
func IsWeakKey(key []byte) bool {
	if len(key) != 8 {
		return false
	}
	for i := range desWeakKeys {
		if bytes.Equal(key, desWeakKeys[i][:]) {
			return true
		}
	}
	return false
}
