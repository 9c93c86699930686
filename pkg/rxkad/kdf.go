package rxkad

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// KDF context layout, from draft-kaduk-afs3-rxkad-k5-kdf:
//
//	K(i) = PRF(Ks, [i]_2 || Label || 0x00 || [L]_2)
//
// One octet of iteration counter, the label "rxkad" with its NUL
// separator, and the desired output size in bits as a 32-bit big-endian
// integer. Only the counter varies between iterations.
const (
	kdfLabel      = "rxkad\x00"
	kdfOutputBits = 64
	kdfMaxCounter = 255
)

// kdfContext builds the 11-octet PRF input for one iteration. A fresh
// buffer per call keeps the derivation referentially transparent.
func kdfContext(counter byte) []byte {
	ctx := make([]byte, 0, 1+len(kdfLabel)+4)
	ctx = append(ctx, counter)
	ctx = append(ctx, kdfLabel...)
	return binary.BigEndian.AppendUint32(ctx, kdfOutputBits)
}

// DeriveSessionKey reduces key material of any positive length to an
// 8-octet DES session key.
//
// The key material is used as the HMAC-MD5 key, and the counter-indexed
// context string is the message. The first 8 octets of the digest become
// a DES key candidate: parity is overlaid, and the first candidate that
// is not a weak or semi-weak key wins. Identical key material always
// yields the identical session key - both ends of the RX exchange derive
// it independently, so determinism here is a protocol requirement.
func DeriveSessionKey(protocolKey []byte) ([]byte, error) {
	for i := 1; i <= kdfMaxCounter; i++ {
		prf := hmac.New(md5.New, protocolKey)
		prf.Write(kdfContext(byte(i)))
		digest := prf.Sum(nil)
		if len(digest) < 8 {
			return nil, fmt.Errorf("%w: %d octets", ErrShortPRF, len(digest))
		}

		candidate := digest[:8]
		SetOddParity(candidate)
		if !IsWeakKey(candidate) {
			return candidate, nil
		}
	}
	return nil, ErrDerivationExhausted
}

// DES3KeyToRandom reverses the triple-DES random-to-key operation,
// converting each 64-bit DES key block back to the 56-bit random string
// it was expanded from, so the result can feed the KDF.
//
// Per 8-octet block: the low (parity) bit of each octet is discarded,
// and the low 7 bits of the final octet are redistributed as the missing
// low bit of octets 0..6. Blocks pack contiguously, so the output is
// always 7/8 the input length. The caller guarantees the length is a
// multiple of 8 (Classify enforces it). The input is not modified.
//
// RFC 3961 and the draft number these bits oddly: their bit "8" is the
// LSB of the first octet, bit "1" the MSB.
func DES3KeyToRandom(key []byte) []byte {
	random := make([]byte, 0, len(key)/8*7)
	for ; len(key) >= 8; key = key[8:] {
		lsbs := key[7] >> 1
		for i := 0; i < 7; i++ {
			random = append(random, key[i]&0xFE|lsbs&0x01)
			lsbs >>= 1
		}
	}
	return random
}

// SessionKey is the front door of the package: it classifies the
// encryption type, normalizes if needed, and returns the 8-octet rxkad
// session key. The input key is never modified; on success the result
// is always exactly 8 octets.
func SessionKey(enctype int32, key []byte) ([]byte, error) {
	decision, err := Classify(enctype, len(key))
	if err != nil {
		return nil, err
	}

	switch decision {
	case CopyAsIs:
		out := make([]byte, 8)
		copy(out, key)
		return out, nil
	case NormalizeThenDerive:
		return DeriveSessionKey(DES3KeyToRandom(key))
	default:
		return DeriveSessionKey(key)
	}
}
