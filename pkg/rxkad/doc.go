// Package rxkad reduces Kerberos v5 session keys to the single-DES keys
// the legacy rxkad security class understands.
//
// # Overview
//
// AFS speaks RX, and RX's only widely deployed security class (rxkad)
// predates modern Kerberos enctypes: it wants a 56-bit DES session key.
// A ticket obtained with aes256-cts-hmac-sha1-96 carries a 32-byte key,
// so something has to bridge the gap. That bridge is the key derivation
// scheme in draft-kaduk-afs3-rxkad-k5-kdf, implemented here:
//
//	Etypes 1-3:   single DES, key used verbatim
//	Etypes 5/7/16: triple DES, parity bits stripped, then KDF
//	Modern etypes: key fed straight to the KDF
//	Etypes 4/6/8:  protocol-deprecated, refused
//	CMS/envelope:  not Kerberos session keys at all, refused
//
// # Why HMAC-MD5
//
// The KDF's PRF is HMAC-MD5. That is not a strength choice - the output
// is cut down to 56 effective bits either way - it is what the draft
// specifies, and both ends of the RX exchange must derive the identical
// key independently. Every step here (PRF, parity overlay, weak-key
// rejection, iteration order) is fixed by the protocol; deviating
// produces keys the server will never agree with.
//
// The package is pure computation over small buffers: no I/O, no shared
// state, safe to call from any number of goroutines.
package rxkad
