//go:build linux

package keyring

import "golang.org/x/sys/unix"

// AddRxRPC instantiates an rxrpc-type key described desc in the session
// keyring. The kernel parses payload as struct rxrpc_key_sec2_v1 and
// takes over its lifetime; the returned value is the key serial number.
func AddRxRPC(desc string, payload []byte) (int, error) {
	return unix.AddKey("rxrpc", desc, payload, unix.KEY_SPEC_SESSION_KEYRING)
}
