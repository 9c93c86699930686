//go:build !linux

package keyring

import "errors"

// AddRxRPC is a stub on platforms without the Linux key management
// syscalls.
func AddRxRPC(desc string, payload []byte) (int, error) {
	return 0, errors.New("rxrpc keyring keys require Linux")
}
