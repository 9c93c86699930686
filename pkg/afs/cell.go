// Package afs holds the naming conventions tying an AFS cell to its
// Kerberos realm and kernel key.
//
// An AFS cell name is a DNS-style name, conventionally lowercase; the
// Kerberos realm that issues its tickets is conventionally the same name
// uppercased. The cell's service principal is afs/<cell>@<REALM>, and
// the rxrpc key the kernel looks up for the cell is described afs@<cell>.
package afs

import "strings"

// NormalizeCell lowercases a cell name to its canonical form.
func NormalizeCell(cell string) string {
	return strings.ToLower(cell)
}

// DefaultRealm returns the realm conventionally paired with a cell when
// none is given explicitly: the cell name uppercased.
func DefaultRealm(cell string) string {
	return strings.ToUpper(cell)
}

// ServicePrincipal returns the AFS service principal for a cell,
// afs/<cell>@<REALM>.
func ServicePrincipal(cell, realm string) string {
	return "afs/" + cell + "@" + realm
}

// KeyDescription returns the rxrpc key description the kernel AFS
// client searches for when authenticating calls to a cell.
func KeyDescription(cell string) string {
	return "afs@" + cell
}
