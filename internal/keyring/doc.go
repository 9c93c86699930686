// Package keyring installs rxrpc keys where the kernel AFS client finds
// them: the session keyring. Only Linux has kAFS; everywhere else the
// operations report themselves unsupported.
package keyring
