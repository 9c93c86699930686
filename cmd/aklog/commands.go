package main

import (
	"fmt"
	"time"

	"github.com/kafsutils/aklog/internal/keyring"
	"github.com/kafsutils/aklog/pkg/afs"
	"github.com/kafsutils/aklog/pkg/creds"
	"github.com/kafsutils/aklog/pkg/rxkad"
)

// cmdSetToken handles the one thing aklog does: turn the cached
// Kerberos ticket for afs/<cell> into an rxrpc key in the session
// keyring. Every failure along the way is terminal - installing a
// partial or weak key would be worse than installing none.
func cmdSetToken(cell, realm string) error {
	cell = afs.NormalizeCell(cell)
	if realm == "" {
		realm = afs.DefaultRealm(cell)
	}

	if flags.verbose {
		fmt.Printf("CELL %s\n", cell)
		fmt.Printf("PRINC %s\n", afs.ServicePrincipal(cell, realm))
	}

	path := flags.cache
	if path == "" {
		path = creds.DefaultCCachePath()
	}

	tkt, err := creds.AFSServiceTicket(path, cell, realm)
	if err != nil {
		return err
	}

	sessionKey, err := rxkad.SessionKey(tkt.Enctype, tkt.Key)
	if err != nil {
		return err
	}

	payload := rxkad.Payload{
		Ticket: tkt.Ticket,
		Expiry: uint32(tkt.EndTime.Unix()),
		KVNO:   rxkad.TicketTypeKerberosV5,
	}
	copy(payload.SessionKey[:], sessionKey)

	blob, err := payload.Marshal()
	if err != nil {
		return err
	}

	desc := afs.KeyDescription(cell)

	if flags.dryRun {
		fmt.Printf("[+] Derived rxkad session key for %s (payload %d bytes, ticket expires %s)\n",
			desc, len(blob), tkt.EndTime.Format(time.RFC3339))
		return nil
	}

	id, err := keyring.AddRxRPC(desc, blob)
	if err != nil {
		return fmt.Errorf("adding rxrpc key %s: %w", desc, err)
	}

	if flags.verbose {
		fmt.Printf("[+] Installed key %d as %s\n", id, desc)
	}
	return nil
}
