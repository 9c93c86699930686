package creds

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jcmturner/gokrb5/v8/credentials"

	"github.com/kafsutils/aklog/pkg/afs"
)

// ErrNoTicket means the credential cache holds no ticket for the AFS
// service principal.
var ErrNoTicket = errors.New("no AFS service ticket in credential cache")

// ServiceTicket is the slice of a cached credential the rxkad pipeline
// consumes: the session key with its encryption type, the encrypted
// ticket verbatim, and the ticket lifetime.
type ServiceTicket struct {
	Enctype int32
	Key     []byte
	Ticket  []byte
	EndTime time.Time
}

// DefaultCCachePath resolves the credential cache path the way libkrb5
// does: KRB5CCNAME first (FILE: prefix optional), then /tmp/krb5cc_<uid>.
func DefaultCCachePath() string {
	if env := os.Getenv("KRB5CCNAME"); env != "" {
		return strings.TrimPrefix(env, "FILE:")
	}
	return "/tmp/krb5cc_" + strconv.Itoa(os.Getuid())
}

// AFSServiceTicket loads the cache at path and returns the cached
// credential for afs/<cell>@<realm>.
func AFSServiceTicket(path, cell, realm string) (*ServiceTicket, error) {
	cc, err := credentials.LoadCCache(path)
	if err != nil {
		return nil, fmt.Errorf("loading credential cache %s: %w", path, err)
	}
	return findAFSCredential(cc, cell, realm)
}

func findAFSCredential(cc *credentials.CCache, cell, realm string) (*ServiceTicket, error) {
	service := "afs/" + cell
	for _, cred := range cc.Credentials {
		if cred.Server.Realm != realm {
			continue
		}
		if cred.Server.PrincipalName.PrincipalNameString() != service {
			continue
		}
		return &ServiceTicket{
			Enctype: cred.Key.KeyType,
			Key:     cred.Key.KeyValue,
			Ticket:  cred.Ticket,
			EndTime: cred.EndTime,
		}, nil
	}
	return nil, fmt.Errorf("%w: run kinit, then kvno %s",
		ErrNoTicket, afs.ServicePrincipal(cell, realm))
}
