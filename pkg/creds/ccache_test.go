package creds

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureCred is one credential for the ccache fixture writer.
type fixtureCred struct {
	serverRealm string
	serverComps []string
	keyType     int16
	key         []byte
	endTime     uint32
	ticket      []byte
}

// writeCCacheFixture writes a minimal MIT v4 credential cache. The v4
// format is big-endian throughout: a DeltaTime header field, the default
// principal, then credentials with counted strings and data blobs.
func writeCCacheFixture(t *testing.T, creds []fixtureCred) string {
	t.Helper()

	var b bytes.Buffer
	be := func(v any) {
		require.NoError(t, binary.Write(&b, binary.BigEndian, v))
	}
	writeData := func(d []byte) {
		be(int32(len(d)))
		b.Write(d)
	}
	writePrincipal := func(realm string, comps ...string) {
		be(int32(1)) // KRB_NT_PRINCIPAL
		be(int32(len(comps)))
		writeData([]byte(realm))
		for _, c := range comps {
			writeData([]byte(c))
		}
	}

	b.Write([]byte{5, 4}) // file format version

	// Header: one DeltaTime field (tag 1, 8 octets of KDC time offset).
	be(uint16(12))
	be(uint16(1))
	be(uint16(8))
	b.Write(make([]byte, 8))

	writePrincipal("EXAMPLE.COM", "user")

	for _, c := range creds {
		writePrincipal("EXAMPLE.COM", "user")
		writePrincipal(c.serverRealm, c.serverComps...)
		be(c.keyType)
		writeData(c.key)
		be(uint32(1767225600)) // authtime
		be(uint32(1767225600)) // starttime
		be(c.endTime)
		be(uint32(0))               // renew till
		b.WriteByte(0)              // is_skey
		b.Write([]byte{0, 0, 0, 0}) // ticket flags
		be(int32(0))                // addresses
		be(int32(0))                // authdata
		writeData(c.ticket)
		writeData(nil) // second ticket
	}

	path := filepath.Join(t.TempDir(), "krb5cc_fixture")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o600))
	return path
}

func TestAFSServiceTicket(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	ticket := []byte{0x61, 0x81, 0x99, 0x30, 0x81, 0x96}

	path := writeCCacheFixture(t, []fixtureCred{
		{
			serverRealm: "EXAMPLE.COM",
			serverComps: []string{"krbtgt", "EXAMPLE.COM"},
			keyType:     18,
			key:         make([]byte, 32),
			endTime:     1893456000,
			ticket:      []byte{0x61, 0x01},
		},
		{
			serverRealm: "EXAMPLE.COM",
			serverComps: []string{"afs", "example.com"},
			keyType:     18,
			key:         key,
			endTime:     1893456000,
			ticket:      ticket,
		},
	})

	st, err := AFSServiceTicket(path, "example.com", "EXAMPLE.COM")
	require.NoError(t, err)

	assert.Equal(t, int32(18), st.Enctype)
	assert.Equal(t, key, st.Key)
	assert.Equal(t, ticket, st.Ticket)
	assert.Equal(t, time.Unix(1893456000, 0).UTC(), st.EndTime.UTC())
}

func TestAFSServiceTicketMissing(t *testing.T) {
	path := writeCCacheFixture(t, []fixtureCred{
		{
			serverRealm: "EXAMPLE.COM",
			serverComps: []string{"krbtgt", "EXAMPLE.COM"},
			keyType:     18,
			key:         make([]byte, 32),
			endTime:     1893456000,
			ticket:      []byte{0x61, 0x01},
		},
	})

	_, err := AFSServiceTicket(path, "example.com", "EXAMPLE.COM")
	require.ErrorIs(t, err, ErrNoTicket)
	assert.Contains(t, err.Error(), "afs/example.com@EXAMPLE.COM")
}

func TestAFSServiceTicketRealmMismatch(t *testing.T) {
	path := writeCCacheFixture(t, []fixtureCred{
		{
			serverRealm: "OTHER.REALM",
			serverComps: []string{"afs", "example.com"},
			keyType:     18,
			key:         make([]byte, 32),
			endTime:     1893456000,
			ticket:      []byte{0x61, 0x01},
		},
	})

	_, err := AFSServiceTicket(path, "example.com", "EXAMPLE.COM")
	require.ErrorIs(t, err, ErrNoTicket)
}

func TestAFSServiceTicketBadCache(t *testing.T) {
	_, err := AFSServiceTicket(filepath.Join(t.TempDir(), "missing"), "example.com", "EXAMPLE.COM")
	require.Error(t, err)
}

func TestDefaultCCachePath(t *testing.T) {
	t.Setenv("KRB5CCNAME", "FILE:/tmp/krb5cc_test")
	assert.Equal(t, "/tmp/krb5cc_test", DefaultCCachePath())

	t.Setenv("KRB5CCNAME", "/var/run/cc")
	assert.Equal(t, "/var/run/cc", DefaultCCachePath())

	t.Setenv("KRB5CCNAME", "")
	assert.Contains(t, DefaultCCachePath(), "/tmp/krb5cc_")
}
