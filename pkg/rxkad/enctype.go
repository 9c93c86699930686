package rxkad

import (
	"errors"
	"fmt"

	"github.com/jcmturner/gokrb5/v8/iana/etypeID"
)

// Error taxonomy for the key reduction pipeline. Every error here is
// terminal: a wrong or weak session key would silently break the
// security property the derivation exists to provide, so callers are
// expected to abort the whole token operation rather than recover.
var (
	// ErrUnsupportedEnctype means the encryption type is unrecognized,
	// the null type, or one of the CMS/envelope pseudo-etypes that never
	// carry a Kerberos session key.
	ErrUnsupportedEnctype = errors.New("unsupported encryption type")

	// ErrDeprecatedEnctype means the encryption type is recognized but
	// protocol-deprecated (the raw-DES and des-hmac-sha1 variants).
	ErrDeprecatedEnctype = errors.New("deprecated encryption type")

	// ErrBadKeyLength means the key block fails the length precondition
	// for its encryption type.
	ErrBadKeyLength = errors.New("bad key length")

	// ErrShortPRF means the PRF produced fewer octets than a DES key
	// needs. With crypto/hmac over MD5 this cannot happen; the check is
	// kept as a terminal guard against a broken crypto backend.
	ErrShortPRF = errors.New("PRF returned short result")

	// ErrDerivationExhausted means no counter value in [1,255] produced
	// a non-weak key. The odds of that are astronomically small, but the
	// derivation must terminate deterministically rather than loop.
	ErrDerivationExhausted = errors.New("unable to derive strong DES key")
)

// Decision is the reduction path chosen for an encryption type.
type Decision int

const (
	// CopyAsIs: the key already is a single-DES key; used verbatim with
	// no parity or weak-key adjustment, matching legacy rxkad behavior.
	CopyAsIs Decision = iota

	// NormalizeThenDerive: a triple-DES key; its parity bits are
	// stripped to recover the raw key entropy, which then feeds the KDF.
	NormalizeThenDerive

	// DeriveDirectly: a modern enctype; the key block feeds the KDF
	// unchanged.
	DeriveDirectly
)

// Classify decides, from the encryption type tag and key length alone,
// how a session key gets reduced to DES strength. The policy follows
// draft-kaduk-afs3-rxkad-k5-kdf: the three legacy single-DES etypes are
// copied, the three des3-cbc variants are normalized and derived, the
// deprecated and CMS types are refused, and anything else falls through
// to unconditional derivation.
//
// For the fall-through path the length check (at least 7 octets)
// deliberately runs before the negative-tag check; keys of 7 octets are
// accepted there even though no real enctype produces one.
func Classify(enctype int32, keyLen int) (Decision, error) {
	switch enctype {
	case etypeID.DES_CBC_CRC, etypeID.DES_CBC_MD4, etypeID.DES_CBC_MD5:
		if keyLen != 8 {
			return 0, fmt.Errorf("%w: DES session key is %d octets, not 8", ErrBadKeyLength, keyLen)
		}
		return CopyAsIs, nil

	case etypeID.DES_CBC_RAW, etypeID.DES3_CBC_RAW, etypeID.DES_HMAC_SHA1:
		return 0, fmt.Errorf("%w (%d)", ErrDeprecatedEnctype, enctype)

	case etypeID.DES3_CBC_MD5, etypeID.DES3_CBC_SHA1, etypeID.DES3_CBC_SHA1_KD:
		if keyLen == 0 || keyLen%8 != 0 {
			return 0, fmt.Errorf("%w: 3DES session key is %d octets, not a multiple of 8", ErrBadKeyLength, keyLen)
		}
		return NormalizeThenDerive, nil

	case 0, // null
		etypeID.DSAWITHSHA1_CMSOID,
		etypeID.MD5WITHRSAENCRYPTION_CMSOID,
		etypeID.SHA1WITHRSAENCRYPTION_CMSOID,
		etypeID.RC2CBC_ENVOID,
		etypeID.RSAENCRYPTION_ENVOID,
		etypeID.RSAES_OAEP_ENV_OID,
		etypeID.DES_EDE3_CBC_ENV_OID:
		return 0, fmt.Errorf("%w (%d)", ErrUnsupportedEnctype, enctype)

	default:
		if keyLen < 7 {
			return 0, fmt.Errorf("%w: key block is %d octets, need at least 7", ErrBadKeyLength, keyLen)
		}
		if enctype < 0 {
			return 0, fmt.Errorf("%w (%d)", ErrUnsupportedEnctype, enctype)
		}
		return DeriveDirectly, nil
	}
}
