package tls

import (
	"crypto/cipher"
	"fmt"
	"hash"
)

// CipherSuiteID is an ID for our supported CipherSuites.
type CipherSuiteID uint16

// Supported Cipher Suites.
const (
	// TLS 1.3
	TLS_AES_128_GCM_SHA256       CipherSuiteID = 0x1301 //nolint:golint,stylecheck
	TLS_AES_256_GCM_SHA384       CipherSuiteID = 0x1302 //nolint:golint,stylecheck
	TLS_CHACHA20_POLY1305_SHA256 CipherSuiteID = 0x1303 //nolint:golint,stylecheck

	// TLS 1.2
	TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256       CipherSuiteID = 0xc02b //nolint:golint,stylecheck
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256         CipherSuiteID = 0xc02f //nolint:golint,stylecheck
	TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256 CipherSuiteID = 0xcca9 //nolint:golint,stylecheck
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256   CipherSuiteID = 0xcca8 //nolint:golint,stylecheck
)

func (c CipherSuiteID) String() string {
	switch c {
	case TLS_AES_128_GCM_SHA256:
		return "TLS_AES_128_GCM_SHA256"
	case TLS_AES_256_GCM_SHA384:
		return "TLS_AES_256_GCM_SHA384"
	case TLS_CHACHA20_POLY1305_SHA256:
		return "TLS_CHACHA20_POLY1305_SHA256"
	case TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256:
		return "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256"
	case TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:
		return "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256"
	case TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256:
		return "TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256"
	case TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256:
		return "TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256"
	default:
		return fmt.Sprintf("unknown(%v)", uint16(c))
	}
}

// CipherSuite is a specific combination of key agreement, cipher and MAC
// function, tied to one protocol version. The configuration layer treats
// suites as atoms: it stores and returns them, the record layer drives the
// AEAD they construct.
//
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xml
type CipherSuite interface {
	ID() CipherSuiteID
	String() string

	// ProtocolVersion returns the protocol version this suite belongs to.
	ProtocolVersion() ProtocolVersion

	// HashFunc returns the hash backing this suite's transcript and HKDF.
	HashFunc() func() hash.Hash

	// KeyLen returns the AEAD key length in bytes.
	KeyLen() int

	// NewAEAD builds the suite's AEAD from a traffic key.
	NewAEAD(key []byte) (cipher.AEAD, error)
}

// CipherSuiteName provides the same functionality as tls.CipherSuiteName
// that appeared first in Go 1.14.
func CipherSuiteName(id CipherSuiteID) string {
	suite := cipherSuiteForID(id)
	if suite != nil {
		return suite.String()
	}

	return fmt.Sprintf("0x%04X", uint16(id))
}

func cipherSuiteForID(id CipherSuiteID) CipherSuite {
	switch id { //nolint:exhaustive
	case TLS_AES_128_GCM_SHA256:
		return &cipherSuiteTLSAes128GcmSha256{}
	case TLS_AES_256_GCM_SHA384:
		return &cipherSuiteTLSAes256GcmSha384{}
	case TLS_CHACHA20_POLY1305_SHA256:
		return &cipherSuiteTLSChacha20Poly1305Sha256{}
	case TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256:
		return &cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256{}
	case TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:
		return &cipherSuiteTLSEcdheRsaWithAes128GcmSha256{}
	case TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256:
		return &cipherSuiteTLSEcdheEcdsaWithChacha20Poly1305Sha256{}
	case TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256:
		return &cipherSuiteTLSEcdheRsaWithChacha20Poly1305Sha256{}
	}

	return nil
}

// DefaultCipherSuites returns the suites we enable by default, in preference
// order. Only high-quality suites are offered: this library implements no
// low-, export- or NULL-strength suites at all, so nothing needs filtering.
func DefaultCipherSuites() []CipherSuite {
	return []CipherSuite{
		&cipherSuiteTLSAes128GcmSha256{},
		&cipherSuiteTLSAes256GcmSha384{},
		&cipherSuiteTLSChacha20Poly1305Sha256{},
		&cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256{},
		&cipherSuiteTLSEcdheRsaWithAes128GcmSha256{},
		&cipherSuiteTLSEcdheEcdsaWithChacha20Poly1305Sha256{},
		&cipherSuiteTLSEcdheRsaWithChacha20Poly1305Sha256{},
	}
}

func cipherSuiteIDs(cipherSuites []CipherSuite) []uint16 {
	rtrn := []uint16{}
	for _, c := range cipherSuites {
		rtrn = append(rtrn, uint16(c.ID()))
	}

	return rtrn
}
