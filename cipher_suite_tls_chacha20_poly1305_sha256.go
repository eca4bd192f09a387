package tls

import (
	"crypto/cipher"
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/chacha20poly1305"
)

type cipherSuiteTLSChacha20Poly1305Sha256 struct{}

func (c *cipherSuiteTLSChacha20Poly1305Sha256) ID() CipherSuiteID {
	return TLS_CHACHA20_POLY1305_SHA256
}

func (c *cipherSuiteTLSChacha20Poly1305Sha256) String() string {
	return "TLS_CHACHA20_POLY1305_SHA256"
}

func (c *cipherSuiteTLSChacha20Poly1305Sha256) ProtocolVersion() ProtocolVersion {
	return VersionTLS13
}

func (c *cipherSuiteTLSChacha20Poly1305Sha256) HashFunc() func() hash.Hash {
	return sha256.New
}

func (c *cipherSuiteTLSChacha20Poly1305Sha256) KeyLen() int {
	return chacha20poly1305.KeySize
}

func (c *cipherSuiteTLSChacha20Poly1305Sha256) NewAEAD(key []byte) (cipher.AEAD, error) {
	return chacha20poly1305.New(key)
}
