package tls

import (
	"crypto/cipher"
	"crypto/sha256"
	"hash"
)

type cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256 struct{}

func (c *cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256) ID() CipherSuiteID {
	return TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256
}

func (c *cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256) String() string {
	return "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256"
}

func (c *cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256) ProtocolVersion() ProtocolVersion {
	return VersionTLS12
}

func (c *cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256) HashFunc() func() hash.Hash {
	return sha256.New
}

func (c *cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256) KeyLen() int {
	return 16
}

func (c *cipherSuiteTLSEcdheEcdsaWithAes128GcmSha256) NewAEAD(key []byte) (cipher.AEAD, error) {
	return newAESGCM(key)
}
