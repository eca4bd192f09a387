package tls

import (
	"crypto/cipher"
	"crypto/sha512"
	"hash"
)

type cipherSuiteTLSAes256GcmSha384 struct{}

func (c *cipherSuiteTLSAes256GcmSha384) ID() CipherSuiteID {
	return TLS_AES_256_GCM_SHA384
}

func (c *cipherSuiteTLSAes256GcmSha384) String() string {
	return "TLS_AES_256_GCM_SHA384"
}

func (c *cipherSuiteTLSAes256GcmSha384) ProtocolVersion() ProtocolVersion {
	return VersionTLS13
}

func (c *cipherSuiteTLSAes256GcmSha384) HashFunc() func() hash.Hash {
	return sha512.New384
}

func (c *cipherSuiteTLSAes256GcmSha384) KeyLen() int {
	return 32
}

func (c *cipherSuiteTLSAes256GcmSha384) NewAEAD(key []byte) (cipher.AEAD, error) {
	return newAESGCM(key)
}
