package tls

import (
	"crypto/aes"
	"crypto/cipher"
)

// newAESGCM instantiates AES-GCM for a traffic key. The key length selects
// AES-128 or AES-256.
func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
