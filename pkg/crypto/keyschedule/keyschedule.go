// Package keyschedule implements the TLS 1.3 key derivation functions the
// handshake driver runs on a completed key exchange and transcript.
package keyschedule

import (
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/hkdf"
)

var errMissingHashFunction = errors.New("expected a non-nil hash function")
var errLabelTooBig = errors.New("expected a label with length <= 255")
var errContextTooBig = errors.New("expected a context with length <= 255")

// prefix is prepended to every label (RFC 8446 section 7.1).
const prefix = "tls13 "

// Extract implements HKDF-Extract from RFC 5869 section 2.2. If salt is
// empty it is replaced with HashLen zero bytes.
func Extract(hashFunc func() hash.Hash, salt, ikm []byte) ([]byte, error) {
	if hashFunc == nil {
		return nil, errMissingHashFunction
	}

	// The order of the ikm and salt arguments is swapped relative to the RFC.
	return hkdf.Extract(hashFunc, ikm, salt), nil
}

// ExpandLabel implements HKDF-Expand-Label from RFC 8446 section 7.1.
func ExpandLabel(hashFunc func() hash.Hash, secret []byte, label string, context []byte, length int) ([]byte, error) {
	if hashFunc == nil {
		return nil, errMissingHashFunction
	}

	fullLabel := []byte(prefix + label)
	if len(fullLabel) > 255 {
		return nil, errLabelTooBig
	}
	if len(context) > 255 {
		return nil, errContextTooBig
	}

	// The HkdfLabel struct (RFC 8446 section 7.1).
	var builder cryptobyte.Builder
	builder.AddUint16(uint16(length))
	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(fullLabel)
	})
	builder.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(context)
	})

	hkdfLabel, err := builder.Bytes()
	if err != nil {
		return nil, err
	}

	out := make([]byte, length)
	r := hkdf.Expand(hashFunc, secret, hkdfLabel)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}

	return out, nil
}

// DeriveSecret implements Derive-Secret from RFC 8446 section 7.1: an
// ExpandLabel over the transcript hash, sized to the hash output.
func DeriveSecret(hashFunc func() hash.Hash, secret []byte, label string, transcriptHash []byte) ([]byte, error) {
	if hashFunc == nil {
		return nil, errMissingHashFunction
	}

	return ExpandLabel(hashFunc, secret, label, transcriptHash, hashFunc().Size())
}
