// Package elliptic provides the named-curve key agreement backing the
// built-in crypto provider.
package elliptic

import (
	"crypto/ecdh"
	"crypto/rand"
	"errors"
	"fmt"
)

var errInvalidNamedCurve = errors.New("invalid named curve")

// Curve is used to represent the IANA registered curves for TLS
//
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xml#tls-parameters-8
type Curve uint16

// Curve enums.
const (
	P256   Curve = 0x0017
	P384   Curve = 0x0018
	X25519 Curve = 0x001d
)

func (c Curve) String() string {
	switch c {
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	case X25519:
		return "X25519"
	}

	return fmt.Sprintf("%#x", uint16(c))
}

// Curves returns all curves we implement.
func Curves() map[Curve]bool {
	return map[Curve]bool{
		X25519: true,
		P256:   true,
		P384:   true,
	}
}

// Keypair is a Curve with a Private/Public Keypair.
type Keypair struct {
	Curve      Curve
	PublicKey  []byte
	PrivateKey []byte
}

// GenerateKeypair generates a keypair for the given Curve.
func GenerateKeypair(curve Curve) (*Keypair, error) {
	ec, err := curve.toECDH()
	if err != nil {
		return nil, err
	}

	sk, err := ec.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	pk := sk.PublicKey()

	return &Keypair{
		Curve:      curve,
		PublicKey:  pk.Bytes(), // NIST: SEC1 uncompressed (04||X||Y); X25519: 32 bytes
		PrivateKey: sk.Bytes(), // Scalar suitable for ecdh.NewPrivateKey
	}, nil
}

// SharedSecret completes the exchange against a peer's public key.
func (k *Keypair) SharedSecret(peerPublicKey []byte) ([]byte, error) {
	ec, err := k.Curve.toECDH()
	if err != nil {
		return nil, err
	}

	sk, err := ec.NewPrivateKey(k.PrivateKey)
	if err != nil {
		return nil, err
	}

	pk, err := ec.NewPublicKey(peerPublicKey)
	if err != nil {
		return nil, err
	}

	return sk.ECDH(pk)
}

// toECDH returns the crypto/ecdh curve for our enum.
func (c Curve) toECDH() (ecdh.Curve, error) {
	switch c {
	case X25519:
		return ecdh.X25519(), nil
	case P256:
		return ecdh.P256(), nil
	case P384:
		return ecdh.P384(), nil
	default:
		return nil, errInvalidNamedCurve
	}
}
