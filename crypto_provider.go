package tls

import (
	"github.com/shearwater-tls/tls/pkg/crypto/elliptic"
)

// NamedGroup is a key-exchange group a CryptoProvider implements. Group
// values live for the whole process: the configuration layer stores
// references to them and never copies or mutates them.
type NamedGroup struct {
	curve elliptic.Curve
	name  string
}

// Curve returns the IANA curve ID for this group.
func (g *NamedGroup) Curve() elliptic.Curve {
	return g.curve
}

func (g *NamedGroup) String() string {
	return g.name
}

// Key-exchange groups implemented by the built-in provider.
var (
	GroupX25519 = &NamedGroup{curve: elliptic.X25519, name: "x25519"}  //nolint:gochecknoglobals
	GroupP256   = &NamedGroup{curve: elliptic.P256, name: "secp256r1"} //nolint:gochecknoglobals
	GroupP384   = &NamedGroup{curve: elliptic.P384, name: "secp384r1"} //nolint:gochecknoglobals
)

// KeyExchange is the artifact of one ephemeral key-exchange computation.
// The handshake driver extracts the shared secret from it to derive
// traffic secrets; the configuration layer never interprets it.
type KeyExchange interface {
	Group() *NamedGroup
	PublicKey() []byte
	SharedSecret(peerPublicKey []byte) ([]byte, error)
}

// CryptoProvider supplies concrete key-exchange implementations and the
// table of groups it supports. The table is fixed for the provider's
// lifetime and returned in preference order.
type CryptoProvider interface {
	KeyExchangeGroups() []*NamedGroup
	NewKeyExchange(group *NamedGroup) (KeyExchange, error)
}

// ECDHProvider is the built-in CryptoProvider, backed by crypto/ecdh
// through pkg/crypto/elliptic.
type ECDHProvider struct{}

// defaultKxGroups is process-lifetime; the provider hands out references.
var defaultKxGroups = []*NamedGroup{GroupX25519, GroupP256, GroupP384} //nolint:gochecknoglobals

// KeyExchangeGroups returns all groups the provider implements, in
// preference order.
func (p *ECDHProvider) KeyExchangeGroups() []*NamedGroup {
	return append([]*NamedGroup{}, defaultKxGroups...)
}

// NewKeyExchange generates a fresh ephemeral keypair on the given group.
func (p *ECDHProvider) NewKeyExchange(group *NamedGroup) (KeyExchange, error) {
	keypair, err := elliptic.GenerateKeypair(group.Curve())
	if err != nil {
		return nil, err
	}

	return &ecdhKeyExchange{group: group, keypair: keypair}, nil
}

type ecdhKeyExchange struct {
	group   *NamedGroup
	keypair *elliptic.Keypair
}

func (e *ecdhKeyExchange) Group() *NamedGroup {
	return e.group
}

func (e *ecdhKeyExchange) PublicKey() []byte {
	return e.keypair.PublicKey
}

func (e *ecdhKeyExchange) SharedSecret(peerPublicKey []byte) ([]byte, error) {
	return e.keypair.SharedSecret(peerPublicKey)
}
