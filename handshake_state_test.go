package tls

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shearwater-tls/tls/pkg/crypto/keyschedule"
	"github.com/shearwater-tls/tls/pkg/crypto/selfsign"
)

func TestHandshakeDetailsStartsEmpty(t *testing.T) {
	details := NewHandshakeDetails(nil)

	require.Empty(t, details.TranscriptBytes())
	require.Nil(t, details.SessionID())
}

func TestHandshakeDetailsTranscriptOrder(t *testing.T) {
	details := NewHandshakeDetails(nil)

	messages := [][]byte{
		{0x01, 0x00, 0x00, 0x03, 0xaa, 0xbb, 0xcc},
		{0x02, 0x00, 0x00, 0x01, 0xdd},
		{0x0b, 0x00, 0x00, 0x00},
	}
	var expected []byte
	for _, m := range messages {
		details.AppendMessage(m)
		expected = append(expected, m...)
	}

	require.Equal(t, expected, details.TranscriptBytes())

	// The digest must be reproducible from the message sequence alone.
	want := sha256.Sum256(expected)
	require.Equal(t, want[:], details.TranscriptHash(sha256.New))
}

func TestHandshakeDetailsTranscriptCopiesInput(t *testing.T) {
	details := NewHandshakeDetails(nil)

	msg := []byte{0x01, 0x02, 0x03}
	details.AppendMessage(msg)
	msg[0] = 0xff

	require.Equal(t, []byte{0x01, 0x02, 0x03}, details.TranscriptBytes())
}

func TestHandshakeDetailsSessionIDSetOnce(t *testing.T) {
	details := NewHandshakeDetails(nil)

	id := []byte{0xde, 0xad, 0xbe, 0xef}
	require.NoError(t, details.SetSessionID(id))
	require.Equal(t, id, details.SessionID())

	err := details.SetSessionID([]byte{0x00})
	require.ErrorIs(t, err, errSessionIDAlreadySet)
	require.Equal(t, id, details.SessionID())
}

func TestHandshakeDetailsSessionIDImmutableAfterSet(t *testing.T) {
	details := NewHandshakeDetails(nil)
	require.NoError(t, details.SetSessionID([]byte{0x01, 0x02}))

	got := details.SessionID()
	got[0] = 0xff

	require.Equal(t, []byte{0x01, 0x02}, details.SessionID())
}

func TestServerKxDetailsReturnsSameArtifact(t *testing.T) {
	provider := &ECDHProvider{}
	kx, err := provider.NewKeyExchange(GroupX25519)
	require.NoError(t, err)

	details := NewServerKxDetails(kx)
	require.Same(t, kx, details.KeyExchange())
	require.Same(t, kx, details.KeyExchange())
}

func TestClientCertDetailsPreservesChainOrder(t *testing.T) {
	var chain [][]byte
	for _, cn := range []string{"leaf", "intermediate", "root"} {
		cert, err := selfsign.GenerateSelfSignedWithDNS(cn)
		require.NoError(t, err)
		chain = append(chain, cert.Certificate[0])
	}

	details := NewClientCertDetails(chain)

	got := details.CertificateChain()
	require.Len(t, got, 3)
	for i := range chain {
		if !bytes.Equal(chain[i], got[i]) {
			t.Fatalf("certificate %d reordered or modified", i)
		}
	}

	// Reordering the returned slice must not disturb the stored chain.
	got[0], got[2] = got[2], got[0]
	require.True(t, bytes.Equal(chain[0], details.CertificateChain()[0]))
}

// The driver-side flow: complete a key exchange held in ServerKxDetails,
// then run the transcript-bound key schedule on its shared secret.
func TestTrafficSecretDerivationFromKxDetails(t *testing.T) {
	provider := &ECDHProvider{}

	serverKx, err := provider.NewKeyExchange(GroupX25519)
	require.NoError(t, err)
	clientKx, err := provider.NewKeyExchange(GroupX25519)
	require.NoError(t, err)

	details := NewServerKxDetails(serverKx)
	sharedSecret, err := details.KeyExchange().SharedSecret(clientKx.PublicKey())
	require.NoError(t, err)

	handshake := NewHandshakeDetails(nil)
	handshake.AppendMessage([]byte{0x01, 0x00, 0x00, 0x02, 0x03, 0x04}) // ClientHello
	handshake.AppendMessage([]byte{0x02, 0x00, 0x00, 0x02, 0x03, 0x04}) // ServerHello

	suite := &cipherSuiteTLSAes128GcmSha256{}
	secret, err := keyschedule.DeriveSecret(
		suite.HashFunc(), sharedSecret, "s hs traffic",
		handshake.TranscriptHash(suite.HashFunc()))
	require.NoError(t, err)
	require.Len(t, secret, suite.HashFunc()().Size())
}
