package tls

import (
	"hash"

	"github.com/pion/logging"
)

// transcript is the append-only record of handshake message bytes, in
// the exact order sent and received. The final digest must be
// reproducible from the message sequence alone, so nothing is ever
// removed or reordered.
type transcript struct {
	messages [][]byte
}

func (t *transcript) push(data []byte) {
	t.messages = append(t.messages, append([]byte{}, data...))
}

func (t *transcript) combined() []byte {
	out := make([]byte, 0)
	for _, m := range t.messages {
		out = append(out, m...)
	}

	return out
}

// HandshakeDetails accumulates per-connection negotiation state while a
// handshake is in progress. It is created once at handshake start and
// mutated only by the handshake driver, strictly sequentially; it must
// never be shared between connections.
type HandshakeDetails struct {
	transcript transcript
	sessionID  []byte
	log        logging.LeveledLogger
}

// NewHandshakeDetails creates the state for one handshake: an empty
// transcript and an empty session identifier.
func NewHandshakeDetails(loggerFactory logging.LoggerFactory) *HandshakeDetails {
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &HandshakeDetails{
		log: loggerFactory.NewLogger("tls"),
	}
}

// AppendMessage records the canonical bytes of one handshake message.
func (h *HandshakeDetails) AppendMessage(data []byte) {
	h.transcript.push(data)
	h.log.Tracef("transcript: appended %d bytes (%d messages)", len(data), len(h.transcript.messages))
}

// TranscriptBytes returns the concatenation of every appended message,
// in append order.
func (h *HandshakeDetails) TranscriptBytes() []byte {
	return h.transcript.combined()
}

// TranscriptHash digests the transcript with the negotiated suite's hash.
func (h *HandshakeDetails) TranscriptHash(hashFunc func() hash.Hash) []byte {
	digest := hashFunc()
	for _, m := range h.transcript.messages {
		digest.Write(m)
	}

	return digest.Sum(nil)
}

// SetSessionID records the session identifier the protocol assigned.
// It may be called at most once for a handshake; the identifier is
// immutable afterwards.
func (h *HandshakeDetails) SetSessionID(id []byte) error {
	if h.sessionID != nil {
		return errSessionIDAlreadySet
	}
	h.sessionID = append([]byte{}, id...)
	h.log.Debugf("session id set (%d bytes)", len(id))

	return nil
}

// SessionID returns the assigned session identifier, or nil while the
// protocol has not assigned one.
func (h *HandshakeDetails) SessionID() []byte {
	if h.sessionID == nil {
		return nil
	}

	return append([]byte{}, h.sessionID...)
}

// ServerKxDetails holds the server's completed key-exchange artifact
// until the driver extracts it to derive traffic secrets. The artifact
// is stored as-is and never interpreted here.
type ServerKxDetails struct {
	kx KeyExchange
}

// NewServerKxDetails wraps a completed key exchange.
func NewServerKxDetails(kx KeyExchange) *ServerKxDetails {
	return &ServerKxDetails{kx: kx}
}

// KeyExchange returns exactly the artifact the details were created with.
func (s *ServerKxDetails) KeyExchange() KeyExchange {
	return s.kx
}

// ClientCertDetails holds the certificate chain a client presented,
// leaf first, exactly as received. Verifying the chain is the
// Verifier's job; this container only guarantees lossless,
// order-preserving storage.
type ClientCertDetails struct {
	certChain [][]byte
}

// NewClientCertDetails stores a parsed client certificate chain.
func NewClientCertDetails(certChain [][]byte) *ClientCertDetails {
	return &ClientCertDetails{certChain: certChain}
}

// CertificateChain returns the chain in the order the peer presented it.
func (c *ClientCertDetails) CertificateChain() [][]byte {
	return append([][]byte{}, c.certChain...)
}
