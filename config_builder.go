package tls

import (
	"github.com/pion/logging"
)

// Side says whether a configuration belongs to the client or the server
// end of a connection. The classification is closed: builders exist only
// for the two values below, and every phase object carries the side and
// provider it was created with.
type Side int

// Side enums.
const (
	SideClient Side = iota + 1
	SideServer
)

func (s Side) String() string {
	switch s {
	case SideClient:
		return "client"
	case SideServer:
		return "server"
	default:
		return "unknown"
	}
}

// Verifier validates a peer's certificate chain. Chain validation is an
// external collaborator's job; the configuration layer only carries the
// hook through to the handshake driver.
type Verifier interface {
	VerifyCertificateChain(chain [][]byte) error
}

// Building a Config happens in a fixed sequence of phases, each exposing
// only the decision that phase is about:
//
//	NewClientConfigBuilder(nil).
//		WithDefaultCipherSuites().
//		WithDefaultKeyExchangeGroups().
//		WithDefaultProtocolVersions() // fallible
//
// or, shortened and infallible:
//
//	NewClientConfigBuilder(nil).WithSafeDefaults()
//
// Phase values are consumed by the call that advances them. No caller can
// obtain a Config without having supplied cipher suites, key-exchange
// groups and protocol versions, in that order: every phase struct has only
// unexported fields, so the phase sequence cannot be entered sideways.
//
// Advancing a builder never touches anything outside the phase value, so
// unused suites, groups and versions stay unreferenced and the linker can
// discard them.

// ConfigBuilder is the entry phase: the caller must choose cipher suites.
type ConfigBuilder struct {
	side     Side
	provider CryptoProvider
}

// NewClientConfigBuilder starts configuration for a client endpoint.
// The provider binding is fixed for the builder's lifetime. A nil
// provider selects the built-in ECDHProvider.
func NewClientConfigBuilder(provider CryptoProvider) ConfigBuilder {
	return newConfigBuilder(SideClient, provider)
}

// NewServerConfigBuilder starts configuration for a server endpoint.
// The provider binding is fixed for the builder's lifetime. A nil
// provider selects the built-in ECDHProvider.
func NewServerConfigBuilder(provider CryptoProvider) ConfigBuilder {
	return newConfigBuilder(SideServer, provider)
}

func newConfigBuilder(side Side, provider CryptoProvider) ConfigBuilder {
	if provider == nil {
		provider = &ECDHProvider{}
	}

	return ConfigBuilder{side: side, provider: provider}
}

// WithCipherSuites chooses a specific set of cipher suites, in preference
// order. Emptiness is not checked here; an empty selection fails the
// protocol-versions step, which is where joint satisfiability is decided.
func (b ConfigBuilder) WithCipherSuites(cipherSuites []CipherSuite) KxGroupsBuilder {
	return KxGroupsBuilder{
		side:         b.side,
		provider:     b.provider,
		cipherSuites: append([]CipherSuite{}, cipherSuites...),
	}
}

// WithDefaultCipherSuites chooses the library's default suites
// (DefaultCipherSuites).
func (b ConfigBuilder) WithDefaultCipherSuites() KxGroupsBuilder {
	return b.WithCipherSuites(DefaultCipherSuites())
}

// WithSafeDefaults chooses the default cipher suites, the provider's full
// key-exchange group table and the default protocol versions in one step.
// The defaults are jointly satisfiable, so unlike the manual
// protocol-versions step this cannot fail.
func (b ConfigBuilder) WithSafeDefaults() VerifierBuilder {
	return VerifierBuilder{
		side:         b.side,
		provider:     b.provider,
		cipherSuites: DefaultCipherSuites(),
		kxGroups:     b.provider.KeyExchangeGroups(),
		versions:     defaultEnabledVersions(),
	}
}

// KxGroupsBuilder is the phase where the caller must choose key-exchange
// groups.
type KxGroupsBuilder struct {
	side         Side
	provider     CryptoProvider
	cipherSuites []CipherSuite
}

// WithKeyExchangeGroups chooses a specific set of the provider's groups,
// in preference order. Group values are stored by reference.
func (b KxGroupsBuilder) WithKeyExchangeGroups(kxGroups []*NamedGroup) VersionsBuilder {
	return VersionsBuilder{
		side:         b.side,
		provider:     b.provider,
		cipherSuites: b.cipherSuites,
		kxGroups:     append([]*NamedGroup{}, kxGroups...),
	}
}

// WithDefaultKeyExchangeGroups chooses every group the provider implements.
func (b KxGroupsBuilder) WithDefaultKeyExchangeGroups() VersionsBuilder {
	return b.WithKeyExchangeGroups(b.provider.KeyExchangeGroups())
}

// VersionsBuilder is the phase where the caller must choose protocol
// versions. This is the only fallible phase: it checks that the choices
// made so far are jointly satisfiable.
type VersionsBuilder struct {
	side         Side
	provider     CryptoProvider
	cipherSuites []CipherSuite
	kxGroups     []*NamedGroup
}

// WithProtocolVersions chooses a specific set of protocol versions.
//
// It fails with errNoUsableCipherSuites if none of the chosen suites
// belongs to any candidate version, and with errNoKxGroupsConfigured if
// the group selection is empty. Both conditions are always checked; on
// failure nothing is retained and the caller must rebuild from phase one.
func (b VersionsBuilder) WithProtocolVersions(versions []ProtocolVersion) (VerifierBuilder, error) {
	anyUsableSuite := false
outer:
	for _, suite := range b.cipherSuites {
		for _, v := range versions {
			if suite.ProtocolVersion() == v {
				anyUsableSuite = true

				break outer
			}
		}
	}
	if !anyUsableSuite {
		return VerifierBuilder{}, errNoUsableCipherSuites
	}

	if len(b.kxGroups) == 0 {
		return VerifierBuilder{}, errNoKxGroupsConfigured
	}

	enabled, err := NewEnabledVersions(versions)
	if err != nil {
		return VerifierBuilder{}, err
	}

	return VerifierBuilder{
		side:         b.side,
		provider:     b.provider,
		cipherSuites: b.cipherSuites,
		kxGroups:     b.kxGroups,
		versions:     enabled,
	}, nil
}

// WithDefaultProtocolVersions chooses the library's default versions
// (DefaultProtocolVersions). The satisfiability checks still run against
// the suites and groups chosen earlier.
func (b VersionsBuilder) WithDefaultProtocolVersions() (VerifierBuilder, error) {
	return b.WithProtocolVersions(DefaultProtocolVersions())
}

// VerifierBuilder is the final phase: all cryptographic decisions have
// been made and validated, the caller must choose how the peer's identity
// is verified.
type VerifierBuilder struct {
	side          Side
	provider      CryptoProvider
	cipherSuites  []CipherSuite
	kxGroups      []*NamedGroup
	versions      EnabledVersions
	loggerFactory logging.LoggerFactory
}

// WithLoggerFactory sets the logger factory handshakes started from the
// resulting Config will use. It does not advance the phase.
func (b VerifierBuilder) WithLoggerFactory(loggerFactory logging.LoggerFactory) VerifierBuilder {
	b.loggerFactory = loggerFactory

	return b
}

// WithVerifier completes construction with the given peer verifier.
func (b VerifierBuilder) WithVerifier(verifier Verifier) *Config {
	return b.build(verifier, false)
}

// WithInsecureSkipVerify completes construction without peer
// verification. Only suitable for tests and diagnostics.
func (b VerifierBuilder) WithInsecureSkipVerify() *Config {
	return b.build(nil, true)
}

func (b VerifierBuilder) build(verifier Verifier, insecureSkipVerify bool) *Config {
	// Every path through the phase sequence leaves all of these set: the
	// entry points fix side and provider, and the versions step refuses
	// empty suite and version selections. Only a zero-value literal
	// constructed outside the sequence can reach here without them.
	if b.side == 0 || b.provider == nil || len(b.cipherSuites) == 0 || len(b.versions.versions) == 0 {
		panic("tls: VerifierBuilder constructed outside the builder phase sequence")
	}

	loggerFactory := b.loggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	conf := &Config{
		side:               b.side,
		provider:           b.provider,
		cipherSuites:       b.cipherSuites,
		kxGroups:           b.kxGroups,
		versions:           b.versions,
		verifier:           verifier,
		insecureSkipVerify: insecureSkipVerify,
		loggerFactory:      loggerFactory,
	}

	log := loggerFactory.NewLogger("tls")
	log.Debugf("built %s config: suites=%v groups=%v versions=%v",
		conf.side, cipherSuiteIDs(conf.cipherSuites), conf.kxGroups, conf.versions.Versions())

	return conf
}
