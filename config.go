package tls

import (
	"github.com/pion/logging"
)

// Config is a completed endpoint configuration. It is immutable after
// construction and safe to share between any number of concurrent
// handshakes; accessors hand out copies so no caller can mutate the
// shared state.
//
// The only way to obtain a Config is to drive a builder through its
// phases, starting from NewClientConfigBuilder or NewServerConfigBuilder.
type Config struct {
	side               Side
	provider           CryptoProvider
	cipherSuites       []CipherSuite
	kxGroups           []*NamedGroup
	versions           EnabledVersions
	verifier           Verifier
	insecureSkipVerify bool
	loggerFactory      logging.LoggerFactory
}

// Side returns which end of the connection this Config was built for.
func (c *Config) Side() Side {
	return c.side
}

// CryptoProvider returns the provider the Config was bound to before
// construction began.
func (c *Config) CryptoProvider() CryptoProvider {
	return c.provider
}

// CipherSuites returns the configured suites in preference order.
func (c *Config) CipherSuites() []CipherSuite {
	return append([]CipherSuite{}, c.cipherSuites...)
}

// KeyExchangeGroups returns the configured groups in preference order.
func (c *Config) KeyExchangeGroups() []*NamedGroup {
	return append([]*NamedGroup{}, c.kxGroups...)
}

// EnabledVersions returns the validated protocol-version set.
func (c *Config) EnabledVersions() EnabledVersions {
	return c.versions
}

// Verifier returns the configured peer verifier, or nil when verification
// was explicitly skipped.
func (c *Config) Verifier() Verifier {
	return c.verifier
}

// InsecureSkipVerify reports whether peer verification was disabled.
func (c *Config) InsecureSkipVerify() bool {
	return c.insecureSkipVerify
}

// LoggerFactory returns the factory handshakes started from this Config
// use for their connection loggers.
func (c *Config) LoggerFactory() logging.LoggerFactory {
	return c.loggerFactory
}
