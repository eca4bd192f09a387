package tls

import (
	"errors"
	"fmt"
)

// ConfigError indicates that a configuration could not be built from the
// supplied selections. It is terminal: the caller must restart the phase
// sequence with corrected inputs.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tls config: %v", e.Err)
}

// Unwrap implements errors wrapping.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Typed errors.
var (
	//nolint:err113
	errNoUsableCipherSuites = &ConfigError{Err: errors.New("no usable cipher suites configured")}
	//nolint:err113
	errNoKxGroupsConfigured = &ConfigError{Err: errors.New("no kx groups configured")}
	//nolint:err113
	errSessionIDAlreadySet = errors.New("session id has already been set for this handshake")
)

type invalidProtocolVersion struct {
	version ProtocolVersion
}

func (e *invalidProtocolVersion) Error() string {
	return fmt.Sprintf("tls config: invalid or unknown protocol version: %s", e.version)
}

type duplicateProtocolVersion struct {
	version ProtocolVersion
}

func (e *duplicateProtocolVersion) Error() string {
	return fmt.Sprintf("tls config: duplicate protocol version: %s", e.version)
}
