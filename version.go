package tls

import "fmt"

// ProtocolVersion is the TLS protocol version negotiated in
// ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc8446#section-4.1.2
type ProtocolVersion uint16

// ProtocolVersion enums.
const (
	VersionTLS12 ProtocolVersion = 0x0303
	VersionTLS13 ProtocolVersion = 0x0304
)

func (v ProtocolVersion) String() string {
	switch v {
	case VersionTLS12:
		return "TLS 1.2"
	case VersionTLS13:
		return "TLS 1.3"
	}

	return fmt.Sprintf("%#x", uint16(v))
}

// DefaultProtocolVersions returns the protocol versions this library
// implements, in preference order. Both are enabled by default.
func DefaultProtocolVersions() []ProtocolVersion {
	return []ProtocolVersion{VersionTLS13, VersionTLS12}
}

func isSupportedProtocolVersion(v ProtocolVersion) bool {
	return v == VersionTLS12 || v == VersionTLS13
}

// EnabledVersions is the validated set of protocol versions a Config
// will offer or accept. It is built from a candidate list exactly once
// and never mutated afterwards.
type EnabledVersions struct {
	versions []ProtocolVersion
}

// NewEnabledVersions validates and normalizes a candidate version list.
// Unknown and duplicate entries are rejected; candidate order is kept.
func NewEnabledVersions(candidates []ProtocolVersion) (EnabledVersions, error) {
	versions := make([]ProtocolVersion, 0, len(candidates))
	for _, v := range candidates {
		if !isSupportedProtocolVersion(v) {
			return EnabledVersions{}, &invalidProtocolVersion{v}
		}
		for _, seen := range versions {
			if seen == v {
				return EnabledVersions{}, &duplicateProtocolVersion{v}
			}
		}
		versions = append(versions, v)
	}

	return EnabledVersions{versions: versions}, nil
}

// defaultEnabledVersions skips validation, the default list is known good.
func defaultEnabledVersions() EnabledVersions {
	return EnabledVersions{versions: DefaultProtocolVersions()}
}

// Contains reports whether v is enabled.
func (e EnabledVersions) Contains(v ProtocolVersion) bool {
	for _, enabled := range e.versions {
		if enabled == v {
			return true
		}
	}

	return false
}

// Versions returns the enabled versions in the order they were supplied.
func (e EnabledVersions) Versions() []ProtocolVersion {
	return append([]ProtocolVersion{}, e.versions...)
}
