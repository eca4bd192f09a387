package tls

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigErrorUnwrap(t *testing.T) {
	errExample := errors.New("an example error")
	wrapped := &ConfigError{Err: errExample}

	if !errors.Is(wrapped, errExample) {
		t.Errorf("%T doesn't unwrap to the inner error", wrapped)
	}
}

func TestConfigErrorMessages(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{errNoUsableCipherSuites, "tls config: no usable cipher suites configured"},
		{errNoKxGroupsConfigured, "tls config: no kx groups configured"},
		{&invalidProtocolVersion{ProtocolVersion(0x0300)}, "tls config: invalid or unknown protocol version: 0x300"},
		{&duplicateProtocolVersion{VersionTLS12}, "tls config: duplicate protocol version: TLS 1.2"},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.expected {
			t.Errorf("Expected %q, got %q", c.expected, got)
		}
	}
}

func TestConfigErrorFormatting(t *testing.T) {
	err := fmt.Errorf("building server config: %w", errNoKxGroupsConfigured)
	if !errors.Is(err, errNoKxGroupsConfigured) {
		t.Error("wrapped config error lost its identity")
	}
}
