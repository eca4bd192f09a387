package tls

import (
	"testing"
)

func TestCipherSuiteName(t *testing.T) {
	testCases := []struct {
		suite    CipherSuiteID
		expected string
	}{
		{TLS_AES_128_GCM_SHA256, "TLS_AES_128_GCM_SHA256"},
		{TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256, "TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256"},
		{CipherSuiteID(0x0000), "0x0000"},
	}

	for _, testCase := range testCases {
		res := CipherSuiteName(testCase.suite)
		if res != testCase.expected {
			t.Fatalf("Expected: %s, got %s", testCase.expected, res)
		}
	}
}

func TestDefaultCipherSuites(t *testing.T) {
	suites := DefaultCipherSuites()
	if len(suites) == 0 {
		t.Fatal("no default cipher suites")
	}

	for _, s := range suites {
		if v := s.ProtocolVersion(); v != VersionTLS12 && v != VersionTLS13 {
			t.Fatalf("default suite %s has unexpected version %s", s, v)
		}
		if s.String() != s.ID().String() {
			t.Fatalf("suite %s: String and ID.String disagree", s.ID())
		}
	}
}

func TestCipherSuiteForIDRoundTrip(t *testing.T) {
	for _, s := range DefaultCipherSuites() {
		got := cipherSuiteForID(s.ID())
		if got == nil {
			t.Fatalf("default suite %s not resolvable by ID", s)
		}
		if got.ID() != s.ID() {
			t.Fatalf("lookup for %s returned %s", s, got)
		}
	}

	if cipherSuiteForID(CipherSuiteID(0x00ff)) != nil {
		t.Fatal("unknown ID resolved to a suite")
	}
}

func TestCipherSuiteAEAD(t *testing.T) {
	for _, s := range DefaultCipherSuites() {
		key := make([]byte, s.KeyLen())
		aead, err := s.NewAEAD(key)
		if err != nil {
			t.Fatalf("suite %s: NewAEAD: %v", s, err)
		}
		if aead == nil {
			t.Fatalf("suite %s: nil AEAD", s)
		}
	}
}
