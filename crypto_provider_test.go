package tls

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestECDHProviderGroupTable(t *testing.T) {
	provider := &ECDHProvider{}

	groups := provider.KeyExchangeGroups()
	require.Equal(t, []*NamedGroup{GroupX25519, GroupP256, GroupP384}, groups)

	// The table is fixed: repeated queries agree and callers cannot
	// mutate the provider's copy.
	groups[0] = nil
	require.Equal(t, []*NamedGroup{GroupX25519, GroupP256, GroupP384}, provider.KeyExchangeGroups())
}

func TestECDHProviderKeyExchange(t *testing.T) {
	provider := &ECDHProvider{}

	for _, group := range provider.KeyExchangeGroups() {
		group := group
		t.Run(group.String(), func(t *testing.T) {
			local, err := provider.NewKeyExchange(group)
			require.NoError(t, err)
			require.Same(t, group, local.Group())
			require.NotEmpty(t, local.PublicKey())

			remote, err := provider.NewKeyExchange(group)
			require.NoError(t, err)

			localSecret, err := local.SharedSecret(remote.PublicKey())
			require.NoError(t, err)
			remoteSecret, err := remote.SharedSecret(local.PublicKey())
			require.NoError(t, err)
			require.Equal(t, localSecret, remoteSecret)
		})
	}
}

func TestNamedGroupStrings(t *testing.T) {
	testCases := []struct {
		group    *NamedGroup
		expected string
	}{
		{GroupX25519, "x25519"},
		{GroupP256, "secp256r1"},
		{GroupP384, "secp384r1"},
	}

	for _, testCase := range testCases {
		if res := testCase.group.String(); res != testCase.expected {
			t.Fatalf("Expected: %s, got %s", testCase.expected, res)
		}
	}
}

func TestFreshKeyExchangesDiffer(t *testing.T) {
	provider := &ECDHProvider{}

	a, err := provider.NewKeyExchange(GroupX25519)
	require.NoError(t, err)
	b, err := provider.NewKeyExchange(GroupX25519)
	require.NoError(t, err)

	if reflect.DeepEqual(a.PublicKey(), b.PublicKey()) {
		t.Fatal("two ephemeral exchanges produced the same public key")
	}
}
