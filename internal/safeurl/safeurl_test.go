package safeurl_test

import (
	"context"
	"errors"
	"testing"
	"toolserver/internal/safeurl"

	"github.com/stretchr/testify/require"
)

// staticResolver resolves hostnames from a fixed map; unknown hosts fail like
// NXDOMAIN would.
type staticResolver map[string][]string

func (r staticResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	addrs, ok := r[host]
	if !ok {
		return nil, errors.New("no such host")
	}

	return addrs, nil
}

func newTestValidator(allowlist []string, resolver safeurl.Resolver) *safeurl.Validator {
	return safeurl.New(safeurl.Options{
		Allowlist: allowlist,
		Resolver:  resolver,
	})
}

func TestValidate_PublicAddressIsSafe(t *testing.T) {
	v := newTestValidator(nil, staticResolver{
		"example.com": {"93.184.216.34", "2606:2800:220:1:248:1893:25c8:1946"},
	})

	verdict := v.Validate(context.Background(), "https://example.com/page?q=1")
	require.True(t, verdict.Safe)
	require.Empty(t, verdict.Reason)
}

func TestValidate_MalformedURL(t *testing.T) {
	v := newTestValidator(nil, staticResolver{})

	cases := []string{
		"not a url",
		"",
		"http://",
		"://missing-scheme",
		"http://%zz",
	}
	for _, raw := range cases {
		verdict := v.Validate(context.Background(), raw)
		require.False(t, verdict.Safe, "input %q", raw)
		require.Contains(t, verdict.Reason, "unable to extract hostname", "input %q", raw)
	}
}

func TestValidate_LocalhostAliases(t *testing.T) {
	// resolver entries prove the names are rejected before resolution
	v := newTestValidator(nil, staticResolver{
		"localhost": {"93.184.216.34"},
	})

	cases := []string{
		"http://localhost/",
		"http://LOCALHOST:8080/admin",
		"http://LocalHost.LocalDomain/x",
	}
	for _, raw := range cases {
		verdict := v.Validate(context.Background(), raw)
		require.False(t, verdict.Safe, "input %q", raw)
		require.Contains(t, verdict.Reason, "localhost", "input %q", raw)
	}
}

func TestValidate_ResolutionFailureIsUnsafe(t *testing.T) {
	v := newTestValidator(nil, staticResolver{})

	verdict := v.Validate(context.Background(), "https://does-not-exist.invalid/")
	require.False(t, verdict.Safe)
	require.Contains(t, verdict.Reason, "unable to resolve hostname")
}

func TestValidate_BlockedRanges(t *testing.T) {
	cases := []struct {
		name   string
		addr   string
		reason string
	}{
		{"rfc1918 10/8", "10.1.2.3", "private"},
		{"rfc1918 172.16/12", "172.16.254.1", "private"},
		{"rfc1918 172.31 upper bound", "172.31.255.255", "private"},
		{"rfc1918 192.168/16", "192.168.1.1", "private"},
		{"loopback 127/8", "127.0.0.1", "loopback"},
		{"loopback high", "127.255.255.254", "loopback"},
		{"link-local 169.254/16", "169.254.10.20", "link-local"},
		{"multicast v4", "224.0.0.251", "multicast"},
		{"unspecified v4", "0.0.0.0", "unspecified"},
		{"this-network", "0.1.2.3", "reserved"},
		{"class E", "240.0.0.1", "reserved"},
		{"cgnat", "100.64.0.1", "reserved"},
		{"ipv6 loopback", "::1", "loopback"},
		{"ipv6 unique local", "fd12:3456:789a::1", "private"},
		{"ipv6 link-local", "fe80::1", "link-local"},
		{"ipv6 site-local", "fec0::1", "site-local"},
		{"ipv6 multicast", "ff02::1", "multicast"},
		{"ipv6 unspecified", "::", "unspecified"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestValidator(nil, staticResolver{
				"internal.example.com": {tc.addr},
			})

			verdict := v.Validate(context.Background(), "http://internal.example.com/")
			require.False(t, verdict.Safe)
			require.Contains(t, verdict.Reason, tc.reason)
			require.Contains(t, verdict.Reason, "not permitted")
		})
	}
}

func TestValidate_CloudMetadataEndpoint(t *testing.T) {
	v := newTestValidator(nil, staticResolver{
		"metadata.example.com": {"169.254.169.254"},
	})

	verdict := v.Validate(context.Background(), "http://metadata.example.com/latest/meta-data/")
	require.False(t, verdict.Safe)
	// the metadata endpoint gets its own reason, not the generic link-local one
	require.Contains(t, verdict.Reason, "cloud metadata endpoint")
	require.Contains(t, verdict.Reason, "169.254.169.254")
}

func TestValidate_MixedAddressesTaintTheURL(t *testing.T) {
	// one public and one private address: no partial safety
	v := newTestValidator(nil, staticResolver{
		"rebind.example.com": {"93.184.216.34", "10.0.0.5"},
	})

	verdict := v.Validate(context.Background(), "http://rebind.example.com/")
	require.False(t, verdict.Safe)
	require.Contains(t, verdict.Reason, "private")
}

func TestValidate_InvalidResolvedAddress(t *testing.T) {
	v := newTestValidator(nil, staticResolver{
		"weird.example.com": {"not-an-ip"},
	})

	verdict := v.Validate(context.Background(), "http://weird.example.com/")
	require.False(t, verdict.Safe)
	require.Contains(t, verdict.Reason, "invalid IP address format")
}

func TestValidate_AllowlistBypassesResolution(t *testing.T) {
	// resolver would reject these hosts, but the allowlist wins and resolution
	// is never attempted (the resolver has no entry for them at all)
	v := newTestValidator([]string{"internal.corp.example"}, staticResolver{})

	verdict := v.Validate(context.Background(), "https://internal.corp.example/api")
	require.True(t, verdict.Safe)

	// case-insensitive match
	verdict = v.Validate(context.Background(), "https://Internal.CORP.example/api")
	require.True(t, verdict.Safe)

	// non-members still go through the full pipeline
	verdict = v.Validate(context.Background(), "https://other.example.com/")
	require.False(t, verdict.Safe)
	require.Contains(t, verdict.Reason, "unable to resolve hostname")
}

func TestValidate_EmptyAllowlistExemptsNothing(t *testing.T) {
	v := newTestValidator(nil, staticResolver{
		"internal.corp.example": {"10.0.0.5"},
	})

	verdict := v.Validate(context.Background(), "https://internal.corp.example/api")
	require.False(t, verdict.Safe)
}

func TestValidate_Idempotent(t *testing.T) {
	v := newTestValidator(nil, staticResolver{
		"example.com": {"93.184.216.34"},
		"bad.example": {"192.168.0.10"},
	})

	for _, raw := range []string{"https://example.com/", "http://bad.example/"} {
		first := v.Validate(context.Background(), raw)
		second := v.Validate(context.Background(), raw)
		require.Equal(t, first, second, "input %q", raw)
	}
}

func TestValidate_DuplicateAddressesCheckedOnce(t *testing.T) {
	v := newTestValidator(nil, staticResolver{
		"dup.example.com": {"93.184.216.34", "93.184.216.34"},
	})

	verdict := v.Validate(context.Background(), "http://dup.example.com/")
	require.True(t, verdict.Safe)
}
