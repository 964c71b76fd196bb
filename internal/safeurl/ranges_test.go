package safeurl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Boundary coverage for the explicit defense-in-depth range table: first and
// last address of every range must be rejected, and the addresses just outside
// must fall through to the generic checks (or pass).
func TestClassifyAddr_ExplicitRangeBoundaries(t *testing.T) {
	blocked := []string{
		"10.0.0.0", "10.255.255.255",
		"172.16.0.0", "172.31.255.255",
		"192.168.0.0", "192.168.255.255",
		"127.0.0.0", "127.255.255.255",
		"169.254.0.0", "169.254.255.255",
	}
	for _, addr := range blocked {
		require.NotEmpty(t, classifyAddr(addr), "expected %s to be rejected", addr)
	}

	clean := []string{
		"9.255.255.255", "11.0.0.0",
		"172.15.255.255", "172.32.0.0",
		"192.167.255.255", "192.169.0.0",
		"128.0.0.0",
		"169.253.255.255", "169.255.0.0",
		"8.8.8.8",
		"2606:4700:4700::1111",
	}
	for _, addr := range clean {
		require.Empty(t, classifyAddr(addr), "expected %s to pass", addr)
	}
}

func TestClassifyAddr_MetadataBeatsLinkLocal(t *testing.T) {
	reason := classifyAddr("169.254.169.254")
	require.Contains(t, reason, "cloud metadata endpoint")

	// a neighboring link-local address still gets the generic reason
	reason = classifyAddr("169.254.169.253")
	require.Contains(t, reason, "link-local")
}

func TestClassifyAddr_InvalidFormat(t *testing.T) {
	for _, addr := range []string{"", "999.1.1.1", "abc", "1.2.3"} {
		require.Contains(t, classifyAddr(addr), "invalid IP address format")
	}
}
