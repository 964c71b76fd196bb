package safeurl

import (
	"fmt"
	"net"
)

// metadataEndpoint is the well-known cloud instance metadata address. It is a
// high-value SSRF target (instance credentials), so it gets its own reason
// string even though the link-local check would also reject it.
const metadataEndpoint = "169.254.169.254"

// blockedRange couples a parsed CIDR with the reason reported when a resolved
// address falls inside it.
type blockedRange struct {
	net    *net.IPNet
	reason string
}

// Pre-compiled CIDR tables, parsed once at package initialization.
var (
	metadataIP = net.ParseIP(metadataEndpoint)

	// v4Ranges repeats ranges already covered by the generic predicates below.
	// They are kept as an explicit defense-in-depth table so each range is
	// independently testable.
	v4Ranges = []blockedRange{
		{mustCIDR("10.0.0.0/8"), "private network address"},
		{mustCIDR("172.16.0.0/12"), "private network address"},
		{mustCIDR("192.168.0.0/16"), "private network address"},
		{mustCIDR("127.0.0.0/8"), "localhost address"},
		{mustCIDR("169.254.0.0/16"), "link-local address"},
	}

	// reservedRanges are IANA-reserved or otherwise non-routable ranges that the
	// generic net.IP predicates do not flag.
	reservedRanges = []blockedRange{
		{mustCIDR("0.0.0.0/8"), "reserved address"},
		{mustCIDR("100.64.0.0/10"), "reserved address"},  // carrier-grade NAT
		{mustCIDR("192.0.0.0/24"), "reserved address"},   // IETF protocol assignments
		{mustCIDR("240.0.0.0/4"), "reserved address"},    // class E
		{mustCIDR("2001:db8::/32"), "reserved address"},  // documentation
	}

	// siteLocal is the deprecated IPv6 site-local range (fec0::/10). It is not
	// covered by IsPrivate, which only knows fc00::/7.
	siteLocal = mustCIDR("fec0::/10")
)

func mustCIDR(s string) *net.IPNet {
	_, n, err := net.ParseCIDR(s)
	if err != nil {
		panic("safeurl: invalid CIDR " + s + ": " + err.Error())
	}

	return n
}

// classifyAddr inspects a single resolved address string and returns a
// non-empty reason when it must not be fetched. The metadata endpoint is
// matched first so its dedicated reason is what operators see in logs; the
// remaining checks follow the order loopback, private, link-local, multicast,
// unspecified, reserved, then the per-family range tables.
func classifyAddr(addr string) string {
	ip := net.ParseIP(addr)
	if ip == nil {
		return fmt.Sprintf("invalid IP address format: %s", addr)
	}

	if ip.Equal(metadataIP) {
		return fmt.Sprintf("access to cloud metadata endpoint (%s) is not permitted", metadataEndpoint)
	}

	switch {
	case ip.IsLoopback():
		return fmt.Sprintf("loopback address (%s) is not permitted", addr)
	case ip.IsPrivate():
		return fmt.Sprintf("private address (%s) is not permitted", addr)
	case ip.IsLinkLocalUnicast(), ip.IsLinkLocalMulticast():
		return fmt.Sprintf("link-local address (%s) is not permitted", addr)
	case ip.IsMulticast():
		return fmt.Sprintf("multicast address (%s) is not permitted", addr)
	case ip.IsUnspecified():
		return fmt.Sprintf("unspecified address (%s) is not permitted", addr)
	}

	for _, r := range reservedRanges {
		if r.net.Contains(ip) {
			return fmt.Sprintf("%s (%s) is not permitted", r.reason, addr)
		}
	}

	if v4 := ip.To4(); v4 != nil {
		for _, r := range v4Ranges {
			if r.net.Contains(v4) {
				return fmt.Sprintf("%s (%s) is not permitted", r.reason, addr)
			}
		}
	} else if siteLocal.Contains(ip) {
		return fmt.Sprintf("site-local IPv6 address (%s) is not permitted", addr)
	}

	return ""
}
