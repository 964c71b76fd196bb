// Package safeurl decides whether an agent-supplied URL is safe to fetch on
// the server's behalf. It guards against SSRF: the hostname is resolved and
// every returned address is checked against loopback, private, link-local,
// multicast, unspecified, reserved and cloud-metadata ranges. Hostnames on the
// configured allowlist skip resolution-based checks entirely.
//
// The validator is fail-closed: malformed input, resolution failure or any
// unexpected error all produce an unsafe verdict, never a success and never a
// panic past the package boundary.
//
// Known limitation: the addresses validated here are not guaranteed to be the
// addresses a subsequent fetch connects to (DNS may change in between). The
// fetcher package narrows this window by re-validating redirect targets, but
// does not pin the resolved address.
package safeurl

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Verdict is the outcome of a validation. Reason is empty exactly when Safe is
// true. Reason strings are part of the observable contract: the fetch gate
// returns them verbatim as the tool result, so they must stay human-readable
// and specific.
type Verdict struct {
	Safe   bool
	Reason string
}

func safe() Verdict { return Verdict{Safe: true} }

func unsafe(format string, args ...any) Verdict {
	return Verdict{Reason: fmt.Sprintf(format, args...)}
}

// Resolver resolves a hostname to its full set of addresses. *net.Resolver
// satisfies this interface; tests substitute a static map.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Options configure a Validator.
type Options struct {
	// Allowlist contains hostnames exempted from IP-based checks. Comparison is
	// case-insensitive (hostnames are case-insensitive per DNS). Empty means no
	// hostname is exempt.
	Allowlist []string
	// Resolver performs hostname resolution. Defaults to net.DefaultResolver.
	Resolver Resolver
}

// Validator checks candidate URLs before any outbound request is made on their
// behalf. It is stateless apart from the read-only allowlist and safe for
// concurrent use.
type Validator struct {
	allowlist map[string]struct{}
	resolver  Resolver
}

// New creates a Validator from the given options.
func New(opts Options) *Validator {
	allow := make(map[string]struct{}, len(opts.Allowlist))
	for _, host := range opts.Allowlist {
		allow[strings.ToLower(host)] = struct{}{}
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	return &Validator{
		allowlist: allow,
		resolver:  resolver,
	}
}

// localhost aliases rejected before resolution is attempted, since localhost
// resolution behavior varies by system configuration.
var localhostNames = map[string]struct{}{
	"localhost":             {},
	"localhost.localdomain": {},
}

// Validate inspects rawURL and returns a verdict. The checks run in order and
// short-circuit on the first failure:
//
//  1. extract the hostname (malformed URL is unsafe)
//  2. allowlist bypass (no resolution for allow-listed hosts)
//  3. literal localhost aliases
//  4. resolve the hostname (resolution failure is unsafe)
//  5. classify every resolved address; one bad address taints the whole URL
//
// Resolution uses the provided context; callers that need to bound DNS latency
// should pass a context with a deadline.
func (v *Validator) Validate(ctx context.Context, rawURL string) (verdict Verdict) {
	// The verdict is the whole contract: convert any unexpected panic from URL
	// or address parsing into an unsafe verdict instead of crossing the boundary.
	defer func() {
		if p := recover(); p != nil {
			verdict = unsafe("URL validation failed: %v", p)
		}
	}()

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return unsafe("unable to extract hostname from URL")
	}

	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return unsafe("unable to extract hostname from URL")
	}

	if len(v.allowlist) > 0 {
		if _, ok := v.allowlist[hostname]; ok {
			return safe()
		}
	}

	if _, ok := localhostNames[hostname]; ok {
		return unsafe("access to localhost is not permitted")
	}

	addrs, err := v.resolver.LookupHost(ctx, hostname)
	if err != nil {
		return unsafe("unable to resolve hostname %q", hostname)
	}

	seen := make(map[string]struct{}, len(addrs))
	for _, addr := range addrs {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}

		if reason := classifyAddr(addr); reason != "" {
			return unsafe("%s", reason)
		}
	}

	return safe()
}
