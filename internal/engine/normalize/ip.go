package normalize

import (
	"fmt"
	"net/netip"
	"strings"
)

// Default prefix lengths applied when the input carries no mask:
// /24 for IPv4 management networks, /64 for a typical IPv6 LAN.
const (
	ipv4PrefixBits = 24
	ipv6PrefixBits = 64
)

// IPResult is the outcome of normalizing one IP field.
type IPResult struct {
	IP         string // canonical text form, or the trimmed raw on failure
	Valid      bool
	Version    int // 4 or 6; 0 when invalid
	SubnetCIDR string
	ReversePtr string
	Trace      []string
}

// IP parses a raw IP field into canonical form and derives the default
// subnet and reverse-DNS pointer. On parse failure the trimmed raw text is
// returned unchanged with all derived fields empty.
func IP(raw string) IPResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return IPResult{}
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPResult{IP: s, Trace: []string{"ip:invalid"}}
	}

	version, bits := 4, ipv4PrefixBits
	if !addr.Is4() {
		version, bits = 6, ipv6PrefixBits
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		// Unreachable: bits is always valid for the address family.
		return IPResult{IP: s, Trace: []string{"ip:invalid"}}
	}

	return IPResult{
		IP:         addr.String(),
		Valid:      true,
		Version:    version,
		SubnetCIDR: prefix.String(),
		ReversePtr: reversePtr(addr),
		Trace:      []string{"ip:validated"},
	}
}

// reversePtr returns the in-addr.arpa (IPv4) or ip6.arpa (IPv6) name used
// for reverse DNS lookup of addr.
func reversePtr(addr netip.Addr) string {
	if addr.Is4() {
		a := addr.As4()
		return fmt.Sprintf("%d.%d.%d.%d.in-addr.arpa", a[3], a[2], a[1], a[0])
	}
	b := addr.As16()
	var sb strings.Builder
	for i := 15; i >= 0; i-- {
		fmt.Fprintf(&sb, "%x.%x.", b[i]&0xf, b[i]>>4)
	}
	sb.WriteString("ip6.arpa")
	return sb.String()
}
