package normalize

import "strings"

// maxFQDNLen is the overall domain-name length limit.
const maxFQDNLen = 253

// FQDNResult is the outcome of normalizing one FQDN field.
type FQDNResult struct {
	FQDN  string
	Valid bool
	Trace []string
}

// FQDN lower-cases a raw domain name and validates it: overall length at
// most 253 and every dot-separated label matching the hostname label shape.
func FQDN(raw string) FQDNResult {
	var trace []string
	s := strings.ToLower(strings.TrimSpace(raw))
	if s != raw {
		trace = append(trace, "fqdn:lowercased")
	}
	if s == "" {
		return FQDNResult{Trace: trace}
	}

	valid := len(s) <= maxFQDNLen
	if valid {
		for _, label := range strings.Split(s, ".") {
			if !labelRE.MatchString(label) {
				valid = false
				break
			}
		}
	}
	if !valid {
		trace = append(trace, "fqdn:invalid")
	}
	return FQDNResult{FQDN: s, Valid: valid, Trace: trace}
}

// Consistent reports whether fqdn agrees with hostname: either they are
// equal (bare hostname case) or fqdn extends hostname with further labels.
// Both arguments are expected to be already normalized.
func Consistent(hostname, fqdn string) bool {
	if hostname == "" || fqdn == "" {
		return false
	}
	return fqdn == hostname || strings.HasPrefix(fqdn, hostname+".")
}
