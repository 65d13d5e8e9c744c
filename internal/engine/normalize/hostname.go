package normalize

import (
	"regexp"
	"strings"
)

// labelRE is the RFC-952/1123 label shape: 1-63 characters, alphanumeric
// first and last, alphanumeric or hyphen in between.
var labelRE = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// HostnameResult is the outcome of normalizing one hostname field.
type HostnameResult struct {
	Hostname string
	Valid    bool
	Trace    []string
}

// Hostname lower-cases a raw hostname and validates it against the
// RFC-952/1123 label shape. Empty input is invalid but leaves no trace.
func Hostname(raw string) HostnameResult {
	var trace []string
	s := strings.ToLower(strings.TrimSpace(raw))
	if s != raw {
		trace = append(trace, "hostname:lowercased")
	}
	valid := s != "" && labelRE.MatchString(s)
	if !valid && s != "" {
		trace = append(trace, "hostname:invalid_format")
	}
	return HostnameResult{Hostname: s, Valid: valid, Trace: trace}
}
