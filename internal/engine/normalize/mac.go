package normalize

import (
	"regexp"
	"strings"
)

var nonHexRE = regexp.MustCompile(`[^0-9a-fA-F]`)

// MACResult is the outcome of normalizing one MAC field.
type MACResult struct {
	MAC   string
	Valid bool
	Trace []string
}

// MAC strips all separator characters from a raw MAC address. If exactly 12
// hex digits remain, they are re-grouped into six colon-separated upper-case
// octets. Anything else returns the original input upper-cased, marked
// invalid.
func MAC(raw string) MACResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MACResult{}
	}

	var trace []string
	hexOnly := nonHexRE.ReplaceAllString(s, "")
	if hexOnly != s {
		trace = append(trace, "mac:removed_separators")
	}
	if len(hexOnly) != 12 {
		trace = append(trace, "mac:invalid")
		return MACResult{MAC: strings.ToUpper(s), Trace: trace}
	}

	hexOnly = strings.ToUpper(hexOnly)
	octets := make([]string, 0, 6)
	for i := 0; i < 12; i += 2 {
		octets = append(octets, hexOnly[i:i+2])
	}
	trace = append(trace, "mac:normalized_colon_upper")
	return MACResult{MAC: strings.Join(octets, ":"), Valid: true, Trace: trace}
}
