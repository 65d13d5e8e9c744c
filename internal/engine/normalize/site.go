package normalize

import (
	"regexp"
	"strings"

	"github.com/crimson-sun/rake/internal/dict"
)

var (
	siteCleanRE   = regexp.MustCompile(`[^a-zA-Z0-9\- ]`)
	buildingRE    = regexp.MustCompile(`(bldg|bld|b)\s*(\d+)`)
	threeLetterRE = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// SiteResult is the outcome of normalizing one site field.
type SiteResult struct {
	Site  string // trimmed raw text, kept for display
	Code  string // canonical site code, empty when unknown
	Trace []string
}

// Site resolves free-text location data to a canonical 3-letter site code.
// A building/room reference ("bldg 3", "b12") becomes a "-B<n>" suffix on
// the resolved code. Resolution order: the site table (exact code, exact
// synonym, or synonym substring, first match wins in table order), then a
// bare 3-letter token taken as an already-canonical code. Anything else is
// unknown and yields an empty code.
func Site(raw string, sites []dict.Entry) SiteResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return SiteResult{}
	}

	var trace []string
	cleaned := strings.ToLower(strings.TrimSpace(siteCleanRE.ReplaceAllString(s, " ")))
	cleaned = spaceRE.ReplaceAllString(cleaned, " ")

	building := ""
	if m := buildingRE.FindStringSubmatch(cleaned); m != nil {
		building = "-B" + m[2]
		trace = append(trace, "site:building_tagged")
	}

	for _, e := range sites {
		if matchSite(cleaned, e) {
			trace = append(trace, "site:normalized")
			return SiteResult{Site: s, Code: e.Code + building, Trace: trace}
		}
	}
	if threeLetterRE.MatchString(s) {
		trace = append(trace, "site:assumed_three_letter_code")
		return SiteResult{Site: s, Code: strings.ToUpper(s) + building, Trace: trace}
	}

	trace = append(trace, "site:unknown")
	return SiteResult{Site: s, Trace: trace}
}

func matchSite(cleaned string, e dict.Entry) bool {
	if cleaned == strings.ToLower(e.Code) {
		return true
	}
	for _, k := range e.Keywords {
		if cleaned == k || strings.Contains(cleaned, k) {
			return true
		}
	}
	return false
}
