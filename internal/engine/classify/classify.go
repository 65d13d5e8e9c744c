// Package classify scores device-classification hint text against the
// device-keyword table.
package classify

import (
	"strings"

	"github.com/crimson-sun/rake/internal/dict"
	"github.com/crimson-sun/rake/internal/model"
)

// Confidence scaling for keyword scores: one matching keyword lands at 0.45,
// each further keyword adds 0.15, capped at 1.0.
const (
	baseConfidence = 0.3
	perKeyword     = 0.15
)

// Guess holds the outcome of deterministic classification. A zero Guess
// (empty Type, zero Confidence) means no keyword matched.
type Guess struct {
	Type       model.DeviceType
	Confidence float64
	Trace      []string
}

// Deterministic scores each device category by the number of its keywords
// appearing as substrings in the hint text (case-insensitive). The category
// with the strictly highest score wins; on ties the earlier table entry
// keeps the win. No match means no guess.
func Deterministic(hint string, devices []dict.Entry) Guess {
	t := strings.ToLower(hint)

	var (
		bestType  string
		bestScore int
	)
	for _, e := range devices {
		score := 0
		for _, k := range e.Keywords {
			if strings.Contains(t, k) {
				score++
			}
		}
		if score > bestScore {
			bestType, bestScore = e.Code, score
		}
	}
	if bestScore == 0 {
		return Guess{}
	}

	conf := baseConfidence + perKeyword*float64(bestScore)
	if conf > 1.0 {
		conf = 1.0
	}
	return Guess{
		Type:       model.DeviceType(bestType),
		Confidence: conf,
		Trace:      []string{"device:heuristic_match"},
	}
}

// HintText builds the combined free-text signal fed into classification:
// the raw device hint, normalized hostname and FQDN, inferred owner team,
// and the trimmed raw site, joined by spaces.
func HintText(deviceHint, hostname, fqdn, ownerTeam, site string) string {
	return strings.TrimSpace(strings.Join([]string{deviceHint, hostname, fqdn, ownerTeam, site}, " "))
}
