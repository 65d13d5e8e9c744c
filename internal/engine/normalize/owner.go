package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crimson-sun/rake/internal/dict"
)

var (
	emailRE   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	bracketRE = regexp.MustCompile(`[()\[\]]`)
	spaceRE   = regexp.MustCompile(`\s+`)

	localPartSep = strings.NewReplacer(".", " ", "_", " ")
)

// OwnerResult is the outcome of parsing one owner field.
type OwnerResult struct {
	Name  string
	Email string
	Team  string
	Trace []string
}

// Owner extracts a display name, an email address, and a team code from
// free-text owner data. An embedded email wins: the display name is derived
// from its local part. Otherwise brackets are stripped, whitespace collapsed,
// and the remainder title-cased. The team is inferred by scanning the raw
// text (plus any derived email) against the team table, first match wins in
// table order.
func Owner(raw string, teams []dict.Entry) OwnerResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return OwnerResult{}
	}

	// cases.Title carries state; one per call keeps Owner goroutine-safe.
	title := cases.Title(language.English)

	var r OwnerResult
	if email := emailRE.FindString(s); email != "" {
		r.Email = strings.ToLower(email)
		local, _, _ := strings.Cut(r.Email, "@")
		r.Name = title.String(localPartSep.Replace(local))
		r.Trace = append(r.Trace, "owner:email_extracted")
	} else {
		cleaned := strings.TrimSpace(bracketRE.ReplaceAllString(s, " "))
		cleaned = spaceRE.ReplaceAllString(cleaned, " ")
		if team := matchTeam(strings.ToLower(cleaned), teams); team != "" {
			r.Team = team
			r.Trace = append(r.Trace, "owner:team_inferred")
		}
		r.Name = title.String(cleaned)
	}

	if r.Team == "" {
		if team := matchTeam(strings.ToLower(s+" "+r.Email), teams); team != "" {
			r.Team = team
			r.Trace = append(r.Trace, "owner:team_inferred")
		}
	}
	return r
}

func matchTeam(text string, teams []dict.Entry) string {
	for _, e := range teams {
		for _, k := range e.Keywords {
			if strings.Contains(text, k) {
				return e.Code
			}
		}
	}
	return ""
}
