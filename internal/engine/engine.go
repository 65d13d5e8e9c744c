// Package engine orchestrates the per-row pipeline: field normalization,
// cross-field consistency, device classification with optional escalation,
// and record assembly.
package engine

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strconv"

	"github.com/crimson-sun/rake/internal/audit"
	"github.com/crimson-sun/rake/internal/dict"
	"github.com/crimson-sun/rake/internal/engine/classify"
	"github.com/crimson-sun/rake/internal/engine/normalize"
	"github.com/crimson-sun/rake/internal/escalate"
	"github.com/crimson-sun/rake/internal/model"
)

const (
	// escalationThreshold is the deterministic confidence below which the
	// remote classifier is consulted (when enabled).
	escalationThreshold = 0.6
	// lowConfidence is the final confidence below which a
	// low_confidence_device_type anomaly is raised.
	lowConfidence = 0.5
)

var digitsRE = regexp.MustCompile(`^[0-9]+$`)

// Auditor records escalation attempts. Implemented by *audit.Log.
type Auditor interface {
	Record(audit.Entry) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithEscalation enables remote classification. Both the classifier and the
// auditor must be non-nil: every attempt is logged, even failed ones.
// Callers gate this on the explicit opt-in flag AND credential presence.
func WithEscalation(cls escalate.Classifier, aud Auditor) Option {
	return func(e *Engine) {
		e.escalator = cls
		e.auditor = aud
	}
}

// Engine processes raw inventory rows into canonical records and anomalies.
// Rows are independent: Engine holds no per-row state and is safe for
// concurrent use once constructed.
type Engine struct {
	dicts     dict.Dictionaries
	escalator escalate.Classifier
	auditor   Auditor
}

// New creates an Engine over the given dictionaries. Escalation is disabled
// unless WithEscalation is supplied.
func New(dicts dict.Dictionaries, opts ...Option) *Engine {
	e := &Engine{dicts: dicts}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process runs the full pipeline for one row. position is the 1-based input
// row position, used as the row id when the source_row_id cell is not
// numeric. Field-level failures never abort the row: every anomaly is local.
func (e *Engine) Process(ctx context.Context, row model.RawRecord, position int) (model.CanonicalRecord, []model.Anomaly) {
	rowID := position
	if digitsRE.MatchString(row.SourceRowID) {
		if id, err := strconv.Atoi(row.SourceRowID); err == nil {
			rowID = id
		}
	}

	var (
		steps     []string
		anomalies []model.Anomaly
	)
	flag := func(issue model.IssueType, action string, fields ...string) {
		anomalies = append(anomalies, model.Anomaly{
			RowID:             rowID,
			Fields:            fields,
			IssueType:         issue,
			RecommendedAction: action,
		})
	}

	ip := normalize.IP(row.IP)
	steps = append(steps, ip.Trace...)
	if !ip.Valid {
		// Fires even for empty input, unlike the other fields.
		flag(model.IssueInvalidIP, "Fix or remove invalid IP address.", "ip")
	}

	host := normalize.Hostname(row.Hostname)
	steps = append(steps, host.Trace...)
	if row.Hostname != "" && !host.Valid {
		flag(model.IssueInvalidHost, "Use RFC-952/1123 compliant hostname.", "hostname")
	}

	fqdn := normalize.FQDN(row.FQDN)
	steps = append(steps, fqdn.Trace...)
	consistent := host.Valid && fqdn.Valid && normalize.Consistent(host.Hostname, fqdn.FQDN)
	if row.FQDN != "" && !fqdn.Valid {
		flag(model.IssueInvalidFQDN, "Ensure labels are 1-63 chars; only letters/digits/hyphens.", "fqdn")
	}
	if host.Valid && fqdn.Valid && !consistent {
		flag(model.IssueMismatch, "Make FQDN start with the hostname label.", "hostname", "fqdn")
	}

	mac := normalize.MAC(row.MAC)
	steps = append(steps, mac.Trace...)
	if row.MAC != "" && !mac.Valid {
		flag(model.IssueInvalidMAC, "Provide 12 hex digits; use colon notation.", "mac")
	}

	owner := normalize.Owner(row.Owner, e.dicts.Teams)
	steps = append(steps, owner.Trace...)
	if owner.Name == "" && owner.Email == "" {
		flag(model.IssueMissingOwner, "Add owner or owner_email for accountability.", "owner")
	}

	site := normalize.Site(row.Site, e.dicts.Sites)
	steps = append(steps, site.Trace...)
	if site.Site != "" && site.Code == "" {
		flag(model.IssueUnknownSite, "Map to a canonical site code (e.g., SJC, NYC).", "site")
	}

	hint := classify.HintText(row.DeviceHint, host.Hostname, fqdn.FQDN, owner.Team, site.Site)
	devType, conf, devSteps := e.classifyDevice(ctx, hint, host.Hostname)
	steps = append(steps, devSteps...)

	rec := model.CanonicalRecord{
		IP:               ip.IP,
		IPValid:          ip.Valid,
		IPVersion:        ip.Version,
		SubnetCIDR:       ip.SubnetCIDR,
		Hostname:         host.Hostname,
		HostnameValid:    host.Valid,
		FQDN:             fqdn.FQDN,
		FQDNValid:        fqdn.Valid,
		FQDNConsistent:   consistent,
		ReversePtr:       ip.ReversePtr,
		MAC:              mac.MAC,
		MACValid:         mac.Valid,
		Owner:            owner.Name,
		OwnerEmail:       owner.Email,
		OwnerTeam:        owner.Team,
		DeviceType:       devType,
		DeviceConfidence: math.Round(conf*1000) / 1000,
		Site:             site.Site,
		SiteNormalized:   site.Code,
		SourceRowID:      rowID,
		Steps:            steps,
	}

	if conf < lowConfidence {
		flag(model.IssueLowConfidence, "Review classification; add better hints (e.g., role, model).", "device_type")
	}
	return rec, anomalies
}

// classifyDevice runs deterministic keyword scoring and, when the result is
// weak and escalation is wired, consults the remote classifier. A returned
// label and confidence fully replace the deterministic guess. Failures of
// the collaborator are treated as no response and classification proceeds
// with the local outcome.
func (e *Engine) classifyDevice(ctx context.Context, hint, hostname string) (model.DeviceType, float64, []string) {
	g := classify.Deterministic(hint, e.dicts.Devices)
	steps := g.Trace
	devType := g.Type
	conf := g.Confidence

	if (devType == "" || conf < escalationThreshold) && e.escalator != nil {
		prompt := escalate.Prompt(hint, model.DeviceTypeLabels())
		res := e.escalator.Classify(ctx, prompt)
		if res.Kind == escalate.Ok {
			if res.DeviceType != "" {
				devType = model.DeviceType(res.DeviceType)
			} else if devType == "" {
				devType = model.DeviceUnknown
			}
			if res.HasConfidence {
				conf = res.Confidence
			} else if conf == 0 {
				conf = 0.5
			}
		} else {
			slog.Debug("escalation yielded no response", "kind", res.Kind.String(), "error", res.Err)
		}
		e.recordAttempt(prompt, res)
	} else if devType == "" {
		devType = model.DeviceUnknown
		if conf < 0.3 {
			conf = 0.3
		}
	}

	// Last resort: a host that exists at all is most likely a server.
	if devType == "" && hostname != "" {
		devType = model.DeviceServer
		conf = 0.4
		steps = append(steps, "device:default_server_when_unknown")
	}
	return devType, conf, steps
}

// recordAttempt writes the audit entry for one escalation attempt. Entries
// are written for every attempt, including failed ones; only the verbatim
// body of a well-formed response is quoted, otherwise the entry carries an
// explicit no-response marker naming the failure.
func (e *Engine) recordAttempt(prompt string, res escalate.Result) {
	if e.auditor == nil {
		return
	}
	entry := audit.Entry{
		Title:       "device_type classification",
		Temperature: escalate.Temperature,
		Rationale:   "LLM used only when heuristics were weak (<0.6).",
		Prompt:      prompt,
	}
	if res.Kind == escalate.Ok {
		entry.Response = res.Body
	} else {
		entry.Note = res.Kind.String()
	}
	if err := e.auditor.Record(entry); err != nil {
		slog.Warn("audit log write failed", "error", err)
	}
}
