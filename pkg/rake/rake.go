package rake

import (
	"context"
	"fmt"

	"github.com/crimson-sun/rake/internal/audit"
	"github.com/crimson-sun/rake/internal/dict"
	"github.com/crimson-sun/rake/internal/engine"
	"github.com/crimson-sun/rake/internal/escalate"
	"github.com/crimson-sun/rake/internal/model"
	"github.com/crimson-sun/rake/internal/pipeline"
	"github.com/crimson-sun/rake/internal/source"
)

// Record is one cleaned, classified inventory row.
type Record struct {
	IP               string
	IPValid          bool
	IPVersion        int
	SubnetCIDR       string
	Hostname         string
	HostnameValid    bool
	FQDN             string
	FQDNConsistent   bool
	ReversePtr       string
	MAC              string
	MACValid         bool
	Owner            string
	OwnerEmail       string
	OwnerTeam        string
	DeviceType       string
	DeviceConfidence float64
	Site             string
	SiteNormalized   string
	SourceRowID      int
	Steps            []string
}

// Anomaly is one detected data-quality issue.
type Anomaly struct {
	RowID             int
	Fields            []string
	IssueType         string
	RecommendedAction string
}

// Cleaner runs the normalization and classification pipeline. Safe for
// concurrent use once constructed.
type Cleaner struct {
	eng      *engine.Engine
	auditLog *audit.Log
	workers  int
}

// New creates a Cleaner. Without options it uses the built-in dictionaries,
// no escalation, and a small worker pool.
func New(opts ...Option) (*Cleaner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dicts := dict.Default()
	if o.sites != nil {
		dicts.Sites = toEntries(o.sites)
	}
	if o.devices != nil {
		dicts.Devices = toEntries(o.devices)
	}
	if o.teams != nil {
		dicts.Teams = toEntries(o.teams)
	}

	c := &Cleaner{workers: o.workers}

	var engOpts []engine.Option
	if o.apiKey != "" {
		if o.auditPath == "" {
			return nil, fmt.Errorf("rake: escalation requires an audit log path")
		}
		log, err := audit.Open(o.auditPath)
		if err != nil {
			return nil, fmt.Errorf("rake: %w", err)
		}
		c.auditLog = log

		clientOpts := []escalate.Option{}
		if o.endpoint != "" {
			clientOpts = append(clientOpts, escalate.WithEndpoint(o.endpoint))
		}
		if o.timeout > 0 {
			clientOpts = append(clientOpts, escalate.WithTimeout(o.timeout))
		}
		engOpts = append(engOpts, engine.WithEscalation(escalate.NewClient(o.apiKey, clientOpts...), log))
	}

	c.eng = engine.New(dicts, engOpts...)
	return c, nil
}

// Clean processes pre-split tabular data: header names are resolved against
// the accepted column aliases, every row yields exactly one Record, and
// anomalies come back in row order. Row order is preserved.
func (c *Cleaner) Clean(ctx context.Context, header []string, rows [][]string) ([]Record, []Anomaly) {
	raws := source.FromRows(header, rows)
	result := pipeline.Run(ctx, c.eng, raws, c.workers)

	records := make([]Record, len(result.Records))
	for i, rec := range result.Records {
		records[i] = recordFromCanonical(rec)
	}
	anomalies := make([]Anomaly, len(result.Anomalies))
	for i, a := range result.Anomalies {
		anomalies[i] = Anomaly{
			RowID:             a.RowID,
			Fields:            a.Fields,
			IssueType:         string(a.IssueType),
			RecommendedAction: a.RecommendedAction,
		}
	}
	return records, anomalies
}

// Close releases the audit log, if escalation was enabled.
func (c *Cleaner) Close() error {
	if c.auditLog == nil {
		return nil
	}
	return c.auditLog.Close()
}

func recordFromCanonical(rec model.CanonicalRecord) Record {
	return Record{
		IP:               rec.IP,
		IPValid:          rec.IPValid,
		IPVersion:        rec.IPVersion,
		SubnetCIDR:       rec.SubnetCIDR,
		Hostname:         rec.Hostname,
		HostnameValid:    rec.HostnameValid,
		FQDN:             rec.FQDN,
		FQDNConsistent:   rec.FQDNConsistent,
		ReversePtr:       rec.ReversePtr,
		MAC:              rec.MAC,
		MACValid:         rec.MACValid,
		Owner:            rec.Owner,
		OwnerEmail:       rec.OwnerEmail,
		OwnerTeam:        rec.OwnerTeam,
		DeviceType:       string(rec.DeviceType),
		DeviceConfidence: rec.DeviceConfidence,
		Site:             rec.Site,
		SiteNormalized:   rec.SiteNormalized,
		SourceRowID:      rec.SourceRowID,
		Steps:            rec.Steps,
	}
}

func toEntries(entries []DictEntry) []dict.Entry {
	out := make([]dict.Entry, len(entries))
	for i, e := range entries {
		out[i] = dict.Entry{Code: e.Code, Keywords: e.Keywords}
	}
	return out
}
