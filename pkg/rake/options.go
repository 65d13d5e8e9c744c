package rake

import "time"

// DictEntry associates a canonical code with its match keywords. Entry
// order is match order: inference is first-match-wins everywhere.
type DictEntry struct {
	Code     string
	Keywords []string
}

type options struct {
	sites     []DictEntry
	devices   []DictEntry
	teams     []DictEntry
	apiKey    string
	auditPath string
	endpoint  string
	timeout   time.Duration
	workers   int
}

// Option configures a Cleaner.
type Option func(*options)

// WithSites replaces the built-in site synonym table.
func WithSites(entries []DictEntry) Option {
	return func(o *options) { o.sites = entries }
}

// WithDevices replaces the built-in device keyword table.
func WithDevices(entries []DictEntry) Option {
	return func(o *options) { o.devices = entries }
}

// WithTeams replaces the built-in team keyword table.
func WithTeams(entries []DictEntry) Option {
	return func(o *options) { o.teams = entries }
}

// WithEscalation enables the remote classifier for weak deterministic
// guesses. Every escalation attempt is appended to the audit log at
// auditPath, including failed ones.
func WithEscalation(apiKey, auditPath string) Option {
	return func(o *options) {
		o.apiKey = apiKey
		o.auditPath = auditPath
	}
}

// WithEscalationEndpoint overrides the remote classifier URL. Used by tests.
func WithEscalationEndpoint(url string) Option {
	return func(o *options) { o.endpoint = url }
}

// WithEscalationTimeout bounds each remote classification attempt. Default: 8s.
func WithEscalationTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithWorkers sets the row-processing worker pool size. Default: 4.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func defaultOptions() options {
	return options{workers: 4}
}
