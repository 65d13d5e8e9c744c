package model

// RawRecord is the intermediate type produced by sources and consumed by the
// engine. Every field is the verbatim cell text from the input; absent
// columns yield empty strings.
type RawRecord struct {
	IP          string
	Hostname    string
	FQDN        string
	MAC         string
	Owner       string
	DeviceHint  string
	Site        string
	SourceRowID string // raw cell; resolved to an int by the engine
}

// CanonicalRecord is rake's output type — one normalized, classified,
// enriched inventory row. Created once per input row and immutable after
// assembly. Fields marked invalid still carry a best-effort value so that
// downstream consumers can display the original-ish data.
type CanonicalRecord struct {
	IP            string
	IPValid       bool
	IPVersion     int // 4 or 6; 0 when the address did not parse
	SubnetCIDR    string
	Hostname      string
	HostnameValid bool
	FQDN          string
	FQDNValid     bool
	// FQDNConsistent is true only when hostname and FQDN are both
	// individually valid and the FQDN equals or extends the hostname.
	FQDNConsistent bool
	ReversePtr     string
	MAC            string
	MACValid       bool
	Owner          string
	OwnerEmail     string
	OwnerTeam      string
	DeviceType     DeviceType
	// DeviceConfidence is in [0,1], rounded to three decimals at assembly.
	DeviceConfidence float64
	Site             string // trimmed raw site text
	SiteNormalized   string // canonical 3-letter code, optionally "-B<n>" suffixed
	SourceRowID      int
	Steps            []string // ordered normalization trace, diagnostic only
}
