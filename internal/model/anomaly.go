package model

// IssueType tags a data-quality anomaly. The set is closed: adding a new
// detection rule means adding a constant here, not inventing a string at the
// detection site.
type IssueType string

const (
	IssueInvalidIP     IssueType = "invalid_ip"
	IssueInvalidHost   IssueType = "invalid_hostname"
	IssueInvalidFQDN   IssueType = "invalid_fqdn"
	IssueMismatch      IssueType = "mismatch"
	IssueInvalidMAC    IssueType = "invalid_mac"
	IssueMissingOwner  IssueType = "missing_owner"
	IssueUnknownSite   IssueType = "unknown_site"
	IssueLowConfidence IssueType = "low_confidence_device_type"
)

// Anomaly records one detected data-quality issue for a source row.
// Anomalies are append-only: the collector preserves detection order and
// never deduplicates or sorts them.
type Anomaly struct {
	RowID             int       `json:"row_id"`
	Fields            []string  `json:"fields"`
	IssueType         IssueType `json:"issue_type"`
	RecommendedAction string    `json:"recommended_action"`
}
