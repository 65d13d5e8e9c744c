// Package rake provides an embeddable API for cleaning network-asset
// inventory data.
//
// A Cleaner normalizes heterogeneous inventory rows (IP, hostname, FQDN,
// MAC, owner, site, device role) into canonical records and reports
// data-quality anomalies, using deterministic rules first and an optional
// LLM escalation for weak device classifications.
//
// Create a Cleaner once and reuse it; it is safe for concurrent use.
package rake
