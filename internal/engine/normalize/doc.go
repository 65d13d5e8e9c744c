// Package normalize implements the per-field canonicalization rules: IP,
// hostname, FQDN, MAC, owner, and site.
//
// Every normalizer is total: it returns a well-formed result for any input,
// including empty or malformed text, and never fails the row. Invalid fields
// still carry a best-effort value (usually the trimmed or upper-cased raw
// text). Each result carries an ordered trace of applied transformation
// steps; the trace is purely diagnostic and never consulted by downstream
// logic.
package normalize
