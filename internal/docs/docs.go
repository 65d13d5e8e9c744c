// Package docs writes the static documentation files that accompany every
// run: the approach summary, known limitations, and DDI enrichment ideas.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
)

const approach = `# Approach

This pipeline cleans a raw inventory CSV into inventory_clean.csv and flags
issues in anomalies.json. It follows a rules-first, LLM-second strategy.

## Steps
1. Normalize & validate
   - IP: validate IPv4/IPv6, derive subnet_cidr (IPv4: /24, IPv6: /64 by default), compute reverse_ptr.
   - Hostname: RFC-952/1123 checks (lowercase, allowed label characters).
   - FQDN: validate labels and overall length; check fqdn_consistent against hostname.
   - MAC: strip separators, verify 12 hex digits, output colon-separated uppercase.
   - Owner: extract owner_email, prettify the name, infer owner_team from keyword hints.
   - Site: canonicalize to 3-letter site codes (e.g. SJC, NYC) with a synonyms table.
2. Classification
   - Device type via keyword heuristics over hostname/fqdn/role/owner_team/site, confidence scaled 0..1.
   - If heuristics are weak (<0.6) and an LLM is enabled, call it at temperature 0.2 with a JSON-only reply.
3. Anomaly reporting
   - Every invalid or inconsistent field appends an entry to anomalies.json with row_id, fields, issue_type, recommended_action.
4. Traceability
   - Each row carries a semicolon-joined normalization_steps log.
5. Reproducibility
   - One invocation regenerates all outputs deterministically; the LLM is optional and gated twice.
`

const cons = `# Known Limitations / Trade-offs

1. Subnet inference — without an explicit netmask, /24 (IPv4) and /64 (IPv6) are heuristics; real networks may differ.
2. LLM fragility — even at low temperature, remote classification can be noisy; the offline fallback avoids nondeterminism but may under-classify.
3. Limited site dictionary — the built-in table covers common sites only; unknown locations are flagged for manual mapping.
4. Sparse owner parsing — owner heuristics will not resolve nicknames or contractors without directory integration.
5. Hostname/FQDN edge cases — split-horizon DNS, IDNA/punycode, and non-ASCII labels are not modeled.
6. No OUI vendor check — MAC vendor data could improve device hints; omitted to keep the core deterministic and local.
`

const ideas = `# DDI Enrichment Ideas (Optional)

- PTR auto-generation policy: suggest PTR naming templates from hostname/site conventions; flag deviations.
- Conflict detector: cross-check duplicated MAC/IP, overlapping subnets, and DNS uniqueness constraints.
- Owner resolution via directory: integrate with HR/IdP to resolve owner and team definitively.
- Device inventory join: correlate with CMDB or switch port telemetry to raise device_type confidence.
- Policy advice: recommend subnet sizes from utilization stats and projected growth.
`

// Ensure writes (overwriting) approach.md, cons.md, and ddi_ideas.md into
// outDir. The escalation audit log is managed separately by the audit
// package, which only seeds a header when the file is new.
func Ensure(outDir string) error {
	files := map[string]string{
		"approach.md":  approach,
		"cons.md":      cons,
		"ddi_ideas.md": ideas,
	}
	for name, content := range files {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("docs: write %s: %w", path, err)
		}
	}
	return nil
}
