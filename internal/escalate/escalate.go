// Package escalate implements the optional remote device-type classifier
// used when deterministic keyword scoring is weak.
//
// Every attempt resolves to an explicit Result kind rather than a collapsed
// "no response": the merge logic treats anything but Ok as no response, but
// the audit log records which failure actually occurred.
package escalate

import (
	"context"
	"fmt"
	"strings"
)

// Kind discriminates the outcome of one escalation attempt.
type Kind int

const (
	Ok Kind = iota
	TimedOut
	TransportError
	MalformedResponse
)

// String returns a short lower-case tag for audit entries.
func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case TimedOut:
		return "timeout"
	case TransportError:
		return "transport error"
	case MalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Result is the outcome of one classification attempt. DeviceType and
// Confidence are only meaningful when Kind is Ok; HasConfidence
// distinguishes an explicit confidence from an omitted one.
type Result struct {
	Kind          Kind
	DeviceType    string
	Confidence    float64
	HasConfidence bool
	Body          string // verbatim response content, for the audit log
	Err           error  // underlying failure for non-Ok kinds
}

// Classifier is the collaborator contract: given a fully rendered prompt,
// return a classification result. Implementations must bound the call with
// a timeout and must never block beyond it.
type Classifier interface {
	Classify(ctx context.Context, prompt string) Result
}

// Prompt renders the classification request text for the given hint and
// allowed label set.
func Prompt(hint string, labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = `"` + l + `"`
	}
	return fmt.Sprintf(`You are classifying a network asset into a broad device_type for DDI (DNS/DHCP/IPAM) workflows.
Given the hints below, return a JSON object with keys "device_type" and "confidence" (0..1).

Hints (free-form text):
%s

Allowed device_type values (choose the best single label):
[%s]

Respond in strict JSON only.`, hint, strings.Join(quoted, ","))
}
