// Package audit writes the escalation audit log: one markdown entry per
// remote-classification attempt, successful or not.
package audit

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const header = `# LLM Prompts Log

All prompts below are issued only when deterministic rules are weak. Temperature is **0.2** and responses are constrained to **JSON** for reproducibility.
If the environment lacks an API key or escalation is not requested, no prompts are logged and heuristics are used instead.

---

`

// Entry is one escalation attempt. Response holds the verbatim structured
// reply; when empty, Note names the reason no response was obtained
// ("timeout", "transport error", ...).
type Entry struct {
	Title       string
	Temperature float64
	Rationale   string
	Prompt      string
	Response    string
	Note        string
	Time        time.Time
}

// Log is an append-only markdown audit log. Safe for concurrent use.
type Log struct {
	mu sync.Mutex
	f  *os.File
}

// Open opens (or creates) the audit log at path, writing the file header if
// the file is new or empty.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audit: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		if _, err := f.WriteString(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("audit: write header: %w", err)
		}
	}
	return &Log{f: f}, nil
}

// Record appends one entry. Entries are written whole under a lock so that
// concurrent rows never interleave.
func (l *Log) Record(e Entry) error {
	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n", e.Title)
	fmt.Fprintf(&sb, "- timestamp: %s\n", ts.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "- temperature: %.1f\n", e.Temperature)
	fmt.Fprintf(&sb, "- rationale: %s\n", e.Rationale)
	sb.WriteString("\n**Prompt**\n\n```\n")
	sb.WriteString(strings.TrimSpace(e.Prompt))
	sb.WriteString("\n```\n\n**Response**\n\n```\n")
	if e.Response == "" {
		note := e.Note
		if note == "" {
			note = "offline or LLM disabled"
		}
		fmt.Fprintf(&sb, "{\"note\": \"no response (%s)\"}\n", note)
	} else {
		sb.WriteString(e.Response)
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n---\n\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("audit: write entry: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
