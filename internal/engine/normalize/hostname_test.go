package normalize

import (
	"strings"
	"testing"
)

func TestHostname(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      string
		wantValid bool
		wantTrace []string
	}{
		{
			name:      "upper case lowered",
			raw:       "Host1",
			want:      "host1",
			wantValid: true,
			wantTrace: []string{"hostname:lowercased"},
		},
		{
			name:      "already canonical",
			raw:       "sw-sjc-01",
			want:      "sw-sjc-01",
			wantValid: true,
		},
		{
			name:      "leading hyphen invalid",
			raw:       "-bad",
			want:      "-bad",
			wantTrace: []string{"hostname:invalid_format"},
		},
		{
			name:      "trailing hyphen invalid",
			raw:       "bad-",
			want:      "bad-",
			wantTrace: []string{"hostname:invalid_format"},
		},
		{
			name:      "underscore invalid",
			raw:       "db_01",
			want:      "db_01",
			wantTrace: []string{"hostname:invalid_format"},
		},
		{
			name:      "too long invalid",
			raw:       strings.Repeat("a", 64),
			want:      strings.Repeat("a", 64),
			wantTrace: []string{"hostname:invalid_format"},
		},
		{
			name:      "63 chars valid",
			raw:       strings.Repeat("a", 63),
			want:      strings.Repeat("a", 63),
			wantValid: true,
		},
		{
			name: "empty not valid, no trace",
			raw:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hostname(tt.raw)
			if got.Hostname != tt.want {
				t.Errorf("Hostname = %q, want %q", got.Hostname, tt.want)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if !equalStrings(got.Trace, tt.wantTrace) {
				t.Errorf("Trace = %v, want %v", got.Trace, tt.wantTrace)
			}
		})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
