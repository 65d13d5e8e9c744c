package rake

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanBasic(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	header := []string{"hostname", "ip", "owner", "site", "device_type"}
	rows := [][]string{
		{"SW-SJC-01", "192.168.1.10", "jane.doe@example.com", "San Jose", "core switch"},
		{"bad host!", "999.1.2.3", "", "Narnia", ""},
	}
	records, anomalies := c.Clean(context.Background(), header, rows)

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	good := records[0]
	if good.Hostname != "sw-sjc-01" || !good.HostnameValid {
		t.Errorf("Hostname = %q (valid=%v)", good.Hostname, good.HostnameValid)
	}
	if good.SubnetCIDR != "192.168.1.0/24" {
		t.Errorf("SubnetCIDR = %q", good.SubnetCIDR)
	}
	if good.DeviceType != "switch" || good.DeviceConfidence != 0.75 {
		t.Errorf("device = %q/%v", good.DeviceType, good.DeviceConfidence)
	}
	if good.SiteNormalized != "SJC" {
		t.Errorf("SiteNormalized = %q", good.SiteNormalized)
	}
	if good.SourceRowID != 1 {
		t.Errorf("SourceRowID = %d, want 1", good.SourceRowID)
	}

	bad := records[1]
	if bad.IPValid || bad.HostnameValid {
		t.Errorf("bad row validity = ip %v, host %v", bad.IPValid, bad.HostnameValid)
	}

	seen := map[string]bool{}
	for _, a := range anomalies {
		seen[a.IssueType] = true
		if a.RowID != 2 {
			t.Errorf("anomaly %q on row %d, want 2", a.IssueType, a.RowID)
		}
	}
	for _, want := range []string{"invalid_ip", "invalid_hostname", "missing_owner", "unknown_site"} {
		if !seen[want] {
			t.Errorf("missing %q anomaly (got %v)", want, seen)
		}
	}
}

func TestCleanCustomDictionaries(t *testing.T) {
	c, err := New(
		WithSites([]DictEntry{{Code: "RDU", Keywords: []string{"raleigh", "rdu"}}}),
		WithDevices([]DictEntry{{Code: "kiosk", Keywords: []string{"kiosk"}}}),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	header := []string{"hostname", "site", "device_type", "owner"}
	rows := [][]string{{"kiosk-01", "Raleigh", "lobby kiosk", "it"}}
	records, _ := c.Clean(context.Background(), header, rows)

	if records[0].SiteNormalized != "RDU" {
		t.Errorf("SiteNormalized = %q, want RDU", records[0].SiteNormalized)
	}
	if records[0].DeviceType != "kiosk" {
		t.Errorf("DeviceType = %q, want kiosk", records[0].DeviceType)
	}
}

func TestCleanWorkerCountsAgree(t *testing.T) {
	header := []string{"hostname", "ip"}
	var rows [][]string
	for i := 0; i < 40; i++ {
		rows = append(rows, []string{"host-" + strings.Repeat("a", i%5), "10.0.0.1"})
	}

	single, err := New(WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	defer single.Close()
	many, err := New(WithWorkers(8))
	if err != nil {
		t.Fatal(err)
	}
	defer many.Close()

	r1, a1 := single.Clean(context.Background(), header, rows)
	r2, a2 := many.Clean(context.Background(), header, rows)

	if len(r1) != len(r2) || len(a1) != len(a2) {
		t.Fatalf("result sizes differ: %d/%d records, %d/%d anomalies", len(r1), len(r2), len(a1), len(a2))
	}
	for i := range r1 {
		if r1[i].Hostname != r2[i].Hostname || r1[i].DeviceType != r2[i].DeviceType {
			t.Errorf("row %d differs across worker counts", i)
		}
	}
}

func TestCleanWithEscalation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"device_type\":\"iot\",\"confidence\":0.85}"}}]}`))
	}))
	defer srv.Close()

	auditPath := filepath.Join(t.TempDir(), "prompts.md")
	c, err := New(
		WithEscalation("test-key", auditPath),
		WithEscalationEndpoint(srv.URL),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	header := []string{"hostname", "device_type"}
	rows := [][]string{{"thing-7", "mystery gadget"}}
	records, _ := c.Clean(context.Background(), header, rows)

	if records[0].DeviceType != "iot" || records[0].DeviceConfidence != 0.85 {
		t.Errorf("device = %q/%v, want iot/0.85", records[0].DeviceType, records[0].DeviceConfidence)
	}

	data, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "## device_type classification") {
		t.Errorf("audit log missing entry:\n%s", data)
	}
}

func TestEscalationRequiresAuditPath(t *testing.T) {
	if _, err := New(WithEscalation("test-key", "")); err == nil {
		t.Fatal("expected error for escalation without audit path")
	}
}
