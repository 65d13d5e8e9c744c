package output

import (
	"testing"

	"github.com/crimson-sun/rake/internal/model"
)

func TestRecordRow(t *testing.T) {
	rec := model.CanonicalRecord{
		IP:               "192.168.1.10",
		IPValid:          true,
		IPVersion:        4,
		SubnetCIDR:       "192.168.1.0/24",
		Hostname:         "sw-sjc-01",
		HostnameValid:    true,
		FQDN:             "sw-sjc-01.corp.example.com",
		FQDNValid:        true,
		FQDNConsistent:   true,
		ReversePtr:       "10.1.168.192.in-addr.arpa",
		MAC:              "AA:BB:CC:DD:EE:FF",
		MACValid:         true,
		Owner:            "Jane Doe",
		OwnerEmail:       "jane.doe@example.com",
		OwnerTeam:        "netops",
		DeviceType:       model.DeviceSwitch,
		DeviceConfidence: 0.75,
		Site:             "San Jose",
		SiteNormalized:   "SJC",
		SourceRowID:      7,
		Steps:            []string{"ip:validated", "hostname:lowercased"},
	}

	row := RecordRow(rec)
	if len(row) != len(Columns) {
		t.Fatalf("row width = %d, want %d", len(row), len(Columns))
	}

	want := map[string]string{
		"ip":                     "192.168.1.10",
		"ip_valid":               "true",
		"ip_version":             "4",
		"subnet_cidr":            "192.168.1.0/24",
		"hostname_valid":         "true",
		"fqdn_consistent":        "true",
		"mac":                    "AA:BB:CC:DD:EE:FF",
		"device_type":            "switch",
		"device_type_confidence": "0.75",
		"site_normalized":        "SJC",
		"source_row_id":          "7",
		"normalization_steps":    "ip:validated;hostname:lowercased",
	}
	for col, wantVal := range want {
		idx := columnIndex(t, col)
		if row[idx] != wantVal {
			t.Errorf("%s = %q, want %q", col, row[idx], wantVal)
		}
	}
}

func TestRecordRowEmptyVersion(t *testing.T) {
	row := RecordRow(model.CanonicalRecord{})
	if got := row[columnIndex(t, "ip_version")]; got != "" {
		t.Errorf("ip_version = %q, want empty for invalid IP", got)
	}
	if got := row[columnIndex(t, "ip_valid")]; got != "false" {
		t.Errorf("ip_valid = %q, want false", got)
	}
	if got := row[columnIndex(t, "device_type_confidence")]; got != "0" {
		t.Errorf("device_type_confidence = %q, want 0", got)
	}
}

func columnIndex(t *testing.T, name string) int {
	t.Helper()
	for i, c := range Columns {
		if c == name {
			return i
		}
	}
	t.Fatalf("no column %q", name)
	return -1
}
