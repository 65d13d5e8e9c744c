// Package output defines the sink interface for pipeline results and the
// canonical column layout shared by tabular sinks.
package output

import (
	"context"
	"strconv"
	"strings"

	"github.com/crimson-sun/rake/internal/model"
)

// Output is the interface for result destinations. Sinks that only consume
// one of the two streams implement the other method as a no-op.
type Output interface {
	WriteRecord(ctx context.Context, rec model.CanonicalRecord) error
	WriteAnomaly(ctx context.Context, a model.Anomaly) error
	Close() error
}

// Columns is the ordered header of the clean record output.
var Columns = []string{
	"ip", "ip_valid", "ip_version", "subnet_cidr",
	"hostname", "hostname_valid", "fqdn", "fqdn_consistent", "reverse_ptr",
	"mac", "mac_valid",
	"owner", "owner_email", "owner_team",
	"device_type", "device_type_confidence",
	"site", "site_normalized",
	"source_row_id", "normalization_steps",
}

// RecordRow renders a canonical record as one tabular row in Columns order.
func RecordRow(rec model.CanonicalRecord) []string {
	version := ""
	if rec.IPVersion != 0 {
		version = strconv.Itoa(rec.IPVersion)
	}
	return []string{
		rec.IP,
		strconv.FormatBool(rec.IPValid),
		version,
		rec.SubnetCIDR,
		rec.Hostname,
		strconv.FormatBool(rec.HostnameValid),
		rec.FQDN,
		strconv.FormatBool(rec.FQDNConsistent),
		rec.ReversePtr,
		rec.MAC,
		strconv.FormatBool(rec.MACValid),
		rec.Owner,
		rec.OwnerEmail,
		rec.OwnerTeam,
		string(rec.DeviceType),
		strconv.FormatFloat(rec.DeviceConfidence, 'f', -1, 64),
		rec.Site,
		rec.SiteNormalized,
		strconv.Itoa(rec.SourceRowID),
		strings.Join(rec.Steps, ";"),
	}
}
