// Package source reads raw inventory rows from an input dataset and maps
// loosely named columns onto the recognized logical fields.
package source

import (
	"context"
	"strings"

	"github.com/crimson-sun/rake/internal/model"
)

// Source is the interface all inventory input readers implement.
type Source interface {
	// Records reads the entire dataset. A read failure here is the only
	// fatal error in the system: it aborts the run before any row
	// processing begins.
	Records(ctx context.Context) ([]model.RawRecord, error)
}

// Accepted header aliases per logical field. Resolution walks the actual
// header left to right and picks the first column whose lower-cased name
// appears in the alias list; remaining candidates are ignored.
var (
	ipAliases     = []string{"ip", "ip_address", "address"}
	hostAliases   = []string{"hostname", "host", "shortname"}
	fqdnAliases   = []string{"fqdn", "name", "dns_name", "full_name"}
	macAliases    = []string{"mac", "mac_address", "ether"}
	ownerAliases  = []string{"owner", "user", "assigned_to", "responsible"}
	deviceAliases = []string{"device_type", "type", "role"}
	siteAliases   = []string{"site", "location", "office", "po", "dc"}
	rowIDAliases  = []string{"source_row_id", "row_id", "id"}
)

// columns holds resolved column indexes; -1 means the field is absent.
type columns struct {
	ip, host, fqdn, mac, owner, device, site, rowID int
}

func resolve(header []string) columns {
	return columns{
		ip:     pick(header, ipAliases),
		host:   pick(header, hostAliases),
		fqdn:   pick(header, fqdnAliases),
		mac:    pick(header, macAliases),
		owner:  pick(header, ownerAliases),
		device: pick(header, deviceAliases),
		site:   pick(header, siteAliases),
		rowID:  pick(header, rowIDAliases),
	}
}

func pick(header []string, aliases []string) int {
	for i, name := range header {
		lower := strings.ToLower(name)
		for _, a := range aliases {
			if lower == a {
				return i
			}
		}
	}
	return -1
}

// FromRows maps pre-split tabular data onto RawRecords using header alias
// resolution. Absent columns yield empty strings; short rows are tolerated.
func FromRows(header []string, rows [][]string) []model.RawRecord {
	cols := resolve(header)
	records := make([]model.RawRecord, len(rows))
	for i, row := range rows {
		cell := func(idx int) string {
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		records[i] = model.RawRecord{
			IP:          cell(cols.ip),
			Hostname:    cell(cols.host),
			FQDN:        cell(cols.fqdn),
			MAC:         cell(cols.mac),
			Owner:       cell(cols.owner),
			DeviceHint:  cell(cols.device),
			Site:        cell(cols.site),
			SourceRowID: cell(cols.rowID),
		}
	}
	return records
}
