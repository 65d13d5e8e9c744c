// Package sqlite mirrors pipeline results into a SQLite database so that
// downstream IPAM tooling can query them directly.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/crimson-sun/rake/internal/model"
)

// Output writes records and anomalies into two tables. The database is
// opened with WAL journaling; inserts go through prepared statements.
type Output struct {
	db         *sql.DB
	insertRec  *sql.Stmt
	insertAnom *sql.Stmt
}

// New opens (or creates) the database at path and ensures the schema.
func New(path string) (*Output, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	o := &Output{db: db}
	if err := o.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	if err := o.prepare(); err != nil {
		db.Close()
		return nil, err
	}
	return o, nil
}

func (o *Output) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		source_row_id INTEGER NOT NULL,
		ip TEXT NOT NULL,
		ip_valid INTEGER NOT NULL,
		ip_version INTEGER,
		subnet_cidr TEXT,
		hostname TEXT,
		hostname_valid INTEGER NOT NULL,
		fqdn TEXT,
		fqdn_valid INTEGER NOT NULL,
		fqdn_consistent INTEGER NOT NULL,
		reverse_ptr TEXT,
		mac TEXT,
		mac_valid INTEGER NOT NULL,
		owner TEXT,
		owner_email TEXT,
		owner_team TEXT,
		device_type TEXT,
		device_type_confidence REAL NOT NULL,
		site TEXT,
		site_normalized TEXT,
		normalization_steps TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS anomalies (
		row_id INTEGER NOT NULL,
		fields JSON NOT NULL,
		issue_type TEXT NOT NULL,
		recommended_action TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_records_row ON records(source_row_id);
	CREATE INDEX IF NOT EXISTS idx_anomalies_row ON anomalies(row_id);
	CREATE INDEX IF NOT EXISTS idx_anomalies_issue ON anomalies(issue_type);
	`
	_, err := o.db.Exec(schema)
	return err
}

func (o *Output) prepare() error {
	var err error
	o.insertRec, err = o.db.Prepare(`
		INSERT INTO records (
			source_row_id, ip, ip_valid, ip_version, subnet_cidr,
			hostname, hostname_valid, fqdn, fqdn_valid, fqdn_consistent,
			reverse_ptr, mac, mac_valid, owner, owner_email, owner_team,
			device_type, device_type_confidence, site, site_normalized,
			normalization_steps
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare records insert: %w", err)
	}
	o.insertAnom, err = o.db.Prepare(`
		INSERT INTO anomalies (row_id, fields, issue_type, recommended_action)
		VALUES (?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare anomalies insert: %w", err)
	}
	return nil
}

func (o *Output) WriteRecord(ctx context.Context, rec model.CanonicalRecord) error {
	var version any
	if rec.IPVersion != 0 {
		version = rec.IPVersion
	}
	_, err := o.insertRec.ExecContext(ctx,
		rec.SourceRowID, rec.IP, rec.IPValid, version, rec.SubnetCIDR,
		rec.Hostname, rec.HostnameValid, rec.FQDN, rec.FQDNValid, rec.FQDNConsistent,
		rec.ReversePtr, rec.MAC, rec.MACValid, rec.Owner, rec.OwnerEmail, rec.OwnerTeam,
		string(rec.DeviceType), rec.DeviceConfidence, rec.Site, rec.SiteNormalized,
		strings.Join(rec.Steps, ";"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: insert record %d: %w", rec.SourceRowID, err)
	}
	return nil
}

func (o *Output) WriteAnomaly(ctx context.Context, a model.Anomaly) error {
	fields, err := json.Marshal(a.Fields)
	if err != nil {
		return fmt.Errorf("sqlite: marshal fields: %w", err)
	}
	if _, err := o.insertAnom.ExecContext(ctx, a.RowID, string(fields), string(a.IssueType), a.RecommendedAction); err != nil {
		return fmt.Errorf("sqlite: insert anomaly for row %d: %w", a.RowID, err)
	}
	return nil
}

// Close releases prepared statements and the database handle.
func (o *Output) Close() error {
	if o.insertRec != nil {
		o.insertRec.Close()
	}
	if o.insertAnom != nil {
		o.insertAnom.Close()
	}
	return o.db.Close()
}
