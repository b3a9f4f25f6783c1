// Package sqlite implements the SQLite snapshot store for the contacts
// collection. Each save replaces the records table in one transaction, so
// the database always holds exactly one consistent snapshot.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// timeFormat is the column encoding for timestamps.
const timeFormat = time.RFC3339Nano

// Store persists snapshots in a SQLite database at a fixed path. The
// database is opened per operation and closed before returning, so the
// file is never held across the interactive session.
type Store struct {
	path string
}

// NewStore returns a store backed by the database at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the database path.
func (s *Store) Path() string { return s.path }

// Load reads all records ordered by position. A file that is not a valid
// SQLite database, lacks the records table, or holds malformed rows is
// returned as a single error.
func (s *Store) Load() ([]types.Record, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT record_type, record_id, name, surname, birth, gender, address, phone, created_at, last_edited_at
		FROM records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.recordType, &r.recordID, &r.name, &r.surname,
			&r.birth, &r.gender, &r.address, &r.phone, &r.createdAt, &r.lastEditedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec, err := r.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}

// Save replaces the whole records table with the given collection in one
// transaction.
func (s *Store) Save(records []types.Record) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	for position, rec := range records {
		r, err := toRow(rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", position, err)
		}
		if _, err := tx.Exec(`INSERT INTO records
			(record_id, position, record_type, name, surname, birth, gender, address, phone, created_at, last_edited_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.recordID, position, r.recordType, r.name, r.surname,
			r.birth, r.gender, r.address, r.phone, r.createdAt, r.lastEditedAt); err != nil {
			return fmt.Errorf("inserting record %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// row is the flat column form of a record.
type row struct {
	recordType   string
	recordID     string
	name         string
	surname      string
	birth        string
	gender       string
	address      string
	phone        string
	createdAt    string
	lastEditedAt string
}

// toRow flattens a record into its column form.
func toRow(rec types.Record) (row, error) {
	r := row{
		recordID:     rec.ID(),
		createdAt:    rec.Created().Format(timeFormat),
		lastEditedAt: rec.LastEdited().Format(timeFormat),
	}
	switch v := rec.(type) {
	case *types.Person:
		r.recordType = types.TypePerson
		r.name = v.Name
		r.surname = v.Surname
		r.birth = v.Birth
		r.gender = v.Gender
		r.phone = v.Phone
	case *types.Organization:
		r.recordType = types.TypeOrganization
		r.name = v.Name
		r.address = v.Address
		r.phone = v.Phone
	default:
		return row{}, fmt.Errorf("%w: %T", types.ErrUnknownRecordType, rec)
	}
	return r, nil
}

// toRecord rebuilds a record from its column form, restoring field values
// verbatim and the original timestamps.
func (r row) toRecord() (types.Record, error) {
	created, err := time.Parse(timeFormat, r.createdAt)
	if err != nil {
		return nil, fmt.Errorf("record %q: parsing created_at: %w", r.recordID, err)
	}
	lastEdited, err := time.Parse(timeFormat, r.lastEditedAt)
	if err != nil {
		return nil, fmt.Errorf("record %q: parsing last_edited_at: %w", r.recordID, err)
	}

	switch r.recordType {
	case types.TypePerson:
		p := types.NewPerson()
		if r.recordID != "" {
			p.RecordID = r.recordID
		}
		p.Name = r.name
		p.Surname = r.surname
		p.Birth = r.birth
		p.Gender = r.gender
		p.Phone = r.phone
		if err := p.SetTimestamps(created, lastEdited); err != nil {
			return nil, fmt.Errorf("record %q: %w", r.recordID, err)
		}
		return p, nil
	case types.TypeOrganization:
		o := types.NewOrganization()
		if r.recordID != "" {
			o.RecordID = r.recordID
		}
		o.Name = r.name
		o.Address = r.address
		o.Phone = r.phone
		if err := o.SetTimestamps(created, lastEdited); err != nil {
			return nil, fmt.Errorf("record %q: %w", r.recordID, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownRecordType, r.recordType)
	}
}
