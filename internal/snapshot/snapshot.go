// Package snapshot implements the JSON snapshot store for the contacts
// collection: a versioned envelope holding every record, written atomically
// with the temp-file, fsync, rename pattern.
package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Version is the snapshot format version this package reads and writes.
const Version = 1

// envelope is the on-disk shape of a snapshot.
type envelope struct {
	Version int           `json:"version"`
	Records []recordEntry `json:"records"`
}

// recordEntry flattens one record of either variant. Variant-specific
// fields are omitted for the other variant.
type recordEntry struct {
	Type         string    `json:"type"`
	RecordID     string    `json:"record_id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname,omitempty"`
	Birth        string    `json:"birth,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditedAt time.Time `json:"last_edited_at"`
}

// FileStore persists snapshots at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to and reading from path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot path.
func (s *FileStore) Path() string { return s.path }

// Load reads and decodes the snapshot. Any structural problem (unreadable
// file, invalid JSON, unknown version or record type, bad timestamps)
// is returned as a single error; partial results are never returned.
func (s *FileStore) Load() ([]types.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", env.Version)
	}

	records := make([]types.Record, 0, len(env.Records))
	for i, entry := range env.Records {
		rec, err := entry.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save encodes all records and writes them atomically: the envelope goes to
// a temp file in the target directory, is flushed and synced, then renamed
// over the destination.
func (s *FileStore) Save(records []types.Record) error {
	env := envelope{Version: Version, Records: make([]recordEntry, 0, len(records))}
	for i, rec := range records {
		entry, err := toEntry(rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		env.Records = append(env.Records, entry)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return writeAtomic(s.path, data)
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// toEntry flattens a record into its on-disk shape.
func toEntry(rec types.Record) (recordEntry, error) {
	switch r := rec.(type) {
	case *types.Person:
		return recordEntry{
			Type:         types.TypePerson,
			RecordID:     r.ID(),
			Name:         r.Name,
			Surname:      r.Surname,
			Birth:        r.Birth,
			Gender:       r.Gender,
			Phone:        r.Phone,
			CreatedAt:    r.Created(),
			LastEditedAt: r.LastEdited(),
		}, nil
	case *types.Organization:
		return recordEntry{
			Type:         types.TypeOrganization,
			RecordID:     r.ID(),
			Name:         r.Name,
			Address:      r.Address,
			Phone:        r.Phone,
			CreatedAt:    r.Created(),
			LastEditedAt: r.LastEdited(),
		}, nil
	default:
		return recordEntry{}, fmt.Errorf("%w: %T", types.ErrUnknownRecordType, rec)
	}
}

// toRecord rebuilds a record from its on-disk shape, restoring field values
// verbatim (sentinels included) and the original timestamps.
func (e recordEntry) toRecord() (types.Record, error) {
	if e.CreatedAt.IsZero() || e.LastEditedAt.IsZero() {
		return nil, fmt.Errorf("record %q: missing timestamps", e.RecordID)
	}

	switch e.Type {
	case types.TypePerson:
		p := types.NewPerson()
		if e.RecordID != "" {
			p.RecordID = e.RecordID
		}
		p.Name = e.Name
		p.Surname = e.Surname
		p.Birth = e.Birth
		p.Gender = e.Gender
		p.Phone = e.Phone
		if err := p.SetTimestamps(e.CreatedAt, e.LastEditedAt); err != nil {
			return nil, fmt.Errorf("record %q: %w", e.RecordID, err)
		}
		return p, nil
	case types.TypeOrganization:
		o := types.NewOrganization()
		if e.RecordID != "" {
			o.RecordID = e.RecordID
		}
		o.Name = e.Name
		o.Address = e.Address
		o.Phone = e.Phone
		if err := o.SetTimestamps(e.CreatedAt, e.LastEditedAt); err != nil {
			return nil, fmt.Errorf("record %q: %w", e.RecordID, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownRecordType, e.Type)
	}
}
