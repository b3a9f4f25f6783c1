package types

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Record type tags. Stored in snapshots and read back on load.
const (
	TypePerson       = "person"
	TypeOrganization = "organization"
)

// Sentinel values standing in for rejected or absent field data.
const (
	NoData   = "[no data]"
	NoNumber = "[no number]"
)

// TimeLayout is the display format for record timestamps.
const TimeLayout = "2006-01-02T15:04"

// Record is the capability set shared by every contact variant.
// The set of implementations is closed: Person and Organization.
type Record interface {
	// ID returns the record's unique identifier.
	ID() string

	// Created returns the immutable creation timestamp.
	Created() time.Time

	// LastEdited returns the timestamp of the last successful edit.
	// Never earlier than Created.
	LastEdited() time.Time

	// SetTimestamps restores both timestamps, typically from a snapshot.
	// Returns ErrTimestampOrder if lastEdited precedes created.
	SetTimestamps(created, lastEdited time.Time) error

	// EditableFields returns the ordered field identifiers a user may edit.
	EditableFields() []string

	// ApplyEdit validates value for the given field and stores the result,
	// refreshing the last-edited timestamp. An unrecognized field
	// identifier is a no-op.
	ApplyEdit(field, value string)

	// ShortInfo returns the one-line listing label.
	ShortInfo() string

	// Matches reports whether pattern, compiled as a case-insensitive
	// regular expression, matches any textual field. Empty or invalid
	// patterns never match.
	Matches(pattern string) bool

	fmt.Stringer
}

// Meta is the shared payload embedded in every record variant: a unique ID
// and the creation/last-edited timestamp pair.
type Meta struct {
	RecordID     string
	CreatedAt    time.Time
	LastEditedAt time.Time
}

// newMeta returns a Meta with a fresh UUID v7 and both timestamps set to now.
func newMeta() Meta {
	now := time.Now()
	return Meta{RecordID: newRecordID(), CreatedAt: now, LastEditedAt: now}
}

// newRecordID generates a UUID v7 record identifier.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the record's unique identifier.
func (m *Meta) ID() string { return m.RecordID }

// Created returns the creation timestamp.
func (m *Meta) Created() time.Time { return m.CreatedAt }

// LastEdited returns the last-edited timestamp.
func (m *Meta) LastEdited() time.Time { return m.LastEditedAt }

// Touch refreshes the last-edited timestamp to now.
func (m *Meta) Touch() { m.LastEditedAt = time.Now() }

// SetTimestamps restores the timestamp pair, enforcing the invariant that
// the last edit never precedes creation. A violation is a caller defect,
// not user input, and is reported as ErrTimestampOrder.
func (m *Meta) SetTimestamps(created, lastEdited time.Time) error {
	if lastEdited.Before(created) {
		return ErrTimestampOrder
	}
	m.CreatedAt = created
	m.LastEditedAt = lastEdited
	return nil
}

// stamps renders the two timestamp lines appended to every record's String.
func (m *Meta) stamps() string {
	return fmt.Sprintf("Time created: %s\nTime last edit: %s",
		m.CreatedAt.Format(TimeLayout), m.LastEditedAt.Format(TimeLayout))
}

// matchAny reports whether pattern matches any of the given field values.
// The pattern is compiled case-insensitively and matched unanchored. An
// empty or syntactically invalid pattern matches nothing.
func matchAny(pattern string, fields ...string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	for _, f := range fields {
		if re.MatchString(f) {
			return true
		}
	}
	return false
}
