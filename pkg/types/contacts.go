package types

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Store persists an ordered record collection as one atomic snapshot.
type Store interface {
	// Load reads the full snapshot and returns the records in stored order.
	Load() ([]Record, error)

	// Save writes all records as one snapshot, replacing any previous one.
	Save(records []Record) error
}

// Contacts is an ordered collection of records with an optional bound
// store. Insertion order is display order and is preserved across edits
// and deletions.
type Contacts struct {
	records []Record
	store   Store
}

// New returns an empty collection with no bound store; Save is a no-op
// until a store is bound.
func New() *Contacts {
	return &Contacts{}
}

// Load reads the full snapshot from store and returns a collection bound
// to it, so later saves go back to the same place.
func Load(store Store) (*Contacts, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &Contacts{records: records, store: store}, nil
}

// Copy returns a defensive copy: a fresh record slice over the same
// records and store, so mutations of the copy's ordering never alias the
// original's slice.
func (c *Contacts) Copy() *Contacts {
	return &Contacts{records: slices.Clone(c.records), store: c.store}
}

// Bind sets the store used by Save.
func (c *Contacts) Bind(store Store) { c.store = store }

// Size returns the number of records.
func (c *Contacts) Size() int { return len(c.records) }

// Get returns the record at index. An out-of-range index is a caller
// defect and panics via the slice bounds check.
func (c *Contacts) Get(index int) Record { return c.records[index] }

// Add appends a record to the collection. A nil record is a caller defect.
func (c *Contacts) Add(rec Record) {
	if rec == nil {
		panic("types: Add requires a non-nil record")
	}
	c.records = append(c.records, rec)
}

// AddInteractive reads a record type tag and delegates to the matching
// variant's interactive creation. An unrecognized tag prints a diagnostic
// and adds nothing. Reports whether a record was added.
func (c *Contacts) AddInteractive(in *LineReader, out io.Writer) bool {
	if in == nil || out == nil {
		panic("types: AddInteractive requires an input source and an output writer")
	}

	fmt.Fprint(out, "Enter the type (person, organization): ")
	kind, _ := in.Line()

	var rec Record
	switch kind {
	case TypePerson:
		rec = CreatePerson(in, out)
	case TypeOrganization:
		rec = CreateOrganization(in, out)
	default:
		fmt.Fprintln(out, "Unknown record type.")
		return false
	}

	c.records = append(c.records, rec)
	return true
}

// Delete removes the record at index in place; later indices shift down
// by one. An out-of-range index is a caller defect and panics.
func (c *Contacts) Delete(index int) {
	c.records = append(c.records[:index], c.records[index+1:]...)
}

// Edit prompts for a field name and a new value for the record at index.
// An unknown field name returns ErrInvalidField with no state change.
// A rejected value prints its diagnostic and stores the sentinel.
// End of input at either prompt aborts the edit and returns io.EOF.
func (c *Contacts) Edit(in *LineReader, out io.Writer, index int) error {
	rec := c.records[index]
	fields := rec.EditableFields()

	fmt.Fprintf(out, "Select a field [%s]: ", strings.Join(fields, ", "))
	field, ok := in.Line()
	if !ok {
		return io.EOF
	}
	if !slices.Contains(fields, field) {
		return ErrInvalidField
	}

	fmt.Fprintf(out, "Enter %s: ", field)
	raw, ok := in.Line()
	if !ok {
		return io.EOF
	}
	if _, ok, diag := ValidateField(field, raw); !ok {
		fmt.Fprintln(out, diag)
	}
	rec.ApplyEdit(field, raw)
	return nil
}

// Search reads one query and returns the indices of matching records in
// collection order. The collection is not mutated.
func (c *Contacts) Search(in *LineReader, out io.Writer) []int {
	fmt.Fprint(out, "Enter search query: ")
	query, _ := in.Line()

	var matches []int
	for i, rec := range c.records {
		if rec.Matches(query) {
			matches = append(matches, i)
		}
	}
	return matches
}

// PrintShortList renders a 1-based numbered listing of every record.
func (c *Contacts) PrintShortList(out io.Writer) {
	for i, rec := range c.records {
		fmt.Fprintf(out, "%d. %s\n", i+1, rec.ShortInfo())
	}
}

// PrintShortListIndices renders a 1-based numbered listing of the records
// at the given indices, preserving the given order.
func (c *Contacts) PrintShortListIndices(out io.Writer, indices []int) {
	for i, idx := range indices {
		fmt.Fprintf(out, "%d. %s\n", i+1, c.records[idx].ShortInfo())
	}
}

// Save writes the whole collection to the bound store as one snapshot.
// With no store bound it is a no-op. A failed save never aborts the
// caller; the error is returned for reporting.
func (c *Contacts) Save() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(c.records); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
