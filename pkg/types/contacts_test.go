package types

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records Save calls and serves canned Load results.
type fakeStore struct {
	records []Record
	loadErr error
	saveErr error
	saved   [][]Record
}

func (f *fakeStore) Load() ([]Record, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return slices.Clone(f.records), nil
}

func (f *fakeStore) Save(records []Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, slices.Clone(records))
	return nil
}

func namedPerson(name, surname string) *Person {
	p := NewPerson()
	p.Name = name
	p.Surname = surname
	return p
}

func TestContactsAddAndGet(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Size())

	p := namedPerson("John", "Doe")
	c.Add(p)

	assert.Equal(t, 1, c.Size())
	assert.Same(t, p, c.Get(0))
}

func TestContactsAddNilPanics(t *testing.T) {
	assert.Panics(t, func() { New().Add(nil) })
}

func TestContactsDeleteShiftsIndices(t *testing.T) {
	c := New()
	for _, name := range []string{"a", "b", "c", "d"} {
		c.Add(namedPerson(name, ""))
	}

	c.Delete(1)

	require.Equal(t, 3, c.Size())
	assert.Equal(t, "a ", c.Get(0).ShortInfo())
	assert.Equal(t, "c ", c.Get(1).ShortInfo(), "what was at i+1 moves to i")
	assert.Equal(t, "d ", c.Get(2).ShortInfo())
}

func TestContactsAddInteractive(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAdded bool
		wantSize  int
		wantOut   string
	}{
		{
			name:      "person",
			input:     "person\nJohn\nDoe\n2000-01-01\nM\n555-1234\n",
			wantAdded: true,
			wantSize:  1,
		},
		{
			name:      "organization",
			input:     "organization\nAcme\n1 Main St\n555-0000\n",
			wantAdded: true,
			wantSize:  1,
		},
		{
			name:    "unknown type",
			input:   "robot\n",
			wantOut: "Unknown record type.",
		},
		{
			name:    "empty type",
			input:   "\n",
			wantOut: "Unknown record type.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			var out bytes.Buffer

			added := c.AddInteractive(NewLineReader(strings.NewReader(tt.input)), &out)

			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantSize, c.Size())
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func TestContactsEdit(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	var out bytes.Buffer

	err := c.Edit(NewLineReader(strings.NewReader("name\nJane\n")), &out, 0)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", c.Get(0).ShortInfo())
	assert.Contains(t, out.String(), "Select a field [name, surname, birth, gender, number]: ")
	assert.Contains(t, out.String(), "Enter name: ")
}

func TestContactsEditInvalidField(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	var out bytes.Buffer

	err := c.Edit(NewLineReader(strings.NewReader("address\n")), &out, 0)

	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "John Doe", c.Get(0).ShortInfo(), "no state change on invalid field")
}

func TestContactsEditEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "at field prompt", input: ""},
		{name: "at value prompt", input: "name\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(namedPerson("John", "Doe"))
			var out bytes.Buffer

			err := c.Edit(NewLineReader(strings.NewReader(tt.input)), &out, 0)

			assert.ErrorIs(t, err, io.EOF)
			assert.Equal(t, "John Doe", c.Get(0).ShortInfo(), "aborted edit must not change state")
			assert.NotContains(t, out.String(), "Invalid field")
		})
	}
}

func TestContactsEditRejectedValuePrintsDiagnostic(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	var out bytes.Buffer

	err := c.Edit(NewLineReader(strings.NewReader("birth\nnot-a-date\n")), &out, 0)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bad birth date!")
	assert.Equal(t, NoData, c.Get(0).(*Person).Birth)
}

func TestContactsSearch(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	c.Add(namedPerson("Alice", "Smith"))
	c.Add(namedPerson("Johnny", "Walker"))

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "case insensitive partial", query: "JOHN\n", want: []int{0, 2}},
		{name: "single match", query: "alice\n", want: []int{1}},
		{name: "no matches", query: "zebra\n", want: nil},
		{name: "empty query matches nothing", query: "\n", want: nil},
		{name: "invalid pattern matches nothing", query: "[oops\n", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := c.Search(NewLineReader(strings.NewReader(tt.query)), &out)

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter search query: ")
			assert.Equal(t, 3, c.Size(), "search must not mutate")
		})
	}
}

func TestContactsPrintShortList(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	o := NewOrganization()
	o.Name = "Acme Corp"
	c.Add(o)

	var out bytes.Buffer
	c.PrintShortList(&out)
	assert.Equal(t, "1. John Doe\n2. Acme Corp\n", out.String())

	out.Reset()
	c.PrintShortListIndices(&out, []int{1, 0})
	assert.Equal(t, "1. Acme Corp\n2. John Doe\n", out.String())
}

func TestContactsSaveNoStoreIsNoOp(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	assert.NoError(t, c.Save())
}

func TestContactsSaveWritesWholeCollection(t *testing.T) {
	store := &fakeStore{}
	c := New()
	c.Bind(store)
	c.Add(namedPerson("John", "Doe"))
	c.Add(namedPerson("Alice", "Smith"))

	require.NoError(t, c.Save())

	require.Len(t, store.saved, 1)
	assert.Len(t, store.saved[0], 2)
}

func TestContactsSaveReportsStoreError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	c := New()
	c.Bind(store)

	err := c.Save()

	assert.ErrorContains(t, err, "disk full")
}

func TestLoadBindsStore(t *testing.T) {
	store := &fakeStore{records: []Record{namedPerson("John", "Doe")}}

	c, err := Load(store)

	require.NoError(t, err)
	assert.Equal(t, 1, c.Size())

	// Saves after load go back to the same store.
	require.NoError(t, c.Save())
	assert.Len(t, store.saved, 1)
}

func TestLoadPropagatesError(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("corrupt snapshot")}

	_, err := Load(store)

	assert.ErrorContains(t, err, "corrupt snapshot")
}

func TestContactsCopyIsolation(t *testing.T) {
	c := New()
	c.Add(namedPerson("John", "Doe"))
	c.Add(namedPerson("Alice", "Smith"))

	cp := c.Copy()
	cp.Delete(0)

	assert.Equal(t, 1, cp.Size())
	assert.Equal(t, 2, c.Size(), "original must keep its records")
}
