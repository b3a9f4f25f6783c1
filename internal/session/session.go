// Package session implements the interactive controller for the contacts
// collection: a single-threaded menu loop with list, search, and
// record-view states, coordinating edits and deletions with persistence.
package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Prompts for each addressable state.
const (
	menuPrompt   = "[menu] Enter action (add, list, search, count, exit): "
	listPrompt   = "[list] Enter action ([number], back): "
	searchPrompt = "[search] Enter action ([number], back, again): "
	recordPrompt = "[record] Enter action (edit, delete, menu): "
)

// Session drives a Contacts collection through user input and output.
// It operates on a defensive copy so the caller's collection is never
// aliased. All reads block until a full line is available; end of input
// behaves as an explicit exit.
type Session struct {
	contacts *types.Contacts
	in       *types.LineReader
	out      io.Writer
}

// New returns a session over an isolated working copy of contacts. A nil
// collection, reader, or writer is a caller defect and panics.
func New(contacts *types.Contacts, in io.Reader, out io.Writer) *Session {
	if contacts == nil || in == nil || out == nil {
		panic("session: New requires a collection, an input source, and an output writer")
	}
	return &Session{
		contacts: contacts.Copy(),
		in:       types.NewLineReader(in),
		out:      out,
	}
}

// Contacts returns the session's working copy.
func (s *Session) Contacts() *types.Contacts { return s.contacts }

// Run executes the menu loop until exit or end of input.
func (s *Session) Run() {
	for {
		fmt.Fprint(s.out, menuPrompt)
		action, ok := s.in.Line()
		if !ok {
			return
		}

		switch action {
		case "add":
			s.handleAdd()
		case "list":
			s.handleList()
		case "search":
			s.handleSearch()
		case "count":
			fmt.Fprintf(s.out, "The Phone Book has %d records.\n", s.contacts.Size())
		case "exit":
			return
		default:
			fmt.Fprintln(s.out, "Unknown command")
		}
	}
}

// save persists the collection, reporting a failure without aborting.
func (s *Session) save() {
	if err := s.contacts.Save(); err != nil {
		fmt.Fprintln(s.out, "Error saving data.")
	}
}

// handleAdd runs the interactive add flow, persists, and reports success.
func (s *Session) handleAdd() {
	if !s.contacts.AddInteractive(s.in, s.out) {
		return
	}
	s.save()
	fmt.Fprintln(s.out, "The record added.")
}

// handleList shows the numbered short list and lets the user open one
// record. Invalid selections return silently to the menu.
func (s *Session) handleList() {
	if s.contacts.Size() == 0 {
		fmt.Fprintln(s.out, "No records to list!")
		return
	}

	s.contacts.PrintShortList(s.out)
	fmt.Fprint(s.out, listPrompt)
	input, ok := s.in.Line()
	if !ok || input == "back" {
		return
	}

	number, err := strconv.Atoi(input)
	if err != nil || number < 1 || number > s.contacts.Size() {
		return
	}
	s.recordView(number - 1)
}

// handleSearch prompts for a query, reports the match count, and lets the
// user open a match, rerun the search, or go back.
func (s *Session) handleSearch() {
	for {
		matches := s.contacts.Search(s.in, s.out)
		fmt.Fprintf(s.out, "Found %d results\n", len(matches))
		if len(matches) == 0 {
			fmt.Fprintln(s.out, "No matches found!")
			return
		}

		s.contacts.PrintShortListIndices(s.out, matches)
		fmt.Fprint(s.out, searchPrompt)
		action, ok := s.in.Line()
		if !ok || action == "back" {
			return
		}
		if action == "again" {
			continue
		}

		number, err := strconv.Atoi(action)
		if err != nil || number < 1 || number > len(matches) {
			return
		}
		s.recordView(matches[number-1])
		return
	}
}

// recordView prints the full record and loops on edit/delete/menu actions.
// The index guard covers a record vanishing mid-flow; in this
// single-threaded model it cannot happen, but the state is recoverable.
func (s *Session) recordView(index int) {
	for {
		if index < 0 || index >= s.contacts.Size() {
			fmt.Fprintln(s.out, "Record not found.")
			return
		}

		fmt.Fprintln(s.out, s.contacts.Get(index))
		fmt.Fprint(s.out, recordPrompt)
		action, ok := s.in.Line()
		if !ok {
			return
		}

		switch action {
		case "edit":
			err := s.contacts.Edit(s.in, s.out, index)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				fmt.Fprintln(s.out, "Invalid field")
				continue
			}
			s.save()
			fmt.Fprintln(s.out, "Saved")
		case "delete":
			s.contacts.Delete(index)
			s.save()
			fmt.Fprintln(s.out, "The record removed!")
			return
		case "menu":
			return
		default:
			fmt.Fprintln(s.out, "Unknown command")
		}
	}
}
