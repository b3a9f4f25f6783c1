// Package types defines the Record variants (Person, Organization), the
// Contacts collection, the field validators, and the Store interface for
// snapshot persistence.
package types
