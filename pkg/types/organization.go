package types

import (
	"fmt"
	"io"
)

// Organization is a contact record for a company or institution.
type Organization struct {
	Meta
	Name    string
	Address string
	Phone   string
}

// NewOrganization returns an empty Organization with fresh timestamps and
// the phone sentinel in place.
func NewOrganization() *Organization {
	return &Organization{
		Meta:  newMeta(),
		Phone: NoNumber,
	}
}

// CreateOrganization reads each field from in, in fixed order, validating
// as it goes and printing the field diagnostic to out on rejection. A nil
// reader or writer is a caller defect and panics.
func CreateOrganization(in *LineReader, out io.Writer) *Organization {
	if in == nil || out == nil {
		panic("types: CreateOrganization requires an input source and an output writer")
	}

	o := NewOrganization()
	o.Name = readField(in, out, "Enter the organization name: ", FieldName)
	o.Address = readField(in, out, "Enter the address: ", FieldAddress)
	o.Phone = readField(in, out, "Enter the number: ", FieldNumber)
	return o
}

// EditableFields returns the organization field identifiers in edit order.
func (o *Organization) EditableFields() []string {
	return []string{FieldName, FieldAddress, FieldNumber}
}

// ApplyEdit validates value for the given field and stores the result,
// refreshing the last-edited timestamp. Unknown fields are a no-op.
func (o *Organization) ApplyEdit(field, value string) {
	switch field {
	case FieldName:
		o.Name, _, _ = ValidateField(field, value)
	case FieldAddress:
		o.Address, _, _ = ValidateField(field, value)
	case FieldNumber:
		o.Phone, _, _ = ValidateField(field, value)
	default:
		return
	}
	o.Touch()
}

// ShortInfo returns the organization name.
func (o *Organization) ShortInfo() string {
	return o.Name
}

// Matches reports whether pattern matches any of the organization's fields.
func (o *Organization) Matches(pattern string) bool {
	return matchAny(pattern, o.Name, o.Address, o.Phone)
}

// String renders every field with its label, followed by the timestamps.
func (o *Organization) String() string {
	return fmt.Sprintf("Organization name: %s\nAddress: %s\nNumber: %s\n%s",
		o.Name, o.Address, o.Phone, o.stamps())
}
