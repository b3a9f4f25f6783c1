package types

import (
	"fmt"
	"io"
)

// Person is a contact record for an individual.
type Person struct {
	Meta
	Name    string
	Surname string
	Birth   string
	Gender  string
	Phone   string
}

// NewPerson returns an empty Person with fresh timestamps and sentinel
// values for the validated fields.
func NewPerson() *Person {
	return &Person{
		Meta:   newMeta(),
		Birth:  NoData,
		Gender: NoData,
		Phone:  NoNumber,
	}
}

// CreatePerson reads each field from in, in fixed order, validating as it
// goes and printing the field diagnostic to out on rejection. A nil reader
// or writer is a caller defect and panics.
func CreatePerson(in *LineReader, out io.Writer) *Person {
	if in == nil || out == nil {
		panic("types: CreatePerson requires an input source and an output writer")
	}

	p := NewPerson()
	p.Name = readField(in, out, "Enter the name: ", FieldName)
	p.Surname = readField(in, out, "Enter the surname: ", FieldSurname)
	p.Birth = readField(in, out, "Enter the birth date: ", FieldBirth)
	p.Gender = readField(in, out, "Enter the gender (M, F): ", FieldGender)
	p.Phone = readField(in, out, "Enter the number: ", FieldNumber)
	return p
}

// EditableFields returns the person field identifiers in edit order.
func (p *Person) EditableFields() []string {
	return []string{FieldName, FieldSurname, FieldBirth, FieldGender, FieldNumber}
}

// ApplyEdit validates value for the given field and stores the result,
// refreshing the last-edited timestamp. Unknown fields are a no-op.
func (p *Person) ApplyEdit(field, value string) {
	switch field {
	case FieldName:
		p.Name, _, _ = ValidateField(field, value)
	case FieldSurname:
		p.Surname, _, _ = ValidateField(field, value)
	case FieldBirth:
		p.Birth, _, _ = ValidateField(field, value)
	case FieldGender:
		p.Gender, _, _ = ValidateField(field, value)
	case FieldNumber:
		p.Phone, _, _ = ValidateField(field, value)
	default:
		return
	}
	p.Touch()
}

// ShortInfo returns "<name> <surname>".
func (p *Person) ShortInfo() string {
	return p.Name + " " + p.Surname
}

// Matches reports whether pattern matches any of the person's fields.
func (p *Person) Matches(pattern string) bool {
	return matchAny(pattern, p.Name, p.Surname, p.Birth, p.Gender, p.Phone)
}

// String renders every field with its label, followed by the timestamps.
func (p *Person) String() string {
	return fmt.Sprintf("Name: %s\nSurname: %s\nBirth date: %s\nGender: %s\nNumber: %s\n%s",
		p.Name, p.Surname, p.Birth, p.Gender, p.Phone, p.stamps())
}
