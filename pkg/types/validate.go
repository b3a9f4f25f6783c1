package types

import (
	"regexp"
	"strings"
	"time"
)

// Editable field identifiers.
const (
	FieldName    = "name"
	FieldSurname = "surname"
	FieldBirth   = "birth"
	FieldGender  = "gender"
	FieldNumber  = "number"
	FieldAddress = "address"
)

// Diagnostics printed when a field value is rejected. The validators
// themselves are pure; callers decide whether and where to print these.
const (
	DiagBadBirth  = "Bad birth date!"
	DiagBadGender = "Bad gender!"
	DiagBadPhone  = "Bad phone number!"
)

// birthLayout is the accepted calendar date form.
const birthLayout = "2006-01-02"

// phonePattern: optional leading +, then digits and common separators.
// At least one digit is checked separately.
var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]+$`)

// ValidateBirth accepts a calendar date in YYYY-MM-DD form and returns it
// unchanged. Anything else maps to the NoData sentinel.
func ValidateBirth(raw string) (string, bool) {
	if _, err := time.Parse(birthLayout, raw); err != nil {
		return NoData, false
	}
	return raw, true
}

// ValidateGender accepts exactly "M" or "F". Anything else maps to NoData.
func ValidateGender(raw string) (string, bool) {
	if raw == "M" || raw == "F" {
		return raw, true
	}
	return NoData, false
}

// ValidatePhone accepts an optional leading + followed by digits, spaces,
// hyphens, parentheses, and dots, with at least one digit overall.
// Everything else maps to the NoNumber sentinel.
func ValidatePhone(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return NoNumber, false
	}
	if !phonePattern.MatchString(raw) {
		return NoNumber, false
	}
	if !strings.ContainsAny(raw, "0123456789") {
		return NoNumber, false
	}
	return raw, true
}

// ValidateField dispatches to the validator for the given field identifier.
// Free-text fields (name, surname, address) accept any value. diagnostic is
// non-empty only when the value was rejected and a sentinel substituted.
func ValidateField(field, raw string) (value string, ok bool, diagnostic string) {
	switch field {
	case FieldBirth:
		v, ok := ValidateBirth(raw)
		if !ok {
			return v, false, DiagBadBirth
		}
		return v, true, ""
	case FieldGender:
		v, ok := ValidateGender(raw)
		if !ok {
			return v, false, DiagBadGender
		}
		return v, true, ""
	case FieldNumber:
		v, ok := ValidatePhone(raw)
		if !ok {
			return v, false, DiagBadPhone
		}
		return v, true, ""
	default:
		return raw, true, ""
	}
}
