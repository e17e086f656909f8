package valueobject

import (
	"errors"
	"fmt"

	"github.com/bibbank/ibankit/pkg/iban"
)

// ErrInvalidIBAN is wrapped by every NewIBAN failure.
var ErrInvalidIBAN = errors.New("invalid IBAN")

// IBAN is an immutable, validated International Bank Account Number held in
// electronic format.
type IBAN struct {
	value string
}

// NewIBAN validates s against the registry and returns it in electronic
// format. The error lists the rejection reasons.
func NewIBAN(rules Rules, s string, opts ...iban.ValidateOption) (IBAN, error) {
	value := iban.ElectronicFormat(s)
	result := rules.Validate(value, opts...)
	if !result.Valid {
		return IBAN{}, fmt.Errorf("%w %q: %v", ErrInvalidIBAN, value, result.Reasons)
	}
	return IBAN{value: value}, nil
}

// MustNewIBAN is NewIBAN against the default registry, panicking on error.
// It is meant for fixtures and constants.
func MustNewIBAN(s string) IBAN {
	v, err := NewIBAN(iban.Default, s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the electronic format.
func (i IBAN) String() string {
	return i.value
}

// Friendly returns the IBAN in groups of four separated by spaces.
func (i IBAN) Friendly() string {
	return iban.FriendlyFormat(i.value, " ")
}

// CountryCode returns the two-letter country prefix.
func (i IBAN) CountryCode() CountryCode {
	if len(i.value) < 2 {
		return CountryCode{}
	}
	return CountryCode{value: i.value[:2]}
}

// BBAN returns everything after the check digits.
func (i IBAN) BBAN() string {
	if len(i.value) < 4 {
		return ""
	}
	return i.value[4:]
}

// IsZero returns true if the IBAN is empty.
func (i IBAN) IsZero() bool {
	return i.value == ""
}

// Equal returns true if two IBANs are equal.
func (i IBAN) Equal(other IBAN) bool {
	return i.value == other.value
}
