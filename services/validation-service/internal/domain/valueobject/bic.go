package valueobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bibbank/ibankit/pkg/iban"
)

// ErrInvalidBIC is wrapped by every NewBIC failure.
var ErrInvalidBIC = errors.New("invalid BIC")

// BIC is an immutable, validated Business Identifier Code in upper case.
type BIC struct {
	parts iban.BIC
	value string
}

// NewBIC validates s and splits it into its parts.
func NewBIC(rules Rules, s string) (BIC, error) {
	value := strings.ToUpper(strings.TrimSpace(s))
	result := rules.ValidateBIC(value)
	if !result.Valid {
		return BIC{}, fmt.Errorf("%w %q: %v", ErrInvalidBIC, value, result.Reasons)
	}
	return BIC{parts: rules.ExtractBIC(value), value: value}, nil
}

// String returns the BIC as given, upper-cased.
func (b BIC) String() string {
	return b.value
}

// BankCode returns the four-letter institution code.
func (b BIC) BankCode() string {
	return b.parts.BankCode
}

// CountryCode returns the country of the institution.
func (b BIC) CountryCode() CountryCode {
	return CountryCode{value: b.parts.CountryCode}
}

// Branch returns the branch code and whether the BIC carries one.
func (b BIC) Branch() (string, bool) {
	return b.parts.BranchCode.Value, b.parts.BranchCode.Present
}

// IsTest reports whether the BIC is a test and training address.
func (b BIC) IsTest() bool {
	return b.parts.TestBIC
}
