package valueobject

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// ErrInvalidCountryCode is returned for anything other than two letters.
var ErrInvalidCountryCode = errors.New("invalid country code")

// CountryCode is an ISO 3166-1 alpha-2 code in upper case. It is not checked
// against the registry, so unknown but well-formed codes are accepted.
type CountryCode struct {
	value string
}

// NewCountryCode trims and upper-cases s.
func NewCountryCode(s string) (CountryCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !countryCodeRegex.MatchString(s) {
		return CountryCode{}, fmt.Errorf("%w %q: expected two letters", ErrInvalidCountryCode, s)
	}
	return CountryCode{value: s}, nil
}

func (c CountryCode) String() string {
	return c.value
}

// IsZero returns true if the country code is empty.
func (c CountryCode) IsZero() bool {
	return c.value == ""
}
