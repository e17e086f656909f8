package iban

import (
	"regexp"
	"strings"
)

var bicRe = regexp.MustCompile(`^[a-zA-Z]{6}[a-zA-Z0-9]{2}([a-zA-Z0-9]{3})?$`)

// BICReason is a single cause of a BIC being rejected.
type BICReason int

// BIC rejection reasons. The numeric values are part of the public contract.
const (
	ReasonNoBICProvided BICReason = iota
	ReasonNoBICCountry
	ReasonWrongBICFormat
)

// String returns the reason's name.
func (r BICReason) String() string {
	switch r {
	case ReasonNoBICProvided:
		return "NoBICProvided"
	case ReasonNoBICCountry:
		return "NoBICCountry"
	case ReasonWrongBICFormat:
		return "WrongBICFormat"
	default:
		return "BICReason(?)"
	}
}

// BICValidationResult is the outcome of ValidateBIC.
type BICValidationResult struct {
	Valid   bool
	Reasons []BICReason
}

// Codes returns the reasons as plain integers.
func (v BICValidationResult) Codes() []int {
	codes := make([]int, len(v.Reasons))
	for i, r := range v.Reasons {
		codes[i] = int(r)
	}
	return codes
}

// BIC holds the parts of a Business Identifier Code.
type BIC struct {
	BankCode     string
	CountryCode  string
	LocationCode string
	// BranchCode is only present for 11-character BICs.
	BranchCode Field
	// TestBIC is set when the second location character is '0', which marks
	// a test and training address.
	TestBIC bool
	Valid   bool
}

// IsValidBIC reports whether s is a well-formed BIC of a known country,
// according to Default.
func IsValidBIC(s string) bool {
	return Default.ValidateBIC(s).Valid
}

// ValidateBIC checks a BIC against Default.
func ValidateBIC(s string) BICValidationResult {
	return Default.ValidateBIC(s)
}

// ExtractBIC splits a BIC using Default.
func ExtractBIC(s string) BIC {
	return Default.ExtractBIC(s)
}

// IsValidBIC reports whether s is a well-formed BIC of a known country.
func (r *Registry) IsValidBIC(s string) bool {
	return r.ValidateBIC(s).Valid
}

// ValidateBIC checks the country code in positions 5-6 first and the fixed
// BIC pattern second, so a string too short to hold a country reports
// ReasonNoBICCountry. BICs carry no check digits.
func (r *Registry) ValidateBIC(s string) BICValidationResult {
	res := BICValidationResult{Valid: true, Reasons: []BICReason{}}
	if s == "" {
		res.Reasons = append(res.Reasons, ReasonNoBICProvided)
	} else if _, ok := r.Lookup(head(tail(s, 4), 2)); !ok {
		res.Reasons = append(res.Reasons, ReasonNoBICCountry)
	} else if !bicRe.MatchString(s) {
		res.Reasons = append(res.Reasons, ReasonWrongBICFormat)
	}
	res.Valid = len(res.Reasons) == 0
	return res
}

// ExtractBIC upper-cases and splits a valid BIC. An invalid BIC yields Valid
// false and empty parts.
func (r *Registry) ExtractBIC(s string) BIC {
	if !r.IsValidBIC(s) {
		return BIC{}
	}
	u := strings.ToUpper(s)
	out := BIC{
		BankCode:     u[0:4],
		CountryCode:  u[4:6],
		LocationCode: u[6:8],
		Valid:        true,
	}
	out.TestBIC = out.LocationCode[1] == '0'
	if len(u) > 8 {
		out.BranchCode = Field{Value: u[8:], Present: true}
	}
	return out
}
