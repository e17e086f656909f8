package valueobject

import "github.com/bibbank/ibankit/pkg/iban"

// Rules is the part of the country registry the value objects validate
// against. *iban.Registry implements it.
type Rules interface {
	Validate(s string, opts ...iban.ValidateOption) iban.ValidationResult
	ValidateBIC(s string) iban.BICValidationResult
	ExtractBIC(s string) iban.BIC
}
