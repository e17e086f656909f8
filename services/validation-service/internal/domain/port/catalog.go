package port

import (
	"context"

	"github.com/bibbank/ibankit/pkg/iban"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/valueobject"
)

// CountryCatalog is the read side of the country registry. The service never
// changes the registry after start-up, so no write methods are exposed.
type CountryCatalog interface {
	valueobject.Rules

	// ValidateBBAN checks a national account number for the given country.
	ValidateBBAN(bban, countryCode string) iban.ValidationResult

	// ComposeIBAN builds an IBAN from a country code and a BBAN.
	ComposeIBAN(countryCode, bban string) (string, bool)

	// ExtractIBAN splits an IBAN into its national fields.
	ExtractIBAN(s string, opts ...iban.ValidateOption) iban.Extraction

	// ExtractBBAN splits a BBAN into its national fields.
	ExtractBBAN(bban, countryCode string) iban.BBANExtraction

	// Lookup returns the spec for a country code.
	Lookup(countryCode string) (iban.CountrySpec, bool)

	// Countries returns every known country code in sorted order.
	Countries() []string
}

// Operation names used when recording outcomes.
const (
	OpValidateIBAN  = "validate_iban"
	OpValidateBBAN  = "validate_bban"
	OpComposeIBAN   = "compose_iban"
	OpExtractIBAN   = "extract_iban"
	OpValidateBIC   = "validate_bic"
	OpScreenPayment = "screen_payment"
)

// ValidationRecorder receives the outcome of every check the service runs.
type ValidationRecorder interface {
	// RecordValidation is called once per checked identifier. reasons holds
	// the rejection names and is empty when valid is true.
	RecordValidation(ctx context.Context, operation, country string, valid bool, reasons []string)
}
