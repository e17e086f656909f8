package usecase

import (
	"errors"

	"github.com/bibbank/ibankit/pkg/iban"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
)

var (
	// ErrInvalidDocument wraps every failure to read a payment message.
	ErrInvalidDocument = errors.New("invalid payment message")
	// ErrCountryNotFound is returned when a requested country is unknown.
	ErrCountryNotFound = errors.New("country not found")
)

// unknownCountry labels outcomes whose input carries no known country, which
// keeps the recorder's label set bounded.
const unknownCountry = "unknown"

func ibanReasons(reasons []iban.Reason) ([]dto.ReasonDTO, []string) {
	out := make([]dto.ReasonDTO, len(reasons))
	names := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = dto.ReasonDTO{Code: int(r), Name: r.String()}
		names[i] = r.String()
	}
	return out, names
}

func bicReasons(reasons []iban.BICReason) ([]dto.ReasonDTO, []string) {
	out := make([]dto.ReasonDTO, len(reasons))
	names := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = dto.ReasonDTO{Code: int(r), Name: r.String()}
		names[i] = r.String()
	}
	return out, names
}

func qrOption(serviceDefault bool, override *bool) iban.ValidateOption {
	if override != nil {
		return iban.WithAllowQRIBAN(*override)
	}
	return iban.WithAllowQRIBAN(serviceDefault)
}

func countryLabel(catalog port.CountryCatalog, code string) string {
	if len(code) < 2 {
		return unknownCountry
	}
	if spec, ok := catalog.Lookup(code[:2]); ok && spec.HasIBAN() {
		return code[:2]
	}
	return unknownCountry
}

func fieldPtr(f iban.Field) *string {
	if !f.Present {
		return nil
	}
	v := f.Value
	return &v
}

// cleanBBAN strips the separators people type into national account numbers.
func cleanBBAN(s string) string {
	return iban.Normalize(iban.ElectronicFormat(s))
}
