package iban

import (
	"regexp"
	"strings"
)

var (
	checkDigitsRe = regexp.MustCompile(`^[0-9]{2}$`)
	qrIIDRe       = regexp.MustCompile(`^3[0-1][0-9]{3}$`)
)

// qrCountries issue QR-IBANs, recognisable by a QR-IID (30000-31999) in
// place of the institution identifier.
var qrCountries = map[string]bool{"CH": true, "LI": true}

type validateOptions struct {
	allowQRIBAN bool
}

// ValidateOption customizes Validate and IsValid.
type ValidateOption func(*validateOptions)

// WithAllowQRIBAN controls whether QR-IBANs are accepted. They are by
// default.
func WithAllowQRIBAN(allow bool) ValidateOption {
	return func(o *validateOptions) {
		o.allowQRIBAN = allow
	}
}

func buildOptions(opts []ValidateOption) validateOptions {
	o := validateOptions{allowQRIBAN: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate checks an IBAN in electronic format against Default.
func Validate(s string, opts ...ValidateOption) ValidationResult {
	return Default.Validate(s, opts...)
}

// IsValid reports whether Validate finds no problem.
func IsValid(s string, opts ...ValidateOption) bool {
	return Default.Validate(s, opts...).Valid
}

// IsValid reports whether Validate finds no problem.
func (r *Registry) IsValid(s string, opts ...ValidateOption) bool {
	return r.Validate(s, opts...).Valid
}

// Validate checks an IBAN in electronic format and reports every problem it
// finds. An unknown country stops the checks; all other checks always run,
// so a malformed IBAN usually carries several reasons.
//
// The input is not normalized: a lower-case country code is unknown. Pass
// ElectronicFormat(s) for lenient matching.
//
// A BBAN format failure always adds ReasonWrongIBANChecksum as well, since
// check digits computed over malformed data are meaningless.
func (r *Registry) Validate(s string, opts ...ValidateOption) ValidationResult {
	o := buildOptions(opts)
	res := newResult()
	if s == "" {
		res.add(ReasonNoIBANProvided)
		return res
	}

	spec, ok := r.lookupExact(head(s, 2))
	if !ok || !spec.HasIBAN() {
		res.add(ReasonNoIBANCountry)
		return res
	}

	bban := tail(s, 4)
	if len(s) != spec.Chars {
		res.add(ReasonWrongBBANLength)
	}
	if !spec.MatchBBAN(bban) {
		res.add(ReasonWrongBBANFormat)
	}
	if spec.HasNationalCheck() && !spec.CheckBBAN(bban) {
		res.add(ReasonWrongAccountBankBranchChecksum)
	}
	if !checkDigitsRe.MatchString(checkDigits(s)) {
		res.add(ReasonChecksumNotNumber)
	}
	if res.Has(ReasonWrongBBANFormat) || !ValidChecksum(s) {
		res.add(ReasonWrongIBANChecksum)
	}
	if !o.allowQRIBAN && IsQRIBAN(s) {
		res.add(ReasonQRIBANNotAllowed)
	}
	return res
}

// ValidChecksum verifies the two IBAN check digits with MOD 97-10. It does
// not look at the country registry.
func ValidChecksum(s string) bool {
	if len(s) < 5 {
		return false
	}
	provided, err := parseDigits(checkDigits(s))
	if err != nil {
		return false
	}
	rem, err := ibanRemainder(s[:2], s[4:])
	if err != nil {
		return false
	}
	return 98-rem == provided
}

// ibanRemainder moves the country code and zeroed check digits behind the
// BBAN, encodes letters and reduces the result modulo 97.
func ibanRemainder(countryCode, bban string) (int, error) {
	rearranged := strings.ToUpper(bban + countryCode + "00")
	return Mod9710(ISOEncode(rearranged))
}

func checkDigits(s string) string {
	if len(s) < 4 {
		return tail(s, 2)
	}
	return s[2:4]
}

// IsQRIBAN reports whether s is a Swiss or Liechtenstein QR-IBAN.
func IsQRIBAN(s string) bool {
	if len(s) < 9 {
		return false
	}
	if !qrCountries[strings.ToUpper(s[:2])] {
		return false
	}
	return qrIIDRe.MatchString(s[4:9])
}
