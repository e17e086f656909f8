package iban

// IsValidBBAN reports whether bban is a well-formed BBAN of the country,
// including its national checksum.
func IsValidBBAN(bban, countryCode string) bool {
	return Default.ValidateBBAN(bban, countryCode).Valid
}

// ValidateBBAN checks a BBAN against Default.
func ValidateBBAN(bban, countryCode string) ValidationResult {
	return Default.ValidateBBAN(bban, countryCode)
}

// IsValidBBAN reports whether bban is a well-formed BBAN of the country.
func (r *Registry) IsValidBBAN(bban, countryCode string) bool {
	return r.ValidateBBAN(bban, countryCode).Valid
}

// ValidateBBAN checks length, format and national checksum of a BBAN. It
// uses the IBAN reasons; an empty bban or country code yields
// ReasonNoIBANProvided.
func (r *Registry) ValidateBBAN(bban, countryCode string) ValidationResult {
	res := newResult()
	if bban == "" || countryCode == "" {
		res.add(ReasonNoIBANProvided)
		return res
	}
	spec, ok := r.Lookup(countryCode)
	if !ok || !spec.HasIBAN() {
		res.add(ReasonNoIBANCountry)
		return res
	}
	if len(bban) != spec.Chars-4 {
		res.add(ReasonWrongBBANLength)
	}
	if !spec.MatchBBAN(bban) {
		res.add(ReasonWrongBBANFormat)
	}
	if spec.HasNationalCheck() && !spec.CheckBBAN(bban) {
		res.add(ReasonWrongAccountBankBranchChecksum)
	}
	return res
}
