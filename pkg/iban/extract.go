package iban

// Field is an optional extracted value. Present is false when the country
// defines no range for the field or the input was invalid.
type Field struct {
	Value   string
	Present bool
}

func fieldFrom(r Range, s string) Field {
	v, ok := r.Slice(s)
	return Field{Value: v, Present: ok}
}

// Extraction holds the parts of an IBAN.
type Extraction struct {
	// IBAN is the input in electronic format.
	IBAN             string
	BBAN             Field
	CountryCode      Field
	BankIdentifier   Field
	BranchIdentifier Field
	AccountNumber    Field
	Valid            bool
}

// ExtractIBAN splits an IBAN into its parts using Default.
func ExtractIBAN(s string, opts ...ValidateOption) Extraction {
	return Default.ExtractIBAN(s, opts...)
}

// ExtractIBAN brings s to electronic format, validates it and, when valid,
// slices out the country code, BBAN and the bank, branch and account
// identifiers the country defines. An invalid IBAN yields Valid false and no
// fields.
func (r *Registry) ExtractIBAN(s string, opts ...ValidateOption) Extraction {
	e := ElectronicFormat(s)
	out := Extraction{IBAN: e}
	if e == "" {
		out.IBAN = s
		return out
	}
	if !r.Validate(e, opts...).Valid {
		return out
	}
	spec, _ := r.Lookup(e[:2])
	bban := e[4:]

	out.Valid = true
	out.CountryCode = Field{Value: e[:2], Present: true}
	out.BBAN = Field{Value: bban, Present: true}
	out.BankIdentifier = fieldFrom(spec.Bank, bban)
	out.BranchIdentifier = fieldFrom(spec.Branch, bban)
	out.AccountNumber = fieldFrom(spec.Account, e)
	return out
}

// BBANExtraction holds the parts of a BBAN.
type BBANExtraction struct {
	BBAN             string
	CountryCode      string
	BankIdentifier   Field
	BranchIdentifier Field
	AccountNumber    Field
	Valid            bool
}

// ExtractBBAN splits a BBAN into its parts using Default.
func ExtractBBAN(bban, countryCode string) BBANExtraction {
	return Default.ExtractBBAN(bban, countryCode)
}

// ExtractBBAN validates a BBAN in electronic format and slices out the
// identifiers the country defines. The account range, which the registry
// expresses in IBAN positions, is moved back by the four IBAN prefix
// characters.
func (r *Registry) ExtractBBAN(bban, countryCode string) BBANExtraction {
	b := ElectronicFormat(bban)
	out := BBANExtraction{BBAN: b, CountryCode: countryCode}
	if !r.ValidateBBAN(b, countryCode).Valid {
		return out
	}
	spec, _ := r.Lookup(countryCode)

	out.Valid = true
	out.BankIdentifier = fieldFrom(spec.Bank, b)
	out.BranchIdentifier = fieldFrom(spec.Branch, b)
	out.AccountNumber = fieldFrom(spec.Account.Shift(-4), b)
	return out
}
