package iban

import "strconv"

// Reason is a single cause of an IBAN or BBAN being rejected. Values are
// stable and safe to expose as integer error codes.
type Reason int

// Rejection reasons. The numeric values are part of the public contract.
const (
	ReasonNoIBANProvided Reason = iota
	ReasonNoIBANCountry
	ReasonWrongBBANLength
	ReasonWrongBBANFormat
	ReasonChecksumNotNumber
	ReasonWrongIBANChecksum
	ReasonWrongAccountBankBranchChecksum
	ReasonQRIBANNotAllowed
)

var reasonNames = [...]string{
	ReasonNoIBANProvided:                 "NoIBANProvided",
	ReasonNoIBANCountry:                  "NoIBANCountry",
	ReasonWrongBBANLength:                "WrongBBANLength",
	ReasonWrongBBANFormat:                "WrongBBANFormat",
	ReasonChecksumNotNumber:              "ChecksumNotNumber",
	ReasonWrongIBANChecksum:              "WrongIBANChecksum",
	ReasonWrongAccountBankBranchChecksum: "WrongAccountBankBranchChecksum",
	ReasonQRIBANNotAllowed:               "QRIBANNotAllowed",
}

// String returns the reason's name.
func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "Reason(" + strconv.Itoa(int(r)) + ")"
}

// ValidationResult is the outcome of Validate or ValidateBBAN. Reasons keeps
// the order in which the checks ran and never holds duplicates.
type ValidationResult struct {
	Valid   bool
	Reasons []Reason
}

// Has reports whether r is among the result's reasons.
func (v ValidationResult) Has(r Reason) bool {
	for _, got := range v.Reasons {
		if got == r {
			return true
		}
	}
	return false
}

// Codes returns the reasons as plain integers.
func (v ValidationResult) Codes() []int {
	codes := make([]int, len(v.Reasons))
	for i, r := range v.Reasons {
		codes[i] = int(r)
	}
	return codes
}

func (v *ValidationResult) add(r Reason) {
	if v.Has(r) {
		return
	}
	v.Reasons = append(v.Reasons, r)
	v.Valid = false
}

func newResult() ValidationResult {
	return ValidationResult{Valid: true, Reasons: []Reason{}}
}
