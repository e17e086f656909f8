package iban

import (
	"fmt"
	"strings"
)

// ComposeIBAN builds an IBAN from a country code and a BBAN using Default.
func ComposeIBAN(countryCode, bban string) (string, bool) {
	return Default.ComposeIBAN(countryCode, bban)
}

// ComposeIBAN prefixes bban with the country code and freshly computed check
// digits. The BBAN is brought to electronic format first and must have the
// country's length and format; otherwise no IBAN is produced.
//
// The national checksum is not verified here. A BBAN with a wrong national
// check digit yields an IBAN that Validate rejects.
func (r *Registry) ComposeIBAN(countryCode, bban string) (string, bool) {
	cc := strings.ToUpper(countryCode)
	b := ElectronicFormat(bban)
	if cc == "" || b == "" {
		return "", false
	}
	spec, ok := r.Lookup(cc)
	if !ok || !spec.HasIBAN() {
		return "", false
	}
	if spec.Chars != len(b)+4 || !spec.MatchBBAN(b) {
		return "", false
	}
	rem, err := ibanRemainder(cc, b)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s%02d%s", cc, 98-rem, b), true
}
