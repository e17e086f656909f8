package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibbank/ibankit/pkg/iban"
)

func TestAssertErrorContains(t *testing.T) {
	AssertErrorContains(t, errors.New("bban length mismatch"), "length")
}

func TestValidFixtures(t *testing.T) {
	reg := iban.NewRegistry()
	for _, s := range []string{ValidGermanIBAN, ValidBritishIBAN, ValidFrenchIBAN, ValidNorwayIBAN, ValidSwissQRIBAN} {
		RequireValidIBAN(t, reg, s)
	}
	assert.True(t, iban.IsQRIBAN(ValidSwissQRIBAN))
	assert.True(t, reg.IsValidBBAN(GermanBBAN, "DE"))
	assert.True(t, reg.IsValidBIC(ValidBIC))
	assert.True(t, reg.ExtractBIC(ValidTestBIC).TestBIC)
}

func TestInvalidFixtures(t *testing.T) {
	reg := iban.NewRegistry()
	AssertReasons(t, reg.Validate(BadChecksumIBAN), iban.ReasonWrongIBANChecksum)
	AssertReasons(t, reg.Validate(UnknownIBAN), iban.ReasonNoIBANCountry)
	AssertReasons(t, reg.Validate(ShortIBAN),
		iban.ReasonWrongBBANLength, iban.ReasonWrongBBANFormat, iban.ReasonWrongIBANChecksum)
	AssertReasons(t, reg.Validate(ValidSwissQRIBAN, iban.WithAllowQRIBAN(false)), iban.ReasonQRIBANNotAllowed)
	assert.False(t, reg.IsValidBIC(BadBIC))
	assert.NotEqual(t, TestClientID, TestTenantID)
}
