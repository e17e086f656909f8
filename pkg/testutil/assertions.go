package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/ibankit/pkg/iban"
)

// AssertErrorContains checks that err is non-nil and mentions expected.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), expected)
	}
}

// RequireValidIBAN fails the test immediately unless reg accepts s.
func RequireValidIBAN(t *testing.T, reg *iban.Registry, s string, opts ...iban.ValidateOption) {
	t.Helper()
	res := reg.Validate(s, opts...)
	require.Truef(t, res.Valid, "IBAN %s rejected with %v", s, res.Reasons)
}

// AssertReasons checks that res carries exactly want, in emission order.
// With no want it checks that res is valid.
func AssertReasons(t *testing.T, res iban.ValidationResult, want ...iban.Reason) bool {
	t.Helper()
	if len(want) == 0 {
		return assert.True(t, res.Valid) && assert.Empty(t, res.Reasons)
	}
	return assert.False(t, res.Valid) && assert.Equal(t, want, res.Reasons)
}
