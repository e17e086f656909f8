// Package iban validates, decomposes and composes International Bank Account
// Numbers (ISO 13616), their national BBAN part and Bank Identifier Codes
// (ISO 9362).
//
// Every check is a pure function of its input and of the country registry.
// Rejection is reported as data: a boolean, or a ValidationResult carrying an
// ordered list of Reason codes. Functions in this package never return an error
// for malformed user input.
//
// The package-level functions operate on Default. Services that need isolated
// country tables (tests, tenants with overrides) build their own Registry with
// NewRegistry and call the methods on it.
package iban
