package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestClientID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestTenantID = uuid.MustParse("00000000-0000-0000-0000-000000000010")
)

// Known-good account identifiers shared across service tests.
const (
	ValidGermanIBAN  = "DE89370400440532013000"
	ValidBritishIBAN = "GB29NWBK60161331926819"
	ValidFrenchIBAN  = "FR1420041010050500013M02606"
	ValidNorwayIBAN  = "NO9386011117947"
	ValidSwissQRIBAN = "CH4431999123000889012"
	GermanBBAN       = "370400440532013000"
	ValidBIC         = "DEUTDEFF500"
	ValidTestBIC     = "NEDSZAJ0XXX"
)

// Known-bad identifiers, one per rejection path.
const (
	BadChecksumIBAN = "DE89370400440532013001"
	UnknownIBAN     = "XX89370400440532013000"
	ShortIBAN       = "DE8937040044053201300"
	BadBIC          = "DEU1DEFF"
)
