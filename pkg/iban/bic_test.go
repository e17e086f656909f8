package iban

import (
	"reflect"
	"testing"
)

func TestIsValidBIC(t *testing.T) {
	tests := []struct {
		bic  string
		want bool
	}{
		{"ABNANL2A", true},
		{"ABNANL2A000", true},
		{"ABNANL2AXXX", true},
		{"NOLADE21KIE", true},
		{"INGDDEFFXXX", true},
		{"ABNANL2A01F", true},
		{"abnanl2a", true},
		{"ABNAAA2AXXX", false},
		{"INGDEFFXXX", false},
		{"ABN4NL2A", false},
		{"ABNAXX2A", false},
		{"ABNANL2A0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidBIC(tt.bic); got != tt.want {
			t.Errorf("IsValidBIC(%q) = %v, want %v", tt.bic, got, tt.want)
		}
	}
}

func TestValidateBIC_Reasons(t *testing.T) {
	tests := []struct {
		bic  string
		want []BICReason
	}{
		{"", []BICReason{ReasonNoBICProvided}},
		{"ABN4NL2A", []BICReason{ReasonWrongBICFormat}},
		{"ABNAXX2A", []BICReason{ReasonNoBICCountry}},
		{"ABC", []BICReason{ReasonNoBICCountry}},
		{"AB1DZZ12", []BICReason{ReasonNoBICCountry}},
		{"AB1DNL12", []BICReason{ReasonWrongBICFormat}},
		{"NEDSZAJJXXX", []BICReason{}},
	}
	for _, tt := range tests {
		got := ValidateBIC(tt.bic)
		if !reflect.DeepEqual(got.Reasons, tt.want) {
			t.Errorf("ValidateBIC(%q) = %v, want %v", tt.bic, got.Reasons, tt.want)
		}
		if got.Valid != (len(tt.want) == 0) {
			t.Errorf("ValidateBIC(%q).Valid = %v", tt.bic, got.Valid)
		}
	}
	if codes := ValidateBIC("ABNAXX2A").Codes(); !reflect.DeepEqual(codes, []int{1}) {
		t.Errorf("Codes() = %v", codes)
	}
}

func TestExtractBIC(t *testing.T) {
	got := ExtractBIC("ABNANL2A")
	want := BIC{BankCode: "ABNA", CountryCode: "NL", LocationCode: "2A", Valid: true}
	if got != want {
		t.Errorf("ExtractBIC(ABNANL2A) = %+v, want %+v", got, want)
	}

	lower := ExtractBIC("dnbanokk")
	if !lower.Valid || lower.CountryCode != "NO" || lower.BankCode != "DNBA" {
		t.Errorf("ExtractBIC(dnbanokk) = %+v", lower)
	}

	test := ExtractBIC("NEDSZAJ0XXX")
	if !test.TestBIC {
		t.Error("NEDSZAJ0XXX is a test BIC")
	}
	if test.BranchCode != (Field{Value: "XXX", Present: true}) {
		t.Errorf("BranchCode = %+v", test.BranchCode)
	}

	if bad := ExtractBIC("ABN4NL2A"); bad.Valid || bad.BankCode != "" {
		t.Errorf("ExtractBIC(ABN4NL2A) = %+v, want zero value", bad)
	}
}
