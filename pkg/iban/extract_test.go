package iban

import "testing"

func present(v string) Field { return Field{Value: v, Present: true} }

func TestExtractIBAN(t *testing.T) {
	tests := []struct {
		iban    string
		country string
		bban    string
		bank    Field
		branch  Field
		account Field
	}{
		{
			"FR3330002005500000157841Z25", "FR", "30002005500000157841Z25",
			present("30002"), present("00550"), present("0000157841Z"),
		},
		{
			"BR9700360305000010009795493P1", "BR", "00360305000010009795493P1",
			present("00360305"), present("00001"), present("0009795493P1"),
		},
		{
			"SI56263300012039086", "SI", "263300012039086",
			present("26"), present("330"), present("00120390"),
		},
		{
			"ES6000491500051234567892", "ES", "00491500051234567892",
			present("0049"), present("1500"), present("1234567892"),
		},
		{
			"NL91ABNA0417164300", "NL", "ABNA0417164300",
			present("ABNA"), Field{}, present("0417164300"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.iban, func(t *testing.T) {
			got := ExtractIBAN(tt.iban)
			if !got.Valid {
				t.Fatalf("ExtractIBAN(%q) not valid", tt.iban)
			}
			if got.IBAN != tt.iban {
				t.Errorf("IBAN = %q, want %q", got.IBAN, tt.iban)
			}
			if got.CountryCode != present(tt.country) {
				t.Errorf("CountryCode = %+v, want %q", got.CountryCode, tt.country)
			}
			if got.BBAN != present(tt.bban) {
				t.Errorf("BBAN = %+v, want %q", got.BBAN, tt.bban)
			}
			if got.BankIdentifier != tt.bank {
				t.Errorf("BankIdentifier = %+v, want %+v", got.BankIdentifier, tt.bank)
			}
			if got.BranchIdentifier != tt.branch {
				t.Errorf("BranchIdentifier = %+v, want %+v", got.BranchIdentifier, tt.branch)
			}
			if got.AccountNumber != tt.account {
				t.Errorf("AccountNumber = %+v, want %+v", got.AccountNumber, tt.account)
			}
		})
	}
}

func TestExtractIBAN_Separators(t *testing.T) {
	for _, s := range []string{"NL91-ABNA-0417-1643-00", "NL91 ABNA 0417 1643 00", "nl91abna0417164300"} {
		got := ExtractIBAN(s)
		if !got.Valid {
			t.Errorf("ExtractIBAN(%q) not valid", s)
		}
		if got.IBAN != "NL91ABNA0417164300" {
			t.Errorf("ExtractIBAN(%q).IBAN = %q", s, got.IBAN)
		}
	}
}

func TestExtractIBAN_Invalid(t *testing.T) {
	for _, s := range []string{"", "BR970036030510009795493P1", "NL92ABNA0517164300"} {
		got := ExtractIBAN(s)
		if got.Valid {
			t.Errorf("ExtractIBAN(%q) valid, want invalid", s)
		}
		if got.BBAN.Present || got.CountryCode.Present || got.AccountNumber.Present {
			t.Errorf("ExtractIBAN(%q) returned fields for an invalid IBAN: %+v", s, got)
		}
	}
}

func TestExtractIBAN_QROption(t *testing.T) {
	if !ExtractIBAN("CH4431999123000889012").Valid {
		t.Error("QR-IBAN should be extracted by default")
	}
	if ExtractIBAN("CH4431999123000889012", WithAllowQRIBAN(false)).Valid {
		t.Error("QR-IBAN should be rejected when not allowed")
	}
}

func TestExtractBBAN(t *testing.T) {
	got := ExtractBBAN("00491500051234567892", "ES")
	if !got.Valid {
		t.Fatal("ExtractBBAN for ES not valid")
	}
	if got.BankIdentifier != present("0049") || got.BranchIdentifier != present("1500") || got.AccountNumber != present("1234567892") {
		t.Errorf("ExtractBBAN(ES) = %+v", got)
	}

	nl := ExtractBBAN("ABNA 0417 1643 00", "NL")
	if !nl.Valid || nl.BBAN != "ABNA0417164300" {
		t.Fatalf("ExtractBBAN(NL) = %+v", nl)
	}
	if nl.BranchIdentifier.Present {
		t.Error("NL defines no branch identifier")
	}
	if nl.AccountNumber != present("0417164300") {
		t.Errorf("AccountNumber = %+v", nl.AccountNumber)
	}

	if ExtractBBAN("12043175441", "NO").Valid {
		t.Error("ExtractBBAN should reject a failing national checksum")
	}
}

func TestRange(t *testing.T) {
	var zero Range
	if zero.Defined() {
		t.Error("zero Range must be undefined")
	}
	if _, ok := zero.Slice("abc"); ok {
		t.Error("undefined Range must not slice")
	}
	r := Span(1, 3)
	if v, ok := r.Slice("abcdef"); !ok || v != "bcd" {
		t.Errorf("Slice = %q, %v", v, ok)
	}
	if _, ok := r.Slice("abc"); ok {
		t.Error("Slice past the end must fail")
	}
	if r.String() != "1-3" || zero.String() != "" {
		t.Errorf("String() = %q / %q", r.String(), zero.String())
	}
	if s := r.Shift(-1); s != Span(0, 2) {
		t.Errorf("Shift(-1) = %+v", s)
	}
}
