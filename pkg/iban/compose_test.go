package iban

import "testing"

func TestComposeIBAN(t *testing.T) {
	tests := []struct {
		name    string
		country string
		bban    string
		want    string
		ok      bool
	}{
		{"dutch", "NL", "ABNA0417164300", "NL91ABNA0417164300", true},
		{"lower-case country", "nl", "ABNA0417164300", "NL91ABNA0417164300", true},
		{"printed bban", "NL", "abna 0417-1643 00", "NL91ABNA0417164300", true},
		{"leading zero check digits", "HU", "117730161000000090000000", "HU11117730161000000090000000", true},
		{"wrong length", "NL", "ABNA041716430", "", false},
		{"wrong characters", "NL", "1234ABNA041716", "", false},
		{"unknown country", "QQ", "ABNA0417164300", "", false},
		{"country without IBAN", "US", "ABNA0417164300", "", false},
		{"empty bban", "NL", "", "", false},
		{"empty country", "", "ABNA0417164300", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComposeIBAN(tt.country, tt.bban)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ComposeIBAN(%q, %q) = %q, %v; want %q, %v", tt.country, tt.bban, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestComposeIBAN_RoundTrip(t *testing.T) {
	for _, s := range validIBANs {
		ex := ExtractIBAN(s)
		if !ex.Valid {
			t.Errorf("ExtractIBAN(%q) not valid", s)
			continue
		}
		got, ok := ComposeIBAN(ex.CountryCode.Value, ex.BBAN.Value)
		if !ok {
			t.Errorf("ComposeIBAN(%q, %q) failed", ex.CountryCode.Value, ex.BBAN.Value)
			continue
		}
		if got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}
}
