package iban

import (
	"errors"
	"math/big"
	"testing"
)

// ---------------------------------------------------------------------------
// Mod9710
// ---------------------------------------------------------------------------

func TestMod9710_MatchesBigInt(t *testing.T) {
	inputs := []string{
		"0",
		"7",
		"96",
		"97",
		"98",
		"123456",
		"1234567",
		"3704004405320130001314",
		"101112131415161718192021222324252627282930",
		"999999999999999999999999999999999999",
		"000000000000000000000000000000000001",
		"0417164300102100",
		"2304100101234567890123456789012345678901234567890",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Mod9710(in)
			if err != nil {
				t.Fatalf("Mod9710(%q) unexpected error: %v", in, err)
			}
			n, ok := new(big.Int).SetString(in, 10)
			if !ok {
				t.Fatalf("big.Int could not parse %q", in)
			}
			want := new(big.Int).Mod(n, big.NewInt(97)).Int64()
			if int64(got) != want {
				t.Errorf("Mod9710(%q) = %d, want %d", in, got, want)
			}
		})
	}
}

func TestMod9710_NativePrecisionAgrees(t *testing.T) {
	for _, v := range []uint64{0, 1, 96, 97, 12345678901234567, 18446744073709551615} {
		s := new(big.Int).SetUint64(v).String()
		got, err := Mod9710(s)
		if err != nil {
			t.Fatalf("Mod9710(%q) unexpected error: %v", s, err)
		}
		if uint64(got) != v%97 {
			t.Errorf("Mod9710(%q) = %d, want %d", s, got, v%97)
		}
	}
}

func TestMod9710_NotNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"letter in first chunk", "12A456789"},
		{"letter in later chunk", "1234567890B"},
		{"sign", "-12345"},
		{"short letters", "AB"},
		{"space", "12 34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mod9710(tt.in)
			if !errors.Is(err, ErrNotNumeric) {
				t.Errorf("Mod9710(%q) error = %v, want ErrNotNumeric", tt.in, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Letter encodings
// ---------------------------------------------------------------------------

func TestISOEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"0123", "0123"},
		{"A", "10"},
		{"Z", "35"},
		{"ABNA", "10112310"},
		{"ABNA0417164300NL00", "101123100417164300232100"},
	}
	for _, tt := range tests {
		if got := ISOEncode(tt.in); got != tt.want {
			t.Errorf("ISOEncode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeypadEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"AJ", "11"},
		{"BKS", "222"},
		{"CLT", "333"},
		{"DMU", "444"},
		{"ENV", "555"},
		{"FOW", "666"},
		{"GPX", "777"},
		{"HQY", "888"},
		{"IRZ", "999"},
		{"0000157841Z25", "0000157841925"},
		{"12-3", "12-3"},
	}
	for _, tt := range tests {
		if got := KeypadEncode(tt.in); got != tt.want {
			t.Errorf("KeypadEncode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodingsDiffer(t *testing.T) {
	if ISOEncode("Z") == KeypadEncode("Z") {
		t.Fatal("ISO and keypad encodings must not agree on Z")
	}
}
