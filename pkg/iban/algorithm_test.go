package iban

import (
	"strings"
	"testing"
)

// bumpDigit returns s with the digit at i increased by one, modulo 10.
func bumpDigit(s string, i int) string {
	d := (s[i]-'0'+1)%10 + '0'
	return s[:i] + string(d) + s[i+1:]
}

func span(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

var algorithmVectors = []struct {
	name      string
	algorithm AlgorithmID
	bban      string
	protected []int
}{
	{"norway", AlgorithmNorway, "12043175449", span(0, 11)},
	{"poland", AlgorithmPoland, "105000997603123456789123", span(0, 8)},
	{"spain", AlgorithmSpain, "21000418450200051332", span(0, 20)},
	{"croatia", AlgorithmCroatia, "10010051863000160", span(0, 17)},
	{"czech", AlgorithmCzechSlovak, "08000000192000145399", span(4, 20)},
	// Remainders 1 and 10 share check digit 1, so a change at position 18
	// of this account goes unnoticed.
	{"slovakia", AlgorithmCzechSlovak, "12000000198742637541", append(span(4, 18), 19)},
	{"estonia", AlgorithmEstonia, "3300338400100007", span(2, 16)},
	{"hungary short form", AlgorithmHungary, "117730161111101800000000", span(0, 16)},
	{"hungary long form", AlgorithmHungary, "100320000122013950000249", span(0, 24)},
	{"belgium", AlgorithmBelgium, "539007547034", span(0, 12)},
	{"mod97 slovenia", AlgorithmMod9710, "263300012039086", span(0, 15)},
	{"mod97 portugal", AlgorithmMod9710, "002600000524218600185", span(0, 21)},
	{"france", AlgorithmFrance, "30002005500000157841Z25", append(span(0, 20), 21, 22)},
}

func TestAlgorithms_AcceptKnownGood(t *testing.T) {
	for _, v := range algorithmVectors {
		t.Run(v.name, func(t *testing.T) {
			if !v.algorithm.Check(v.bban) {
				t.Errorf("%s.Check(%q) = false, want true", v.algorithm, v.bban)
			}
		})
	}
}

func TestAlgorithms_SingleDigitSensitivity(t *testing.T) {
	for _, v := range algorithmVectors {
		t.Run(v.name, func(t *testing.T) {
			for _, i := range v.protected {
				mutated := bumpDigit(v.bban, i)
				if v.algorithm.Check(mutated) {
					t.Errorf("%s.Check(%q) = true after changing position %d", v.algorithm, mutated, i)
				}
			}
		})
	}
}

func TestAlgorithms_NeverPanicOnShortOrForeignInput(t *testing.T) {
	inputs := []string{"", "1", "12", "ABCDEFGHIJKLMNOPQRSTUVWX", "12345678901234567890123-", "BARC102"}
	for id := range algorithms {
		for _, in := range inputs {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s.Check(%q) panicked: %v", id, in, r)
					}
				}()
				if id.Check(in) && in != "" {
					t.Errorf("%s.Check(%q) = true, want false", id, in)
				}
			}()
		}
	}
}

func TestMod9710BBAN_NeedsTwoDigits(t *testing.T) {
	tests := []struct {
		bban string
		want bool
	}{
		{"", false},
		{"1", false},
		{"01", true},
		{"99", false},
		{"260005601001611379", true},
	}
	for _, tt := range tests {
		if got := AlgorithmMod9710.Check(tt.bban); got != tt.want {
			t.Errorf("%s.Check(%q) = %v, want %v", AlgorithmMod9710, tt.bban, got, tt.want)
		}
	}
}

func TestNorway(t *testing.T) {
	if !checkNorwegianBBAN("12043175449") {
		t.Error("12043175449 should pass")
	}
	if checkNorwegianBBAN("12043175441") {
		t.Error("12043175441 should fail on its check digit")
	}
}

func TestHungary_TrailingZeroBoundary(t *testing.T) {
	tests := []struct {
		name string
		bban string
		want bool
	}{
		{"eight zeros, short form", "117730161111101800000000", true},
		{"eight zeros, another account", "117730161234567600000000", true},
		{"seven zeros, long form", "117730161000000090000000", true},
		// The short-form digit at position 15 is right, but with only seven
		// trailing zeros the 15-digit segment is checked against position 23.
		{"seven zeros, short digit only", "117730161234567610000000", false},
		{"long form", "100320000122013950000249", true},
		{"bad bank check", "117730171111101800000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkHungarianBBAN(tt.bban); got != tt.want {
				t.Errorf("checkHungarianBBAN(%q) = %v, want %v", tt.bban, got, tt.want)
			}
		})
	}
}

func TestBelgium_ZeroRemainderIs97(t *testing.T) {
	// 0000000097 mod 97 is zero, which the scheme writes as 97.
	if !checkBelgianBBAN("000000009797") {
		t.Error("000000009797 should pass")
	}
	if checkBelgianBBAN("000000009700") {
		t.Error("000000009700 should fail")
	}
}

func TestMod1110(t *testing.T) {
	if !mod1110("1001005", 0, 6, 6) {
		t.Error("bank code 100100 should carry check digit 5")
	}
	for d := 0; d <= 9; d++ {
		s := "100100" + string(rune('0'+d))
		if d != 5 && mod1110(s, 0, 6, 6) {
			t.Errorf("mod1110(%q) accepted a wrong check digit", s)
		}
	}
}

func TestMod11CheckDigit(t *testing.T) {
	tests := map[int]int{0: 0, 1: 1, 2: 9, 5: 6, 10: 1}
	for in, want := range tests {
		if got := mod11CheckDigit(in); got != want {
			t.Errorf("mod11CheckDigit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestAlgorithmID_StringAndParse(t *testing.T) {
	for id := range algorithmNames {
		parsed, err := ParseAlgorithm(strings.ToUpper(id.String()))
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q) unexpected error: %v", id.String(), err)
		}
		if parsed != id {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", id.String(), parsed, id)
		}
	}
	if id, err := ParseAlgorithm(""); err != nil || id != AlgorithmNone {
		t.Errorf("ParseAlgorithm(\"\") = %v, %v; want none, nil", id, err)
	}
	if _, err := ParseAlgorithm("luhn"); err == nil {
		t.Error("ParseAlgorithm(\"luhn\") expected error, got nil")
	}
	if got := AlgorithmID(99).String(); got != "AlgorithmID(99)" {
		t.Errorf("AlgorithmID(99).String() = %q", got)
	}
}

func TestAlgorithmCheck_Normalizes(t *testing.T) {
	if !AlgorithmNorway.Check("1204 3175.449") {
		t.Error("separators should be removed before the Norwegian check")
	}
	if !AlgorithmFrance.Check("30002005500000157841z25") {
		t.Error("lower-case letters should be upper-cased before the French check")
	}
}
