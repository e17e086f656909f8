package iban

import (
	"fmt"
	"strconv"
	"strings"
)

// BBANValidator reports whether a normalized BBAN passes a national checksum.
// Implementations must return false, not panic, on input of unexpected length
// or content.
type BBANValidator func(bban string) bool

// AlgorithmID names one of the built-in national BBAN checksums.
type AlgorithmID int

// Built-in checksum algorithms. AlgorithmNone means the country defines no
// national check beyond the IBAN check digits.
const (
	AlgorithmNone AlgorithmID = iota
	AlgorithmNorway
	AlgorithmPoland
	AlgorithmSpain
	AlgorithmCroatia
	AlgorithmCzechSlovak
	AlgorithmEstonia
	AlgorithmBelgium
	AlgorithmMod9710
	AlgorithmHungary
	AlgorithmFrance
)

var algorithmNames = map[AlgorithmID]string{
	AlgorithmNone:        "none",
	AlgorithmNorway:      "norway",
	AlgorithmPoland:      "poland",
	AlgorithmSpain:       "spain",
	AlgorithmCroatia:     "croatia",
	AlgorithmCzechSlovak: "czech_slovak",
	AlgorithmEstonia:     "estonia",
	AlgorithmBelgium:     "belgium",
	AlgorithmMod9710:     "mod97_10",
	AlgorithmHungary:     "hungary",
	AlgorithmFrance:      "france",
}

// algorithms is the dispatch table from AlgorithmID to implementation.
var algorithms = map[AlgorithmID]BBANValidator{
	AlgorithmNorway:      checkNorwegianBBAN,
	AlgorithmPoland:      checkPolishBBAN,
	AlgorithmSpain:       checkSpanishBBAN,
	AlgorithmCroatia:     checkCroatianBBAN,
	AlgorithmCzechSlovak: checkCzechAndSlovakBBAN,
	AlgorithmEstonia:     checkEstonianBBAN,
	AlgorithmBelgium:     checkBelgianBBAN,
	AlgorithmMod9710:     checkMod9710BBAN,
	AlgorithmHungary:     checkHungarianBBAN,
	AlgorithmFrance:      checkFrenchBBAN,
}

// String returns the stable lower-case name of the algorithm.
func (a AlgorithmID) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "AlgorithmID(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm returns the AlgorithmID for a name produced by String. The
// empty string parses as AlgorithmNone.
func ParseAlgorithm(name string) (AlgorithmID, error) {
	if name == "" {
		return AlgorithmNone, nil
	}
	for id, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return id, nil
		}
	}
	return AlgorithmNone, fmt.Errorf("unknown checksum algorithm %q", name)
}

// Validator returns the implementation of a, or nil for AlgorithmNone and
// unknown values.
func (a AlgorithmID) Validator() BBANValidator {
	return algorithms[a]
}

// Check runs the algorithm on bban after normalization. AlgorithmNone accepts
// every input.
func (a AlgorithmID) Check(bban string) bool {
	if a == AlgorithmNone {
		return true
	}
	fn, ok := algorithms[a]
	if !ok {
		return false
	}
	return fn(Normalize(bban))
}

// checkNorwegianBBAN: mod 11 over the first ten digits, check digit last.
func checkNorwegianBBAN(bban string) bool {
	return checkWeighted(bban, 0, 10, weightsNorway, 10, func(sum int) int {
		r := sum % 11
		if r == 0 {
			return 0
		}
		return 11 - r
	})
}

// checkPolishBBAN verifies the check digit of the 8-digit bank sort code.
func checkPolishBBAN(bban string) bool {
	return checkWeighted(bban, 0, 7, weightsPoland, 7, mod10Complement)
}

// checkSpanishBBAN verifies both "dígitos de control": position 8 covers bank
// and branch, position 9 covers the account number.
func checkSpanishBBAN(bban string) bool {
	rule := func(sum int) int { return mod11CheckDigit(sum % 11) }
	if !checkWeighted(bban, 0, 8, weightsSpainBank, 8, rule) {
		return false
	}
	return checkWeighted(bban, 10, 20, weightsSpainAccount, 9, rule)
}

// checkCroatianBBAN applies MOD 11,10 separately to the bank code and the
// account number.
func checkCroatianBBAN(bban string) bool {
	return mod1110(bban, 0, 6, 6) && mod1110(bban, 7, 16, 16)
}

// checkCzechAndSlovakBBAN verifies the account prefix and the account number,
// both mod 11.
func checkCzechAndSlovakBBAN(bban string) bool {
	rule := func(sum int) int { return mod11CheckDigit(sum % 11) }
	if !checkWeighted(bban, 4, 9, weightsCzechPrefix, 9, rule) {
		return false
	}
	return checkWeighted(bban, 10, 19, weightsCzechSuffix, 19, rule)
}

// checkEstonianBBAN uses the 7-3-1 method over the account number.
func checkEstonianBBAN(bban string) bool {
	return checkWeighted(bban, 2, 15, weightsEstonia, 15, mod10Complement)
}

// checkHungarianBBAN verifies the bank/branch code first. Accounts come in a
// 16-digit form padded with eight zeros and a 24-digit form; the padding
// decides which segment carries the second check digit.
func checkHungarianBBAN(bban string) bool {
	if !checkWeighted(bban, 0, 7, weightsHungary, 7, mod10Complement) {
		return false
	}
	if strings.HasSuffix(bban, "00000000") {
		return checkWeighted(bban, 8, 15, weightsHungary, 15, mod10Complement)
	}
	return checkWeighted(bban, 8, 23, weightsHungary, 23, mod10Complement)
}

// checkBelgianBBAN: the leading ten digits modulo 97 equal the last two, with
// 97 standing in for a zero remainder.
func checkBelgianBBAN(bban string) bool {
	if len(bban) < 3 {
		return false
	}
	rem, err := Mod9710(bban[:len(bban)-2])
	if err != nil {
		return false
	}
	if rem == 0 {
		rem = 97
	}
	want, err := parseDigits(bban[len(bban)-2:])
	if err != nil {
		return false
	}
	return rem == want
}

// checkMod9710BBAN accepts a BBAN whose trailing two digits make the whole
// number congruent to 1 modulo 97. It needs at least those two digits.
func checkMod9710BBAN(bban string) bool {
	if len(bban) < 2 {
		return false
	}
	rem, err := Mod9710(bban)
	if err != nil {
		return false
	}
	return rem == 1
}

// checkFrenchBBAN validates the RIB key: with letters mapped through the
// keypad table the BBAN must be divisible by 97.
func checkFrenchBBAN(bban string) bool {
	rem, err := Mod9710(KeypadEncode(bban))
	if err != nil {
		return false
	}
	return rem == 0
}
