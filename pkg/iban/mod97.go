package iban

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotNumeric is returned by Mod9710 when its input contains anything other
// than ASCII digits. Letters must be encoded with ISOEncode or KeypadEncode
// first.
var ErrNotNumeric = errors.New("iban: input is not numeric")

const mod97ChunkSize = 6

// Mod9710 computes the ISO 7064 MOD 97-10 remainder of an arbitrarily long
// decimal digit string.
//
// The number is never materialized: the leading six digits are reduced modulo
// 97 and the remainder is put back in front of the rest until at most two
// digits are left.
func Mod9710(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("empty input: %w", ErrNotNumeric)
	}
	rest := digits
	for len(rest) > 2 {
		n := mod97ChunkSize
		if len(rest) < n {
			n = len(rest)
		}
		chunk := rest[:n]
		v, err := parseDigits(chunk)
		if err != nil {
			return 0, err
		}
		rest = strconv.Itoa(v%97) + rest[n:]
	}
	v, err := parseDigits(rest)
	if err != nil {
		return 0, err
	}
	return v % 97, nil
}

// parseDigits converts a short all-digit string to an int. strconv.Atoi is
// not used because it accepts a leading sign.
func parseDigits(s string) (int, error) {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("chunk %q: %w", s, ErrNotNumeric)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}
