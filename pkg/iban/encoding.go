package iban

import (
	"strconv"
	"strings"
)

// ISOEncode replaces every letter with its ISO 7064 value (A=10 ... Z=35),
// written out in decimal. Any other character is copied unchanged, so the
// caller is expected to pass an upper-case string.
func ISOEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= 'A' {
			b.WriteString(strconv.Itoa(int(r) - 55))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// keypad maps letters to the digit sharing their key on a telephone keypad
// variant used by French banks for RIB keys. S sits on 2, not on 7.
var keypad = map[rune]byte{
	'A': '1', 'J': '1',
	'B': '2', 'K': '2', 'S': '2',
	'C': '3', 'L': '3', 'T': '3',
	'D': '4', 'M': '4', 'U': '4',
	'E': '5', 'N': '5', 'V': '5',
	'F': '6', 'O': '6', 'W': '6',
	'G': '7', 'P': '7', 'X': '7',
	'H': '8', 'Q': '8', 'Y': '8',
	'I': '9', 'R': '9', 'Z': '9',
}

// KeypadEncode replaces each letter with a single digit from the French RIB
// table. It must not be used for IBAN check digits; see ISOEncode.
func KeypadEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := keypad[r]; ok {
			b.WriteByte(d)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
