package iban

import "strings"

var (
	normalizer  = strings.NewReplacer(" ", "", ".", "")
	electronics = strings.NewReplacer(" ", "", "-", "")
)

// Normalize removes spaces and periods and upper-cases the result. National
// checksums only ever see normalized input.
func Normalize(s string) string {
	return strings.ToUpper(normalizer.Replace(s))
}

// ElectronicFormat removes spaces and dashes and upper-cases the result,
// turning a printed IBAN or BIC into its transmission form.
func ElectronicFormat(s string) string {
	return strings.ToUpper(electronics.Replace(s))
}

// FriendlyFormat prints an IBAN in groups of four characters joined by sep.
// An empty sep means a single space.
func FriendlyFormat(s, sep string) string {
	if sep == "" {
		sep = " "
	}
	e := ElectronicFormat(s)
	if e == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(e) + len(e)/4*len(sep))
	for i := 0; i < len(e); i += 4 {
		if i > 0 {
			b.WriteString(sep)
		}
		end := i + 4
		if end > len(e) {
			end = len(e)
		}
		b.WriteString(e[i:end])
	}
	return b.String()
}

// GetCountryCode returns the two-letter prefix of an IBAN in electronic
// format. It reports false when the input is too short.
func GetCountryCode(s string) (string, bool) {
	e := ElectronicFormat(s)
	if len(e) < 2 {
		return "", false
	}
	return e[:2], true
}

// tail returns s[from:], or "" when s is shorter than from.
func tail(s string, from int) string {
	if len(s) <= from {
		return ""
	}
	return s[from:]
}

// head returns s[:n], or all of s when it is shorter.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
