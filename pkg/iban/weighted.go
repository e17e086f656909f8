package iban

// Weight vectors of the national BBAN checksums.
var (
	weightsNorway       = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
	weightsPoland       = []int{3, 9, 7, 1, 3, 9, 7}
	weightsSpainBank    = []int{4, 8, 5, 10, 9, 7, 3, 6}
	weightsSpainAccount = []int{1, 2, 4, 8, 5, 10, 9, 7, 3, 6}
	weightsCzechPrefix  = []int{10, 5, 8, 4, 2, 1}
	weightsCzechSuffix  = []int{6, 3, 7, 9, 10, 5, 8, 4, 2, 1}
	weightsEstonia      = []int{7, 1, 3, 7, 1, 3, 7, 1, 3, 7, 1, 3, 7}
	weightsHungary      = []int{9, 7, 3, 1, 9, 7, 3, 1, 9, 7, 3, 1, 9, 7, 3}
)

// digitAt returns the numeric value of s[i], or false when i is out of range
// or s[i] is not an ASCII digit.
func digitAt(s string, i int) (int, bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	c := s[i]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// weightedSum multiplies s[from:to] positionally by weights, starting with
// weights[0]. The segment must not be longer than the weight vector.
func weightedSum(s string, from, to int, weights []int) (int, bool) {
	if from < 0 || to > len(s) || from > to || to-from > len(weights) {
		return 0, false
	}
	sum := 0
	for i := from; i < to; i++ {
		d, ok := digitAt(s, i)
		if !ok {
			return 0, false
		}
		sum += d * weights[i-from]
	}
	return sum, true
}

// mod10Complement is the check digit that brings a weighted sum to a multiple
// of ten.
func mod10Complement(sum int) int {
	r := sum % 10
	if r == 0 {
		return 0
	}
	return 10 - r
}

// mod11CheckDigit maps a mod 11 remainder to its check digit. Remainders 0 and
// 1 stand for themselves since 11 and 10 do not fit in one digit.
func mod11CheckDigit(remainder int) int {
	switch remainder {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return 11 - remainder
	}
}

// checkWeighted verifies that s[check] equals rule(sum of s[from:to] * weights).
func checkWeighted(s string, from, to int, weights []int, check int, rule func(int) int) bool {
	sum, ok := weightedSum(s, from, to, weights)
	if !ok {
		return false
	}
	want, ok := digitAt(s, check)
	if !ok {
		return false
	}
	return rule(sum) == want
}

// mod1110 is the ISO 7064 MOD 11,10 hybrid system. The running value starts
// at ten; each digit is added, the value is reduced modulo 10 (ten stays ten),
// doubled and reduced modulo 11.
func mod1110(s string, from, to, check int) bool {
	if from < 0 || to > len(s) || from > to {
		return false
	}
	nr := 10
	for i := from; i < to; i++ {
		d, ok := digitAt(s, i)
		if !ok {
			return false
		}
		nr += d
		if nr%10 != 0 {
			nr %= 10
		}
		nr = (nr * 2) % 11
	}
	want, ok := digitAt(s, check)
	if !ok {
		return false
	}
	expected := 11 - nr
	if expected == 10 {
		expected = 0
	}
	return expected == want
}
