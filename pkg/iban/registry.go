package iban

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// Range is an inclusive [Start, End] offset pair. The zero Range is
// undefined; build defined ranges with Span.
type Range struct {
	Start   int
	End     int
	defined bool
}

// Span returns the defined range [start, end].
func Span(start, end int) Range {
	return Range{Start: start, End: end, defined: true}
}

// Defined reports whether the range was set.
func (r Range) Defined() bool {
	return r.defined
}

// Slice returns s[Start:End+1]. It reports false when the range is undefined
// or does not fit in s.
func (r Range) Slice(s string) (string, bool) {
	if !r.defined || r.Start < 0 || r.End < r.Start || r.End >= len(s) {
		return "", false
	}
	return s[r.Start : r.End+1], true
}

// Shift moves a defined range by delta positions.
func (r Range) Shift(delta int) Range {
	if !r.defined {
		return r
	}
	return Span(r.Start+delta, r.End+delta)
}

// String renders the range as "start-end", or "" when undefined.
func (r Range) String() string {
	if !r.defined {
		return ""
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// CountrySpec describes the IBAN format of one country.
type CountrySpec struct {
	// Chars is the total IBAN length. Zero means the country issues no IBAN.
	Chars int
	// BBANPattern is the anchored format of the BBAN part.
	BBANPattern *regexp.Regexp
	// Algorithm is the built-in national checksum, if any.
	Algorithm AlgorithmID
	// Custom replaces Algorithm when set.
	Custom BBANValidator
	// Bank and Branch index the BBAN. Account indexes the full IBAN.
	Bank    Range
	Branch  Range
	Account Range
	// IBANRegistry is true for countries listed in the SWIFT IBAN registry.
	IBANRegistry bool
	// SEPA is true for members of the Single Euro Payments Area.
	SEPA bool
}

// HasIBAN reports whether the spec carries both a length and a BBAN format.
func (s CountrySpec) HasIBAN() bool {
	return s.Chars > 0 && s.BBANPattern != nil
}

// HasNationalCheck reports whether a national BBAN checksum applies.
func (s CountrySpec) HasNationalCheck() bool {
	return s.Custom != nil || s.Algorithm != AlgorithmNone
}

// CheckBBAN runs the national checksum. It returns true when there is none.
func (s CountrySpec) CheckBBAN(bban string) bool {
	if s.Custom != nil {
		return s.Custom(Normalize(bban))
	}
	return s.Algorithm.Check(bban)
}

// MatchBBAN reports whether bban matches the country's BBAN format.
func (s CountrySpec) MatchBBAN(bban string) bool {
	return s.BBANPattern != nil && s.BBANPattern.MatchString(bban)
}

// SpecView is the read-only, serializable form of a CountrySpec. Absent
// values are nil.
type SpecView struct {
	Chars        *int    `json:"chars"`
	BBANRegex    *string `json:"bban_regexp"`
	IBANRegistry bool    `json:"IBANRegistry"`
	SEPA         bool    `json:"SEPA"`
}

// countryEntry is the compact literal form used by the built-in table.
type countryEntry struct {
	chars     int
	bban      string
	algorithm AlgorithmID
	bank      Range
	branch    Range
	account   Range
	registry  bool
	sepa      bool
}

// Registry maps country codes to CountrySpecs. It is safe for concurrent use.
// Mutations replace whole specs, so a reader never sees a partially updated
// one.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]CountrySpec
}

// NewRegistry returns a registry loaded with the built-in country table and
// an empty spec for every other ISO 3166-1 code.
func NewRegistry() *Registry {
	compiled := make(map[string]*regexp.Regexp)
	specs := make(map[string]CountrySpec, len(countryNames))
	for cc := range countryNames {
		specs[cc] = CountrySpec{}
	}
	for cc, e := range builtinSpecs {
		re, ok := compiled[e.bban]
		if !ok {
			re = regexp.MustCompile(e.bban)
			compiled[e.bban] = re
		}
		specs[cc] = CountrySpec{
			Chars:        e.chars,
			BBANPattern:  re,
			Algorithm:    e.algorithm,
			Bank:         e.bank,
			Branch:       e.branch,
			Account:      e.account,
			IBANRegistry: e.registry,
			SEPA:         e.sepa,
		}
	}
	return &Registry{specs: specs}
}

// Lookup returns the spec for a country code. The code is matched
// case-insensitively.
func (r *Registry) Lookup(countryCode string) (CountrySpec, bool) {
	return r.lookupExact(strings.ToUpper(countryCode))
}

// lookupExact matches the code as given. Registry keys are upper case.
func (r *Registry) lookupExact(countryCode string) (CountrySpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[countryCode]
	return spec, ok
}

// Register adds a country or replaces its spec.
func (r *Registry) Register(countryCode string, spec CountrySpec) error {
	cc := strings.ToUpper(countryCode)
	if !countryCodeRe.MatchString(cc) {
		return fmt.Errorf("invalid country code %q: must be exactly 2 letters", countryCode)
	}
	if err := validateSpec(spec); err != nil {
		return fmt.Errorf("country %s: %w", cc, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[cc] = spec
	return nil
}

// SetBBANValidation attaches a custom national checksum to a known country.
// Passing nil restores the built-in algorithm. It returns false, and changes
// nothing, for unknown countries.
func (r *Registry) SetBBANValidation(countryCode string, fn BBANValidator) bool {
	cc := strings.ToUpper(countryCode)

	r.mu.Lock()
	defer r.mu.Unlock()
	spec, ok := r.specs[cc]
	if !ok {
		return false
	}
	spec.Custom = fn
	r.specs[cc] = spec
	return true
}

// IsSEPACountry reports whether the country is a SEPA member.
func (r *Registry) IsSEPACountry(countryCode string) bool {
	spec, ok := r.Lookup(countryCode)
	return ok && spec.SEPA
}

// Countries returns every known country code in sorted order.
func (r *Registry) Countries() []string {
	r.mu.RLock()
	codes := make([]string, 0, len(r.specs))
	for cc := range r.specs {
		codes = append(codes, cc)
	}
	r.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

// Specifications returns a snapshot of every spec in serializable form.
func (r *Registry) Specifications() map[string]SpecView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]SpecView, len(r.specs))
	for cc, spec := range r.specs {
		out[cc] = spec.View()
	}
	return out
}

// View converts the spec to its serializable form.
func (s CountrySpec) View() SpecView {
	v := SpecView{IBANRegistry: s.IBANRegistry, SEPA: s.SEPA}
	if s.Chars > 0 {
		chars := s.Chars
		v.Chars = &chars
	}
	if s.BBANPattern != nil {
		pattern := s.BBANPattern.String()
		v.BBANRegex = &pattern
	}
	return v
}

// minBBANLength is the shortest BBAN each built-in algorithm can read.
var minBBANLength = map[AlgorithmID]int{
	AlgorithmNorway:      11,
	AlgorithmPoland:      8,
	AlgorithmSpain:       20,
	AlgorithmCroatia:     17,
	AlgorithmCzechSlovak: 20,
	AlgorithmEstonia:     16,
	AlgorithmBelgium:     3,
	AlgorithmMod9710:     2,
	AlgorithmHungary:     16,
	AlgorithmFrance:      2,
}

func validateSpec(spec CountrySpec) error {
	if spec.Chars < 0 {
		return fmt.Errorf("negative length %d", spec.Chars)
	}
	if spec.Chars > 0 && spec.Chars < 5 {
		return fmt.Errorf("length %d leaves no room for a BBAN", spec.Chars)
	}
	if spec.Algorithm == AlgorithmNone {
		return nil
	}
	minLen, ok := minBBANLength[spec.Algorithm]
	if !ok {
		return fmt.Errorf("unknown checksum algorithm %d", int(spec.Algorithm))
	}
	if spec.Chars > 0 && spec.Chars-4 < minLen {
		return fmt.Errorf("algorithm %s needs a BBAN of at least %d characters, spec allows %d",
			spec.Algorithm, minLen, spec.Chars-4)
	}
	return nil
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// Register adds or replaces a country in Default.
func Register(countryCode string, spec CountrySpec) error {
	return Default.Register(countryCode, spec)
}

// SetBBANValidation attaches a custom national checksum in Default.
func SetBBANValidation(countryCode string, fn BBANValidator) bool {
	return Default.SetBBANValidation(countryCode, fn)
}

// LookupCountry returns the spec for a country code from Default.
func LookupCountry(countryCode string) (CountrySpec, bool) {
	return Default.Lookup(countryCode)
}

// Specifications returns a snapshot of Default.
func Specifications() map[string]SpecView {
	return Default.Specifications()
}

// IsSEPACountry reports SEPA membership according to Default.
func IsSEPACountry(countryCode string) bool {
	return Default.IsSEPACountry(countryCode)
}

// CountryName returns the English short name of an ISO 3166-1 alpha-2 code.
func CountryName(countryCode string) (string, bool) {
	name, ok := countryNames[strings.ToUpper(countryCode)]
	return name, ok
}
