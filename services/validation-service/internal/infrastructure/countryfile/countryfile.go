// Package countryfile loads start-up overrides of the country registry from
// YAML.
//
//	countries:
//	  XK:
//	    chars: 20
//	    bban_regex: "^[0-9]{16}$"
//	    algorithm: mod97_10
//	    bank: 0-3
//	    account: 8-19
//	    iban_registry: true
//
// Keys left out keep the value the registry already holds for the country.
package countryfile

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bibbank/ibankit/pkg/iban"
)

// Registry is what overrides are applied to. *iban.Registry implements it.
type Registry interface {
	Lookup(countryCode string) (iban.CountrySpec, bool)
	Register(countryCode string, spec iban.CountrySpec) error
}

// File is the decoded override document.
type File struct {
	Countries map[string]Override `yaml:"countries"`
}

// Override holds the fields to change for one country. Nil fields are left
// untouched; an empty range string clears the range.
type Override struct {
	Chars        *int    `yaml:"chars"`
	BBANRegex    *string `yaml:"bban_regex"`
	Algorithm    *string `yaml:"algorithm"`
	Bank         *string `yaml:"bank"`
	Branch       *string `yaml:"branch"`
	Account      *string `yaml:"account"`
	IBANRegistry *bool   `yaml:"iban_registry"`
	SEPA         *bool   `yaml:"sepa"`
}

// Load reads and decodes path. Unknown keys are rejected so typos do not
// silently leave a country unchanged.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read country file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an override document.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode country file: %w", err)
	}
	return f, nil
}

// Apply merges every override into the registry in country-code order and
// returns how many countries changed. It stops at the first invalid entry;
// entries before it stay applied.
func Apply(reg Registry, f File, logger *slog.Logger) (int, error) {
	codes := make([]string, 0, len(f.Countries))
	for cc := range f.Countries {
		codes = append(codes, cc)
	}
	sort.Strings(codes)

	for i, cc := range codes {
		base, _ := reg.Lookup(cc)
		spec, err := f.Countries[cc].merge(base)
		if err != nil {
			return i, fmt.Errorf("country %s: %w", strings.ToUpper(cc), err)
		}
		if err := reg.Register(cc, spec); err != nil {
			return i, err
		}
		logger.Info("applied country override", "country", strings.ToUpper(cc), "chars", spec.Chars, "algorithm", spec.Algorithm.String())
	}
	return len(codes), nil
}

func (o Override) merge(spec iban.CountrySpec) (iban.CountrySpec, error) {
	if o.Chars != nil {
		spec.Chars = *o.Chars
	}
	if o.BBANRegex != nil {
		re, err := regexp.Compile(*o.BBANRegex)
		if err != nil {
			return iban.CountrySpec{}, fmt.Errorf("bban_regex: %w", err)
		}
		spec.BBANPattern = re
	}
	if o.Algorithm != nil {
		alg, err := iban.ParseAlgorithm(*o.Algorithm)
		if err != nil {
			return iban.CountrySpec{}, err
		}
		spec.Algorithm = alg
	}
	for _, r := range []struct {
		name string
		src  *string
		dst  *iban.Range
	}{
		{"bank", o.Bank, &spec.Bank},
		{"branch", o.Branch, &spec.Branch},
		{"account", o.Account, &spec.Account},
	} {
		if r.src == nil {
			continue
		}
		parsed, err := parseRange(*r.src)
		if err != nil {
			return iban.CountrySpec{}, fmt.Errorf("%s: %w", r.name, err)
		}
		*r.dst = parsed
	}
	if o.IBANRegistry != nil {
		spec.IBANRegistry = *o.IBANRegistry
	}
	if o.SEPA != nil {
		spec.SEPA = *o.SEPA
	}
	return spec, nil
}

// parseRange reads "start-end". An empty string is the undefined range.
func parseRange(s string) (iban.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return iban.Range{}, nil
	}
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return iban.Range{}, fmt.Errorf("range %q: expected start-end", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return iban.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return iban.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if start < 0 || end < start {
		return iban.Range{}, fmt.Errorf("range %q: start must be non-negative and not after end", s)
	}
	return iban.Span(start, end), nil
}
