package models

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCountry       = errors.New("unknown country")
	ErrInvalidCountryConfig = errors.New("invalid country config")
)

// Registry is the fixed set of supported countries. It is never mutated after
// construction, so it can be shared freely between goroutines.
type Registry struct {
	order   []CountryCode
	configs map[CountryCode]CountryConfig
}

// DefaultRegistry returns the built-in country table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinCountries)
	if err != nil {
		panic(err) // the built-in table is covered by tests
	}
	return r
}

// NewRegistry validates configs and builds a registry keeping their order.
func NewRegistry(configs []CountryConfig) (*Registry, error) {
	r := &Registry{
		order:   make([]CountryCode, 0, len(configs)),
		configs: make(map[CountryCode]CountryConfig, len(configs)),
	}
	for _, cfg := range configs {
		cfg.Code = NormalizeCode(string(cfg.Code))
		if err := ValidateCountry(cfg); err != nil {
			return nil, err
		}
		if _, dup := r.configs[cfg.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidCountryConfig, cfg.Code)
		}
		r.order = append(r.order, cfg.Code)
		r.configs[cfg.Code] = cfg
	}
	return r, nil
}

// NormalizeCode upper-cases and trims a country code.
func NormalizeCode(code string) CountryCode {
	return CountryCode(strings.ToUpper(strings.TrimSpace(code)))
}

// Lookup resolves a country code, ignoring case and surrounding spaces.
func (r *Registry) Lookup(code string) (CountryConfig, error) {
	cfg, ok := r.configs[NormalizeCode(code)]
	if !ok {
		return CountryConfig{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	return cfg, nil
}

// Codes returns the supported codes in display order.
func (r *Registry) Codes() []CountryCode {
	out := make([]CountryCode, len(r.order))
	copy(out, r.order)
	return out
}

// All returns a copy of every config in display order.
func (r *Registry) All() []CountryConfig {
	out := make([]CountryConfig, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.configs[code])
	}
	return out
}

// Len returns the number of supported countries.
func (r *Registry) Len() int {
	return len(r.order)
}

// ValidateCountry checks the invariants rate ∈ [0,1) and base ∈ (0,1].
func ValidateCountry(cfg CountryConfig) error {
	invalid := func(field, msg string) error {
		return fmt.Errorf("%w: %s.%s %s", ErrInvalidCountryConfig, cfg.Code, field, msg)
	}

	switch {
	case len(cfg.Code) != 2:
		return invalid("code", "must be a two letter code")
	case math.IsNaN(cfg.Rate) || cfg.Rate < 0 || cfg.Rate >= 1:
		return invalid("rate", "must be in [0,1)")
	case math.IsNaN(cfg.Base) || cfg.Base <= 0 || cfg.Base > 1:
		return invalid("base", "must be in (0,1]")
	case strings.TrimSpace(cfg.Symbol) == "":
		return invalid("symbol", "must not be empty")
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return invalid("locale", fmt.Sprintf("%q is not a valid locale", cfg.Locale))
	}
	return nil
}

// countryOverride is one entry in a countries file. Nil fields keep the
// built-in value.
type countryOverride struct {
	Code           string   `yaml:"code"`
	Name           *string  `yaml:"name"`
	Rate           *float64 `yaml:"rate"`
	Base           *float64 `yaml:"base"`
	Symbol         *string  `yaml:"symbol"`
	Locale         *string  `yaml:"locale"`
	Flag           *string  `yaml:"flag"`
	DefaultAmount  *float64 `yaml:"default_amount"`
	DefaultFlatFee *float64 `yaml:"default_flat_fee"`
}

type countriesFile struct {
	Countries []countryOverride `yaml:"countries"`
}

// LoadRegistry overlays the YAML file at path onto the built-in table. Entries
// with a known code patch that country, unknown codes are appended. An empty
// path returns the built-in registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read countries file: %w", err)
	}
	var file countriesFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse countries file: %w", err)
	}

	configs := make([]CountryConfig, len(builtinCountries))
	copy(configs, builtinCountries)
	index := make(map[CountryCode]int, len(configs))
	for i, cfg := range configs {
		index[cfg.Code] = i
	}

	for _, o := range file.Countries {
		code := NormalizeCode(o.Code)
		i, ok := index[code]
		if !ok {
			configs = append(configs, CountryConfig{Code: code, Base: 1})
			i = len(configs) - 1
			index[code] = i
		}
		configs[i] = mergeCountry(configs[i], o)
	}

	return NewRegistry(configs)
}

func mergeCountry(cfg CountryConfig, o countryOverride) CountryConfig {
	if o.Name != nil {
		cfg.Name = *o.Name
	}
	if o.Rate != nil {
		cfg.Rate = *o.Rate
	}
	if o.Base != nil {
		cfg.Base = *o.Base
	}
	if o.Symbol != nil {
		cfg.Symbol = *o.Symbol
	}
	if o.Locale != nil {
		cfg.Locale = *o.Locale
	}
	if o.Flag != nil {
		cfg.Flag = *o.Flag
	}
	if o.DefaultAmount != nil {
		cfg.DefaultAmount = *o.DefaultAmount
	}
	if o.DefaultFlatFee != nil {
		cfg.DefaultFlatFee = *o.DefaultFlatFee
	}
	return cfg
}
