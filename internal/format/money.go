// Package format renders calculation results for display: two fractional
// digits, rounded half away from zero, with the separators of the country's
// locale.
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vatcalc/internal/models"
	"vatcalc/internal/services/vat"
)

// Round2 rounds v to two fractional digits. NaN and infinities are returned
// as is.
func Round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Number formats v with two fractional digits for locale. Unknown locales fall
// back to English separators.
func Number(locale string, v float64) string {
	if !finite(v) {
		return nonFinite(v)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%.2f", Round2(v))
}

// Money prefixes the localized number with the currency symbol.
func Money(cfg models.CountryConfig, v float64) string {
	return cfg.Symbol + " " + Number(cfg.Locale, v)
}

// Percent renders a fraction or percentage without float noise, e.g. 0.07*100 as "7".
func Percent(v float64) string {
	if !finite(v) {
		return nonFinite(v)
	}
	return decimal.NewFromFloat(v).Round(2).String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return "NaN"
}

// Line is one row of the breakdown.
type Line struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Breakdown lists the rows shown to the user. VAT rows are left out when the
// country charges no VAT, and the tax base row only appears when VAT is levied
// on part of the fee.
func Breakdown(res vat.Result) []Line {
	cfg := res.Country
	line := func(key, label string, v float64) Line {
		return Line{Key: key, Label: label, Value: Round2(v), Display: Money(cfg, v)}
	}

	lines := []Line{
		line("flat_fee", "Flat fee", res.FlatFee),
		line("variable_fee", fmt.Sprintf("Variable fee (%s%%)", Percent(res.PercentFee)), res.VariableFee),
		line("total_fee", "Total fee", res.TotalFee),
	}

	if res.ShowVAT() {
		rate := Percent(decimal.NewFromFloat(cfg.Rate).Mul(decimal.NewFromInt(100)).InexactFloat64())
		label := fmt.Sprintf("VAT @%s%%", rate)
		if cfg.Base < 1 {
			base := Percent(decimal.NewFromFloat(cfg.Base).Mul(decimal.NewFromInt(100)).InexactFloat64())
			lines = append(lines, line("vat_base", fmt.Sprintf("VAT tax base (%s%% of total fee)", base), res.VATBase))
			label += " (of tax base)"
		}
		lines = append(lines, line("vat", label, res.VATAmount))
	}

	return append(lines, line("net_receipt", "You receive", res.NetReceipt))
}
