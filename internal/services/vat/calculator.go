package vat

import (
	"math"

	"vatcalc/internal/models"
)

const (
	MinPercentFee = 0.0
	MaxPercentFee = 100.0
)

// Result is the fee/VAT breakdown of a single calculation.
type Result struct {
	Country     models.CountryConfig `json:"country"`
	Amount      float64              `json:"amount"`
	PercentFee  float64              `json:"percent_fee"` // after clamping
	FlatFee     float64              `json:"flat_fee"`
	VariableFee float64              `json:"variable_fee"`
	TotalFee    float64              `json:"total_fee"`
	VATBase     float64              `json:"vat_base"`
	VATAmount   float64              `json:"vat_amount"`
	NetReceipt  float64              `json:"net_receipt"`
}

// ShowVAT reports whether the VAT line is part of the breakdown.
func (r Result) ShowVAT() bool {
	return r.Country.Rate > 0
}

// ClampPercent limits a percent fee to [0,100]. NaN is treated as 0.
func ClampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return MinPercentFee
	case p < MinPercentFee:
		return MinPercentFee
	case p > MaxPercentFee:
		return MaxPercentFee
	}
	return p
}

// Compute deducts the flat fee, the percent fee and the VAT on the fee from
// amount. It performs no validation and never fails; negative inputs flow
// through the arithmetic unchanged. No rounding is applied.
func Compute(cfg models.CountryConfig, amount, flatFee, percentFee float64) Result {
	p := ClampPercent(percentFee)

	variableFee := amount * (p / 100)
	totalFee := flatFee + variableFee
	vatBase := totalFee * cfg.Base

	var vatAmount float64
	if cfg.Rate != 0 {
		vatAmount = vatBase * cfg.Rate
	}

	return Result{
		Country:     cfg,
		Amount:      amount,
		PercentFee:  p,
		FlatFee:     flatFee,
		VariableFee: variableFee,
		TotalFee:    totalFee,
		VATBase:     vatBase,
		VATAmount:   vatAmount,
		NetReceipt:  amount - totalFee - vatAmount,
	}
}
