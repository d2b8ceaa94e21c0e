package vat

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"vatcalc/internal/models"
)

const eps = 1e-9

var (
	indonesiaLike = models.CountryConfig{Code: "ID", Rate: 0.12, Base: 11.0 / 12.0, Symbol: "Rp", Locale: "id-ID"}
	zeroRate      = models.CountryConfig{Code: "MY", Rate: 0, Base: 1, Symbol: "RM", Locale: "ms-MY"}
	sevenPercent  = models.CountryConfig{Code: "TH", Rate: 0.07, Base: 1, Symbol: "฿", Locale: "th-TH"}
)

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name                              string
		cfg                               models.CountryConfig
		amount, flat, percent             float64
		variable, total, vatBase, vat, net float64
	}{
		{
			name: "indonesia tax base fraction", cfg: indonesiaLike,
			amount: 160000, flat: 1600, percent: 2,
			variable: 3200, total: 4800, vatBase: 4400, vat: 528, net: 154672,
		},
		{
			name: "zero rate", cfg: zeroRate,
			amount: 47, flat: 0.5, percent: 2,
			variable: 0.94, total: 1.44, vatBase: 1.44, vat: 0, net: 45.56,
		},
		{
			name: "full base", cfg: sevenPercent,
			amount: 370, flat: 4, percent: 2,
			variable: 7.4, total: 11.4, vatBase: 11.4, vat: 0.798, net: 357.802,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(tt.cfg, tt.amount, tt.flat, tt.percent)

			assert.Equal(t, tt.flat, res.FlatFee)
			assert.InDelta(t, tt.variable, res.VariableFee, eps)
			assert.InDelta(t, tt.total, res.TotalFee, eps)
			assert.InDelta(t, tt.vatBase, res.VATBase, eps)
			assert.InDelta(t, tt.vat, res.VATAmount, eps)
			assert.InDelta(t, tt.net, res.NetReceipt, eps)
			assert.Equal(t, tt.cfg, res.Country)
		})
	}
}

func TestCompute_ZeroRateNeverTaxes(t *testing.T) {
	for _, base := range []float64{0.25, 11.0 / 12.0, 1} {
		cfg := zeroRate
		cfg.Base = base
		for _, amount := range []float64{-500, 0, 13.5, 1e9} {
			res := Compute(cfg, amount, 3, 7.5)
			assert.Zero(t, res.VATAmount)
			assert.False(t, res.ShowVAT())
		}
	}
}

func TestCompute_Identities(t *testing.T) {
	inputs := []struct{ amount, flat, percent float64 }{
		{160000, 1600, 2},
		{0, 0, 0},
		{-250, 4, 3.5},
		{99.99, -1, 100},
		{1e12, 0.15, 0.01},
	}

	for _, cfg := range []models.CountryConfig{indonesiaLike, zeroRate, sevenPercent} {
		for _, in := range inputs {
			res := Compute(cfg, in.amount, in.flat, in.percent)

			assert.Equal(t, in.flat+in.amount*(in.percent/100), res.TotalFee)
			assert.Equal(t, in.amount-res.TotalFee-res.VATAmount, res.NetReceipt)
			assert.Equal(t, res.TotalFee*cfg.Base, res.VATBase)
		}
	}
}

func TestCompute_ClampsPercent(t *testing.T) {
	assert.Equal(t,
		Compute(sevenPercent, 370, 4, 100),
		Compute(sevenPercent, 370, 4, 150))
	assert.Equal(t,
		Compute(sevenPercent, 370, 4, 0),
		Compute(sevenPercent, 370, 4, -10))

	res := Compute(sevenPercent, 370, 4, 150)
	assert.Equal(t, 100.0, res.PercentFee)
	assert.Equal(t, 370.0, res.VariableFee)
}

func TestCompute_NegativeInputsPropagate(t *testing.T) {
	res := Compute(sevenPercent, -100, -2, 10)

	assert.InDelta(t, -10, res.VariableFee, eps)
	assert.InDelta(t, -12, res.TotalFee, eps)
	assert.InDelta(t, -0.84, res.VATAmount, eps)
	assert.InDelta(t, -100+12+0.84, res.NetReceipt, eps)
}

func TestCompute_Idempotent(t *testing.T) {
	first := Compute(indonesiaLike, 160000, 1600, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute(indonesiaLike, 160000, 1600, 2))
	}
}

func TestCompute_Concurrent(t *testing.T) {
	want := Compute(indonesiaLike, 160000, 1600, 2)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Compute(indonesiaLike, 160000, 1600, 2)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-10, 0},
		{0, 0},
		{2.5, 2.5},
		{100, 100},
		{150, 100},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPercent(tt.in), "ClampPercent(%v)", tt.in)
	}
}
