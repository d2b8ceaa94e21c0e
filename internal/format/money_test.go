package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vatcalc/internal/models"
	"vatcalc/internal/services/vat"
)

func lookup(t *testing.T, code string) models.CountryConfig {
	t.Helper()
	cfg, err := models.DefaultRegistry().Lookup(code)
	require.NoError(t, err)
	return cfg
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.8, Round2(0.798))
	assert.Equal(t, 357.8, Round2(357.802))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 528.0, Round2(528.0000000000001))
}

func TestNonFinite(t *testing.T) {
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.Equal(t, "∞", Number("id-ID", math.Inf(1)))
	assert.Equal(t, "-∞", Number("en-SG", math.Inf(-1)))
	assert.Equal(t, "NaN", Percent(math.NaN()))
	assert.Equal(t, "฿ -∞", Money(lookup(t, "TH"), math.Inf(-1)))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1,234.50", Number("en-SG", 1234.5))
	assert.Equal(t, "154.672,00", Number("id-ID", 154672))
	assert.Equal(t, "0.80", Number("en-PH", 0.798))
	assert.Equal(t, "13.50", Number("not a locale", 13.5))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "Rp 154.672,00", Money(lookup(t, "ID"), 154672))
	assert.Equal(t, "$ 13.50", Money(lookup(t, "SG"), 13.5))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "2", Percent(2))
	assert.Equal(t, "2.5", Percent(2.5))
	assert.Equal(t, "91.67", Percent(100*11.0/12.0))
}

func keys(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Key)
	}
	return out
}

func TestBreakdown(t *testing.T) {
	t.Run("partial tax base", func(t *testing.T) {
		res := vat.Compute(lookup(t, "ID"), 160000, 1600, 2)
		lines := Breakdown(res)

		assert.Equal(t, []string{"flat_fee", "variable_fee", "total_fee", "vat_base", "vat", "net_receipt"}, keys(lines))
		assert.Equal(t, "Variable fee (2%)", lines[1].Label)
		assert.Equal(t, "VAT tax base (91.67% of total fee)", lines[3].Label)
		assert.Equal(t, 4400.0, lines[3].Value)
		assert.Equal(t, "VAT @12% (of tax base)", lines[4].Label)
		assert.Equal(t, 528.0, lines[4].Value)
		assert.Equal(t, "You receive", lines[5].Label)
		assert.Equal(t, "Rp 154.672,00", lines[5].Display)
	})

	t.Run("full base", func(t *testing.T) {
		res := vat.Compute(lookup(t, "TH"), 370, 4, 2)
		lines := Breakdown(res)

		assert.Equal(t, []string{"flat_fee", "variable_fee", "total_fee", "vat", "net_receipt"}, keys(lines))
		assert.Equal(t, "VAT @7%", lines[3].Label)
		assert.Equal(t, 0.8, lines[3].Value)
		assert.Equal(t, 357.8, lines[4].Value)
	})

	t.Run("no vat line at zero rate", func(t *testing.T) {
		res := vat.Compute(lookup(t, "MY"), 47, 0.5, 2)
		lines := Breakdown(res)

		assert.Equal(t, []string{"flat_fee", "variable_fee", "total_fee", "net_receipt"}, keys(lines))
		assert.Equal(t, 45.56, lines[3].Value)
	})

	t.Run("overflowed result", func(t *testing.T) {
		res := vat.Compute(lookup(t, "TH"), 1.7e308, 1.7e308, 100)
		var lines []Line
		require.NotPanics(t, func() { lines = Breakdown(res) })

		last := lines[len(lines)-1]
		assert.Equal(t, "net_receipt", last.Key)
		assert.Equal(t, "฿ -∞", last.Display)
	})
}
