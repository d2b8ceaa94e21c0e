// Package report exports fee/VAT comparisons to spreadsheets.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"vatcalc/internal/format"
	"vatcalc/internal/models"
	"vatcalc/internal/services/vat"
)

const SheetName = "Comparison"

var headers = []string{
	"Code", "Country", "Symbol", "VAT Rate", "Tax Base", "Amount", "Flat Fee", "Percent Fee",
	"Variable Fee", "Total Fee", "VAT", "Net Receipt", "You Receive",
}

// Comparison computes the seed calculation of every country in the registry.
func Comparison(registry *models.Registry, percentFee float64) []vat.Result {
	out := make([]vat.Result, 0, registry.Len())
	for _, cfg := range registry.All() {
		out = append(out, vat.Compute(cfg, cfg.DefaultAmount, cfg.DefaultFlatFee, percentFee))
	}
	return out
}

// WriteComparison writes one row per country to an xlsx file at path.
func WriteComparison(path string, registry *models.Registry, percentFee float64) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, res := range Comparison(registry, percentFee) {
		cfg := res.Country
		row := []interface{}{
			string(cfg.Code), cfg.Name, cfg.Symbol, cfg.Rate, cfg.Base,
			res.Amount, res.FlatFee, res.PercentFee,
			res.VariableFee, res.TotalFee, res.VATAmount, res.NetReceipt,
			format.Money(cfg, res.NetReceipt),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %s: %w", cfg.Code, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
