// Command vatcalc prints the fee/VAT breakdown of a transaction.
//
//	vatcalc -country TH -amount 370 -flat 4 -percent 2
//	vatcalc -list
//	vatcalc -xlsx fees.xlsx -percent 2.5
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mitchellh/colorstring"

	"vatcalc/internal/config"
	"vatcalc/internal/format"
	"vatcalc/internal/models"
	"vatcalc/internal/report"
	"vatcalc/internal/services/vat"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("vatcalc: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vatcalc", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		country   = fs.String("country", string(models.DefaultCountry), "country of service")
		amount    = fs.Float64("amount", 0, "transaction amount (default: country seed)")
		flatFee   = fs.Float64("flat", 0, "flat fee (default: country seed)")
		percent   = fs.Float64("percent", models.DefaultPercentFee, "percentage fee, clamped to [0,100]")
		list      = fs.Bool("list", false, "list supported countries")
		xlsx      = fs.String("xlsx", "", "write a comparison of every country to this xlsx file")
		countries = fs.String("countries", config.GetEnv("COUNTRIES_FILE", ""), "YAML file overriding the country table")
		noColor   = fs.Bool("no-color", false, "disable coloured output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry, err := models.LoadRegistry(*countries)
	if err != nil {
		return err
	}
	colorize := &colorstring.Colorize{Colors: colorstring.DefaultColors, Disable: *noColor, Reset: true}

	switch {
	case *list:
		for _, cfg := range registry.All() {
			fmt.Fprintln(out, colorize.Color(fmt.Sprintf("%s [bold]%s[reset] %-12s VAT %s%% on %s%% of fee  (%s)",
				cfg.Flag, cfg.Code, cfg.Name,
				format.Percent(cfg.Rate*100), format.Percent(cfg.Base*100), cfg.Symbol)))
		}
		return nil
	case *xlsx != "":
		if err := report.WriteComparison(*xlsx, registry, *percent); err != nil {
			return err
		}
		fmt.Fprintln(out, colorize.Color(fmt.Sprintf("[green]Wrote %d countries to %s", registry.Len(), *xlsx)))
		return nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	svc := vat.NewService(registry, nil, nil)
	cfg, err := svc.Country(*country)
	if err != nil {
		return err
	}
	req := vat.CalculationRequest{
		Country:    *country,
		Amount:     cfg.DefaultAmount,
		FlatFee:    cfg.DefaultFlatFee,
		PercentFee: *percent,
	}
	if set["amount"] {
		req.Amount = *amount
	}
	if set["flat"] {
		req.FlatFee = *flatFee
	}

	res, err := svc.Calculate(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, colorize.Color(fmt.Sprintf("[bold]%s %s[reset]  amount %s", cfg.Flag, cfg.Name, format.Money(cfg, res.Amount))))
	for _, line := range format.Breakdown(*res) {
		text := fmt.Sprintf("  %-36s %s", line.Label, line.Display)
		if line.Key == "net_receipt" {
			text = "[green][bold]" + text
		}
		fmt.Fprintln(out, colorize.Color(text))
	}
	return nil
}
