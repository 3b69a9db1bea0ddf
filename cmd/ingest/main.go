package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/octobees/roofcompare/internal/ingest"
)

func main() {
	csvPath := flag.String("csv", "", "path to the source companies CSV")
	datasetPath := flag.String("out", "data/companies.json", "output path for the company dataset")
	cityIndexPath := flag.String("cities", "data/cities-index.json", "output path for the city index")
	flag.Usage = usage
	flag.Parse()

	if *csvPath == "" {
		usage()
		os.Exit(2)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	result, err := ingest.Transform(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := ingest.WriteDataset(*datasetPath, result.Companies); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := ingest.WriteCityIndex(*cityIndexPath, result.Cities); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range result.Report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: row %d: %s\n", warning.Row, warning.Message)
	}

	fmt.Printf("✅ %s: %d companies across %d cities\n", *datasetPath, result.Report.Companies, result.Report.Cities)
	fmt.Printf("✅ %s: %d cities\n", *cityIndexPath, result.Report.Cities)
	if n := len(result.Report.Warnings); n > 0 {
		fmt.Printf("⚠️  %d rows needed attention, see warnings above\n", n)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ingest --csv <file> [--out <dataset.json>] [--cities <index.json>]

Converts a companies CSV export into the JSON dataset served by the site.

Expected CSV columns (header names, any order):
  name, city, state          required
  phone, website, address    optional contact details
  description, services      services use "tier:price|tier:price"
  verified                   "true" marks the listing verified
  pricing_estimated          "false" marks prices as confirmed

Flags:
`)
	flag.PrintDefaults()
}
