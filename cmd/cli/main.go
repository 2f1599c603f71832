package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hotel-correlation/internal/analysis"
	"hotel-correlation/internal/config"
	"hotel-correlation/internal/data"
	"hotel-correlation/internal/engine"
	"hotel-correlation/internal/logging"
	"hotel-correlation/internal/model"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "correlate":
		cmdCorrelate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli correlate --hotels examples/data/hotels.json --events examples/data/events.json --start 2025-07-01 --end 2025-07-31 --out results/prices.csv")
	fmt.Println("  cli rank --hotels examples/data/hotels.json --events examples/data/events.json --start 2025-07-01 --end 2025-07-31")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - correlate writes one CSV row per (date, hotel, room type) with adjusted prices")
	fmt.Println("  - rank orders hotels by peak demand-impact factor over the range")
}

func cmdCorrelate(args []string) {
	fs := flag.NewFlagSet("correlate", flag.ExitOnError)
	hotelsPath := fs.String("hotels", "examples/data/hotels.json", "Path to hotels JSON")
	eventsPath := fs.String("events", "examples/data/events.json", "Path to events JSON")
	rulesPath := fs.String("rules", "", "Path to rules YAML (optional, defaults built in)")
	start := fs.String("start", "", "Range start (YYYY-MM-DD)")
	end := fs.String("end", "", "Range end (YYYY-MM-DD)")
	asOf := fs.String("as-of", "", "Evaluation date (YYYY-MM-DD, default today)")
	outPath := fs.String("out", "results/prices.csv", "Output CSV path")
	_ = fs.Parse(args)

	rangeStart, rangeEnd, evaluation := parseDates(*start, *end, *asOf)
	rules := loadRules(*rulesPath)

	ds, err := data.LoadDataset(*hotelsPath, *eventsPath)
	if err != nil {
		fatal(err)
	}

	log := logging.New("info", "console")
	defer log.Sync()

	correlator := engine.New(rules, log)
	result, err := correlator.Correlate(ds.Hotels, ds.Events, rangeStart, rangeEnd, evaluation)
	if err != nil {
		fatal(err)
	}

	for _, d := range result.Skipped {
		fmt.Printf("skipped %s %q: %s\n", d.Record, d.ID, d.Reason)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal(err)
	}
	if err := engine.WriteResultsCSV(*outPath, result.Entries); err != nil {
		fatal(err)
	}

	log.Info("correlation finished",
		zap.Int("entries", len(result.Entries)),
		zap.Int("skipped", len(result.Skipped)),
		zap.String("out", *outPath))
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	hotelsPath := fs.String("hotels", "examples/data/hotels.json", "Path to hotels JSON")
	eventsPath := fs.String("events", "examples/data/events.json", "Path to events JSON")
	rulesPath := fs.String("rules", "", "Path to rules YAML (optional, defaults built in)")
	start := fs.String("start", "", "Range start (YYYY-MM-DD)")
	end := fs.String("end", "", "Range end (YYYY-MM-DD)")
	asOf := fs.String("as-of", "", "Evaluation date (YYYY-MM-DD, default today)")
	limit := fs.Int("limit", 10, "Number of hotels to show")
	_ = fs.Parse(args)

	rangeStart, rangeEnd, evaluation := parseDates(*start, *end, *asOf)
	rules := loadRules(*rulesPath)

	ds, err := data.LoadDataset(*hotelsPath, *eventsPath)
	if err != nil {
		fatal(err)
	}

	correlator := engine.New(rules, nil)
	result, err := correlator.Correlate(ds.Hotels, ds.Events, rangeStart, rangeEnd, evaluation)
	if err != nil {
		fatal(err)
	}

	ranked := analysis.RankByDemandPressure(result.Entries)
	if *limit < len(ranked) {
		ranked = ranked[:*limit]
	}

	fmt.Printf("%-4s %-28s %-10s %-10s %-12s %s\n", "rank", "hotel", "max", "mean", "dates", "peak date")
	for _, r := range ranked {
		fmt.Printf("%-4d %-28s %-10.2f %-10.2f %-12d %s\n",
			r.Rank, r.HotelName, r.MaxFactor, r.MeanFactor, r.AffectedDates, r.PeakDate)
	}
}

func parseDates(start, end, asOf string) (time.Time, time.Time, time.Time) {
	if start == "" || end == "" {
		fmt.Println("--start and --end are required")
		os.Exit(2)
	}
	rangeStart, err := time.Parse(model.DateLayout, start)
	if err != nil {
		fatal(fmt.Errorf("invalid --start: %w", err))
	}
	rangeEnd, err := time.Parse(model.DateLayout, end)
	if err != nil {
		fatal(fmt.Errorf("invalid --end: %w", err))
	}
	evaluation := time.Now().UTC()
	if asOf != "" {
		evaluation, err = time.Parse(model.DateLayout, asOf)
		if err != nil {
			fatal(fmt.Errorf("invalid --as-of: %w", err))
		}
	}
	return rangeStart, rangeEnd, evaluation
}

func loadRules(path string) *config.Rules {
	if path == "" {
		return config.Default()
	}
	rules, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	return rules
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
