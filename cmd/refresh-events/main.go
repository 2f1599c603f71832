package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hotel-correlation/internal/data"
	"hotel-correlation/internal/model"
)

func main() {
	var (
		feedURL    = flag.String("feed-url", "", "Event feed base URL (default: EVENT_FEED_URL env var)")
		outputPath = flag.String("output", "./examples/data/events.json", "Output file path")
		start      = flag.String("start", "", "Range start (YYYY-MM-DD, default today)")
		days       = flag.Int("days", 30, "Number of days ahead to fetch")
		timeout    = flag.Duration("timeout", time.Minute, "Overall fetch timeout")
	)
	flag.Parse()

	url := *feedURL
	if url == "" {
		url = os.Getenv("EVENT_FEED_URL")
	}
	if url == "" {
		log.Fatal("feed URL is required (--feed-url or EVENT_FEED_URL)")
	}

	startDate := time.Now().UTC()
	if *start != "" {
		var err error
		startDate, err = time.Parse(model.DateLayout, *start)
		if err != nil {
			log.Fatalf("invalid --start: %v", err)
		}
	}
	endDate := startDate.AddDate(0, 0, *days)

	fmt.Printf("Fetching events from %s to %s...\n",
		startDate.Format(model.DateLayout), endDate.Format(model.DateLayout))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := data.NewFeedClient(url)
	events, err := client.FetchEvents(ctx, startDate, endDate)
	if err != nil {
		if feedErr, ok := err.(*data.FeedError); ok && feedErr.RetryAfter != "" {
			log.Fatalf("feed refused the request (retry after %s): %v", feedErr.RetryAfter, err)
		}
		log.Fatalf("Failed to fetch events: %v", err)
	}

	// Drop records the engine would reject anyway; a feed hiccup should
	// not poison the local snapshot.
	valid := events[:0]
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			fmt.Printf("  skipping %q: %v\n", ev.Title, err)
			continue
		}
		valid = append(valid, ev)
	}

	if err := data.SaveEvents(*outputPath, valid); err != nil {
		log.Fatalf("Failed to save events: %v", err)
	}

	fmt.Printf("Saved %d events to %s\n", len(valid), *outputPath)
}
