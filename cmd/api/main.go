package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-correlation/internal/api"
	"hotel-correlation/internal/config"
	"hotel-correlation/internal/data"
	"hotel-correlation/internal/engine"
	"hotel-correlation/internal/logging"
	"hotel-correlation/internal/metrics"
	"hotel-correlation/internal/scheduler"

	"go.uber.org/zap"
)

func main() {
	app, err := config.LoadApp()
	if err != nil {
		panic(err)
	}

	log := logging.New(app.Logging.Level, app.Logging.Format)
	defer log.Sync()

	rules := config.Default()
	if app.Data.RulesFile != "" {
		rules, err = config.Load(app.Data.RulesFile)
		if err != nil {
			log.Fatal("loading rules", zap.String("file", app.Data.RulesFile), zap.Error(err))
		}
	}

	var store *data.SnapshotStore
	if app.Data.HotelsFile != "" && app.Data.EventsFile != "" {
		store = data.NewSnapshotStore(app.Data.CacheTTL, func() (*data.Dataset, error) {
			return data.LoadDataset(app.Data.HotelsFile, app.Data.EventsFile)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if app.Scheduler.Enabled && store != nil {
		go runScheduler(ctx, app, rules, store, log)
	}

	router := api.NewRouter(rules, store, app, log)

	addr := ":" + app.Server.Port
	log.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// runScheduler recomputes prices for the configured horizon on a fixed
// cadence and periodically refreshes the event snapshot, either from
// the remote feed or from disk.
func runScheduler(ctx context.Context, app *config.App, rules *config.Rules, store *data.SnapshotStore, log *zap.Logger) {
	correlator := engine.New(rules, log)
	var feed *data.FeedClient
	if app.Data.FeedURL != "" {
		feed = data.NewFeedClient(app.Data.FeedURL)
	}

	recompute := func(ctx context.Context) error {
		ds, err := store.Get()
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		began := time.Now()
		result, err := correlator.Correlate(ds.Hotels, ds.Events, now, now.AddDate(0, 0, app.Scheduler.HorizonDays), now)
		if err != nil {
			return err
		}
		metrics.CorrelationRuns.WithLabelValues("scheduler").Inc()
		metrics.CorrelationDuration.Observe(time.Since(began).Seconds())
		metrics.ConsolidatedEntries.Set(float64(len(result.Entries)))
		log.Info("scheduled recompute finished",
			zap.Int("entries", len(result.Entries)),
			zap.Int("skipped", len(result.Skipped)))
		return nil
	}

	refresh := func(ctx context.Context) error {
		if feed != nil {
			now := time.Now().UTC()
			events, err := feed.FetchEvents(ctx, now, now.AddDate(0, 0, app.Scheduler.HorizonDays))
			if err != nil {
				return err
			}
			if err := data.SaveEvents(app.Data.EventsFile, events); err != nil {
				return err
			}
			log.Info("event feed refreshed", zap.Int("events", len(events)))
		}
		_, err := store.Refresh()
		return err
	}

	sched := scheduler.New(app.Scheduler.RecomputeInterval, app.Scheduler.RefreshInterval, recompute, refresh, log)
	sched.Run(ctx)
}
