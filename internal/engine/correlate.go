package engine

import (
	"errors"
	"sort"
	"time"

	"hotel-correlation/internal/config"
	"hotel-correlation/internal/model"

	"go.uber.org/zap"
)

// Diagnostic reports one skipped input record. Skips never abort the
// batch; callers that care can surface them next to the results.
type Diagnostic struct {
	Record string `json:"record"` // "hotel" or "event"
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Result is the output of one correlation run.
type Result struct {
	Entries []model.ConsolidatedResult `json:"entries"`
	Skipped []Diagnostic               `json:"skipped,omitempty"`
}

// Correlator drives the pipeline end to end: filter events by date,
// classify, assess impact, match hotels, adjust prices, and consolidate
// overlapping events per hotel and date. It is stateless between calls
// and safe to invoke concurrently.
type Correlator struct {
	rules      *config.Rules
	classifier *Classifier
	impact     *ImpactCalculator
	matcher    *HotelMatcher
	adjuster   *PriceAdjuster
	log        *zap.Logger
}

func New(rules *config.Rules, log *zap.Logger) *Correlator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Correlator{
		rules:      rules,
		classifier: NewClassifier(rules),
		impact:     NewImpactCalculator(rules),
		matcher:    NewHotelMatcher(rules),
		adjuster:   NewPriceAdjuster(rules),
		log:        log,
	}
}

// consolidationKey identifies one (date, hotel) cell of the output.
type consolidationKey struct {
	date    string
	hotelID string
}

// Correlate computes adjusted prices for every (date, hotel) pair with
// at least one in-range, in-radius event. Individual malformed records
// are skipped with a diagnostic; only an inverted date range is a hard
// error. Entries come back sorted by date, then hotel id.
func (c *Correlator) Correlate(hotels []model.Hotel, events []model.Event, rangeStart, rangeEnd, evaluationDate time.Time) (*Result, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, errors.New("date range end is before start")
	}

	res := &Result{}
	today := truncateToDay(evaluationDate)

	validHotels := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if err := h.Validate(); err != nil {
			c.log.Warn("skipping hotel record",
				zap.String("hotel_id", h.ID),
				zap.Error(err))
			res.Skipped = append(res.Skipped, Diagnostic{Record: "hotel", ID: h.ID, Reason: err.Error()})
			continue
		}
		validHotels = append(validHotels, h)
	}

	type datedEvent struct {
		ev   model.Event
		date time.Time
	}
	validEvents := make([]model.Event, 0, len(events))
	inRange := make([]datedEvent, 0, len(events))
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			c.log.Warn("skipping event record",
				zap.String("event", ev.Title),
				zap.String("date", ev.Date),
				zap.Error(err))
			res.Skipped = append(res.Skipped, Diagnostic{Record: "event", ID: ev.Title, Reason: err.Error()})
			continue
		}
		date, _ := ev.ParseDate()
		validEvents = append(validEvents, ev)
		if !date.Before(truncateToDay(rangeStart)) && !date.After(truncateToDay(rangeEnd)) {
			inRange = append(inRange, datedEvent{ev: ev, date: date})
		}
	}

	consolidated := make(map[consolidationKey]*model.ConsolidatedResult)

	for _, de := range inRange {
		tier := c.classifier.Classify(de.ev)
		assessment := c.impact.Assess(de.ev, de.date, tier, validEvents, today)
		matched := c.matcher.Match(de.ev, tier, validHotels)

		for _, hotel := range matched {
			key := consolidationKey{date: de.ev.Date, hotelID: hotel.ID}
			entry, ok := consolidated[key]
			if !ok {
				entry = &model.ConsolidatedResult{
					Date:        de.ev.Date,
					Hotel:       hotel,
					FinalPrices: c.adjuster.Neutral(hotel.BasePrices),
					MaxFactor:   1,
				}
				consolidated[key] = entry
			}

			// Every contributing event is recorded, but the prices of a
			// (date, hotel) cell always come from the single event with
			// the highest factor seen so far. Ties keep the earliest.
			entry.Events = append(entry.Events, de.ev)
			if assessment.CompositeFactor > entry.MaxFactor {
				entry.MaxFactor = assessment.CompositeFactor
				entry.FinalPrices = c.adjuster.Adjust(hotel.BasePrices, assessment.CompositeFactor)
			}
		}
	}

	res.Entries = make([]model.ConsolidatedResult, 0, len(consolidated))
	for _, entry := range consolidated {
		res.Entries = append(res.Entries, *entry)
	}
	sort.Slice(res.Entries, func(i, j int) bool {
		if res.Entries[i].Date != res.Entries[j].Date {
			return res.Entries[i].Date < res.Entries[j].Date
		}
		return res.Entries[i].Hotel.ID < res.Entries[j].Hotel.ID
	})

	return res, nil
}

// Assess runs classification and impact assessment for a single event
// without touching hotels. Exposed for callers that want the breakdown
// on its own (the dashboard's event cards).
func (c *Correlator) Assess(ev model.Event, events []model.Event, evaluationDate time.Time) (model.ImpactAssessment, error) {
	if err := ev.Validate(); err != nil {
		return model.ImpactAssessment{}, err
	}
	date, _ := ev.ParseDate()
	tier := c.classifier.Classify(ev)
	return c.impact.Assess(ev, date, tier, events, truncateToDay(evaluationDate)), nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
