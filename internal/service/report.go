package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/you/go-tickets-report/internal/flighttime"
	"github.com/you/go-tickets-report/internal/report"
	"github.com/you/go-tickets-report/internal/sources"
	"github.com/you/go-tickets-report/internal/stats"
	"github.com/you/go-tickets-report/internal/tickets"
	"github.com/you/go-tickets-report/internal/timezone"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNoSources = errors.New("no ticket sources")

type ReportService struct {
	log         *zap.Logger
	from, to    string
	sources     []sources.Source
	loadTimeout time.Duration
}

func NewReportService(log *zap.Logger, from, to string, src []sources.Source, loadTimeout time.Duration) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	for _, city := range []string{from, to} {
		if _, ok := timezone.Lookup(city); !ok {
			log.Warn("city has no timezone rule, treated as UTC", zap.String("city", city), zap.Strings("modeled", timezone.Cities()))
		}
	}
	return &ReportService{
		log:         log,
		from:        from,
		to:          to,
		sources:     src,
		loadTimeout: loadTimeout,
	}
}

// Build loads every source and aggregates the tickets in source order.
// A failing source fails the whole build.
func (s *ReportService) Build(ctx context.Context) (report.Report, error) {
	if len(s.sources) == 0 {
		return report.Report{}, ErrNoSources
	}
	if s.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.loadTimeout)
		defer cancel()
	}

	loaded := make([][]tickets.Ticket, len(s.sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		i, src := i, src
		g.Go(func() error {
			out, err := src.Load(ctx)
			if err != nil {
				s.log.Error("failed to load tickets", zap.String("source", src.Name()), zap.Error(err))
				return err
			}
			s.log.Debug("tickets loaded", zap.String("source", src.Name()), zap.Int("count", len(out)))
			loaded[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Report{}, err
	}

	var all []tickets.Ticket
	for _, ts := range loaded {
		all = append(all, ts...)
	}
	return s.Aggregate(all), nil
}

// Aggregate keeps the tickets flying between the configured cities, in either
// direction, and computes the minimum flight time per carrier and the price
// spread. Tickets with unparsable times or price are logged and skipped.
func (s *ReportService) Aggregate(ts []tickets.Ticket) report.Report {
	const op = "service.Aggregate"
	logger := s.log.With(zap.String("op", op), zap.String("from", s.from), zap.String("to", s.to))

	r := report.Report{From: s.from, To: s.to}
	minTimes := make(map[string]time.Duration)
	var prices []float64

	for i, t := range ts {
		if t.Err != nil {
			logger.Warn("skipping undecodable ticket", zap.Int("ticket", i), zap.Error(t.Err))
			r.Skipped++
			continue
		}
		if !t.Connects(s.from, s.to) {
			r.Skipped++
			continue
		}

		d, err := flighttime.Of(t)
		if err != nil {
			logger.Warn("skipping ticket with bad date/time", zap.Int("ticket", i), zap.String("carrier", t.Carrier), zap.Error(err))
			r.Skipped++
			continue
		}
		price, err := t.Price.Float()
		if err != nil {
			logger.Warn("skipping ticket with bad price", zap.Int("ticket", i), zap.String("carrier", t.Carrier), zap.Error(err))
			r.Skipped++
			continue
		}

		r.Matched++
		if cur, ok := minTimes[t.Carrier]; !ok || d < cur {
			minTimes[t.Carrier] = d
		}
		prices = append(prices, price)
	}

	sort.Float64s(prices)
	r.Prices = stats.Summarize(prices)

	r.Carriers = make([]report.CarrierTime, 0, len(minTimes))
	for c, d := range minTimes {
		r.Carriers = append(r.Carriers, report.CarrierTime{Carrier: c, Duration: d})
	}
	sort.Slice(r.Carriers, func(i, j int) bool { return r.Carriers[i].Carrier < r.Carriers[j].Carrier })

	logger.Info("tickets aggregated",
		zap.Int("total", len(ts)),
		zap.Int("matched", r.Matched),
		zap.Int("skipped", r.Skipped),
		zap.Int("carriers", len(r.Carriers)),
	)
	return r
}
