package service

import (
	"context"
	"sync"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/leetcode"
	"github.com/akhilkushwaha/portfolio-backend/internal/model"
	"github.com/rs/zerolog"
)

// StatsFetcher is the slice of the upstream client the aggregator needs.
type StatsFetcher interface {
	FetchBasicProfile(ctx context.Context, username string) (*leetcode.BasicData, error)
	FetchContestRanking(ctx context.Context, username string) (*leetcode.ContestData, error)
	FetchSubmissionCalendar(ctx context.Context, username string) (*leetcode.CalendarData, error)
}

// StatsConfig is the aggregation policy: which user to aggregate, how many
// times to retry the whole attempt, and how long to pause between attempts.
type StatsConfig struct {
	Username   string
	Attempts   int
	RetryDelay time.Duration
}

type statsService struct {
	client StatsFetcher
	cfg    StatsConfig
	sleep  func(time.Duration)
	log    zerolog.Logger
}

// StatsOption tweaks the service; used by tests to avoid wall-clock waits.
type StatsOption func(*statsService)

// WithSleep replaces the inter-attempt delay function.
func WithSleep(fn func(time.Duration)) StatsOption {
	return func(s *statsService) { s.sleep = fn }
}

// NewStatsService wires the aggregator for one fixed target user.
func NewStatsService(client StatsFetcher, cfg StatsConfig, logger zerolog.Logger, opts ...StatsOption) StatsService {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	s := &statsService{client: client, cfg: cfg, sleep: time.Sleep, log: l}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchStats runs one aggregation cycle: the required basic-profile query
// with a bounded retry of the whole attempt, then the two optional queries
// with independent failure isolation, then the normalizer.
//
// Only the required path can fail the cycle. An optional query that errors is
// logged and treated as absent data; it never consumes a retry.
func (s *statsService) FetchStats(ctx context.Context) (model.StatsOverview, error) {
	var lastErr error

	for attempt := 1; attempt <= s.cfg.Attempts; attempt++ {
		if attempt > 1 {
			s.sleep(s.cfg.RetryDelay)
		}

		basic, err := s.client.FetchBasicProfile(ctx, s.cfg.Username)
		switch {
		case err != nil:
			lastErr = err
		case basic.MatchedUser == nil:
			lastErr = &UserNotFoundError{Username: s.cfg.Username}
		default:
			contest, calendar := s.fetchOptional(ctx)
			return buildOverview(basic, contest, calendar, s.log), nil
		}

		s.log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Int("budget", s.cfg.Attempts).
			Msg("basic profile fetch failed")
	}

	s.log.Error().Err(lastErr).Msg("aggregation failed after all attempts")
	return model.StatsOverview{}, lastErr
}

// fetchOptional issues the contest and calendar queries concurrently and
// joins on both. A failed query yields nil; nothing escalates from here.
func (s *statsService) fetchOptional(ctx context.Context) (*leetcode.ContestData, *leetcode.CalendarData) {
	var (
		wg       sync.WaitGroup
		contest  *leetcode.ContestData
		calendar *leetcode.CalendarData
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data, err := s.client.FetchContestRanking(ctx, s.cfg.Username)
		if err != nil {
			s.log.Warn().Err(err).Msg("contest fetch failed, continuing without contest data")
			return
		}
		contest = data
	}()
	go func() {
		defer wg.Done()
		data, err := s.client.FetchSubmissionCalendar(ctx, s.cfg.Username)
		if err != nil {
			s.log.Warn().Err(err).Msg("calendar fetch failed, continuing without calendar data")
			return
		}
		calendar = data
	}()
	wg.Wait()

	return contest, calendar
}
