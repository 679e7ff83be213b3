package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/leetcode"
	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/rs/zerolog"
)

// stubFetcher lets each query outcome be scripted per call.
type stubFetcher struct {
	basicCalls    int
	contestCalls  int
	calendarCalls int

	basic    func(call int) (*leetcode.BasicData, error)
	contest  func() (*leetcode.ContestData, error)
	calendar func() (*leetcode.CalendarData, error)
}

func (s *stubFetcher) FetchBasicProfile(_ context.Context, _ string) (*leetcode.BasicData, error) {
	s.basicCalls++
	return s.basic(s.basicCalls)
}

func (s *stubFetcher) FetchContestRanking(_ context.Context, _ string) (*leetcode.ContestData, error) {
	s.contestCalls++
	if s.contest == nil {
		return &leetcode.ContestData{}, nil
	}
	return s.contest()
}

func (s *stubFetcher) FetchSubmissionCalendar(_ context.Context, _ string) (*leetcode.CalendarData, error) {
	s.calendarCalls++
	if s.calendar == nil {
		return &leetcode.CalendarData{}, nil
	}
	return s.calendar()
}

func matchedUserPayload(total int) *leetcode.BasicData {
	return &leetcode.BasicData{
		MatchedUser: &leetcode.MatchedUser{
			Username: "Levender",
			SubmitStats: leetcode.SubmitStats{
				ACSubmissionNum: []leetcode.DifficultyCount{
					{Difficulty: "All", Count: total, Submissions: total},
				},
			},
		},
		AllQuestionsCount: []leetcode.DifficultyCount{
			{Difficulty: "All", Count: 3721},
		},
	}
}

func newService(stub *stubFetcher, attempts int, sleeps *[]time.Duration) service.StatsService {
	return service.NewStatsService(stub, service.StatsConfig{
		Username:   "Levender",
		Attempts:   attempts,
		RetryDelay: time.Second,
	}, zerolog.Nop(), service.WithSleep(func(d time.Duration) {
		if sleeps != nil {
			*sleeps = append(*sleeps, d)
		}
	}))
}

func TestFetchStats_OptionalFailureIsolation(t *testing.T) {
	stub := &stubFetcher{
		basic:    func(int) (*leetcode.BasicData, error) { return matchedUserPayload(284), nil },
		contest:  func() (*leetcode.ContestData, error) { return nil, errors.New("contest timeout") },
		calendar: func() (*leetcode.CalendarData, error) { return nil, errors.New("calendar 503") },
	}
	svc := newService(stub, 3, nil)

	overview, err := svc.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("expected success despite optional failures, got %v", err)
	}
	if overview.Solved.Current != 284 {
		t.Fatalf("expected current=284, got %d", overview.Solved.Current)
	}
	if overview.Contest.Rating != 0 || overview.Contest.GlobalRank != "N/A" {
		t.Fatalf("expected contest defaults, got %+v", overview.Contest)
	}
	if stub.basicCalls != 1 {
		t.Fatalf("optional failures must not retry the attempt, basic calls=%d", stub.basicCalls)
	}
}

func TestFetchStats_RequiredFailureExhaustsBudget(t *testing.T) {
	stub := &stubFetcher{
		basic: func(int) (*leetcode.BasicData, error) {
			// matchedUser is null on every attempt.
			return &leetcode.BasicData{}, nil
		},
	}
	var sleeps []time.Duration
	svc := newService(stub, 3, &sleeps)

	_, err := svc.FetchStats(context.Background())
	if err == nil {
		t.Fatal("expected failure after exhausting retries")
	}
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected user-not-found, got %v", err)
	}
	if got := err.Error(); got != "User not found: Levender" {
		t.Fatalf("unexpected message: %q", got)
	}
	if stub.basicCalls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", stub.basicCalls)
	}
	if len(sleeps) != 2 || sleeps[0] != time.Second {
		t.Fatalf("expected 2 fixed one-second delays, got %v", sleeps)
	}
	if stub.contestCalls != 0 || stub.calendarCalls != 0 {
		t.Fatal("optional queries must not run when the required query fails")
	}
}

func TestFetchStats_TransientFailureRecovers(t *testing.T) {
	stub := &stubFetcher{
		basic: func(call int) (*leetcode.BasicData, error) {
			if call < 3 {
				return nil, errors.New("upstream 502")
			}
			return matchedUserPayload(100), nil
		},
	}
	svc := newService(stub, 3, nil)

	overview, err := svc.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("expected recovery on final attempt, got %v", err)
	}
	if overview.Profile.Username != "Levender" {
		t.Fatalf("unexpected overview: %+v", overview.Profile)
	}
	if stub.basicCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", stub.basicCalls)
	}
}

func TestFetchStats_TransportErrorDistinctFromNotFound(t *testing.T) {
	stub := &stubFetcher{
		basic: func(int) (*leetcode.BasicData, error) { return nil, errors.New("connection refused") },
	}
	svc := newService(stub, 2, nil)

	_, err := svc.FetchStats(context.Background())
	if err == nil {
		t.Fatal("expected failure")
	}
	if errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("transport failure must not look like user-not-found: %v", err)
	}
}

func TestFetchStats_OptionalDataMerged(t *testing.T) {
	stub := &stubFetcher{
		basic: func(int) (*leetcode.BasicData, error) { return matchedUserPayload(284), nil },
		contest: func() (*leetcode.ContestData, error) {
			ranking := 39506
			return &leetcode.ContestData{UserContestRanking: &leetcode.ContestRanking{
				Rating:                1478.2,
				GlobalRanking:         &ranking,
				AttendedContestsCount: 241,
				TopPercentage:         51.39,
			}}, nil
		},
		calendar: func() (*leetcode.CalendarData, error) {
			return &leetcode.CalendarData{MatchedUser: &leetcode.CalendarUser{
				SubmissionCalendar: `{"1729468800": 2}`,
			}}, nil
		},
	}
	svc := newService(stub, 3, nil)

	overview, err := svc.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Contest.Rating != 1478 || overview.Contest.GlobalRank != "39,506" {
		t.Fatalf("contest not merged: %+v", overview.Contest)
	}
	if overview.ContributionCalendar["1729468800"] != 2 {
		t.Fatalf("calendar not merged: %v", overview.ContributionCalendar)
	}
}
