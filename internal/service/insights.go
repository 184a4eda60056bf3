package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_insights_service.go -package=mocks -mock_names=InsightsService=MockInsightsService,CalendarService=MockCalendarService devdiary/internal/service InsightsService,CalendarService

import (
	"context"
	"fmt"
	"time"

	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

const (
	// DefaultTrendDays is the mood trend length when none is requested.
	DefaultTrendDays = 30
	maxTrendDays     = 365
)

// Summary is the dashboard overview of a user's journal.
type Summary struct {
	Streak      int      `json:"streak"`
	EntryCount  int      `json:"entry_count"`
	AverageMood *float64 `json:"average_mood"`
}

// CalendarService aggregates entries per calendar day.
type CalendarService interface {
	Month(ctx context.Context, s journal.Session, year, month int, f journal.Filter) (journal.Month, error)
}

// InsightsService computes journal statistics.
type InsightsService interface {
	Summary(ctx context.Context, s journal.Session) (Summary, error)
	MoodTrend(ctx context.Context, s journal.Session, n int) ([]journal.MoodPoint, error)
}

// insightsService implements InsightsService and CalendarService.
type insightsService struct {
	store storage.RecordStore
	now   func() time.Time
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(store storage.RecordStore) InsightsService {
	return &insightsService{store: store, now: time.Now}
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(store storage.RecordStore) CalendarService {
	return &insightsService{store: store, now: time.Now}
}

func (s *insightsService) entries(ctx context.Context, sess journal.Session) ([]storage.Entry, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	entries, err := s.store.Entries(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err, "entries")
	}
	return entries, nil
}

// Month returns per-day entry counts and average moods for one month.
func (s *insightsService) Month(ctx context.Context, sess journal.Session, year, month int, f journal.Filter) (journal.Month, error) {
	if err := requireSession(sess); err != nil {
		return journal.Month{}, err
	}
	if year < 1 || year > 9999 {
		return journal.Month{}, &ValidationError{Field: "year", Message: "must be between 1 and 9999"}
	}
	if month < 1 || month > 12 {
		return journal.Month{}, &ValidationError{Field: "month", Message: "must be between 1 and 12"}
	}
	entries, err := s.entries(ctx, sess)
	if err != nil {
		return journal.Month{}, err
	}
	return journal.MonthSummary(entries, year, month, f), nil
}

// Summary returns the streak ending today, the entry count and the average mood.
func (s *insightsService) Summary(ctx context.Context, sess journal.Session) (Summary, error) {
	entries, err := s.entries(ctx, sess)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Streak:      journal.Streak(entries, s.now()),
		EntryCount:  len(entries),
		AverageMood: journal.AverageMood(entries),
	}, nil
}

// MoodTrend returns the n most recent moods in chronological order.
func (s *insightsService) MoodTrend(ctx context.Context, sess journal.Session, n int) ([]journal.MoodPoint, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if n < 1 || n > maxTrendDays {
		return nil, &ValidationError{Field: "days", Message: fmt.Sprintf("must be between 1 and %d", maxTrendDays)}
	}
	entries, err := s.entries(ctx, sess)
	if err != nil {
		return nil, err
	}
	return journal.MoodTrend(entries, n), nil
}
