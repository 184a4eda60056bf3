package journal

import (
	"cmp"
	"slices"
	"time"

	"devdiary/internal/storage"
)

// MoodPoint is one sample of the mood trend.
type MoodPoint struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
}

// Streak counts consecutive calendar days with at least one entry,
// ending at today. Several entries on one day count once.
func Streak(entries []storage.Entry, today time.Time) int {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Date] = struct{}{}
	}

	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := seen[FormatDate(day)]; !ok {
			return streak
		}
		streak++
	}
}

// MoodTrend returns up to n of the most recent mood-bearing entries in
// chronological order. Recency is by date, then id.
func MoodTrend(entries []storage.Entry, n int) []MoodPoint {
	withMood := make([]storage.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Mood != nil {
			withMood = append(withMood, e)
		}
	}
	slices.SortStableFunc(withMood, func(a, b storage.Entry) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if n >= 0 && len(withMood) > n {
		withMood = withMood[len(withMood)-n:]
	}

	points := make([]MoodPoint, len(withMood))
	for i, e := range withMood {
		points[i] = MoodPoint{Date: e.Date, Mood: *e.Mood}
	}
	return points
}

// AverageMood returns the mean of all non-null moods, or nil when there are none.
func AverageMood(entries []storage.Entry) *float64 {
	sum, n := 0, 0
	for _, e := range entries {
		if e.Mood != nil {
			sum += *e.Mood
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
