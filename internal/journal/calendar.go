package journal

import (
	"fmt"
	"strings"

	"devdiary/internal/storage"
)

// Day aggregates the entries of one calendar day.
type Day struct {
	Date        string   `json:"date"`
	Day         int      `json:"day"`
	EntryCount  int      `json:"entry_count"`
	AverageMood *float64 `json:"average_mood"`
}

// Month is the calendar view of one month. Only days with entries are listed.
type Month struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

// MonthSummary groups entries of the given month by day. Project and tag
// filters in f apply; its date range and search fields are ignored.
func MonthSummary(entries []storage.Entry, year, month int, f Filter) Month {
	scope := Filter{ProjectID: f.ProjectID, Tag: f.Tag}
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	type bucket struct {
		count   int
		moodSum int
		moodN   int
	}
	buckets := make(map[string]*bucket)
	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) || !scope.Matches(e) {
			continue
		}
		b, ok := buckets[e.Date]
		if !ok {
			b = &bucket{}
			buckets[e.Date] = b
		}
		b.count++
		if e.Mood != nil {
			b.moodSum += *e.Mood
			b.moodN++
		}
	}

	result := Month{Year: year, Month: month, Days: make([]Day, 0, len(buckets))}
	for day := 1; day <= 31; day++ {
		date := fmt.Sprintf("%s%02d", prefix, day)
		b, ok := buckets[date]
		if !ok {
			continue
		}
		d := Day{Date: date, Day: day, EntryCount: b.count}
		if b.moodN > 0 {
			avg := float64(b.moodSum) / float64(b.moodN)
			d.AverageMood = &avg
		}
		result.Days = append(result.Days, d)
	}
	return result
}
