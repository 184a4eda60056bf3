package journal

import (
	"math"
	"reflect"
	"slices"
	"testing"
	"time"

	"devdiary/internal/storage"
)

func ptr[T any](v T) *T { return &v }

func ids(entries []storage.Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func floatNear(got *float64, want float64) bool {
	return got != nil && math.Abs(*got-want) < 1e-9
}

func TestSession_Authenticated(t *testing.T) {
	if (Session{}).Authenticated() {
		t.Error("anonymous session reports authenticated")
	}
	if !(Session{UserID: 3}).Authenticated() {
		t.Error("session with a user reports anonymous")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "valid", in: "2024-03-05"},
		{name: "leap day", in: "2024-02-29"},
		{name: "not a leap year", in: "2023-02-29", wantErr: true},
		{name: "wrong layout", in: "05/03/2024", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got := ValidDate(tt.in); got == tt.wantErr {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.in, got, !tt.wantErr)
			}
		})
	}
}

func TestApply_FilterConjunction(t *testing.T) {
	entries := []storage.Entry{
		{ID: 1, Date: "2024-03-01", ProjectID: ptr(int64(1)), Tags: []string{"a"}},
		{ID: 2, Date: "2024-03-02", ProjectID: ptr(int64(1)), Tags: []string{"b"}},
		{ID: 3, Date: "2024-03-03", ProjectID: ptr(int64(2)), Tags: []string{"a"}},
	}

	got := ids(Apply(entries, Filter{ProjectID: ptr(int64(1)), Tag: "a"}))

	if !slices.Equal(got, []int64{1}) {
		t.Errorf("Apply() = %v, want [1]", got)
	}
}

func TestApply(t *testing.T) {
	entries := []storage.Entry{
		{ID: 1, Date: "2024-03-01", Title: ptr("Refactoring day"), Body: ptr("moved the parser")},
		{ID: 2, Date: "2024-03-04", Title: ptr("Standup"), Body: ptr("Discussed the PARSER rewrite")},
		{ID: 3, Date: "2024-03-04", Body: ptr("nothing much")},
		{ID: 4, Date: "2024-02-28"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{name: "no filter sorts newest first with id tiebreak", filter: Filter{}, want: []int64{3, 2, 1, 4}},
		{name: "search is case-insensitive over title and body", filter: Filter{Search: "Parser"}, want: []int64{2, 1}},
		{name: "search matches title", filter: Filter{Search: "refactor"}, want: []int64{1}},
		{name: "date range is inclusive", filter: Filter{DateFrom: "2024-03-01", DateTo: "2024-03-04"}, want: []int64{3, 2, 1}},
		{name: "date from only", filter: Filter{DateFrom: "2024-03-02"}, want: []int64{3, 2}},
		{name: "project filter skips entries without project", filter: Filter{ProjectID: ptr(int64(9))}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Apply(entries, tt.filter)); !slices.Equal(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	entries := []storage.Entry{{ID: 1, Date: "2024-01-01"}, {ID: 2, Date: "2024-01-02"}}
	_ = Apply(entries, Filter{})
	if got := ids(entries); !slices.Equal(got, []int64{1, 2}) {
		t.Errorf("Apply() reordered its input to %v", got)
	}
}

func TestMonthSummary(t *testing.T) {
	entries := []storage.Entry{
		{ID: 1, Date: "2024-03-05", Mood: ptr(4), Tags: []string{"work"}},
		{ID: 2, Date: "2024-03-05", Mood: ptr(2)},
		{ID: 3, Date: "2024-03-20", Tags: []string{"work"}},
		{ID: 4, Date: "2024-04-01", Mood: ptr(5)},
		{ID: 5, Date: "2023-03-05", Mood: ptr(1)},
	}

	got := MonthSummary(entries, 2024, 3, Filter{})

	if got.Year != 2024 || got.Month != 3 {
		t.Errorf("MonthSummary() month = %d-%d, want 2024-3", got.Year, got.Month)
	}
	if len(got.Days) != 2 {
		t.Fatalf("MonthSummary() returned %d days, want 2", len(got.Days))
	}

	first := got.Days[0]
	if first.Date != "2024-03-05" || first.Day != 5 || first.EntryCount != 2 {
		t.Errorf("first day = %+v, want 2024-03-05 (day 5) with 2 entries", first)
	}
	if !floatNear(first.AverageMood, 3.0) {
		t.Errorf("first day AverageMood = %v, want 3", first.AverageMood)
	}

	second := got.Days[1]
	if second.Day != 20 || second.EntryCount != 1 {
		t.Errorf("second day = %+v, want day 20 with 1 entry", second)
	}
	if second.AverageMood != nil {
		t.Errorf("day without moods AverageMood = %v, want nil", *second.AverageMood)
	}
}

func TestMonthSummary_TagFilter(t *testing.T) {
	entries := []storage.Entry{
		{ID: 1, Date: "2024-03-05", Mood: ptr(4), Tags: []string{"work"}},
		{ID: 2, Date: "2024-03-05", Mood: ptr(2)},
	}

	got := MonthSummary(entries, 2024, 3, Filter{Tag: "work"})

	if len(got.Days) != 1 {
		t.Fatalf("MonthSummary() returned %d days, want 1", len(got.Days))
	}
	if got.Days[0].EntryCount != 1 {
		t.Errorf("EntryCount = %d, want 1", got.Days[0].EntryCount)
	}
	if !floatNear(got.Days[0].AverageMood, 4.0) {
		t.Errorf("AverageMood = %v, want 4", got.Days[0].AverageMood)
	}
}

func TestMonthSummary_Empty(t *testing.T) {
	got := MonthSummary(nil, 2024, 2, Filter{})
	if got.Days == nil || len(got.Days) != 0 {
		t.Errorf("MonthSummary() days = %#v, want an empty non-nil slice", got.Days)
	}
}

func TestStreak(t *testing.T) {
	today := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) string { return FormatDate(today.AddDate(0, 0, -offset)) }

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{name: "gap two days back", dates: []string{day(0), day(1), day(3)}, want: 2},
		{name: "no entry today", dates: []string{day(1), day(2)}, want: 0},
		{name: "same-day entries count once", dates: []string{day(0), day(0), day(0), day(1), day(2)}, want: 3},
		{name: "unsorted input", dates: []string{day(2), day(0), day(1)}, want: 3},
		{name: "crosses month boundary", dates: []string{day(0), day(1), day(2), day(3), day(4), day(5), day(6), day(7), day(8), day(9), day(10)}, want: 11},
		{name: "no entries", dates: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]storage.Entry, len(tt.dates))
			for i, d := range tt.dates {
				entries[i] = storage.Entry{ID: int64(i + 1), Date: d}
			}
			if got := Streak(entries, today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMoodTrend(t *testing.T) {
	// Inserted out of date order: the backfilled entry must not count as recent.
	entries := []storage.Entry{
		{ID: 1, Date: "2024-03-03", Mood: ptr(3)},
		{ID: 2, Date: "2024-03-04", Mood: ptr(4)},
		{ID: 3, Date: "2024-03-04"},
		{ID: 4, Date: "2024-01-01", Mood: ptr(1)},
		{ID: 5, Date: "2024-03-04", Mood: ptr(5)},
	}

	tests := []struct {
		name string
		n    int
		want []MoodPoint
	}{
		{
			name: "last two by date then id",
			n:    2,
			want: []MoodPoint{{Date: "2024-03-04", Mood: 4}, {Date: "2024-03-04", Mood: 5}},
		},
		{
			name: "n larger than data",
			n:    10,
			want: []MoodPoint{
				{Date: "2024-01-01", Mood: 1},
				{Date: "2024-03-03", Mood: 3},
				{Date: "2024-03-04", Mood: 4},
				{Date: "2024-03-04", Mood: 5},
			},
		},
		{name: "zero", n: 0, want: []MoodPoint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodTrend(entries, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MoodTrend(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name    string
		entries []storage.Entry
		want    *float64
	}{
		{name: "no entries"},
		{name: "no moods", entries: []storage.Entry{{ID: 1}}},
		{
			name:    "skips entries without mood",
			entries: []storage.Entry{{ID: 1, Mood: ptr(5)}, {ID: 2}, {ID: 3, Mood: ptr(2)}},
			want:    ptr(3.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageMood(tt.entries)
			if tt.want == nil {
				if got != nil {
					t.Errorf("AverageMood() = %v, want nil", *got)
				}
				return
			}
			if !floatNear(got, *tt.want) {
				t.Errorf("AverageMood() = %v, want %v", got, *tt.want)
			}
		})
	}
}
