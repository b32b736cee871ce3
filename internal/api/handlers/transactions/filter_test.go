package transactions

import (
	"net/url"
	"testing"
	"time"
)

func TestDateWindowPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantOK    bool
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name: "explicit range wins over month and year",
			query: url.Values{
				"startDate": {"2024-01-10"},
				"endDate":   {"2024-01-20"},
				"month":     {"2"},
				"year":      {"2024"},
			},
			wantOK:    true,
			wantStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 20, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "month and year cover the calendar month",
			query:     url.Values{"month": {"2"}, "year": {"2024"}},
			wantOK:    true,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "year alone covers the calendar year",
			query:     url.Values{"year": {"2023"}},
			wantOK:    true,
			wantStart: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:   "month without year is no restriction",
			query:  url.Values{"month": {"5"}},
			wantOK: false,
		},
		{
			name:   "startDate alone is no restriction",
			query:  url.Values{"startDate": {"2024-01-10"}},
			wantOK: false,
		},
		{
			name:   "no date params",
			query:  url.Values{},
			wantOK: false,
		},
		{
			name:   "malformed range drops the restriction",
			query:  url.Values{"startDate": {"notadate"}, "endDate": {"2024-01-20"}},
			wantOK: false,
		},
		{
			name:      "out of range month falls back to year window",
			query:     url.Values{"month": {"13"}, "year": {"2024"}},
			wantOK:    true,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := dateWindow(tc.query)
			if ok != tc.wantOK {
				t.Fatalf("dateWindow ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if !start.Equal(tc.wantStart) {
				t.Errorf("start = %v, want %v", start, tc.wantStart)
			}
			if !end.Equal(tc.wantEnd) {
				t.Errorf("end = %v, want %v", end, tc.wantEnd)
			}
		})
	}
}

func TestBuildListFilter(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "user scope only",
			query:     url.Values{},
			wantWhere: "user_id = ?",
			wantArgs:  1,
		},
		{
			name:      "valid type is applied",
			query:     url.Values{"type": {"income"}},
			wantWhere: "user_id = ? AND transaction_type = ?",
			wantArgs:  2,
		},
		{
			name:      "invalid type is silently ignored",
			query:     url.Values{"type": {"INCOME"}},
			wantWhere: "user_id = ?",
			wantArgs:  1,
		},
		{
			name:      "category applied verbatim",
			query:     url.Values{"category": {"Food & Dining"}},
			wantWhere: "user_id = ? AND category = ?",
			wantArgs:  2,
		},
		{
			name:      "type category and date range combine",
			query:     url.Values{"type": {"expense"}, "category": {"Travel"}, "startDate": {"2024-01-01"}, "endDate": {"2024-01-31"}},
			wantWhere: "user_id = ? AND transaction_type = ? AND category = ? AND date >= ? AND date <= ?",
			wantArgs:  5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildListFilter(42, tc.query)
			if where != tc.wantWhere {
				t.Errorf("where = %q, want %q", where, tc.wantWhere)
			}
			if len(args) != tc.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tc.wantArgs)
			}
			if args[0] != 42 {
				t.Errorf("first arg = %v, want the user id", args[0])
			}
		})
	}
}

func TestParseDateParam(t *testing.T) {
	if _, dateOnly, err := parseDateParam("2024-03-05"); err != nil || !dateOnly {
		t.Errorf("calendar date: dateOnly=%v err=%v", dateOnly, err)
	}
	if _, dateOnly, err := parseDateParam("2024-03-05T10:30:00Z"); err != nil || dateOnly {
		t.Errorf("RFC3339: dateOnly=%v err=%v", dateOnly, err)
	}
	if _, _, err := parseDateParam("yesterday"); err == nil {
		t.Error("expected error for unparseable date")
	}
}
