package transactions

import (
	"fintrack/internal/models"
	"net/url"
	"strconv"
	"time"
)

// parseDateParam accepts a calendar date (2006-01-02) or a full RFC3339
// timestamp. dateOnly tells the caller whether an end bound has to be
// stretched to cover the whole day.
func parseDateParam(value string) (parsed time.Time, dateOnly bool, err error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	return t, false, err
}

// dateWindow resolves the date scoping precedence, first match wins:
// explicit startDate/endDate range, then month+year, then year alone.
// Malformed values never error, they just drop the restriction.
func dateWindow(query url.Values) (start, end time.Time, ok bool) {
	startStr := query.Get("startDate")
	endStr := query.Get("endDate")

	if startStr != "" && endStr != "" {
		s, _, startErr := parseDateParam(startStr)
		e, dateOnly, endErr := parseDateParam(endStr)
		if startErr != nil || endErr != nil {
			return time.Time{}, time.Time{}, false
		}
		if dateOnly {
			e = e.Add(24*time.Hour - time.Second)
		}
		return s, e, true
	}

	return monthYearWindow(query)
}

// monthYearWindow covers the month+year and year-only cases. A year is
// required; a valid month narrows the window to that calendar month.
func monthYearWindow(query url.Values) (start, end time.Time, ok bool) {
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	if month, err := strconv.Atoi(query.Get("month")); err == nil && month >= 1 && month <= 12 {
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0).Add(-time.Second), true
	}

	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0).Add(-time.Second), true
}

// buildListFilter translates the optional query parameters into a WHERE
// clause scoped to the owning user. A type that is not exactly income or
// expense is silently ignored; category is applied verbatim.
func buildListFilter(userID int, query url.Values) (string, []interface{}) {
	where := "user_id = ?"
	args := []interface{}{userID}

	if t := query.Get("type"); models.ValidTransactionType(t) {
		where += " AND transaction_type = ?"
		args = append(args, t)
	}

	if category := query.Get("category"); category != "" {
		where += " AND category = ?"
		args = append(args, category)
	}

	if start, end, ok := dateWindow(query); ok {
		where += " AND date >= ? AND date <= ?"
		args = append(args, start, end)
	}

	return where, args
}

// orderBy is fixed: newest event first, creation time and id break ties.
const orderBy = " ORDER BY date DESC, created_at DESC, id DESC"
