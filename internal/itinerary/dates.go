package itinerary

import (
	"errors"
	"fmt"
	"time"
)

// maxTripSpan is the longest allowed distance between start and end dates, in days.
const maxTripSpan = 30

var ErrInvalidTripDates = errors.New("invalid trip dates")

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.000Z"}

// ParseDate accepts an ISO calendar date or an RFC 3339 timestamp and
// returns midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// TripWindow parses and checks the request dates: end must be after
// start and at most maxTripSpan days later.
func TripWindow(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate: %v", ErrInvalidTripDates, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate: %v", ErrInvalidTripDates, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidTripDates)
	}
	if TripDuration(start, end)-1 > maxTripSpan {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: trip cannot be longer than %d days", ErrInvalidTripDates, maxTripSpan)
	}
	return start, end, nil
}

// TripDuration is the inclusive day span between two dates.
func TripDuration(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// FormatDate renders "D Month" with localized month names.
func (l Language) FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), l.profile().months[t.Month()-1])
}

// FormatDateRange renders a single date, "D–D Month" inside one month,
// or "D Month – D Month" across months.
func (l Language) FormatDateRange(from, to time.Time) string {
	switch {
	case !to.After(from) || sameDay(from, to):
		return l.FormatDate(from)
	case from.Year() == to.Year() && from.Month() == to.Month():
		return fmt.Sprintf("%d–%d %s", from.Day(), to.Day(), l.profile().months[to.Month()-1])
	default:
		return l.FormatDate(from) + " – " + l.FormatDate(to)
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// dayDate is the calendar date of the 1-based trip day n.
func dayDate(start time.Time, n int) time.Time {
	return start.AddDate(0, 0, n-1)
}
