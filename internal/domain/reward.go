package domain

import "time"

const (
	WeekdayReward = 25
	WeekendReward = 50
)

// RewardAmountFor maps a calendar day to the daily reward paid for it.
func RewardAmountFor(day time.Time) int {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return WeekendReward
	default:
		return WeekdayReward
	}
}

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return Day(a, loc).Equal(Day(b, loc))
}

// DateIn reinterprets the calendar components of t as midnight in loc. Dates
// read back from a DATE column arrive as UTC midnight.
func DateIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
