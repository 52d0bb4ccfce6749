package service

import "time"

// Period selects one of the four canonical statistics windows.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", ErrInvalidPeriod
}

// Range resolves the period to a concrete [from, to] window anchored at now.
// Apart from "today", which starts at midnight of the current calendar day,
// these are rolling windows: "month" is the trailing 30 days and "year" the
// trailing 365, not calendar-aligned ranges.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now
	case PeriodMonth:
		return now.AddDate(0, 0, -30), now
	case PeriodYear:
		return now.AddDate(0, 0, -365), now
	}
	return now, now
}
