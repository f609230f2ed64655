package domain

import (
	"fmt"
	"time"
)

// DateLayout is the layout of dates in the published JSON.
const DateLayout = "2006-01-02"

// GetDate returns the date of the given weekday (1 = Monday .. 7 = Sunday)
// in ISO calendar week calendarWeek of year.
//
// Week 1 is the week containing January 4th. The returned date may fall
// into the neighbouring calendar year, e.g. GetDate(2020, 1, 1) is
// 2019-12-30. Weeks beyond the number of ISO weeks of year are rejected.
func GetDate(year, calendarWeek, weekday int) (time.Time, error) {
	if weekday < 1 || weekday > 7 {
		return time.Time{}, fmt.Errorf("weekday %d out of range 1..7: %w", weekday, ErrInvalidDate)
	}
	if calendarWeek < 1 || calendarWeek > WeeksInYear(year) {
		return time.Time{}, fmt.Errorf("week %d out of range 1..%d for %d: %w",
			calendarWeek, WeeksInYear(year), year, ErrInvalidDate)
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -ISOWeekday(jan4))

	return monday.AddDate(0, 0, 7*(calendarWeek-1)+weekday-1), nil
}

// WeeksInYear returns the number of ISO weeks (52 or 53) of year.
// December 28th always lies in the last week.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// ISOWeekday returns the weekday index of t with Monday = 0 .. Sunday = 6.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekKeyOf returns the ISO week t belongs to.
func WeekKeyOf(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return WeekKey{Year: year, Number: week}
}

// CivilDate truncates t to midnight UTC of its calendar day.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
