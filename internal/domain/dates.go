package domain

import "time"

// DateOf truncates t to midnight of its calendar day in loc
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDate compares calendar dates ignoring time and location
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// IsFutureDate returns true if date is strictly after today
func IsFutureDate(date, today time.Time) bool {
	return DaysBetween(today, date) >= 1
}

// IsWithinHorizon returns true if date is at most AdvanceBookingDays ahead of today
func IsWithinHorizon(date, today time.Time) bool {
	return DaysBetween(today, date) <= AdvanceBookingDays
}

// AvailableDates lists the days 1..daysAhead after today that have open hours
func AvailableDates(schedule []WeeklyAvailability, today time.Time, daysAhead int) []time.Time {
	dates := make([]time.Time, 0, daysAhead)
	y, m, d := today.Date()
	for i := 1; i <= daysAhead; i++ {
		date := time.Date(y, m, d+i, 0, 0, 0, 0, today.Location())
		if IsWorkingDay(schedule, int(date.Weekday())) {
			dates = append(dates, date)
		}
	}
	return dates
}
