package domain

import (
	"fmt"

	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// WeeklyAvailability is a stylist's open hours for one weekday (0 = Sunday)
type WeeklyAvailability struct {
	Weekday int
	Opens   types.TimeString
	Closes  types.TimeString
	IsOpen  bool
}

// ValidateWeeklySchedule checks an operator-authored schedule:
// weekday in 0..6, each weekday at most once, times in HH:MM,
// and Opens strictly before Closes on open days.
func ValidateWeeklySchedule(schedule []WeeklyAvailability) error {
	seen := make(map[int]struct{}, len(schedule))

	for _, day := range schedule {
		if day.Weekday < 0 || day.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0..6", ErrInvalidSchedule, day.Weekday)
		}
		if _, dup := seen[day.Weekday]; dup {
			return fmt.Errorf("%w: duplicate entry for weekday %d", ErrInvalidSchedule, day.Weekday)
		}
		seen[day.Weekday] = struct{}{}

		if err := day.Opens.Validate(); err != nil {
			return fmt.Errorf("%w: weekday %d opens: %v", ErrInvalidSchedule, day.Weekday, err)
		}
		if err := day.Closes.Validate(); err != nil {
			return fmt.Errorf("%w: weekday %d closes: %v", ErrInvalidSchedule, day.Weekday, err)
		}
		if day.IsOpen && !day.Opens.IsBefore(day.Closes) {
			return fmt.Errorf("%w: weekday %d opens %s not before closes %s",
				ErrInvalidSchedule, day.Weekday, day.Opens, day.Closes)
		}
	}

	return nil
}

// ForWeekday returns the entry for the weekday, or nil
func ForWeekday(schedule []WeeklyAvailability, weekday int) *WeeklyAvailability {
	for i := range schedule {
		if schedule[i].Weekday == weekday {
			return &schedule[i]
		}
	}
	return nil
}

// IsWorkingDay returns true if the schedule has an open entry for the weekday
func IsWorkingDay(schedule []WeeklyAvailability, weekday int) bool {
	day := ForWeekday(schedule, weekday)
	return day != nil && day.IsOpen
}
