package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// CandidateSlot is a computed bookable window. It is never persisted.
type CandidateSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

type interval struct {
	start, end int
}

func (i interval) overlaps(other interval) bool {
	return i.start < other.end && i.end > other.start
}

// GenerateSlots derives candidate windows for date from the weekly schedule.
//
// The cursor starts at the day's opening time and advances by SlotStepMinutes.
// A window [cursor, cursor+duration) is emitted only while it ends no later than
// closing time. A window is unavailable if it overlaps a non-cancelled
// reservation on the same date. Reservations on other dates are ignored, so a
// caller may pass a superset. A closed or missing weekday yields no slots.
func GenerateSlots(
	schedule []WeeklyAvailability,
	date time.Time,
	totalDurationMinutes int,
	reservations []*Booking,
) ([]CandidateSlot, error) {
	if totalDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, totalDurationMinutes)
	}

	day := ForWeekday(schedule, int(date.Weekday()))
	if day == nil || !day.IsOpen {
		return []CandidateSlot{}, nil
	}

	opens, err := day.Opens.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: opens: %v", ErrInvalidSchedule, err)
	}
	closes, err := day.Closes.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: closes: %v", ErrInvalidSchedule, err)
	}

	busy, err := busyIntervals(date, reservations)
	if err != nil {
		return nil, err
	}

	slots := make([]CandidateSlot, 0, max(0, (closes-opens)/SlotStepMinutes))
	for cursor := opens; cursor+totalDurationMinutes <= closes; cursor += SlotStepMinutes {
		window := interval{start: cursor, end: cursor + totalDurationMinutes}

		available := true
		for _, b := range busy {
			if window.overlaps(b) {
				available = false
				break
			}
		}

		// Границы уже проверены: cursor и end в пределах [opens, closes]
		start, _ := types.NewTimeStringFromMinutes(window.start)
		end, _ := types.NewTimeStringFromMinutes(window.end)
		slots = append(slots, CandidateSlot{StartTime: start, EndTime: end, Available: available})
	}

	return slots, nil
}

// FindSlot returns the slot starting exactly at start, or nil
func FindSlot(slots []CandidateSlot, start types.TimeString) *CandidateSlot {
	for i := range slots {
		if slots[i].StartTime == start {
			return &slots[i]
		}
	}
	return nil
}

func busyIntervals(date time.Time, reservations []*Booking) ([]interval, error) {
	busy := make([]interval, 0, len(reservations))
	for _, r := range reservations {
		if r == nil || r.IsCancelled() || !SameDate(r.BookingDate, date) {
			continue
		}
		start, err := r.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d start: %v", ErrInvalidReservationTime, r.ID, err)
		}
		end, err := r.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d end: %v", ErrInvalidReservationTime, r.ID, err)
		}
		busy = append(busy, interval{start: start, end: end})
	}
	return busy, nil
}
