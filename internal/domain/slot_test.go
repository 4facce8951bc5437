package domain_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// 2025-06-02 is a Monday
var monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func mondaySchedule(opens, closes string, isOpen bool) []domain.WeeklyAvailability {
	return []domain.WeeklyAvailability{
		{Weekday: int(time.Sunday), Opens: "10:00", Closes: "14:00", IsOpen: false},
		{Weekday: int(time.Monday), Opens: types.TimeString(opens), Closes: types.TimeString(closes), IsOpen: isOpen},
	}
}

func reservation(date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BookingDate: date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func minutes(t *testing.T, ts types.TimeString) int {
	t.Helper()
	m, err := ts.Minutes()
	require.NoError(t, err)
	return m
}

func TestGenerateSlots_FullDayNoReservations(t *testing.T) {
	slots, err := domain.GenerateSlots(mondaySchedule("09:00", "17:00", true), monday, 60, nil)
	require.NoError(t, err)

	require.Len(t, slots, 15)
	assert.Equal(t, domain.CandidateSlot{StartTime: "09:00", EndTime: "10:00", Available: true}, slots[0])
	assert.Equal(t, domain.CandidateSlot{StartTime: "16:00", EndTime: "17:00", Available: true}, slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, domain.SlotStepMinutes, minutes(t, slots[i].StartTime)-minutes(t, slots[i-1].StartTime))
		assert.True(t, slots[i].Available)
	}
}

func TestGenerateSlots_OverlappingReservation(t *testing.T) {
	reservations := []*domain.Booking{
		reservation(monday, "10:00", "11:00", domain.StatusConfirmed),
	}

	slots, err := domain.GenerateSlots(mondaySchedule("09:00", "17:00", true), monday, 60, reservations)
	require.NoError(t, err)

	want := []domain.CandidateSlot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
		{StartTime: "09:30", EndTime: "10:30", Available: false},
		{StartTime: "10:00", EndTime: "11:00", Available: false},
		{StartTime: "10:30", EndTime: "11:30", Available: false},
		{StartTime: "11:00", EndTime: "12:00", Available: true},
	}
	if diff := cmp.Diff(want, slots[:5]); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, domain.FindSlot(slots, "08:30"))
}

func TestGenerateSlots_NoOverrunAtClosing(t *testing.T) {
	slots, err := domain.GenerateSlots(mondaySchedule("09:00", "10:30", true), monday, 90, nil)
	require.NoError(t, err)

	want := []domain.CandidateSlot{
		{StartTime: "09:00", EndTime: "10:30", Available: true},
	}
	if diff := cmp.Diff(want, slots); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	reservations := []*domain.Booking{
		reservation(monday, "10:00", "11:00", domain.StatusConfirmed),
	}

	for _, duration := range []int{15, 60, 180, 600} {
		slots, err := domain.GenerateSlots(mondaySchedule("09:00", "17:00", false), monday, duration, reservations)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}

	tuesday := monday.AddDate(0, 0, 1)
	slots, err := domain.GenerateSlots(mondaySchedule("09:00", "17:00", true), tuesday, 60, nil)
	require.NoError(t, err)
	assert.Empty(t, slots, "weekday without an entry")

	slots, err = domain.GenerateSlots(nil, monday, 60, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_IgnoresCancelledAndOtherDates(t *testing.T) {
	reservations := []*domain.Booking{
		reservation(monday, "09:00", "12:00", domain.StatusCancelled),
		reservation(monday.AddDate(0, 0, 7), "09:00", "12:00", domain.StatusConfirmed),
	}

	slots, err := domain.GenerateSlots(mondaySchedule("09:00", "12:00", true), monday, 60, reservations)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestGenerateSlots_NoShowAndCompletedStillBlock(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusNoShow, domain.StatusCompleted, domain.StatusPending} {
		reservations := []*domain.Booking{reservation(monday, "09:00", "09:30", status)}

		slots, err := domain.GenerateSlots(mondaySchedule("09:00", "11:00", true), monday, 30, reservations)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.False(t, slots[0].Available, string(status))
		assert.True(t, slots[1].Available, string(status))
	}
}

func TestGenerateSlots_HalfOpenBoundaries(t *testing.T) {
	// Бронь 10:00-11:00 не пересекается со слотами, которые заканчиваются в 10:00 или начинаются в 11:00
	reservations := []*domain.Booking{reservation(monday, "10:00", "11:00", domain.StatusConfirmed)}

	slots, err := domain.GenerateSlots(mondaySchedule("09:00", "12:00", true), monday, 60, reservations)
	require.NoError(t, err)

	nine := domain.FindSlot(slots, "09:00")
	eleven := domain.FindSlot(slots, "11:00")
	require.NotNil(t, nine)
	require.NotNil(t, eleven)
	assert.True(t, nine.Available)
	assert.True(t, eleven.Available)
}

func TestGenerateSlots_Properties(t *testing.T) {
	schedule := mondaySchedule("08:00", "19:30", true)
	reservations := []*domain.Booking{
		reservation(monday, "09:15", "10:00", domain.StatusConfirmed),
		reservation(monday, "13:00", "15:30", domain.StatusPending),
		reservation(monday, "17:00", "18:00", domain.StatusCancelled),
	}
	busy := [][2]int{{9*60 + 15, 10 * 60}, {13 * 60, 15*60 + 30}}

	for _, duration := range []int{15, 30, 45, 60, 90, 150, 180} {
		slots, err := domain.GenerateSlots(schedule, monday, duration, reservations)
		require.NoError(t, err)

		again, err := domain.GenerateSlots(schedule, monday, duration, reservations)
		require.NoError(t, err)
		if diff := cmp.Diff(slots, again); diff != "" {
			t.Fatalf("non-deterministic output for %d min:\n%s", duration, diff)
		}

		for i, s := range slots {
			start, end := minutes(t, s.StartTime), minutes(t, s.EndTime)

			if i > 0 {
				assert.Less(t, minutes(t, slots[i-1].StartTime), start, "monotonic")
			}
			assert.GreaterOrEqual(t, start, 8*60, "contained")
			assert.LessOrEqual(t, end, 19*60+30, "contained")
			assert.Equal(t, duration, end-start, "exact duration")

			overlaps := false
			for _, b := range busy {
				if start < b[1] && end > b[0] {
					overlaps = true
				}
			}
			assert.Equal(t, !overlaps, s.Available, "availability of %s for %d min", s.StartTime, duration)
		}
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	schedule := mondaySchedule("09:00", "17:00", true)

	_, err := domain.GenerateSlots(schedule, monday, 0, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = domain.GenerateSlots(schedule, monday, -30, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = domain.GenerateSlots(mondaySchedule("9am", "17:00", true), monday, 60, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)

	_, err = domain.GenerateSlots(schedule, monday, 60, []*domain.Booking{reservation(monday, "10", "11:00", domain.StatusConfirmed)})
	assert.ErrorIs(t, err, domain.ErrInvalidReservationTime)
}
