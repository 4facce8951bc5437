package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

func TestValidateWeeklySchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule []domain.WeeklyAvailability
		wantErr  bool
	}{
		{
			name: "valid week with closed sunday",
			schedule: []domain.WeeklyAvailability{
				{Weekday: 0, Opens: "09:00", Closes: "09:00", IsOpen: false},
				{Weekday: 1, Opens: "09:00", Closes: "18:00", IsOpen: true},
				{Weekday: 6, Opens: "10:00", Closes: "16:00", IsOpen: true},
			},
		},
		{name: "empty schedule", schedule: nil},
		{
			name: "duplicate weekday",
			schedule: []domain.WeeklyAvailability{
				{Weekday: 1, Opens: "09:00", Closes: "12:00", IsOpen: true},
				{Weekday: 1, Opens: "13:00", Closes: "18:00", IsOpen: true},
			},
			wantErr: true,
		},
		{
			name:     "weekday out of range",
			schedule: []domain.WeeklyAvailability{{Weekday: 7, Opens: "09:00", Closes: "18:00", IsOpen: true}},
			wantErr:  true,
		},
		{
			name:     "malformed time",
			schedule: []domain.WeeklyAvailability{{Weekday: 2, Opens: "9:00", Closes: "18:00", IsOpen: true}},
			wantErr:  true,
		},
		{
			name:     "opens after closes",
			schedule: []domain.WeeklyAvailability{{Weekday: 2, Opens: "18:00", Closes: "09:00", IsOpen: true}},
			wantErr:  true,
		},
		{
			name:     "opens equals closes on open day",
			schedule: []domain.WeeklyAvailability{{Weekday: 2, Opens: "09:00", Closes: "09:00", IsOpen: true}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateWeeklySchedule(tt.schedule)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDayLevelAvailability(t *testing.T) {
	today := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC) // Monday

	assert.False(t, domain.IsFutureDate(today, today))
	assert.False(t, domain.IsFutureDate(today.AddDate(0, 0, -1), today))
	assert.True(t, domain.IsFutureDate(today.AddDate(0, 0, 1), today))

	assert.True(t, domain.IsWithinHorizon(today.AddDate(0, 0, domain.AdvanceBookingDays), today))
	assert.False(t, domain.IsWithinHorizon(today.AddDate(0, 0, domain.AdvanceBookingDays+1), today))

	schedule := []domain.WeeklyAvailability{
		{Weekday: int(time.Monday), Opens: "09:00", Closes: "17:00", IsOpen: true},
		{Weekday: int(time.Tuesday), Opens: "09:00", Closes: "17:00", IsOpen: false},
	}
	dates := domain.AvailableDates(schedule, today, domain.AdvanceBookingDays)

	// Сегодняшний понедельник не входит, дальше 4 понедельника в пределах 30 дней
	assert.Len(t, dates, 4)
	for _, d := range dates {
		assert.Equal(t, time.Monday, d.Weekday())
		assert.True(t, domain.IsFutureDate(d, today))
	}
}
