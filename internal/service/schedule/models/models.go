package models

import (
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// DayScheduleDTO часы работы мастера в один день недели (0 = воскресенье)
type DayScheduleDTO struct {
	Weekday int    `json:"weekday"`
	Opens   string `json:"opens"`  // "09:00"
	Closes  string `json:"closes"` // "18:00"
	IsOpen  bool   `json:"isOpen"`
}

// UpdateScheduleRequest полная замена недельного расписания
type UpdateScheduleRequest struct {
	Days []DayScheduleDTO `json:"days"`
}

// ToDomain конвертирует запрос в domain модель без валидации
func (r *UpdateScheduleRequest) ToDomain() []domain.WeeklyAvailability {
	schedule := make([]domain.WeeklyAvailability, 0, len(r.Days))
	for _, d := range r.Days {
		schedule = append(schedule, domain.WeeklyAvailability{
			Weekday: d.Weekday,
			Opens:   types.TimeString(d.Opens),
			Closes:  types.TimeString(d.Closes),
			IsOpen:  d.IsOpen,
		})
	}
	return schedule
}

// ScheduleResponse расписание мастера
type ScheduleResponse struct {
	StylistID int64            `json:"stylistId"`
	Days      []DayScheduleDTO `json:"days"`
}

// AvailableDatesResponse даты, на которые можно записаться
type AvailableDatesResponse struct {
	StylistID int64    `json:"stylistId"`
	Dates     []string `json:"dates"` // "2025-10-15"
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(stylistID int64, schedule []domain.WeeklyAvailability) *ScheduleResponse {
	resp := &ScheduleResponse{
		StylistID: stylistID,
		Days:      make([]DayScheduleDTO, 0, len(schedule)),
	}
	for _, d := range schedule {
		resp.Days = append(resp.Days, DayScheduleDTO{
			Weekday: d.Weekday,
			Opens:   d.Opens.String(),
			Closes:  d.Closes.String(),
			IsOpen:  d.IsOpen,
		})
	}
	return resp
}

// FromDomainDates форматирует даты в YYYY-MM-DD
func FromDomainDates(stylistID int64, dates []time.Time) *AvailableDatesResponse {
	resp := &AvailableDatesResponse{
		StylistID: stylistID,
		Dates:     make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Format(domain.DateFormat))
	}
	return resp
}
