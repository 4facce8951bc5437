package domain

import "errors"

var (
	// ErrInvalidDuration длительность записи должна быть положительной
	ErrInvalidDuration = errors.New("domain: duration must be positive")

	// ErrInvalidSchedule недопустимое расписание стилиста
	ErrInvalidSchedule = errors.New("domain: invalid weekly schedule")

	// ErrInvalidReservationTime у бронирования некорректное время начала или конца
	ErrInvalidReservationTime = errors.New("domain: invalid reservation time")

	// ErrInvalidTransition недопустимая смена статуса бронирования
	ErrInvalidTransition = errors.New("domain: invalid status transition")
)
