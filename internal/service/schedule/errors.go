package schedule

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrInvalidSchedule возвращается при некорректном расписании
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
