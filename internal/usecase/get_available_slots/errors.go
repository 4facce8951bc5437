package get_available_slots

import "errors"

var (
	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("get_available_slots: stylist not found")

	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotOffered возвращается, когда стилист не оказывает выбранную услугу
	ErrServiceNotOffered = errors.New("get_available_slots: service is not offered by this stylist")

	// ErrInvalidDate возвращается, когда дата сегодня или в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта записи
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
