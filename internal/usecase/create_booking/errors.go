package create_booking

import "errors"

var (
	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("create_booking: stylist not found")

	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotOffered возвращается, когда стилист не оказывает выбранную услугу
	ErrServiceNotOffered = errors.New("create_booking: service is not offered by this stylist")

	// ErrInvalidDate возвращается, когда дата сегодня или в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта записи
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда среди слотов дня нет окна с таким началом
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда окно пересекается с другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrGuestNotAllowed возвращается, когда клиент пытается записать гостя
	ErrGuestNotAllowed = errors.New("create_booking: only admins can book for guests")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// maxSerializableAttempts сколько раз повторяется транзакция записи
// при конфликте сериализации
const maxSerializableAttempts = 3

// Причины отказа для метрики bookings_rejected_total
const (
	rejectInvalidDate  = "invalid_date"
	rejectTooFar       = "too_far"
	rejectInvalidSlot  = "invalid_slot"
	rejectSlotTaken    = "slot_taken"
	rejectNotOffered   = "service_not_offered"
)
