package reviews

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается при отзыве на чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrNotCompleted возвращается, если бронирование ещё не завершено
	ErrNotCompleted = errors.New("only completed bookings can be reviewed")

	// ErrAlreadyReviewed возвращается при повторном отзыве
	ErrAlreadyReviewed = errors.New("booking already reviewed")

	// ErrInvalidInput возвращается при некорректной оценке или комментарии
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
