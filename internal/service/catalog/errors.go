package catalog

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
