package billing

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счёт не найден
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidFilter возвращается при неизвестном фильтре статуса
	ErrInvalidFilter = errors.New("invalid invoice status filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
