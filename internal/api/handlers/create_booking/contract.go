package create_booking

import (
	"context"

	createBooking "github.com/m04kA/Mila-BookingService/internal/usecase/create_booking"
)

// BookingCreator записывает клиента или гостя к стилисту.
// Ошибки - сентинелы пакета usecase/create_booking (занятый слот, дата, права)
type BookingCreator interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger printf-логгер хендлера: Warn для ошибок клиента, Error для сбоев
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
