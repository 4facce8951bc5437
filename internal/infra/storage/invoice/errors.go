package invoice

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счёт не найден
	ErrInvoiceNotFound = errors.New("invoice.repository: invoice not found")

	ErrBuildQuery = errors.New("invoice.repository: failed to build query")
	ErrExecQuery  = errors.New("invoice.repository: failed to execute query")
	ErrScanRow    = errors.New("invoice.repository: failed to scan row")
)
