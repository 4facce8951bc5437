package catalog

import "errors"

var (
	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("catalog.repository: stylist not found")

	ErrBuildQuery = errors.New("catalog.repository: failed to build query")
	ErrExecQuery  = errors.New("catalog.repository: failed to execute query")
	ErrScanRow    = errors.New("catalog.repository: failed to scan row")
)
