package product

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product.repository: product not found")

	ErrBuildQuery = errors.New("product.repository: failed to build query")
	ErrExecQuery  = errors.New("product.repository: failed to execute query")
	ErrScanRow    = errors.New("product.repository: failed to scan row")
)
