package cart

import "errors"

var (
	// ErrItemNotFound возвращается, когда товара нет в корзине
	ErrItemNotFound = errors.New("cart.repository: cart item not found")

	ErrBuildQuery = errors.New("cart.repository: failed to build query")
	ErrExecQuery  = errors.New("cart.repository: failed to execute query")
	ErrScanRow    = errors.New("cart.repository: failed to scan row")
)
