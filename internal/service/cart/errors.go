package cart

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound возвращается, когда товара нет в корзине
	ErrItemNotFound = errors.New("cart item not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
