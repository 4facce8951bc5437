package auth

import "errors"

var (
	// ErrInvalidPhone возвращается, если телефон не из 7..15 цифр
	ErrInvalidPhone = errors.New("phone must contain 7 to 15 digits")

	// ErrPhoneTaken возвращается при регистрации занятого телефона
	ErrPhoneTaken = errors.New("phone already registered")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
