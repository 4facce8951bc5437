package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrPhoneTaken возвращается, когда телефон уже зарегистрирован
	ErrPhoneTaken = errors.New("user.repository: phone already registered")

	ErrBuildQuery = errors.New("user.repository: failed to build query")
	ErrExecQuery  = errors.New("user.repository: failed to execute query")
	ErrScanRow    = errors.New("user.repository: failed to scan row")
)
