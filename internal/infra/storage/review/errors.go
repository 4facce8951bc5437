package review

import "errors"

var (
	// ErrAlreadyReviewed возвращается при повторном отзыве на то же бронирование
	ErrAlreadyReviewed = errors.New("review.repository: booking already reviewed")

	ErrBuildQuery = errors.New("review.repository: failed to build query")
	ErrExecQuery  = errors.New("review.repository: failed to execute query")
	ErrScanRow    = errors.New("review.repository: failed to scan row")
)
