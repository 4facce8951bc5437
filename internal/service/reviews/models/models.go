package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	bookingmodels "github.com/m04kA/Mila-BookingService/internal/service/bookings/models"
)

var (
	ErrRatingRange     = errors.New("rating must be between 1 and 5")
	ErrCommentRequired = errors.New("comment is required")
	ErrCommentTooLong  = errors.New("comment is too long")
)

// SubmitReviewRequest отзыв на завершённое бронирование
type SubmitReviewRequest struct {
	BookingID int64  `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Validate проверяет оценку и комментарий
func (r *SubmitReviewRequest) Validate() error {
	if r.Rating < domain.MinRating || r.Rating > domain.MaxRating {
		return ErrRatingRange
	}
	comment := strings.TrimSpace(r.Comment)
	if comment == "" {
		return ErrCommentRequired
	}
	if utf8.RuneCountInString(comment) > domain.MaxReviewCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// ReviewResponse отзыв клиента
type ReviewResponse struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"bookingId"`
	ClientID   int64     `json:"clientId"`
	ClientName string    `json:"clientName"`
	StylistID  int64     `json:"stylistId"`
	ServiceID  *int64    `json:"serviceId,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse список отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		BookingID:  r.BookingID,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		StylistID:  r.StylistID,
		ServiceID:  r.ServiceID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{Reviews: make([]ReviewResponse, 0, len(reviews))}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, FromDomainReview(r))
	}
	return resp
}

// PendingReviewsResponse завершённые бронирования без отзыва
type PendingReviewsResponse = bookingmodels.BookingListResponse
