package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/review"
	bookingmodels "github.com/m04kA/Mila-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Mila-BookingService/internal/service/reviews/models"
)

// Service отзывы клиентов о завершённых визитах
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// PendingReviews возвращает завершённые бронирования клиента, на которые ещё нет отзыва
func (s *Service) PendingReviews(ctx context.Context, clientID int64) (*models.PendingReviewsResponse, error) {
	completed := domain.StatusCompleted
	bookings, err := s.bookingRepo.GetByClientID(ctx, clientID, &completed)
	if err != nil {
		s.logger.Error("PendingReviews: failed to get bookings for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: PendingReviews - bookings: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("PendingReviews: failed to get reviews for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: PendingReviews - reviews: %v", ErrInternal, err)
	}

	reviewed := make(map[int64]struct{}, len(reviews))
	for _, r := range reviews {
		reviewed[r.BookingID] = struct{}{}
	}

	pending := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := reviewed[b.ID]; !ok {
			pending = append(pending, b)
		}
	}

	return bookingmodels.FromDomainBookingList(pending), nil
}

// Submit сохраняет отзыв на завершённое бронирование клиента.
// На одно бронирование допускается один отзыв
func (s *Service) Submit(ctx context.Context, clientID int64, req *models.SubmitReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Submit: review for booking id=%d by client=%d", req.BookingID, clientID)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Submit: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Submit: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Submit - get booking: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(clientID) {
		s.logger.Warn("Submit: booking id=%d does not belong to client=%d", req.BookingID, clientID)
		return nil, ErrAccessDenied
	}
	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("Submit: booking id=%d has status=%s", req.BookingID, booking.Status)
		return nil, ErrNotCompleted
	}

	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		s.logger.Error("Submit: failed to get user id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: Submit - get user: %v", ErrInternal, err)
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		BookingID:  booking.ID,
		ClientID:   clientID,
		ClientName: client.Name,
		StylistID:  booking.StylistID,
		ServiceID:  booking.FirstServiceID(),
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrAlreadyReviewed) {
			s.logger.Warn("Submit: booking id=%d already reviewed", req.BookingID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("Submit: failed to create review for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Submit - create review: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: created review id=%d for booking id=%d", review.ID, review.BookingID)
	resp := models.FromDomainReview(review)
	return &resp, nil
}

// ListMine отзывы клиента, новые первыми
func (s *Service) ListMine(ctx context.Context, clientID int64) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListMine: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(reviews), nil
}

// ListByStylist отзывы о мастере, новые первыми
func (s *Service) ListByStylist(ctx context.Context, stylistID int64) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListByStylist(ctx, stylistID)
	if err != nil {
		s.logger.Error("ListByStylist: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: ListByStylist - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(reviews), nil
}
