package reviews_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/review"
	"github.com/m04kA/Mila-BookingService/internal/service/reviews"
	"github.com/m04kA/Mila-BookingService/internal/service/reviews/models"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
	"github.com/m04kA/Mila-BookingService/pkg/ptr"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	r, _ := args.Get(0).(*domain.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, clientID)
	r, _ := args.Get(0).([]*domain.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) ListByStylist(ctx context.Context, stylistID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, stylistID)
	r, _ := args.Get(0).([]*domain.Review)
	return r, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepository) GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, clientID, status)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type fixture struct {
	reviews  *MockReviewRepository
	bookings *MockBookingRepository
	users    *MockUserRepository
	svc      *reviews.Service
}

func newFixture() *fixture {
	f := &fixture{
		reviews:  new(MockReviewRepository),
		bookings: new(MockBookingRepository),
		users:    new(MockUserRepository),
	}
	f.svc = reviews.NewService(f.reviews, f.bookings, f.users, logger.NewNop())
	return f
}

func completedBooking(id, clientID int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		StylistID:  3,
		ClientID:   ptr.Ptr(clientID),
		ServiceIDs: []int64{8, 9},
		Status:     domain.StatusCompleted,
	}
}

func TestService_PendingReviews(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	completed := domain.StatusCompleted

	f.bookings.On("GetByClientID", ctx, int64(2), &completed).Return([]*domain.Booking{
		completedBooking(10, 2),
		completedBooking(11, 2),
		completedBooking(12, 2),
	}, nil)
	f.reviews.On("ListByClient", ctx, int64(2)).Return([]*domain.Review{{BookingID: 11}}, nil)

	resp, err := f.svc.PendingReviews(ctx, 2)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(10), resp.Bookings[0].ID)
	assert.Equal(t, int64(12), resp.Bookings[1].ID)
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores trimmed review with first service", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", ctx, int64(10)).Return(completedBooking(10, 2), nil)
		f.users.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Name: "Sofia"}, nil)
		f.reviews.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.BookingID == 10 && r.ClientName == "Sofia" && r.StylistID == 3 &&
				r.ServiceID != nil && *r.ServiceID == 8 && r.Comment == "Lovely" && r.Rating == 5
		})).Return(&domain.Review{ID: 1, BookingID: 10, ClientID: 2, Rating: 5, Comment: "Lovely"}, nil)

		resp, err := f.svc.Submit(ctx, 2, &models.SubmitReviewRequest{BookingID: 10, Rating: 5, Comment: "  Lovely "})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("booking of another client", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", ctx, int64(10)).Return(completedBooking(10, 5), nil)

		_, err := f.svc.Submit(ctx, 2, &models.SubmitReviewRequest{BookingID: 10, Rating: 4, Comment: "ok"})
		assert.ErrorIs(t, err, reviews.ErrAccessDenied)
	})

	t.Run("booking not completed", func(t *testing.T) {
		f := newFixture()
		b := completedBooking(10, 2)
		b.Status = domain.StatusConfirmed
		f.bookings.On("GetByID", ctx, int64(10)).Return(b, nil)

		_, err := f.svc.Submit(ctx, 2, &models.SubmitReviewRequest{BookingID: 10, Rating: 4, Comment: "ok"})
		assert.ErrorIs(t, err, reviews.ErrNotCompleted)
	})

	t.Run("already reviewed", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", ctx, int64(10)).Return(completedBooking(10, 2), nil)
		f.users.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Name: "Sofia"}, nil)
		f.reviews.On("Create", ctx, mock.Anything).Return(nil, reviewRepo.ErrAlreadyReviewed)

		_, err := f.svc.Submit(ctx, 2, &models.SubmitReviewRequest{BookingID: 10, Rating: 4, Comment: "again"})
		assert.ErrorIs(t, err, reviews.ErrAlreadyReviewed)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", ctx, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

		_, err := f.svc.Submit(ctx, 2, &models.SubmitReviewRequest{BookingID: 99, Rating: 4, Comment: "ok"})
		assert.ErrorIs(t, err, reviews.ErrBookingNotFound)
	})

	invalid := []struct {
		name string
		req  models.SubmitReviewRequest
		err  error
	}{
		{"rating zero", models.SubmitReviewRequest{BookingID: 10, Rating: 0, Comment: "ok"}, models.ErrRatingRange},
		{"rating six", models.SubmitReviewRequest{BookingID: 10, Rating: 6, Comment: "ok"}, models.ErrRatingRange},
		{"blank comment", models.SubmitReviewRequest{BookingID: 10, Rating: 3, Comment: "   "}, models.ErrCommentRequired},
		{"comment too long", models.SubmitReviewRequest{BookingID: 10, Rating: 3, Comment: strings.Repeat("a", 1001)}, models.ErrCommentTooLong},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.svc.Submit(ctx, 2, &tc.req)
			assert.ErrorIs(t, err, reviews.ErrInvalidInput)
			assert.ErrorIs(t, tc.req.Validate(), tc.err)
			f.bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestService_ListByStylist(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.reviews.On("ListByStylist", ctx, int64(3)).Return(nil, nil)

	resp, err := f.svc.ListByStylist(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, resp.Reviews)
	assert.Empty(t, resp.Reviews)
}
