package create_booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	handler "github.com/m04kA/Mila-BookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	"github.com/m04kA/Mila-BookingService/internal/domain"
	uc "github.com/m04kA/Mila-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
	"github.com/m04kA/Mila-BookingService/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *uc.Request) (*uc.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*uc.Response)
	return resp, args.Error(1)
}

const validBody = `{"stylistId":7,"serviceIds":[1,2],"date":"2025-10-16","startTime":"10:00"}`

func doRequest(h *handler.Handler, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		req = req.WithContext(middleware.WithUser(req.Context(), 42, domain.RoleClient))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	useCase := new(MockUseCase)
	h := handler.NewHandler(useCase, logger.NewNop())

	clientID := int64(42)
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *uc.Request) bool {
		return req.RequesterID == 42 &&
			req.RequesterRole == domain.RoleClient &&
			req.StylistID == 7 &&
			req.StartTime == types.TimeString("10:00") &&
			req.Date.Equal(time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC))
	})).Return(&uc.Response{
		ID:              100,
		StylistID:       7,
		ClientID:        &clientID,
		ServiceIDs:      []int64{1, 2},
		BookingDate:     time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "11:30",
		DurationMinutes: 90,
		Status:          "pending",
		TotalPrice:      130,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil)

	rec := doRequest(h, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body handler.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(100), body.ID)
	assert.Equal(t, "2025-10-16", body.BookingDate)
	assert.Equal(t, "11:30", body.EndTime)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, 130.0, body.TotalPrice)
	useCase.AssertExpectations(t)
}

func TestHandler_RequestErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		withUser bool
		status   int
	}{
		{name: "no session", body: validBody, withUser: false, status: http.StatusUnauthorized},
		{name: "malformed json", body: `{"stylistId":`, withUser: true, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"stylistId":7,"room":"A"}`, withUser: true, status: http.StatusBadRequest},
		{name: "bad date", body: `{"stylistId":7,"date":"16.10.2025","startTime":"10:00"}`, withUser: true, status: http.StatusBadRequest},
		{name: "bad time", body: `{"stylistId":7,"date":"2025-10-16","startTime":"25:00"}`, withUser: true, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			h := handler.NewHandler(useCase, logger.NewNop())

			rec := doRequest(h, tt.body, tt.withUser)

			assert.Equal(t, tt.status, rec.Code)
			useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "slot taken", err: uc.ErrSlotNotAvailable, status: http.StatusConflict},
		{name: "misaligned slot", err: uc.ErrInvalidTimeSlot, status: http.StatusBadRequest},
		{name: "stylist not found", err: uc.ErrStylistNotFound, status: http.StatusNotFound},
		{name: "service not found", err: uc.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "service not offered", err: uc.ErrServiceNotOffered, status: http.StatusBadRequest},
		{name: "past date", err: uc.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "too far", err: uc.ErrDateTooFarInFuture, status: http.StatusBadRequest},
		{name: "guest by client", err: uc.ErrGuestNotAllowed, status: http.StatusForbidden},
		{name: "invalid input", err: uc.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			h := handler.NewHandler(useCase, logger.NewNop())
			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(h, validBody, true)

			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandler_InternalErrorHidesDetails(t *testing.T) {
	useCase := new(MockUseCase)
	h := handler.NewHandler(useCase, logger.NewNop())
	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: password authentication failed"))

	rec := doRequest(h, validBody, true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}
