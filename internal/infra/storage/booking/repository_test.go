package booking_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Mila-BookingService/pkg/ptr"
)

var columns = []string{
	"id", "stylist_id", "client_id", "service_ids", "booking_date", "start_time", "end_time",
	"status", "total_price", "notes", "guest_name", "guest_phone", "cancelled_at", "created_at", "updated_at",
}

func newRepo(t *testing.T) (*booking.Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return booking.NewRepository(wrapped), wrapped, mock
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now()
	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings \(stylist_id,client_id,service_ids,booking_date,start_time,end_time,status,total_price,notes,guest_name,guest_phone\) VALUES (.+) RETURNING id, created_at, updated_at`).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg(), "2025-06-03", "10:00", "11:00", "pending", 65.0, "Trim", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		StylistID:   1,
		ClientID:    ptr.Ptr(int64(2)),
		ServiceIDs:  []int64{1},
		BookingDate: date,
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusPending,
		TotalPrice:  65,
		Notes:       ptr.Ptr("Trim"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now()
	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				int64(10), int64(1), nil, "{1,5}", date, "10:00:00", "11:45:00",
				"confirmed", 120.0, nil, "Elena Rodriguez", "+1 (555) 700-8000", nil, now, now,
			))

		got, err := repo.GetByID(context.Background(), 10)
		require.NoError(t, err)

		assert.Nil(t, got.ClientID)
		assert.True(t, got.IsGuest())
		assert.Equal(t, []int64{1, 5}, got.ServiceIDs)
		assert.Equal(t, "10:00", got.StartTime.String())
		assert.Equal(t, "11:45", got.EndTime.String())
		assert.Equal(t, domain.StatusConfirmed, got.Status)
		assert.Equal(t, "Elena Rodriguez", *got.GuestName)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_LocksDayInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	filter := domain.BookingsFilter{StylistID: ptr.Ptr(int64(1)), StartDate: &date, EndDate: &date}

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE stylist_id = \$1 AND booking_date >= \$2 AND booking_date <= \$3 ORDER BY booking_date ASC, start_time ASC, id ASC$`).
		WithArgs(int64(1), "2025-06-03", "2025-06-03").
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.GetWithFilter(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, got)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE (.+) FOR UPDATE`).
		WithArgs(int64(1), "2025-06-03", "2025-06-03").
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	_, err = repo.GetWithFilter(dbmetrics.WithTx(context.Background(), tx), filter)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)

	t.Run("cancel sets cancelled_at", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\), cancelled_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs("cancelled", int64(3), "confirmed").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), 3, domain.StatusConfirmed, domain.StatusCancelled))
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs("completed", int64(5), "confirmed").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 5, domain.StatusConfirmed, domain.StatusCompleted)
		assert.ErrorIs(t, err, booking.ErrStatusChanged)
	})

	t.Run("driver error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings`).WillReturnError(errors.New("connection reset"))

		err := repo.UpdateStatus(context.Background(), 1, domain.StatusConfirmed, domain.StatusCompleted)
		assert.ErrorIs(t, err, booking.ErrExecQuery)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
