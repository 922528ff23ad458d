package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"academiasport/internal/schedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

const lockClassSQL = "SELECT max_participants, current_participants FROM classes WHERE id = $1 FOR UPDATE"

func TestCreateBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockClassSQL)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants", "current_participants"}).AddRow(15, 8))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO class_bookings (id, user_id, class_id, status, booking_date) VALUES ($1, $2, $3, $4, $5)")).
		WithArgs(sqlmock.AnyArg(), "u1", "c1", StatusBooked, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET current_participants = current_participants + 1 WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b, err := repo.CreateBooking(context.Background(), BookParams{UserID: "u1", ClassID: "c1", BookedAt: now})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusBooked, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_Full(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockClassSQL)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants", "current_participants"}).AddRow(12, 12))
	mock.ExpectRollback()

	_, err := repo.CreateBooking(context.Background(), BookParams{UserID: "u1", ClassID: "c1"})
	assert.ErrorIs(t, err, ErrClassFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_ClassNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockClassSQL)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CreateBooking(context.Background(), BookParams{UserID: "u1", ClassID: "missing"})
	assert.ErrorIs(t, err, schedule.ErrClassNotFound)
}

func TestCreateBooking_RejectDuplicates(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockClassSQL)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants", "current_participants"}).AddRow(15, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM class_bookings")).
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.CreateBooking(context.Background(), BookParams{UserID: "u1", ClassID: "c1", RejectDuplicates: true})
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY seq LIMIT 1 FOR UPDATE")).
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "class_id", "status", "booking_date"}).
			AddRow("b1", "u1", "c1", StatusBooked, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE class_bookings SET status = 'cancelled' WHERE id = $1")).
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("GREATEST(current_participants - 1, 0)")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b, err := repo.CancelBooking(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, StatusCancelled, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs("u1", "c1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CancelBooking(context.Background(), "u1", "c1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserBookings(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM class_bookings WHERE user_id = $1 ORDER BY booking_date DESC")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "class_id", "status", "booking_date"}).
			AddRow("b2", "u1", "c2", StatusBooked, now).
			AddRow("b1", "u1", "c1", StatusCancelled, now.Add(-time.Hour)))

	bookings, err := repo.GetUserBookings(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b2", bookings[0].ID)
}
