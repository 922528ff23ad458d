package schedule

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classRowColumns = []string{"id", "name", "instructor", "start_time", "end_time", "room", "max_participants", "current_participants", "date"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestListByDate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE date = $1 ORDER BY seq")).
		WithArgs("2024-05-01").
		WillReturnRows(sqlmock.NewRows(classRowColumns).
			AddRow("c1", "Yoga Flow", "Ana Costa", "07:00", "08:00", "Room 1", 15, 3, "2024-05-01"))

	classes, err := repo.ListByDate(context.Background(), "2024-05-01")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, 3, classes[0].CurrentParticipants)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes ORDER BY seq")).
		WillReturnRows(sqlmock.NewRows(classRowColumns))

	classes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, classes)
	assert.Empty(t, classes)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestCreateClass(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).
		WithArgs(sqlmock.AnyArg(), "Crossfit", "Carlos Lima", "06:00", "07:00", "Functional Area", 12, 0, "2024-05-02").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, err := repo.Create(context.Background(), Class{
		Name: "Crossfit", Instructor: "Carlos Lima", StartTime: "06:00", EndTime: "07:00",
		Room: "Functional Area", MaxParticipants: 12, CurrentParticipants: 5, Date: "2024-05-02",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 0, c.CurrentParticipants)
	require.NoError(t, mock.ExpectationsWereMet())
}
