package plan

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestListPlans(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "monthly_price", "features"}).
		AddRow("basic", "Basic", "desc", 7990, "{\"Weight room access\",Cardio}").
		AddRow("vip", "VIP", "desc", 19990, "{}")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, monthly_price, features FROM plans ORDER BY monthly_price ASC")).
		WillReturnRows(rows)

	plans, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, pq.StringArray{"Weight room access", "Cardio"}, plans[0].Features)
	require.NotNil(t, plans[1].Features)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlanNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, monthly_price, features FROM plans WHERE id = $1")).
		WithArgs("gold").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "monthly_price", "features"}))

	_, err := repo.GetByID(context.Background(), "gold")
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSeedPlans(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	catalog := Catalog()
	for _, p := range catalog {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plans (id, name, description, monthly_price, features) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING")).
			WithArgs(p.ID, p.Name, p.Description, p.MonthlyPrice, p.Features).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.Seed(context.Background(), catalog))
	require.NoError(t, mock.ExpectationsWereMet())
}
