package plan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	repo, mock, close := setupMock(t)
	t.Cleanup(close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(repo))
	r.GET("/api/plans", h.ListPlans)
	r.GET("/api/plans/:id", h.GetPlan)
	return r, mock
}

func TestListPlansHandler(t *testing.T) {
	router, mock := setupRouter(t)

	mock.ExpectQuery("SELECT id, name, description, monthly_price, features FROM plans").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "monthly_price", "features"}).
			AddRow("basic", "Basic", "desc", 7990, "{Cardio}"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var plans []Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, 7990, plans[0].MonthlyPrice)
}

func TestGetPlanHandler_NotFound(t *testing.T) {
	router, mock := setupRouter(t)

	mock.ExpectQuery("SELECT id, name, description, monthly_price, features FROM plans").
		WithArgs("gold").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "monthly_price", "features"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/gold", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Plan not found"}`, w.Body.String())
}

func TestListPlansHandler_Error(t *testing.T) {
	router, mock := setupRouter(t)

	mock.ExpectQuery("SELECT id, name, description, monthly_price, features FROM plans").
		WillReturnError(assert.AnError)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
