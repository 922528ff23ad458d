package checkin

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academiasport/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) CheckIn(ctx context.Context, userID string, at time.Time) (*Checkin, error) {
	args := m.Called(ctx, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Checkin), args.Error(1)
}

func (m *MockRepository) CheckOut(ctx context.Context, id string, at time.Time) (*Checkin, bool, error) {
	args := m.Called(ctx, id, at)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*Checkin), args.Bool(1), args.Error(2)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]Checkin, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Checkin), args.Error(1)
}

func (m *MockRepository) Active(ctx context.Context, userID string) (*Checkin, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Checkin), args.Error(1)
}

func setupRouter(repo Repository, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service{repo: repo, now: func() time.Time { return now }})
	r.POST("/api/checkins", h.CheckIn)
	r.PUT("/api/checkins/:id/checkout", h.CheckOut)
	r.GET("/api/users/:id/checkins", h.ListUserCheckins)
	r.GET("/api/users/:id/checkins/active", h.ActiveCheckin)
	return r
}

func request(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckInHandler_ErrorMapping(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockRepository)
	repo.On("CheckIn", mock.Anything, "u1", now).Return(&Checkin{ID: "k1", UserID: "u1", CheckinTime: now}, nil)
	repo.On("CheckIn", mock.Anything, "busy", now).Return(nil, ErrAlreadyCheckedIn)
	repo.On("CheckIn", mock.Anything, "ghost", now).Return(nil, user.ErrUserNotFound)
	r := setupRouter(repo, now)

	w := request(r, http.MethodPost, "/api/checkins", `{"userId":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"checkoutTime":null`)

	assert.Equal(t, http.StatusBadRequest, request(r, http.MethodPost, "/api/checkins", `{"userId":"busy"}`).Code)
	assert.Equal(t, http.StatusNotFound, request(r, http.MethodPost, "/api/checkins", `{"userId":"ghost"}`).Code)
	assert.Equal(t, http.StatusBadRequest, request(r, http.MethodPost, "/api/checkins", `{}`).Code)
}

func TestCheckOutHandler(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 2, 5, 0, time.UTC)
	in := now.Add(-125 * time.Second)
	closed := Checkin{ID: "k1", UserID: "u1", CheckinTime: in}
	closed.Close(now)

	repo := new(MockRepository)
	repo.On("CheckOut", mock.Anything, "k1", now).Return(&closed, true, nil)
	repo.On("CheckOut", mock.Anything, "missing", now).Return(nil, false, ErrCheckinNotFound)
	r := setupRouter(repo, now)

	w := request(r, http.MethodPut, "/api/checkins/k1/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"duration":2`)

	assert.Equal(t, http.StatusNotFound, request(r, http.MethodPut, "/api/checkins/missing/checkout", "").Code)
}

func TestActiveCheckinHandler_Null(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Active", mock.Anything, "u1").Return(nil, nil)

	w := request(setupRouter(repo, time.Now()), http.MethodGet, "/api/users/u1/checkins/active", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
