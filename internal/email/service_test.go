package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"os"
	"testing"
	"time"

	"academiasport/internal/logger"
	"academiasport/internal/metrics"

	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type recordedMail struct {
	addr string
	to   []string
	msg  string
}

func newTestService(rdb *redis.Client) (*Service, *[]recordedMail) {
	sent := &[]recordedMail{}
	svc := New("noreply@academiasport.com", "Academia Sport", "smtp.test.com", "587", "", "", rdb)
	svc.retryDelay = 0
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		*sent = append(*sent, recordedMail{addr: addr, to: to, msg: string(msg)})
		return nil
	}
	return svc, sent
}

func jobJSON(t *testing.T, job EmailJob) string {
	t.Helper()
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return string(data)
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*`).SetVal(7)

	svc, _ := newTestService(db)

	err := svc.Send(context.Background(), "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.EmailQueueLength))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*`).SetErr(assert.AnError)

	svc, _ := newTestService(db)

	err := svc.Send(context.Background(), "user@example.com", "User", "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendDisabled(t *testing.T) {
	svc := New("noreply@academiasport.com", "Academia Sport", "", "", "", "", nil)

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.SendWelcome(context.Background(), "user@example.com", "User", "Basic"))
	assert.Equal(t, int64(0), svc.QueueLength(context.Background()))
	assert.NoError(t, svc.Close())
}

func TestTemplatesQueue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `Welcome to Academia Sport`).SetVal(1)
	mock.Regexp().ExpectLPush("emails", `Class Booked - Yoga`).SetVal(2)
	mock.Regexp().ExpectLPush("emails", `Booking Cancelled - Yoga`).SetVal(3)

	svc, _ := newTestService(db)
	ctx := context.Background()

	require.NoError(t, svc.SendWelcome(ctx, "user@example.com", "User", "Premium"))
	require.NoError(t, svc.SendBookingConfirmation(ctx, "user@example.com", "User", "Yoga", "2024-05-01 07:00"))
	require.NoError(t, svc.SendCancellation(ctx, "user@example.com", "User", "Yoga", "2024-05-01 07:00"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectLLen("emails").SetVal(5)

	svc, _ := newTestService(db)

	assert.Equal(t, int64(5), svc.QueueLength(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_Sends(t *testing.T) {
	db, mock := redismock.NewClientMock()
	job := EmailJob{To: "user@example.com", Subject: "Hi", Body: "body"}
	mock.ExpectBRPop(popTimeout, "emails").SetVal([]string{"emails", jobJSON(t, job)})

	svc, sent := newTestService(db)
	svc.processNext(context.Background())

	require.Len(t, *sent, 1)
	assert.Equal(t, "smtp.test.com:587", (*sent)[0].addr)
	assert.Equal(t, []string{"user@example.com"}, (*sent)[0].to)
	assert.Contains(t, (*sent)[0].msg, "Subject: Hi\r\n")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_RequeuesOnFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	job := EmailJob{To: "user@example.com", Subject: "Hi", Body: "body"}
	mock.ExpectBRPop(popTimeout, "emails").SetVal([]string{"emails", jobJSON(t, job)})
	mock.Regexp().ExpectLPush("emails", `"tries":1`).SetVal(1)

	svc, _ := newTestService(db)
	svc.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("smtp down") }
	svc.processNext(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_MovesToFailedAfterMaxTries(t *testing.T) {
	db, mock := redismock.NewClientMock()
	job := EmailJob{To: "user@example.com", Subject: "Hi", Body: "body", Tries: 2}
	mock.ExpectBRPop(popTimeout, "emails").SetVal([]string{"emails", jobJSON(t, job)})
	mock.Regexp().ExpectLPush("emails:failed", `smtp down`).SetVal(1)

	svc, _ := newTestService(db)
	svc.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("smtp down") }
	svc.processNext(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPoll_RefreshesQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectBRPop(popTimeout, "emails").RedisNil()
	mock.ExpectLLen("emails").SetVal(4)

	svc, sent := newTestService(db)
	svc.poll(context.Background())

	assert.Empty(t, *sent)
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.EmailQueueLength))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPoll_BacksOffWhenRedisFails(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectBRPop(popTimeout, "emails").SetErr(errors.New("connection refused"))
	mock.ExpectLLen("emails").SetVal(0)

	svc, _ := newTestService(db)
	svc.retryDelay = 50 * time.Millisecond

	start := time.Now()
	svc.poll(context.Background())

	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPoll_ReturnsWhenCancelled(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectBRPop(popTimeout, "emails").SetErr(errors.New("connection refused"))

	svc, _ := newTestService(db)
	svc.retryDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		svc.poll(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll did not return after cancellation")
	}
}
