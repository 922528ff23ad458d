package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"academiasport/internal/logger"
	"academiasport/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey     = "emails"
	failedKey    = "emails:failed"
	maxTries     = 3
	popTimeout   = 2 * time.Second
	signature    = "- Academia Sport Team"
	defaultDelay = 5 * time.Second
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Service queues outgoing mail in redis and delivers it over SMTP from Start.
// A Service without a redis client is disabled: sends are logged and dropped.
type Service struct {
	redis      *redis.Client
	from       string
	fromName   string
	smtpHost   string
	smtpPort   string
	smtpUser   string
	smtpPass   string
	retryDelay time.Duration
	send       sendFunc
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass string, rdb *redis.Client) *Service {
	return &Service{
		redis:      rdb,
		from:       fromEmail,
		fromName:   fromName,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		smtpUser:   smtpUser,
		smtpPass:   smtpPass,
		retryDelay: defaultDelay,
		send:       smtp.SendMail,
	}
}

func (s *Service) Enabled() bool {
	return s != nil && s.redis != nil
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	if !s.Enabled() {
		logger.Debug("email disabled, dropping message", "to", to, "subject", subject)
		return nil
	}

	job := EmailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	length, err := s.redis.LPush(ctx, queueKey, string(data)).Result()
	if err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return err
	}
	metrics.SetEmailQueueLength(length)

	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

// Start processes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	if !s.Enabled() {
		return
	}
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.poll(ctx)
		}
	}
}

// poll handles at most one job, then refreshes the queue length gauge. A
// redis failure pauses the loop for retryDelay.
func (s *Service) poll(ctx context.Context) {
	if err := s.processNext(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.WithError(err).Warn("email queue unavailable")
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.retryDelay):
		}
	}
	if ctx.Err() != nil {
		return
	}
	s.QueueLength(ctx)
}

// processNext returns an error only when redis itself fails; an empty queue
// or a bad job is not an error.
func (s *Service) processNext(ctx context.Context) error {
	result, err := s.redis.BRPop(ctx, popTimeout, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return nil
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			if s.retryDelay > 0 {
				time.Sleep(s.retryDelay)
			}
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, string(data))
			metrics.RecordEmail("retried")
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			s.saveFailed(job, err)
			metrics.RecordEmail("failed")
		}
		return nil
	}

	metrics.RecordEmail("sent")
	logger.Infof("Email sent successfully to %s", job.To)
	return nil
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return s.send(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, string(data))
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	if !s.Enabled() {
		return 0
	}
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.SetEmailQueueLength(length)
	return length
}

func (s *Service) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.redis.Close()
}

func (s *Service) SendWelcome(ctx context.Context, email, name, planName string) error {
	subject := "Welcome to Academia Sport"
	body := fmt.Sprintf(`Hi %s,

Your membership is active.

Plan: %s

Check in at the front desk with your member account.

%s`, name, planName, signature)

	return s.Send(ctx, email, name, subject, body)
}

func (s *Service) SendBookingConfirmation(ctx context.Context, email, name, className, when string) error {
	subject := "Class Booked - " + className
	body := fmt.Sprintf(`Hi %s,

Your spot is confirmed!

Class: %s
When: %s

See you at the gym!

%s`, name, className, when, signature)

	return s.Send(ctx, email, name, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, email, name, className, when string) error {
	subject := "Booking Cancelled - " + className
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

Class: %s
When: %s

%s`, name, className, when, signature)

	return s.Send(ctx, email, name, subject, body)
}
