package audit

import "time"

// LoginAttempt is one entry of the append-only login audit trail. The
// submitted password is never recorded.
type LoginAttempt struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Timestamp time.Time `db:"attempted_at" json:"timestamp"`
	Success   bool      `db:"success" json:"success"`
	UserAgent string    `db:"user_agent" json:"userAgent"`
	IP        string    `db:"ip" json:"ip"`
}
