package audit

import "context"

type Repository interface {
	Record(ctx context.Context, attempt LoginAttempt) (*LoginAttempt, error)
	// Recent returns at most limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]LoginAttempt, error)
}
