package checkin

import (
	"context"
	"time"
)

type Repository interface {
	// CheckIn opens a visit and marks the user checked in. It fails with
	// user.ErrUserNotFound or ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, userID string, at time.Time) (*Checkin, error)
	// CheckOut closes the visit and clears the user's checked-in flag.
	// wasOpen is false when the visit had already been closed before.
	CheckOut(ctx context.Context, id string, at time.Time) (c *Checkin, wasOpen bool, err error)
	ListByUser(ctx context.Context, userID string) ([]Checkin, error)
	// Active returns nil when the user has no open visit.
	Active(ctx context.Context, userID string) (*Checkin, error)
}
