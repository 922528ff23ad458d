package checkin

import (
	"math"
	"time"
)

type Checkin struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"userId"`
	CheckinTime  time.Time  `db:"checkin_time" json:"checkinTime"`
	CheckoutTime *time.Time `db:"checkout_time" json:"checkoutTime"`
	Duration     *int       `db:"duration" json:"duration"`
}

// Active reports whether the visit has not been closed yet.
func (c Checkin) Active() bool {
	return c.CheckoutTime == nil
}

// Close stamps the checkout time and the visit length in whole minutes.
func (c *Checkin) Close(at time.Time) {
	minutes := VisitMinutes(c.CheckinTime, at)
	c.CheckoutTime = &at
	c.Duration = &minutes
}

// VisitMinutes is the elapsed time between in and out, floored to minutes.
func VisitMinutes(in, out time.Time) int {
	return int(math.Floor(out.Sub(in).Minutes()))
}

type CheckinRequest struct {
	UserID string `json:"userId" binding:"required"`
}
