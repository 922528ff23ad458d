package booking

import "time"

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	ClassID     string    `db:"class_id" json:"classId"`
	Status      string    `db:"status" json:"status"`
	BookingDate time.Time `db:"booking_date" json:"bookingDate"`
}

// BookParams describes one booking attempt.
type BookParams struct {
	UserID           string
	ClassID          string
	BookedAt         time.Time
	RejectDuplicates bool
}

type BookRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type CancelBookingResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
