package equipment

import "time"

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusReserved    = "reserved"
)

// ReservationWindow is how long a reservation holds equipment.
const ReservationWindow = time.Hour

type Equipment struct {
	ID            string     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Category      string     `db:"category" json:"category"`
	Status        string     `db:"status" json:"status"`
	ReservedBy    *string    `db:"reserved_by" json:"reservedBy"`
	ReservedUntil *time.Time `db:"reserved_until" json:"reservedUntil"`
}

// Reservation is applied to one piece of equipment regardless of its
// current status.
type Reservation struct {
	UserID string
	Until  time.Time
}

func (r Reservation) Apply(e *Equipment) {
	userID := r.UserID
	until := r.Until
	e.Status = StatusReserved
	e.ReservedBy = &userID
	e.ReservedUntil = &until
}

type ReserveRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type CreateEquipmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=available occupied maintenance reserved"`
}
