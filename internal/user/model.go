package user

import "time"

type User struct {
	ID            string     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Email         string     `db:"email" json:"email"`
	PasswordHash  string     `db:"password_hash" json:"-"`
	Phone         *string    `db:"phone" json:"phone"`
	BirthDate     *string    `db:"birth_date" json:"birthDate"`
	MemberSince   string     `db:"member_since" json:"memberSince"`
	CurrentWeight *int       `db:"current_weight" json:"currentWeight"`
	TargetWeight  *int       `db:"target_weight" json:"targetWeight"`
	PrimaryGoal   *string    `db:"primary_goal" json:"primaryGoal"`
	PlanID        string     `db:"plan_id" json:"planId"`
	IsCheckedIn   bool       `db:"is_checked_in" json:"isCheckedIn"`
	LastCheckin   *time.Time `db:"last_checkin" json:"lastCheckin"`
	ProfilePhoto  *string    `db:"profile_photo" json:"profilePhoto"`
	IsAdmin       bool       `db:"is_admin" json:"isAdmin"`
}

type RegisterRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	PlanID        string  `json:"planId"`
	Phone         *string `json:"phone"`
	BirthDate     *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	CurrentWeight *int    `json:"currentWeight" binding:"omitempty,gte=0"`
	TargetWeight  *int    `json:"targetWeight" binding:"omitempty,gte=0"`
	PrimaryGoal   *string `json:"primaryGoal"`
}

// LoginRequest is not validated beyond JSON decoding: blank credentials are
// still a login attempt and are audited and rejected like any other.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRequest carries the profile fields a member may change. Nil fields
// are left as they are; password, email and the admin/check-in flags are not
// part of the request and therefore cannot be changed through it.
type UpdateRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1"`
	Phone         *string `json:"phone"`
	BirthDate     *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	CurrentWeight *int    `json:"currentWeight" binding:"omitempty,gte=0"`
	TargetWeight  *int    `json:"targetWeight" binding:"omitempty,gte=0"`
	PrimaryGoal   *string `json:"primaryGoal"`
	PlanID        *string `json:"planId" binding:"omitempty,min=1"`
	ProfilePhoto  *string `json:"profilePhoto"`
}

// Apply merges the non-nil fields of req into u.
func (req UpdateRequest) Apply(u *User) {
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.BirthDate != nil {
		u.BirthDate = req.BirthDate
	}
	if req.CurrentWeight != nil {
		u.CurrentWeight = req.CurrentWeight
	}
	if req.TargetWeight != nil {
		u.TargetWeight = req.TargetWeight
	}
	if req.PrimaryGoal != nil {
		u.PrimaryGoal = req.PrimaryGoal
	}
	if req.PlanID != nil {
		u.PlanID = *req.PlanID
	}
	if req.ProfilePhoto != nil {
		u.ProfilePhoto = req.ProfilePhoto
	}
}

type AuthResponse struct {
	User *User `json:"user"`
}
