package schedule

type Class struct {
	ID                  string `db:"id" json:"id"`
	Name                string `db:"name" json:"name"`
	Instructor          string `db:"instructor" json:"instructor"`
	StartTime           string `db:"start_time" json:"startTime"`
	EndTime             string `db:"end_time" json:"endTime"`
	Room                string `db:"room" json:"room"`
	MaxParticipants     int    `db:"max_participants" json:"maxParticipants"`
	CurrentParticipants int    `db:"current_participants" json:"currentParticipants"`
	Date                string `db:"date" json:"date"`
}

// Full reports whether no seats are left.
func (c Class) Full() bool {
	return c.CurrentParticipants >= c.MaxParticipants
}

type CreateClassRequest struct {
	Name            string `json:"name" binding:"required"`
	Instructor      string `json:"instructor" binding:"required"`
	StartTime       string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime         string `json:"endTime" binding:"required,datetime=15:04"`
	Room            string `json:"room" binding:"required"`
	MaxParticipants int    `json:"maxParticipants" binding:"required,min=1"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
}
