package workout

import "github.com/lib/pq"

type Workout struct {
	ID        string         `db:"id" json:"id"`
	UserID    string         `db:"user_id" json:"userId"`
	Name      string         `db:"name" json:"name"`
	Date      string         `db:"date" json:"date"`
	Duration  int            `db:"duration" json:"duration"`
	Calories  *int           `db:"calories" json:"calories"`
	Exercises pq.StringArray `db:"exercises" json:"exercises" swaggertype:"array,string"`
}

// normalize keeps Exercises serialising as a list, never null.
func (w *Workout) normalize() {
	if w.Exercises == nil {
		w.Exercises = pq.StringArray{}
	}
}

type CreateWorkoutRequest struct {
	UserID    string   `json:"userId" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Date      string   `json:"date" binding:"required,datetime=2006-01-02"`
	Duration  int      `json:"duration" binding:"required,min=1"`
	Calories  *int     `json:"calories" binding:"omitempty,gte=0"`
	Exercises []string `json:"exercises"`
}

type Summary struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalMinutes  int `json:"totalMinutes"`
	TotalCalories int `json:"totalCalories"`
	ThisMonth     int `json:"thisMonth"`
}
