package workout

import (
	"context"
	"strings"
	"time"

	"academiasport/internal/metrics"
)

type Service interface {
	Create(ctx context.Context, req CreateWorkoutRequest) (*Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
	ListByUser(ctx context.Context, userID string) ([]Workout, error)
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreateWorkoutRequest) (*Workout, error) {
	w, err := s.repo.Create(ctx, Workout{
		UserID:    req.UserID,
		Name:      req.Name,
		Date:      req.Date,
		Duration:  req.Duration,
		Calories:  req.Calories,
		Exercises: req.Exercises,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWorkout()
	return w, nil
}

func (s *service) Get(ctx context.Context, id string) (*Workout, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Workout, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Summary totals the user's workouts. ThisMonth counts workouts dated in the
// current calendar month.
func (s *service) Summary(ctx context.Context, userID string) (*Summary, error) {
	workouts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	month := s.now().Format("2006-01")
	sum := &Summary{TotalWorkouts: len(workouts)}
	for _, w := range workouts {
		sum.TotalMinutes += w.Duration
		if w.Calories != nil {
			sum.TotalCalories += *w.Calories
		}
		if strings.HasPrefix(w.Date, month) {
			sum.ThisMonth++
		}
	}
	return sum, nil
}
