package store

import (
	"context"
	"testing"
	"time"

	"academiasport/internal/audit"
	"academiasport/internal/equipment"
	"academiasport/internal/plan"
	"academiasport/internal/user"
	"academiasport/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_DuplicateEmailKeepsOneRecord(t *testing.T) {
	s := New()
	repo := NewUserRepository(s)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, user.User{Name: "Other Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	assert.Equal(t, 1, s.users.Len())
}

func TestUsers_UpdateMergesProfile(t *testing.T) {
	s := New()
	repo := NewUserRepository(s)
	ctx := context.Background()

	created, err := repo.Create(ctx, user.User{Name: "Ana", Email: "ana@example.com", PlanID: "basic", PasswordHash: "h"})
	require.NoError(t, err)

	weight := 68
	updated, err := repo.Update(ctx, created.ID, user.UpdateRequest{CurrentWeight: &weight})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "h", updated.PasswordHash)
	assert.Equal(t, 68, *updated.CurrentWeight)

	_, err = repo.Update(ctx, "missing", user.UpdateRequest{})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestPlans_SeedIsIdempotent(t *testing.T) {
	repo := NewPlanRepository(New())
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, plan.Catalog()))
	require.NoError(t, repo.Seed(ctx, plan.Catalog()))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "basic", plans[0].ID)

	vip, err := repo.GetByID(ctx, "vip")
	require.NoError(t, err)
	assert.Equal(t, 19990, vip.MonthlyPrice)

	_, err = repo.GetByID(ctx, "gold")
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestAudit_RecentNewestFirstWithLimit(t *testing.T) {
	repo := NewAuditRepository(New())
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := repo.Record(ctx, audit.LoginAttempt{Email: "a@example.com", Timestamp: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	recent, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, base.Add(4*time.Minute), recent[0].Timestamp)
	assert.Equal(t, base.Add(2*time.Minute), recent[2].Timestamp)
}

func TestEquipment_ReserveSetsOneHourWindow(t *testing.T) {
	s := New()
	repo := NewEquipmentRepository(s)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	item, err := repo.Create(ctx, equipment.Equipment{Name: "Incline Bench Press", Category: "Weights", Status: equipment.StatusMaintenance})
	require.NoError(t, err)

	reserved, err := repo.Reserve(ctx, item.ID, equipment.Reservation{UserID: "u1", Until: now.Add(equipment.ReservationWindow)})
	require.NoError(t, err)
	assert.Equal(t, equipment.StatusReserved, reserved.Status)
	assert.Equal(t, "u1", *reserved.ReservedBy)
	assert.Equal(t, int64(3600000), reserved.ReservedUntil.Sub(now).Milliseconds())

	_, err = repo.Reserve(ctx, "missing", equipment.Reservation{UserID: "u1", Until: now})
	assert.ErrorIs(t, err, equipment.ErrEquipmentNotFound)
}

func TestEquipment_ListByCategory(t *testing.T) {
	repo := NewEquipmentRepository(New())
	ctx := context.Background()

	for _, e := range []equipment.Equipment{
		{Name: "Treadmill 1", Category: "Cardio"},
		{Name: "Flat Bench Press 1", Category: "Weights"},
		{Name: "Treadmill 2", Category: "Cardio"},
	} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	cardio, err := repo.ListByCategory(ctx, "Cardio")
	require.NoError(t, err)
	require.Len(t, cardio, 2)
	assert.Equal(t, "Treadmill 1", cardio[0].Name)
	assert.Equal(t, equipment.StatusAvailable, cardio[0].Status)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWorkouts_ListByDateDesc(t *testing.T) {
	repo := NewWorkoutRepository(New())
	ctx := context.Background()

	for _, date := range []string{"2024-04-28", "2024-05-03", "2024-05-01"} {
		_, err := repo.Create(ctx, workout.Workout{UserID: "u1", Name: "Run", Date: date, Duration: 30})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, workout.Workout{UserID: "u2", Name: "Swim", Date: "2024-05-04", Duration: 30})
	require.NoError(t, err)

	workouts, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, []string{"2024-05-03", "2024-05-01", "2024-04-28"}, []string{workouts[0].Date, workouts[1].Date, workouts[2].Date})
	assert.NotNil(t, workouts[0].Exercises)
}
