package seed

import (
	"context"
	"fmt"
	"time"

	"academiasport/internal/equipment"
	"academiasport/internal/logger"
	"academiasport/internal/plan"
	"academiasport/internal/schedule"
	"academiasport/internal/user"
)

// Deps are the stores and services seeding writes through.
type Deps struct {
	Plans     plan.Repository
	Users     user.Service
	Classes   schedule.Repository
	Equipment equipment.Repository
}

type Options struct {
	AdminEmail    string
	AdminPassword string
	DemoData      bool
	Now           time.Time
}

// Run installs the plan catalog and the administrator account, then the demo
// classes and equipment when requested and none exist yet. It is safe to
// call on every start.
func Run(ctx context.Context, d Deps, opts Options) error {
	if err := d.Plans.Seed(ctx, plan.Catalog()); err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}

	admin, err := d.Users.EnsureAdmin(ctx, opts.AdminEmail, opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("administrator account ready", "user_id", admin.ID, "email", admin.Email)

	if !opts.DemoData {
		return nil
	}

	if err := seedClasses(ctx, d.Classes, opts.Now); err != nil {
		return err
	}
	return seedEquipment(ctx, d.Equipment)
}

func seedClasses(ctx context.Context, repo schedule.Repository, now time.Time) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count classes: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, c := range DemoClasses(now) {
		if _, err := repo.Create(ctx, c); err != nil {
			return fmt.Errorf("seed class %q: %w", c.Name, err)
		}
	}
	return nil
}

func seedEquipment(ctx context.Context, repo equipment.Repository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count equipment: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, e := range DemoEquipment() {
		if _, err := repo.Create(ctx, e); err != nil {
			return fmt.Errorf("seed equipment %q: %w", e.Name, err)
		}
	}
	return nil
}

// DemoClasses is a small schedule for today and tomorrow. Seeded classes
// start empty.
func DemoClasses(now time.Time) []schedule.Class {
	today := now.UTC().Format("2006-01-02")
	tomorrow := now.UTC().Add(24 * time.Hour).Format("2006-01-02")

	return []schedule.Class{
		{Name: "Yoga Flow", Instructor: "Ana Costa", StartTime: "07:00", EndTime: "08:00", Room: "Studio 1", MaxParticipants: 15, Date: today},
		{Name: "Spinning", Instructor: "Pedro Alves", StartTime: "18:30", EndTime: "19:30", Room: "Cycle Room", MaxParticipants: 20, Date: today},
		{Name: "Zumba", Instructor: "Julia Rocha", StartTime: "19:00", EndTime: "20:00", Room: "Studio 2", MaxParticipants: 15, Date: tomorrow},
		{Name: "Crossfit", Instructor: "Carlos Lima", StartTime: "06:00", EndTime: "07:00", Room: "Functional Area", MaxParticipants: 12, Date: tomorrow},
		{Name: "Pilates", Instructor: "Maria Santos", StartTime: "18:00", EndTime: "19:00", Room: "Studio 1", MaxParticipants: 20, Date: today},
	}
}

func DemoEquipment() []equipment.Equipment {
	return []equipment.Equipment{
		{Name: "Treadmill 1", Category: "Cardio", Status: equipment.StatusAvailable},
		{Name: "Treadmill 2", Category: "Cardio", Status: equipment.StatusOccupied},
		{Name: "Treadmill 3", Category: "Cardio", Status: equipment.StatusAvailable},
		{Name: "Flat Bench Press 1", Category: "Weights", Status: equipment.StatusOccupied},
		{Name: "Flat Bench Press 2", Category: "Weights", Status: equipment.StatusAvailable},
		{Name: "Incline Bench Press", Category: "Weights", Status: equipment.StatusMaintenance},
		{Name: "Spinning Bike 1", Category: "Cardio", Status: equipment.StatusAvailable},
		{Name: "Spinning Bike 2", Category: "Cardio", Status: equipment.StatusAvailable},
		{Name: "Stationary Bike", Category: "Cardio", Status: equipment.StatusAvailable},
	}
}
